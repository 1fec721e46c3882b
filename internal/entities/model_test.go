package entities_test

import (
	"testing"

	"github.com/petrsovadina/biomcp/internal/bmerrors"
	"github.com/petrsovadina/biomcp/internal/entities"
)

func TestParseSections(t *testing.T) {
	valid := []string{"recommendations", "frequencies", "guidelines"}

	tests := []struct {
		name    string
		tokens  []string
		want    map[string]bool
		wantErr bool
	}{
		{
			name:   "single token",
			tokens: []string{"frequencies"},
			want:   map[string]bool{"frequencies": true},
		},
		{
			name:   "all expands to every valid section",
			tokens: []string{"all"},
			want:   map[string]bool{"recommendations": true, "frequencies": true, "guidelines": true},
		},
		{
			name:   "stray --json and -j tokens are stripped",
			tokens: []string{"guidelines", "--json", "-j"},
			want:   map[string]bool{"guidelines": true},
		},
		{
			name:   "blank tokens ignored",
			tokens: []string{" ", "recommendations"},
			want:   map[string]bool{"recommendations": true},
		},
		{
			name:    "unknown token rejected",
			tokens:  []string{"bogus"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := entities.ParseSections(tt.tokens, valid)
			if tt.wantErr {
				if _, ok := err.(*bmerrors.InvalidArgument); !ok {
					t.Fatalf("expected *bmerrors.InvalidArgument, got %T (%v)", err, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for k, v := range tt.want {
				if got[k] != v {
					t.Fatalf("section %q: got %v, want %v", k, got[k], v)
				}
			}
		})
	}
}

func TestNewOffsetPagination(t *testing.T) {
	total := 25
	meta := entities.NewOffsetPagination(10, 10, 10, &total)

	if !meta.HasMore {
		t.Fatalf("expected HasMore=true when offset+returned < total")
	}

	meta = entities.NewOffsetPagination(20, 10, 5, &total)
	if meta.HasMore {
		t.Fatalf("expected HasMore=false when offset+returned == total")
	}
}

func TestNewCursorPagination(t *testing.T) {
	meta := entities.NewCursorPagination(10, 10, nil, "token123")
	if !meta.HasMore {
		t.Fatalf("expected HasMore=true when a next-page token is present")
	}

	meta = entities.NewCursorPagination(10, 3, nil, "")
	if meta.HasMore {
		t.Fatalf("expected HasMore=false with no next-page token")
	}
}

func TestValidateLimit(t *testing.T) {
	if err := entities.ValidateLimit(0, entities.MaxSearchLimit); err == nil {
		t.Fatalf("expected error for limit=0")
	}
	if err := entities.ValidateLimit(entities.MaxSearchLimit+1, entities.MaxSearchLimit); err == nil {
		t.Fatalf("expected error for limit > max")
	}
	if err := entities.ValidateLimit(1, entities.MaxSearchLimit); err != nil {
		t.Fatalf("unexpected error for limit=1: %v", err)
	}
}

func TestValidatePaginationMode(t *testing.T) {
	if err := entities.ValidatePaginationMode(5, "token"); err == nil {
		t.Fatalf("expected error when combining offset and next-page token")
	}
	if err := entities.ValidatePaginationMode(0, "token"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := entities.ValidatePaginationMode(5, ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
