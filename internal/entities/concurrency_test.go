package entities_test

import (
	"context"
	"errors"
	"testing"

	"github.com/petrsovadina/biomcp/internal/entities"
)

func TestRunSections_MixedSuccessAndFailure(t *testing.T) {
	var ranA, ranB bool
	sections := []entities.SectionEnrichment{
		{Name: "a", Apply: func(ctx context.Context) error { ranA = true; return nil }},
		{Name: "b", Apply: func(ctx context.Context) error { ranB = true; return errors.New("upstream down") }},
	}

	results := entities.RunSections(context.Background(), sections)

	if !ranA || !ranB {
		t.Fatalf("expected both enrichments to run, ranA=%v ranB=%v", ranA, ranB)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].Err != nil {
		t.Fatalf("section a: unexpected error %v", results[0].Err)
	}
	if results[1].Err == nil {
		t.Fatalf("section b: expected an error")
	}
	if results[1].Note == "" {
		t.Fatalf("section b: expected a non-empty note explaining the failure")
	}
}

// A failing enrichment must never abort the others (spec's "optional
// enrichments never fail the outer call").
func TestRunSections_FailureDoesNotAbortOthers(t *testing.T) {
	const n = 8
	ran := make([]bool, n)
	sections := make([]entities.SectionEnrichment, n)
	for i := 0; i < n; i++ {
		i := i
		sections[i] = entities.SectionEnrichment{
			Name: "s",
			Apply: func(ctx context.Context) error {
				ran[i] = true
				if i%2 == 0 {
					return errors.New("fail")
				}
				return nil
			},
		}
	}

	entities.RunSections(context.Background(), sections)

	for i, r := range ran {
		if !r {
			t.Fatalf("section %d never ran", i)
		}
	}
}

func TestRunSections_Empty(t *testing.T) {
	results := entities.RunSections(context.Background(), nil)
	if len(results) != 0 {
		t.Fatalf("expected no results for an empty section list, got %d", len(results))
	}
}
