package entities_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/petrsovadina/biomcp/internal/bmerrors"
	"github.com/petrsovadina/biomcp/internal/cache"
	"github.com/petrsovadina/biomcp/internal/entities"
	"github.com/petrsovadina/biomcp/internal/httpsubstrate"
)

// newPGxEngine wires a PGxEngine whose CPIC client points at a fake CPIC
// server; every other source client keeps its real default base URL but
// is never exercised by these tests since only CPIC-backed sections are
// requested.
func newPGxEngine(t *testing.T, server *httptest.Server) *entities.PGxEngine {
	t.Helper()
	store, err := cache.New(t.TempDir())
	if err != nil {
		t.Fatalf("cache.New: %v", err)
	}
	httpClient, err := httpsubstrate.New(store, httpsubstrate.NewConfig(), nil)
	if err != nil {
		t.Fatalf("httpsubstrate.New: %v", err)
	}
	t.Setenv("BIOMCP_CPIC_BASE", server.URL)
	return &entities.PGxEngine{Sources: entities.NewSources(httpClient)}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func TestPGxEngine_Get_PrimaryRecommendationsFoundAndGuidelineFallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/recommendation":
			writeJSON(w, []map[string]any{
				{"id": 1, "drugid": "codeine", "classification": "A", "drugrecommendation": "avoid codeine"},
			})
		case r.URL.Path == "/pair":
			writeJSON(w, []map[string]any{
				{"id": 1, "genesymbol": "CYP2D6", "drugid": "codeine", "guidelinename": "CYP2D6 and Codeine", "cpiclevel": "A"},
			})
		case r.URL.Path == "/allele_frequency":
			writeJSON(w, []map[string]any{
				{"genesymbol": "CYP2D6", "allele": "*1", "population": "East Asian", "frequency": 0.5},
				{"genesymbol": "CYP2D6", "allele": "*1", "population": "East Asian", "frequency": 0.5},
				{"genesymbol": "CYP2D6", "allele": "*4", "population": "East Asian", "frequency": 0.05},
			})
		case r.URL.Path == "/guideline":
			writeJSON(w, []map[string]any{})
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	engine := newPGxEngine(t, server)
	out, err := engine.Get(t.Context(), "CYP2D6", "codeine", []string{"recommendations", "frequencies", "guidelines"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.Gene != "CYP2D6" || out.Drug != "codeine" {
		t.Fatalf("expected gene=CYP2D6 drug=codeine, got gene=%s drug=%s", out.Gene, out.Drug)
	}
	if len(out.Recommendations) != 1 || out.Recommendations[0].RecommendationText != "avoid codeine" {
		t.Fatalf("expected the primary /recommendation row to be used unmodified, got %+v", out.Recommendations)
	}
	if len(out.Frequencies) != 2 {
		t.Fatalf("expected duplicate (gene,allele,population) rows deduped to 2, got %d: %+v", len(out.Frequencies), out.Frequencies)
	}
	if len(out.Guidelines) != 0 {
		t.Fatalf("expected no guideline summary rows, got %+v", out.Guidelines)
	}
	if len(out.GuidelineNames) != 1 || out.GuidelineNames[0] != "CYP2D6 and Codeine" {
		t.Fatalf("expected guideline name derived from /pair fallback, got %+v", out.GuidelineNames)
	}
	if out.Annotations != nil {
		t.Fatalf("annotations section was not requested; expected it untouched")
	}
}

func TestPGxEngine_Get_RecommendationsFallBackToPairs(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/recommendation":
			writeJSON(w, []map[string]any{})
		case "/pair":
			writeJSON(w, []map[string]any{
				{"id": 1, "genesymbol": "CYP2C19", "drugid": "clopidogrel", "guidelinename": "CYP2C19 and Clopidogrel", "cpiclevel": "A"},
			})
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	engine := newPGxEngine(t, server)
	out, err := engine.Get(t.Context(), "CYP2C19", "clopidogrel", []string{"recommendations"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(out.Recommendations) != 1 {
		t.Fatalf("expected one recommendation derived from the pair fallback, got %+v", out.Recommendations)
	}
	if !strings.Contains(out.Recommendations[0].RecommendationText, "CYP2C19 and Clopidogrel") {
		t.Fatalf("expected derived recommendation to name the covering guideline, got %q", out.Recommendations[0].RecommendationText)
	}
}

func TestPGxEngine_Get_DetectsGeneRegardlessOfArgumentOrder(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, []map[string]any{})
	}))
	defer server.Close()

	engine := newPGxEngine(t, server)
	out, err := engine.Get(t.Context(), "warfarin sodium", "CYP2D6", []string{"recommendations"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Gene != "CYP2D6" || out.Drug != "warfarin sodium" {
		t.Fatalf("expected gene detection independent of argument order, got gene=%s drug=%s", out.Gene, out.Drug)
	}
}

func TestPGxEngine_Get_NoGeneResolved(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	engine := newPGxEngine(t, server)
	out, err := engine.Get(t.Context(), "some drug name", "", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Note == "" {
		t.Fatalf("expected a note explaining no gene could be determined")
	}
}

func TestPGxEngine_Get_UnknownSectionRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	engine := newPGxEngine(t, server)
	_, err := engine.Get(t.Context(), "CYP2D6", "codeine", []string{"bogus"})
	if _, ok := err.(*bmerrors.InvalidArgument); !ok {
		t.Fatalf("expected *bmerrors.InvalidArgument, got %T (%v)", err, err)
	}
}
