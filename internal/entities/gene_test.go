package entities_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/petrsovadina/biomcp/internal/cache"
	"github.com/petrsovadina/biomcp/internal/entities"
	"github.com/petrsovadina/biomcp/internal/httpsubstrate"
)

func newGeneEngine(t *testing.T, server *httptest.Server) *entities.GeneEngine {
	t.Helper()
	store, err := cache.New(t.TempDir())
	if err != nil {
		t.Fatalf("cache.New: %v", err)
	}
	httpClient, err := httpsubstrate.New(store, httpsubstrate.NewConfig(), nil)
	if err != nil {
		t.Fatalf("httpsubstrate.New: %v", err)
	}
	t.Setenv("BIOMCP_MYGENE_BASE", server.URL)
	t.Setenv("BIOMCP_CIVIC_BASE", server.URL)
	return &entities.GeneEngine{Sources: entities.NewSources(httpClient)}
}

func TestGeneEngine_Get_CIViCSectionPopulated(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.URL.Path == "/query":
			_ = json.NewEncoder(w).Encode(map[string]any{
				"total": 1,
				"hits":  []map[string]any{{"_id": "673", "symbol": "BRAF", "name": "B-Raf proto-oncogene"}},
			})
		case r.URL.Path == "/" && r.Method == http.MethodPost:
			_ = json.NewEncoder(w).Encode(map[string]any{
				"data": map[string]any{
					"variants": map[string]any{"nodes": []map[string]any{{
						"evidenceItems": map[string]any{"nodes": []map[string]any{
							{"id": "9", "significance": "SENSITIVITYRESPONSE"},
						}},
					}}},
				},
			})
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	engine := newGeneEngine(t, server)
	out, err := engine.Get(t.Context(), "braf", []string{"civic"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(out.CIViC) != 1 || out.CIViC[0].ID != "9" {
		t.Fatalf("expected civic section populated from CIViC evidence, got %+v", out.CIViC)
	}
	if out.Pathways != nil {
		t.Fatalf("expected pathways section untouched when not requested")
	}
}
