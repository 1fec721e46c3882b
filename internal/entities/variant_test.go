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

// newVariantEngine wires a VariantEngine whose MyVariant/CGI/CIViC/COSMIC/
// GWAS Catalog clients all point at the same fake upstream server,
// dispatched by path and method.
func newVariantEngine(t *testing.T, server *httptest.Server) *entities.VariantEngine {
	t.Helper()
	store, err := cache.New(t.TempDir())
	if err != nil {
		t.Fatalf("cache.New: %v", err)
	}
	httpClient, err := httpsubstrate.New(store, httpsubstrate.NewConfig(), nil)
	if err != nil {
		t.Fatalf("httpsubstrate.New: %v", err)
	}
	t.Setenv("BIOMCP_MYVARIANT_BASE", server.URL)
	t.Setenv("BIOMCP_CGI_BASE", server.URL)
	t.Setenv("BIOMCP_CIVIC_BASE", server.URL)
	t.Setenv("BIOMCP_COSMIC_BASE", server.URL)
	t.Setenv("COSMIC_API_TOKEN", "test-token")
	t.Setenv("BIOMCP_GWASCATALOG_BASE", server.URL)
	return &entities.VariantEngine{Sources: entities.NewSources(httpClient)}
}

func variantFakeServer(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.URL.Path == "/query":
			_ = json.NewEncoder(w).Encode(map[string]any{
				"total": 1,
				"hits": []map[string]any{{
					"_id":   "chr7:g.140453136A>T",
					"chrom": "7",
					"vcf":   map[string]any{"ref": "A", "alt": "T", "position": 140453136},
				}},
			})
		case r.URL.Path == "/biomarkers":
			_ = json.NewEncoder(w).Encode([]map[string]any{
				{"Gene": "BRAF", "Alteration": "V600E", "Drug": "Vemurafenib", "Association": "Responsive"},
			})
		case r.URL.Path == "/" && r.Method == http.MethodPost:
			_ = json.NewEncoder(w).Encode(map[string]any{
				"data": map[string]any{
					"variants": map[string]any{"nodes": []map[string]any{{
						"evidenceItems": map[string]any{"nodes": []map[string]any{
							{"id": "1", "significance": "SENSITIVITYRESPONSE", "therapies": []map[string]any{{"name": "Vemurafenib"}}},
						}},
					}}},
				},
			})
		case r.URL.Path == "/" && r.Method == http.MethodGet:
			_ = json.NewEncoder(w).Encode(map[string]any{
				"results": []map[string]any{
					{"gene_name": "BRAF", "mutation_aa": "p.V600E", "sample_count": 10},
				},
			})
		default:
			http.NotFound(w, r)
		}
	}))
}

func TestVariantEngine_Get_SectionsPopulatedOnlyWhenRequested(t *testing.T) {
	server := variantFakeServer(t)
	defer server.Close()
	engine := newVariantEngine(t, server)

	out, err := engine.Get(t.Context(), "BRAF V600E", []string{"cosmic", "cgi", "civic"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(out.COSMICMutations) != 1 {
		t.Fatalf("expected cosmic section populated, got %+v", out.COSMICMutations)
	}
	if len(out.CGIBiomarkers) != 1 {
		t.Fatalf("expected cgi section populated, got %+v", out.CGIBiomarkers)
	}
	if len(out.CIViCEvidence) != 1 {
		t.Fatalf("expected civic section populated, got %+v", out.CIViCEvidence)
	}
	// Sections not requested must stay empty: the record's section fields
	// are non-null iff the request's section set named them.
	if out.GWASAssociations != nil {
		t.Fatalf("expected gwas section untouched when not requested, got %+v", out.GWASAssociations)
	}
	if out.AlphaGenome != nil {
		t.Fatalf("expected alphagenome section untouched when not requested")
	}
}

func TestVariantEngine_Get_NoSectionsRequested(t *testing.T) {
	server := variantFakeServer(t)
	defer server.Close()
	engine := newVariantEngine(t, server)

	out, err := engine.Get(t.Context(), "BRAF V600E", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.COSMICMutations != nil || out.CGIBiomarkers != nil || out.CIViCEvidence != nil {
		t.Fatalf("expected every optional section empty with no sections requested, got %+v", out)
	}
	if out.Chromosome != "7" || out.RefAllele != "A" || out.AltAllele != "T" {
		t.Fatalf("expected the primary MyVariant record to still be populated, got %+v", out)
	}
}

func TestVariantEngine_Get_InvalidID(t *testing.T) {
	server := variantFakeServer(t)
	defer server.Close()
	engine := newVariantEngine(t, server)

	if _, err := engine.Get(t.Context(), "not a variant id!!", nil); err == nil {
		t.Fatalf("expected an error for an unrecognized variant id")
	}
}
