package entities_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/petrsovadina/biomcp/internal/cache"
	"github.com/petrsovadina/biomcp/internal/entities"
	"github.com/petrsovadina/biomcp/internal/httpsubstrate"
)

func newDrugEngine(t *testing.T, server *httptest.Server) *entities.DrugEngine {
	t.Helper()
	store, err := cache.New(t.TempDir())
	if err != nil {
		t.Fatalf("cache.New: %v", err)
	}
	httpClient, err := httpsubstrate.New(store, httpsubstrate.NewConfig(), nil)
	if err != nil {
		t.Fatalf("httpsubstrate.New: %v", err)
	}
	t.Setenv("BIOMCP_MYCHEM_BASE", server.URL)
	t.Setenv("BIOMCP_DRUGSFDA_BASE", server.URL)
	return &entities.DrugEngine{Sources: entities.NewSources(httpClient)}
}

func TestDrugEngine_Get_FDAApplicationsParsedNotDuplicatedName(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.URL.Path == "/chem/aspirin":
			fmt.Fprint(w, `{"_id": "aspirin", "name": "Aspirin"}`)
		case r.URL.Path == "/":
			fmt.Fprint(w, `{
				"meta": {"results": {"total": 1}},
				"results": [{
					"application_number": "NDA005213",
					"sponsor_name": "BAYER",
					"products": [{"brand_name": "BAYER ASPIRIN"}]
				}]
			}`)
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	engine := newDrugEngine(t, server)
	out, err := engine.Get(t.Context(), "aspirin", []string{"fda_applications"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(out.FDAApplications) != 1 {
		t.Fatalf("expected one fda_applications row, got %+v", out.FDAApplications)
	}
	app := out.FDAApplications[0]
	if app.ApplicationNumber != "NDA005213" || app.SponsorName != "BAYER" {
		t.Fatalf("expected real Drugs@FDA application fields, got %+v", app)
	}
	if len(app.BrandNames) != 1 || app.BrandNames[0] != "BAYER ASPIRIN" {
		t.Fatalf("expected the brand name parsed from the products array, not the drug's own name, got %+v", app.BrandNames)
	}
}

func TestDrugEngine_Get_FDAApplicationsNotRequested(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"_id": "aspirin", "name": "Aspirin"}`)
	}))
	defer server.Close()

	engine := newDrugEngine(t, server)
	out, err := engine.Get(t.Context(), "aspirin", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.FDAApplications != nil {
		t.Fatalf("expected fda_applications untouched when not requested, got %+v", out.FDAApplications)
	}
}
