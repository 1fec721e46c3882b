package entities

import (
	"context"
	"sort"

	"github.com/sourcegraph/conc/pool"
)

// SourceHealth is one upstream API's ping result.
type SourceHealth struct {
	Name    string `json:"name"`
	Healthy bool   `json:"healthy"`
	Error   string `json:"error,omitempty"`
}

type pinger interface {
	Ping(ctx context.Context) error
}

// Health pings every wired source client concurrently (bounded by
// DefaultEnrichmentConcurrency) and returns one SourceHealth per source,
// sorted by name, for the `biomcp health` command (spec §1's command
// surface).
func (s *Sources) Health(ctx context.Context) []SourceHealth {
	named := map[string]pinger{
		"MyGene":      s.MyGene,
		"MyVariant":   s.MyVariant,
		"MyChem":      s.MyChem,
		"PubTator3":   s.PubTator3,
		"CTGov":       s.CTGov,
		"NCICTS":      s.NCICTS,
		"UniProt":     s.UniProt,
		"InterPro":    s.InterPro,
		"STRING":      s.STRING,
		"QuickGO":     s.QuickGO,
		"Reactome":    s.Reactome,
		"GProfiler":   s.GProfiler,
		"Enrichr":     s.Enrichr,
		"EuropePMC":   s.EuropePMC,
		"PMCOA":       s.PMCOA,
		"IDConverter": s.IDConverter,
		"OpenFDA":     s.OpenFDA,
		"CPIC":        s.CPIC,
		"PharmGKB":    s.PharmGKB,
		"Monarch":     s.Monarch,
		"GWASCatalog": s.GWASCatalog,
		"CIViC":       s.CIViC,
		"OpenTargets": s.OpenTargets,
		"COSMIC":      s.COSMIC,
		"CGI":         s.CGI,
		"CBioPortal":  s.CBioPortal,
		"OncoKB":      s.OncoKB,
		"AlphaGenome": s.AlphaGenome,
		"DBNSFP":      s.DBNSFP,
		"DrugsFDA":    s.DrugsFDA,
	}

	names := make([]string, 0, len(named))
	for name := range named {
		names = append(names, name)
	}
	sort.Strings(names)

	results := make([]SourceHealth, len(names))
	p := pool.New().WithMaxGoroutines(DefaultEnrichmentConcurrency)
	for i, name := range names {
		i, name := i, name
		p.Go(func() {
			err := named[name].Ping(ctx)
			h := SourceHealth{Name: name, Healthy: err == nil}
			if err != nil {
				h.Error = err.Error()
			}
			results[i] = h
		})
	}
	p.Wait()
	return results
}
