package entities

import (
	"context"
	"time"

	"github.com/sourcegraph/conc/pool"

	"github.com/petrsovadina/biomcp/internal/biomcpdebug"
)

// DefaultEnrichmentConcurrency bounds the number of section enrichments
// that run at once for a single record, per spec §4.D's "implementation
// may choose a fixed bound such as 5-8".
const DefaultEnrichmentConcurrency = 6

// OptionalEnrichmentTimeout bounds any single optional enrichment call so
// it cannot stall the overall response, per spec §4.D step 5.
const OptionalEnrichmentTimeout = 9 * time.Second

// SectionEnrichment is one named enrichment step: apply mutates the
// record in place and returns an error if its upstream call failed.
type SectionEnrichment struct {
	Name  string
	Apply func(ctx context.Context) error
}

// RunSections runs every enrichment concurrently, bounded by
// DefaultEnrichmentConcurrency, with each call wrapped in
// OptionalEnrichmentTimeout. A failing or timed-out enrichment is logged
// via biomcpdebug and reported back as an EnrichmentResult; it never
// aborts the other enrichments or the primary record (spec §4.D step 4-5,
// §5 "optional enrichments ... never fail the outer call").
func RunSections(ctx context.Context, sections []SectionEnrichment) []EnrichmentResult {
	p := pool.New().WithMaxGoroutines(DefaultEnrichmentConcurrency)
	results := make([]EnrichmentResult, len(sections))

	for i, s := range sections {
		i, s := i, s
		p.Go(func() {
			sctx, cancel := context.WithTimeout(ctx, OptionalEnrichmentTimeout)
			defer cancel()

			err := s.Apply(sctx)
			if err != nil {
				biomcpdebug.Logf("section %s failed: %v\n", s.Name, err)
				results[i] = EnrichmentResult{Section: s.Name, Err: err, Note: Note(s.Name, err.Error())}
			} else {
				results[i] = EnrichmentResult{Section: s.Name}
			}
		})
	}
	p.Wait()
	return results
}
