package cross

import (
	"context"
	"strings"
	"sync"

	"github.com/sourcegraph/conc/pool"

	"github.com/petrsovadina/biomcp/internal/bmerrors"
	"github.com/petrsovadina/biomcp/internal/entities"
	"github.com/petrsovadina/biomcp/internal/transform"
)

// drugGeneConcurrency bounds the per-gene drug lookups pathway→drugs
// fans out, per spec §4.E's "bounded parallelism ≈5".
const drugGeneConcurrency = 5

// maxFallbackGenes caps how many pathway participant genes get retried
// as a biomarker query by the pathway→trials fallback.
const maxFallbackGenes = 10

// PathwayToTrials searches trials by condition=pathwayName. If the first
// page comes back empty and offset is zero, it retries as a biomarker
// query over the pathway's participant genes (up to maxFallbackGenes),
// keeping the first non-empty result and annotating it with
// fallback_biomarker=<gene> (spec §4.E's documented fallback).
func (p *Pivots) PathwayToTrials(ctx context.Context, stableID, pathwayName string, limit int) ([]transform.Trial, entities.PaginationMeta, string, error) {
	trials, meta, err := p.Engines.Trial.Search(ctx, entities.TrialSearchFilters{Condition: pathwayName, Source: "ctgov"}, limit, 0)
	if err != nil || len(trials) > 0 {
		return trials, meta, "", err
	}

	genes := p.Engines.Pathway.ParticipantGenesForPathway(ctx, stableID)
	if len(genes) > maxFallbackGenes {
		genes = genes[:maxFallbackGenes]
	}
	for _, gene := range genes {
		fallback, fMeta, fErr := p.Engines.Trial.Search(ctx, entities.TrialSearchFilters{Biomarker: gene, Source: "ctgov"}, limit, 0)
		if fErr == nil && len(fallback) > 0 {
			return fallback, fMeta, gene, nil
		}
	}
	return trials, meta, "", nil
}

// PathwayToDrugs fetches the pathway's participant genes, then runs a
// concurrent drug search per gene (bounded parallelism
// drugGeneConcurrency). Each lookup is a free-text MyChem query on the
// gene symbol; it is not restricted to drug-target fields, so a drug
// that merely mentions the gene also matches. If more than half of the attempted lookups fail,
// the helper fails with a synthetic Api error; otherwise results are
// merged by case-insensitive drug name, first-seen wins, capped at limit
// (spec §4.E).
func (p *Pivots) PathwayToDrugs(ctx context.Context, stableID string, limit int) ([]transform.Drug, error) {
	genes := p.Engines.Pathway.ParticipantGenesForPathway(ctx, stableID)
	if len(genes) == 0 {
		return nil, nil
	}

	var mu sync.Mutex
	var failures int
	var merged []transform.Drug
	seen := make(map[string]bool)

	gp := pool.New().WithMaxGoroutines(drugGeneConcurrency)
	for _, gene := range genes {
		gene := gene
		gp.Go(func() {
			drugs, _, err := p.Engines.Drug.Search(ctx, gene, limit, 0)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				failures++
				return
			}
			for _, d := range drugs {
				key := strings.ToLower(d.Name)
				if key == "" || seen[key] {
					continue
				}
				seen[key] = true
				merged = append(merged, d)
			}
		})
	}
	gp.Wait()

	if failures*2 > len(genes) {
		return nil, bmerrors.NewApi("pathway-drugs", "more than half of the per-gene drug lookups failed", nil)
	}
	if len(merged) > limit {
		merged = merged[:limit]
	}
	return merged, nil
}
