package cross

import (
	"context"
	"fmt"

	"github.com/sourcegraph/conc/pool"

	"github.com/petrsovadina/biomcp/internal/bmerrors"
	"github.com/petrsovadina/biomcp/internal/entities"
)

// batchConcurrency bounds how many Get calls run at once, independent of
// entities.MaxBatchIDs (the size cap) — the same bound
// entities.DefaultEnrichmentConcurrency uses for per-record enrichment.
const batchConcurrency = entities.DefaultEnrichmentConcurrency

// Batch runs Get for every id concurrently and returns all-or-nothing: any
// single failure fails the whole batch, mirroring a try_join_all (spec
// §4.E). sections applies identically to every id.
func (p *Pivots) Batch(ctx context.Context, entity string, ids []string, sections []string) ([]any, error) {
	if len(ids) == 0 {
		return nil, bmerrors.NewInvalidArgument("batch requires at least one id")
	}
	if len(ids) > entities.MaxBatchIDs {
		return nil, bmerrors.NewInvalidArgument("batch accepts at most %d ids, got %d", entities.MaxBatchIDs, len(ids))
	}

	getOne, err := p.batchGetter(entity, sections)
	if err != nil {
		return nil, err
	}

	results := make([]any, len(ids))
	errs := make([]error, len(ids))

	bp := pool.New().WithMaxGoroutines(batchConcurrency)
	for i, id := range ids {
		i, id := i, id
		bp.Go(func() {
			results[i], errs[i] = getOne(ctx, id)
		})
	}
	bp.Wait()

	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("batch %s %q: %w", entity, ids[i], err)
		}
	}
	return results, nil
}

type batchGetterFunc func(ctx context.Context, id string) (any, error)

// batchGetter maps an entity name to its Get operation, closing over the
// shared sections list so every id in the batch sees the same section
// set. Adverse-event records have no single-item get (they're search-
// only), so that entity is rejected outright.
func (p *Pivots) batchGetter(entity string, sections []string) (batchGetterFunc, error) {
	e := p.Engines
	switch entity {
	case "gene":
		return func(ctx context.Context, id string) (any, error) { return e.Gene.Get(ctx, id, sections) }, nil
	case "variant":
		return func(ctx context.Context, id string) (any, error) { return e.Variant.Get(ctx, id, sections) }, nil
	case "article":
		return func(ctx context.Context, id string) (any, error) { return e.Article.Get(ctx, id, sections) }, nil
	case "trial":
		return func(ctx context.Context, id string) (any, error) { return e.Trial.Get(ctx, id, sections, "") }, nil
	case "drug":
		return func(ctx context.Context, id string) (any, error) { return e.Drug.Get(ctx, id, sections) }, nil
	case "disease":
		return func(ctx context.Context, id string) (any, error) { return e.Disease.Get(ctx, id, sections) }, nil
	case "phenotype":
		if len(sections) > 0 {
			return nil, bmerrors.NewInvalidArgument("phenotype batch does not accept sections")
		}
		return func(ctx context.Context, id string) (any, error) { return e.Phenotype.Get(ctx, id) }, nil
	case "pathway":
		return func(ctx context.Context, id string) (any, error) { return e.Pathway.Get(ctx, id, sections) }, nil
	case "protein":
		return func(ctx context.Context, id string) (any, error) {
			return e.Protein.Get(ctx, id, sections, 0, entities.MaxStructuresLimit)
		}, nil
	case "adverse_event":
		return nil, bmerrors.NewInvalidArgument("adverse_event has no single-record get; use search instead")
	default:
		return nil, bmerrors.NewInvalidArgument("unknown batch entity %q", entity)
	}
}
