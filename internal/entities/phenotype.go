package entities

import (
	"context"

	"github.com/petrsovadina/biomcp/internal/bmerrors"
	"github.com/petrsovadina/biomcp/internal/transform"
)

type PhenotypeEngine struct {
	Sources *Sources
}

func (e *PhenotypeEngine) Get(ctx context.Context, curie string) (*transform.Phenotype, error) {
	node, err := e.Sources.Monarch.GetByID(ctx, curie)
	if err != nil {
		return nil, err
	}
	if node == nil || node.ID == "" {
		return nil, &bmerrors.NotFound{Entity: "phenotype", ID: curie, Suggestion: "search phenotype " + curie}
	}
	p := transform.FromMonarchPhenotypeNode(node)
	return &p, nil
}

func (e *PhenotypeEngine) Search(ctx context.Context, query string, limit, offset int) ([]transform.Phenotype, PaginationMeta, error) {
	if err := ValidateLimit(limit, MaxSearchLimit); err != nil {
		return nil, PaginationMeta{}, err
	}
	resp, err := e.Sources.Monarch.Search(ctx, query, "biolink:PhenotypicFeature", limit, offset)
	if err != nil {
		return nil, PaginationMeta{}, err
	}
	out := make([]transform.Phenotype, 0, len(resp.Items))
	for _, n := range resp.Items {
		node := n
		out = append(out, transform.FromMonarchPhenotypeNode(&node))
	}
	total := resp.Total
	return out, NewOffsetPagination(offset, limit, len(out), &total), nil
}
