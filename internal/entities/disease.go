package entities

import (
	"context"

	"github.com/petrsovadina/biomcp/internal/bmerrors"
	"github.com/petrsovadina/biomcp/internal/transform"
)

type DiseaseEngine struct {
	Sources *Sources
}

// Get fetches a disease's Monarch node and, when requested, the
// phenotypes it is associated with (spec §4.D's disease pivot).
func (e *DiseaseEngine) Get(ctx context.Context, curie string, sectionTokens []string) (*transform.Disease, error) {
	sections, err := ParseSections(sectionTokens, []string{"phenotypes"})
	if err != nil {
		return nil, err
	}
	node, err := e.Sources.Monarch.GetByID(ctx, curie)
	if err != nil {
		return nil, err
	}
	if node == nil || node.ID == "" {
		return nil, &bmerrors.NotFound{Entity: "disease", ID: curie, Suggestion: "search disease " + curie}
	}
	disease := transform.FromMonarchDiseaseNode(node)

	if sections["phenotypes"] {
		resp, err := e.Sources.Monarch.AssociationsForSubject(ctx, curie, "biolink:DiseaseToPhenotypicFeatureAssociation", 50, 0)
		if err == nil && resp != nil {
			disease.Phenotypes = resp.Items
		}
	}
	return &disease, nil
}

// Search performs a free-text Monarch disease search.
func (e *DiseaseEngine) Search(ctx context.Context, query string, limit, offset int) ([]transform.Disease, PaginationMeta, error) {
	if err := ValidateLimit(limit, MaxSearchLimit); err != nil {
		return nil, PaginationMeta{}, err
	}
	resp, err := e.Sources.Monarch.Search(ctx, query, "biolink:Disease", limit, offset)
	if err != nil {
		return nil, PaginationMeta{}, err
	}
	out := make([]transform.Disease, 0, len(resp.Items))
	for _, n := range resp.Items {
		node := n
		out = append(out, transform.FromMonarchDiseaseNode(&node))
	}
	total := resp.Total
	return out, NewOffsetPagination(offset, limit, len(out), &total), nil
}
