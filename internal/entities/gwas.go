package entities

import (
	"context"

	"github.com/petrsovadina/biomcp/internal/transform"
)

type GWASEngine struct {
	Sources *Sources
}

// SearchByRsID lists GWAS Catalog associations for a variant's rsID.
func (e *GWASEngine) SearchByRsID(ctx context.Context, rsID string, limit, offset int) ([]transform.GWASAssociation, PaginationMeta, error) {
	if err := ValidateLimit(limit, MaxSearchLimit); err != nil {
		return nil, PaginationMeta{}, err
	}
	resp, err := e.Sources.GWASCatalog.AssociationsForRsID(ctx, rsID, offset/max(limit, 1), limit)
	if err != nil {
		return nil, PaginationMeta{}, err
	}
	out := make([]transform.GWASAssociation, 0, len(resp.Embedded.Associations))
	for _, a := range resp.Embedded.Associations {
		out = append(out, transform.FromGWASCatalogAssociation(rsID, a))
	}
	total := resp.Page.TotalElements
	return out, NewOffsetPagination(offset, limit, len(out), &total), nil
}

// SearchByTrait lists GWAS Catalog associations matching a free-text
// trait name.
func (e *GWASEngine) SearchByTrait(ctx context.Context, trait string, limit, offset int) ([]transform.GWASAssociation, PaginationMeta, error) {
	if err := ValidateLimit(limit, MaxSearchLimit); err != nil {
		return nil, PaginationMeta{}, err
	}
	resp, err := e.Sources.GWASCatalog.AssociationsForTrait(ctx, trait, offset/max(limit, 1), limit)
	if err != nil {
		return nil, PaginationMeta{}, err
	}
	out := make([]transform.GWASAssociation, 0, len(resp.Embedded.Associations))
	for _, a := range resp.Embedded.Associations {
		out = append(out, transform.FromGWASCatalogAssociation("", a))
	}
	total := resp.Page.TotalElements
	return out, NewOffsetPagination(offset, limit, len(out), &total), nil
}
