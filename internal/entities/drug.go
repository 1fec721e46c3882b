package entities

import (
	"context"

	"github.com/petrsovadina/biomcp/internal/bmerrors"
	"github.com/petrsovadina/biomcp/internal/transform"
)

// DrugSections is the enumeration accepted by Drug.get's sections
// argument.
var DrugSections = []string{"fda_applications", "adverse_events"}

type DrugEngine struct {
	Sources *Sources
}

// Get fetches the MyChem.info base record, then optionally resolves
// Drugs@FDA applications and an OpenFDA adverse-event summary note.
func (e *DrugEngine) Get(ctx context.Context, id string, sectionTokens []string) (*transform.Drug, error) {
	sections, err := ParseSections(sectionTokens, DrugSections)
	if err != nil {
		return nil, err
	}
	hit, err := e.Sources.MyChem.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if hit == nil || hit.ID == "" {
		return nil, &bmerrors.NotFound{Entity: "drug", ID: id, Suggestion: "search drug " + id}
	}
	drug := transform.FromMyChemHit(hit)

	var enrichments []SectionEnrichment
	if sections["fda_applications"] {
		enrichments = append(enrichments, SectionEnrichment{Name: "fda_applications", Apply: func(ctx context.Context) error {
			results, _, err := e.Sources.DrugsFDA.SearchByBrandOrGenericName(ctx, drug.Name, 10, 0)
			if err != nil {
				drug.FDAApplicationsNote = Note("Drugs@FDA", err.Error())
				return err
			}
			drug.FDAApplications = transform.FromDrugsFDAResults(results)
			return nil
		}})
	}
	if sections["adverse_events"] {
		enrichments = append(enrichments, SectionEnrichment{Name: "adverse_events", Apply: func(ctx context.Context) error {
			_, total, err := e.Sources.OpenFDA.SearchDrugEvents(ctx, `patient.drug.medicinalproduct:"`+drug.Name+`"`, 1, 0)
			if err != nil {
				drug.FDAEventsNote = Note("OpenFDA", err.Error())
				return err
			}
			drug.FDAEventsNote = Note("OpenFDA", "reported event count available via adverse-event search")
			_ = total
			return nil
		}})
	}
	RunSections(ctx, enrichments)
	return &drug, nil
}

// Search delegates to MyChem.info's free-text query endpoint.
func (e *DrugEngine) Search(ctx context.Context, query string, limit, offset int) ([]transform.Drug, PaginationMeta, error) {
	if err := ValidateLimit(limit, MaxSearchLimit); err != nil {
		return nil, PaginationMeta{}, err
	}
	resp, err := e.Sources.MyChem.Search(ctx, query, limit, offset)
	if err != nil {
		return nil, PaginationMeta{}, err
	}
	out := make([]transform.Drug, 0, len(resp.Hits))
	for _, h := range resp.Hits {
		hit := h
		out = append(out, transform.FromMyChemHit(&hit))
	}
	total := resp.Total
	return out, NewOffsetPagination(offset, limit, len(out), &total), nil
}
