package entities

import (
	"context"

	"github.com/petrsovadina/biomcp/internal/transform"
)

type AdverseEventEngine struct {
	Sources *Sources
}

// SearchDrugEvents runs an OpenFDA FAERS drug-event search. Adverse-event
// lookups never accept sections (spec §4.E's batch rule carries through
// to single-item search too: the record is always the full report).
func (e *AdverseEventEngine) SearchDrugEvents(ctx context.Context, search string, limit, offset int) ([]transform.AdverseEvent, PaginationMeta, error) {
	if err := ValidateLimit(limit, MaxSearchLimit); err != nil {
		return nil, PaginationMeta{}, err
	}
	raws, total, err := e.Sources.OpenFDA.SearchDrugEvents(ctx, search, limit, offset)
	if err != nil {
		return nil, PaginationMeta{}, err
	}
	out := make([]transform.AdverseEvent, 0, len(raws))
	for _, raw := range raws {
		out = append(out, transform.FromOpenFDADrugEvent(raw))
	}
	return out, NewOffsetPagination(offset, limit, len(out), &total), nil
}

// SearchDeviceEvents runs an OpenFDA MAUDE device-event search.
func (e *AdverseEventEngine) SearchDeviceEvents(ctx context.Context, search string, limit, offset int) ([]transform.AdverseEvent, PaginationMeta, error) {
	if err := ValidateLimit(limit, MaxSearchLimit); err != nil {
		return nil, PaginationMeta{}, err
	}
	raws, total, err := e.Sources.OpenFDA.SearchDeviceEvents(ctx, search, limit, offset)
	if err != nil {
		return nil, PaginationMeta{}, err
	}
	out := make([]transform.AdverseEvent, 0, len(raws))
	for _, raw := range raws {
		out = append(out, transform.FromOpenFDADeviceEvent(raw))
	}
	return out, NewOffsetPagination(offset, limit, len(out), &total), nil
}
