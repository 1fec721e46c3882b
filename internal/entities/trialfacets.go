package entities

import (
	"context"

	"github.com/petrsovadina/biomcp/internal/bmerrors"
	"github.com/petrsovadina/biomcp/internal/ids"
	"github.com/petrsovadina/biomcp/internal/transform"
)

// OrganizationEngine, InterventionEngine, and BiomarkerEngine expose the
// Organization/Intervention/Biomarker facets of a trial's
// protocolSection as their own lightweight get operations, since none of
// the three has a dedicated upstream resource of its own (spec §3, §4.D).

type OrganizationEngine struct {
	Sources *Sources
}

func (e *OrganizationEngine) ListForTrial(ctx context.Context, nct string) ([]transform.Organization, error) {
	if err := ids.ValidateNCT(nct); err != nil {
		return nil, err
	}
	study, err := e.Sources.CTGov.GetByNCT(ctx, nct, []string{"SponsorCollaboratorsModule"})
	if err != nil {
		return nil, err
	}
	if study == nil || len(study.ProtocolSection) == 0 {
		return nil, &bmerrors.NotFound{Entity: "trial", ID: nct, Suggestion: "search trial " + nct}
	}
	return transform.OrganizationsFromProtocolSection(study.ProtocolSection), nil
}

type InterventionEngine struct {
	Sources *Sources
}

func (e *InterventionEngine) ListForTrial(ctx context.Context, nct string) ([]transform.Intervention, error) {
	if err := ids.ValidateNCT(nct); err != nil {
		return nil, err
	}
	study, err := e.Sources.CTGov.GetByNCT(ctx, nct, []string{"ArmsInterventionsModule"})
	if err != nil {
		return nil, err
	}
	if study == nil || len(study.ProtocolSection) == 0 {
		return nil, &bmerrors.NotFound{Entity: "trial", ID: nct, Suggestion: "search trial " + nct}
	}
	return transform.InterventionsFromProtocolSection(study.ProtocolSection), nil
}

type BiomarkerEngine struct {
	Sources *Sources
}

// ForGene collects biomarker-shaped signals for a gene from the cancer
// knowledge bases already wired for Variant.get's sections: CGI
// biomarkers and, when configured, OncoKB.
func (e *BiomarkerEngine) ForGene(ctx context.Context, gene string) ([]transform.Biomarker, error) {
	if err := ids.ValidateGeneSymbol(gene); err != nil {
		return nil, err
	}
	biomarkers, err := e.Sources.CGI.BiomarkersForGene(ctx, gene)
	if err != nil {
		return nil, err
	}
	out := make([]transform.Biomarker, 0, len(biomarkers))
	for _, b := range biomarkers {
		out = append(out, transform.Biomarker{Name: b.Biomarker, Source: "CGI"})
	}
	return out, nil
}
