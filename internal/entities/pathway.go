package entities

import (
	"context"

	"github.com/petrsovadina/biomcp/internal/bmerrors"
	"github.com/petrsovadina/biomcp/internal/filters"
	"github.com/petrsovadina/biomcp/internal/ids"
	"github.com/petrsovadina/biomcp/internal/transform"
)

// PathwaySections is the enumeration accepted by Pathway.get's sections
// argument (spec §4.D).
var PathwaySections = []string{"participants", "enrichment"}

type PathwayEngine struct {
	Sources *Sources
}

// Get fetches a pathway's Reactome base record, then optionally parses
// its participant free text into gene symbols and/or runs a
// REAC-filtered g:Profiler enrichment over those genes (spec §4.D).
func (e *PathwayEngine) Get(ctx context.Context, stableID string, sectionTokens []string) (*transform.Pathway, error) {
	if err := ids.ValidateReactomeID(stableID); err != nil {
		return nil, err
	}
	sections, err := ParseSections(sectionTokens, PathwaySections)
	if err != nil {
		return nil, err
	}

	p, err := e.Sources.Reactome.GetByStableID(ctx, stableID)
	if err != nil {
		return nil, err
	}
	if p == nil || p.StID == "" {
		return nil, &bmerrors.NotFound{Entity: "pathway", ID: stableID, Suggestion: "search pathway " + stableID}
	}
	pathway := transform.FromReactomePathway(p)

	var genes []string
	if sections["participants"] || sections["enrichment"] {
		genes = e.ParticipantGenesForPathway(ctx, stableID)
		if sections["participants"] {
			pathway.ParticipantGenes = genes
		}
	}
	if sections["enrichment"] {
		e.enrichParticipants(ctx, &pathway, genes)
	}
	return &pathway, nil
}

// ParticipantGenesForPathway resolves stableID's participating molecules
// into gene symbols; reused by the pathway→drugs/trials cross-entity
// pivots so they don't have to re-derive the gene set.
func (e *PathwayEngine) ParticipantGenesForPathway(ctx context.Context, stableID string) []string {
	participants, err := e.Sources.Reactome.ParticipatingMolecules(ctx, stableID)
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(participants))
	for _, p := range participants {
		names = append(names, p.DisplayName)
	}
	return filters.ExtractGeneSymbolsFromParticipants(names)
}

// enrichParticipants runs g:Profiler over the participant gene set and
// keeps only Reactome-sourced ("REAC") terms, per spec §4.D.
func (e *PathwayEngine) enrichParticipants(ctx context.Context, pathway *transform.Pathway, genes []string) {
	if len(genes) == 0 {
		pathway.EnrichmentNote = "no participant genes available to enrich"
		return
	}
	results, err := e.Sources.GProfiler.Enrich(ctx, "hsapiens", genes, []string{"REAC"})
	if err != nil {
		pathway.EnrichmentNote = Note("g:Profiler", err.Error())
		return
	}
	for _, r := range results {
		if r.Source == "REAC" {
			pathway.Enrichment = append(pathway.Enrichment, r)
		}
	}
}
