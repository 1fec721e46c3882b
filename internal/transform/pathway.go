package transform

import (
	"github.com/petrsovadina/biomcp/internal/sources/gprofiler"
	"github.com/petrsovadina/biomcp/internal/sources/reactome"
)

// Pathway is the internal Pathway record (spec §3).
type Pathway struct {
	StableID       string                       `json:"stable_id"`
	Name           string                       `json:"name,omitempty"`
	Summary        string                       `json:"summary,omitempty"`
	Species        string                       `json:"species,omitempty"`
	ParticipantGenes []string                   `json:"participant_genes,omitempty"`
	Enrichment     []gprofiler.EnrichmentResult `json:"enrichment,omitempty"`
	EnrichmentNote string                       `json:"enrichment_note,omitempty"`
}

// FromReactomePathway converts a Reactome pathway record into the base
// Pathway record.
func FromReactomePathway(p *reactome.Pathway) Pathway {
	out := Pathway{StableID: p.StID, Name: p.DisplayName}
	if len(p.Summation) > 0 {
		out.Summary = p.Summation[0].Text
	}
	if len(p.Species) > 0 {
		out.Species = p.Species[0].DisplayName
	}
	return out
}
