package transform

import "github.com/petrsovadina/biomcp/internal/sources/monarch"

// Disease is the internal Disease record (spec §3).
type Disease struct {
	ID          string            `json:"id"`
	Name        string            `json:"name,omitempty"`
	Description string            `json:"description,omitempty"`
	Phenotypes  []monarch.Node    `json:"phenotypes,omitempty"`
}

// Phenotype is the internal Phenotype record (spec §3).
type Phenotype struct {
	ID          string `json:"id"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
}

func FromMonarchDiseaseNode(n *monarch.Node) Disease {
	return Disease{ID: n.ID, Name: n.Name, Description: n.Description}
}

func FromMonarchPhenotypeNode(n *monarch.Node) Phenotype {
	return Phenotype{ID: n.ID, Name: n.Name, Description: n.Description}
}
