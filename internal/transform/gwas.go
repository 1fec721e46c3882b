package transform

import "github.com/petrsovadina/biomcp/internal/sources/gwascatalog"

// GWASAssociation is the internal GWAS Catalog record (spec §3).
type GWASAssociation struct {
	RsID          string  `json:"rsid,omitempty"`
	Trait         string  `json:"trait,omitempty"`
	PValue        float64 `json:"p_value"`
	RiskAllele    string  `json:"risk_allele,omitempty"`
	RiskFrequency string  `json:"risk_frequency,omitempty"`
	OrPerCopyNum  float64 `json:"or_per_copy_num,omitempty"`
	PubmedID      string  `json:"pubmed_id,omitempty"`
}

func FromGWASCatalogAssociation(rsID string, a gwascatalog.Association) GWASAssociation {
	return GWASAssociation{
		RsID:          rsID,
		Trait:         a.Trait,
		PValue:        a.PValue,
		RiskAllele:    a.RiskAllele,
		RiskFrequency: a.RiskFrequency,
		OrPerCopyNum:  a.OrPerCopyNum,
		PubmedID:      a.PubmedID,
	}
}
