package entities

import "github.com/petrsovadina/biomcp/internal/cache"

// Engines bundles one orchestrator per entity against a shared Sources
// and Cache, so cmd/biomcp and internal/cross construct the whole engine
// graph once per process.
type Engines struct {
	Gene         *GeneEngine
	Variant      *VariantEngine
	Article      *ArticleEngine
	Trial        *TrialEngine
	Pathway      *PathwayEngine
	Protein      *ProteinEngine
	PGx          *PGxEngine
	Drug         *DrugEngine
	Disease      *DiseaseEngine
	Phenotype    *PhenotypeEngine
	GWAS         *GWASEngine
	AdverseEvent *AdverseEventEngine
	Organization *OrganizationEngine
	Intervention *InterventionEngine
	Biomarker    *BiomarkerEngine
}

// NewEngines constructs every entity orchestrator against the shared
// Sources and cache Store.
func NewEngines(sources *Sources, store *cache.Store) *Engines {
	return &Engines{
		Gene:         &GeneEngine{Sources: sources},
		Variant:      &VariantEngine{Sources: sources},
		Article:      &ArticleEngine{Sources: sources, Cache: store},
		Trial:        &TrialEngine{Sources: sources},
		Pathway:      &PathwayEngine{Sources: sources},
		Protein:      &ProteinEngine{Sources: sources},
		PGx:          &PGxEngine{Sources: sources},
		Drug:         &DrugEngine{Sources: sources},
		Disease:      &DiseaseEngine{Sources: sources},
		Phenotype:    &PhenotypeEngine{Sources: sources},
		GWAS:         &GWASEngine{Sources: sources},
		AdverseEvent: &AdverseEventEngine{Sources: sources},
		Organization: &OrganizationEngine{Sources: sources},
		Intervention: &InterventionEngine{Sources: sources},
		Biomarker:    &BiomarkerEngine{Sources: sources},
	}
}
