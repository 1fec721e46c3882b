package entities

import (
	"context"
	"strings"

	"github.com/petrsovadina/biomcp/internal/ids"
	"github.com/petrsovadina/biomcp/internal/transform"
)

// PGxSections is the enumeration accepted by PGx.get's sections argument
// (spec §4.D's representative PGx.get pipeline).
var PGxSections = []string{"recommendations", "frequencies", "guidelines", "annotations"}

type PGxEngine struct {
	Sources *Sources
}

// Get detects whether geneOrDrug names a gene (HGNC-like shape) or a
// drug, then runs the requested sections concurrently (spec §4.D).
func (e *PGxEngine) Get(ctx context.Context, geneOrDrug, counterpart string, sectionTokens []string) (*transform.PGx, error) {
	sections, err := ParseSections(sectionTokens, PGxSections)
	if err != nil {
		return nil, err
	}

	out := &transform.PGx{}
	var gene, drug string
	if ids.ValidateGeneSymbol(strings.ToUpper(geneOrDrug)) == nil {
		gene, drug = strings.ToUpper(geneOrDrug), counterpart
	} else {
		gene, drug = strings.ToUpper(counterpart), geneOrDrug
	}
	out.Gene, out.Drug = gene, drug
	if gene == "" {
		out.Note = "no gene could be determined for this lookup; pass a gene symbol or a gene,drug pair"
		return out, nil
	}

	var enrichments []SectionEnrichment
	if sections["recommendations"] {
		enrichments = append(enrichments, SectionEnrichment{Name: "recommendations", Apply: func(ctx context.Context) error {
			recs, err := e.Sources.CPIC.RecommendationsForGeneDrug(ctx, gene, drug)
			if err != nil {
				out.RecommendationsNote = Note("CPIC", err.Error())
				return err
			}
			if len(recs) == 0 && drug != "" {
				pairs, pErr := e.Sources.CPIC.PairsForGeneDrug(ctx, gene, drug)
				if pErr == nil && len(pairs) > 0 {
					recs = transform.RecommendationsFromPairs(pairs)
				}
			}
			out.Recommendations = recs
			return nil
		}})
	}
	if sections["frequencies"] {
		enrichments = append(enrichments, SectionEnrichment{Name: "frequencies", Apply: func(ctx context.Context) error {
			freqs, err := e.Sources.CPIC.FrequenciesForGene(ctx, gene)
			if err != nil {
				out.FrequenciesNote = Note("CPIC", err.Error())
				return err
			}
			out.Frequencies = transform.DedupeFrequencies(freqs)
			return nil
		}})
	}
	if sections["guidelines"] {
		enrichments = append(enrichments, SectionEnrichment{Name: "guidelines", Apply: func(ctx context.Context) error {
			guidelines, err := e.Sources.CPIC.GuidelinesForGene(ctx, gene)
			if err != nil {
				out.GuidelinesNote = Note("CPIC", err.Error())
				return err
			}
			if len(guidelines) > 0 {
				out.Guidelines = guidelines
				return nil
			}
			pairs, pErr := e.Sources.CPIC.PairsForGeneDrug(ctx, gene, drug)
			if pErr != nil {
				out.GuidelinesNote = Note("CPIC", "guideline summary empty; pair fallback also failed: "+pErr.Error())
				return nil
			}
			out.GuidelineNames = transform.GuidelineNamesFromPairs(pairs)
			return nil
		}})
	}
	if sections["annotations"] {
		enrichments = append(enrichments, SectionEnrichment{Name: "annotations", Apply: func(ctx context.Context) error {
			annotations, err := e.Sources.PharmGKB.ClinicalAnnotationsForGene(ctx, gene, 20)
			if err != nil {
				out.AnnotationsNote = Note("PharmGKB", err.Error())
				return err
			}
			out.Annotations = annotations
			return nil
		}})
	}

	RunSections(ctx, enrichments)
	return out, nil
}
