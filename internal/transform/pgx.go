package transform

import (
	"github.com/petrsovadina/biomcp/internal/sources/cpic"
	"github.com/petrsovadina/biomcp/internal/sources/pharmgkb"
)

// PGx is the internal pharmacogenomics record (spec §3), keyed by
// whichever of gene/drug the caller supplied plus its resolved
// counterpart when recommendations/annotations name one.
type PGx struct {
	Gene                string                        `json:"gene,omitempty"`
	Drug                string                        `json:"drug,omitempty"`
	Recommendations     []cpic.Recommendation         `json:"recommendations,omitempty"`
	RecommendationsNote string                        `json:"recommendations_note,omitempty"`
	Frequencies         []PGxFrequency                `json:"frequencies,omitempty"`
	FrequenciesNote     string                        `json:"frequencies_note,omitempty"`
	Guidelines          []cpic.Guideline              `json:"guidelines,omitempty"`
	GuidelineNames      []string                      `json:"guideline_names,omitempty"`
	GuidelinesNote      string                        `json:"guidelines_note,omitempty"`
	Annotations         []pharmgkb.ClinicalAnnotation `json:"annotations,omitempty"`
	AnnotationsNote     string                        `json:"annotations_note,omitempty"`
	Note                string                        `json:"note,omitempty"`
}

// PGxFrequency is one deduplicated CPIC allele-frequency row.
type PGxFrequency struct {
	Gene       string  `json:"gene"`
	Allele     string  `json:"allele"`
	Population string  `json:"population"`
	Frequency  float64 `json:"frequency"`
}

// DedupeFrequencies collapses CPIC allele-frequency rows by
// (gene,allele,population), first-seen wins (spec §4.D).
func DedupeFrequencies(freqs []cpic.AlleleFrequency) []PGxFrequency {
	seen := make(map[string]bool, len(freqs))
	out := make([]PGxFrequency, 0, len(freqs))
	for _, f := range freqs {
		key := f.Gene + "|" + f.Allele + "|" + f.Population
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, PGxFrequency{Gene: f.Gene, Allele: f.Allele, Population: f.Population, Frequency: f.Frequency})
	}
	return out
}

// RecommendationsFromPairs derives a minimal recommendation list from
// CPIC gene-drug pair rows, for when /recommendation returns nothing but
// /pair still names a covering guideline (spec §4.D).
func RecommendationsFromPairs(pairs []cpic.Pair) []cpic.Recommendation {
	out := make([]cpic.Recommendation, 0, len(pairs))
	for _, p := range pairs {
		out = append(out, cpic.Recommendation{
			DrugID:         p.DrugID,
			Classification: p.CPICLevel,
			RecommendationText: "derived from the CPIC gene-drug pair catalog; see guideline: " + p.GuidelineName,
		})
	}
	return out
}

// GuidelineNamesFromPairs collects distinct guideline names out of CPIC
// pair rows, the fallback used when the guideline summary endpoint is
// empty (spec §4.D).
func GuidelineNamesFromPairs(pairs []cpic.Pair) []string {
	seen := make(map[string]bool, len(pairs))
	out := make([]string, 0, len(pairs))
	for _, p := range pairs {
		if p.GuidelineName == "" || seen[p.GuidelineName] {
			continue
		}
		seen[p.GuidelineName] = true
		out = append(out, p.GuidelineName)
	}
	return out
}
