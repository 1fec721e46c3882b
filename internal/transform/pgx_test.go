package transform_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/petrsovadina/biomcp/internal/sources/cpic"
	"github.com/petrsovadina/biomcp/internal/transform"
)

func TestDedupeFrequencies(t *testing.T) {
	in := []cpic.AlleleFrequency{
		{Gene: "CYP2D6", Allele: "*1", Population: "African American/Afro-Caribbean", Frequency: 0.5},
		{Gene: "CYP2D6", Allele: "*1", Population: "African American/Afro-Caribbean", Frequency: 0.5},
		{Gene: "CYP2D6", Allele: "*4", Population: "African American/Afro-Caribbean", Frequency: 0.1},
		{Gene: "CYP2D6", Allele: "*1", Population: "East Asian", Frequency: 0.7},
	}

	out := transform.DedupeFrequencies(in)

	assert.Len(t, out, 3, "duplicate (gene,allele,population) row must collapse to one")
	assert.Equal(t, "*1", out[0].Allele)
	assert.Equal(t, "East Asian", out[2].Population)
}

func TestDedupeFrequencies_Empty(t *testing.T) {
	out := transform.DedupeFrequencies(nil)
	assert.Empty(t, out)
}

func TestRecommendationsFromPairs(t *testing.T) {
	pairs := []cpic.Pair{
		{GeneSymbol: "CYP2D6", DrugID: "codeine", GuidelineName: "CYP2D6 and Codeine", CPICLevel: "A"},
	}

	out := transform.RecommendationsFromPairs(pairs)

	assert.Len(t, out, 1)
	assert.Equal(t, "codeine", out[0].DrugID)
	assert.Equal(t, "A", out[0].Classification)
	assert.Contains(t, out[0].RecommendationText, "CYP2D6 and Codeine")
}

func TestGuidelineNamesFromPairs(t *testing.T) {
	pairs := []cpic.Pair{
		{GuidelineName: "CYP2D6 and Codeine"},
		{GuidelineName: "CYP2D6 and Codeine"},
		{GuidelineName: ""},
		{GuidelineName: "CYP2C19 and Clopidogrel"},
	}

	out := transform.GuidelineNamesFromPairs(pairs)

	assert.Equal(t, []string{"CYP2D6 and Codeine", "CYP2C19 and Clopidogrel"}, out)
}
