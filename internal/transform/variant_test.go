package transform_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petrsovadina/biomcp/internal/sources/cgi"
	"github.com/petrsovadina/biomcp/internal/sources/cosmic"
	"github.com/petrsovadina/biomcp/internal/sources/gwascatalog"
	"github.com/petrsovadina/biomcp/internal/transform"
)

func TestFromCOSMICMutations(t *testing.T) {
	out := transform.FromCOSMICMutations([]cosmic.Mutation{
		{GeneName: "BRAF", MutationAA: "p.V600E", PrimarySite: "skin", SampleCount: 42},
	})

	require.Len(t, out, 1)
	assert.Equal(t, "BRAF", out[0].Gene)
	assert.Equal(t, "p.V600E", out[0].MutationAA)
	assert.Equal(t, 42, out[0].SampleCount)
}

func TestFromCGIBiomarkers(t *testing.T) {
	out := transform.FromCGIBiomarkers([]cgi.Biomarker{
		{Gene: "EGFR", Alteration: "T790M", Drug: "Osimertinib", AssociatedWith: "Responsive", Evidence: "A", Tumor: "NSCLC"},
	})

	require.Len(t, out, 1)
	assert.Equal(t, "Osimertinib", out[0].Drug)
	assert.Equal(t, "Responsive", out[0].Association)
}

func TestFromCIViCEvidence(t *testing.T) {
	raw := json.RawMessage(`{
		"variants": {"nodes": [{
			"evidenceItems": {"nodes": [
				{"id": "123", "significance": "SENSITIVITYRESPONSE", "evidenceLevel": "A", "evidenceType": "PREDICTIVE",
				 "description": "...", "disease": {"name": "Lung Cancer"},
				 "therapies": [{"name": "Osimertinib"}, {"name": "Gefitinib"}]}
			]}
		}]}
	}`)

	out := transform.FromCIViCEvidence(raw)

	require.Len(t, out, 1)
	assert.Equal(t, "123", out[0].ID)
	assert.Equal(t, "Lung Cancer", out[0].Disease)
	assert.Equal(t, []string{"Osimertinib", "Gefitinib"}, out[0].Therapies)
}

func TestFromCIViCEvidence_NoMatch(t *testing.T) {
	out := transform.FromCIViCEvidence(json.RawMessage(`{"variants": {"nodes": []}}`))
	assert.Empty(t, out)
}

func TestFromGWASAssociations(t *testing.T) {
	out := transform.FromGWASAssociations([]gwascatalog.Association{
		{Trait: "Type 2 diabetes", RiskAllele: "rs123-A", PValue: 1e-12, PubmedID: "22222222"},
	})

	require.Len(t, out, 1)
	assert.Equal(t, "Type 2 diabetes", out[0].Trait)
	assert.Equal(t, "22222222", out[0].PubmedID)
}
