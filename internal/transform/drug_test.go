package transform_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petrsovadina/biomcp/internal/transform"
)

func TestFromDrugsFDAResults(t *testing.T) {
	raw := []json.RawMessage{
		json.RawMessage(`{
			"application_number": "NDA020350",
			"sponsor_name": "PFIZER",
			"products": [
				{"brand_name": "ZOLOFT"},
				{"brand_name": ""}
			]
		}`),
		json.RawMessage(`{"application_number": "NDA021976", "sponsor_name": "GENERIC CO", "products": []}`),
	}

	out := transform.FromDrugsFDAResults(raw)

	require.Len(t, out, 2)
	assert.Equal(t, "NDA020350", out[0].ApplicationNumber)
	assert.Equal(t, "PFIZER", out[0].SponsorName)
	assert.Equal(t, []string{"ZOLOFT"}, out[0].BrandNames, "empty brand_name entries must not appear")
	assert.Empty(t, out[1].BrandNames)
}

func TestFromDrugsFDAResults_Empty(t *testing.T) {
	out := transform.FromDrugsFDAResults(nil)
	assert.Empty(t, out)
}
