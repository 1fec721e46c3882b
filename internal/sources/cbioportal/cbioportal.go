// Package cbioportal adapts the cBioPortal REST API, used by Variant.get
// and Gene.get for cohort-level mutation-frequency context (spec §4.D).
package cbioportal

import (
	"context"
	"net/url"
	"strconv"

	"github.com/petrsovadina/biomcp/internal/httpsubstrate"
	"github.com/petrsovadina/biomcp/internal/sources/sourcebase"
)

const (
	defaultBaseURL = "https://www.cbioportal.org/api"
	envVar         = "BIOMCP_CBIOPORTAL_BASE"
)

type Client struct {
	sourcebase.Base
}

func NewClient(http *httpsubstrate.Client) *Client {
	return &Client{Base: sourcebase.NewBase("cBioPortal", defaultBaseURL, envVar, http)}
}

// MutationCount is one gene's mutation-frequency summary across a study.
type MutationCount struct {
	EntrezGeneID     int     `json:"entrezGeneId"`
	HugoGeneSymbol   string  `json:"hugoGeneSymbol"`
	NumberOfSamples  int     `json:"numberOfAlteredCases"`
	ProfiledSamples  int     `json:"numberOfProfiledCases"`
	Frequency        float64 `json:"frequency,omitempty"`
}

// MutationFrequency fetches mutation counts for a gene within a molecular
// profile (study-specific mutation dataset), computing Frequency
// client-side since the endpoint reports raw counts.
func (c *Client) MutationFrequency(ctx context.Context, molecularProfileID string, entrezGeneID int) (*MutationCount, error) {
	q := url.Values{}
	var out []MutationCount
	path := "/molecular-profiles/" + molecularProfileID + "/mutation-counts"
	q.Set("geneIdType", "ENTREZ_GENE_ID")
	q.Set("geneId", strconv.Itoa(entrezGeneID))
	if err := c.GetJSON(ctx, path, q, httpsubstrate.DefaultAnnotationTTL, &out); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, nil
	}
	result := out[0]
	if result.ProfiledSamples > 0 {
		result.Frequency = float64(result.NumberOfSamples) / float64(result.ProfiledSamples)
	}
	return &result, nil
}

func (c *Client) Ping(ctx context.Context) error {
	return c.Base.Ping(ctx, "/studies?pageSize=1")
}
