// Package cosmic adapts the COSMIC (Catalogue of Somatic Mutations in
// Cancer) search API, consulted for Variant.get's cancer-recurrence
// section (spec §4.D). COSMIC gates most endpoints behind a licensed
// account; callers without credentials get a NotFound-shaped empty
// result rather than a hard failure, matching the documented "explanatory
// note rather than failing" posture for gated sources (spec §6).
package cosmic

import (
	"context"
	"net/url"
	"os"

	"github.com/petrsovadina/biomcp/internal/httpsubstrate"
	"github.com/petrsovadina/biomcp/internal/sources/sourcebase"
)

const (
	defaultBaseURL = "https://cancer.sanger.ac.uk/cosmic/search"
	envVar         = "BIOMCP_COSMIC_BASE"
	tokenEnvVar    = "COSMIC_API_TOKEN"
)

type Client struct {
	sourcebase.Base
}

func NewClient(http *httpsubstrate.Client) *Client {
	return &Client{Base: sourcebase.NewBase("COSMIC", defaultBaseURL, envVar, http)}
}

// Authorized reports whether a COSMIC API token is configured.
func (c *Client) Authorized() bool {
	return os.Getenv(tokenEnvVar) != ""
}

// Mutation is one COSMIC mutation-search hit.
type Mutation struct {
	GeneName      string `json:"gene_name"`
	MutationAA    string `json:"mutation_aa"`
	MutationCDS   string `json:"mutation_cds"`
	PrimarySite   string `json:"primary_site"`
	PrimaryHistology string `json:"primary_histology"`
	SampleCount   int    `json:"sample_count"`
}

type searchResponse struct {
	Results []Mutation `json:"results"`
}

// SearchByGeneAAChange searches COSMIC for a gene and protein-change pair
// (e.g. BRAF, p.V600E). Returns an empty slice, not an error, when no
// token is configured.
func (c *Client) SearchByGeneAAChange(ctx context.Context, gene, aaChange string) ([]Mutation, error) {
	if !c.Authorized() {
		return nil, nil
	}
	q := url.Values{
		"gene":     {gene},
		"mutation": {aaChange},
		"token":    {os.Getenv(tokenEnvVar)},
	}
	var out searchResponse
	if err := c.GetJSON(ctx, "", q, httpsubstrate.DefaultAnnotationTTL, &out); err != nil {
		return nil, err
	}
	return out.Results, nil
}

func (c *Client) Ping(ctx context.Context) error {
	if !c.Authorized() {
		return nil
	}
	return c.Base.Ping(ctx, "?gene=BRAF&token="+os.Getenv(tokenEnvVar))
}
