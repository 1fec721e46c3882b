// Package idconverter adapts the NCBI ID Converter API, used to resolve
// between PMID/PMCID/DOI when Europe PMC does not have the cross-
// reference (spec §4.D).
package idconverter

import (
	"context"
	"net/url"
	"os"

	"github.com/petrsovadina/biomcp/internal/httpsubstrate"
	"github.com/petrsovadina/biomcp/internal/sources/sourcebase"
)

const (
	defaultBaseURL = "https://www.ncbi.nlm.nih.gov/pmc/utils/idconv/v1.0"
	envVar         = "BIOMCP_IDCONVERTER_BASE"
)

type Client struct {
	sourcebase.Base
}

func NewClient(http *httpsubstrate.Client) *Client {
	return &Client{Base: sourcebase.NewBase("NCBI ID converter", defaultBaseURL, envVar, http)}
}

type Record struct {
	PMCID  string `json:"pmcid"`
	PMID   string `json:"pmid"`
	DOI    string `json:"doi"`
	Status string `json:"status,omitempty"`
}

type Response struct {
	Records []Record `json:"records"`
}

// Convert resolves one identifier (PMID, PMCID, or DOI) to its siblings.
func (c *Client) Convert(ctx context.Context, id string) (*Record, error) {
	q := url.Values{"ids": {id}, "format": {"json"}}
	var out Response
	if apiKey := os.Getenv("NCBI_API_KEY"); apiKey != "" {
		q.Set("api_key", apiKey)
	}
	if err := c.GetJSON(ctx, "/", q, httpsubstrate.DefaultAnnotationTTL, &out); err != nil {
		return nil, err
	}
	if len(out.Records) == 0 {
		return nil, nil
	}
	return &out.Records[0], nil
}

func (c *Client) Ping(ctx context.Context) error {
	return c.Base.Ping(ctx, "/?ids=PMC1&format=json")
}
