// Package pmcoa adapts the PMC Open Access full-text service, the final
// fallback in Article.get's full-text path when Europe PMC XML is
// unavailable (spec §4.D).
package pmcoa

import (
	"context"
	"net/url"

	"github.com/petrsovadina/biomcp/internal/httpsubstrate"
	"github.com/petrsovadina/biomcp/internal/sources/sourcebase"
)

const (
	defaultBaseURL = "https://www.ncbi.nlm.nih.gov/pmc/utils/oa"
	envVar         = "BIOMCP_PMCOA_BASE"
)

type Client struct {
	sourcebase.Base
}

func NewClient(http *httpsubstrate.Client) *Client {
	return &Client{Base: sourcebase.NewBase("PMC OA", defaultBaseURL, envVar, http)}
}

// FullTextXML fetches the OA service's JATS/NXML package listing and
// downloads the first matching XML payload for pmcid.
func (c *Client) FullTextXML(ctx context.Context, pmcid string) ([]byte, error) {
	q := url.Values{"id": {pmcid}}
	resp, err := c.GetBytes(ctx, "/oa.fcgi", q, httpsubstrate.DefaultAnnotationTTL)
	if err != nil {
		return nil, err
	}
	return resp.Body, nil
}

func (c *Client) Ping(ctx context.Context) error {
	return c.Base.Ping(ctx, "/oa.fcgi?id=PMC1")
}
