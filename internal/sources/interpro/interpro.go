// Package interpro adapts the InterPro REST API for Protein.get's domains
// section (spec §4.D).
package interpro

import (
	"context"
	"net/url"
	"strconv"

	"github.com/petrsovadina/biomcp/internal/httpsubstrate"
	"github.com/petrsovadina/biomcp/internal/sources/sourcebase"
)

const (
	defaultBaseURL = "https://www.ebi.ac.uk/interpro/api"
	envVar         = "BIOMCP_INTERPRO_BASE"
)

type Client struct {
	sourcebase.Base
}

func NewClient(http *httpsubstrate.Client) *Client {
	return &Client{Base: sourcebase.NewBase("InterPro", defaultBaseURL, envVar, http)}
}

type Domain struct {
	Metadata struct {
		Accession string `json:"accession"`
		Name      string `json:"name"`
		Type      string `json:"type"`
	} `json:"metadata"`
}

type DomainsResponse struct {
	Count   int      `json:"count"`
	Results []Domain `json:"results"`
}

// DomainsForProtein lists InterPro domain annotations for a UniProt
// accession.
func (c *Client) DomainsForProtein(ctx context.Context, accession string, pageSize int) (*DomainsResponse, error) {
	q := url.Values{"page_size": {strconv.Itoa(pageSize)}}
	var out DomainsResponse
	path := "/entry/interpro/protein/uniprot/" + accession
	if err := c.GetJSON(ctx, path, q, httpsubstrate.DefaultAnnotationTTL, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Ping(ctx context.Context) error {
	return c.Base.Ping(ctx, "/entry/interpro?page_size=1")
}
