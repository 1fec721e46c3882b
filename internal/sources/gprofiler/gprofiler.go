// Package gprofiler adapts g:Profiler's functional enrichment API, used
// by Gene.get's enrichment section and Pathway.get's participant
// enrichment cross-check against Reactome (spec §4.D).
package gprofiler

import (
	"context"

	"github.com/petrsovadina/biomcp/internal/httpsubstrate"
	"github.com/petrsovadina/biomcp/internal/sources/sourcebase"
)

const (
	defaultBaseURL = "https://biit.cs.ut.ee/gprofiler/api"
	envVar         = "BIOMCP_GPROFILER_BASE"
)

type Client struct {
	sourcebase.Base
}

func NewClient(http *httpsubstrate.Client) *Client {
	return &Client{Base: sourcebase.NewBase("g:Profiler", defaultBaseURL, envVar, http)}
}

type EnrichmentResult struct {
	Source      string  `json:"source"` // "REAC", "GO:BP", "KEGG", ...
	NativeID    string  `json:"native"`
	Name        string  `json:"name"`
	PValue      float64 `json:"p_value"`
	Description string  `json:"description,omitempty"`
}

type enrichRequest struct {
	Organism string   `json:"organism"`
	Query    []string `json:"query"`
	Sources  []string `json:"sources,omitempty"`
}

type enrichResponse struct {
	Result []EnrichmentResult `json:"result"`
}

// Enrich runs functional enrichment for a gene list, optionally restricted
// to a set of data sources (e.g. ["REAC"] to keep only Reactome-sourced
// results, per Pathway.get's participant cross-check).
func (c *Client) Enrich(ctx context.Context, organism string, genes []string, sources []string) ([]EnrichmentResult, error) {
	req, err := httpsubstrate.Request{
		API:    c.Name,
		Method: "POST",
		URL:    c.BuildURL("/gost/profile/", nil),
		Parse:  httpsubstrate.ParseJSON,
	}.WithJSONBody(enrichRequest{Organism: organism, Query: genes, Sources: sources})
	if err != nil {
		return nil, err
	}
	resp, err := c.HTTP.Do(ctx, req)
	if err != nil {
		return nil, err
	}
	var out enrichResponse
	if err := resp.JSON(c.Name, &out); err != nil {
		return nil, err
	}
	return out.Result, nil
}

func (c *Client) Ping(ctx context.Context) error {
	return c.Base.Ping(ctx, "/util/organisms_list")
}
