// Package drugsfda adapts the openFDA Drugs@FDA endpoint, used by
// Drug.get's regulatory-approval section (application number, approval
// date, labeling) distinct from the adverse-event/enforcement endpoints
// covered by internal/sources/openfda (spec §4.D).
package drugsfda

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"

	"github.com/petrsovadina/biomcp/internal/httpsubstrate"
	"github.com/petrsovadina/biomcp/internal/sources/sourcebase"
)

const (
	defaultBaseURL = "https://api.fda.gov/drug/drugsfda.json"
	envVar         = "BIOMCP_DRUGSFDA_BASE"
)

type Client struct {
	sourcebase.Base
}

func NewClient(http *httpsubstrate.Client) *Client {
	return &Client{Base: sourcebase.NewBase("Drugs@FDA", defaultBaseURL, envVar, http)}
}

type searchResponse struct {
	Meta struct {
		Results struct {
			Total int `json:"total"`
		} `json:"results"`
	} `json:"meta"`
	Results []json.RawMessage `json:"results"`
}

// SearchByBrandOrGenericName looks up Drugs@FDA application records by
// brand or generic (substance) name.
func (c *Client) SearchByBrandOrGenericName(ctx context.Context, name string, limit, skip int) ([]json.RawMessage, int, error) {
	q := url.Values{
		"search": {`openfda.brand_name:"` + name + `" openfda.generic_name:"` + name + `"`},
		"limit":  {strconv.Itoa(limit)},
		"skip":   {strconv.Itoa(skip)},
	}
	var out searchResponse
	if err := c.GetJSON(ctx, "", q, httpsubstrate.DefaultAnnotationTTL, &out); err != nil {
		return nil, 0, err
	}
	return out.Results, out.Meta.Results.Total, nil
}

func (c *Client) Ping(ctx context.Context) error {
	return c.Base.Ping(ctx, "?limit=1")
}
