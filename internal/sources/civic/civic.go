// Package civic adapts the CIViC GraphQL API, the primary source for
// clinical variant-interpretation evidence used by Variant.get's
// evidence-items section (spec §4.D).
package civic

import (
	"context"
	"encoding/json"

	"github.com/petrsovadina/biomcp/internal/bmerrors"
	"github.com/petrsovadina/biomcp/internal/httpsubstrate"
	"github.com/petrsovadina/biomcp/internal/sources/sourcebase"
)

const (
	defaultBaseURL = "https://civicdb.org/api/graphql"
	envVar         = "BIOMCP_CIVIC_BASE"
)

type Client struct {
	sourcebase.Base
}

func NewClient(http *httpsubstrate.Client) *Client {
	return &Client{Base: sourcebase.NewBase("CIViC", defaultBaseURL, envVar, http)}
}

type gqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type gqlError struct {
	Message string `json:"message"`
}

type gqlResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []gqlError      `json:"errors,omitempty"`
}

const evidenceItemsForVariantQuery = `
query VariantEvidence($variantName: String!) {
  variants(name: $variantName) {
    nodes {
      id
      name
      evidenceItems {
        nodes {
          id
          significance
          evidenceLevel
          evidenceType
          description
          disease { name }
          therapies { name }
        }
      }
    }
  }
}`

// EvidenceItemsForVariant fetches CIViC evidence items for a variant name
// (e.g. "V600E") and returns the raw "data" payload for transform-layer
// extraction via gjson, since CIViC's GraphQL schema nests several levels
// deep and only a subset of fields matter per call site.
func (c *Client) EvidenceItemsForVariant(ctx context.Context, variantName string) (json.RawMessage, error) {
	return c.query(ctx, evidenceItemsForVariantQuery, map[string]any{"variantName": variantName})
}

func (c *Client) query(ctx context.Context, query string, variables map[string]any) (json.RawMessage, error) {
	req, err := httpsubstrate.Request{
		API:    c.Name,
		Method: "POST",
		URL:    c.BuildURL("", nil),
	}.WithJSONBody(gqlRequest{Query: query, Variables: variables})
	if err != nil {
		return nil, err
	}
	req.CacheTTL = httpsubstrate.DefaultAnnotationTTL

	resp, err := c.HTTP.Do(ctx, req)
	if err != nil {
		return nil, err
	}
	var out gqlResponse
	if err := resp.JSON(c.Name, &out); err != nil {
		return nil, err
	}
	if len(out.Errors) > 0 {
		return nil, bmerrors.NewApi(c.Name, out.Errors[0].Message, nil)
	}
	return out.Data, nil
}

func (c *Client) Ping(ctx context.Context) error {
	_, err := c.query(ctx, "query { variants(first: 1) { nodes { id } } }", nil)
	return err
}
