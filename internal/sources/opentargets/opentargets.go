// Package opentargets adapts the Open Targets Platform GraphQL API, used
// for Gene.get's target-disease association section and Disease.get's
// associated-targets pivot (spec §4.D, §4.E).
package opentargets

import (
	"context"
	"encoding/json"

	"github.com/petrsovadina/biomcp/internal/bmerrors"
	"github.com/petrsovadina/biomcp/internal/httpsubstrate"
	"github.com/petrsovadina/biomcp/internal/sources/sourcebase"
)

const (
	defaultBaseURL = "https://api.platform.opentargets.org/api/v4/graphql"
	envVar         = "BIOMCP_OPENTARGETS_BASE"
)

type Client struct {
	sourcebase.Base
}

func NewClient(http *httpsubstrate.Client) *Client {
	return &Client{Base: sourcebase.NewBase("Open Targets", defaultBaseURL, envVar, http)}
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

const targetDiseaseAssociationsQuery = `
query TargetAssociations($ensemblId: String!, $size: Int!) {
  target(ensemblId: $ensemblId) {
    id
    approvedSymbol
    associatedDiseases(page: { index: 0, size: $size }) {
      count
      rows {
        score
        disease { id name }
        datatypeScores { id score }
      }
    }
  }
}`

// AssociatedDiseases fetches disease associations for an Ensembl gene ID,
// returning the raw "data" payload for transform-layer field extraction.
func (c *Client) AssociatedDiseases(ctx context.Context, ensemblID string, size int) (json.RawMessage, error) {
	return c.query(ctx, targetDiseaseAssociationsQuery, map[string]any{"ensemblId": ensemblID, "size": size})
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
	_, err := c.query(ctx, "query { meta { name } }", nil)
	return err
}
