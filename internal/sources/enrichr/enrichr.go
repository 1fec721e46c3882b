// Package enrichr adapts the Enrichr gene-set enrichment API, the
// secondary enrichment provider consulted by Gene.get alongside
// g:Profiler (spec §4.D).
package enrichr

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/petrsovadina/biomcp/internal/bmerrors"
	"github.com/petrsovadina/biomcp/internal/httpsubstrate"
	"github.com/petrsovadina/biomcp/internal/sources/sourcebase"
)

const (
	defaultBaseURL = "https://maayanlab.cloud/Enrichr"
	envVar         = "BIOMCP_ENRICHR_BASE"
)

type Client struct {
	sourcebase.Base
}

func NewClient(http *httpsubstrate.Client) *Client {
	return &Client{Base: sourcebase.NewBase("Enrichr", defaultBaseURL, envVar, http)}
}

// Term is one enriched gene-set library term.
type Term struct {
	Rank        int
	Name        string
	PValue      float64
	OddsRatio   float64
	AdjPValue   float64
	GenesInTerm []string
}

type addListResponse struct {
	UserListID int `json:"userListId"`
}

// AddList registers a gene list with Enrichr and returns the list ID used
// by Enrich, mirroring Enrichr's two-step submit-then-query workflow.
func (c *Client) AddList(ctx context.Context, genes []string, description string) (int, error) {
	form := url.Values{
		"list":        {strings.Join(genes, "\n")},
		"description": {description},
	}
	req := httpsubstrate.Request{
		API:    c.Name,
		Method: "POST",
		URL:    c.BuildURL("/addList", nil),
		Body:   []byte(form.Encode()),
		Header: http.Header{"Content-Type": {"application/x-www-form-urlencoded"}},
		Parse:  httpsubstrate.ParseJSON,
	}

	resp, err := c.HTTP.Do(ctx, req)
	if err != nil {
		return 0, err
	}
	var out addListResponse
	if err := resp.JSON(c.Name, &out); err != nil {
		return 0, err
	}
	return out.UserListID, nil
}

// enrichRow mirrors Enrichr's positional JSON array rows:
// [rank, term name, p-value, odds ratio, combined score, genes, adj p-value, ...]
type enrichRow []any

// Enrich fetches enrichment results for a previously-registered list
// against one gene-set library (e.g. "Reactome_2022").
func (c *Client) Enrich(ctx context.Context, userListID int, library string) ([]Term, error) {
	q := url.Values{
		"userListId":     {fmt.Sprintf("%d", userListID)},
		"backgroundType": {library},
	}
	var out map[string][]enrichRow
	if err := c.GetJSON(ctx, "/enrich", q, httpsubstrate.DefaultAnnotationTTL, &out); err != nil {
		return nil, err
	}
	rows, ok := out[library]
	if !ok {
		return nil, bmerrors.NewApi(c.Name, fmt.Sprintf("library %q missing from response", library), nil)
	}

	terms := make([]Term, 0, len(rows))
	for _, row := range rows {
		if len(row) < 7 {
			continue
		}
		t := Term{}
		if rank, ok := row[0].(float64); ok {
			t.Rank = int(rank)
		}
		if name, ok := row[1].(string); ok {
			t.Name = name
		}
		if p, ok := row[2].(float64); ok {
			t.PValue = p
		}
		if oddsRatio, ok := row[3].(float64); ok {
			t.OddsRatio = oddsRatio
		}
		if genes, ok := row[5].([]any); ok {
			for _, g := range genes {
				if s, ok := g.(string); ok {
					t.GenesInTerm = append(t.GenesInTerm, s)
				}
			}
		}
		if adj, ok := row[6].(float64); ok {
			t.AdjPValue = adj
		}
		terms = append(terms, t)
	}
	return terms, nil
}

func (c *Client) Ping(ctx context.Context) error {
	return c.Base.Ping(ctx, "/datasetStatistics")
}
