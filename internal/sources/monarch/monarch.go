// Package monarch adapts the Monarch Initiative API, the primary source
// for Phenotype.get and gene-to-phenotype / disease-to-phenotype pivots
// (spec §4.D, §4.E).
package monarch

import (
	"context"
	"net/url"
	"strconv"

	"github.com/petrsovadina/biomcp/internal/httpsubstrate"
	"github.com/petrsovadina/biomcp/internal/sources/sourcebase"
)

const (
	defaultBaseURL = "https://api-v3.monarchinitiative.org/v3/api"
	envVar         = "BIOMCP_MONARCH_BASE"
)

type Client struct {
	sourcebase.Base
}

func NewClient(http *httpsubstrate.Client) *Client {
	return &Client{Base: sourcebase.NewBase("Monarch", defaultBaseURL, envVar, http)}
}

// Node is a Monarch entity node (phenotype, disease, or gene).
type Node struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description,omitempty"`
}

type nodeResponse struct {
	Items []Node `json:"items"`
	Total int    `json:"total"`
}

// GetByID fetches a single phenotype/disease/gene node by curie (e.g.
// "HP:0001250").
func (c *Client) GetByID(ctx context.Context, curie string) (*Node, error) {
	var out Node
	if err := c.GetJSON(ctx, "/entity/"+curie, nil, httpsubstrate.DefaultAnnotationTTL, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AssociationsForSubject lists associations (e.g. gene-to-phenotype,
// disease-to-phenotype) where the given curie is the subject, filtered to
// a category like "biolink:GeneToPhenotypicFeatureAssociation".
func (c *Client) AssociationsForSubject(ctx context.Context, subjectCurie, category string, limit, offset int) (*nodeResponse, error) {
	q := url.Values{
		"subject":  {subjectCurie},
		"limit":    {strconv.Itoa(limit)},
		"offset":   {strconv.Itoa(offset)},
	}
	if category != "" {
		q.Set("category", category)
	}
	var out nodeResponse
	if err := c.GetJSON(ctx, "/association", q, httpsubstrate.DefaultAnnotationTTL, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Search performs a free-text entity search.
func (c *Client) Search(ctx context.Context, query string, category string, limit, offset int) (*nodeResponse, error) {
	q := url.Values{
		"q":      {query},
		"limit":  {strconv.Itoa(limit)},
		"offset": {strconv.Itoa(offset)},
	}
	if category != "" {
		q.Set("category", category)
	}
	var out nodeResponse
	if err := c.GetJSON(ctx, "/search", q, httpsubstrate.DefaultSearchTTL, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Ping(ctx context.Context) error {
	return c.Base.Ping(ctx, "/entity/HP:0001250")
}
