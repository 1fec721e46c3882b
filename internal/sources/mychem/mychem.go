// Package mychem adapts MyChem.info, a primary source for Drug.get and
// Drug.search (spec §4.B).
package mychem

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"

	"github.com/petrsovadina/biomcp/internal/httpsubstrate"
	"github.com/petrsovadina/biomcp/internal/sources/sourcebase"
)

const (
	defaultBaseURL = "https://mychem.info/v1"
	envVar         = "BIOMCP_MYCHEM_BASE"
)

type Client struct {
	sourcebase.Base
}

func NewClient(http *httpsubstrate.Client) *Client {
	return &Client{Base: sourcebase.NewBase("MyChem", defaultBaseURL, envVar, http)}
}

type Hit struct {
	ID           string          `json:"_id"`
	DrugbankID   string          `json:"drugbank_id"`
	Name         string          `json:"name"`
	Chembl       json.RawMessage `json:"chembl"`
	Drugbank     json.RawMessage `json:"drugbank"`
	Unii         json.RawMessage `json:"unii"`
	PharmgkbAnno json.RawMessage `json:"pharmgkb"`
}

type SearchResponse struct {
	Total int   `json:"total"`
	Hits  []Hit `json:"hits"`
}

func (c *Client) GetByID(ctx context.Context, id string) (*Hit, error) {
	var hit Hit
	if err := c.GetJSON(ctx, "/chem/"+url.PathEscape(id), nil, httpsubstrate.DefaultAnnotationTTL, &hit); err != nil {
		return nil, err
	}
	return &hit, nil
}

func (c *Client) Search(ctx context.Context, query string, limit, offset int) (*SearchResponse, error) {
	q := url.Values{
		"q":    {query},
		"size": {strconv.Itoa(limit)},
		"from": {strconv.Itoa(offset)},
	}
	var out SearchResponse
	if err := c.GetJSON(ctx, "/query", q, httpsubstrate.DefaultSearchTTL, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Ping(ctx context.Context) error {
	return c.Base.Ping(ctx, "/metadata")
}
