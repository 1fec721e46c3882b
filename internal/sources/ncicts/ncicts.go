// Package ncicts adapts the NCI Clinical Trials Search API, the
// alternate dispatch target for Trial.get/search when `source=nci` (spec
// §4.D).
package ncicts

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"

	"github.com/petrsovadina/biomcp/internal/httpsubstrate"
	"github.com/petrsovadina/biomcp/internal/sources/sourcebase"
)

const (
	defaultBaseURL = "https://clinicaltrialsapi.cancer.gov/api/v2"
	envVar         = "BIOMCP_NCICTS_BASE"
)

type Client struct {
	sourcebase.Base
}

func NewClient(http *httpsubstrate.Client) *Client {
	return &Client{Base: sourcebase.NewBase("NCI CTS", defaultBaseURL, envVar, http)}
}

type SearchResponse struct {
	Total int               `json:"total"`
	Data  []json.RawMessage `json:"data"`
}

func (c *Client) GetByNCT(ctx context.Context, nct string) (json.RawMessage, error) {
	q := url.Values{"nct_id": {nct}}
	var out SearchResponse
	if err := c.GetJSON(ctx, "/trials", q, httpsubstrate.DefaultAnnotationTTL, &out); err != nil {
		return nil, err
	}
	if len(out.Data) == 0 {
		return nil, nil
	}
	return out.Data[0], nil
}

func (c *Client) Search(ctx context.Context, params url.Values, size, from int) (*SearchResponse, error) {
	q := url.Values{}
	for k, v := range params {
		q[k] = v
	}
	q.Set("size", strconv.Itoa(size))
	q.Set("from", strconv.Itoa(from))
	var out SearchResponse
	if err := c.GetJSON(ctx, "/trials", q, httpsubstrate.DefaultSearchTTL, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Ping(ctx context.Context) error {
	return c.Base.Ping(ctx, "/trials?size=1")
}
