// Package openfda adapts the openFDA API's drug event, drug enforcement
// (recalls), and device event endpoints, used by AdverseEvent.get/search
// and Drug.get's safety-signal section (spec §4.B, §4.D).
package openfda

import (
	"context"
	"encoding/json"
	"net/url"
	"os"
	"strconv"

	"github.com/petrsovadina/biomcp/internal/httpsubstrate"
	"github.com/petrsovadina/biomcp/internal/sources/sourcebase"
)

const (
	defaultBaseURL = "https://api.fda.gov"
	envVar         = "BIOMCP_OPENFDA_BASE"
	apiKeyEnvVar   = "OPENFDA_API_KEY"
)

type Client struct {
	sourcebase.Base
}

func NewClient(http *httpsubstrate.Client) *Client {
	return &Client{Base: sourcebase.NewBase("openFDA", defaultBaseURL, envVar, http)}
}

// Each result row's payload shape varies enough between the event and
// enforcement-report endpoints that rows are kept as json.RawMessage and
// picked apart in internal/transform using gjson.
type searchResponse struct {
	Meta struct {
		Results struct {
			Total int `json:"total"`
			Limit int `json:"limit"`
			Skip  int `json:"skip"`
		} `json:"results"`
	} `json:"meta"`
	Results []json.RawMessage `json:"results"`
}

// SearchDrugEvents queries the FAERS drug-event endpoint (/drug/event.json)
// with a raw Lucene search string built by internal/filters.
func (c *Client) SearchDrugEvents(ctx context.Context, search string, limit, skip int) ([]json.RawMessage, int, error) {
	return c.search(ctx, "/drug/event.json", search, limit, skip)
}

// SearchDrugRecalls queries the drug enforcement endpoint
// (/drug/enforcement.json), used for Drug.get's recall cross-check.
func (c *Client) SearchDrugRecalls(ctx context.Context, search string, limit, skip int) ([]json.RawMessage, int, error) {
	return c.search(ctx, "/drug/enforcement.json", search, limit, skip)
}

// SearchDeviceEvents queries the device-event endpoint
// (/device/event.json).
func (c *Client) SearchDeviceEvents(ctx context.Context, search string, limit, skip int) ([]json.RawMessage, int, error) {
	return c.search(ctx, "/device/event.json", search, limit, skip)
}

func (c *Client) search(ctx context.Context, path, search string, limit, skip int) ([]json.RawMessage, int, error) {
	q := url.Values{
		"search": {search},
		"limit":  {strconv.Itoa(limit)},
		"skip":   {strconv.Itoa(skip)},
	}
	if key := os.Getenv(apiKeyEnvVar); key != "" {
		q.Set("api_key", key)
	}
	var out searchResponse
	if err := c.GetJSON(ctx, path, q, httpsubstrate.DefaultSearchTTL, &out); err != nil {
		return nil, 0, err
	}
	return out.Results, out.Meta.Results.Total, nil
}

func (c *Client) Ping(ctx context.Context) error {
	return c.Base.Ping(ctx, "/drug/event.json?limit=1")
}
