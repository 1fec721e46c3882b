// Package ctgov adapts the ClinicalTrials.gov v2 API, one of the two
// dispatch targets for Trial.get/search (spec §4.D selects ctgov or NCI
// CTS per the `source` parameter). Search is cursor-paginated; per spec
// §9's Open Question decision, a page the caller stops consuming mid-page
// yields no reconstructable cursor, so NextPageToken is simply whatever
// the server returned on the last page actually read.
package ctgov

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"
	"strings"

	"github.com/petrsovadina/biomcp/internal/httpsubstrate"
	"github.com/petrsovadina/biomcp/internal/sources/sourcebase"
)

const (
	defaultBaseURL = "https://clinicaltrials.gov/api/v2"
	envVar         = "BIOMCP_CTGOV_BASE"
)

type Client struct {
	sourcebase.Base
}

func NewClient(http *httpsubstrate.Client) *Client {
	return &Client{Base: sourcebase.NewBase("ClinicalTrials.gov", defaultBaseURL, envVar, http)}
}

// Study is a v2 study envelope; protocolSection is kept as raw JSON
// because its shape differs substantially across the base field set and
// the union of per-section additions described in spec §4.D, and the
// transform layer slices what it needs with gjson.
type Study struct {
	ProtocolSection json.RawMessage `json:"protocolSection"`
}

type SearchResponse struct {
	Studies       []Study `json:"studies"`
	NextPageToken string  `json:"nextPageToken,omitempty"`
	TotalCount    int     `json:"totalCount,omitempty"`
}

// GetByNCT fetches a single study by NCT id with the requested field set.
func (c *Client) GetByNCT(ctx context.Context, nct string, fields []string) (*Study, error) {
	q := url.Values{}
	if len(fields) > 0 {
		q.Set("fields", strings.Join(fields, ","))
	}
	var out Study
	if err := c.GetJSON(ctx, "/studies/"+nct, q, httpsubstrate.DefaultAnnotationTTL, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Search runs an ESSIE advanced query with cursor pagination.
func (c *Client) Search(ctx context.Context, essieQuery string, fields []string, pageSize int, pageToken string) (*SearchResponse, error) {
	q := url.Values{
		"query.term": {essieQuery},
		"pageSize":   {strconv.Itoa(pageSize)},
		"countTotal": {"true"},
	}
	if len(fields) > 0 {
		q.Set("fields", strings.Join(fields, ","))
	}
	if pageToken != "" {
		q.Set("pageToken", pageToken)
	}
	var out SearchResponse
	if err := c.GetJSON(ctx, "/studies", q, httpsubstrate.DefaultSearchTTL, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Ping(ctx context.Context) error {
	return c.Base.Ping(ctx, "/version")
}
