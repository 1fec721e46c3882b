// Package pubtator3 adapts PubTator3's bioc-json export, the primary
// metadata path for Article.get (spec §4.D). PubTator3 returns HTTP
// 400/404 while a newly published PMID is still being indexed; spec §9
// calls this the "lag error" classification and requires it to trigger a
// fallback to Europe PMC rather than surfacing as a hard failure.
package pubtator3

import (
	"context"
	"encoding/json"
	"errors"
	"net/url"
	"strings"

	"github.com/petrsovadina/biomcp/internal/bmerrors"
	"github.com/petrsovadina/biomcp/internal/httpsubstrate"
	"github.com/petrsovadina/biomcp/internal/sources/sourcebase"
)

const (
	defaultBaseURL = "https://www.ncbi.nlm.nih.gov/research/pubtator3-api"
	envVar         = "BIOMCP_PUBTATOR3_BASE"
)

type Client struct {
	sourcebase.Base
}

func NewClient(http *httpsubstrate.Client) *Client {
	return &Client{Base: sourcebase.NewBase("PubTator3", defaultBaseURL, envVar, http)}
}

// BiocDocument is a single bioc-json passage document for a PMID.
type BiocDocument struct {
	PMID        string          `json:"pmid"`
	Passages    []Passage       `json:"passages"`
	Annotations json.RawMessage `json:"annotations,omitempty"`
}

type Passage struct {
	InfonType string            `json:"infons_type,omitempty"`
	Text      string            `json:"text"`
	Offset    int               `json:"offset"`
	Infons    map[string]string `json:"infons"`
}

// ErrIndexingLag is returned by GetByPMID when PubTator3 responds 400/404,
// signaling the orchestrator should fall back to Europe PMC.
var ErrIndexingLag = errors.New("pubtator3: article not yet indexed")

// GetByPMID fetches the bioc-json annotated document for a PMID.
func (c *Client) GetByPMID(ctx context.Context, pmid string) (*BiocDocument, error) {
	q := url.Values{"pmids": {pmid}}
	var docs []BiocDocument
	err := c.GetJSON(ctx, "/publications/export/biocjson", q, httpsubstrate.DefaultAnnotationTTL, &docs)
	if err != nil {
		if isIndexingLag(err) {
			return nil, ErrIndexingLag
		}
		return nil, err
	}
	if len(docs) == 0 {
		return nil, ErrIndexingLag
	}
	return &docs[0], nil
}

// isIndexingLag classifies a substrate error as PubTator3's 400/404
// "not yet indexed" signal; any other 4xx is left to surface as-is, per
// spec §9's Open Question decision.
func isIndexingLag(err error) bool {
	var apiErr *bmerrors.Api
	if !errors.As(err, &apiErr) {
		return false
	}
	msg := strings.ToLower(apiErr.Message)
	return strings.Contains(msg, "status 400") || strings.Contains(msg, "status 404")
}

func (c *Client) Ping(ctx context.Context) error {
	return c.Base.Ping(ctx, "/entity/autocomplete/?query=a")
}
