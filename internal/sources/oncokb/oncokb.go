// Package oncokb adapts the OncoKB precision-oncology API, the primary
// source for Variant.get's therapeutic-actionability section (spec
// §4.D). OncoKB requires a licensed token; with no ONCOKB_TOKEN set, the
// client reports Authorized() == false so the caller can surface the
// documented "no token configured" note instead of failing the whole
// Variant.get call (spec §6).
package oncokb

import (
	"context"
	"net/http"
	"net/url"
	"os"

	"github.com/petrsovadina/biomcp/internal/httpsubstrate"
	"github.com/petrsovadina/biomcp/internal/sources/sourcebase"
)

const (
	defaultBaseURL = "https://www.oncokb.org/api/v1"
	envVar         = "BIOMCP_ONCOKB_BASE"
	tokenEnvVar    = "ONCOKB_TOKEN"
)

type Client struct {
	sourcebase.Base
}

func NewClient(http *httpsubstrate.Client) *Client {
	return &Client{Base: sourcebase.NewBase("OncoKB", defaultBaseURL, envVar, http)}
}

// Authorized reports whether an OncoKB API token is configured.
func (c *Client) Authorized() bool {
	return os.Getenv(tokenEnvVar) != ""
}

// Annotation is one OncoKB protein-change annotation.
type Annotation struct {
	GeneExist      bool   `json:"geneExist"`
	VariantExist   bool   `json:"variantExist"`
	Oncogenic      string `json:"oncogenic"`
	MutationEffect struct {
		KnownEffect string `json:"knownEffect"`
		Description string `json:"description"`
	} `json:"mutationEffect"`
	HighestSensitiveLevel string `json:"highestSensitiveLevel,omitempty"`
	HighestResistanceLevel string `json:"highestResistanceLevel,omitempty"`
}

// AnnotateProteinChange fetches the OncoKB annotation for a gene/protein
// change pair (e.g. BRAF, V600E). Returns nil, nil when unauthorized.
func (c *Client) AnnotateProteinChange(ctx context.Context, gene, alteration string) (*Annotation, error) {
	if !c.Authorized() {
		return nil, nil
	}
	q := url.Values{
		"hugoSymbol": {gene},
		"alteration": {alteration},
	}
	req := httpsubstrate.Request{
		API:      c.Name,
		Method:   "GET",
		URL:      c.BuildURL("/annotate/mutations/byProteinChange", q),
		Header:   http.Header{"Authorization": {"Bearer " + os.Getenv(tokenEnvVar)}},
		CacheTTL: httpsubstrate.DefaultAnnotationTTL,
		Parse:    httpsubstrate.ParseJSON,
	}
	resp, err := c.HTTP.Do(ctx, req)
	if err != nil {
		return nil, err
	}
	var out Annotation
	if err := resp.JSON(c.Name, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Ping(ctx context.Context) error {
	if !c.Authorized() {
		return nil
	}
	_, err := c.AnnotateProteinChange(ctx, "BRAF", "V600E")
	return err
}
