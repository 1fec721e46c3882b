// Package alphagenome adapts Google DeepMind's AlphaGenome prediction
// API, an optional enrichment source for Variant.get's regulatory-impact
// section (spec §4.D). Gated behind ALPHAGENOME_API_KEY; unauthorized
// callers get Authorized() == false rather than a failed call.
package alphagenome

import (
	"context"
	"net/http"
	"os"

	"github.com/petrsovadina/biomcp/internal/httpsubstrate"
	"github.com/petrsovadina/biomcp/internal/sources/sourcebase"
)

const (
	defaultBaseURL = "https://alphagenome.googleapis.com/v1"
	envVar         = "BIOMCP_ALPHAGENOME_BASE"
	apiKeyEnvVar   = "ALPHAGENOME_API_KEY"
)

type Client struct {
	sourcebase.Base
}

func NewClient(http *httpsubstrate.Client) *Client {
	return &Client{Base: sourcebase.NewBase("AlphaGenome", defaultBaseURL, envVar, http)}
}

// Authorized reports whether an AlphaGenome API key is configured.
func (c *Client) Authorized() bool {
	return os.Getenv(apiKeyEnvVar) != ""
}

// VariantPrediction is a single-track regulatory-impact prediction for one
// genomic variant.
type VariantPrediction struct {
	Chromosome   string             `json:"chromosome"`
	Position     int64              `json:"position"`
	ReferenceBP  string             `json:"referenceBases"`
	AlternateBP  string             `json:"alternateBases"`
	TrackScores  map[string]float64 `json:"trackScores"`
}

type predictRequest struct {
	Chromosome  string `json:"chromosome"`
	Position    int64  `json:"position"`
	Reference   string `json:"referenceBases"`
	Alternate   string `json:"alternateBases"`
	SequenceLen int    `json:"sequenceLength"`
}

// PredictVariantEffect scores the regulatory impact of a single-nucleotide
// variant. Returns nil, nil when unauthorized.
func (c *Client) PredictVariantEffect(ctx context.Context, chrom string, pos int64, ref, alt string, sequenceLen int) (*VariantPrediction, error) {
	if !c.Authorized() {
		return nil, nil
	}
	req, err := httpsubstrate.Request{
		API:    c.Name,
		Method: "POST",
		URL:    c.BuildURL("/predict/variant", nil),
		Header: http.Header{"Authorization": {"Bearer " + os.Getenv(apiKeyEnvVar)}},
	}.WithJSONBody(predictRequest{Chromosome: chrom, Position: pos, Reference: ref, Alternate: alt, SequenceLen: sequenceLen})
	if err != nil {
		return nil, err
	}

	resp, err := c.HTTP.Do(ctx, req)
	if err != nil {
		return nil, err
	}
	var out VariantPrediction
	if err := resp.JSON(c.Name, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Ping(ctx context.Context) error {
	if !c.Authorized() {
		return nil
	}
	_, err := c.PredictVariantEffect(ctx, "chr7", 140753336, "A", "T", 1)
	return err
}
