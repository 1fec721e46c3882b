// Package dbnsfp adapts the dbNSFP functional-prediction lookup service
// (served through MyVariant.info's dbnsfp field as well as a standalone
// REST mirror), used by Variant.get's in-silico prediction section to
// supplement MyVariant annotations with additional predictor scores not
// present in every MyVariant response (spec §4.D).
package dbnsfp

import (
	"context"
	"encoding/json"

	"github.com/petrsovadina/biomcp/internal/httpsubstrate"
	"github.com/petrsovadina/biomcp/internal/sources/sourcebase"
)

const (
	defaultBaseURL = "https://dbnsfp.s3.amazonaws.com/api/v1"
	envVar         = "BIOMCP_DBNSFP_BASE"
)

type Client struct {
	sourcebase.Base
}

func NewClient(http *httpsubstrate.Client) *Client {
	return &Client{Base: sourcebase.NewBase("dbNSFP", defaultBaseURL, envVar, http)}
}

// Prediction holds the ragged set of per-tool prediction scores dbNSFP
// aggregates (SIFT, PolyPhen2, CADD, REVEL, ...); kept as json.RawMessage
// since the set of populated predictors varies per variant.
type Prediction struct {
	Chromosome string          `json:"chr"`
	Position   int64           `json:"pos"`
	Reference  string          `json:"ref"`
	Alternate  string          `json:"alt"`
	Scores     json.RawMessage `json:"scores"`
}

// GetByHGVS fetches dbNSFP predictor scores for a genomic HGVS variant.
func (c *Client) GetByHGVS(ctx context.Context, hgvs string) (*Prediction, error) {
	var out Prediction
	if err := c.GetJSON(ctx, "/variant/"+hgvs, nil, httpsubstrate.DefaultAnnotationTTL, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Ping(ctx context.Context) error {
	return c.Base.Ping(ctx, "/variant/chr7:g.140753336A>T")
}
