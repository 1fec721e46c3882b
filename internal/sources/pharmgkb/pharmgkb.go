// Package pharmgkb adapts the PharmGKB REST API, the secondary source
// consulted for PharmacogenomicGuideline.get when CPIC has no matching
// recommendation, and for clinical annotation cross-links (spec §4.D).
package pharmgkb

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"

	"github.com/petrsovadina/biomcp/internal/httpsubstrate"
	"github.com/petrsovadina/biomcp/internal/sources/sourcebase"
)

const (
	defaultBaseURL = "https://api.pharmgkb.org/v1/data"
	envVar         = "BIOMCP_PHARMGKB_BASE"
)

type Client struct {
	sourcebase.Base
}

func NewClient(http *httpsubstrate.Client) *Client {
	return &Client{Base: sourcebase.NewBase("PharmGKB", defaultBaseURL, envVar, http)}
}

// ClinicalAnnotation is a ragged PharmGKB clinical-annotation record; most
// substructure (genotype table, phenotype category list) is left as
// json.RawMessage for the transform layer.
type ClinicalAnnotation struct {
	ID              string          `json:"id"`
	Gene            json.RawMessage `json:"relatedGenes"`
	Chemical        json.RawMessage `json:"relatedChemicals"`
	LevelOfEvidence string          `json:"levelOfEvidence"`
	PhenotypeCategory json.RawMessage `json:"phenotypeCategory"`
}

type listResponse struct {
	Data []ClinicalAnnotation `json:"data"`
}

// ClinicalAnnotationsForGene lists clinical annotations mentioning a gene
// symbol.
func (c *Client) ClinicalAnnotationsForGene(ctx context.Context, gene string, limit int) ([]ClinicalAnnotation, error) {
	q := url.Values{
		"location.genes.symbol": {gene},
		"view":                  {"max"},
		"limit":                 {strconv.Itoa(limit)},
	}
	var out listResponse
	if err := c.GetJSON(ctx, "/clinicalAnnotation", q, httpsubstrate.DefaultAnnotationTTL, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

func (c *Client) Ping(ctx context.Context) error {
	return c.Base.Ping(ctx, "/clinicalAnnotation?limit=1")
}
