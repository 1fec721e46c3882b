// Package cpic adapts the CPIC (Clinical Pharmacogenetics Implementation
// Consortium) REST API, the primary source for PharmacogenomicGuideline
// lookups (spec §4.D).
package cpic

import (
	"context"
	"net/url"

	"github.com/petrsovadina/biomcp/internal/httpsubstrate"
	"github.com/petrsovadina/biomcp/internal/sources/sourcebase"
)

const (
	defaultBaseURL = "https://api.cpicpgx.org/v1"
	envVar         = "BIOMCP_CPIC_BASE"
)

type Client struct {
	sourcebase.Base
}

func NewClient(http *httpsubstrate.Client) *Client {
	return &Client{Base: sourcebase.NewBase("CPIC", defaultBaseURL, envVar, http)}
}

// Recommendation is one CPIC guideline recommendation row.
type Recommendation struct {
	ID                int    `json:"id"`
	DrugID            string `json:"drugid"`
	Phenotypes        string `json:"phenotypes"`
	Classification    string `json:"classification"`
	Implications       string `json:"implications"`
	RecommendationText string `json:"drugrecommendation"`
}

// RecommendationsForGeneDrug fetches CPIC recommendations filtered by gene
// symbol and drug name via PostgREST-style query params.
func (c *Client) RecommendationsForGeneDrug(ctx context.Context, gene, drug string) ([]Recommendation, error) {
	q := url.Values{}
	if gene != "" {
		q.Set("genesymbol", "eq."+gene)
	}
	if drug != "" {
		q.Set("drugname", "eq."+drug)
	}
	var out []Recommendation
	if err := c.GetJSON(ctx, "/recommendation", q, httpsubstrate.DefaultAnnotationTTL, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Ping(ctx context.Context) error {
	return c.Base.Ping(ctx, "/gene?limit=1")
}

// Pair is one CPIC gene-drug pair row: a coarser catalog than
// /recommendation, naming the guideline that covers a gene-drug pair
// without the recommendation's phenotype-specific text. PGx.get probes
// this path when /recommendation returns nothing (spec §4.D).
type Pair struct {
	ID            int    `json:"id"`
	GeneSymbol    string `json:"genesymbol"`
	DrugID        string `json:"drugid"`
	GuidelineName string `json:"guidelinename"`
	CPICLevel     string `json:"cpiclevel"`
}

// PairsForGeneDrug fetches CPIC gene-drug pair rows.
func (c *Client) PairsForGeneDrug(ctx context.Context, gene, drug string) ([]Pair, error) {
	q := url.Values{}
	if gene != "" {
		q.Set("genesymbol", "eq."+gene)
	}
	if drug != "" {
		q.Set("drugid", "eq."+drug)
	}
	var out []Pair
	if err := c.GetJSON(ctx, "/pair", q, httpsubstrate.DefaultAnnotationTTL, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AlleleFrequency is one CPIC allele-frequency row for a gene within a
// population group.
type AlleleFrequency struct {
	Gene       string  `json:"genesymbol"`
	Allele     string  `json:"allele"`
	Population string  `json:"population"`
	Frequency  float64 `json:"frequency"`
}

// FrequenciesForGene fetches CPIC allele-frequency rows for a gene. Rows
// can repeat across overlapping population groupings; callers dedupe by
// (gene,allele,population).
func (c *Client) FrequenciesForGene(ctx context.Context, gene string) ([]AlleleFrequency, error) {
	q := url.Values{"genesymbol": {"eq." + gene}}
	var out []AlleleFrequency
	if err := c.GetJSON(ctx, "/allele_frequency", q, httpsubstrate.DefaultAnnotationTTL, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Guideline is one CPIC guideline summary row.
type Guideline struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

// GuidelinesForGene fetches CPIC guideline summary rows naming gene. When
// this summary endpoint is empty, callers fall back to deriving guideline
// names from PairsForGeneDrug rows (spec §4.D).
func (c *Client) GuidelinesForGene(ctx context.Context, gene string) ([]Guideline, error) {
	q := url.Values{"genes": {"cs.{" + gene + "}"}}
	var out []Guideline
	if err := c.GetJSON(ctx, "/guideline", q, httpsubstrate.DefaultAnnotationTTL, &out); err != nil {
		return nil, err
	}
	return out, nil
}
