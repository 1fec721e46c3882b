// Package cgi adapts the Cancer Genome Interpreter biomarkers endpoint,
// a secondary source for Variant.get's actionability section alongside
// OncoKB and CIViC (spec §4.D).
package cgi

import (
	"context"
	"net/url"

	"github.com/petrsovadina/biomcp/internal/httpsubstrate"
	"github.com/petrsovadina/biomcp/internal/sources/sourcebase"
)

const (
	defaultBaseURL = "https://www.cancergenomeinterpreter.org/api/v1"
	envVar         = "BIOMCP_CGI_BASE"
)

type Client struct {
	sourcebase.Base
}

func NewClient(http *httpsubstrate.Client) *Client {
	return &Client{Base: sourcebase.NewBase("CGI", defaultBaseURL, envVar, http)}
}

// Biomarker is one CGI biomarker-association record.
type Biomarker struct {
	Gene           string `json:"Gene"`
	Alteration     string `json:"Alteration"`
	Drug           string `json:"Drug"`
	AssociatedWith string `json:"Association"`
	Biomarker      string `json:"Biomarker"`
	Evidence       string `json:"Evidence level"`
	Tumor          string `json:"Primary Tumor type"`
}

// BiomarkersForGene lists CGI biomarker associations for a gene symbol.
func (c *Client) BiomarkersForGene(ctx context.Context, gene string) ([]Biomarker, error) {
	q := url.Values{"gene": {gene}}
	var out []Biomarker
	if err := c.GetJSON(ctx, "/biomarkers", q, httpsubstrate.DefaultAnnotationTTL, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Ping(ctx context.Context) error {
	return c.Base.Ping(ctx, "/biomarkers?gene=BRAF")
}
