// Package myvariant adapts MyVariant.info, the primary source for
// Variant.get (spec §4.D). Supports lookup by rsID, HGVS genomic
// notation, or normalized "GENE change" mutation strings.
package myvariant

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"

	"github.com/petrsovadina/biomcp/internal/httpsubstrate"
	"github.com/petrsovadina/biomcp/internal/sources/sourcebase"
)

const (
	defaultBaseURL = "https://myvariant.info/v1"
	envVar         = "BIOMCP_MYVARIANT_BASE"
)

type Client struct {
	sourcebase.Base
}

func NewClient(http *httpsubstrate.Client) *Client {
	return &Client{Base: sourcebase.NewBase("MyVariant", defaultBaseURL, envVar, http)}
}

// Hit is a single MyVariant document. Most annotation sub-objects
// (clinvar, gnomad, cosmic, ...) vary wildly in shape across variant
// types, so they are kept as raw JSON and sliced with gjson by the
// transform layer rather than modeled field-by-field here.
type Hit struct {
	ID      string          `json:"_id"`
	Chrom   string          `json:"chrom"`
	Vcf     json.RawMessage `json:"vcf"`
	Dbsnp   json.RawMessage `json:"dbsnp"`
	Clinvar json.RawMessage `json:"clinvar"`
	Gnomad  json.RawMessage `json:"gnomad_exome"`
	Cadd    json.RawMessage `json:"cadd"`
	Cosmic  json.RawMessage `json:"cosmic"`
	Docm    json.RawMessage `json:"docm"`
}

type SearchResponse struct {
	Total int   `json:"total"`
	Hits  []Hit `json:"hits"`
}

// GetByHGVS fetches a single variant document by its HGVS genomic id.
func (c *Client) GetByHGVS(ctx context.Context, hgvs string) (*Hit, error) {
	var hit Hit
	if err := c.GetJSON(ctx, "/variant/"+url.PathEscape(hgvs), nil, httpsubstrate.DefaultAnnotationTTL, &hit); err != nil {
		return nil, err
	}
	return &hit, nil
}

// SearchByRsID resolves an rsID to its canonical HGVS document.
func (c *Client) SearchByRsID(ctx context.Context, rsid string) (*Hit, error) {
	resp, err := c.Search(ctx, "dbsnp.rsid:"+rsid, 1, 0)
	if err != nil {
		return nil, err
	}
	if len(resp.Hits) == 0 {
		return nil, nil
	}
	return &resp.Hits[0], nil
}

// SearchByGeneProteinChange resolves a "GENE change" pair (protein-change
// already normalized to one-letter form) via the snpeff annotation index.
func (c *Client) SearchByGeneProteinChange(ctx context.Context, gene, change string) (*Hit, error) {
	q := "snpeff.ann.genename:" + gene + " AND snpeff.ann.hgvs_p:p." + change
	resp, err := c.Search(ctx, q, 1, 0)
	if err != nil {
		return nil, err
	}
	if len(resp.Hits) == 0 {
		return nil, nil
	}
	return &resp.Hits[0], nil
}

// Search runs an offset-paginated MyVariant query.
func (c *Client) Search(ctx context.Context, query string, limit, offset int) (*SearchResponse, error) {
	q := url.Values{
		"q":    {query},
		"size": {strconv.Itoa(limit)},
		"from": {strconv.Itoa(offset)},
	}
	var out SearchResponse
	if err := c.GetJSON(ctx, "/query", q, httpsubstrate.DefaultSearchTTL, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Ping(ctx context.Context) error {
	return c.Base.Ping(ctx, "/metadata")
}
