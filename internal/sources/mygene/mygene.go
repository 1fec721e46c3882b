// Package mygene adapts MyGene.info, the primary source for Gene.get and
// Gene.search (spec §4.B, §4.D). Grounded on the teacher's
// internal/github.Client shape: a typed Client wrapping sourcebase.Base,
// with one method per upstream operation.
package mygene

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"

	"github.com/petrsovadina/biomcp/internal/httpsubstrate"
	"github.com/petrsovadina/biomcp/internal/sources/sourcebase"
)

const (
	defaultBaseURL = "https://mygene.info/v3"
	envVar         = "BIOMCP_MYGENE_BASE"
)

// Client is the MyGene.info adapter.
type Client struct {
	sourcebase.Base
}

// NewClient wires a MyGene client onto the shared HTTP substrate.
func NewClient(http *httpsubstrate.Client) *Client {
	return &Client{Base: sourcebase.NewBase("MyGene", defaultBaseURL, envVar, http)}
}

// Hit is a single MyGene gene document (trimmed to the fields the
// transform layer consumes; MyGene returns many more). Uniprot and
// Ensembl come back as either a bare string or an array depending on
// whether the gene has one or several cross-references, so those two
// fields are kept as raw JSON and picked apart with gjson in the
// transform layer instead of forcing a single Go shape on them.
type Hit struct {
	ID         string          `json:"_id"`
	Symbol     string          `json:"symbol"`
	Name       string          `json:"name"`
	Entrezgene int64           `json:"entrezgene"`
	Taxid      int             `json:"taxid"`
	Type       string          `json:"type_of_gene"`
	Summary    string          `json:"summary"`
	Aliases    []string        `json:"alias"`
	Uniprot    json.RawMessage `json:"uniprot"`
	Ensembl    json.RawMessage `json:"ensembl"`
	Genomic    *struct {
		Chr    string `json:"chr"`
		Start  int64  `json:"start"`
		End    int64  `json:"end"`
		Strand int    `json:"strand"`
	} `json:"genomic_pos,omitempty"`
}

// SearchResponse is MyGene's query response envelope (offset-paginated:
// "total" plus a flat "hits" slice, per spec §3's offset pagination mode).
type SearchResponse struct {
	Total int   `json:"total"`
	Hits  []Hit `json:"hits"`
}

// GetBySymbol resolves a gene document by its exact HGNC symbol.
func (c *Client) GetBySymbol(ctx context.Context, symbol string) (*Hit, error) {
	resp, err := c.Search(ctx, "symbol:"+symbol, 1, 0)
	if err != nil {
		return nil, err
	}
	if len(resp.Hits) == 0 {
		return nil, nil
	}
	return &resp.Hits[0], nil
}

// GetByID fetches a gene document by its MyGene/Entrez numeric ID.
func (c *Client) GetByID(ctx context.Context, id string) (*Hit, error) {
	var hit Hit
	q := url.Values{"fields": {"symbol,name,entrezgene,taxid,type_of_gene,summary,alias,uniprot,ensembl,genomic_pos"}}
	if err := c.GetJSON(ctx, "/gene/"+id, q, httpsubstrate.DefaultAnnotationTTL, &hit); err != nil {
		return nil, err
	}
	return &hit, nil
}

// Search runs a Lucene-style MyGene query with offset pagination.
func (c *Client) Search(ctx context.Context, query string, limit, offset int) (*SearchResponse, error) {
	q := url.Values{
		"q":      {query},
		"size":   {strconv.Itoa(limit)},
		"from":   {strconv.Itoa(offset)},
		"fields": {"symbol,name,entrezgene,taxid,type_of_gene,summary,alias,uniprot,ensembl"},
	}
	var out SearchResponse
	if err := c.GetJSON(ctx, "/query", q, httpsubstrate.DefaultSearchTTL, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Ping performs a cheap liveness check for the `health` command.
func (c *Client) Ping(ctx context.Context) error {
	return c.Base.Ping(ctx, "/metadata")
}
