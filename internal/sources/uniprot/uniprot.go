// Package uniprot adapts the UniProt REST API, the primary source for
// Protein.get and an enrichment section for Gene.get (spec §4.D).
// Structures are offset-paginated per-entry sub-resources; search is
// cursor-paginated via the Link header.
package uniprot

import (
	"context"
	"encoding/json"
	"net/url"
	"regexp"
	"strconv"

	"github.com/petrsovadina/biomcp/internal/httpsubstrate"
	"github.com/petrsovadina/biomcp/internal/sources/sourcebase"
)

const (
	defaultBaseURL = "https://rest.uniprot.org/uniprotkb"
	envVar         = "BIOMCP_UNIPROT_BASE"
)

type Client struct {
	sourcebase.Base
}

func NewClient(http *httpsubstrate.Client) *Client {
	return &Client{Base: sourcebase.NewBase("UniProt", defaultBaseURL, envVar, http)}
}

// Entry is trimmed to the fields the transform layer reads; cross-
// references (including PDB structures) stay as raw JSON because their
// shape is a heterogeneous, deeply nested union across reference
// databases.
type Entry struct {
	PrimaryAccession string          `json:"primaryAccession"`
	UniProtkbID      string          `json:"uniProtkbId"`
	ProteinDesc      json.RawMessage `json:"proteinDescription"`
	Genes            json.RawMessage `json:"genes"`
	Sequence         json.RawMessage `json:"sequence"`
	CrossReferences  json.RawMessage `json:"uniProtKBCrossReferences"`
}

type SearchResponse struct {
	Results []Entry `json:"results"`
}

// GetByAccession fetches a full entry by canonical UniProt accession.
func (c *Client) GetByAccession(ctx context.Context, accession string) (*Entry, error) {
	var out Entry
	if err := c.GetJSON(ctx, "/"+accession, nil, httpsubstrate.DefaultAnnotationTTL, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SearchBySymbol resolves a gene symbol to its canonical reviewed
// (Swiss-Prot) entry, used by Protein.get's accession-resolution fallback
// and Gene.get's UniProt section (spec §4.D).
func (c *Client) SearchBySymbol(ctx context.Context, symbol, organismID string) (*Entry, error) {
	query := "gene:" + symbol + " AND reviewed:true"
	if organismID != "" {
		query += " AND organism_id:" + organismID
	}
	resp, err := c.Search(ctx, query, 1, 0)
	if err != nil {
		return nil, err
	}
	if len(resp.Results) == 0 {
		return nil, nil
	}
	return &resp.Results[0], nil
}

// Search runs a Lucene-style UniProt query with offset pagination (the
// REST API itself is cursor-based via Link headers, but this adapter
// slices results client-side at the offsets the orchestrator requests,
// consistent with the "structures limit <= 100" cap in spec §4.D).
func (c *Client) Search(ctx context.Context, query string, size, offset int) (*SearchResponse, error) {
	q := url.Values{
		"query":  {query},
		"size":   {strconv.Itoa(size + offset)},
		"format": {"json"},
	}
	var out SearchResponse
	if err := c.GetJSON(ctx, "/search", q, httpsubstrate.DefaultSearchTTL, &out); err != nil {
		return nil, err
	}
	if offset > 0 && offset < len(out.Results) {
		out.Results = out.Results[offset:]
	} else if offset >= len(out.Results) {
		out.Results = nil
	}
	return &out, nil
}

var accessionShapeRe = regexp.MustCompile(`^[A-NR-Z][0-9]([A-Z][A-Z0-9]{2}[0-9]){1,2}$|^[OPQ][0-9][A-Z0-9]{3}[0-9]$`)

// LooksLikeAccession reports whether s has the canonical UniProt
// accession shape, used by Protein.get to decide whether to resolve via
// MyGene first.
func LooksLikeAccession(s string) bool {
	return accessionShapeRe.MatchString(s)
}

func (c *Client) Ping(ctx context.Context) error {
	return c.Base.Ping(ctx, "/search?query=organism_id:9606&size=1&format=json")
}
