// Package stringdb adapts the STRING protein-protein interaction API,
// used by both Gene.get and Protein.get's interactions sections (spec
// §4.D). STRING is deliberately fragile under load, so callers should
// register a longer per-host rate-limit interval for its base host.
package stringdb

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"github.com/petrsovadina/biomcp/internal/httpsubstrate"
	"github.com/petrsovadina/biomcp/internal/sources/sourcebase"
)

const (
	defaultBaseURL = "https://string-db.org/api"
	envVar         = "BIOMCP_STRING_BASE"
)

type Client struct {
	sourcebase.Base
}

func NewClient(http *httpsubstrate.Client) *Client {
	return &Client{Base: sourcebase.NewBase("STRING", defaultBaseURL, envVar, http)}
}

// Interaction is one edge of a STRING network.
type Interaction struct {
	StringIDA   string  `json:"stringId_A"`
	StringIDB   string  `json:"stringId_B"`
	PreferredA  string  `json:"preferredName_A"`
	PreferredB  string  `json:"preferredName_B"`
	Score       float64 `json:"score"`
}

// Interactions fetches the STRING network for a gene symbol, pre-filtered
// to partners that are not the query gene itself and sorted by score
// descending (stable by partner name), matching spec §4.D's Gene.get
// STRING section.
func (c *Client) Interactions(ctx context.Context, symbol string, species int, limit int) ([]Interaction, error) {
	q := url.Values{
		"identifiers": {symbol},
		"species":     {strconv.Itoa(species)},
		"limit":       {strconv.Itoa(limit)},
	}
	var out []Interaction
	if err := c.GetJSON(ctx, "/json/network", q, httpsubstrate.DefaultAnnotationTTL, &out); err != nil {
		return nil, err
	}

	filtered := make([]Interaction, 0, len(out))
	for _, it := range out {
		if strings.EqualFold(it.PreferredA, it.PreferredB) {
			continue // drop self-loops
		}
		filtered = append(filtered, it)
	}
	sortByScoreDescStableByName(symbol, filtered)
	return filtered, nil
}

func sortByScoreDescStableByName(querySymbol string, xs []Interaction) {
	// Insertion sort keeps the implementation obviously stable for the
	// small (<=bounded-limit) result sets this endpoint returns.
	for i := 1; i < len(xs); i++ {
		j := i
		for j > 0 && less(querySymbol, xs[j], xs[j-1]) {
			xs[j], xs[j-1] = xs[j-1], xs[j]
			j--
		}
	}
}

func less(querySymbol string, a, b Interaction) bool {
	if a.Score != b.Score {
		return a.Score > b.Score
	}
	return partnerName(querySymbol, a) < partnerName(querySymbol, b)
}

// partnerName returns whichever side of the edge is not the query gene.
func partnerName(querySymbol string, it Interaction) string {
	if strings.EqualFold(it.PreferredA, querySymbol) {
		return it.PreferredB
	}
	return it.PreferredA
}

func (c *Client) Ping(ctx context.Context) error {
	return c.Base.Ping(ctx, "/json/version")
}
