// Package europepmc adapts Europe PMC's REST search API and full-text XML
// endpoint. It is both a search source (article search, retraction
// backfill per spec §4.F) and a fallback metadata/full-text path for
// Article.get when PubTator3 lags or a DOI/PMCID has no PMID (spec §4.D,
// §9).
package europepmc

import (
	"context"
	"net/url"
	"strconv"

	"github.com/petrsovadina/biomcp/internal/httpsubstrate"
	"github.com/petrsovadina/biomcp/internal/sources/sourcebase"
)

const (
	defaultBaseURL = "https://www.ebi.ac.uk/europepmc/webservices/rest"
	envVar         = "BIOMCP_EUROPEPMC_BASE"
)

type Client struct {
	sourcebase.Base
}

func NewClient(http *httpsubstrate.Client) *Client {
	return &Client{Base: sourcebase.NewBase("Europe PMC", defaultBaseURL, envVar, http)}
}

type Result struct {
	ID          string `json:"id"`
	Source      string `json:"source"`
	PMID        string `json:"pmid"`
	PMCID       string `json:"pmcid"`
	DOI         string `json:"doi"`
	Title       string `json:"title"`
	AuthorStr   string `json:"authorString"`
	JournalInfo struct {
		Journal struct {
			Title string `json:"title"`
		} `json:"journal"`
	} `json:"journalInfo"`
	PubYear        string `json:"pubYear"`
	FirstPubDate   string `json:"firstPublicationDate"`
	IsOpenAccess   string `json:"isOpenAccess"`
	PubTypeList    struct {
		PubType []string `json:"pubType"`
	} `json:"pubTypeList"`
	AbstractText string `json:"abstractText"`
}

type SearchResponse struct {
	HitCount    int      `json:"hitCount"`
	NextCursor  string   `json:"nextCursorMark,omitempty"`
	ResultList  struct {
		Result []Result `json:"result"`
	} `json:"resultList"`
}

// Search runs a Europe PMC query with cursor pagination. cursorMark "*"
// requests the first page; the server echoes the next cursor to pass
// verbatim for the following page, per spec §3/§6's cursor mode.
func (c *Client) Search(ctx context.Context, query, cursorMark string, pageSize int) (*SearchResponse, error) {
	if cursorMark == "" {
		cursorMark = "*"
	}
	q := url.Values{
		"query":      {query},
		"format":     {"json"},
		"cursorMark": {cursorMark},
		"pageSize":   {strconv.Itoa(pageSize)},
	}
	var out SearchResponse
	if err := c.GetJSON(ctx, "/search", q, httpsubstrate.DefaultSearchTTL, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ResolveToPMID looks up a DOI or PMCID and returns the PMID, if Europe
// PMC has cross-referenced one. Returns "" (not an error) when the work
// exists but has no PMID, matching the DOI-no-PMID fallback scenario in
// spec §8.
func (c *Client) ResolveToPMID(ctx context.Context, query string) (string, error) {
	resp, err := c.Search(ctx, query, "", 1)
	if err != nil {
		return "", err
	}
	if len(resp.ResultList.Result) == 0 {
		return "", nil
	}
	return resp.ResultList.Result[0].PMID, nil
}

// FullTextXML fetches the JATS/NXML full text by PMC or MED source id.
func (c *Client) FullTextXML(ctx context.Context, source, id string) ([]byte, error) {
	resp, err := c.GetBytes(ctx, "/"+source+"/"+id+"/fullTextXML", nil, httpsubstrate.DefaultAnnotationTTL)
	if err != nil {
		return nil, err
	}
	return resp.Body, nil
}

func (c *Client) Ping(ctx context.Context) error {
	return c.Base.Ping(ctx, "/search?query=cancer&format=json&pageSize=1")
}
