// Package quickgo adapts the QuickGO REST API for Gene.get's GO
// annotations section, including the follow-up terms fetch used to fill
// in missing GO term names (spec §4.D).
package quickgo

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"github.com/petrsovadina/biomcp/internal/httpsubstrate"
	"github.com/petrsovadina/biomcp/internal/sources/sourcebase"
)

const (
	defaultBaseURL = "https://www.ebi.ac.uk/QuickGO/services"
	envVar         = "BIOMCP_QUICKGO_BASE"
)

type Client struct {
	sourcebase.Base
}

func NewClient(http *httpsubstrate.Client) *Client {
	return &Client{Base: sourcebase.NewBase("QuickGO", defaultBaseURL, envVar, http)}
}

type Annotation struct {
	GoID       string `json:"goId"`
	GoName     string `json:"goName,omitempty"`
	Qualifier  string `json:"qualifier"`
	GoAspect   string `json:"goAspect"`
	Reference  string `json:"reference"`
}

type annotationResponse struct {
	Results []Annotation `json:"results"`
}

type term struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type termResponse struct {
	Results []term `json:"results"`
}

// AnnotationsForProtein fetches GO annotations for a UniProt accession.
func (c *Client) AnnotationsForProtein(ctx context.Context, accession string, pageSize int) ([]Annotation, error) {
	q := url.Values{
		"geneProductId": {accession},
		"limit":         {strconv.Itoa(pageSize)},
	}
	var out annotationResponse
	if err := c.GetJSON(ctx, "/annotation/search", q, httpsubstrate.DefaultAnnotationTTL, &out); err != nil {
		return nil, err
	}
	return out.Results, nil
}

// TermNames resolves GO ids to their human-readable names, used to fill in
// GoName when the annotation response omitted it.
func (c *Client) TermNames(ctx context.Context, ids []string) (map[string]string, error) {
	if len(ids) == 0 {
		return map[string]string{}, nil
	}
	q := url.Values{}
	var out termResponse
	path := "/ontology/go/terms/" + strings.Join(ids, ",")
	if err := c.GetJSON(ctx, path, q, httpsubstrate.DefaultAnnotationTTL, &out); err != nil {
		return nil, err
	}
	names := make(map[string]string, len(out.Results))
	for _, t := range out.Results {
		names[t.ID] = t.Name
	}
	return names, nil
}

func (c *Client) Ping(ctx context.Context) error {
	return c.Base.Ping(ctx, "/ontology/go/terms/GO:0008150")
}
