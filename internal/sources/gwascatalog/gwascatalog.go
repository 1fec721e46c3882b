// Package gwascatalog adapts the NHGRI-EBI GWAS Catalog REST API, the
// primary source for GwasAssociation.search and Variant.get's GWAS
// cross-link section (spec §4.D).
package gwascatalog

import (
	"context"
	"net/url"
	"strconv"

	"github.com/petrsovadina/biomcp/internal/httpsubstrate"
	"github.com/petrsovadina/biomcp/internal/sources/sourcebase"
)

const (
	defaultBaseURL = "https://www.ebi.ac.uk/gwas/rest/api"
	envVar         = "BIOMCP_GWASCATALOG_BASE"
)

type Client struct {
	sourcebase.Base
}

func NewClient(http *httpsubstrate.Client) *Client {
	return &Client{Base: sourcebase.NewBase("GWAS Catalog", defaultBaseURL, envVar, http)}
}

// Association is one GWAS Catalog association record.
type Association struct {
	PValue       float64 `json:"pvalue"`
	RiskFrequency string `json:"riskFrequency,omitempty"`
	OrPerCopyNum float64 `json:"orPerCopyNum,omitempty"`
	RiskAllele   string  `json:"riskAllele,omitempty"`
	Trait        string  `json:"trait,omitempty"`
	PubmedID     string  `json:"pubmedId,omitempty"`
}

type embeddedAssociations struct {
	Embedded struct {
		Associations []Association `json:"associations"`
	} `json:"_embedded"`
	Page struct {
		TotalElements int `json:"totalElements"`
		Size          int `json:"size"`
		Number        int `json:"number"`
	} `json:"page"`
}

// AssociationsForRsID lists GWAS Catalog associations for a dbSNP rsID.
func (c *Client) AssociationsForRsID(ctx context.Context, rsID string, page, size int) (*embeddedAssociations, error) {
	q := url.Values{
		"page": {strconv.Itoa(page)},
		"size": {strconv.Itoa(size)},
	}
	var out embeddedAssociations
	path := "/singleNucleotidePolymorphisms/" + rsID + "/associations"
	if err := c.GetJSON(ctx, path, q, httpsubstrate.DefaultAnnotationTTL, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AssociationsForTrait searches associations matching a free-text trait
// name (used by GwasAssociation.search).
func (c *Client) AssociationsForTrait(ctx context.Context, trait string, page, size int) (*embeddedAssociations, error) {
	q := url.Values{
		"efoTrait": {trait},
		"page":     {strconv.Itoa(page)},
		"size":     {strconv.Itoa(size)},
	}
	var out embeddedAssociations
	if err := c.GetJSON(ctx, "/associations/search/findByEfoTrait", q, httpsubstrate.DefaultSearchTTL, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Ping(ctx context.Context) error {
	return c.Base.Ping(ctx, "/associations?size=1")
}
