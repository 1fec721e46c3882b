// Package reactome adapts the Reactome Content Service, the primary
// source for Pathway.get (spec §4.D).
package reactome

import (
	"context"
	"net/url"

	"github.com/petrsovadina/biomcp/internal/httpsubstrate"
	"github.com/petrsovadina/biomcp/internal/sources/sourcebase"
)

const (
	defaultBaseURL = "https://reactome.org/ContentService/data"
	envVar         = "BIOMCP_REACTOME_BASE"
)

type Client struct {
	sourcebase.Base
}

func NewClient(http *httpsubstrate.Client) *Client {
	return &Client{Base: sourcebase.NewBase("Reactome", defaultBaseURL, envVar, http)}
}

type Pathway struct {
	StID        string `json:"stId"`
	DisplayName string `json:"displayName"`
	Summation   []struct {
		Text string `json:"text"`
	} `json:"summation"`
	Species []struct {
		DisplayName string `json:"displayName"`
	} `json:"species"`
}

type Participant struct {
	DisplayName string `json:"displayName"`
	SchemaClass string `json:"schemaClass"`
}

// GetByStableID fetches a pathway's base metadata by Reactome stable ID
// (R-HSA-\d+).
func (c *Client) GetByStableID(ctx context.Context, stableID string) (*Pathway, error) {
	var out Pathway
	if err := c.GetJSON(ctx, "/query/enhanced/"+stableID, nil, httpsubstrate.DefaultAnnotationTTL, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ParticipatingMolecules fetches the free-text participant list used by
// Pathway.get's gene-symbol extraction heuristic (spec §4.D).
func (c *Client) ParticipatingMolecules(ctx context.Context, stableID string) ([]Participant, error) {
	var out []Participant
	path := "/participants/" + stableID
	if err := c.GetJSON(ctx, path, url.Values{}, httpsubstrate.DefaultAnnotationTTL, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Ping(ctx context.Context) error {
	return c.Base.Ping(ctx, "/query/enhanced/R-HSA-5673001")
}
