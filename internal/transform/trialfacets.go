package transform

import (
	"encoding/json"

	"github.com/tidwall/gjson"
)

// Organization, Intervention, and Biomarker are not first-class upstream
// REST resources; they're facets of a trial's protocolSection (spec §3's
// "Common entities" list includes them, but §4.D's representative
// pipelines only name dedicated primary sources for the others). Both
// the sponsor/lead-organization and arm/intervention facets live inside
// the same protocolSection payload the Trial pipeline already fetches,
// so these are derived from it rather than given a dedicated source
// client (documented in the ledger as a standard-library extraction).

// Organization is the internal Organization record (spec §3): a trial
// sponsor or facility.
type Organization struct {
	Name  string `json:"name"`
	Class string `json:"class,omitempty"`
	Role  string `json:"role,omitempty"`
}

// Intervention is the internal Intervention record (spec §3): a trial
// arm's studied intervention.
type Intervention struct {
	Type        string `json:"type,omitempty"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
}

// Biomarker is the internal Biomarker record (spec §3): a trial's
// eligibility biomarker criterion, or (via the cancer knowledge bases)
// a CGI/OncoKB/CIViC-backed marker.
type Biomarker struct {
	Name   string `json:"name"`
	Source string `json:"source,omitempty"`
}

// OrganizationsFromProtocolSection extracts sponsor/collaborator
// organizations from a ClinicalTrials.gov v2 protocolSection payload.
func OrganizationsFromProtocolSection(raw json.RawMessage) []Organization {
	ps := gjson.ParseBytes(raw)
	var out []Organization
	if lead := ps.Get("sponsorCollaboratorsModule.leadSponsor"); lead.Exists() {
		out = append(out, Organization{
			Name:  lead.Get("name").String(),
			Class: lead.Get("class").String(),
			Role:  "lead_sponsor",
		})
	}
	for _, c := range ps.Get("sponsorCollaboratorsModule.collaborators").Array() {
		out = append(out, Organization{
			Name:  c.Get("name").String(),
			Class: c.Get("class").String(),
			Role:  "collaborator",
		})
	}
	return out
}

// InterventionsFromProtocolSection extracts the arms/interventions
// facet from a ClinicalTrials.gov v2 protocolSection payload.
func InterventionsFromProtocolSection(raw json.RawMessage) []Intervention {
	ps := gjson.ParseBytes(raw)
	var out []Intervention
	for _, i := range ps.Get("armsInterventionsModule.interventions").Array() {
		out = append(out, Intervention{
			Type:        i.Get("type").String(),
			Name:        i.Get("name").String(),
			Description: i.Get("description").String(),
		})
	}
	return out
}
