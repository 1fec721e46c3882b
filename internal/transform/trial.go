package transform

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

// EligibilityTruncateLimit is the character cap spec §4.D applies to
// inline eligibility text on Trial.get.
const EligibilityTruncateLimit = 12000

// TrialLocation is one facility entry from a study's contactsLocations
// section.
type TrialLocation struct {
	Facility string  `json:"facility,omitempty"`
	City     string  `json:"city,omitempty"`
	State    string  `json:"state,omitempty"`
	Country  string  `json:"country,omitempty"`
	Lat      float64 `json:"lat,omitempty"`
	Lon      float64 `json:"lon,omitempty"`
	HasGeo   bool    `json:"-"`
}

// Trial is the internal Trial record (spec §3). ProtocolSection fields
// that the transform doesn't promote to a named field remain reachable
// off Raw for helper pivots that need something this record doesn't
// expose.
type Trial struct {
	NCTID               string          `json:"nct_id"`
	Title               string          `json:"title,omitempty"`
	Status              string          `json:"status,omitempty"`
	Phase               []string        `json:"phase,omitempty"`
	Conditions          []string        `json:"conditions,omitempty"`
	BriefSummary        string          `json:"brief_summary,omitempty"`
	EligibilityCriteria string          `json:"eligibility_criteria,omitempty"`
	Locations           []TrialLocation `json:"locations,omitempty"`
	Source              string          `json:"source"`
	Raw                 json.RawMessage `json:"-"`
}

func (t Trial) StatusValue() string { return t.Status }
func (t Trial) NCTValue() string    { return t.NCTID }

// FromCtgovProtocolSection converts a ClinicalTrials.gov v2
// protocolSection payload into the base Trial record.
func FromCtgovProtocolSection(raw json.RawMessage) Trial {
	ps := gjson.ParseBytes(raw)
	t := Trial{
		NCTID:         ps.Get("identificationModule.nctId").String(),
		Title:         ps.Get("identificationModule.briefTitle").String(),
		Status:        ps.Get("statusModule.overallStatus").String(),
		BriefSummary:  ps.Get("descriptionModule.briefSummary").String(),
		Source:        "ctgov",
		Raw:           raw,
	}
	for _, p := range ps.Get("designModule.phases").Array() {
		t.Phase = append(t.Phase, p.String())
	}
	for _, c := range ps.Get("conditionsModule.conditions").Array() {
		t.Conditions = append(t.Conditions, c.String())
	}
	t.EligibilityCriteria, _ = TruncateEligibility(ps.Get("eligibilityModule.eligibilityCriteria").String())

	for _, loc := range ps.Get("contactsLocationsModule.locations").Array() {
		tl := TrialLocation{
			Facility: loc.Get("facility").String(),
			City:     loc.Get("city").String(),
			State:    loc.Get("state").String(),
			Country:  loc.Get("country").String(),
		}
		if geo := loc.Get("geoPoint"); geo.Exists() {
			tl.Lat = geo.Get("lat").Float()
			tl.Lon = geo.Get("lon").Float()
			tl.HasGeo = true
		}
		t.Locations = append(t.Locations, tl)
	}
	return t
}

// FromNciCtsTrial converts an NCI CTS trial document into the base Trial
// record; its field names differ from ClinicalTrials.gov's and it does
// not carry a geocoded locations array, only city/state/country text.
func FromNciCtsTrial(raw json.RawMessage) Trial {
	d := gjson.ParseBytes(raw)
	t := Trial{
		NCTID:        d.Get("nct_id").String(),
		Title:        d.Get("brief_title").String(),
		Status:       strings.ToUpper(d.Get("current_trial_status").String()),
		BriefSummary: d.Get("brief_summary").String(),
		Source:       "nci",
		Raw:          raw,
	}
	for _, p := range d.Get("phase").Array() {
		t.Phase = append(t.Phase, p.String())
	}
	for _, c := range d.Get("diseases.#.name").Array() {
		t.Conditions = append(t.Conditions, c.String())
	}
	t.EligibilityCriteria, _ = TruncateEligibility(d.Get("eligibility.unstructured.#.description").String())

	for _, site := range d.Get("sites").Array() {
		t.Locations = append(t.Locations, TrialLocation{
			Facility: site.Get("org_name").String(),
			City:     site.Get("org_city").String(),
			State:    site.Get("org_state_or_province").String(),
			Country:  site.Get("org_country").String(),
		})
	}
	return t
}

// TruncateEligibility applies the ~12 000 char cap with a
// "(truncated, N chars total)" marker, per spec §4.D.
func TruncateEligibility(text string) (string, bool) {
	runes := []rune(text)
	if len(runes) <= EligibilityTruncateLimit {
		return text, false
	}
	return string(runes[:EligibilityTruncateLimit]) + fmt.Sprintf(" (truncated, %d chars total)", len(runes)), true
}
