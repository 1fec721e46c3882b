package transform

import (
	"encoding/json"

	"github.com/tidwall/gjson"

	"github.com/petrsovadina/biomcp/internal/sources/mychem"
)

// Drug is the internal Drug record (spec §3).
type Drug struct {
	ID            string   `json:"id"`
	Name          string   `json:"name,omitempty"`
	DrugbankID    string   `json:"drugbank_id,omitempty"`
	Synonyms      []string `json:"synonyms,omitempty"`
	ATCCodes      []string `json:"atc_codes,omitempty"`
	IndicationRaw string   `json:"indication,omitempty"`

	FDAApplications     []FDAApplication `json:"fda_applications,omitempty"`
	FDAApplicationsNote string           `json:"fda_applications_note,omitempty"`
	FDAEventsNote       string           `json:"fda_events_note,omitempty"`
}

// FDAApplication is one Drugs@FDA application record, trimmed to the
// fields Drug.get's fda_applications section surfaces.
type FDAApplication struct {
	ApplicationNumber string   `json:"application_number,omitempty"`
	SponsorName       string   `json:"sponsor_name,omitempty"`
	BrandNames        []string `json:"brand_names,omitempty"`
}

// FromDrugsFDAResults parses Drugs@FDA's raw per-application JSON records
// via gjson, since only a handful of top-level fields matter and the
// nested products array varies in shape between application types.
func FromDrugsFDAResults(results []json.RawMessage) []FDAApplication {
	out := make([]FDAApplication, 0, len(results))
	for _, raw := range results {
		r := gjson.ParseBytes(raw)
		app := FDAApplication{
			ApplicationNumber: r.Get("application_number").String(),
			SponsorName:       r.Get("sponsor_name").String(),
		}
		for _, p := range r.Get("products").Array() {
			if name := p.Get("brand_name").String(); name != "" {
				app.BrandNames = append(app.BrandNames, name)
			}
		}
		out = append(out, app)
	}
	return out
}

// FromMyChemHit converts a MyChem.info hit into the base Drug record.
func FromMyChemHit(hit *mychem.Hit) Drug {
	d := Drug{ID: hit.ID, Name: hit.Name, DrugbankID: hit.DrugbankID}

	drugbank := gjson.ParseBytes(hit.Drugbank)
	for _, syn := range drugbank.Get("synonyms").Array() {
		d.Synonyms = append(d.Synonyms, syn.String())
	}
	for _, atc := range drugbank.Get("atc_codes.#.code").Array() {
		d.ATCCodes = append(d.ATCCodes, atc.String())
	}
	if ind := drugbank.Get("indication"); ind.Exists() {
		d.IndicationRaw = ind.String()
	}
	return d
}
