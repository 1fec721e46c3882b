package transform

import (
	"encoding/json"

	"github.com/tidwall/gjson"
)

// AdverseEvent is the internal AdverseEvent record (spec §3). OpenFDA's
// FAERS/MAUDE report shapes are large and ragged, so the raw report is
// kept as json.RawMessage and the transform promotes only the handful of
// fields cross-entity pivots and display need.
type AdverseEvent struct {
	ReportID string          `json:"report_id,omitempty"`
	Product  string          `json:"product,omitempty"`
	Reaction []string        `json:"reactions,omitempty"`
	Serious  bool            `json:"serious"`
	Raw      json.RawMessage `json:"-"`
}

func FromOpenFDADrugEvent(raw json.RawMessage) AdverseEvent {
	return fromOpenFDAEvent(raw, "safetyreportid", "patient.drug.0.medicinalproduct", "patient.reaction.#.reactionmeddrapt", "serious")
}

func FromOpenFDADeviceEvent(raw json.RawMessage) AdverseEvent {
	return fromOpenFDAEvent(raw, "report_number", "device.0.brand_name", "", "")
}

func fromOpenFDAEvent(raw json.RawMessage, idField, productField, reactionsField, seriousField string) AdverseEvent {
	r := gjson.ParseBytes(raw)
	ae := AdverseEvent{
		ReportID: r.Get(idField).String(),
		Product:  r.Get(productField).String(),
		Raw:      raw,
	}
	if reactionsField != "" {
		for _, reaction := range r.Get(reactionsField).Array() {
			ae.Reaction = append(ae.Reaction, reaction.String())
		}
	}
	if seriousField != "" {
		ae.Serious = r.Get(seriousField).String() == "1"
	}
	return ae
}
