package transform

import (
	"encoding/json"

	"github.com/tidwall/gjson"
)

// FromOpenTargetsAssociations extracts the distinct disease names from
// an Open Targets associatedDiseases GraphQL payload; the returned
// context's Drugs field is left empty. The response nests several nullable levels deep and
// only disease.name and the row count matter here, so gjson picks the
// fields out directly rather than mapping the whole schema onto structs.
func FromOpenTargetsAssociations(raw json.RawMessage) *GeneClinicalContext {
	if len(raw) == 0 {
		return nil
	}
	rows := gjson.GetBytes(raw, "target.associatedDiseases.rows").Array()
	if len(rows) == 0 {
		return nil
	}
	cc := &GeneClinicalContext{}
	seen := make(map[string]bool, len(rows))
	for _, row := range rows {
		name := row.Get("disease.name").String()
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		cc.Diseases = append(cc.Diseases, name)
	}
	return cc
}
