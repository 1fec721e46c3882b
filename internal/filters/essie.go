// ESSIE is ClinicalTrials.gov's advanced query grammar
// (AREA[field]value ...). This file builds the query fragments the trial
// search orchestrator composes, per spec §4.F.
package filters

import (
	"fmt"
	"strings"
)

// EssieArea renders a single AREA[field]value fragment, quoting value
// when it contains whitespace.
func EssieArea(field, value string) string {
	if value == "" {
		return ""
	}
	if strings.ContainsAny(value, " \t") {
		return fmt.Sprintf(`AREA[%s]("%s")`, field, strings.ReplaceAll(value, `"`, `\"`))
	}
	return fmt.Sprintf("AREA[%s](%s)", field, value)
}

// EssiePhase renders a phase constraint fragment.
func EssiePhase(phase string) string {
	return EssieArea("Phase", phase)
}

// EssieEligibilityCriteria wraps a free-text eligibility fragment, used by
// the prior-therapy / progression / line-of-therapy templates below.
func EssieEligibilityCriteria(text string) string {
	return EssieArea("EligibilityCriteria", text)
}

// EssiePriorTherapy builds the "prior therapy with X" eligibility
// fragment template.
func EssiePriorTherapy(drug string) string {
	return EssieEligibilityCriteria(fmt.Sprintf("prior %s", drug))
}

// EssieProgressionOn builds the "progression on X" eligibility fragment
// template.
func EssieProgressionOn(drug string) string {
	return EssieEligibilityCriteria(fmt.Sprintf("progression on %s", drug))
}

// EssieLineOfTherapy builds the "Nth line" eligibility fragment template.
func EssieLineOfTherapy(line string) string {
	return EssieEligibilityCriteria(fmt.Sprintf("%s line", line))
}

// Join combines non-empty ESSIE fragments with the implicit AND the
// ClinicalTrials.gov query parser applies to space-separated terms.
func Join(fragments ...string) string {
	nonEmpty := make([]string, 0, len(fragments))
	for _, f := range fragments {
		if f != "" {
			nonEmpty = append(nonEmpty, f)
		}
	}
	return strings.Join(nonEmpty, " AND ")
}
