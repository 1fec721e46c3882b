// Package filters implements query/filter normalization and post-filter
// verification (spec §4.F): enum canonicalization, date validation,
// Lucene/ESSIE query construction, geographic and eligibility
// verification, status-priority sorting, and retraction backfill.
package filters

import (
	"sort"
	"strings"

	"github.com/petrsovadina/biomcp/internal/bmerrors"
)

// Enum is a named set of canonical values plus accepted aliases.
type Enum struct {
	Name     string
	Canonical []string
	Aliases  map[string]string // lower-cased alias -> canonical value
}

func newEnum(name string, canonical []string, aliases map[string]string) Enum {
	lowered := make(map[string]string, len(aliases))
	for k, v := range aliases {
		lowered[strings.ToLower(k)] = v
	}
	return Enum{Name: name, Canonical: canonical, Aliases: lowered}
}

// Phase is the ClinicalTrials.gov trial-phase enum.
var Phase = newEnum("phase",
	[]string{"EARLY_PHASE1", "PHASE1", "PHASE2", "PHASE3", "PHASE4", "NA"},
	map[string]string{
		"0": "EARLY_PHASE1", "early1": "EARLY_PHASE1", "1/2": "EARLY_PHASE1",
		"1": "PHASE1", "i": "PHASE1",
		"2": "PHASE2", "ii": "PHASE2",
		"3": "PHASE3", "iii": "PHASE3",
		"4": "PHASE4", "iv": "PHASE4",
		"n/a": "NA", "na": "NA",
	},
)

// Status is the ClinicalTrials.gov recruitment-status enum.
var Status = newEnum("status",
	[]string{
		"RECRUITING", "ACTIVE_NOT_RECRUITING", "ENROLLING_BY_INVITATION",
		"NOT_YET_RECRUITING", "COMPLETED", "UNKNOWN", "WITHDRAWN",
		"TERMINATED", "SUSPENDED",
	},
	map[string]string{
		"active":    "ACTIVE_NOT_RECRUITING",
		"recruiting": "RECRUITING",
		"not yet recruiting": "NOT_YET_RECRUITING",
		"enrolling by invitation": "ENROLLING_BY_INVITATION",
		"completed": "COMPLETED",
		"terminated": "TERMINATED",
		"withdrawn": "WITHDRAWN",
		"suspended": "SUSPENDED",
		"unknown":   "UNKNOWN",
	},
)

// Sex is the eligibility-sex enum.
var Sex = newEnum("sex",
	[]string{"ALL", "F", "M"},
	map[string]string{
		"all": "ALL",
		"f": "F", "female": "F",
		"m": "M", "male": "M",
	},
)

// FundingType is the trial funder-type enum.
var FundingType = newEnum("funder_type",
	[]string{"FED", "INDIV", "INDUSTRY", "NETWORK", "NIH", "OTHER", "OTHER_GOV", "UNKNOWN"},
	map[string]string{
		"federal": "FED", "fed": "FED",
		"individual": "INDIV", "indiv": "INDIV",
		"industry": "INDUSTRY",
		"network":  "NETWORK",
		"nih":      "NIH",
		"other":    "OTHER",
		"other_gov": "OTHER_GOV", "government": "OTHER_GOV",
	},
)

// GeneType is MyGene.info's gene-type enum, used for gene search filters.
var GeneType = newEnum("gene_type",
	[]string{"protein-coding", "pseudo", "ncRNA", "snoRNA", "snRNA", "rRNA", "tRNA"},
	map[string]string{
		"protein_coding": "protein-coding", "coding": "protein-coding",
		"pseudogene": "pseudo",
		"ncrna":      "ncRNA",
		"snorna":     "snoRNA",
		"snrna":      "snRNA",
		"rrna":       "rRNA",
		"trna":       "tRNA",
	},
)

// Canonicalize resolves value against the enum's aliases and canonical
// set, returning InvalidArgument with the expected-values list on a miss.
// Canonicalize is idempotent: canonicalizing an already-canonical value
// returns it unchanged (spec §8 "normalization is idempotent").
func (e Enum) Canonicalize(value string) (string, error) {
	if value == "" {
		return "", nil
	}
	for _, c := range e.Canonical {
		if c == value {
			return c, nil
		}
	}
	if canon, ok := e.Aliases[strings.ToLower(value)]; ok {
		return canon, nil
	}
	for _, c := range e.Canonical {
		if strings.EqualFold(c, value) {
			return c, nil
		}
	}
	return "", bmerrors.NewInvalidArgument(
		"invalid %s %q; expected one of: %s", e.Name, value, strings.Join(e.Canonical, ", "))
}

// CanonicalizeAll canonicalizes a slice of values, stopping at the first
// invalid entry.
func (e Enum) CanonicalizeAll(values []string) ([]string, error) {
	out := make([]string, 0, len(values))
	for _, v := range values {
		c, err := e.Canonicalize(v)
		if err != nil {
			return nil, err
		}
		if c != "" {
			out = append(out, c)
		}
	}
	return out, nil
}

// SortedCanonical returns the enum's canonical values for display in
// error messages or `list` introspection output.
func (e Enum) SortedCanonical() []string {
	out := append([]string(nil), e.Canonical...)
	sort.Strings(out)
	return out
}
