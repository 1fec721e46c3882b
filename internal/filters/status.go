package filters

import "sort"

// statusPriority is the default trial-status sort order applied when the
// caller did not pass an explicit --status filter (spec §4.F).
var statusPriority = map[string]int{
	"RECRUITING":             0,
	"ACTIVE_NOT_RECRUITING":  1,
	"ENROLLING_BY_INVITATION": 2,
	"NOT_YET_RECRUITING":     3,
	"COMPLETED":              4,
	"UNKNOWN":                5,
	"WITHDRAWN":              6,
	"TERMINATED":             7,
	"SUSPENDED":               8,
}

const otherStatusPriority = 9

func priorityOf(status string) int {
	if p, ok := statusPriority[status]; ok {
		return p
	}
	return otherStatusPriority
}

// TrialRanked is the minimal shape SortByStatusPriority needs from a trial
// record: its status and NCT id (used as a stable tiebreaker).
type TrialRanked interface {
	StatusValue() string
	NCTValue() string
}

// SortByStatusPriority sorts trials by the documented status priority
// table, with NCT id as a stable tiebreaker (spec §4.F).
func SortByStatusPriority[T TrialRanked](trials []T) {
	sort.SliceStable(trials, func(i, j int) bool {
		pi, pj := priorityOf(trials[i].StatusValue()), priorityOf(trials[j].StatusValue())
		if pi != pj {
			return pi < pj
		}
		return trials[i].NCTValue() < trials[j].NCTValue()
	})
}
