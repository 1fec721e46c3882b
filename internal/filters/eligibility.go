package filters

import (
	"regexp"
	"strings"
)

var exclusionHeaderRe = regexp.MustCompile(`(?i)(Key\s+)?Exclusion Criteria:?`)

var negationCueRe = regexp.MustCompile(
	`(?i)\b(exclude[ds]?|ineligible|not allowed|must not|no prior|cannot|excluded)\b`)

// SplitEligibility splits free-text eligibility criteria into inclusion
// and exclusion halves at the first "(Key) Exclusion Criteria:" header
// (spec §4.F). When no header is found, the entire text is treated as
// the inclusion half and the exclusion half is empty.
func SplitEligibility(criteria string) (inclusion, exclusion string) {
	loc := exclusionHeaderRe.FindStringIndex(criteria)
	if loc == nil {
		return criteria, ""
	}
	return criteria[:loc[0]], criteria[loc[1]:]
}

// KeywordPasses implements the eligibility inclusion-verification rule
// (spec §4.F / §8 law): a keyword passes if it appears in an inclusion
// sentence with no negation cue in the same sentence, or if it does not
// appear in the exclusion half at all. Missing criteria (both halves
// empty) fails open, i.e. keeps the candidate.
func KeywordPasses(keyword, criteria string) bool {
	if strings.TrimSpace(criteria) == "" {
		return true
	}
	inclusion, exclusion := SplitEligibility(criteria)

	if sentenceContainsWithoutNegation(inclusion, keyword) {
		return true
	}
	return !strings.Contains(strings.ToLower(exclusion), strings.ToLower(keyword))
}

func sentenceContainsWithoutNegation(text, keyword string) bool {
	lowerKeyword := strings.ToLower(keyword)
	for _, sentence := range splitSentences(text) {
		lower := strings.ToLower(sentence)
		if strings.Contains(lower, lowerKeyword) && !negationCueRe.MatchString(sentence) {
			return true
		}
	}
	return false
}

var sentenceBoundaryRe = regexp.MustCompile(`[.\n;]+`)

func splitSentences(text string) []string {
	return sentenceBoundaryRe.Split(text, -1)
}
