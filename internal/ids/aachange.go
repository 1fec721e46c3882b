package ids

import (
	"regexp"
	"strings"
)

var threeToOne = map[string]byte{
	"Ala": 'A', "Arg": 'R', "Asn": 'N', "Asp": 'D', "Cys": 'C',
	"Gln": 'Q', "Glu": 'E', "Gly": 'G', "His": 'H', "Ile": 'I',
	"Leu": 'L', "Lys": 'K', "Met": 'M', "Phe": 'F', "Pro": 'P',
	"Ser": 'S', "Thr": 'T', "Trp": 'W', "Tyr": 'Y', "Val": 'V',
	"Ter": '*',
}

// p.Val600Glu, p.V600E (already normalized), or bare Val600Glu.
var proteinChangeRe = regexp.MustCompile(`^(?:p\.)?([A-Za-z]{3})(\d+)([A-Za-z]{3}|\*)$`)

// NormalizeProteinChange maps three-letter amino-acid protein-change
// notation to the one-letter mutation-string form used by downstream
// queries (p.Val600Glu -> V600E). Malformed or already-one-letter inputs
// are returned unchanged, per spec §8's round-trip invariant.
func NormalizeProteinChange(change string) string {
	trimmed := strings.TrimSpace(change)
	m := proteinChangeRe.FindStringSubmatch(trimmed)
	if m == nil {
		return change
	}
	from, ok1 := threeToOne[toTitleCase(m[1])]
	pos := m[2]
	toRaw := m[3]
	var to byte
	ok2 := true
	if toRaw == "*" {
		to = '*'
	} else {
		to, ok2 = threeToOne[toTitleCase(toRaw)]
	}
	if !ok1 || !ok2 {
		return change
	}
	return strings.ToUpper(string(from)) + pos + strings.ToUpper(string(to))
}

// toTitleCase folds a three-letter amino-acid code to "Xxx" form regardless
// of the case it arrived in.
func toTitleCase(code string) string {
	if len(code) == 0 {
		return code
	}
	lower := strings.ToLower(code)
	return strings.ToUpper(lower[:1]) + lower[1:]
}
