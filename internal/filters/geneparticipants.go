package filters

import "regexp"

// geneFamilyExpansions maps a known gene-family shorthand token
// (frequently seen in Reactome participant free text) to its member
// HGNC symbols, per spec §4.D's Pathway.get gene-extraction heuristic.
var geneFamilyExpansions = map[string][]string{
	"RAS": {"HRAS", "KRAS", "NRAS"},
	"RAF": {"ARAF", "BRAF", "RAF1"},
	"MEK": {"MAP2K1", "MAP2K2"},
	"ERK": {"MAPK1", "MAPK3"},
	"PI3K": {"PIK3CA", "PIK3CB", "PIK3CD"},
}

// moleculeShorthands are small-molecule/nucleic-acid tokens that look
// like gene symbols but aren't, and must be filtered out.
var moleculeShorthands = map[string]bool{
	"ATP": true, "ADP": true, "GTP": true, "GDP": true,
	"DNA": true, "RNA": true, "NAD": true, "NADH": true,
	"H2O": true, "CO2": true, "PI": true,
}

// aminoAcidSubstitutionRe rejects protein-change tokens like "V600E".
var aminoAcidSubstitutionRe = regexp.MustCompile(`^[A-Z]\d+[A-Z]$`)

// residueSiteRe rejects bare residue-site tokens like "S338".
var residueSiteRe = regexp.MustCompile(`^[A-Z]\d+$`)

// geneTokenRe is the shape a candidate gene-symbol token must match
// before family expansion or shorthand filtering is even considered.
var geneTokenRe = regexp.MustCompile(`^[A-Z][A-Z0-9-]{0,19}$`)

// ExtractGeneSymbolsFromParticipants applies the Pathway.get participant
// gene-symbol extraction heuristic to a list of free-text participant
// names: reject amino-acid substitutions and residue sites, expand known
// family tokens, filter small-molecule shorthands, and dedupe.
func ExtractGeneSymbolsFromParticipants(names []string) []string {
	seen := make(map[string]bool)
	var out []string
	add := func(symbol string) {
		if !seen[symbol] {
			seen[symbol] = true
			out = append(out, symbol)
		}
	}

	for _, name := range names {
		token := normalizeParticipantToken(name)
		if token == "" {
			continue
		}
		if aminoAcidSubstitutionRe.MatchString(token) || residueSiteRe.MatchString(token) {
			continue
		}
		if moleculeShorthands[token] {
			continue
		}
		if !geneTokenRe.MatchString(token) {
			continue
		}
		if expansion, ok := geneFamilyExpansions[token]; ok {
			for _, g := range expansion {
				add(g)
			}
			continue
		}
		add(token)
	}
	return out
}

func normalizeParticipantToken(name string) string {
	// Reactome participant display names are frequently a bare gene
	// symbol (e.g. "BRAF") or "BRAF [cytosol]"; take the first
	// whitespace-delimited token.
	end := len(name)
	for i, r := range name {
		if r == ' ' || r == '[' || r == '(' {
			end = i
			break
		}
	}
	return name[:end]
}
