package filters

import "strings"

// luceneSpecial are characters Lucene-family query parsers (MyGene,
// UniProt, Europe PMC) treat specially and that must be backslash-escaped
// in a literal term, per spec §4.F.
const luceneSpecial = `+-&|!(){}[]^"~*?:\/`

// EscapeLucene backslash-escapes every Lucene special character in value.
func EscapeLucene(value string) string {
	var b strings.Builder
	for _, r := range value {
		if strings.ContainsRune(luceneSpecial, r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// QuoteLuceneIfNeeded phrase-quotes value when it contains whitespace or a
// forward slash, which would otherwise split it into multiple terms or be
// misread as field-scoping syntax.
func QuoteLuceneIfNeeded(value string) string {
	if strings.ContainsAny(value, " \t/") {
		return `"` + strings.ReplaceAll(value, `"`, `\"`) + `"`
	}
	return value
}
