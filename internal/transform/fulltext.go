package transform

import (
	"regexp"
	"strings"
)

var (
	xmlTagRe      = regexp.MustCompile(`<[^>]+>`)
	xmlEntityAmp  = strings.NewReplacer("&amp;", "&", "&lt;", "<", "&gt;", ">", "&quot;", `"`, "&apos;", "'")
	whitespaceRe  = regexp.MustCompile(`[ \t]+`)
	blankLinesRe  = regexp.MustCompile(`\n{3,}`)
)

// PlainTextFromJATSXML is the tag-stripping extractor spec §6 describes
// for converting Europe PMC / PMC OA full-text JATS/NXML into plain text.
// It is deliberately simple: strip tags, decode the handful of named
// entities JATS commonly uses, and collapse excess whitespace, rather
// than parsing the document into a structured tree the rest of the
// engine never consumes.
func PlainTextFromJATSXML(xml []byte) string {
	text := xmlTagRe.ReplaceAllString(string(xml), "\n")
	text = xmlEntityAmp.Replace(text)
	text = whitespaceRe.ReplaceAllString(text, " ")
	text = blankLinesRe.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}
