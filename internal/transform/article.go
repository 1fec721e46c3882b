package transform

import (
	"regexp"
	"strings"

	"github.com/petrsovadina/biomcp/internal/sources/europepmc"
	"github.com/petrsovadina/biomcp/internal/sources/pubtator3"
)

// Article is the internal Article record (spec §3).
type Article struct {
	PMID             string `json:"pmid,omitempty"`
	PMCID            string `json:"pmcid,omitempty"`
	DOI              string `json:"doi,omitempty"`
	Title            string `json:"title,omitempty"`
	Authors          string `json:"authors,omitempty"`
	Journal          string `json:"journal,omitempty"`
	PubYear          string `json:"pub_year,omitempty"`
	Abstract         string `json:"abstract,omitempty"`
	OpenAccess       bool   `json:"open_access"`
	Retracted        bool   `json:"retracted"`
	PubtatorFallback bool   `json:"pubtator_fallback,omitempty"`

	FullTextPath string `json:"full_text_path,omitempty"`
	FullTextNote string `json:"full_text_note,omitempty"`
}

func (a Article) IsRetracted() bool    { return a.Retracted }
func (a Article) IdentityKey() string  { return firstNonEmpty(a.PMID, a.PMCID, a.DOI) }

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// FromPubTator3Document converts a PubTator3 bioc document into the base
// Article record. PubTator3's bioc-json does not carry bibliographic
// metadata (title/journal/year), so those fields are left for a later
// Europe PMC metadata layer when available.
func FromPubTator3Document(doc *pubtator3.BiocDocument) Article {
	a := Article{PMID: doc.PMID}
	for _, p := range doc.Passages {
		if p.InfonType == "title" || p.Infons["type"] == "title" {
			a.Title = p.Text
		}
		if p.InfonType == "abstract" || p.Infons["type"] == "abstract" {
			a.Abstract = p.Text
		}
	}
	return a
}

var retractedPubTypeRe = regexp.MustCompile(`(?i)retracted`)

// FromEuropePMCResult converts a Europe PMC search/fallback result into
// the base Article record.
func FromEuropePMCResult(r europepmc.Result) Article {
	a := Article{
		PMID:       r.PMID,
		PMCID:      r.PMCID,
		DOI:        r.DOI,
		Title:      r.Title,
		Authors:    r.AuthorStr,
		Journal:    r.JournalInfo.Journal.Title,
		PubYear:    r.PubYear,
		Abstract:   r.AbstractText,
		OpenAccess: strings.EqualFold(r.IsOpenAccess, "Y"),
	}
	for _, pt := range r.PubTypeList.PubType {
		if retractedPubTypeRe.MatchString(pt) {
			a.Retracted = true
			break
		}
	}
	return a
}

// MergeEuropePMCMetadata layers Europe PMC bibliographic metadata over a
// PubTator3-derived record, per spec §4.C ("merge partial records from
// multiple sources").
func MergeEuropePMCMetadata(base Article, meta europepmc.Result) Article {
	merged := base
	if merged.Title == "" {
		merged.Title = meta.Title
	}
	merged.Authors = meta.AuthorStr
	merged.Journal = meta.JournalInfo.Journal.Title
	merged.PubYear = meta.PubYear
	if merged.Abstract == "" {
		merged.Abstract = meta.AbstractText
	}
	merged.OpenAccess = strings.EqualFold(meta.IsOpenAccess, "Y")
	merged.PMCID = firstNonEmpty(merged.PMCID, meta.PMCID)
	merged.DOI = firstNonEmpty(merged.DOI, meta.DOI)
	return merged
}
