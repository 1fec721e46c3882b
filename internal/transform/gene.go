// Package transform holds stateless DTO-to-entity conversion functions
// (spec §4.C). Every function here is pure: no I/O, no network calls —
// just field extraction, precedence folding, and display-string building
// from already-fetched source-client responses.
package transform

import (
	"strings"

	"github.com/tidwall/gjson"

	"github.com/petrsovadina/biomcp/internal/sources/mygene"
	"github.com/petrsovadina/biomcp/internal/sources/stringdb"
)

// Gene is the internal Gene record (spec §3).
type Gene struct {
	Symbol           string   `json:"symbol"`
	Name             string   `json:"name,omitempty"`
	EntrezID         int64    `json:"entrez_id,omitempty"`
	Type             string   `json:"type,omitempty"`
	Summary          string   `json:"summary,omitempty"`
	Aliases          []string `json:"aliases,omitempty"`
	UniProtAccession string   `json:"uniprot_accession,omitempty"`
	EnsemblGeneID    string   `json:"ensembl_gene_id,omitempty"`

	Pathways         []GenePathwayRef  `json:"pathways,omitempty"`
	PathwaysNote     string            `json:"pathways_note,omitempty"`
	Protein          *Protein          `json:"protein,omitempty"`
	ProteinNote      string            `json:"protein_note,omitempty"`
	GOAnnotations    []GOAnnotation    `json:"go,omitempty"`
	GONote           string            `json:"go_note,omitempty"`
	Interactions     []GeneInteraction `json:"interactions,omitempty"`
	InteractionsNote string            `json:"interactions_note,omitempty"`
	Enrichment       []EnrichmentTerm  `json:"enrichment,omitempty"`
	EnrichmentNote   string            `json:"enrichment_note,omitempty"`
	ClinicalContext  *GeneClinicalContext `json:"clinical_context,omitempty"`
	ClinicalContextNote string            `json:"clinical_context_note,omitempty"`
	CIViC            []CIViCEvidenceItem `json:"civic,omitempty"`
	CIViCNote        string            `json:"civic_note,omitempty"`
}

type GenePathwayRef struct {
	StableID string `json:"stable_id"`
	Name     string `json:"name"`
}

type GOAnnotation struct {
	GoID      string `json:"go_id"`
	GoName    string `json:"go_name,omitempty"`
	Qualifier string `json:"qualifier,omitempty"`
	Aspect    string `json:"aspect,omitempty"`
}

type GeneInteraction struct {
	Partner string  `json:"partner"`
	Score   float64 `json:"score"`
}

type EnrichmentTerm struct {
	Source string  `json:"source"`
	Term   string  `json:"term"`
	PValue float64 `json:"p_value"`
}

type GeneClinicalContext struct {
	Diseases []string `json:"diseases,omitempty"`
	Drugs    []string `json:"drugs,omitempty"`
}

// FromMyGeneHit converts a MyGene hit into the base Gene record.
// Uniprot/Ensembl come back as either a bare string or an array on the
// wire; gjson picks the first value either way without forcing a schema
// choice on the upstream document.
func FromMyGeneHit(hit *mygene.Hit) Gene {
	g := Gene{
		Symbol:   hit.Symbol,
		Name:     strings.TrimSpace(hit.Name),
		EntrezID: hit.Entrezgene,
		Type:     hit.Type,
		Summary:  strings.TrimSpace(hit.Summary),
		Aliases:  dedupeStrings(hit.Aliases),
	}
	g.UniProtAccession = firstStringOrArrayElem(hit.Uniprot, "Swiss-Prot")
	g.EnsemblGeneID = firstStringOrArrayElem(hit.Ensembl, "gene")
	return g
}

// firstStringOrArrayElem reads field (or the raw value itself when field
// is empty) from a json.RawMessage that may be a bare string, an array of
// strings, or an object whose field is either shape.
func firstStringOrArrayElem(raw []byte, field string) string {
	if len(raw) == 0 {
		return ""
	}
	r := gjson.ParseBytes(raw)
	target := r
	if field != "" && r.Get(field).Exists() {
		target = r.Get(field)
	}
	if target.IsArray() {
		arr := target.Array()
		if len(arr) == 0 {
			return ""
		}
		return arr[0].String()
	}
	return target.String()
}

func dedupeStrings(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}

// FromSTRINGInteractions converts STRING edges into GeneInteraction rows,
// preserving the score-desc/name-asc order the source client already
// applied (spec §4.D's "filter by partner not equal to self; sort by
// score desc, stable by name").
func FromSTRINGInteractions(symbol string, edges []stringdb.Interaction) []GeneInteraction {
	out := make([]GeneInteraction, 0, len(edges))
	for _, e := range edges {
		partner := e.PreferredB
		if strings.EqualFold(e.PreferredA, symbol) {
			partner = e.PreferredB
		} else if strings.EqualFold(e.PreferredB, symbol) {
			partner = e.PreferredA
		}
		out = append(out, GeneInteraction{Partner: partner, Score: e.Score})
	}
	return out
}
