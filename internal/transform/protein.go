package transform

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/petrsovadina/biomcp/internal/sources/interpro"
	"github.com/petrsovadina/biomcp/internal/sources/uniprot"
)

// Protein is the internal Protein record (spec §3).
type Protein struct {
	Accession          string            `json:"accession"`
	RecommendedName    string            `json:"recommended_name,omitempty"`
	GeneSymbol         string            `json:"gene_symbol,omitempty"`
	SequenceLen        int               `json:"sequence_length,omitempty"`
	Structures         []StructureRef    `json:"structures,omitempty"`
	StructuresNote     string            `json:"structures_note,omitempty"`
	Domains            []DomainRef       `json:"domains,omitempty"`
	DomainsNote        string            `json:"domains_note,omitempty"`
	Interactions       []GeneInteraction `json:"interactions,omitempty"`
	InteractionsNote   string            `json:"interactions_note,omitempty"`
}

// StructureRef is a display-ready PDB structure summary, per spec §4.C's
// "<PDB_ID> (<method>, <resolution>)" derived field.
type StructureRef struct {
	PDBID      string   `json:"pdb_id"`
	Method     string   `json:"method,omitempty"`
	Resolution *float64 `json:"resolution,omitempty"`
	Summary    string   `json:"summary"`
}

type DomainRef struct {
	Accession string `json:"accession"`
	Name      string `json:"name"`
	Type      string `json:"type"`
}

// FromUniProtEntry converts a UniProt entry into the base Protein record.
// proteinDescription and genes are picked apart with gjson since UniProt's
// JSON shape nests recommendedName/submissionNames and gene symbols
// several levels deep and varies across entry types (reviewed vs.
// unreviewed, single vs. multi-gene). recommendedName folds over
// submissionNames by the documented precedence (spec §4.C: "fold
// synonymous fields... by defined precedence").
func FromUniProtEntry(entry *uniprot.Entry) Protein {
	desc := gjson.ParseBytes(entry.ProteinDesc)
	genes := gjson.ParseBytes(entry.Genes)
	seq := gjson.ParseBytes(entry.Sequence)

	p := Protein{
		Accession:   entry.PrimaryAccession,
		GeneSymbol:  genes.Get("0.geneName.value").String(),
		SequenceLen: int(seq.Get("length").Int()),
	}
	if name := desc.Get("recommendedName.fullName.value"); name.Exists() {
		p.RecommendedName = name.String()
	} else if name := desc.Get("submissionNames.0.fullName.value"); name.Exists() {
		p.RecommendedName = name.String()
	}
	return p
}

// FromUniProtStructures builds sorted, display-ready StructureRef rows
// from the entry's PDB cross-references, sorted by ascending resolution
// with nulls last (spec §4.C).
func FromUniProtStructures(entry *uniprot.Entry) []StructureRef {
	xrefs := gjson.ParseBytes(entry.CrossReferences).Array()
	out := make([]StructureRef, 0, len(xrefs))
	for _, x := range xrefs {
		if x.Get("database").String() != "PDB" {
			continue
		}
		pdbID := x.Get("id").String()
		var method string
		var resolution *float64
		for _, prop := range x.Get("properties").Array() {
			switch prop.Get("key").String() {
			case "Method":
				method = prop.Get("value").String()
			case "Resolution":
				if r, ok := parseResolution(prop.Get("value").String()); ok {
					resolution = &r
				}
			}
		}
		out = append(out, StructureRef{
			PDBID:      pdbID,
			Method:     method,
			Resolution: resolution,
			Summary:    structureSummary(pdbID, method, resolution),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		ri, rj := out[i].Resolution, out[j].Resolution
		if ri == nil {
			return false
		}
		if rj == nil {
			return true
		}
		return *ri < *rj
	})
	return out
}

func parseResolution(value string) (float64, bool) {
	value = strings.TrimSuffix(strings.TrimSpace(value), " A")
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

func structureSummary(pdbID, method string, resolution *float64) string {
	if resolution != nil {
		return fmt.Sprintf("%s (%s, %.2fÅ)", pdbID, method, *resolution)
	}
	if method != "" {
		return fmt.Sprintf("%s (%s)", pdbID, method)
	}
	return pdbID
}

// FromInterProDomains converts InterPro domain hits into DomainRef rows.
func FromInterProDomains(domains []interpro.Domain) []DomainRef {
	out := make([]DomainRef, 0, len(domains))
	for _, d := range domains {
		out = append(out, DomainRef{
			Accession: d.Metadata.Accession,
			Name:      d.Metadata.Name,
			Type:      d.Metadata.Type,
		})
	}
	return out
}
