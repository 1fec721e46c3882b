package transform

import (
	"encoding/json"

	"github.com/tidwall/gjson"

	"github.com/petrsovadina/biomcp/internal/sources/cgi"
	"github.com/petrsovadina/biomcp/internal/sources/cosmic"
	"github.com/petrsovadina/biomcp/internal/sources/gwascatalog"
	"github.com/petrsovadina/biomcp/internal/sources/myvariant"
)

// Variant is the internal Variant record (spec §3).
type Variant struct {
	ID            string   `json:"id"`
	Chromosome    string   `json:"chromosome,omitempty"`
	RefAllele     string   `json:"ref,omitempty"`
	AltAllele     string   `json:"alt,omitempty"`
	Position      int64    `json:"position,omitempty"`
	RsID          string   `json:"rsid,omitempty"`
	ClinVarSignificance string `json:"clinvar_significance,omitempty"`
	GnomadAlleleFreq    *float64 `json:"gnomad_allele_freq,omitempty"`
	CaddScore     *float64 `json:"cadd_score,omitempty"`

	AlphaGenome      json.RawMessage  `json:"alphagenome,omitempty"`
	AlphaGenomeNote  string           `json:"alphagenome_note,omitempty"`
	DBNSFP           json.RawMessage  `json:"dbnsfp,omitempty"`
	DBNSFPNote       string           `json:"dbnsfp_note,omitempty"`
	COSMICMutations  []CosmicMutation `json:"cosmic_mutations,omitempty"`
	COSMICNote       string           `json:"cosmic_note,omitempty"`
	CGIBiomarkers    []CGIBiomarker   `json:"cgi_biomarkers,omitempty"`
	CGINote          string           `json:"cgi_note,omitempty"`
	CIViCEvidence    []CIViCEvidenceItem `json:"civic_evidence,omitempty"`
	CIViCNote        string           `json:"civic_note,omitempty"`
	CBioPortalNote   string           `json:"cbioportal_note,omitempty"`
	GWASAssociations []GWASAssociation `json:"gwas_associations,omitempty"`
	GWASNote         string           `json:"gwas_note,omitempty"`
}

// CosmicMutation is one COSMIC gene/protein-change mutation hit, trimmed
// to the fields Variant.get's cancer-recurrence section surfaces.
type CosmicMutation struct {
	Gene             string `json:"gene"`
	MutationAA       string `json:"mutation_aa,omitempty"`
	MutationCDS      string `json:"mutation_cds,omitempty"`
	PrimarySite      string `json:"primary_site,omitempty"`
	PrimaryHistology string `json:"primary_histology,omitempty"`
	SampleCount      int    `json:"sample_count,omitempty"`
}

// FromCOSMICMutations converts COSMIC search hits into the Variant
// record's cosmic_mutations section.
func FromCOSMICMutations(mutations []cosmic.Mutation) []CosmicMutation {
	out := make([]CosmicMutation, 0, len(mutations))
	for _, m := range mutations {
		out = append(out, CosmicMutation{
			Gene:             m.GeneName,
			MutationAA:       m.MutationAA,
			MutationCDS:      m.MutationCDS,
			PrimarySite:      m.PrimarySite,
			PrimaryHistology: m.PrimaryHistology,
			SampleCount:      m.SampleCount,
		})
	}
	return out
}

// CGIBiomarker is one CGI biomarker-association row.
type CGIBiomarker struct {
	Gene        string `json:"gene"`
	Alteration  string `json:"alteration,omitempty"`
	Drug        string `json:"drug,omitempty"`
	Association string `json:"association,omitempty"`
	Evidence    string `json:"evidence,omitempty"`
	Tumor       string `json:"tumor,omitempty"`
}

// FromCGIBiomarkers converts CGI biomarker rows into the Variant record's
// cgi_biomarkers section.
func FromCGIBiomarkers(biomarkers []cgi.Biomarker) []CGIBiomarker {
	out := make([]CGIBiomarker, 0, len(biomarkers))
	for _, b := range biomarkers {
		out = append(out, CGIBiomarker{
			Gene:        b.Gene,
			Alteration:  b.Alteration,
			Drug:        b.Drug,
			Association: b.AssociatedWith,
			Evidence:    b.Evidence,
			Tumor:       b.Tumor,
		})
	}
	return out
}

// CIViCEvidenceItem is one CIViC clinical evidence item, extracted from
// the GraphQL response's nested variants/evidenceItems shape.
type CIViCEvidenceItem struct {
	ID            string   `json:"id,omitempty"`
	Significance  string   `json:"significance,omitempty"`
	EvidenceLevel string   `json:"evidence_level,omitempty"`
	EvidenceType  string   `json:"evidence_type,omitempty"`
	Description   string   `json:"description,omitempty"`
	Disease       string   `json:"disease,omitempty"`
	Therapies     []string `json:"therapies,omitempty"`
}

// FromCIViCEvidence extracts evidence items for the first matching
// variant node out of CIViC's raw GraphQL "data" payload via gjson,
// since the schema nests several levels deep and only this subset of
// fields matters for Variant.get's civic section.
func FromCIViCEvidence(raw json.RawMessage) []CIViCEvidenceItem {
	nodes := gjson.ParseBytes(raw).Get("variants.nodes.0.evidenceItems.nodes")
	items := nodes.Array()
	out := make([]CIViCEvidenceItem, 0, len(items))
	for _, n := range items {
		var therapies []string
		for _, t := range n.Get("therapies").Array() {
			if name := t.Get("name").String(); name != "" {
				therapies = append(therapies, name)
			}
		}
		out = append(out, CIViCEvidenceItem{
			ID:            n.Get("id").String(),
			Significance:  n.Get("significance").String(),
			EvidenceLevel: n.Get("evidenceLevel").String(),
			EvidenceType:  n.Get("evidenceType").String(),
			Description:   n.Get("description").String(),
			Disease:       n.Get("disease.name").String(),
			Therapies:     therapies,
		})
	}
	return out
}

// GWASAssociation is one GWAS Catalog association row.
type GWASAssociation struct {
	Trait         string  `json:"trait,omitempty"`
	RiskAllele    string  `json:"risk_allele,omitempty"`
	RiskFrequency string  `json:"risk_frequency,omitempty"`
	OrPerCopyNum  float64 `json:"or_per_copy_num,omitempty"`
	PValue        float64 `json:"p_value,omitempty"`
	PubmedID      string  `json:"pubmed_id,omitempty"`
}

// FromGWASAssociations converts GWAS Catalog association rows into the
// Variant record's gwas_associations section.
func FromGWASAssociations(associations []gwascatalog.Association) []GWASAssociation {
	out := make([]GWASAssociation, 0, len(associations))
	for _, a := range associations {
		out = append(out, GWASAssociation{
			Trait:         a.Trait,
			RiskAllele:    a.RiskAllele,
			RiskFrequency: a.RiskFrequency,
			OrPerCopyNum:  a.OrPerCopyNum,
			PValue:        a.PValue,
			PubmedID:      a.PubmedID,
		})
	}
	return out
}

// FromMyVariantHit converts a MyVariant hit into the base Variant record.
// Every annotation sub-object is a different ragged shape depending on
// variant type, so gjson extracts the handful of scalar fields the base
// record needs rather than unmarshaling into per-source structs.
func FromMyVariantHit(hit *myvariant.Hit) Variant {
	v := Variant{ID: hit.ID, Chromosome: hit.Chrom}

	vcf := gjson.ParseBytes(hit.Vcf)
	v.RefAllele = vcf.Get("ref").String()
	v.AltAllele = vcf.Get("alt").String()
	v.Position = vcf.Get("position").Int()

	dbsnp := gjson.ParseBytes(hit.Dbsnp)
	if rsid := dbsnp.Get("rsid"); rsid.Exists() {
		v.RsID = rsid.String()
	}

	clinvar := gjson.ParseBytes(hit.Clinvar)
	if sig := clinvar.Get("rcv.clinical_significance"); sig.Exists() {
		v.ClinVarSignificance = sig.String()
	}

	gnomad := gjson.ParseBytes(hit.Gnomad)
	if af := gnomad.Get("af.af"); af.Exists() {
		f := af.Float()
		v.GnomadAlleleFreq = &f
	}

	cadd := gjson.ParseBytes(hit.Cadd)
	if phred := cadd.Get("phred"); phred.Exists() {
		f := phred.Float()
		v.CaddScore = &f
	}

	return v
}
