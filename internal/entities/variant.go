package entities

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/petrsovadina/biomcp/internal/bmerrors"
	"github.com/petrsovadina/biomcp/internal/ids"
	"github.com/petrsovadina/biomcp/internal/sources/myvariant"
	"github.com/petrsovadina/biomcp/internal/transform"
)

// VariantSections is the enumeration accepted by Variant.get's sections
// argument (spec §4.D's representative Variant.get pipeline).
var VariantSections = []string{"alphagenome", "dbnsfp", "cosmic", "cgi", "civic", "cbioportal", "gwas"}

// alphaGenomeSequenceWindow is the regulatory-context window (bp) AlphaGenome
// scores around each variant.
const alphaGenomeSequenceWindow = 2048

type VariantEngine struct {
	Sources *Sources
}

// Get parses id into one of rsID | HgvsGenomic | GeneProteinChange,
// resolves the MyVariant primary record, then runs the requested
// enrichment sections (spec §4.D).
func (e *VariantEngine) Get(ctx context.Context, id string, sectionTokens []string) (*transform.Variant, error) {
	kind, err := ids.ClassifyVariantID(id)
	if err != nil {
		return nil, err
	}
	sections, err := ParseSections(sectionTokens, VariantSections)
	if err != nil {
		return nil, err
	}

	hit, gene, proteinChange, err := e.resolvePrimary(ctx, kind, id)
	if err != nil {
		return nil, err
	}
	if hit == nil {
		return nil, &bmerrors.NotFound{Entity: "variant", ID: id, Suggestion: "search variant " + id}
	}
	variant := transform.FromMyVariantHit(hit)

	var enrichments []SectionEnrichment
	if sections["alphagenome"] {
		enrichments = append(enrichments, SectionEnrichment{Name: "alphagenome", Apply: func(ctx context.Context) error {
			if !e.Sources.AlphaGenome.Authorized() {
				variant.AlphaGenomeNote = "AlphaGenome predictions unavailable: ALPHAGENOME_API_KEY not configured"
				return nil
			}
			pred, err := e.Sources.AlphaGenome.PredictVariantEffect(ctx, chromWithPrefix(variant.Chromosome), variant.Position, variant.RefAllele, variant.AltAllele, alphaGenomeSequenceWindow)
			if err != nil {
				variant.AlphaGenomeNote = Note("AlphaGenome", err.Error())
				return err
			}
			if pred != nil {
				raw, err := json.Marshal(pred)
				if err != nil {
					return err
				}
				variant.AlphaGenome = raw
			}
			return nil
		}})
	}
	if sections["dbnsfp"] {
		enrichments = append(enrichments, SectionEnrichment{Name: "dbnsfp", Apply: func(ctx context.Context) error {
			pred, err := e.Sources.DBNSFP.GetByHGVS(ctx, id)
			if err != nil {
				variant.DBNSFPNote = Note("dbNSFP", err.Error())
				return err
			}
			if pred != nil {
				variant.DBNSFP = pred.Scores
			}
			return nil
		}})
	}
	if sections["cosmic"] && gene != "" && proteinChange != "" {
		enrichments = append(enrichments, SectionEnrichment{Name: "cosmic", Apply: func(ctx context.Context) error {
			if !e.Sources.COSMIC.Authorized() {
				variant.COSMICNote = "COSMIC lookups unavailable: COSMIC_API_TOKEN not configured"
				return nil
			}
			muts, err := e.Sources.COSMIC.SearchByGeneAAChange(ctx, gene, proteinChange)
			if err != nil {
				variant.COSMICNote = Note("COSMIC", err.Error())
				return err
			}
			variant.COSMICMutations = transform.FromCOSMICMutations(muts)
			return nil
		}})
	}
	if sections["cgi"] && gene != "" {
		enrichments = append(enrichments, SectionEnrichment{Name: "cgi", Apply: func(ctx context.Context) error {
			biomarkers, err := e.Sources.CGI.BiomarkersForGene(ctx, gene)
			if err != nil {
				variant.CGINote = Note("CGI", err.Error())
				return err
			}
			variant.CGIBiomarkers = transform.FromCGIBiomarkers(biomarkers)
			return nil
		}})
	}
	if sections["civic"] && gene != "" {
		enrichments = append(enrichments, SectionEnrichment{Name: "civic", Apply: func(ctx context.Context) error {
			raw, err := e.Sources.CIViC.EvidenceItemsForVariant(ctx, proteinChange)
			if err != nil {
				variant.CIViCNote = Note("CIViC", err.Error())
				return err
			}
			variant.CIViCEvidence = transform.FromCIViCEvidence(raw)
			return nil
		}})
	}
	if sections["cbioportal"] {
		enrichments = append(enrichments, SectionEnrichment{Name: "cbioportal", Apply: func(ctx context.Context) error {
			variant.CBioPortalNote = "cBioPortal lookup requires a study-specific molecular profile id; use `variant cbioportal <id> <profile>`"
			return nil
		}})
	}
	if sections["gwas"] && variant.RsID != "" {
		enrichments = append(enrichments, SectionEnrichment{Name: "gwas", Apply: func(ctx context.Context) error {
			assocs, err := e.Sources.GWASCatalog.AssociationsForRsID(ctx, variant.RsID, 0, 20)
			if err != nil {
				variant.GWASNote = Note("GWAS Catalog", err.Error())
				return err
			}
			if assocs != nil {
				variant.GWASAssociations = transform.FromGWASAssociations(assocs.Embedded.Associations)
			}
			return nil
		}})
	}

	RunSections(ctx, enrichments)
	return &variant, nil
}

// chromWithPrefix normalizes a bare chromosome name ("7") to AlphaGenome's
// expected "chr7" form, leaving an already-prefixed value untouched.
func chromWithPrefix(chrom string) string {
	if chrom == "" || strings.HasPrefix(chrom, "chr") {
		return chrom
	}
	return "chr" + chrom
}

// resolvePrimary dispatches to the MyVariant lookup appropriate for the
// identifier kind, also returning the gene symbol and normalized
// protein-change (when the identifier carried one) for downstream
// cancer-knowledge-base sections.
func (e *VariantEngine) resolvePrimary(ctx context.Context, kind ids.VariantKind, id string) (hit *myvariant.Hit, gene, proteinChange string, err error) {
	switch kind {
	case ids.VariantRsID:
		h, err := e.Sources.MyVariant.SearchByRsID(ctx, id)
		return h, "", "", err
	case ids.VariantHgvsGenomic:
		h, err := e.Sources.MyVariant.GetByHGVS(ctx, id)
		return h, "", "", err
	case ids.VariantGeneProteinChange:
		parts := strings.SplitN(id, " ", 2)
		g := strings.ToUpper(parts[0])
		change := ""
		if len(parts) > 1 {
			change = ids.NormalizeProteinChange(parts[1])
		}
		h, err := e.Sources.MyVariant.SearchByGeneProteinChange(ctx, g, change)
		return h, g, change, err
	default:
		return nil, "", "", bmerrors.NewInvalidArgument("unrecognized variant id %q", id)
	}
}
