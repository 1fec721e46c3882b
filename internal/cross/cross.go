// Package cross implements the cross-entity pivot helpers spec §4.E
// names (gene→trials, pathway→drugs, variant→articles, ...). Each pivot
// is a thin orchestrator that builds the target entity's filter struct
// from the source entity's identifiers and delegates to the already-
// wired *entities.Engines — no pivot talks to a source client directly
// except where the target has no dedicated Engine method of its own.
package cross

import (
	"context"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/petrsovadina/biomcp/internal/entities"
	"github.com/petrsovadina/biomcp/internal/ids"
	"github.com/petrsovadina/biomcp/internal/sources/oncokb"
	"github.com/petrsovadina/biomcp/internal/transform"
)

type Pivots struct {
	Engines *entities.Engines
}

// GeneToTrials finds trials whose eligibility names gene as a biomarker.
func (p *Pivots) GeneToTrials(ctx context.Context, gene string, limit int) ([]transform.Trial, entities.PaginationMeta, error) {
	return p.Engines.Trial.Search(ctx, entities.TrialSearchFilters{Biomarker: gene, Source: "ctgov"}, limit, 0)
}

// GeneToDrugs finds drugs whose DrugBank/MyChem record names gene.
func (p *Pivots) GeneToDrugs(ctx context.Context, gene string, limit int) ([]transform.Drug, entities.PaginationMeta, error) {
	return p.Engines.Drug.Search(ctx, gene, limit, 0)
}

// GeneToArticles finds articles mentioning gene.
func (p *Pivots) GeneToArticles(ctx context.Context, gene string, limit int) ([]transform.Article, entities.PaginationMeta, error) {
	return p.Engines.Article.Search(ctx, entities.ArticleSearchFilters{Query: gene}, limit, "")
}

// GeneToPathways reuses Gene.get's REAC-filtered g:Profiler enrichment.
func (p *Pivots) GeneToPathways(ctx context.Context, gene string) ([]transform.GenePathwayRef, error) {
	return p.Engines.Gene.PathwaysForGene(ctx, gene)
}

// VariantToTrials normalizes the variant identifier into a "GENE change"
// mutation string and searches trials by it (spec §4.E).
func (p *Pivots) VariantToTrials(ctx context.Context, variantID string, limit int) ([]transform.Trial, entities.PaginationMeta, error) {
	return p.Engines.Trial.Search(ctx, entities.TrialSearchFilters{Mutation: normalizeMutationString(variantID), Source: "ctgov"}, limit, 0)
}

// VariantToArticles finds articles mentioning the variant identifier.
func (p *Pivots) VariantToArticles(ctx context.Context, variantID string, limit int) ([]transform.Article, entities.PaginationMeta, error) {
	return p.Engines.Article.Search(ctx, entities.ArticleSearchFilters{Query: variantID}, limit, "")
}

// VariantToOncoKB annotates a gene/protein-change pair against OncoKB.
// Returns nil, nil when no token is configured, per spec §6's
// explanatory-note-rather-than-failing contract for token-gated sources.
func (p *Pivots) VariantToOncoKB(ctx context.Context, gene, proteinChange string) (*oncokb.Annotation, error) {
	return p.Engines.Variant.Sources.OncoKB.AnnotateProteinChange(ctx, gene, proteinChange)
}

func normalizeMutationString(variantID string) string {
	gene, change, ok := strings.Cut(variantID, " ")
	if !ok {
		return variantID
	}
	return strings.ToUpper(gene) + " " + ids.NormalizeProteinChange(change)
}

// DrugToTrials finds trials studying drug as a named condition/arm.
func (p *Pivots) DrugToTrials(ctx context.Context, drug string, limit int) ([]transform.Trial, entities.PaginationMeta, error) {
	return p.Engines.Trial.Search(ctx, entities.TrialSearchFilters{Condition: drug, Source: "ctgov"}, limit, 0)
}

// DrugToAdverseEvents runs an OpenFDA drug-event search scoped to drug.
func (p *Pivots) DrugToAdverseEvents(ctx context.Context, drug string, limit int) ([]transform.AdverseEvent, entities.PaginationMeta, error) {
	search := fmt.Sprintf(`patient.drug.medicinalproduct:"%s"`, drug)
	return p.Engines.AdverseEvent.SearchDrugEvents(ctx, search, limit, 0)
}

// DiseaseToTrials, DiseaseToArticles, and DiseaseToDrugs pivot a disease
// name to its associated trials/articles/drugs (spec §4.E).
func (p *Pivots) DiseaseToTrials(ctx context.Context, disease string, limit int) ([]transform.Trial, entities.PaginationMeta, error) {
	return p.Engines.Trial.Search(ctx, entities.TrialSearchFilters{Condition: disease, Source: "ctgov"}, limit, 0)
}

func (p *Pivots) DiseaseToArticles(ctx context.Context, disease string, limit int) ([]transform.Article, entities.PaginationMeta, error) {
	return p.Engines.Article.Search(ctx, entities.ArticleSearchFilters{Query: disease}, limit, "")
}

func (p *Pivots) DiseaseToDrugs(ctx context.Context, disease string, limit int) ([]transform.Drug, entities.PaginationMeta, error) {
	return p.Engines.Drug.Search(ctx, disease, limit, 0)
}

// ProteinToStructures reuses Protein.get's structures section.
func (p *Pivots) ProteinToStructures(ctx context.Context, accessionOrSymbol string, offset, limit int) ([]transform.StructureRef, error) {
	protein, err := p.Engines.Protein.Get(ctx, accessionOrSymbol, []string{"structures"}, offset, limit)
	if err != nil {
		return nil, err
	}
	return protein.Structures, nil
}

// ArticleToEntities extracts the distinct gene/disease/chemical/mutation
// mentions PubTator3 annotated in an article, grouped by entity type.
// PubTator3's bioc-json carries these as a flat annotations array with
// infons.type/infons.identifier and a text span; shape varies enough
// across document versions that this reads defensively with gjson
// rather than a fixed struct (spec §4.E).
func (p *Pivots) ArticleToEntities(ctx context.Context, pmid string) (map[string][]string, error) {
	doc, err := p.Engines.Variant.Sources.PubTator3.GetByPMID(ctx, pmid)
	if err != nil {
		return nil, err
	}
	out := make(map[string][]string)
	seen := make(map[string]bool)
	addFrom := func(raw []byte) {
		for _, ann := range gjson.ParseBytes(raw).Array() {
			typ := ann.Get("infons.type").String()
			text := ann.Get("text").String()
			if typ == "" || text == "" {
				continue
			}
			key := typ + "|" + strings.ToLower(text)
			if seen[key] {
				continue
			}
			seen[key] = true
			out[typ] = append(out[typ], text)
		}
	}
	addFrom(doc.Annotations)
	for _, passage := range doc.Passages {
		if raw, ok := passage.Infons["annotations"]; ok {
			addFrom([]byte(raw))
		}
	}
	return out, nil
}
