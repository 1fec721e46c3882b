package entities

import (
	"context"
	"strings"

	"github.com/petrsovadina/biomcp/internal/bmerrors"
	"github.com/petrsovadina/biomcp/internal/filters"
	"github.com/petrsovadina/biomcp/internal/ids"
	"github.com/petrsovadina/biomcp/internal/sources/uniprot"
	"github.com/petrsovadina/biomcp/internal/transform"
)

// GeneSections is the enumeration accepted by Gene.get's sections
// argument (spec §4.D's representative Gene.get pipeline).
var GeneSections = []string{"pathways", "protein", "go", "interactions", "enrichment", "clinical_context", "civic"}

// GeneEngine orchestrates Gene.get/search against the wired Sources.
type GeneEngine struct {
	Sources *Sources
}

// Get resolves a gene symbol to its MyGene base record, then runs the
// requested sections concurrently (spec §4.D's representative pipeline).
func (e *GeneEngine) Get(ctx context.Context, symbol string, sectionTokens []string) (*transform.Gene, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if err := ids.ValidateGeneSymbol(symbol); err != nil {
		return nil, err
	}
	sections, err := ParseSections(sectionTokens, GeneSections)
	if err != nil {
		return nil, err
	}

	hit, err := e.Sources.MyGene.GetBySymbol(ctx, symbol)
	if err != nil {
		return nil, err
	}
	if hit == nil {
		return nil, &bmerrors.NotFound{Entity: "gene", ID: symbol, Suggestion: "search gene " + symbol}
	}
	gene := transform.FromMyGeneHit(hit)

	var enrichments []SectionEnrichment
	if sections["pathways"] {
		enrichments = append(enrichments, SectionEnrichment{Name: "pathways", Apply: func(ctx context.Context) error {
			refs, err := e.PathwaysForGene(ctx, symbol)
			if err != nil {
				gene.PathwaysNote = Note("Reactome", err.Error())
				return err
			}
			gene.Pathways = refs
			return nil
		}})
	}
	if sections["protein"] {
		enrichments = append(enrichments, SectionEnrichment{Name: "protein", Apply: func(ctx context.Context) error {
			p, err := e.proteinForGene(ctx, symbol, gene.UniProtAccession)
			if err != nil {
				gene.ProteinNote = Note("UniProt", err.Error())
				return err
			}
			gene.Protein = p
			return nil
		}})
	}
	if sections["go"] {
		enrichments = append(enrichments, SectionEnrichment{Name: "go", Apply: func(ctx context.Context) error {
			annotations, err := e.goAnnotationsForGene(ctx, gene.UniProtAccession)
			if err != nil {
				gene.GONote = Note("QuickGO", err.Error())
				return err
			}
			gene.GOAnnotations = annotations
			return nil
		}})
	}
	if sections["interactions"] {
		enrichments = append(enrichments, SectionEnrichment{Name: "interactions", Apply: func(ctx context.Context) error {
			edges, err := e.Sources.STRING.Interactions(ctx, symbol, 9606, 20)
			if err != nil {
				gene.InteractionsNote = Note("STRING", err.Error())
				return err
			}
			gene.Interactions = transform.FromSTRINGInteractions(symbol, edges)
			return nil
		}})
	}
	if sections["enrichment"] {
		enrichments = append(enrichments, SectionEnrichment{Name: "enrichment", Apply: func(ctx context.Context) error {
			results, err := e.Sources.GProfiler.Enrich(ctx, "hsapiens", []string{symbol}, nil)
			if err != nil {
				gene.EnrichmentNote = Note("g:Profiler", err.Error())
				return err
			}
			for _, r := range results {
				gene.Enrichment = append(gene.Enrichment, transform.EnrichmentTerm{Source: r.Source, Term: r.Name, PValue: r.PValue})
			}
			return nil
		}})
	}
	if sections["clinical_context"] {
		enrichments = append(enrichments, SectionEnrichment{Name: "clinical_context", Apply: func(ctx context.Context) error {
			cc, err := e.clinicalContextForGene(ctx, gene.EnsemblGeneID)
			if err != nil {
				gene.ClinicalContextNote = Note("Open Targets", err.Error())
				return err
			}
			gene.ClinicalContext = cc
			return nil
		}})
	}
	if sections["civic"] {
		enrichments = append(enrichments, SectionEnrichment{Name: "civic", Apply: func(ctx context.Context) error {
			raw, err := e.Sources.CIViC.EvidenceItemsForVariant(ctx, symbol)
			if err != nil {
				gene.CIViCNote = Note("CIViC", err.Error())
				return err
			}
			gene.CIViC = transform.FromCIViCEvidence(raw)
			return nil
		}})
	}

	RunSections(ctx, enrichments)
	return &gene, nil
}

// PathwaysForGene runs a REAC-filtered g:Profiler enrichment for symbol
// and is reused directly by the gene→pathways cross-entity pivot.
func (e *GeneEngine) PathwaysForGene(ctx context.Context, symbol string) ([]transform.GenePathwayRef, error) {
	results, err := e.Sources.GProfiler.Enrich(ctx, "hsapiens", []string{symbol}, []string{"REAC"})
	if err != nil {
		return nil, err
	}
	refs := make([]transform.GenePathwayRef, 0, len(results))
	for _, r := range results {
		refs = append(refs, transform.GenePathwayRef{StableID: r.NativeID, Name: r.Name})
	}
	return refs, nil
}

func (e *GeneEngine) proteinForGene(ctx context.Context, symbol, accession string) (*transform.Protein, error) {
	var entry *uniprot.Entry
	var err error
	if accession != "" {
		entry, err = e.Sources.UniProt.GetByAccession(ctx, accession)
	} else {
		entry, err = e.Sources.UniProt.SearchBySymbol(ctx, symbol, "9606")
	}
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, nil
	}
	p := transform.FromUniProtEntry(entry)
	return &p, nil
}

func (e *GeneEngine) goAnnotationsForGene(ctx context.Context, accession string) ([]transform.GOAnnotation, error) {
	if accession == "" {
		return nil, nil
	}
	raw, err := e.Sources.QuickGO.AnnotationsForProtein(ctx, accession, 50)
	if err != nil {
		return nil, err
	}
	missing := make([]string, 0)
	out := make([]transform.GOAnnotation, 0, len(raw))
	for _, a := range raw {
		out = append(out, transform.GOAnnotation{GoID: a.GoID, GoName: a.GoName, Qualifier: a.Qualifier, Aspect: a.GoAspect})
		if a.GoName == "" {
			missing = append(missing, a.GoID)
		}
	}
	if len(missing) > 0 {
		names, err := e.Sources.QuickGO.TermNames(ctx, missing)
		if err == nil {
			for i := range out {
				if out[i].GoName == "" {
					out[i].GoName = names[out[i].GoID]
				}
			}
		}
	}
	return out, nil
}

func (e *GeneEngine) clinicalContextForGene(ctx context.Context, ensemblID string) (*transform.GeneClinicalContext, error) {
	if ensemblID == "" {
		return nil, nil
	}
	raw, err := e.Sources.OpenTargets.AssociatedDiseases(ctx, ensemblID, 10)
	if err != nil {
		return nil, err
	}
	return transform.FromOpenTargetsAssociations(raw), nil
}

// Search runs a MyGene query with offset pagination.
func (e *GeneEngine) Search(ctx context.Context, query string, limit, offset int) ([]transform.Gene, PaginationMeta, error) {
	if err := ValidateLimit(limit, MaxSearchLimit); err != nil {
		return nil, PaginationMeta{}, err
	}
	resp, err := e.Sources.MyGene.Search(ctx, filters.EscapeLucene(query), limit, offset)
	if err != nil {
		return nil, PaginationMeta{}, err
	}
	genes := make([]transform.Gene, 0, len(resp.Hits))
	for _, h := range resp.Hits {
		hit := h
		genes = append(genes, transform.FromMyGeneHit(&hit))
	}
	total := resp.Total
	return genes, NewOffsetPagination(offset, limit, len(genes), &total), nil
}
