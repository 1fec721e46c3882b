package entities

import (
	"context"

	"github.com/petrsovadina/biomcp/internal/bmerrors"
	"github.com/petrsovadina/biomcp/internal/sources/uniprot"
	"github.com/petrsovadina/biomcp/internal/transform"
)

// ProteinSections is the enumeration accepted by Protein.get's sections
// argument (spec §4.D).
var ProteinSections = []string{"structures", "domains", "interactions"}

type ProteinEngine struct {
	Sources *Sources
}

// Get resolves accessionOrSymbol to a UniProt accession (via MyGene when
// the input doesn't look like one), then composes the requested optional
// sections: structures (paged), domains (InterPro), and interactions
// (STRING, filtered by self-partner) — spec §4.D.
func (e *ProteinEngine) Get(ctx context.Context, accessionOrSymbol string, sectionTokens []string, structOffset, structLimit int) (*transform.Protein, error) {
	sections, err := ParseSections(sectionTokens, ProteinSections)
	if err != nil {
		return nil, err
	}
	if err := ValidateLimit(structLimit, MaxStructuresLimit); err != nil {
		return nil, err
	}

	entry, symbol, err := e.resolveEntry(ctx, accessionOrSymbol)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, &bmerrors.NotFound{Entity: "protein", ID: accessionOrSymbol, Suggestion: "search protein " + accessionOrSymbol}
	}
	protein := transform.FromUniProtEntry(entry)

	var enrichments []SectionEnrichment
	if sections["structures"] {
		enrichments = append(enrichments, SectionEnrichment{Name: "structures", Apply: func(ctx context.Context) error {
			all := transform.FromUniProtStructures(entry)
			protein.Structures = pageStructures(all, structOffset, structLimit)
			return nil
		}})
	}
	if sections["domains"] {
		enrichments = append(enrichments, SectionEnrichment{Name: "domains", Apply: func(ctx context.Context) error {
			resp, err := e.Sources.InterPro.DomainsForProtein(ctx, protein.Accession, 50)
			if err != nil {
				protein.DomainsNote = Note("InterPro", err.Error())
				return err
			}
			protein.Domains = transform.FromInterProDomains(resp.Results)
			return nil
		}})
	}
	if sections["interactions"] && symbol != "" {
		enrichments = append(enrichments, SectionEnrichment{Name: "interactions", Apply: func(ctx context.Context) error {
			edges, err := e.Sources.STRING.Interactions(ctx, symbol, 9606, 20)
			if err != nil {
				protein.InteractionsNote = Note("STRING", err.Error())
				return err
			}
			protein.Interactions = transform.FromSTRINGInteractions(symbol, edges)
			return nil
		}})
	}
	RunSections(ctx, enrichments)
	return &protein, nil
}

func (e *ProteinEngine) resolveEntry(ctx context.Context, accessionOrSymbol string) (*uniprot.Entry, string, error) {
	if uniprot.LooksLikeAccession(accessionOrSymbol) {
		entry, err := e.Sources.UniProt.GetByAccession(ctx, accessionOrSymbol)
		return entry, "", err
	}
	hit, err := e.Sources.MyGene.GetBySymbol(ctx, accessionOrSymbol)
	if err != nil {
		return nil, "", err
	}
	if hit == nil {
		return nil, "", nil
	}
	if acc := transform.FromMyGeneHit(hit).UniProtAccession; acc != "" {
		entry, err := e.Sources.UniProt.GetByAccession(ctx, acc)
		return entry, accessionOrSymbol, err
	}
	entry, err := e.Sources.UniProt.SearchBySymbol(ctx, accessionOrSymbol, "9606")
	return entry, accessionOrSymbol, err
}

func pageStructures(all []transform.StructureRef, offset, limit int) []transform.StructureRef {
	if offset >= len(all) {
		return nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end]
}
