package entities

import (
	"github.com/petrsovadina/biomcp/internal/httpsubstrate"
	"github.com/petrsovadina/biomcp/internal/sources/alphagenome"
	"github.com/petrsovadina/biomcp/internal/sources/cbioportal"
	"github.com/petrsovadina/biomcp/internal/sources/cgi"
	"github.com/petrsovadina/biomcp/internal/sources/civic"
	"github.com/petrsovadina/biomcp/internal/sources/cosmic"
	"github.com/petrsovadina/biomcp/internal/sources/cpic"
	"github.com/petrsovadina/biomcp/internal/sources/ctgov"
	"github.com/petrsovadina/biomcp/internal/sources/dbnsfp"
	"github.com/petrsovadina/biomcp/internal/sources/drugsfda"
	"github.com/petrsovadina/biomcp/internal/sources/enrichr"
	"github.com/petrsovadina/biomcp/internal/sources/europepmc"
	"github.com/petrsovadina/biomcp/internal/sources/gprofiler"
	"github.com/petrsovadina/biomcp/internal/sources/gwascatalog"
	"github.com/petrsovadina/biomcp/internal/sources/idconverter"
	"github.com/petrsovadina/biomcp/internal/sources/interpro"
	"github.com/petrsovadina/biomcp/internal/sources/monarch"
	"github.com/petrsovadina/biomcp/internal/sources/mychem"
	"github.com/petrsovadina/biomcp/internal/sources/mygene"
	"github.com/petrsovadina/biomcp/internal/sources/myvariant"
	"github.com/petrsovadina/biomcp/internal/sources/ncicts"
	"github.com/petrsovadina/biomcp/internal/sources/oncokb"
	"github.com/petrsovadina/biomcp/internal/sources/openfda"
	"github.com/petrsovadina/biomcp/internal/sources/opentargets"
	"github.com/petrsovadina/biomcp/internal/sources/pharmgkb"
	"github.com/petrsovadina/biomcp/internal/sources/pmcoa"
	"github.com/petrsovadina/biomcp/internal/sources/pubtator3"
	"github.com/petrsovadina/biomcp/internal/sources/quickgo"
	"github.com/petrsovadina/biomcp/internal/sources/reactome"
	"github.com/petrsovadina/biomcp/internal/sources/stringdb"
	"github.com/petrsovadina/biomcp/internal/sources/uniprot"
)

// Sources wires one client per upstream API (spec §4.B's authoritative
// set) against the shared HTTP substrate. Every entity orchestrator takes
// a *Sources instead of constructing its own clients, so the whole engine
// shares one connection pool, rate-limiter registry, and cache.
type Sources struct {
	MyGene        *mygene.Client
	MyVariant     *myvariant.Client
	MyChem        *mychem.Client
	PubTator3     *pubtator3.Client
	CTGov         *ctgov.Client
	NCICTS        *ncicts.Client
	UniProt       *uniprot.Client
	InterPro      *interpro.Client
	STRING        *stringdb.Client
	QuickGO       *quickgo.Client
	Reactome      *reactome.Client
	GProfiler     *gprofiler.Client
	Enrichr       *enrichr.Client
	EuropePMC     *europepmc.Client
	PMCOA         *pmcoa.Client
	IDConverter   *idconverter.Client
	OpenFDA       *openfda.Client
	CPIC          *cpic.Client
	PharmGKB      *pharmgkb.Client
	Monarch       *monarch.Client
	GWASCatalog   *gwascatalog.Client
	CIViC         *civic.Client
	OpenTargets   *opentargets.Client
	COSMIC        *cosmic.Client
	CGI           *cgi.Client
	CBioPortal    *cbioportal.Client
	OncoKB        *oncokb.Client
	AlphaGenome   *alphagenome.Client
	DBNSFP        *dbnsfp.Client
	DrugsFDA      *drugsfda.Client
}

// NewSources constructs every source client against the shared
// substrate.
func NewSources(http *httpsubstrate.Client) *Sources {
	return &Sources{
		MyGene:      mygene.NewClient(http),
		MyVariant:   myvariant.NewClient(http),
		MyChem:      mychem.NewClient(http),
		PubTator3:   pubtator3.NewClient(http),
		CTGov:       ctgov.NewClient(http),
		NCICTS:      ncicts.NewClient(http),
		UniProt:     uniprot.NewClient(http),
		InterPro:    interpro.NewClient(http),
		STRING:      stringdb.NewClient(http),
		QuickGO:     quickgo.NewClient(http),
		Reactome:    reactome.NewClient(http),
		GProfiler:   gprofiler.NewClient(http),
		Enrichr:     enrichr.NewClient(http),
		EuropePMC:   europepmc.NewClient(http),
		PMCOA:       pmcoa.NewClient(http),
		IDConverter: idconverter.NewClient(http),
		OpenFDA:     openfda.NewClient(http),
		CPIC:        cpic.NewClient(http),
		PharmGKB:    pharmgkb.NewClient(http),
		Monarch:     monarch.NewClient(http),
		GWASCatalog: gwascatalog.NewClient(http),
		CIViC:       civic.NewClient(http),
		OpenTargets: opentargets.NewClient(http),
		COSMIC:      cosmic.NewClient(http),
		CGI:         cgi.NewClient(http),
		CBioPortal:  cbioportal.NewClient(http),
		OncoKB:      oncokb.NewClient(http),
		AlphaGenome: alphagenome.NewClient(http),
		DBNSFP:      dbnsfp.NewClient(http),
		DrugsFDA:    drugsfda.NewClient(http),
	}
}
