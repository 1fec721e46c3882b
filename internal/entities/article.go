package entities

import (
	"context"
	"errors"

	"github.com/petrsovadina/biomcp/internal/bmerrors"
	"github.com/petrsovadina/biomcp/internal/cache"
	"github.com/petrsovadina/biomcp/internal/filters"
	"github.com/petrsovadina/biomcp/internal/ids"
	"github.com/petrsovadina/biomcp/internal/sources/pubtator3"
	"github.com/petrsovadina/biomcp/internal/transform"
)

// ArticleSearchFilters is the set of client-side post-filters
// Article.search applies after the Europe PMC query, per spec §4.D/§4.F.
type ArticleSearchFilters struct {
	Query            string
	OpenAccessOnly   bool
	NoPreprints      bool
	IncludeRetracted bool
	Sort             string // "date" or "" (relevance)
}

// ArticleSections is the enumeration accepted by Article.get's sections
// argument.
var ArticleSections = []string{"full_text"}

type ArticleEngine struct {
	Sources *Sources
	Cache   *cache.Store
}

// Get resolves id (PMID, PMCID, or DOI) to a PMID when possible, fetches
// metadata via PubTator3 with an Europe PMC fallback, and optionally
// resolves full text (spec §4.D's representative Article.get pipeline).
func (e *ArticleEngine) Get(ctx context.Context, id string, sectionTokens []string) (*transform.Article, error) {
	kind, err := ids.ClassifyArticleID(id)
	if err != nil {
		return nil, err
	}
	sections, err := ParseSections(sectionTokens, ArticleSections)
	if err != nil {
		return nil, err
	}

	pmid, pmcid, doi, err := e.resolveIdentifiers(ctx, kind, id)
	if err != nil {
		return nil, err
	}

	article, err := e.fetchMetadata(ctx, pmid, pmcid, doi)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, &bmerrors.NotFound{Entity: "article", ID: id, Suggestion: "search article " + id}
	}

	if sections["full_text"] {
		e.resolveFullText(ctx, article)
	}
	return article, nil
}

func (e *ArticleEngine) resolveIdentifiers(ctx context.Context, kind ids.ArticleIDKind, id string) (pmid, pmcid, doi string, err error) {
	switch kind {
	case ids.ArticlePMID:
		return id, "", "", nil
	case ids.ArticlePMCID:
		pmcid = id
	case ids.ArticleDOI:
		doi = id
	}
	// Resolve DOI/PMCID to a PMID via Europe PMC when possible; else skip
	// the PMID path entirely (spec §4.D).
	query := firstNonEmptyQuery(pmcid, doi)
	resolved, err := e.Sources.EuropePMC.ResolveToPMID(ctx, query)
	if err != nil {
		return "", pmcid, doi, nil // best-effort: fall through without a PMID
	}
	return resolved, pmcid, doi, nil
}

func firstNonEmptyQuery(pmcid, doi string) string {
	if pmcid != "" {
		return "PMCID:" + pmcid
	}
	return "DOI:" + doi
}

// fetchMetadata tries PubTator3 first (primary metadata path); on an
// indexing-lag classification it falls back to Europe PMC with
// pubtator_fallback=true, per spec §4.D and §9's Open Question decision.
// When there is no PMID at all (DOI with no PMID cross-reference), it
// goes straight to Europe PMC with no annotations, per spec §8's
// documented boundary scenario.
func (e *ArticleEngine) fetchMetadata(ctx context.Context, pmid, pmcid, doi string) (*transform.Article, error) {
	if pmid == "" {
		return e.fetchFromEuropePMC(ctx, pmid, pmcid, doi)
	}

	doc, err := e.Sources.PubTator3.GetByPMID(ctx, pmid)
	if err != nil {
		if errors.Is(err, pubtator3.ErrIndexingLag) {
			article, fallbackErr := e.fetchFromEuropePMC(ctx, pmid, pmcid, doi)
			if fallbackErr != nil {
				return nil, fallbackErr
			}
			if article != nil {
				article.PubtatorFallback = true
				article.PMID = pmid
			}
			return article, nil
		}
		return nil, err
	}
	article := transform.FromPubTator3Document(doc)

	if meta, mErr := e.Sources.EuropePMC.Search(ctx, "ext_id:"+pmid+" AND src:med", "", 1); mErr == nil && len(meta.ResultList.Result) > 0 {
		article = transform.MergeEuropePMCMetadata(article, meta.ResultList.Result[0])
	}
	return &article, nil
}

func (e *ArticleEngine) fetchFromEuropePMC(ctx context.Context, pmid, pmcid, doi string) (*transform.Article, error) {
	query := firstNonEmptyQuery(pmcid, doi)
	if pmcid == "" && doi == "" {
		query = "ext_id:" + pmid + " AND src:med"
	}
	resp, err := e.Sources.EuropePMC.Search(ctx, query, "", 1)
	if err != nil {
		return nil, err
	}
	if len(resp.ResultList.Result) == 0 {
		return nil, nil
	}
	article := transform.FromEuropePMCResult(resp.ResultList.Result[0])
	return &article, nil
}

// resolveFullText tries Europe PMC XML (by PMC id, else MED id), then PMC
// OA, converts to plain text, and saves atomically to the cache directory
// (spec §4.D, §6).
func (e *ArticleEngine) resolveFullText(ctx context.Context, article *transform.Article) {
	var xml []byte
	var err error
	switch {
	case article.PMCID != "":
		xml, err = e.Sources.EuropePMC.FullTextXML(ctx, "PMC", article.PMCID)
	case article.PMID != "":
		xml, err = e.Sources.EuropePMC.FullTextXML(ctx, "MED", article.PMID)
	default:
		article.FullTextNote = "full text unavailable: no PMCID or PMID to resolve against"
		return
	}
	if err != nil && article.PMCID != "" {
		xml, err = e.Sources.PMCOA.FullTextXML(ctx, article.PMCID)
	}
	if err != nil || len(xml) == 0 {
		article.FullTextNote = "full text unavailable from Europe PMC or PMC OA"
		return
	}

	text := transform.PlainTextFromJATSXML(xml)
	key := article.PMCID
	if key == "" {
		key = article.PMID
	}
	path, saveErr := e.Cache.SaveFullText(key, []byte(text))
	if saveErr != nil {
		article.FullTextNote = "full text extracted but could not be cached: " + saveErr.Error()
		return
	}
	article.FullTextPath = path
}

// Search runs an Europe PMC query, applies the open-access / no-preprints
// / retraction client-side post-filters, and performs the one-shot
// retraction backfill probe when the page qualifies (spec §4.D, §4.F).
func (e *ArticleEngine) Search(ctx context.Context, f ArticleSearchFilters, limit int, cursorMark string) ([]transform.Article, PaginationMeta, error) {
	if err := ValidateLimit(limit, MaxSearchLimit); err != nil {
		return nil, PaginationMeta{}, err
	}
	query := f.Query
	if f.NoPreprints {
		query = filters.Join(query, `NOT SRC:"PPR"`)
	}
	probeBase := query
	if !f.IncludeRetracted {
		query = filters.Join(query, `NOT `+filters.RetractedPubType)
	}

	resp, err := e.Sources.EuropePMC.Search(ctx, query, cursorMark, limit)
	if err != nil {
		return nil, PaginationMeta{}, err
	}
	articles := make([]transform.Article, 0, len(resp.ResultList.Result))
	for _, r := range resp.ResultList.Result {
		a := transform.FromEuropePMCResult(r)
		if f.OpenAccessOnly && !a.OpenAccess {
			continue
		}
		articles = append(articles, a)
	}

	if filters.NeedsRetractionBackfill(f.IncludeRetracted, f.Sort, articles) {
		retractionQuery := filters.Join(probeBase, filters.RetractedPubType)
		if probe, pErr := e.Sources.EuropePMC.Search(ctx, retractionQuery, "*", 1); pErr == nil && len(probe.ResultList.Result) > 0 {
			candidate := transform.FromEuropePMCResult(probe.ResultList.Result[0])
			articles = filters.ApplyRetractionBackfill(articles, candidate)
		}
	}

	meta := NewCursorPagination(limit, len(articles), &resp.HitCount, resp.NextCursor)
	return articles, meta, nil
}
