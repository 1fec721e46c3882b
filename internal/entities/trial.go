package entities

import (
	"context"
	"net/url"
	"strings"
	"sync"

	"github.com/petrsovadina/biomcp/internal/bmerrors"
	"github.com/petrsovadina/biomcp/internal/filters"
	"github.com/petrsovadina/biomcp/internal/ids"
	"github.com/petrsovadina/biomcp/internal/transform"
)

// ctgovBaseFields/ctgovSectionFields is the union of base fields and
// per-section additions Trial.get requests, per spec §4.D.
var ctgovBaseFields = []string{
	"IdentificationModule", "StatusModule", "DescriptionModule",
	"DesignModule", "ConditionsModule",
}

var ctgovLocationFields = []string{"ContactsLocationsModule", "EligibilityModule"}

type TrialSearchFilters struct {
	Condition     string
	Biomarker     string
	Mutation      string
	PriorTherapy  string
	ProgressionOn string
	LineOfTherapy string
	Phase         string
	Status        string
	Facility      string
	Geo           *filters.GeoFilter
	Source        string // "ctgov" or "nci"
}

type TrialEngine struct {
	Sources *Sources
}

// Get dispatches to ClinicalTrials.gov v2 or NCI CTS per source,
// requesting the union of base fields and per-section field additions,
// then truncates eligibility text inline (spec §4.D).
func (e *TrialEngine) Get(ctx context.Context, nct string, sectionTokens []string, source string) (*transform.Trial, error) {
	if err := ids.ValidateNCT(nct); err != nil {
		return nil, err
	}
	sections, err := ParseSections(sectionTokens, []string{"locations", "eligibility"})
	if err != nil {
		return nil, err
	}

	if source == "nci" {
		raw, err := e.Sources.NCICTS.GetByNCT(ctx, nct)
		if err != nil {
			return nil, err
		}
		if raw == nil {
			return nil, &bmerrors.NotFound{Entity: "trial", ID: nct, Suggestion: "search trial --source nci " + nct}
		}
		trial := transform.FromNciCtsTrial(raw)
		return &trial, nil
	}

	fields := append([]string{}, ctgovBaseFields...)
	if sections["locations"] || sections["eligibility"] {
		fields = append(fields, ctgovLocationFields...)
	}
	study, err := e.Sources.CTGov.GetByNCT(ctx, nct, fields)
	if err != nil {
		return nil, err
	}
	if study == nil || len(study.ProtocolSection) == 0 {
		return nil, &bmerrors.NotFound{Entity: "trial", ID: nct, Suggestion: "search trial " + nct}
	}
	trial := transform.FromCtgovProtocolSection(study.ProtocolSection)
	return &trial, nil
}

// Search builds the upstream query (ESSIE for ctgov, structured params
// for NCI CTS), fetches candidates, and applies the client-side
// post-filters spec §4.F requires: facility+geo re-verification,
// eligibility inclusion/exclusion verification, and status-priority
// sorting when no explicit status was given.
func (e *TrialEngine) Search(ctx context.Context, f TrialSearchFilters, limit, offset int) ([]transform.Trial, PaginationMeta, error) {
	if err := ValidateLimit(limit, 50); err != nil {
		return nil, PaginationMeta{}, err
	}
	if err := filters.ValidateGeoTriple(f.Geo != nil, f.Geo != nil, f.Geo != nil); err != nil {
		return nil, PaginationMeta{}, err
	}

	var trials []transform.Trial
	var total *int
	if f.Source == "nci" {
		got, tot, err := e.searchNCICTS(ctx, f, limit, offset)
		if err != nil {
			return nil, PaginationMeta{}, err
		}
		trials, total = got, tot
	} else {
		got, tot, err := e.searchCtgov(ctx, f, limit, offset)
		if err != nil {
			return nil, PaginationMeta{}, err
		}
		trials, total = got, tot
	}

	if f.Facility != "" && f.Geo != nil {
		trials = e.verifyFacilityGeo(ctx, trials, f.Facility, *f.Geo)
	}
	if keyword := firstNonEmptyKeyword(f.Biomarker, f.Mutation, f.PriorTherapy, f.ProgressionOn); keyword != "" {
		trials = e.verifyEligibility(ctx, trials, keyword)
	}
	if f.Status == "" {
		ranked := make([]trialRanked, len(trials))
		for i, t := range trials {
			ranked[i] = trialRanked{t}
		}
		filters.SortByStatusPriority(ranked)
		for i, r := range ranked {
			trials[i] = r.Trial
		}
	}

	meta := NewOffsetPagination(offset, limit, len(trials), total)
	return trials, meta, nil
}

type trialRanked struct{ transform.Trial }

func firstNonEmptyKeyword(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func (e *TrialEngine) buildEssieQuery(f TrialSearchFilters) string {
	fragments := []string{f.Condition}
	if f.Phase != "" {
		fragments = append(fragments, filters.EssiePhase(f.Phase))
	}
	if f.PriorTherapy != "" {
		fragments = append(fragments, filters.EssiePriorTherapy(f.PriorTherapy))
	}
	if f.ProgressionOn != "" {
		fragments = append(fragments, filters.EssieProgressionOn(f.ProgressionOn))
	}
	if f.LineOfTherapy != "" {
		fragments = append(fragments, filters.EssieLineOfTherapy(f.LineOfTherapy))
	}
	if f.Biomarker != "" {
		fragments = append(fragments, f.Biomarker)
	}
	if f.Mutation != "" {
		fragments = append(fragments, f.Mutation)
	}
	if f.Facility != "" {
		fragments = append(fragments, filters.EssieArea("LocationFacility", f.Facility))
	}
	if f.Status != "" {
		fragments = append(fragments, filters.EssieArea("OverallStatus", f.Status))
	}
	return filters.Join(fragments...)
}

func (e *TrialEngine) searchCtgov(ctx context.Context, f TrialSearchFilters, limit, offset int) ([]transform.Trial, *int, error) {
	query := e.buildEssieQuery(f)
	fields := append(append([]string{}, ctgovBaseFields...), ctgovLocationFields...)
	// ClinicalTrials.gov is cursor-paginated; offset is satisfied here by
	// an over-fetch bounded at offset+limit and a local slice, per spec
	// §4.D's pagination rule.
	resp, err := e.Sources.CTGov.Search(ctx, query, fields, offset+limit, "")
	if err != nil {
		return nil, nil, err
	}
	total := resp.TotalCount
	studies := resp.Studies
	if offset < len(studies) {
		studies = studies[offset:]
	} else {
		studies = nil
	}
	if len(studies) > limit {
		studies = studies[:limit]
	}
	out := make([]transform.Trial, 0, len(studies))
	for _, s := range studies {
		out = append(out, transform.FromCtgovProtocolSection(s.ProtocolSection))
	}
	return out, &total, nil
}

func (e *TrialEngine) searchNCICTS(ctx context.Context, f TrialSearchFilters, limit, offset int) ([]transform.Trial, *int, error) {
	params := url.Values{}
	if f.Condition != "" {
		params.Set("diseases.name", f.Condition)
	}
	if f.Biomarker != "" {
		params.Set("biomarkers.name", f.Biomarker)
	}
	if f.Phase != "" {
		params.Set("phase", f.Phase)
	}
	if f.Status != "" {
		params.Set("current_trial_status", f.Status)
	}
	resp, err := e.Sources.NCICTS.Search(ctx, params, limit, offset)
	if err != nil {
		return nil, nil, err
	}
	out := make([]transform.Trial, 0, len(resp.Data))
	for _, d := range resp.Data {
		out = append(out, transform.FromNciCtsTrial(d))
	}
	return out, &resp.Total, nil
}

// verifyFacilityGeo re-checks each candidate's locations against the
// facility substring and haversine-distance constraint, per spec §4.F's
// facility+geo post-filter verifier.
func (e *TrialEngine) verifyFacilityGeo(ctx context.Context, trials []transform.Trial, facility string, geo filters.GeoFilter) []transform.Trial {
	needle := normalizeWhitespace(strings.ToLower(facility))
	out := make([]transform.Trial, 0, len(trials))
	for _, t := range trials {
		for _, loc := range t.Locations {
			if !loc.HasGeo {
				continue
			}
			if strings.Contains(normalizeWhitespace(strings.ToLower(loc.Facility)), needle) && geo.WithinDistance(loc.Lat, loc.Lon) {
				out = append(out, t)
				break
			}
		}
	}
	return out
}

func normalizeWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// verifyEligibility bounded-concurrently re-checks each candidate's
// eligibility criteria for the keyword via filters.KeywordPasses, per
// spec §4.F's eligibility inclusion-verification rule. Missing criteria
// fail open, so a trial whose eligibility field was empty passes.
func (e *TrialEngine) verifyEligibility(ctx context.Context, trials []transform.Trial, keyword string) []transform.Trial {
	const concurrency = 8
	sem := make(chan struct{}, concurrency)
	results := make([]bool, len(trials))
	var wg sync.WaitGroup
	for i, t := range trials {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, t transform.Trial) {
			defer wg.Done()
			defer func() { <-sem }()
			results[i] = filters.KeywordPasses(keyword, t.EligibilityCriteria)
		}(i, t)
	}
	wg.Wait()

	out := make([]transform.Trial, 0, len(trials))
	for i, t := range trials {
		if results[i] {
			out = append(out, t)
		}
	}
	return out
}
