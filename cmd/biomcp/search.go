package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/petrsovadina/biomcp/internal/bmerrors"
	"github.com/petrsovadina/biomcp/internal/entities"
	"github.com/petrsovadina/biomcp/internal/filters"
)

var (
	searchLimit  int
	searchOffset int
	searchCursor string

	searchCondition     string
	searchBiomarker     string
	searchMutation      string
	searchPriorTherapy  string
	searchProgressionOn string
	searchLineOfTherapy string
	searchPhase         string
	searchStatus        string
	searchFacility      string
	searchSource        string
	searchLat           float64
	searchLon           float64
	searchDistance      float64

	searchOpenAccessOnly   bool
	searchNoPreprints      bool
	searchIncludeRetracted bool
	searchSort             string
)

var searchCmd = &cobra.Command{
	Use:   "search <entity> <query>",
	Short: "Search an entity's primary index",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		entity, query := args[0], args[1]
		e := pivots.Engines

		result, err := withCache(rootCtx, func(ctx context.Context) (any, error) {
			switch entity {
			case "gene":
				items, meta, err := e.Gene.Search(ctx, query, searchLimit, searchOffset)
				return pagedResult{items, meta}, err
			case "drug":
				items, meta, err := e.Drug.Search(ctx, query, searchLimit, searchOffset)
				return pagedResult{items, meta}, err
			case "disease":
				items, meta, err := e.Disease.Search(ctx, query, searchLimit, searchOffset)
				return pagedResult{items, meta}, err
			case "phenotype":
				items, meta, err := e.Phenotype.Search(ctx, query, searchLimit, searchOffset)
				return pagedResult{items, meta}, err
			case "article":
				f := entities.ArticleSearchFilters{
					Query:            query,
					OpenAccessOnly:   searchOpenAccessOnly,
					NoPreprints:      searchNoPreprints,
					IncludeRetracted: searchIncludeRetracted,
					Sort:             searchSort,
				}
				items, meta, err := e.Article.Search(ctx, f, searchLimit, searchCursor)
				return pagedResult{items, meta}, err
			case "trial":
				f := entities.TrialSearchFilters{
					Condition:     orDefault(searchCondition, query),
					Biomarker:     searchBiomarker,
					Mutation:      searchMutation,
					PriorTherapy:  searchPriorTherapy,
					ProgressionOn: searchProgressionOn,
					LineOfTherapy: searchLineOfTherapy,
					Phase:         searchPhase,
					Status:        searchStatus,
					Facility:      searchFacility,
					Source:        searchSource,
				}
				if err := filters.ValidateGeoTriple(cmd.Flags().Changed("lat"), cmd.Flags().Changed("lon"), cmd.Flags().Changed("distance")); err != nil {
					return nil, err
				}
				if cmd.Flags().Changed("lat") {
					f.Geo = &filters.GeoFilter{Lat: searchLat, Lon: searchLon, Distance: searchDistance}
				}
				items, meta, err := e.Trial.Search(ctx, f, searchLimit, searchOffset)
				return pagedResult{items, meta}, err
			case "gwas":
				items, meta, err := e.GWAS.SearchByTrait(ctx, query, searchLimit, searchOffset)
				return pagedResult{items, meta}, err
			case "adverse_event":
				items, meta, err := e.AdverseEvent.SearchDrugEvents(ctx, query, searchLimit, searchOffset)
				return pagedResult{items, meta}, err
			default:
				return nil, bmerrors.NewInvalidArgument("unknown searchable entity %q", entity)
			}
		})
		if err != nil {
			return err
		}
		emit(result)
		return nil
	},
}

// gwasByRsIDCmd is GWAS's alternate lookup key; rsID queries don't fit
// the generic free-text `search` shape.
var gwasByRsIDCmd = &cobra.Command{
	Use:   "gwas-by-rsid <rsID>",
	Short: "Search GWAS Catalog associations by variant rsID",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := withCache(rootCtx, func(ctx context.Context) (any, error) {
			items, meta, err := pivots.Engines.GWAS.SearchByRsID(ctx, args[0], searchLimit, searchOffset)
			return pagedResult{items, meta}, err
		})
		if err != nil {
			return err
		}
		emit(result)
		return nil
	},
}

type pagedResult struct {
	Items any                    `json:"items"`
	Page  entities.PaginationMeta `json:"page"`
}

func orDefault(v, fallback string) string {
	if v != "" {
		return v
	}
	return fallback
}

func init() {
	for _, c := range []*cobra.Command{searchCmd, gwasByRsIDCmd} {
		c.Flags().IntVar(&searchLimit, "limit", 20, "Max results per page")
		c.Flags().IntVar(&searchOffset, "offset", 0, "Offset-mode pagination cursor")
	}
	searchCmd.Flags().StringVar(&searchCursor, "cursor", "", "Cursor-mode pagination token (article search)")
	searchCmd.Flags().StringVar(&searchCondition, "condition", "", "Trial/disease condition name")
	searchCmd.Flags().StringVar(&searchBiomarker, "biomarker", "", "Trial eligibility biomarker (e.g. gene symbol)")
	searchCmd.Flags().StringVar(&searchMutation, "mutation", "", "Trial eligibility mutation string (e.g. \"BRAF V600E\")")
	searchCmd.Flags().StringVar(&searchPriorTherapy, "prior-therapy", "", "Required prior therapy keyword")
	searchCmd.Flags().StringVar(&searchProgressionOn, "progression-on", "", "Required progression-on keyword")
	searchCmd.Flags().StringVar(&searchLineOfTherapy, "line-of-therapy", "", "Required line-of-therapy keyword")
	searchCmd.Flags().StringVar(&searchPhase, "phase", "", "Trial phase filter")
	searchCmd.Flags().StringVar(&searchStatus, "status", "", "Trial status filter")
	searchCmd.Flags().StringVar(&searchFacility, "facility", "", "Trial facility name filter")
	searchCmd.Flags().StringVar(&searchSource, "source", "", "Trial registry: \"ctgov\" (default) or \"nci\"")
	searchCmd.Flags().Float64Var(&searchLat, "lat", 0, "Geographic filter latitude")
	searchCmd.Flags().Float64Var(&searchLon, "lon", 0, "Geographic filter longitude")
	searchCmd.Flags().Float64Var(&searchDistance, "distance", 0, "Geographic filter radius (miles)")
	searchCmd.Flags().BoolVar(&searchOpenAccessOnly, "open-access-only", false, "Article search: restrict to open-access records")
	searchCmd.Flags().BoolVar(&searchNoPreprints, "no-preprints", false, "Article search: exclude preprint servers")
	searchCmd.Flags().BoolVar(&searchIncludeRetracted, "include-retracted", false, "Article search: include retracted records")
	searchCmd.Flags().StringVar(&searchSort, "sort", "", "Article search sort: \"date\" or \"\" (relevance)")

	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(gwasByRsIDCmd)
}
