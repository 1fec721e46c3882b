package main

import (
	"context"

	"github.com/spf13/cobra"
)

// Entity-helper command families (spec §1: "variant trials", "gene
// pathways", ...). Each is a thin RunE calling the matching
// *cross.Pivots method.

var geneCmd = &cobra.Command{Use: "gene", Short: "Gene cross-entity pivots"}
var variantCmd = &cobra.Command{Use: "variant", Short: "Variant cross-entity pivots"}
var drugCmd = &cobra.Command{Use: "drug", Short: "Drug cross-entity pivots"}
var diseaseCmd = &cobra.Command{Use: "disease", Short: "Disease cross-entity pivots"}
var pathwayCmd = &cobra.Command{Use: "pathway", Short: "Pathway cross-entity pivots"}
var proteinCmd = &cobra.Command{Use: "protein", Short: "Protein cross-entity pivots"}
var articleCmd = &cobra.Command{Use: "article", Short: "Article cross-entity pivots"}
var trialCmd = &cobra.Command{Use: "trial", Short: "Trial facet lookups"}

var geneTrialsCmd = &cobra.Command{
	Use:  "trials <symbol>",
	Args: cobra.ExactArgs(1),
	RunE: pivotRunE(func(ctx context.Context, args []string) (any, error) {
		return pivots.GeneToTrials(ctx, args[0], searchLimit)
	}),
}
var geneDrugsCmd = &cobra.Command{
	Use:  "drugs <symbol>",
	Args: cobra.ExactArgs(1),
	RunE: pivotRunE(func(ctx context.Context, args []string) (any, error) {
		return pivots.GeneToDrugs(ctx, args[0], searchLimit)
	}),
}
var geneArticlesCmd = &cobra.Command{
	Use:  "articles <symbol>",
	Args: cobra.ExactArgs(1),
	RunE: pivotRunE(func(ctx context.Context, args []string) (any, error) {
		return pivots.GeneToArticles(ctx, args[0], searchLimit)
	}),
}
var genePathwaysCmd = &cobra.Command{
	Use:  "pathways <symbol>",
	Args: cobra.ExactArgs(1),
	RunE: pivotRunE(func(ctx context.Context, args []string) (any, error) {
		return pivots.GeneToPathways(ctx, args[0])
	}),
}

var variantTrialsCmd = &cobra.Command{
	Use:  "trials <gene change>",
	Args: cobra.ExactArgs(1),
	RunE: pivotRunE(func(ctx context.Context, args []string) (any, error) {
		return pivots.VariantToTrials(ctx, args[0], searchLimit)
	}),
}
var variantArticlesCmd = &cobra.Command{
	Use:  "articles <variant-id>",
	Args: cobra.ExactArgs(1),
	RunE: pivotRunE(func(ctx context.Context, args []string) (any, error) {
		return pivots.VariantToArticles(ctx, args[0], searchLimit)
	}),
}
var variantOncoKBCmd = &cobra.Command{
	Use:  "oncokb <gene> <protein-change>",
	Args: cobra.ExactArgs(2),
	RunE: pivotRunE(func(ctx context.Context, args []string) (any, error) {
		return pivots.VariantToOncoKB(ctx, args[0], args[1])
	}),
}

var drugTrialsCmd = &cobra.Command{
	Use:  "trials <drug>",
	Args: cobra.ExactArgs(1),
	RunE: pivotRunE(func(ctx context.Context, args []string) (any, error) {
		return pivots.DrugToTrials(ctx, args[0], searchLimit)
	}),
}
var drugAdverseEventsCmd = &cobra.Command{
	Use:  "adverse-events <drug>",
	Args: cobra.ExactArgs(1),
	RunE: pivotRunE(func(ctx context.Context, args []string) (any, error) {
		return pivots.DrugToAdverseEvents(ctx, args[0], searchLimit)
	}),
}

var diseaseTrialsCmd = &cobra.Command{
	Use:  "trials <disease>",
	Args: cobra.ExactArgs(1),
	RunE: pivotRunE(func(ctx context.Context, args []string) (any, error) {
		return pivots.DiseaseToTrials(ctx, args[0], searchLimit)
	}),
}
var diseaseArticlesCmd = &cobra.Command{
	Use:  "articles <disease>",
	Args: cobra.ExactArgs(1),
	RunE: pivotRunE(func(ctx context.Context, args []string) (any, error) {
		return pivots.DiseaseToArticles(ctx, args[0], searchLimit)
	}),
}
var diseaseDrugsCmd = &cobra.Command{
	Use:  "drugs <disease>",
	Args: cobra.ExactArgs(1),
	RunE: pivotRunE(func(ctx context.Context, args []string) (any, error) {
		return pivots.DiseaseToDrugs(ctx, args[0], searchLimit)
	}),
}

var pathwayTrialsCmd = &cobra.Command{
	Use:  "trials <stable-id> <pathway-name>",
	Args: cobra.ExactArgs(2),
	RunE: pivotRunE(func(ctx context.Context, args []string) (any, error) {
		trials, meta, fallbackGene, err := pivots.PathwayToTrials(ctx, args[0], args[1], searchLimit)
		if err != nil {
			return nil, err
		}
		resp := map[string]any{"items": trials, "page": meta}
		if fallbackGene != "" {
			resp["fallback_biomarker"] = fallbackGene
		}
		return resp, nil
	}),
}
var pathwayDrugsCmd = &cobra.Command{
	Use:  "drugs <stable-id>",
	Args: cobra.ExactArgs(1),
	RunE: pivotRunE(func(ctx context.Context, args []string) (any, error) {
		return pivots.PathwayToDrugs(ctx, args[0], searchLimit)
	}),
}

var proteinStructuresCmd = &cobra.Command{
	Use:  "structures <accession-or-symbol>",
	Args: cobra.ExactArgs(1),
	RunE: pivotRunE(func(ctx context.Context, args []string) (any, error) {
		return pivots.ProteinToStructures(ctx, args[0], searchOffset, searchLimit)
	}),
}

var articleEntitiesCmd = &cobra.Command{
	Use:  "entities <pmid>",
	Args: cobra.ExactArgs(1),
	RunE: pivotRunE(func(ctx context.Context, args []string) (any, error) {
		return pivots.ArticleToEntities(ctx, args[0])
	}),
}

var trialOrganizationsCmd = &cobra.Command{
	Use:  "organizations <nct-id>",
	Args: cobra.ExactArgs(1),
	RunE: pivotRunE(func(ctx context.Context, args []string) (any, error) {
		return pivots.Engines.Organization.ListForTrial(ctx, args[0])
	}),
}
var trialInterventionsCmd = &cobra.Command{
	Use:  "interventions <nct-id>",
	Args: cobra.ExactArgs(1),
	RunE: pivotRunE(func(ctx context.Context, args []string) (any, error) {
		return pivots.Engines.Intervention.ListForTrial(ctx, args[0])
	}),
}

var biomarkerCmd = &cobra.Command{
	Use:  "biomarker <gene>",
	Short: "Biomarker signals for a gene (CGI, OncoKB)",
	Args:  cobra.ExactArgs(1),
	RunE: pivotRunE(func(ctx context.Context, args []string) (any, error) {
		return pivots.Engines.Biomarker.ForGene(ctx, args[0])
	}),
}

// pivotRunE adapts a (ctx, args) -> (any, error) thunk into a cobra RunE,
// threading the --no-cache flag and emitting JSON on success.
func pivotRunE(fn func(ctx context.Context, args []string) (any, error)) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		result, err := withCache(rootCtx, func(ctx context.Context) (any, error) {
			return fn(ctx, args)
		})
		if err != nil {
			return err
		}
		emit(result)
		return nil
	}
}

func init() {
	geneCmd.AddCommand(geneTrialsCmd, geneDrugsCmd, geneArticlesCmd, genePathwaysCmd)
	variantCmd.AddCommand(variantTrialsCmd, variantArticlesCmd, variantOncoKBCmd)
	drugCmd.AddCommand(drugTrialsCmd, drugAdverseEventsCmd)
	diseaseCmd.AddCommand(diseaseTrialsCmd, diseaseArticlesCmd, diseaseDrugsCmd)
	pathwayCmd.AddCommand(pathwayTrialsCmd, pathwayDrugsCmd)
	proteinCmd.AddCommand(proteinStructuresCmd)
	articleCmd.AddCommand(articleEntitiesCmd)
	trialCmd.AddCommand(trialOrganizationsCmd, trialInterventionsCmd)

	rootCmd.AddCommand(geneCmd, variantCmd, drugCmd, diseaseCmd, pathwayCmd, proteinCmd, articleCmd, trialCmd, biomarkerCmd)
}
