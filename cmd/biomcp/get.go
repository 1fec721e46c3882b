package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/petrsovadina/biomcp/internal/bmerrors"
	"github.com/petrsovadina/biomcp/internal/entities"
)

var (
	getSource       string
	getStructOffset int
	getStructLimit  int
)

var getCmd = &cobra.Command{
	Use:   "get <entity> <id> [sections...]",
	Short: "Fetch a single record by identifier, with optional enrichment sections",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		entity, id, sections := args[0], args[1], args[2:]
		e := pivots.Engines

		result, err := withCache(rootCtx, func(ctx context.Context) (any, error) {
			switch entity {
			case "gene":
				return e.Gene.Get(ctx, id, sections)
			case "variant":
				return e.Variant.Get(ctx, id, sections)
			case "article":
				return e.Article.Get(ctx, id, sections)
			case "trial":
				return e.Trial.Get(ctx, id, sections, getSource)
			case "drug":
				return e.Drug.Get(ctx, id, sections)
			case "disease":
				return e.Disease.Get(ctx, id, sections)
			case "phenotype":
				return e.Phenotype.Get(ctx, id)
			case "pathway":
				return e.Pathway.Get(ctx, id, sections)
			case "protein":
				if getStructLimit == 0 {
					getStructLimit = entities.MaxStructuresLimit
				}
				return e.Protein.Get(ctx, id, sections, getStructOffset, getStructLimit)
			default:
				return nil, bmerrors.NewInvalidArgument("unknown entity %q", entity)
			}
		})
		if err != nil {
			return err
		}
		emit(result)
		return nil
	},
}

// pgxGetCmd is pgx's two-argument get (gene vs drug, counterpart): spec
// §4.D's representative PGx pipeline takes a gene/drug pair rather than a
// single id, so it doesn't fit the generic `get <entity> <id>` shape.
var pgxGetCmd = &cobra.Command{
	Use:   "get <gene-or-drug> <counterpart> [sections...]",
	Short: "Fetch CPIC/PharmGKB pharmacogenomic guidance for a gene/drug pair",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := withCache(rootCtx, func(ctx context.Context) (any, error) {
			return pivots.Engines.PGx.Get(ctx, args[0], args[1], args[2:])
		})
		if err != nil {
			return err
		}
		emit(result)
		return nil
	},
}

var pgxCmd = &cobra.Command{
	Use:   "pgx",
	Short: "Pharmacogenomics lookups (CPIC/PharmGKB)",
}

func init() {
	getCmd.Flags().StringVar(&getSource, "source", "", "Trial registry: \"ctgov\" (default) or \"nci\"")
	getCmd.Flags().IntVar(&getStructOffset, "struct-offset", 0, "Protein structures section: page offset")
	getCmd.Flags().IntVar(&getStructLimit, "struct-limit", 0, "Protein structures section: page size (default: max)")
	rootCmd.AddCommand(getCmd)

	pgxCmd.AddCommand(pgxGetCmd)
	rootCmd.AddCommand(pgxCmd)
}
