package main

import (
	"sort"

	"github.com/spf13/cobra"

	"github.com/petrsovadina/biomcp/internal/entities"
)

// entitySections enumerates the sections Get accepts per entity, for
// `biomcp list <entity>` (spec §1's command surface).
var entitySections = map[string][]string{
	"gene":    entities.GeneSections,
	"variant": entities.VariantSections,
	"article": entities.ArticleSections,
	"trial":   {"locations", "eligibility"},
	"disease": {"phenotypes"},
	"drug":    entities.DrugSections,
	"pathway": entities.PathwaySections,
	"protein": entities.ProteinSections,
	"pgx":     entities.PGxSections,
}

var listCmd = &cobra.Command{
	Use:   "list [entity]",
	Short: "List supported entities, or the sections one entity's get accepts",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			names := make([]string, 0, len(entitySections)+len(searchableOnly))
			for name := range entitySections {
				names = append(names, name)
			}
			names = append(names, searchableOnly...)
			sort.Strings(names)
			emit(names)
			return nil
		}
		sections, ok := entitySections[args[0]]
		if !ok {
			emit(map[string]string{"note": args[0] + " has no optional sections"})
			return nil
		}
		emit(sections)
		return nil
	},
}

// searchableOnly are entities whose get, where they have one, takes no
// optional sections (spec §3, §4.D).
var searchableOnly = []string{"phenotype", "gwas", "adverse_event", "organization", "intervention", "biomarker"}

func init() {
	rootCmd.AddCommand(listCmd)
}
