package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/vtm-builder/internal/catalog"
)

var (
	catalogCategory string
	catalogPath     string
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Print the predator type catalog",
	Long:  `Load and validate the predator type catalog, then print each entry. Useful for checking a custom catalog file.`,
	RunE:  printCatalog,
}

func init() {
	catalogCmd.Flags().StringVar(&catalogCategory, "category", "", "only print this category")
	catalogCmd.Flags().StringVar(&catalogPath, "file", "", "catalog file to load instead of the embedded one")
}

func printCatalog(cmd *cobra.Command, _ []string) error {
	cat, err := catalog.New(&catalog.Config{Path: catalogPath})
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	predatorTypes, err := cat.ListByCategory(catalogCategory)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, pt := range predatorTypes {
		fmt.Fprintf(out, "%s (%s)\n", pt.Name, pt.Category)
		fmt.Fprintf(out, "  specialties: %s\n", strings.Join(pt.SpecialtyKeys(), ", "))
		fmt.Fprintf(out, "  disciplines: %s\n", strings.Join(pt.SubChoiceNames(), ", "))
		for _, g := range pt.OptionGroups {
			fmt.Fprintf(out, "  %s: %d points\n", g.Name, g.TotalPoints)
			for _, o := range g.Options {
				fmt.Fprintf(out, "    %s (max %d)\n", o.Name, o.MaxLevel)
			}
		}
		if len(pt.ExcludedClans) > 0 {
			fmt.Fprintf(out, "  not for: %s\n", strings.Join(pt.ExcludedClans, ", "))
		}
	}
	fmt.Fprintf(out, "%d predator types\n", len(predatorTypes))
	if catalogCategory == "" {
		fmt.Fprintf(out, "bonus disciplines offered: %s\n", strings.Join(cat.Disciplines(), ", "))
	}

	return nil
}
