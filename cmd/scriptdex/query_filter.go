package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"scriptdex/internal/search"
)

func queryFilterCmd() *cobra.Command {
	var criteria search.Criteria
	cmd := &cobra.Command{
		Use:   "filter",
		Short: "Combine name, kind, category, scope, target and description filters",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQueryFilter(cmd, criteria)
		},
	}
	cmd.Flags().StringVar(&criteria.Name, "name", "", "Record name, exact or close match")
	cmd.Flags().StringVar(&criteria.Kind, "kind", "", "Record kind to filter")
	cmd.Flags().StringVar(&criteria.Category, "category", "", "Data type category to filter")
	cmd.Flags().StringVar(&criteria.Scope, "scope", "", "Required supported scope")
	cmd.Flags().StringVar(&criteria.Target, "target", "", "Required supported target")
	cmd.Flags().StringVar(&criteria.ReturnType, "return-type", "", "Required promote return type")
	cmd.Flags().StringVar(&criteria.DescriptionContains, "description", "", "Substring required in the description")
	cmd.Flags().IntVar(&criteria.Limit, "limit", search.DefaultFindLimit, "Maximum results")
	return cmd
}

func runQueryFilter(cmd *cobra.Command, criteria search.Criteria) error {
	engine, err := loadEngine()
	if err != nil {
		return err
	}

	records, err := engine.Find(criteria)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Fprintln(os.Stdout, "No matches found.")
		return nil
	}

	for _, r := range records {
		printRecordLine(r)
	}
	return nil
}
