package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"scriptdex/internal/record"
	"scriptdex/internal/search"
)

func queryNameCmd() *cobra.Command {
	var noFuzzy bool
	var limit int
	cmd := &cobra.Command{
		Use:   "name <name>",
		Short: "Look up records by name",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQueryName(cmd, args[0], !noFuzzy, limit)
		},
	}
	cmd.Flags().BoolVar(&noFuzzy, "no-fuzzy", false, "Disable the fuzzy fallback")
	cmd.Flags().IntVar(&limit, "limit", search.DefaultNameLimit, "Maximum results")
	return cmd
}

func runQueryName(cmd *cobra.Command, name string, fuzzy bool, limit int) error {
	engine, err := loadEngine()
	if err != nil {
		return err
	}

	hits, err := engine.ByName(name, fuzzy, limit)
	if err != nil {
		return err
	}
	if len(hits) == 0 {
		fmt.Fprintf(os.Stdout, "No records found for %q.\n", name)
		return nil
	}

	for _, hit := range hits {
		if hit.Similarity > 0 {
			fmt.Fprintf(os.Stdout, "%s (%s) similarity=%.2f\n", hit.Name, hit.Kind, hit.Similarity)
		} else {
			fmt.Fprintf(os.Stdout, "%s (%s)\n", hit.Name, hit.Kind)
		}
		printRecordDetails(hit.Record)
	}
	return nil
}

func printRecordLine(r record.Record) {
	if r.Category != "" {
		fmt.Fprintf(os.Stdout, "%s (%s) [%s]\n", r.Name, r.Kind, r.Category)
		return
	}
	fmt.Fprintf(os.Stdout, "%s (%s)\n", r.Name, r.Kind)
}

func printRecordDetails(r record.Record) {
	if r.Category != "" {
		fmt.Fprintf(os.Stdout, "  Category: %s\n", r.Category)
	}
	if r.Description != "" {
		fmt.Fprintf(os.Stdout, "  %s\n", r.Description)
	}
	if r.DefinitionType != "" {
		fmt.Fprintf(os.Stdout, "  Definition type: %s\n", r.DefinitionType)
	}
	if r.ReturnType != "" {
		fmt.Fprintf(os.Stdout, "  Returns: %s\n", r.ReturnType)
	}
	if len(r.Args) > 0 {
		fmt.Fprintf(os.Stdout, "  Args: %s\n", strings.Join(r.Args, ", "))
	}
	if len(r.SupportedScopes) > 0 {
		fmt.Fprintf(os.Stdout, "  Scopes: %s\n", strings.Join(r.SupportedScopes, ", "))
	}
	if len(r.SupportedTargets) > 0 {
		fmt.Fprintf(os.Stdout, "  Targets: %s\n", strings.Join(r.SupportedTargets, ", "))
	}
	if len(r.InputScopes) > 0 {
		fmt.Fprintf(os.Stdout, "  Input scopes: %s\n", strings.Join(r.InputScopes, ", "))
	}
	if len(r.OutputScopes) > 0 {
		fmt.Fprintf(os.Stdout, "  Output scopes: %s\n", strings.Join(r.OutputScopes, ", "))
	}
	if len(r.Categories) > 0 {
		fmt.Fprintf(os.Stdout, "  Categories: %s\n", strings.Join(r.Categories, ", "))
	}
}
