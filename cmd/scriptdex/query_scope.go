package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"scriptdex/internal/search"
)

func queryScopeCmd() *cobra.Command {
	var kind string
	var limit int
	cmd := &cobra.Command{
		Use:   "scope <scope>",
		Short: "Find records usable in a given scope",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQueryScope(cmd, args[0], kind, limit)
		},
	}
	cmd.Flags().StringVar(&kind, "kind", "", "Record kind to filter")
	cmd.Flags().IntVar(&limit, "limit", search.DefaultListLimit, "Maximum results")
	return cmd
}

func runQueryScope(cmd *cobra.Command, scope, kind string, limit int) error {
	engine, err := loadEngine()
	if err != nil {
		return err
	}

	records, err := engine.ByScope(scope, kind, limit)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Fprintf(os.Stdout, "No records found for scope %q.\n", scope)
		return nil
	}

	for _, r := range records {
		printRecordLine(r)
	}
	return nil
}
