package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"scriptdex/internal/search"
)

func queryTextCmd() *cobra.Command {
	var kind string
	var limit int
	cmd := &cobra.Command{
		Use:   "text <query>",
		Short: "Search names and descriptions",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")
			return runQueryText(cmd, query, kind, limit)
		},
	}
	cmd.Flags().StringVar(&kind, "kind", "", "Record kind to filter")
	cmd.Flags().IntVar(&limit, "limit", search.DefaultListLimit, "Maximum results")
	return cmd
}

func runQueryText(cmd *cobra.Command, query, kind string, limit int) error {
	engine, err := loadEngine()
	if err != nil {
		return err
	}

	records, err := engine.ByText(query, kind, limit)
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
