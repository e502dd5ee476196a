package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"scriptdex/internal/search"
)

func queryRegexCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "regex <pattern>",
		Short: "Match record names against a regular expression",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQueryRegex(cmd, args[0], limit)
		},
	}
	cmd.Flags().IntVar(&limit, "limit", search.DefaultRegexLimit, "Maximum results")
	return cmd
}

func runQueryRegex(cmd *cobra.Command, pattern string, limit int) error {
	engine, err := loadEngine()
	if err != nil {
		return err
	}

	records, err := engine.ByRegex(pattern, limit)
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
