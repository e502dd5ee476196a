package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"scriptdex/internal/record"
	"scriptdex/internal/search"
)

func queryCategoryCmd() *cobra.Command {
	var offset int
	var limit int
	cmd := &cobra.Command{
		Use:   "category <category>",
		Short: "Page through the data types of one category",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQueryCategory(cmd, args[0], offset, limit)
		},
	}
	cmd.Flags().IntVar(&offset, "offset", 0, "Records to skip")
	cmd.Flags().IntVar(&limit, "limit", search.DefaultPageLimit, "Maximum page size")
	return cmd
}

func runQueryCategory(cmd *cobra.Command, category string, offset, limit int) error {
	engine, err := loadEngine()
	if err != nil {
		return err
	}

	page, err := engine.Page(string(record.KindDataType), category, offset, limit)
	if err != nil {
		return err
	}
	if page.Total == 0 {
		fmt.Fprintf(os.Stdout, "No records found for category %q.\n", category)
		return nil
	}

	for _, r := range page.Records {
		printRecordLine(r)
	}
	fmt.Fprintf(os.Stdout, "Showing %d of %d records (offset %d).\n", len(page.Records), page.Total, offset)
	return nil
}
