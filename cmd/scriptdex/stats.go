package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"
)

func statsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show record store statistics",
		RunE:  runStats,
	}
	return cmd
}

func runStats(cmd *cobra.Command, args []string) error {
	engine, err := loadEngine()
	if err != nil {
		return err
	}

	stats, err := engine.Stats()
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Total entries: %d\n", stats.TotalEntries)

	fmt.Fprintln(os.Stdout, "By kind:")
	for _, key := range sortedKeys(stats.Kinds) {
		fmt.Fprintf(os.Stdout, "  %s: %d\n", key, stats.Kinds[key])
	}

	if len(stats.DataTypeCategories) > 0 {
		fmt.Fprintln(os.Stdout, "Data type categories:")
		for _, key := range sortedKeys(stats.DataTypeCategories) {
			fmt.Fprintf(os.Stdout, "  %s: %d\n", key, stats.DataTypeCategories[key])
		}
	}
	return nil
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
