package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"scriptdex/internal/build"
	"scriptdex/internal/config"
	"scriptdex/internal/store"
)

func buildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Parse the documentation files and write the record store",
		RunE:  runBuild,
	}
	return cmd
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(config.DefaultFile)
	if err != nil {
		return err
	}

	result, err := build.Run(cfg)
	if err != nil {
		return err
	}

	if err := store.Write(cfg.Data.Dir, result.Snapshot); err != nil {
		return err
	}

	fmt.Fprintln(os.Stdout, "Build complete.")
	fmt.Fprintf(os.Stdout, "  Records parsed: %d\n", result.Parsed)
	for _, category := range result.Categories {
		fmt.Fprintf(os.Stdout, "  %s (%s): %d\n", category.Category, category.Kind, category.Count)
	}

	if len(result.Skipped) > 0 {
		fmt.Fprintf(os.Stdout, "\nSkipped sources (%d):\n", len(result.Skipped))
		for _, source := range result.Skipped {
			fmt.Fprintf(os.Stdout, "  - %s\n", source)
		}
	}

	return nil
}
