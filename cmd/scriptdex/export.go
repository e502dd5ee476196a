package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"scriptdex/internal/config"
	"scriptdex/internal/store"
)

func exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <dsn>",
		Short: "Export the record store to a relational database",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, args[0])
		},
	}
	return cmd
}

func runExport(cmd *cobra.Command, dsn string) error {
	ctx := context.Background()

	cfg, err := config.Load(config.DefaultFile)
	if err != nil {
		return err
	}

	snap, err := store.Load(cfg.Data.Dir)
	if err != nil {
		return err
	}
	if snap.Len() == 0 {
		return fmt.Errorf("record store %s is empty: run scriptdex build first", cfg.Data.Dir)
	}

	sink, err := openExporter(ctx, dsn)
	if err != nil {
		return err
	}
	defer sink.Close(ctx)

	count, err := sink.Export(ctx, snap.All)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Exported %d records.\n", count)
	return nil
}
