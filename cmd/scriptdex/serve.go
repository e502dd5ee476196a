package main

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"scriptdex/internal/config"
	"scriptdex/internal/logging"
	"scriptdex/internal/mcp"
	"scriptdex/internal/store"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the MCP server over stdio",
		RunE:  runServe,
	}
	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.Load(config.DefaultFile)
	if err != nil {
		return err
	}

	logger, closeLog, err := logging.Setup(cfg.Log)
	if err != nil {
		return err
	}
	defer closeLog()
	slog.SetDefault(logger)

	// The server starts with or without a store: tools report a
	// not-loaded store instead of killing the process.
	handle := store.NewHandle()
	snap, err := store.Load(cfg.Data.Dir)
	switch {
	case err != nil:
		slog.Warn("record store unavailable", "dir", cfg.Data.Dir, "error", err)
	case snap.Len() == 0:
		slog.Warn("record store empty, run build first", "dir", cfg.Data.Dir)
	default:
		handle.Swap(snap)
		slog.Info("record store loaded", "dir", cfg.Data.Dir, "records", snap.Len())
	}

	server := mcp.NewServer(handle, version)
	return server.Run(ctx, &sdk.StdioTransport{})
}
