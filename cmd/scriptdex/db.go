package main

import (
	"context"
	"fmt"
	"strings"

	"scriptdex/internal/export"
	"scriptdex/internal/export/postgres"
	"scriptdex/internal/export/sqlite"
)

func openExporter(ctx context.Context, dsn string) (export.Exporter, error) {
	switch {
	case strings.HasPrefix(dsn, "sqlite://"):
		return sqlite.New(ctx, dsn)
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return postgres.New(ctx, dsn)
	default:
		return nil, fmt.Errorf("unsupported DSN %q: expected a sqlite:// or postgres:// scheme", dsn)
	}
}
