package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"scriptdex/internal/export"
	"scriptdex/internal/record"
)

var _ export.Exporter = (*Client)(nil)

type Client struct {
	pool *pgxpool.Pool
}

func New(ctx context.Context, dsn string) (*Client, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("creating postgres pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging postgres: %w", err)
	}
	return &Client{pool: pool}, nil
}

var schemaDDL = []string{
	`CREATE TABLE IF NOT EXISTS records (
		id                BIGSERIAL PRIMARY KEY,
		name              TEXT NOT NULL,
		name_normalized   TEXT NOT NULL,
		type              TEXT NOT NULL,
		category          TEXT NOT NULL,
		description       TEXT NOT NULL DEFAULT '',
		definition_type   TEXT NOT NULL DEFAULT '',
		return_type       TEXT NOT NULL DEFAULT '',
		args              JSONB NOT NULL DEFAULT '[]',
		supported_scopes  JSONB NOT NULL DEFAULT '[]',
		supported_targets JSONB NOT NULL DEFAULT '[]',
		input_scopes      JSONB NOT NULL DEFAULT '[]',
		output_scopes     JSONB NOT NULL DEFAULT '[]',
		categories        JSONB NOT NULL DEFAULT '[]'
	)`,
	`CREATE INDEX IF NOT EXISTS idx_records_name_norm ON records (name_normalized)`,
	`CREATE INDEX IF NOT EXISTS idx_records_type ON records (type)`,
	`CREATE INDEX IF NOT EXISTS idx_records_category ON records (category)`,
	`CREATE INDEX IF NOT EXISTS idx_records_type_category ON records (type, category)`,
}

const insertSQL = `
INSERT INTO records (name, name_normalized, type, category, description, definition_type, return_type, args, supported_scopes, supported_targets, input_scopes, output_scopes, categories)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
`

func (c *Client) Export(ctx context.Context, records []record.Record) (int, error) {
	if err := c.ensureSchema(ctx); err != nil {
		return 0, err
	}

	tx, err := c.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, "DELETE FROM records"); err != nil {
		return 0, fmt.Errorf("truncating records: %w", err)
	}

	batch := &pgx.Batch{}
	for _, r := range records {
		values, err := export.RowValues(r)
		if err != nil {
			return 0, err
		}
		batch.Queue(insertSQL, values...)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return 0, fmt.Errorf("inserting records: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("committing export: %w", err)
	}
	return len(records), nil
}

func (c *Client) ensureSchema(ctx context.Context) error {
	for _, stmt := range schemaDDL {
		if _, err := c.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("executing DDL: %w", err)
		}
	}
	return nil
}

func (c *Client) Close(ctx context.Context) error {
	c.pool.Close()
	return nil
}
