package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"scriptdex/internal/export"
	"scriptdex/internal/record"

	_ "modernc.org/sqlite"
)

var _ export.Exporter = (*Client)(nil)

type Client struct {
	db *sql.DB
}

func New(ctx context.Context, dsn string) (*Client, error) {
	driverDSN, err := parseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("parsing sqlite DSN: %w", err)
	}

	db, err := sql.Open("sqlite", driverDSN)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging sqlite: %w", err)
	}

	pragmas := []string{
		"PRAGMA busy_timeout = 30000;",
		"PRAGMA journal_mode = WAL;",
	}
	for _, pragma := range pragmas {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("setting pragma %q: %w", pragma, err)
		}
	}

	return &Client{db: db}, nil
}

const schemaDDL = `
CREATE TABLE IF NOT EXISTS records (
	id                INTEGER PRIMARY KEY AUTOINCREMENT,
	name              TEXT NOT NULL,
	name_normalized   TEXT NOT NULL,
	type              TEXT NOT NULL,
	category          TEXT NOT NULL,
	description       TEXT DEFAULT '',
	definition_type   TEXT DEFAULT '',
	return_type       TEXT DEFAULT '',
	args              TEXT DEFAULT '[]',
	supported_scopes  TEXT DEFAULT '[]',
	supported_targets TEXT DEFAULT '[]',
	input_scopes      TEXT DEFAULT '[]',
	output_scopes     TEXT DEFAULT '[]',
	categories        TEXT DEFAULT '[]'
);

CREATE INDEX IF NOT EXISTS idx_records_name_norm ON records (name_normalized);
CREATE INDEX IF NOT EXISTS idx_records_type ON records (type);
CREATE INDEX IF NOT EXISTS idx_records_category ON records (category);
CREATE INDEX IF NOT EXISTS idx_records_type_category ON records (type, category);
`

const insertSQL = `
INSERT INTO records (name, name_normalized, type, category, description, definition_type, return_type, args, supported_scopes, supported_targets, input_scopes, output_scopes, categories)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`

func (c *Client) Export(ctx context.Context, records []record.Record) (int, error) {
	if err := c.ensureSchema(ctx); err != nil {
		return 0, err
	}

	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM records"); err != nil {
		return 0, fmt.Errorf("truncating records: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, insertSQL)
	if err != nil {
		return 0, fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	inserted := 0
	for _, r := range records {
		values, err := export.RowValues(r)
		if err != nil {
			return 0, err
		}
		if _, err := stmt.ExecContext(ctx, values...); err != nil {
			return 0, fmt.Errorf("inserting %s: %w", r.Name, err)
		}
		inserted++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing export: %w", err)
	}
	return inserted, nil
}

func (c *Client) ensureSchema(ctx context.Context) error {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	for _, stmt := range splitStatements(schemaDDL) {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("executing DDL: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing schema transaction: %w", err)
	}
	return nil
}

func splitStatements(ddl string) []string {
	var statements []string
	var current strings.Builder

	for _, line := range strings.Split(ddl, "\n") {
		stripped := strings.TrimSpace(line)
		if strings.HasPrefix(stripped, "--") {
			continue
		}
		current.WriteString(line)
		current.WriteString("\n")

		if strings.HasSuffix(stripped, ";") {
			statements = append(statements, current.String())
			current.Reset()
		}
	}
	if current.Len() > 0 {
		statements = append(statements, current.String())
	}
	return statements
}

func (c *Client) Close(ctx context.Context) error {
	return c.db.Close()
}
