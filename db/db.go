// Copyright (c) 2025 Julian Mercado.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Open connects to the backing store. dbType is "sqlite" or "postgres";
// for sqlite, dataSource is a file path (or ":memory:").
func Open(dbType, dataSource string) (*sql.DB, error) {
	var driver string
	switch dbType {
	case "sqlite":
		driver = "sqlite"
	case "postgres":
		driver = "postgres"
	default:
		return nil, fmt.Errorf("unsupported database type %q", dbType)
	}

	conn, err := sql.Open(driver, dataSource)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	return conn, nil
}

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// Score bounds are enforced in the handler against the configured scale,
// not as a CHECK, so one schema serves both 1-5 and 1-10 deployments.
const schema = `
CREATE TABLE IF NOT EXISTS rating (
    id TEXT PRIMARY KEY,
    entrant_index INTEGER NOT NULL,
    taste INTEGER NOT NULL,
    presentation INTEGER NOT NULL,
    spirit INTEGER NOT NULL,
    judge TEXT,
    voter_id TEXT NOT NULL,
    one_word TEXT,
    created_at TIMESTAMP NOT NULL,
    UNIQUE (entrant_index, voter_id)
);

CREATE INDEX IF NOT EXISTS idx_rating_entrant ON rating(entrant_index);
CREATE INDEX IF NOT EXISTS idx_rating_voter ON rating(entrant_index, voter_id);
`

// Rebind rewrites ? placeholders to $1..$N for the postgres dialect.
// Store queries are written with ? (the sqlite form).
func Rebind(dbType, query string) string {
	if dbType != "postgres" {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for i := 0; i < len(query); i++ {
		if query[i] == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
		} else {
			b.WriteByte(query[i])
		}
	}
	return b.String()
}
