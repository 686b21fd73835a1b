// Copyright (c) 2025 Julian Mercado.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database connection and schema creation.

The backing store is a single rating table with a UNIQUE
(entrant_index, voter_id) constraint; "one vote per voter per entrant"
is delegated entirely to that constraint plus the store's transactional
upsert.

Two drivers are supported:

  - sqlite (modernc.org/sqlite) - the default, zero-setup store
  - postgres (lib/pq) - for deployments that already run one

Queries in the store layer are written with ? placeholders and passed
through Rebind, which rewrites them to $N for postgres.

	conn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)
	err = db.CreateSchema(conn)
*/
package db
