// Copyright (c) 2025 Julian Mercado.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the bake-off rating server.

Bakeoff is a small web service for scoring entries in a holiday baking
contest. Judges rate each entry on taste, presentation, and holiday
spirit, and leave a one-word impression; results aggregate into a
leaderboard and per-entry word clouds. Judges are identified only by a
long-lived browser cookie - one vote per browser per entry,
resubmission updates the earlier vote.

# Starting the Server

	SESSION_SECRET=... ADMIN_PASSWORD=... go run .

Or with flags:

	go run . -p 5000 -d ratings.db -t sqlite

# Configuration

Required settings:

  - SESSION_SECRET: signs the admin session cookie
  - ADMIN_PASSWORD: shared password for the admin dashboard

Optional settings:

  - PORT (-p): server port (default: 5000)
  - DATABASE_URL (-d): sqlite path or postgres URL (default: ratings.db)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - ROSTER_PATH (-roster): entrant roster YAML file (default: roster.yaml)
  - SCORE_MAX (-score-max): rating scale upper bound (default: 10)

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP handlers (pages, rating, results, admin)
  - router: route definitions using Go 1.22+ routing
  - middleware: logging, JSON helpers
  - models: request/response types
  - store: rating table data access (upsert, aggregation, tally)
  - roster: entrant list with YAML persistence
  - auth: voter identity and signed admin sessions
  - db: driver selection and schema creation
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
