// Copyright (c) 2025 Julian Mercado.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains the HTTP handlers for the bake-off rating
service.

# Handler Types

Each handler is a struct with its dependencies injected via a
constructor:

  - PageHandler: server-rendered voting and word-cloud pages
  - RateHandler: rating submission and my-rating lookup
  - ResultsHandler: leaderboard and word tally API
  - AdminHandler: password login, raw results dashboard, roster edit,
    contest reset

	rateHandler := handlers.NewRateHandler(st, roster, cfg)

# Voting Flow

A browser gets a voter_id cookie on GET /, then submits ratings:

	POST /api/rate                       → Rate (upsert keyed on entrant+voter)
	GET  /api/my-rating?entrant_index=N  → MyRating

The voting API answers with the {ok, error} envelope; validation
failures are HTTP 400 and write nothing.

# Results

	GET /api/leaderboard → Leaderboard (mean per axis + mean total, ranked)
	GET /api/words       → Words (case-folded one-word tally per entrant)

# Admin Surface

	GET  /admin               → Dashboard (login page without a session)
	POST /admin               → Login (signed session cookie)
	POST /admin/update_names  → UpdateNames
	POST /admin/reset         → Reset

Mutating admin operations without a valid session redirect to /admin
rather than returning an error payload.

Pages are html/template files embedded at build time (templates/).
*/
package handlers
