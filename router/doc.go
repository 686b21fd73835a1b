// Copyright (c) 2025 Julian Mercado.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router wires handlers to routes using Go 1.22+ method+path
patterns on the standard ServeMux.

	mux := router.NewRouter(st, roster, cfg)
	http.ListenAndServe(addr, mux)

Routes:

	GET  /{$}                 voting page (issues voter cookie)
	GET  /words               word-cloud page
	POST /api/rate            submit or update a rating
	GET  /api/my-rating       this browser's rating for an entrant
	GET  /api/leaderboard     ranked per-entrant aggregates
	GET  /api/words           one-word tally per entrant
	GET  /admin               login or dashboard
	POST /admin               password login
	POST /admin/update_names  replace roster (admin)
	POST /admin/reset         delete all ratings (admin)
	GET  /health              liveness probe

Every route except /health runs through the logging middleware.
*/
package router
