// Copyright (c) 2025 Julian Mercado.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides request logging and JSON helpers shared by
all handlers.

WithLogging wraps a handler with slog request/completion lines:

	mux.HandleFunc("POST /api/rate", middleware.WithLogging(h.Rate))

JSONResponse and ParseJSONBody are the only places JSON crosses the
wire, so the content type and encoding behavior stay consistent across
endpoints.
*/
package middleware
