// Copyright (c) 2025 Julian Mercado.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/julianmercado/bakeoff/cliparse"
	"github.com/julianmercado/bakeoff/handlers"
	"github.com/julianmercado/bakeoff/middleware"
	"github.com/julianmercado/bakeoff/roster"
	"github.com/julianmercado/bakeoff/store"
)

func NewRouter(st *store.RatingStore, r *roster.Roster, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	pageHandler := handlers.NewPageHandler(r, cfg)
	rateHandler := handlers.NewRateHandler(st, r, cfg)
	resultsHandler := handlers.NewResultsHandler(st, r)
	adminHandler := handlers.NewAdminHandler(st, r, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Pages
	mux.HandleFunc("GET /{$}", middleware.WithLogging(pageHandler.Home))
	mux.HandleFunc("GET /words", middleware.WithLogging(pageHandler.WordsPage))

	// Voting API
	mux.HandleFunc("POST /api/rate", middleware.WithLogging(rateHandler.Rate))
	mux.HandleFunc("GET /api/my-rating", middleware.WithLogging(rateHandler.MyRating))

	// Results API
	mux.HandleFunc("GET /api/leaderboard", middleware.WithLogging(resultsHandler.Leaderboard))
	mux.HandleFunc("GET /api/words", middleware.WithLogging(resultsHandler.Words))

	// Admin surface
	mux.HandleFunc("GET /admin", middleware.WithLogging(adminHandler.Dashboard))
	mux.HandleFunc("POST /admin", middleware.WithLogging(adminHandler.Login))
	mux.HandleFunc("POST /admin/update_names", middleware.WithLogging(adminHandler.UpdateNames))
	mux.HandleFunc("POST /admin/reset", middleware.WithLogging(adminHandler.Reset))

	return mux
}
