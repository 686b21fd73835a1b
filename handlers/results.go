// Copyright (c) 2025 Julian Mercado.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/julianmercado/bakeoff/middleware"
	"github.com/julianmercado/bakeoff/models"
	"github.com/julianmercado/bakeoff/roster"
	"github.com/julianmercado/bakeoff/store"
)

type ResultsHandler struct {
	store  *store.RatingStore
	roster *roster.Roster
}

func NewResultsHandler(st *store.RatingStore, r *roster.Roster) *ResultsHandler {
	return &ResultsHandler{store: st, roster: r}
}

// Leaderboard handles GET /api/leaderboard
func (h *ResultsHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	names := h.roster.Names()

	rows, err := h.store.Leaderboard(r.Context(), len(names))
	if err != nil {
		slog.Error("failed to compute leaderboard", "error", err)
		middleware.JSONResponse(w, http.StatusInternalServerError, models.APIResponse{
			OK:    false,
			Error: err.Error(),
		})
		return
	}

	entries := []models.LeaderboardEntry{}
	for _, row := range rows {
		entries = append(entries, models.LeaderboardEntry{
			Name:            names[row.EntrantIndex],
			Votes:           row.Votes,
			AvgTaste:        row.AvgTaste,
			AvgPresentation: row.AvgPresentation,
			AvgSpirit:       row.AvgSpirit,
			AvgTotal:        row.AvgTotal,
		})
	}

	middleware.JSONResponse(w, http.StatusOK, entries)
}

// Words handles GET /api/words
func (h *ResultsHandler) Words(w http.ResponseWriter, r *http.Request) {
	names := h.roster.Names()

	rows, err := h.store.WordTally(r.Context(), len(names))
	if err != nil {
		slog.Error("failed to compute word tally", "error", err)
		middleware.JSONResponse(w, http.StatusInternalServerError, models.APIResponse{
			OK:    false,
			Error: err.Error(),
		})
		return
	}

	// Rows arrive grouped by entrant, already ordered count desc then
	// word asc within each group.
	tally := map[string][]models.WordCount{}
	for _, row := range rows {
		name := names[row.EntrantIndex]
		tally[name] = append(tally[name], models.WordCount{Word: row.Word, Count: row.Count})
	}

	middleware.JSONResponse(w, http.StatusOK, tally)
}
