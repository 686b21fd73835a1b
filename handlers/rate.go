// Copyright (c) 2025 Julian Mercado.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/julianmercado/bakeoff/cliparse"
	"github.com/julianmercado/bakeoff/middleware"
	"github.com/julianmercado/bakeoff/models"
	"github.com/julianmercado/bakeoff/roster"
	"github.com/julianmercado/bakeoff/store"
)

type RateHandler struct {
	store  *store.RatingStore
	roster *roster.Roster
	cfg    cliparse.Config
}

func NewRateHandler(st *store.RatingStore, r *roster.Roster, cfg cliparse.Config) *RateHandler {
	return &RateHandler{store: st, roster: r, cfg: cfg}
}

// Rate handles POST /api/rate
func (h *RateHandler) Rate(w http.ResponseWriter, r *http.Request) {
	var req models.RateRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		rateError(w, "Invalid payload")
		return
	}

	if req.EntrantIndex == nil || req.Taste == nil || req.Presentation == nil || req.Spirit == nil {
		rateError(w, "Invalid payload")
		return
	}

	entrantIndex := *req.EntrantIndex
	if entrantIndex < 0 || entrantIndex >= h.roster.Len() {
		rateError(w, "Invalid entrant")
		return
	}

	scores := store.Scores{
		Taste:        *req.Taste,
		Presentation: *req.Presentation,
		Spirit:       *req.Spirit,
	}
	for _, s := range []int{scores.Taste, scores.Presentation, scores.Spirit} {
		if s < 1 || s > h.cfg.ScoreMax {
			rateError(w, "Scores must be between 1 and "+strconv.Itoa(h.cfg.ScoreMax))
			return
		}
	}

	voterID := voterIDFromRequest(r)
	err := h.store.Upsert(r.Context(), entrantIndex, voterID, req.Judge, req.OneWord, scores)
	if err != nil {
		slog.Error("failed to upsert rating", "error", err, "entrant_index", entrantIndex)
		middleware.JSONResponse(w, http.StatusInternalServerError, models.APIResponse{
			OK:    false,
			Error: err.Error(),
		})
		return
	}

	slog.Info("rating stored", "entrant_index", entrantIndex, "voter", voterID)

	middleware.JSONResponse(w, http.StatusOK, models.APIResponse{OK: true})
}

// MyRating handles GET /api/my-rating?entrant_index=N
func (h *RateHandler) MyRating(w http.ResponseWriter, r *http.Request) {
	entrantIndex, err := strconv.Atoi(r.URL.Query().Get("entrant_index"))
	if err != nil {
		middleware.JSONResponse(w, http.StatusBadRequest, models.APIResponse{OK: false})
		return
	}

	// Out-of-range is not an error here: the page just has nothing
	// stored for that entrant.
	if entrantIndex < 0 || entrantIndex >= h.roster.Len() {
		middleware.JSONResponse(w, http.StatusOK, models.MyRatingResponse{OK: true, Rating: nil})
		return
	}

	rating, err := h.store.GetByVoter(r.Context(), entrantIndex, voterIDFromRequest(r))
	if errors.Is(err, store.ErrNotFound) {
		middleware.JSONResponse(w, http.StatusOK, models.MyRatingResponse{OK: true, Rating: nil})
		return
	}
	if err != nil {
		slog.Error("failed to get rating", "error", err, "entrant_index", entrantIndex)
		middleware.JSONResponse(w, http.StatusInternalServerError, models.APIResponse{
			OK:    false,
			Error: err.Error(),
		})
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.MyRatingResponse{OK: true, Rating: rating})
}

func rateError(w http.ResponseWriter, msg string) {
	middleware.JSONResponse(w, http.StatusBadRequest, models.APIResponse{OK: false, Error: msg})
}
