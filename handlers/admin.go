// Copyright (c) 2025 Julian Mercado.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/julianmercado/bakeoff/auth"
	"github.com/julianmercado/bakeoff/cliparse"
	"github.com/julianmercado/bakeoff/middleware"
	"github.com/julianmercado/bakeoff/models"
	"github.com/julianmercado/bakeoff/roster"
	"github.com/julianmercado/bakeoff/store"
)

const sessionCookieName = "admin_session"

type AdminHandler struct {
	store  *store.RatingStore
	roster *roster.Roster
	cfg    cliparse.Config
}

func NewAdminHandler(st *store.RatingStore, r *roster.Roster, cfg cliparse.Config) *AdminHandler {
	return &AdminHandler{store: st, roster: r, cfg: cfg}
}

type loginPageData struct {
	Error string
}

type dashboardPageData struct {
	Title    string
	Rows     []models.AdminRow
	Entrants []string
}

// Dashboard handles GET /admin - the login page when no valid session
// exists, the raw results dashboard otherwise.
func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	if !h.isAdmin(r) {
		renderPage(w, "admin_login.html", loginPageData{})
		return
	}

	ratings, err := h.store.ListAll(r.Context())
	if err != nil {
		slog.Error("failed to list ratings", "error", err)
		middleware.JSONResponse(w, http.StatusInternalServerError, models.ErrorResponse{
			Error:   http.StatusText(http.StatusInternalServerError),
			Message: err.Error(),
		})
		return
	}

	rows := make([]models.AdminRow, 0, len(ratings))
	for _, rt := range ratings {
		name := h.roster.Name(rt.EntrantIndex)
		if name == "" {
			// Vote for an entrant removed by a roster edit.
			name = "(removed)"
		}
		row := models.AdminRow{
			Entrant:      name,
			Taste:        rt.Taste,
			Presentation: rt.Presentation,
			Spirit:       rt.Spirit,
			Total:        rt.Taste + rt.Presentation + rt.Spirit,
			CreatedAt:    rt.CreatedAt,
		}
		if rt.Judge != nil {
			row.Judge = *rt.Judge
		}
		if rt.OneWord != nil {
			row.OneWord = *rt.OneWord
		}
		rows = append(rows, row)
	}

	renderPage(w, "admin_results.html", dashboardPageData{
		Title:    "Admin Results",
		Rows:     rows,
		Entrants: h.roster.Names(),
	})
}

// Login handles POST /admin - sets the signed session cookie on a
// correct password, re-renders the login page otherwise.
func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		renderPage(w, "admin_login.html", loginPageData{Error: "Invalid form submission"})
		return
	}

	if !auth.CheckPassword(r.FormValue("password"), h.cfg.AdminPassword) {
		slog.Warn("admin login failed", "remote", r.RemoteAddr)
		renderPage(w, "admin_login.html", loginPageData{Error: "Incorrect password"})
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    auth.SignSession(h.cfg.SessionSecret),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	slog.Info("admin logged in", "remote", r.RemoteAddr)
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

// UpdateNames handles POST /admin/update_names - replaces the roster
// from the dashboard textarea, one name per line, blanks stripped.
func (h *AdminHandler) UpdateNames(w http.ResponseWriter, r *http.Request) {
	if !h.isAdmin(r) {
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}

	names := strings.Split(r.FormValue("names"), "\n")
	if err := h.roster.Replace(names); err != nil {
		slog.Error("failed to save roster", "error", err)
		middleware.JSONResponse(w, http.StatusInternalServerError, models.ErrorResponse{
			Error:   http.StatusText(http.StatusInternalServerError),
			Message: err.Error(),
		})
		return
	}

	slog.Info("roster updated", "entrants", h.roster.Len())
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

// Reset handles POST /admin/reset - deletes every rating. The roster
// is untouched.
func (h *AdminHandler) Reset(w http.ResponseWriter, r *http.Request) {
	if !h.isAdmin(r) {
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}

	if err := h.store.Reset(r.Context()); err != nil {
		slog.Error("failed to reset ratings", "error", err)
		middleware.JSONResponse(w, http.StatusInternalServerError, models.ErrorResponse{
			Error:   http.StatusText(http.StatusInternalServerError),
			Message: err.Error(),
		})
		return
	}

	slog.Info("contest reset", "remote", r.RemoteAddr)
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

func (h *AdminHandler) isAdmin(r *http.Request) bool {
	c, err := r.Cookie(sessionCookieName)
	if err != nil {
		return false
	}
	return auth.VerifySession(c.Value, h.cfg.SessionSecret) == nil
}
