// Copyright (c) 2025 Julian Mercado.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"embed"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/julianmercado/bakeoff/auth"
	"github.com/julianmercado/bakeoff/cliparse"
	"github.com/julianmercado/bakeoff/roster"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// voterCookieName identifies a browser across visits for vote
// de-duplication.
const voterCookieName = "voter_id"

// voterCookieMaxAge is ~1 year.
const voterCookieMaxAge = 60 * 60 * 24 * 365

type PageHandler struct {
	roster *roster.Roster
	cfg    cliparse.Config
}

func NewPageHandler(r *roster.Roster, cfg cliparse.Config) *PageHandler {
	return &PageHandler{roster: r, cfg: cfg}
}

type votingPageData struct {
	Title    string
	Entrants []string
	ScoreMax int
}

// Home handles GET / - renders the voting page and issues the voter
// identity cookie on first visit.
func (h *PageHandler) Home(w http.ResponseWriter, r *http.Request) {
	if _, err := r.Cookie(voterCookieName); err != nil {
		http.SetCookie(w, &http.Cookie{
			Name:     voterCookieName,
			Value:    auth.NewVoterID(),
			Path:     "/",
			MaxAge:   voterCookieMaxAge,
			SameSite: http.SameSiteLaxMode,
		})
	}

	renderPage(w, "index.html", votingPageData{
		Title:    "Holiday Baking Competition",
		Entrants: h.roster.Names(),
		ScoreMax: h.cfg.ScoreMax,
	})
}

// WordsPage handles GET /words - static word-cloud display page; the
// data loads client-side from /api/words.
func (h *PageHandler) WordsPage(w http.ResponseWriter, r *http.Request) {
	renderPage(w, "words.html", votingPageData{
		Title:    "One Word Results",
		Entrants: h.roster.Names(),
	})
}

func renderPage(w http.ResponseWriter, name string, data interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTemplates.ExecuteTemplate(w, name, data); err != nil {
		slog.Error("failed to render template", "template", name, "error", err)
	}
}

// voterIDFromRequest returns the browser's voter identifier, or "anon"
// when the cookie is missing (API hit without visiting the voting page
// first).
func voterIDFromRequest(r *http.Request) string {
	c, err := r.Cookie(voterCookieName)
	if err != nil || c.Value == "" {
		return "anon"
	}
	return c.Value
}
