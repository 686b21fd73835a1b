package models

import "time"

// Limits applied to free-text fields before storage
const (
	MaxJudgeLen   = 50
	MaxOneWordLen = 20
)

// Request types

type RateRequest struct {
	EntrantIndex *int   `json:"entrant_index"`
	Taste        *int   `json:"taste"`
	Presentation *int   `json:"presentation"`
	Spirit       *int   `json:"spirit"`
	Judge        string `json:"judge,omitempty"`
	OneWord      string `json:"one_word,omitempty"`
}

// Response types

// APIResponse is the {ok, error} envelope used by the voting API.
type APIResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

type MyRatingResponse struct {
	OK     bool    `json:"ok"`
	Rating *Rating `json:"rating"`
}

type LeaderboardEntry struct {
	Name            string  `json:"name"`
	Votes           int     `json:"votes"`
	AvgTaste        float64 `json:"avg_taste"`
	AvgPresentation float64 `json:"avg_presentation"`
	AvgSpirit       float64 `json:"avg_spirit"`
	AvgTotal        float64 `json:"avg_total"`
}

type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// Domain types

type Rating struct {
	ID           string    `json:"-"`
	EntrantIndex int       `json:"entrant_index"`
	Taste        int       `json:"taste"`
	Presentation int       `json:"presentation"`
	Spirit       int       `json:"spirit"`
	Judge        *string   `json:"judge"`
	VoterID      string    `json:"-"` // Never expose in JSON
	OneWord      *string   `json:"one_word"`
	CreatedAt    time.Time `json:"-"`
}

// AdminRow is one rating joined with its entrant display name, as shown
// on the admin dashboard.
type AdminRow struct {
	Entrant      string
	Taste        int
	Presentation int
	Spirit       int
	Total        int
	Judge        string
	OneWord      string
	CreatedAt    time.Time
}

// Error response for admin/raw endpoints

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
