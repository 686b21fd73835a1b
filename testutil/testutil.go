// Copyright (c) 2025 Julian Mercado.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/julianmercado/bakeoff/auth"
	"github.com/julianmercado/bakeoff/cliparse"
	"github.com/julianmercado/bakeoff/db"
)

// SetupTestDB creates a fresh in-memory sqlite database with the full
// schema. MaxOpenConns is pinned to 1 so every query sees the same
// in-memory database.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	conn.SetMaxOpenConns(1)

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		conn.Close()
	})

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:          5000,
		DatabaseURL:   ":memory:",
		DatabaseType:  "sqlite",
		SessionSecret: "test-session-secret",
		AdminPassword: "test-password",
		RosterPath:    "roster.yaml",
		ScoreMax:      10,
	}
}

// InsertTestRating writes a rating row directly and returns its ID.
func InsertTestRating(t *testing.T, conn *sql.DB, entrantIndex, taste, presentation, spirit int, voterID string, judge, oneWord *string) string {
	t.Helper()

	id, _ := auth.GenerateID(16)
	_, err := conn.ExecContext(context.Background(), `
		INSERT INTO rating (id, entrant_index, taste, presentation, spirit, judge, voter_id, one_word, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, id, entrantIndex, taste, presentation, spirit, judge, voterID, oneWord, time.Now().UTC())
	if err != nil {
		t.Fatalf("Failed to insert test rating: %v", err)
	}

	return id
}

// CountRatings returns the number of rating rows.
func CountRatings(t *testing.T, conn *sql.DB) int {
	t.Helper()

	var n int
	if err := conn.QueryRow(`SELECT COUNT(*) FROM rating`).Scan(&n); err != nil {
		t.Fatalf("Failed to count ratings: %v", err)
	}
	return n
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
