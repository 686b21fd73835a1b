// Copyright (c) 2025 Julian Mercado.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
	"unicode"

	"github.com/julianmercado/bakeoff/auth"
	"github.com/julianmercado/bakeoff/db"
	"github.com/julianmercado/bakeoff/models"
)

var ErrNotFound = errors.New("rating not found")

// Scores holds one voter's three axis scores for an entrant.
type Scores struct {
	Taste        int
	Presentation int
	Spirit       int
}

// LeaderboardRow is the per-entrant aggregate before display names are
// attached. Per-axis means are rounded to 1 decimal, the total to 2.
type LeaderboardRow struct {
	EntrantIndex    int
	Votes           int
	AvgTaste        float64
	AvgPresentation float64
	AvgSpirit       float64
	AvgTotal        float64
}

// WordRow is one case-folded word with its occurrence count for an
// entrant.
type WordRow struct {
	EntrantIndex int
	Word         string
	Count        int
}

// RatingStore is the data-access layer over the rating table.
type RatingStore struct {
	db     *sql.DB
	dbType string
}

func NewRatingStore(conn *sql.DB, dbType string) *RatingStore {
	return &RatingStore{db: conn, dbType: dbType}
}

func (s *RatingStore) q(query string) string {
	return db.Rebind(s.dbType, query)
}

// Upsert records a voter's rating for an entrant: insert a new row, or
// overwrite scores/judge/one_word on the existing (entrant, voter) row.
// Row identity and created_at survive resubmission. Runs as a single
// transaction so concurrent resubmissions cannot produce two rows.
func (s *RatingStore) Upsert(ctx context.Context, entrantIndex int, voterID, judge, oneWord string, sc Scores) error {
	judgePtr := NormalizeJudge(judge)
	wordPtr := NormalizeOneWord(oneWord)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var existingID string
	err = tx.QueryRowContext(ctx, s.q(`
		SELECT id FROM rating WHERE entrant_index = ? AND voter_id = ?
	`), entrantIndex, voterID).Scan(&existingID)

	switch {
	case err == sql.ErrNoRows:
		id, err := auth.GenerateID(16)
		if err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx, s.q(`
			INSERT INTO rating (id, entrant_index, taste, presentation, spirit, judge, voter_id, one_word, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		`), id, entrantIndex, sc.Taste, sc.Presentation, sc.Spirit, judgePtr, voterID, wordPtr, time.Now().UTC())
		if err != nil {
			return fmt.Errorf("failed to insert rating: %w", err)
		}
	case err != nil:
		return fmt.Errorf("failed to look up rating: %w", err)
	default:
		_, err = tx.ExecContext(ctx, s.q(`
			UPDATE rating
			SET taste = ?, presentation = ?, spirit = ?, judge = ?, one_word = ?
			WHERE id = ?
		`), sc.Taste, sc.Presentation, sc.Spirit, judgePtr, wordPtr, existingID)
		if err != nil {
			return fmt.Errorf("failed to update rating: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit rating: %w", err)
	}
	return nil
}

// GetByVoter returns the rating a voter has stored for an entrant, or
// ErrNotFound.
func (s *RatingStore) GetByVoter(ctx context.Context, entrantIndex int, voterID string) (*models.Rating, error) {
	var r models.Rating
	err := s.db.QueryRowContext(ctx, s.q(`
		SELECT id, entrant_index, taste, presentation, spirit, judge, voter_id, one_word, created_at
		FROM rating
		WHERE entrant_index = ? AND voter_id = ?
	`), entrantIndex, voterID).Scan(
		&r.ID, &r.EntrantIndex, &r.Taste, &r.Presentation, &r.Spirit,
		&r.Judge, &r.VoterID, &r.OneWord, &r.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get rating: %w", err)
	}

	return &r, nil
}

// Leaderboard aggregates every rating by entrant: vote count, mean per
// axis, and mean total, descending by mean total with ascending entrant
// ordinal as the tie-break. Entrants with no votes do not appear.
// Ordinals at or beyond rosterLen (votes for since-removed entrants)
// are excluded.
func (s *RatingStore) Leaderboard(ctx context.Context, rosterLen int) ([]LeaderboardRow, error) {
	rows, err := s.db.QueryContext(ctx, s.q(`
		SELECT entrant_index, COUNT(*) AS votes,
		       AVG(taste) AS avg_taste,
		       AVG(presentation) AS avg_presentation,
		       AVG(spirit) AS avg_spirit,
		       AVG(taste + presentation + spirit) AS avg_total
		FROM rating
		WHERE entrant_index < ?
		GROUP BY entrant_index
		ORDER BY avg_total DESC, entrant_index ASC
	`), rosterLen)
	if err != nil {
		return nil, fmt.Errorf("failed to query leaderboard: %w", err)
	}
	defer rows.Close()

	var out []LeaderboardRow
	for rows.Next() {
		var lr LeaderboardRow
		if err := rows.Scan(&lr.EntrantIndex, &lr.Votes, &lr.AvgTaste, &lr.AvgPresentation, &lr.AvgSpirit, &lr.AvgTotal); err != nil {
			return nil, fmt.Errorf("failed to scan leaderboard row: %w", err)
		}
		lr.AvgTaste = round1(lr.AvgTaste)
		lr.AvgPresentation = round1(lr.AvgPresentation)
		lr.AvgSpirit = round1(lr.AvgSpirit)
		lr.AvgTotal = round2(lr.AvgTotal)
		out = append(out, lr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read leaderboard rows: %w", err)
	}

	return out, nil
}

// WordTally groups non-empty one_word responses per entrant,
// case-folded, ordered by count descending then word ascending.
// Ordinals at or beyond rosterLen are excluded.
func (s *RatingStore) WordTally(ctx context.Context, rosterLen int) ([]WordRow, error) {
	rows, err := s.db.QueryContext(ctx, s.q(`
		SELECT entrant_index, LOWER(one_word) AS w, COUNT(*) AS c
		FROM rating
		WHERE one_word IS NOT NULL AND one_word != '' AND entrant_index < ?
		GROUP BY entrant_index, LOWER(one_word)
		ORDER BY entrant_index ASC, c DESC, w ASC
	`), rosterLen)
	if err != nil {
		return nil, fmt.Errorf("failed to query word tally: %w", err)
	}
	defer rows.Close()

	var out []WordRow
	for rows.Next() {
		var wr WordRow
		if err := rows.Scan(&wr.EntrantIndex, &wr.Word, &wr.Count); err != nil {
			return nil, fmt.Errorf("failed to scan word row: %w", err)
		}
		out = append(out, wr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read word rows: %w", err)
	}

	return out, nil
}

// ListAll returns every rating row, newest first. Out-of-range ordinals
// are included; the admin surface decides how to label them.
func (s *RatingStore) ListAll(ctx context.Context) ([]models.Rating, error) {
	rows, err := s.db.QueryContext(ctx, s.q(`
		SELECT id, entrant_index, taste, presentation, spirit, judge, voter_id, one_word, created_at
		FROM rating
		ORDER BY created_at DESC, id ASC
	`))
	if err != nil {
		return nil, fmt.Errorf("failed to query ratings: %w", err)
	}
	defer rows.Close()

	var out []models.Rating
	for rows.Next() {
		var r models.Rating
		if err := rows.Scan(
			&r.ID, &r.EntrantIndex, &r.Taste, &r.Presentation, &r.Spirit,
			&r.Judge, &r.VoterID, &r.OneWord, &r.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan rating: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read rating rows: %w", err)
	}

	return out, nil
}

// Reset deletes every rating row. The roster is untouched.
func (s *RatingStore) Reset(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM rating`); err != nil {
		return fmt.Errorf("failed to reset ratings: %w", err)
	}
	return nil
}

// NormalizeJudge trims the judge display name and caps it at
// models.MaxJudgeLen runes. Empty after trimming means absent (nil).
func NormalizeJudge(judge string) *string {
	judge = strings.TrimSpace(judge)
	if judge == "" {
		return nil
	}
	judge = capRunes(judge, models.MaxJudgeLen)
	return &judge
}

// NormalizeOneWord reduces a free-text impression to its first
// whitespace-delimited token, strips surrounding punctuation, and caps
// it at models.MaxOneWordLen runes. Case is preserved at write time;
// the tally folds it at read time. Empty after trimming means absent.
func NormalizeOneWord(word string) *string {
	fields := strings.Fields(word)
	if len(fields) == 0 {
		return nil
	}
	w := strings.TrimFunc(fields[0], unicode.IsPunct)
	if w == "" {
		return nil
	}
	w = capRunes(w, models.MaxOneWordLen)
	return &w
}

func capRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) > n {
		return string(runes[:n])
	}
	return s
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
