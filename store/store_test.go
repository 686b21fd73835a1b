package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/julianmercado/bakeoff/models"
	"github.com/julianmercado/bakeoff/testutil"
)

func newTestStore(t *testing.T) *RatingStore {
	t.Helper()
	return NewRatingStore(testutil.SetupTestDB(t), "sqlite")
}

func TestUpsert_InsertThenUpdate(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	err := st.Upsert(ctx, 0, "voter-1", "Alice", "yummy", Scores{Taste: 8, Presentation: 7, Spirit: 9})
	require.NoError(t, err)

	first, err := st.GetByVoter(ctx, 0, "voter-1")
	require.NoError(t, err)
	require.Equal(t, 8, first.Taste)
	require.NotEmpty(t, first.ID)

	// Resubmission overwrites values but keeps row identity and the
	// original creation timestamp.
	err = st.Upsert(ctx, 0, "voter-1", "Alice B", "tasty", Scores{Taste: 3, Presentation: 4, Spirit: 5})
	require.NoError(t, err)

	second, err := st.GetByVoter(ctx, 0, "voter-1")
	require.NoError(t, err)
	require.Equal(t, first.ID, second.ID)
	require.Equal(t, first.CreatedAt, second.CreatedAt)
	require.Equal(t, 3, second.Taste)
	require.Equal(t, 4, second.Presentation)
	require.Equal(t, 5, second.Spirit)
	require.NotNil(t, second.Judge)
	require.Equal(t, "Alice B", *second.Judge)
	require.NotNil(t, second.OneWord)
	require.Equal(t, "tasty", *second.OneWord)

	var count int
	require.NoError(t, st.db.QueryRow(`SELECT COUNT(*) FROM rating`).Scan(&count))
	require.Equal(t, 1, count)
}

func TestUpsert_DistinctVotersAndEntrants(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, st.Upsert(ctx, 0, "voter-1", "", "", Scores{Taste: 5, Presentation: 5, Spirit: 5}))
	require.NoError(t, st.Upsert(ctx, 0, "voter-2", "", "", Scores{Taste: 5, Presentation: 5, Spirit: 5}))
	require.NoError(t, st.Upsert(ctx, 1, "voter-1", "", "", Scores{Taste: 5, Presentation: 5, Spirit: 5}))

	var count int
	require.NoError(t, st.db.QueryRow(`SELECT COUNT(*) FROM rating`).Scan(&count))
	require.Equal(t, 3, count)
}

func TestGetByVoter_NotFound(t *testing.T) {
	st := newTestStore(t)

	_, err := st.GetByVoter(context.Background(), 0, "nobody")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestLeaderboard(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	// Entrant 0: two voters, means 6.0 per axis, mean total 18.00.
	require.NoError(t, st.Upsert(ctx, 0, "x", "", "", Scores{Taste: 10, Presentation: 10, Spirit: 10}))
	require.NoError(t, st.Upsert(ctx, 0, "y", "", "", Scores{Taste: 2, Presentation: 2, Spirit: 2}))
	// Entrant 2: one voter, higher mean total.
	require.NoError(t, st.Upsert(ctx, 2, "x", "", "", Scores{Taste: 9, Presentation: 8, Spirit: 10}))

	rows, err := st.Leaderboard(ctx, 3)
	require.NoError(t, err)
	require.Len(t, rows, 2) // entrant 1 has no votes and is absent

	require.Equal(t, 2, rows[0].EntrantIndex)
	require.Equal(t, 1, rows[0].Votes)
	require.Equal(t, 27.0, rows[0].AvgTotal)

	require.Equal(t, 0, rows[1].EntrantIndex)
	require.Equal(t, 2, rows[1].Votes)
	require.Equal(t, 6.0, rows[1].AvgTaste)
	require.Equal(t, 6.0, rows[1].AvgPresentation)
	require.Equal(t, 6.0, rows[1].AvgSpirit)
	require.Equal(t, 18.0, rows[1].AvgTotal)
}

func TestLeaderboard_Rounding(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	// Three votes: taste mean 10/3 = 3.333... -> 3.3,
	// total mean 25/3 = 8.333... -> 8.33.
	require.NoError(t, st.Upsert(ctx, 0, "a", "", "", Scores{Taste: 3, Presentation: 3, Spirit: 3}))
	require.NoError(t, st.Upsert(ctx, 0, "b", "", "", Scores{Taste: 3, Presentation: 2, Spirit: 3}))
	require.NoError(t, st.Upsert(ctx, 0, "c", "", "", Scores{Taste: 4, Presentation: 2, Spirit: 2}))

	rows, err := st.Leaderboard(ctx, 1)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, 3.3, rows[0].AvgTaste)
	require.Equal(t, 8.33, rows[0].AvgTotal)
}

func TestLeaderboard_TieBreakByOrdinal(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, st.Upsert(ctx, 1, "a", "", "", Scores{Taste: 5, Presentation: 5, Spirit: 5}))
	require.NoError(t, st.Upsert(ctx, 0, "a", "", "", Scores{Taste: 5, Presentation: 5, Spirit: 5}))

	rows, err := st.Leaderboard(ctx, 2)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, 0, rows[0].EntrantIndex)
	require.Equal(t, 1, rows[1].EntrantIndex)
}

func TestLeaderboard_DropsOrphanedOrdinals(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, st.Upsert(ctx, 0, "a", "", "", Scores{Taste: 5, Presentation: 5, Spirit: 5}))
	require.NoError(t, st.Upsert(ctx, 4, "a", "", "", Scores{Taste: 9, Presentation: 9, Spirit: 9}))

	// Roster shrank to 2 entrants: the vote for ordinal 4 disappears
	// from the leaderboard but stays in the table.
	rows, err := st.Leaderboard(ctx, 2)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, 0, rows[0].EntrantIndex)

	all, err := st.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
}

func TestWordTally_CaseFoldsAndOrders(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, st.Upsert(ctx, 0, "a", "", "Yummy", Scores{Taste: 5, Presentation: 5, Spirit: 5}))
	require.NoError(t, st.Upsert(ctx, 0, "b", "", "yummy", Scores{Taste: 5, Presentation: 5, Spirit: 5}))
	require.NoError(t, st.Upsert(ctx, 0, "c", "", "dry", Scores{Taste: 5, Presentation: 5, Spirit: 5}))
	require.NoError(t, st.Upsert(ctx, 1, "a", "", "festive", Scores{Taste: 5, Presentation: 5, Spirit: 5}))
	require.NoError(t, st.Upsert(ctx, 2, "a", "", "", Scores{Taste: 5, Presentation: 5, Spirit: 5}))

	rows, err := st.WordTally(ctx, 3)
	require.NoError(t, err)
	require.Equal(t, []WordRow{
		{EntrantIndex: 0, Word: "yummy", Count: 2},
		{EntrantIndex: 0, Word: "dry", Count: 1},
		{EntrantIndex: 1, Word: "festive", Count: 1},
	}, rows)
}

func TestReset(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, st.Upsert(ctx, 0, "a", "", "good", Scores{Taste: 5, Presentation: 5, Spirit: 5}))
	require.NoError(t, st.Upsert(ctx, 1, "b", "", "nice", Scores{Taste: 5, Presentation: 5, Spirit: 5}))

	require.NoError(t, st.Reset(ctx))

	rows, err := st.Leaderboard(ctx, 2)
	require.NoError(t, err)
	require.Empty(t, rows)

	words, err := st.WordTally(ctx, 2)
	require.NoError(t, err)
	require.Empty(t, words)
}

func TestNormalizeOneWord(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want *string
	}{
		{"empty", "", nil},
		{"whitespace only", "   ", nil},
		{"plain word", "yummy", strPtr("yummy")},
		{"first token only", "so very good", strPtr("so")},
		{"strips punctuation", "Delicious!!", strPtr("Delicious")},
		{"punctuation only", "!!!", nil},
		{"case preserved", "AMAZING", strPtr("AMAZING")},
		{"over 20 runes capped", "supercalifragilisticexpialidocious", strPtr("supercalifragilistic")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeOneWord(tt.in)
			if tt.want == nil {
				require.Nil(t, got)
			} else {
				require.NotNil(t, got)
				require.Equal(t, *tt.want, *got)
			}
		})
	}
}

func TestNormalizeJudge(t *testing.T) {
	require.Nil(t, NormalizeJudge("   "))

	got := NormalizeJudge("  Aunt Carol  ")
	require.NotNil(t, got)
	require.Equal(t, "Aunt Carol", *got)

	long := NormalizeJudge("the judge with an extremely long display name indeed")
	require.NotNil(t, long)
	require.Len(t, []rune(*long), models.MaxJudgeLen)
}

func strPtr(s string) *string { return &s }
