package store

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func testRepo(t *testing.T) EventRepo {
	t.Helper()
	repo, err := openTestStore(t).EventRepo()
	require.NoError(t, err)
	return repo
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	assert.NotNil(t, s.Client())
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		require.NoError(t, db.QueryRow("PRAGMA "+tt.pragma).Scan(&got))
		assert.Equal(t, tt.want, got, "PRAGMA %s", tt.pragma)
	}
}

func TestAppendAndListAttempts(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	attempts := []Attempt{
		{Timestamp: base, SessionID: "s1", Skills: []string{"basic.addition"}, Correct: true, TimeMs: 4000},
		{Timestamp: base.Add(time.Minute), SessionID: "s1", Skills: []string{"fractions.compare", "basic.addition"}, Correct: false, HelpLevel: 2, TimeMs: 12000},
	}
	for _, a := range attempts {
		require.NoError(t, repo.AppendAttempt(ctx, a))
	}

	got, err := repo.ListAttempts(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)

	// Sequence order matches append order.
	assert.Less(t, got[0].Sequence, got[1].Sequence)
	assert.True(t, got[0].Timestamp.Equal(base))
	assert.Equal(t, []string{"basic.addition"}, got[0].Skills)
	assert.Equal(t, []string{"fractions.compare", "basic.addition"}, got[1].Skills)
	assert.False(t, got[1].Correct)
	assert.Equal(t, 2, got[1].HelpLevel)
	assert.Equal(t, 12000, got[1].TimeMs)
}

func TestRecentAccuracy(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	// Three attempts touch the skill (two correct), one does not.
	for _, a := range []Attempt{
		{SessionID: "s1", Skills: []string{"division.long"}, Correct: true, TimeMs: 1},
		{SessionID: "s1", Skills: []string{"basic.addition"}, Correct: false, TimeMs: 1},
		{SessionID: "s1", Skills: []string{"division.long", "basic.addition"}, Correct: true, TimeMs: 1},
		{SessionID: "s1", Skills: []string{"division.long"}, Correct: false, TimeMs: 1},
	} {
		require.NoError(t, repo.AppendAttempt(ctx, a))
	}

	accuracy, count, err := repo.RecentAccuracy(ctx, "division.long", 10)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
	assert.InDelta(t, 2.0/3.0, accuracy, 0.0001)

	// lastN window restricts to the most recent matches.
	accuracy, count, err = repo.RecentAccuracy(ctx, "division.long", 2)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.InDelta(t, 0.5, accuracy, 0.0001)

	_, count, err = repo.RecentAccuracy(ctx, "never.seen", 10)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestAppendAndListInsights(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	insights := []Insight{
		{RunID: "r1", SkillID: "basic.addition", PKnown: 0.91, Confidence: 0.7, Classification: "strong", Opportunities: 12, SuccessCount: 11},
		{RunID: "r1", SkillID: "fractions.compare", PKnown: 0.2, Confidence: 0.6, Classification: "weak", Opportunities: 9, SuccessCount: 2},
	}
	require.NoError(t, repo.AppendInsights(ctx, insights))

	got, err := repo.ListInsights(ctx, 0)
	require.NoError(t, err)
	require.Len(t, got, 2)

	// Most recent first.
	assert.Equal(t, "fractions.compare", got[0].SkillID)
	assert.Equal(t, "r1", got[0].RunID)
	assert.InDelta(t, 0.2, got[0].PKnown, 0.0001)

	limited, err := repo.ListInsights(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestInsightNaNRoundTrip(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.AppendInsights(ctx, []Insight{
		{RunID: "r1", SkillID: "corrupt.skill", PKnown: math.NaN(), Confidence: 0.1, Classification: "developing"},
	}))

	got, err := repo.ListInsights(ctx, 0)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.True(t, math.IsNaN(got[0].PKnown), "NaN estimate must survive storage, not become a plausible number")
}
