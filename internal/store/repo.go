package store

import (
	"context"
	"time"

	"github.com/priyali/arithma/ent"
)

// Attempt is one recorded practice attempt, in storage form. The CLI
// converts attempts to engine observations at the call boundary so the
// engine never depends on the store.
type Attempt struct {
	Sequence  int64
	Timestamp time.Time
	SessionID string
	Skills    []string
	Correct   bool
	// HelpLevel is the assistance ordinal: 0 none, 1 hint,
	// 2 decomposition, 3 full solution.
	HelpLevel int
	TimeMs    int
}

// Insight is one skill's stored estimate from a past computation run.
type Insight struct {
	Sequence       int64
	Timestamp      time.Time
	RunID          string
	SkillID        string
	PKnown         float64
	Confidence     float64
	Classification string
	Opportunities  int
	SuccessCount   int
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendAttempt records one practice attempt.
	AppendAttempt(ctx context.Context, a Attempt) error

	// ListAttempts returns all recorded attempts in sequence order.
	ListAttempts(ctx context.Context) ([]Attempt, error)

	// RecentAccuracy returns the accuracy over the last n attempts that
	// exercised skillID, and how many such attempts were found.
	RecentAccuracy(ctx context.Context, skillID string, lastN int) (float64, int, error)

	// AppendInsights records the per-skill estimates of one computation
	// run under a shared run ID.
	AppendInsights(ctx context.Context, insights []Insight) error

	// ListInsights returns stored insights, most recent run first,
	// limited to the given number of events (0 = unlimited).
	ListInsights(ctx context.Context, limit int) ([]Insight, error)
}

// eventRepo implements EventRepo using the ent client.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}
