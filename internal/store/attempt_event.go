package store

import (
	"context"
	"fmt"

	"github.com/priyali/arithma/ent"
	"github.com/priyali/arithma/ent/attemptevent"
)

func (r *eventRepo) AppendAttempt(ctx context.Context, a Attempt) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.AttemptEvent.Create().
		SetSequence(seqNum).
		SetSessionID(a.SessionID).
		SetSkills(a.Skills).
		SetCorrect(a.Correct).
		SetHelpLevel(a.HelpLevel).
		SetTimeMs(a.TimeMs)

	if !a.Timestamp.IsZero() {
		builder = builder.SetTimestamp(a.Timestamp)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save attempt event: %w", err)
	}
	return nil
}

func (r *eventRepo) ListAttempts(ctx context.Context) ([]Attempt, error) {
	events, err := r.client.AttemptEvent.Query().
		Order(ent.Asc(attemptevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query attempts: %w", err)
	}

	attempts := make([]Attempt, len(events))
	for i, e := range events {
		attempts[i] = Attempt{
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
			SessionID: e.SessionID,
			Skills:    e.Skills,
			Correct:   e.Correct,
			HelpLevel: e.HelpLevel,
			TimeMs:    e.TimeMs,
		}
	}
	return attempts, nil
}

func (r *eventRepo) RecentAccuracy(ctx context.Context, skillID string, lastN int) (float64, int, error) {
	// The skills column is a JSON array, so containment can't be pushed
	// into the query; scan newest-first and stop once lastN match. Fine
	// at single-learner event volumes.
	events, err := r.client.AttemptEvent.Query().
		Order(ent.Desc(attemptevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("query attempts: %w", err)
	}

	count := 0
	correct := 0
	for _, e := range events {
		if !containsSkill(e.Skills, skillID) {
			continue
		}
		count++
		if e.Correct {
			correct++
		}
		if count == lastN {
			break
		}
	}

	if count == 0 {
		return 0, 0, nil
	}
	return float64(correct) / float64(count), count, nil
}

func containsSkill(skills []string, skillID string) bool {
	for _, s := range skills {
		if s == skillID {
			return true
		}
	}
	return false
}
