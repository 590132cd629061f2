package store

import (
	"context"
	"fmt"
	"math"

	"github.com/priyali/arithma/ent"
	"github.com/priyali/arithma/ent/insightevent"
)

// naNSentinel stands in for NaN estimates on disk: SQLite stores NaN as
// NULL, which the non-nillable float column rejects. Probabilities are
// never negative, so the sentinel round-trips unambiguously.
const naNSentinel = -1

func (r *eventRepo) AppendInsights(ctx context.Context, insights []Insight) error {
	for _, in := range insights {
		seqNum, err := r.seq.Next(ctx)
		if err != nil {
			return fmt.Errorf("next sequence: %w", err)
		}

		pKnown := in.PKnown
		if math.IsNaN(pKnown) {
			pKnown = naNSentinel
		}

		_, err = r.client.InsightEvent.Create().
			SetSequence(seqNum).
			SetRunID(in.RunID).
			SetSkillID(in.SkillID).
			SetPKnown(pKnown).
			SetConfidence(in.Confidence).
			SetClassification(in.Classification).
			SetOpportunities(in.Opportunities).
			SetSuccessCount(in.SuccessCount).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("save insight event: %w", err)
		}
	}
	return nil
}

func (r *eventRepo) ListInsights(ctx context.Context, limit int) ([]Insight, error) {
	q := r.client.InsightEvent.Query().
		Order(ent.Desc(insightevent.FieldSequence))
	if limit > 0 {
		q = q.Limit(limit)
	}
	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query insights: %w", err)
	}

	insights := make([]Insight, len(events))
	for i, e := range events {
		pKnown := e.PKnown
		if pKnown == naNSentinel {
			pKnown = math.NaN()
		}
		insights[i] = Insight{
			Sequence:       e.Sequence,
			Timestamp:      e.Timestamp,
			RunID:          e.RunID,
			SkillID:        e.SkillID,
			PKnown:         pKnown,
			Confidence:     e.Confidence,
			Classification: e.Classification,
			Opportunities:  e.Opportunities,
			SuccessCount:   e.SuccessCount,
		}
	}
	return insights, nil
}
