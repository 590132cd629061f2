// Package bkt implements Bayesian Knowledge Tracing for arithmetic skills.
//
// Given a learner's chronological practice history, the engine estimates the
// hidden probability that each skill has been mastered, attributes blame for
// incorrect multi-skill problems across the skills involved, and classifies
// every observed skill as strong, developing, or weak.
//
// The engine is a pure computation: no I/O, no shared state. Callers load
// history from the event store and pass it to ComputeFromHistory.
package bkt

import "time"

// Params holds the four BKT parameters for a single skill. Immutable once
// assigned for a computation run.
type Params struct {
	// PInit is the prior probability the learner already knows the skill.
	PInit float64
	// PLearn is the probability of transitioning unknown -> known after
	// one practice opportunity.
	PLearn float64
	// PSlip is the probability of answering incorrectly despite knowing.
	PSlip float64
	// PGuess is the probability of answering correctly despite not knowing.
	PGuess float64
}

// probFloor and probCeil bound every probability before it participates in
// a division. Clamping keeps posteriors away from degenerate 0/0 forms, so
// no later divide-by-zero guard is needed.
const (
	probFloor = 0.001
	probCeil  = 0.999
)

// clampProb clamps p into [0.001, 0.999]. NaN passes through unchanged:
// corrupt inputs must stay visible in the output rather than being replaced
// by a plausible-looking number.
func clampProb(p float64) float64 {
	if p < probFloor {
		return probFloor
	}
	if p > probCeil {
		return probCeil
	}
	return p
}

// HelpLevel is the amount of assistance given on an attempt.
type HelpLevel int

const (
	HelpNone          HelpLevel = iota // solved unaided
	HelpHint                           // a nudge in the right direction
	HelpDecomposition                  // problem broken into steps
	HelpFullSolution                   // worked solution shown
)

// Observation is one practice attempt. Read-only input to the engine.
type Observation struct {
	Timestamp time.Time
	Correct   bool
	// SkillIDs lists the skills the problem exercised. Single-skill
	// problems carry one entry; conjunctive problems carry several.
	SkillIDs  []string
	HelpLevel HelpLevel
	// TimeMs is the response latency in milliseconds.
	TimeMs int
}

// SkillState is the per-skill working state during one replay. It is owned
// exclusively by the orchestrator and discarded once results are derived.
type SkillState struct {
	PKnown          float64
	Opportunities   int
	SuccessCount    int
	LastPracticedAt time.Time // zero if never practiced
	Params          Params
}

func newSkillState(p Params) *SkillState {
	return &SkillState{PKnown: p.PInit, Params: p}
}
