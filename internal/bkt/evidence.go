package bkt

// DefaultExpectedTimeMs is the reference response time against which latency
// evidence is judged.
const DefaultExpectedTimeMs = 5000

// HelpLevelWeight returns the evidence multiplier for an assistance level.
// A correct answer obtained with heavy help should move the estimate less
// than an unaided one: full credit at none/hint, half credit beyond.
func HelpLevelWeight(level HelpLevel) float64 {
	switch level {
	case HelpNone, HelpHint:
		return 1.0
	case HelpDecomposition, HelpFullSolution:
		return 0.5
	default:
		return 1.0
	}
}

// ResponseTimeWeight returns the evidence multiplier derived from response
// latency relative to expectedMs.
//
// Correct answers: very fast is strong evidence (1.2), slow is weaker (0.8).
// Incorrect answers: very fast suggests a careless slip, so the penalty is
// softened (0.5); very slow suggests genuine confusion, so the negative
// evidence is strengthened (1.2).
func ResponseTimeWeight(timeMs int, correct bool, expectedMs int) float64 {
	if expectedMs <= 0 {
		expectedMs = DefaultExpectedTimeMs
	}
	ratio := float64(timeMs) / float64(expectedMs)

	if correct {
		switch {
		case ratio < 0.5:
			return 1.2
		case ratio > 2.0:
			return 0.8
		default:
			return 1.0
		}
	}
	switch {
	case ratio < 0.3:
		return 0.5
	case ratio > 2.0:
		return 1.2
	default:
		return 1.0
	}
}

// EvidenceWeight combines the help-level and response-time multipliers for
// one observation. The orchestrator blends each Bayesian update toward the
// prior estimate by this weight: weight 1 applies the full step, weight < 1
// damps it.
func (o Observation) EvidenceWeight() float64 {
	return HelpLevelWeight(o.HelpLevel) * ResponseTimeWeight(o.TimeMs, o.Correct, DefaultExpectedTimeMs)
}
