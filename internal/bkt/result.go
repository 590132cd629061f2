package bkt

import "time"

// Classification is the discrete mastery label for one skill.
type Classification string

const (
	ClassStrong     Classification = "strong"
	ClassDeveloping Classification = "developing"
	ClassWeak       Classification = "weak"
)

// Classification thresholds. Below the confidence threshold the engine will
// not commit to strong or weak regardless of the point estimate.
const (
	StrongThreshold            = 0.8
	WeakThreshold              = 0.5
	DefaultConfidenceThreshold = 0.5
)

// SkillResult is the final estimate for one observed skill.
type SkillResult struct {
	SkillID         string
	PKnown          float64
	Confidence      float64
	Uncertainty     Range
	Opportunities   int
	SuccessCount    int
	LastPracticedAt time.Time
	Classification  Classification
	// Corrupt marks estimates poisoned by non-finite inputs. The NaN is
	// preserved in PKnown rather than replaced with a plausible number;
	// this flag gives callers an enumerable case to handle instead of
	// scanning floats. A corrupt skill needs investigation, not practice.
	Corrupt bool
}

// Result is the output of one history computation. Skills are ordered
// ascending by PKnown (weakest first); NaN estimates sort last so corrupt
// inputs are visible but never crowd out the genuinely weak.
type Result struct {
	Skills             []SkillResult
	InterventionNeeded []string // skill IDs classified weak
	Strengths          []string // skill IDs classified strong
}

// classify maps a point estimate and its confidence to a label. With
// insufficient confidence the engine stays at developing; a NaN estimate
// also stays at developing, since weak would misread corrupt data as a
// knowledge gap.
func classify(pKnown, confidence, confidenceThreshold float64) Classification {
	if confidence < confidenceThreshold {
		return ClassDeveloping
	}
	switch {
	case pKnown >= StrongThreshold:
		return ClassStrong
	case pKnown < WeakThreshold:
		return ClassWeak
	default:
		return ClassDeveloping
	}
}

// Reclassify re-derives every classification and the intervention/strength
// lists under a new confidence threshold, without replaying history. It is
// a pure function of the existing result and idempotent for a fixed
// threshold.
func Reclassify(r Result, confidenceThreshold float64) Result {
	out := Result{Skills: make([]SkillResult, len(r.Skills))}
	copy(out.Skills, r.Skills)
	for i := range out.Skills {
		s := &out.Skills[i]
		s.Classification = classify(s.PKnown, s.Confidence, confidenceThreshold)
		switch s.Classification {
		case ClassWeak:
			out.InterventionNeeded = append(out.InterventionNeeded, s.SkillID)
		case ClassStrong:
			out.Strengths = append(out.Strengths, s.SkillID)
		}
	}
	return out
}
