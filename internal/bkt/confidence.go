package bkt

import "math"

// Range is an uncertainty interval around a point estimate.
type Range struct {
	Low  float64
	High float64
}

// Confidence estimates how much to trust a skill's point estimate, from the
// amount of evidence and its consistency.
//
// The data component saturates asymptotically (~63% at 20 opportunities,
// ~92% at 50). Success rates near 0% or 100% are more informative than rates
// near 50%, so they earn a small consistency bonus.
func Confidence(opportunities int, successRate float64) float64 {
	if opportunities <= 0 {
		return 0
	}
	dataConfidence := 1 - math.Exp(-float64(opportunities)/20)
	consistencyBonus := math.Abs(successRate-0.5) * 2 * 0.2
	return math.Min(1, dataConfidence+consistencyBonus)
}

// UncertaintyRange derives the interval around pKnown implied by the given
// confidence: up to +-30% wide at zero confidence, collapsing to the point
// estimate at full confidence. Bounds are clamped into [0, 1].
func UncertaintyRange(pKnown, confidence float64) Range {
	uncertainty := (1 - confidence) * 0.3
	return Range{
		Low:  math.Max(0, pKnown-uncertainty),
		High: math.Min(1, pKnown+uncertainty),
	}
}

// Staleness is an advisory warning about how long a skill has gone
// unpracticed. It never affects the mastery estimate itself.
type Staleness string

const (
	StalenessNone    Staleness = ""
	StalenessRecent  Staleness = "not practiced recently"
	StalenessRusty   Staleness = "getting rusty"
	StalenessVeryOld Staleness = "very stale"
)

// StalenessWarning classifies days since last practice into advisory bands.
func StalenessWarning(daysSinceLastPractice float64) Staleness {
	switch {
	case daysSinceLastPractice >= 30:
		return StalenessVeryOld
	case daysSinceLastPractice >= 14:
		return StalenessRusty
	case daysSinceLastPractice >= 7:
		return StalenessRecent
	default:
		return StalenessNone
	}
}
