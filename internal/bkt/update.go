package bkt

// Update applies Bayes' rule to a prior mastery estimate given one binary
// observation, returning the posterior P(known).
//
// Inputs are clamped into [0.001, 0.999] before use, which bounds the
// evidence term away from zero. A NaN prior propagates to a NaN posterior.
func Update(prior float64, correct bool, p Params) float64 {
	prior = clampProb(prior)
	pSlip := clampProb(p.PSlip)
	pGuess := clampProb(p.PGuess)

	var pObsGivenKnown, pObsGivenUnknown float64
	if correct {
		pObsGivenKnown = 1 - pSlip
		pObsGivenUnknown = pGuess
	} else {
		pObsGivenKnown = pSlip
		pObsGivenUnknown = 1 - pGuess
	}

	pObs := prior*pObsGivenKnown + (1-prior)*pObsGivenUnknown
	return prior * pObsGivenKnown / pObs
}

// ApplyLearning applies the learning-transition step: even when an attempt
// showed "unknown", the act of practicing carries some chance of learning.
// The result is monotonically non-decreasing in both arguments.
func ApplyLearning(pKnown, pLearn float64) float64 {
	return pKnown + (1-pKnown)*pLearn
}
