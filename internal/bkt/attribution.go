package bkt

import "math"

// Method selects the blame-attribution algorithm for incorrect multi-skill
// observations. The two methods produce materially different classifications
// and both are exercised by callers; the choice is a per-computation policy,
// not a fallback.
type Method string

const (
	// MethodHeuristic distributes blame proportionally to each skill's
	// current probability of being unknown. O(n) per observation.
	MethodHeuristic Method = "heuristic"
	// MethodBayesian performs exact marginal inference by enumerating all
	// 2^n known/unknown states. O(n*2^n); intended for n <= 6 skills.
	MethodBayesian Method = "bayesian"
)

// SkillBelief is one skill's current estimate entering a joint update.
type SkillBelief struct {
	SkillID string
	PKnown  float64
	Params  Params
}

// BlameUpdate is the outcome of a joint incorrect-answer update for one
// skill: how much of the failure it absorbed and its new estimate.
type BlameUpdate struct {
	SkillID string
	Blame   float64
	PKnown  float64
}

// UpdateOnCorrect applies the correct-answer path. A correct conjunctive
// answer is unambiguous positive evidence for every exercised skill, so each
// gets an independent Bayesian update followed by the learning step.
func UpdateOnCorrect(skills []SkillBelief) []BlameUpdate {
	updates := make([]BlameUpdate, len(skills))
	for i, s := range skills {
		posterior := Update(s.PKnown, true, s.Params)
		updates[i] = BlameUpdate{
			SkillID: s.SkillID,
			Blame:   0,
			PKnown:  ApplyLearning(posterior, s.Params.PLearn),
		}
	}
	return updates
}

// UpdateOnIncorrect applies the heuristic blame distribution. Skills more
// likely to be unknown absorb more of the negative evidence; skills that
// look mastered are barely moved.
//
// When every skill is near-certain the failure reads as a slip, not a
// knowledge gap: blame is split equally and each skill takes the full
// negative update.
//
// A NaN estimate on any skill poisons the shared blame denominator, so NaN
// propagates to every skill in the observation by construction.
func UpdateOnIncorrect(skills []SkillBelief) []BlameUpdate {
	n := len(skills)
	if n == 0 {
		return nil
	}

	totalUnknown := 0.0
	for _, s := range skills {
		totalUnknown += 1 - s.PKnown
	}

	updates := make([]BlameUpdate, n)
	allMastered := totalUnknown < 0.001 // false for NaN: falls through to the blending path
	for i, s := range skills {
		full := ApplyLearning(Update(s.PKnown, false, s.Params), s.Params.PLearn)
		if allMastered {
			updates[i] = BlameUpdate{SkillID: s.SkillID, Blame: 1 / float64(n), PKnown: full}
			continue
		}
		blame := (1 - s.PKnown) / totalUnknown
		updates[i] = BlameUpdate{
			SkillID: s.SkillID,
			Blame:   blame,
			PKnown:  s.PKnown*(1-blame) + full*blame,
		}
	}
	return updates
}

// BayesianUpdateOnIncorrect performs exact conjunctive blame attribution by
// marginalizing over all 2^n joint known/unknown states.
//
// For each state it computes the joint prior P(state) and the conjunctive
// failure likelihood P(fail|state) = 1 - prod P(correct_j|state_j), where
// P(correct|known) = 1-pSlip and P(correct|unknown) = pGuess. The posterior
// P(unknown_i|fail) is then the exact marginal, and the returned blame. The
// marginals are independent per skill, not a partition of the failure, so
// they need not sum to 1.
func BayesianUpdateOnIncorrect(skills []SkillBelief) []BlameUpdate {
	n := len(skills)
	if n == 0 {
		return nil
	}
	if n == 1 {
		s := skills[0]
		posterior := Update(s.PKnown, false, s.Params)
		return []BlameUpdate{{
			SkillID: s.SkillID,
			Blame:   1.0,
			PKnown:  ApplyLearning(posterior, s.Params.PLearn),
		}}
	}

	pKnown := make([]float64, n)
	pCorrectKnown := make([]float64, n)
	pCorrectUnknown := make([]float64, n)
	for i, s := range skills {
		pKnown[i] = clampProb(s.PKnown)
		pCorrectKnown[i] = 1 - clampProb(s.Params.PSlip)
		pCorrectUnknown[i] = clampProb(s.Params.PGuess)
	}

	pFail := 0.0
	failAndUnknown := make([]float64, n)

	// Bit i of the state mask set means skill i is known.
	for state := 0; state < 1<<n; state++ {
		pState := 1.0
		pAllCorrect := 1.0
		for i := 0; i < n; i++ {
			if state&(1<<i) != 0 {
				pState *= pKnown[i]
				pAllCorrect *= pCorrectKnown[i]
			} else {
				pState *= 1 - pKnown[i]
				pAllCorrect *= pCorrectUnknown[i]
			}
		}
		pFailGivenState := (1 - pAllCorrect) * pState
		pFail += pFailGivenState
		for i := 0; i < n; i++ {
			if state&(1<<i) == 0 {
				failAndUnknown[i] += pFailGivenState
			}
		}
	}

	updates := make([]BlameUpdate, n)
	for i, s := range skills {
		var pUnknownGivenFail float64
		if math.Abs(pFail) < 1e-9 {
			pUnknownGivenFail = 1 / float64(n)
		} else {
			pUnknownGivenFail = failAndUnknown[i] / pFail
		}
		updates[i] = BlameUpdate{
			SkillID: s.SkillID,
			Blame:   pUnknownGivenFail,
			PKnown:  ApplyLearning(1-pUnknownGivenFail, s.Params.PLearn),
		}
	}
	return updates
}

// updateIncorrect dispatches to the attribution method selected in options.
func updateIncorrect(method Method, skills []SkillBelief) []BlameUpdate {
	if method == MethodBayesian {
		return BayesianUpdateOnIncorrect(skills)
	}
	return UpdateOnIncorrect(skills)
}
