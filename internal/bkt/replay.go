package bkt

import (
	"math"
	"sort"
	"time"
)

// DefaultDecayHalfLifeDays is the default half-life for time decay.
const DefaultDecayHalfLifeDays = 30

// ComputeOptions configures one history computation.
type ComputeOptions struct {
	// ConfidenceThreshold below which a skill stays "developing".
	// Zero means DefaultConfidenceThreshold.
	ConfidenceThreshold float64
	// ApplyDecay enables exponential decay of unpracticed estimates
	// toward their prior.
	ApplyDecay bool
	// DecayHalfLifeDays is the decay half-life. Zero means
	// DefaultDecayHalfLifeDays.
	DecayHalfLifeDays float64
	// Method selects the blame-attribution algorithm for incorrect
	// multi-skill observations. Empty means MethodHeuristic.
	Method Method
	// Priors supplies initial parameters per skill. Nil means
	// DefaultPriors().
	Priors *PriorTable
	// Now anchors decay and staleness. Zero means time.Now(). Injected
	// so computations are reproducible in tests.
	Now time.Time
}

func (o ComputeOptions) withDefaults() ComputeOptions {
	if o.ConfidenceThreshold == 0 {
		o.ConfidenceThreshold = DefaultConfidenceThreshold
	}
	if o.DecayHalfLifeDays == 0 {
		o.DecayHalfLifeDays = DefaultDecayHalfLifeDays
	}
	if o.Method == "" {
		o.Method = MethodHeuristic
	}
	if o.Priors == nil {
		o.Priors = DefaultPriors()
	}
	if o.Now.IsZero() {
		o.Now = time.Now()
	}
	return o
}

// ComputeFromHistory replays a learner's practice history in chronological
// order and estimates mastery for every skill observed at least once.
//
// Observations may arrive in any order; they are stable-sorted by timestamp
// so equal timestamps keep their input order and the computation stays
// deterministic. Skill state is created lazily from the prior table the
// first time a skill is seen and discarded when the call returns. Skills
// never observed produce no result.
func ComputeFromHistory(observations []Observation, opts ComputeOptions) Result {
	opts = opts.withDefaults()

	sorted := make([]Observation, len(observations))
	copy(sorted, observations)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.Before(sorted[j].Timestamp)
	})

	states := make(map[string]*SkillState)
	for _, obs := range sorted {
		if len(obs.SkillIDs) == 0 {
			continue
		}

		beliefs := make([]SkillBelief, 0, len(obs.SkillIDs))
		for _, id := range obs.SkillIDs {
			st, ok := states[id]
			if !ok {
				st = newSkillState(opts.Priors.Resolve(id))
				states[id] = st
			}
			beliefs = append(beliefs, SkillBelief{SkillID: id, PKnown: st.PKnown, Params: st.Params})
		}

		weight := obs.EvidenceWeight()

		var updates []BlameUpdate
		if obs.Correct {
			updates = UpdateOnCorrect(beliefs)
		} else {
			updates = updateIncorrect(opts.Method, beliefs)
		}

		for _, u := range updates {
			st := states[u.SkillID]
			st.PKnown = clamp01(st.PKnown*(1-weight) + u.PKnown*weight)
			st.Opportunities++
			if obs.Correct {
				st.SuccessCount++
			}
			st.LastPracticedAt = obs.Timestamp
		}
	}

	result := Result{Skills: make([]SkillResult, 0, len(states))}
	for id, st := range states {
		if st.Opportunities == 0 {
			continue
		}

		pKnown := st.PKnown
		if opts.ApplyDecay && !st.LastPracticedAt.IsZero() {
			days := opts.Now.Sub(st.LastPracticedAt).Hours() / 24
			pKnown = DecayTowardPrior(pKnown, st.Params.PInit, days, opts.DecayHalfLifeDays)
		}

		successRate := float64(st.SuccessCount) / float64(st.Opportunities)
		confidence := Confidence(st.Opportunities, successRate)

		result.Skills = append(result.Skills, SkillResult{
			SkillID:         id,
			PKnown:          pKnown,
			Confidence:      confidence,
			Uncertainty:     UncertaintyRange(pKnown, confidence),
			Opportunities:   st.Opportunities,
			SuccessCount:    st.SuccessCount,
			LastPracticedAt: st.LastPracticedAt,
			Classification:  classify(pKnown, confidence, opts.ConfidenceThreshold),
			Corrupt:         math.IsNaN(pKnown),
		})
	}

	// Weakest first. NaN sorts last; ties break on skill ID so map
	// iteration order never leaks into the output.
	sort.SliceStable(result.Skills, func(i, j int) bool {
		a, b := sortKey(result.Skills[i].PKnown), sortKey(result.Skills[j].PKnown)
		if a != b {
			return a < b
		}
		return result.Skills[i].SkillID < result.Skills[j].SkillID
	})

	for _, s := range result.Skills {
		switch s.Classification {
		case ClassWeak:
			result.InterventionNeeded = append(result.InterventionNeeded, s.SkillID)
		case ClassStrong:
			result.Strengths = append(result.Strengths, s.SkillID)
		}
	}
	return result
}

// DecayTowardPrior decays the portion of pKnown above the prior by
// 0.5^(days/halfLife). The estimate never decays below the prior, and
// nothing decays for non-positive elapsed time.
func DecayTowardPrior(pKnown, pInit, days, halfLifeDays float64) float64 {
	if days <= 0 || halfLifeDays <= 0 {
		return pKnown
	}
	factor := math.Pow(0.5, days/halfLifeDays)
	return pInit + (pKnown-pInit)*factor
}

// sortKey orders NaN estimates after every finite one.
func sortKey(v float64) float64 {
	if math.IsNaN(v) {
		return math.Inf(1)
	}
	return v
}

// clamp01 clamps into [0, 1], needed because evidence weights above 1 can
// push the blend slightly past the Bayesian target. NaN passes through.
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
