package bkt

import (
	"math"
	"testing"
	"time"
)

var t0 = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

// uniformPriors assigns testParams to every skill regardless of ID.
func uniformPriors() *PriorTable {
	return NewPriorTable(nil, testParams)
}

// obsAt builds a neutral-evidence observation: no help, on-time response.
func obsAt(ts time.Time, correct bool, skillIDs ...string) Observation {
	return Observation{
		Timestamp: ts,
		Correct:   correct,
		SkillIDs:  skillIDs,
		HelpLevel: HelpNone,
		TimeMs:    DefaultExpectedTimeMs,
	}
}

func TestComputeFromHistory_Empty(t *testing.T) {
	result := ComputeFromHistory(nil, ComputeOptions{})
	if len(result.Skills) != 0 {
		t.Errorf("got %d skills, want 0", len(result.Skills))
	}
	if len(result.InterventionNeeded) != 0 || len(result.Strengths) != 0 {
		t.Error("expected empty intervention and strength lists")
	}
}

func TestComputeFromHistory_SkipsZeroSkillObservations(t *testing.T) {
	observations := []Observation{obsAt(t0, true)}
	result := ComputeFromHistory(observations, ComputeOptions{Priors: uniformPriors()})
	if len(result.Skills) != 0 {
		t.Errorf("got %d skills, want 0", len(result.Skills))
	}
}

func TestComputeFromHistory_FiveConsecutiveCorrect(t *testing.T) {
	var observations []Observation
	for i := 0; i < 5; i++ {
		observations = append(observations, obsAt(t0.Add(time.Duration(i)*time.Minute), true, "basic.addition"))
	}

	result := ComputeFromHistory(observations, ComputeOptions{Priors: uniformPriors(), Now: t0})
	if len(result.Skills) != 1 {
		t.Fatalf("got %d skills, want 1", len(result.Skills))
	}

	s := result.Skills[0]
	if s.PKnown <= 0.5 {
		t.Errorf("PKnown = %f, want > 0.5 after five correct answers", s.PKnown)
	}
	if s.Confidence <= 0 {
		t.Errorf("Confidence = %f, want > 0", s.Confidence)
	}
	if s.Confidence >= DefaultConfidenceThreshold {
		t.Errorf("Confidence = %f, want below the default threshold with only 5 opportunities", s.Confidence)
	}
	// Too little evidence to commit, despite the high estimate.
	if s.Classification != ClassDeveloping {
		t.Errorf("Classification = %q, want developing", s.Classification)
	}
	if s.Opportunities != 5 || s.SuccessCount != 5 {
		t.Errorf("counters = %d/%d, want 5/5", s.SuccessCount, s.Opportunities)
	}
	if !s.LastPracticedAt.Equal(t0.Add(4 * time.Minute)) {
		t.Errorf("LastPracticedAt = %v, want timestamp of final observation", s.LastPracticedAt)
	}
}

func TestComputeFromHistory_MatchesManualChain(t *testing.T) {
	// Unsorted input, one pair sharing a timestamp. The replay must sort
	// by time with a stable tie-break on input order, so the expected
	// value is the hand-chained sequence: incorrect, then correct.
	observations := []Observation{
		obsAt(t0.Add(time.Hour), false, "basic.addition"),
		obsAt(t0.Add(time.Hour), true, "basic.addition"),
		obsAt(t0, true, "basic.addition"),
	}

	p := testParams.PInit
	for _, correct := range []bool{true, false, true} {
		p = ApplyLearning(Update(p, correct, testParams), testParams.PLearn)
	}

	result := ComputeFromHistory(observations, ComputeOptions{Priors: uniformPriors(), Now: t0})
	if !almostEqual(result.Skills[0].PKnown, p) {
		t.Errorf("PKnown = %f, want %f from chronological chain", result.Skills[0].PKnown, p)
	}
}

func TestComputeFromHistory_HelpDampensUpdate(t *testing.T) {
	unaided := ComputeFromHistory([]Observation{obsAt(t0, true, "s")},
		ComputeOptions{Priors: uniformPriors(), Now: t0})

	helped := ComputeFromHistory([]Observation{{
		Timestamp: t0, Correct: true, SkillIDs: []string{"s"},
		HelpLevel: HelpFullSolution, TimeMs: DefaultExpectedTimeMs,
	}}, ComputeOptions{Priors: uniformPriors(), Now: t0})

	if helped.Skills[0].PKnown >= unaided.Skills[0].PKnown {
		t.Errorf("helped PKnown = %f, want < unaided %f",
			helped.Skills[0].PKnown, unaided.Skills[0].PKnown)
	}
	if helped.Skills[0].PKnown <= testParams.PInit {
		t.Errorf("helped PKnown = %f, want still above the prior", helped.Skills[0].PKnown)
	}
}

func TestComputeFromHistory_WeakestFirstOrdering(t *testing.T) {
	var observations []Observation
	for i := 0; i < 4; i++ {
		ts := t0.Add(time.Duration(i) * time.Minute)
		observations = append(observations,
			obsAt(ts, true, "strong-skill"),
			obsAt(ts, false, "weak-skill"),
		)
	}

	opts := ComputeOptions{Priors: uniformPriors(), ConfidenceThreshold: 0.01, Now: t0}
	result := ComputeFromHistory(observations, opts)

	if result.Skills[0].SkillID != "weak-skill" {
		t.Errorf("first skill = %q, want the weakest", result.Skills[0].SkillID)
	}
	if result.Skills[1].SkillID != "strong-skill" {
		t.Errorf("second skill = %q, want the strongest", result.Skills[1].SkillID)
	}
	if len(result.InterventionNeeded) != 1 || result.InterventionNeeded[0] != "weak-skill" {
		t.Errorf("InterventionNeeded = %v, want [weak-skill]", result.InterventionNeeded)
	}
	if len(result.Strengths) != 1 || result.Strengths[0] != "strong-skill" {
		t.Errorf("Strengths = %v, want [strong-skill]", result.Strengths)
	}
}

func TestComputeFromHistory_MethodsDiverge(t *testing.T) {
	// The two attribution policies must be independently selectable and
	// produce different estimates on a genuine multi-skill failure.
	observations := []Observation{
		obsAt(t0, true, "a"),
		obsAt(t0.Add(time.Minute), false, "a", "b"),
	}

	heuristic := ComputeFromHistory(observations,
		ComputeOptions{Priors: uniformPriors(), Method: MethodHeuristic, Now: t0})
	bayesian := ComputeFromHistory(observations,
		ComputeOptions{Priors: uniformPriors(), Method: MethodBayesian, Now: t0})

	diverged := false
	for i := range heuristic.Skills {
		if !almostEqual(heuristic.Skills[i].PKnown, bayesian.Skills[i].PKnown) {
			diverged = true
		}
	}
	if !diverged {
		t.Error("heuristic and bayesian attribution produced identical estimates")
	}
}

func TestDecayTowardPrior(t *testing.T) {
	// One full half-life: the 0.8 above the prior halves to 0.4.
	got := DecayTowardPrior(0.9, 0.1, 30, 30)
	if !almostEqual(got, 0.5) {
		t.Errorf("DecayTowardPrior = %f, want 0.5", got)
	}

	if got := DecayTowardPrior(0.9, 0.1, 0, 30); !almostEqual(got, 0.9) {
		t.Errorf("no elapsed time: got %f, want 0.9 unchanged", got)
	}
	if got := DecayTowardPrior(0.9, 0.1, -5, 30); !almostEqual(got, 0.9) {
		t.Errorf("negative elapsed time: got %f, want 0.9 unchanged", got)
	}
	if got := DecayTowardPrior(0.9, 0.1, 3000, 30); got < 0.1-epsilon {
		t.Errorf("long decay: got %f, want never below the prior", got)
	}
}

func TestComputeFromHistory_DecayApplied(t *testing.T) {
	observations := []Observation{obsAt(t0, true, "s")}

	fresh := ComputeFromHistory(observations,
		ComputeOptions{Priors: uniformPriors(), Now: t0})
	decayed := ComputeFromHistory(observations, ComputeOptions{
		Priors:     uniformPriors(),
		ApplyDecay: true,
		Now:        t0.AddDate(0, 0, 30),
	})

	want := DecayTowardPrior(fresh.Skills[0].PKnown, testParams.PInit, 30, DefaultDecayHalfLifeDays)
	if !almostEqual(decayed.Skills[0].PKnown, want) {
		t.Errorf("decayed PKnown = %f, want %f", decayed.Skills[0].PKnown, want)
	}
	if decayed.Skills[0].PKnown >= fresh.Skills[0].PKnown {
		t.Error("decay did not lower the estimate")
	}
}

func TestComputeFromHistory_CorruptPriorSurfacesAsNaN(t *testing.T) {
	priors := NewPriorTable(map[string]Params{
		"corrupt.": {PInit: math.NaN(), PLearn: 0.1, PSlip: 0.2, PGuess: 0.1},
	}, testParams)

	observations := []Observation{
		obsAt(t0, true, "corrupt.skill"),
		obsAt(t0.Add(time.Minute), true, "basic.addition"),
	}
	result := ComputeFromHistory(observations, ComputeOptions{Priors: priors, Now: t0})

	if len(result.Skills) != 2 {
		t.Fatalf("got %d skills, want 2", len(result.Skills))
	}
	// NaN sorts last and is never classified weak: corrupt data needs
	// investigation, not remediation.
	last := result.Skills[1]
	if last.SkillID != "corrupt.skill" || !math.IsNaN(last.PKnown) {
		t.Errorf("last skill = %q (PKnown %f), want corrupt.skill with NaN", last.SkillID, last.PKnown)
	}
	if !last.Corrupt {
		t.Error("corrupt skill not flagged Corrupt")
	}
	if result.Skills[0].Corrupt {
		t.Error("healthy skill flagged Corrupt")
	}
	if last.Classification == ClassWeak {
		t.Error("corrupt skill classified weak; must stay developing")
	}
	for _, id := range result.InterventionNeeded {
		if id == "corrupt.skill" {
			t.Error("corrupt skill listed for intervention")
		}
	}
}

func TestReclassify(t *testing.T) {
	var observations []Observation
	for i := 0; i < 4; i++ {
		observations = append(observations, obsAt(t0.Add(time.Duration(i)*time.Minute), true, "s"))
	}
	result := ComputeFromHistory(observations,
		ComputeOptions{Priors: uniformPriors(), ConfidenceThreshold: 0.01, Now: t0})

	if result.Skills[0].Classification != ClassStrong {
		t.Fatalf("Classification = %q, want strong before reclassify", result.Skills[0].Classification)
	}

	// Raising the bar past the available confidence demotes to developing.
	strict := Reclassify(result, 0.99)
	if strict.Skills[0].Classification != ClassDeveloping {
		t.Errorf("Classification = %q, want developing under strict threshold", strict.Skills[0].Classification)
	}
	if len(strict.Strengths) != 0 {
		t.Errorf("Strengths = %v, want empty under strict threshold", strict.Strengths)
	}

	// Reclassify must not mutate its input.
	if result.Skills[0].Classification != ClassStrong {
		t.Error("Reclassify mutated the original result")
	}
}

func TestReclassify_Idempotent(t *testing.T) {
	result := ComputeFromHistory([]Observation{obsAt(t0, true, "s")},
		ComputeOptions{Priors: uniformPriors(), Now: t0})

	once := Reclassify(result, 0.3)
	twice := Reclassify(once, 0.3)

	if len(once.Skills) != len(twice.Skills) {
		t.Fatal("skill count changed on second reclassify")
	}
	for i := range once.Skills {
		if once.Skills[i].Classification != twice.Skills[i].Classification {
			t.Errorf("skill %d changed classification on second reclassify", i)
		}
	}
	if len(once.InterventionNeeded) != len(twice.InterventionNeeded) ||
		len(once.Strengths) != len(twice.Strengths) {
		t.Error("derived lists changed on second reclassify")
	}
}
