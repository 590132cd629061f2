package bkt

import (
	"math"
	"testing"
)

func belief(id string, pKnown float64) SkillBelief {
	return SkillBelief{SkillID: id, PKnown: pKnown, Params: testParams}
}

func TestUpdateOnCorrect_CreditsEverySkill(t *testing.T) {
	updates := UpdateOnCorrect([]SkillBelief{belief("a", 0.3), belief("b", 0.7)})
	if len(updates) != 2 {
		t.Fatalf("got %d updates, want 2", len(updates))
	}
	for i, prior := range []float64{0.3, 0.7} {
		want := ApplyLearning(Update(prior, true, testParams), testParams.PLearn)
		if !almostEqual(updates[i].PKnown, want) {
			t.Errorf("skill %d: PKnown = %f, want %f", i, updates[i].PKnown, want)
		}
		if updates[i].PKnown <= prior {
			t.Errorf("skill %d: correct answer did not raise estimate", i)
		}
	}
}

func TestUpdateOnIncorrect_Empty(t *testing.T) {
	if got := UpdateOnIncorrect(nil); got != nil {
		t.Errorf("UpdateOnIncorrect(nil) = %v, want nil", got)
	}
	if got := BayesianUpdateOnIncorrect(nil); got != nil {
		t.Errorf("BayesianUpdateOnIncorrect(nil) = %v, want nil", got)
	}
}

func TestUpdateOnIncorrect_BlameSumsToOne(t *testing.T) {
	updates := UpdateOnIncorrect([]SkillBelief{belief("a", 0.9), belief("b", 0.4), belief("c", 0.1)})
	sum := 0.0
	for _, u := range updates {
		sum += u.Blame
	}
	if !almostEqual(sum, 1.0) {
		t.Errorf("blame sum = %f, want 1.0", sum)
	}
}

func TestUpdateOnIncorrect_WeakerSkillAbsorbsBlame(t *testing.T) {
	// Skill a looks mastered, skill b does not: the miss is almost
	// certainly b's fault, and a should barely move.
	updates := UpdateOnIncorrect([]SkillBelief{belief("a", 0.9), belief("b", 0.1)})

	a, b := updates[0], updates[1]
	if b.Blame <= a.Blame {
		t.Errorf("blame(b) = %f, want > blame(a) = %f", b.Blame, a.Blame)
	}
	if a.PKnown >= 0.9 {
		t.Errorf("a.PKnown = %f, want a slight decrease from 0.9", a.PKnown)
	}
	if 0.9-a.PKnown > 0.1 {
		t.Errorf("a.PKnown dropped to %f, want only a slight decrease", a.PKnown)
	}
	// b absorbs nearly all the blame, so it lands close to its full
	// negative update rather than staying near its prior.
	wantB := ApplyLearning(Update(0.1, false, testParams), testParams.PLearn)
	if math.Abs(b.PKnown-wantB) > 0.02 {
		t.Errorf("b.PKnown = %f, want near full negative update %f", b.PKnown, wantB)
	}
}

func TestUpdateOnIncorrect_AllMasteredFallback(t *testing.T) {
	// Every skill near-certain: the miss reads as a slip, blame splits
	// exactly 1/n and each skill takes the full negative update.
	updates := UpdateOnIncorrect([]SkillBelief{belief("a", 0.9999), belief("b", 0.9999)})
	for _, u := range updates {
		if u.Blame != 0.5 {
			t.Errorf("%s: blame = %f, want exactly 0.5", u.SkillID, u.Blame)
		}
		want := ApplyLearning(Update(0.9999, false, testParams), testParams.PLearn)
		if !almostEqual(u.PKnown, want) {
			t.Errorf("%s: PKnown = %f, want full negative update %f", u.SkillID, u.PKnown, want)
		}
	}
}

func TestIncorrect_SingleSkillAgreement(t *testing.T) {
	// At n=1 both methods must reduce to the plain single-skill update
	// followed by the learning step, with blame 1.0.
	const prior = 0.6
	want := ApplyLearning(Update(prior, false, testParams), testParams.PLearn)

	for name, fn := range map[string]func([]SkillBelief) []BlameUpdate{
		"heuristic": UpdateOnIncorrect,
		"bayesian":  BayesianUpdateOnIncorrect,
	} {
		updates := fn([]SkillBelief{belief("a", prior)})
		if len(updates) != 1 {
			t.Fatalf("%s: got %d updates, want 1", name, len(updates))
		}
		if !almostEqual(updates[0].Blame, 1.0) {
			t.Errorf("%s: blame = %f, want 1.0", name, updates[0].Blame)
		}
		if !almostEqual(updates[0].PKnown, want) {
			t.Errorf("%s: PKnown = %f, want %f", name, updates[0].PKnown, want)
		}
	}
}

func TestBayesianUpdateOnIncorrect_ExactTwoSkillMarginals(t *testing.T) {
	// Hand-computed enumeration for two symmetric skills at pKnown=0.5
	// with pSlip=0.1, pGuess=0.2:
	//   P(fail) = 0.6975, P(fail & unknown_i) = 0.445
	//   P(unknown_i | fail) = 0.445/0.6975
	p := Params{PInit: 0.5, PLearn: 0.0, PSlip: 0.1, PGuess: 0.2}
	skills := []SkillBelief{
		{SkillID: "a", PKnown: 0.5, Params: p},
		{SkillID: "b", PKnown: 0.5, Params: p},
	}
	updates := BayesianUpdateOnIncorrect(skills)

	wantBlame := 0.445 / 0.6975
	for _, u := range updates {
		if !almostEqual(u.Blame, wantBlame) {
			t.Errorf("%s: blame = %f, want %f", u.SkillID, u.Blame, wantBlame)
		}
		if !almostEqual(u.PKnown, 1-wantBlame) {
			t.Errorf("%s: PKnown = %f, want %f", u.SkillID, u.PKnown, 1-wantBlame)
		}
	}
}

func TestBayesianUpdateOnIncorrect_MarginalsNeedNotSumToOne(t *testing.T) {
	// The Bayesian blames are independent marginals, not a partition of
	// the failure. Unlike the heuristic, their sum routinely exceeds 1
	// (both skills can be unknown at once).
	p := Params{PInit: 0.5, PLearn: 0.0, PSlip: 0.1, PGuess: 0.2}
	updates := BayesianUpdateOnIncorrect([]SkillBelief{
		{SkillID: "a", PKnown: 0.5, Params: p},
		{SkillID: "b", PKnown: 0.5, Params: p},
	})
	sum := 0.0
	for _, u := range updates {
		sum += u.Blame
	}
	if math.Abs(sum-1.0) < 0.05 {
		t.Errorf("marginal sum = %f; expected it to differ clearly from 1.0", sum)
	}
}

func TestBayesianUpdateOnIncorrect_WeakerSkillBlamedMore(t *testing.T) {
	updates := BayesianUpdateOnIncorrect([]SkillBelief{belief("a", 0.9), belief("b", 0.1)})
	if updates[1].Blame <= updates[0].Blame {
		t.Errorf("blame(b) = %f, want > blame(a) = %f", updates[1].Blame, updates[0].Blame)
	}
}

func TestIncorrect_NaNPropagates(t *testing.T) {
	// A corrupt estimate must surface as NaN on every skill in the
	// observation, never be silently replaced by a default.
	skills := []SkillBelief{belief("a", math.NaN()), belief("b", 0.5)}

	for name, fn := range map[string]func([]SkillBelief) []BlameUpdate{
		"heuristic": UpdateOnIncorrect,
		"bayesian":  BayesianUpdateOnIncorrect,
	} {
		for _, u := range fn(skills) {
			if !math.IsNaN(u.PKnown) {
				t.Errorf("%s: %s PKnown = %f, want NaN", name, u.SkillID, u.PKnown)
			}
		}
	}
}
