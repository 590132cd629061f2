package bkt

import (
	"math"
	"testing"
)

const epsilon = 0.001

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

var testParams = Params{PInit: 0.1, PLearn: 0.1, PSlip: 0.2, PGuess: 0.1}

func TestUpdate_CorrectRaisesEstimate(t *testing.T) {
	// prior=0.1: 0.1*0.8 / (0.1*0.8 + 0.9*0.1) = 0.08/0.17
	got := Update(0.1, true, testParams)
	if !almostEqual(got, 0.08/0.17) {
		t.Errorf("Update = %f, want %f", got, 0.08/0.17)
	}
}

func TestUpdate_IncorrectLowersEstimate(t *testing.T) {
	// prior=0.5: 0.5*0.2 / (0.5*0.2 + 0.5*0.9) = 0.1/0.55
	got := Update(0.5, false, testParams)
	if !almostEqual(got, 0.1/0.55) {
		t.Errorf("Update = %f, want %f", got, 0.1/0.55)
	}
}

func TestUpdate_Bounded(t *testing.T) {
	priors := []float64{-0.5, 0, 0.001, 0.25, 0.5, 0.75, 0.999, 1, 1.5}
	for _, p := range priors {
		for _, correct := range []bool{true, false} {
			got := Update(p, correct, testParams)
			if got < 0 || got > 1 {
				t.Errorf("Update(%f, %v) = %f, want in [0,1]", p, correct, got)
			}
		}
	}
}

func TestUpdate_MonotonicInPrior(t *testing.T) {
	// Bayes' rule preserves ordering of priors for a fixed observation.
	for _, correct := range []bool{true, false} {
		prev := math.Inf(-1)
		for p := 0.05; p <= 0.95; p += 0.05 {
			got := Update(p, correct, testParams)
			if got < prev {
				t.Errorf("Update(%f, %v) = %f, decreased from %f", p, correct, got, prev)
			}
			prev = got
		}
	}
}

func TestUpdate_ClampsDegenerateParams(t *testing.T) {
	// pSlip=0 and pGuess=1 would produce 0/0 without clamping.
	degenerate := Params{PInit: 0.5, PLearn: 0.1, PSlip: 0, PGuess: 1}
	got := Update(0, false, degenerate)
	if math.IsNaN(got) || got < 0 || got > 1 {
		t.Errorf("Update with degenerate params = %f, want finite in [0,1]", got)
	}
}

func TestUpdate_NaNPriorPropagates(t *testing.T) {
	got := Update(math.NaN(), true, testParams)
	if !math.IsNaN(got) {
		t.Errorf("Update(NaN) = %f, want NaN", got)
	}
}

func TestApplyLearning(t *testing.T) {
	tests := []struct {
		pKnown, pLearn, want float64
	}{
		{0.0, 0.1, 0.1},
		{0.5, 0.1, 0.55},
		{1.0, 0.1, 1.0},
		{0.5, 0.0, 0.5},
	}
	for _, tt := range tests {
		got := ApplyLearning(tt.pKnown, tt.pLearn)
		if !almostEqual(got, tt.want) {
			t.Errorf("ApplyLearning(%f, %f) = %f, want %f", tt.pKnown, tt.pLearn, got, tt.want)
		}
	}
}

func TestApplyLearning_NeverDecreases(t *testing.T) {
	for p := 0.0; p <= 1.0; p += 0.1 {
		got := ApplyLearning(p, 0.2)
		if got < p {
			t.Errorf("ApplyLearning(%f, 0.2) = %f, decreased", p, got)
		}
		if got > 1 {
			t.Errorf("ApplyLearning(%f, 0.2) = %f, exceeds 1", p, got)
		}
	}
}
