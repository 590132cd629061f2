package bkt

import (
	"math"
	"testing"
)

func TestConfidence_ZeroOpportunities(t *testing.T) {
	for _, rate := range []float64{0, 0.5, 1} {
		if got := Confidence(0, rate); got != 0 {
			t.Errorf("Confidence(0, %f) = %f, want 0", rate, got)
		}
	}
}

func TestConfidence_AsymptoticAtTwenty(t *testing.T) {
	// 1 - e^-1, no consistency bonus at a 50% success rate.
	got := Confidence(20, 0.5)
	if !almostEqual(got, 1-math.Exp(-1)) {
		t.Errorf("Confidence(20, 0.5) = %f, want %f", got, 1-math.Exp(-1))
	}
}

func TestConfidence_ConsistencyBonus(t *testing.T) {
	// A perfect success rate is more informative than a coin flip.
	neutral := Confidence(10, 0.5)
	consistent := Confidence(10, 1.0)
	if consistent <= neutral {
		t.Errorf("Confidence(10, 1.0) = %f, want > Confidence(10, 0.5) = %f", consistent, neutral)
	}
	if !almostEqual(consistent-neutral, 0.2) {
		t.Errorf("consistency bonus = %f, want 0.2", consistent-neutral)
	}
}

func TestConfidence_CappedAtOne(t *testing.T) {
	if got := Confidence(500, 1.0); got > 1 {
		t.Errorf("Confidence(500, 1.0) = %f, want <= 1", got)
	}
}

func TestUncertaintyRange_ZeroConfidence(t *testing.T) {
	r := UncertaintyRange(0.5, 0)
	if !almostEqual(r.Low, 0.2) || !almostEqual(r.High, 0.8) {
		t.Errorf("UncertaintyRange(0.5, 0) = [%f, %f], want [0.2, 0.8]", r.Low, r.High)
	}
}

func TestUncertaintyRange_FullConfidence(t *testing.T) {
	r := UncertaintyRange(0.7, 1)
	if !almostEqual(r.Low, 0.7) || !almostEqual(r.High, 0.7) {
		t.Errorf("UncertaintyRange(0.7, 1) = [%f, %f], want collapsed to 0.7", r.Low, r.High)
	}
}

func TestUncertaintyRange_ClampedToUnitInterval(t *testing.T) {
	r := UncertaintyRange(0.95, 0)
	if r.High > 1 {
		t.Errorf("High = %f, want <= 1", r.High)
	}
	r = UncertaintyRange(0.05, 0)
	if r.Low < 0 {
		t.Errorf("Low = %f, want >= 0", r.Low)
	}
}

func TestStalenessWarning(t *testing.T) {
	tests := []struct {
		days float64
		want Staleness
	}{
		{0, StalenessNone},
		{6.9, StalenessNone},
		{7, StalenessRecent},
		{14, StalenessRusty},
		{30, StalenessVeryOld},
		{365, StalenessVeryOld},
	}
	for _, tt := range tests {
		if got := StalenessWarning(tt.days); got != tt.want {
			t.Errorf("StalenessWarning(%f) = %q, want %q", tt.days, got, tt.want)
		}
	}
}
