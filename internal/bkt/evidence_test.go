package bkt

import "testing"

func TestHelpLevelWeight(t *testing.T) {
	tests := []struct {
		level HelpLevel
		want  float64
	}{
		{HelpNone, 1.0},
		{HelpHint, 1.0},
		{HelpDecomposition, 0.5},
		{HelpFullSolution, 0.5},
	}
	for _, tt := range tests {
		if got := HelpLevelWeight(tt.level); !almostEqual(got, tt.want) {
			t.Errorf("HelpLevelWeight(%d) = %f, want %f", tt.level, got, tt.want)
		}
	}
}

func TestResponseTimeWeight_Correct(t *testing.T) {
	tests := []struct {
		name   string
		timeMs int
		want   float64
	}{
		{"very fast is strong evidence", 2000, 1.2},
		{"on time is neutral", 5000, 1.0},
		{"at the fast boundary", 2500, 1.0},
		{"slow is weaker evidence", 11000, 0.8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResponseTimeWeight(tt.timeMs, true, DefaultExpectedTimeMs)
			if !almostEqual(got, tt.want) {
				t.Errorf("ResponseTimeWeight(%d, correct) = %f, want %f", tt.timeMs, got, tt.want)
			}
		})
	}
}

func TestResponseTimeWeight_Incorrect(t *testing.T) {
	tests := []struct {
		name   string
		timeMs int
		want   float64
	}{
		{"very fast miss reads as careless slip", 1000, 0.5},
		{"on-time miss is neutral", 5000, 1.0},
		{"slow miss reads as genuine confusion", 11000, 1.2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResponseTimeWeight(tt.timeMs, false, DefaultExpectedTimeMs)
			if !almostEqual(got, tt.want) {
				t.Errorf("ResponseTimeWeight(%d, incorrect) = %f, want %f", tt.timeMs, got, tt.want)
			}
		})
	}
}

func TestResponseTimeWeight_ZeroExpectedFallsBackToDefault(t *testing.T) {
	got := ResponseTimeWeight(5000, true, 0)
	if !almostEqual(got, 1.0) {
		t.Errorf("ResponseTimeWeight with zero expected = %f, want 1.0", got)
	}
}

func TestEvidenceWeight_Combined(t *testing.T) {
	// Heavy help and slow response: 0.5 * 0.8.
	obs := Observation{Correct: true, HelpLevel: HelpFullSolution, TimeMs: 11000}
	if got := obs.EvidenceWeight(); !almostEqual(got, 0.4) {
		t.Errorf("EvidenceWeight = %f, want 0.4", got)
	}
}
