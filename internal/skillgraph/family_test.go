package skillgraph

import "testing"

func TestFamilyOf(t *testing.T) {
	tests := []struct {
		skillID string
		want    Family
	}{
		{"basic.addition.two-digit", FamilyBasic},
		{"multiplication.tables.7", FamilyMultiplication},
		{"division.long", FamilyDivision},
		{"fractions.equivalent.halves", FamilyFractions},
		{"decimals.rounding", FamilyDecimals},
		{"word-problems.two-step", FamilyWordProblems},
		{"basic", FamilyBasic},
		{"algebra.linear", FamilyUnknown},
		{"", FamilyUnknown},
	}
	for _, tt := range tests {
		if got := FamilyOf(tt.skillID); got != tt.want {
			t.Errorf("FamilyOf(%q) = %q, want %q", tt.skillID, got, tt.want)
		}
	}
}

func TestFamilyDisplayName(t *testing.T) {
	if got := FamilyDisplayName(FamilyWordProblems); got != "Word Problems" {
		t.Errorf("FamilyDisplayName = %q, want %q", got, "Word Problems")
	}
	// Unknown families fall back to the raw string.
	if got := FamilyDisplayName(Family("algebra")); got != "algebra" {
		t.Errorf("FamilyDisplayName = %q, want %q", got, "algebra")
	}
}
