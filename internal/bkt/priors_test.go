package bkt

import "testing"

func TestPriorTable_PrefixMatch(t *testing.T) {
	table := DefaultPriors()

	got := table.Resolve("basic.addition.two-digit")
	if !almostEqual(got.PInit, 0.3) {
		t.Errorf("basic PInit = %f, want 0.3", got.PInit)
	}

	got = table.Resolve("fractions.equivalent")
	if !almostEqual(got.PInit, 0.1) {
		t.Errorf("fractions PInit = %f, want 0.1", got.PInit)
	}
}

func TestPriorTable_UnknownSkillFallsBack(t *testing.T) {
	table := DefaultPriors()
	got := table.Resolve("calculus.derivatives")
	if got != DefaultParams {
		t.Errorf("unknown skill params = %+v, want DefaultParams", got)
	}
}

func TestPriorTable_LongestPrefixWins(t *testing.T) {
	table := NewPriorTable(map[string]Params{
		"fractions.":            {PInit: 0.1, PLearn: 0.1, PSlip: 0.1, PGuess: 0.1},
		"fractions.equivalent.": {PInit: 0.4, PLearn: 0.1, PSlip: 0.1, PGuess: 0.1},
	}, DefaultParams)

	got := table.Resolve("fractions.equivalent.halves")
	if !almostEqual(got.PInit, 0.4) {
		t.Errorf("PInit = %f, want the more specific 0.4", got.PInit)
	}

	got = table.Resolve("fractions.compare")
	if !almostEqual(got.PInit, 0.1) {
		t.Errorf("PInit = %f, want the broader 0.1", got.PInit)
	}
}

func TestPriorTable_CopiesInput(t *testing.T) {
	prefixes := map[string]Params{"basic.": {PInit: 0.3, PLearn: 0.1, PSlip: 0.1, PGuess: 0.1}}
	table := NewPriorTable(prefixes, DefaultParams)

	prefixes["basic."] = Params{PInit: 0.9}

	got := table.Resolve("basic.addition")
	if !almostEqual(got.PInit, 0.3) {
		t.Errorf("PInit = %f, want 0.3; table must not alias caller's map", got.PInit)
	}
}
