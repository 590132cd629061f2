package bkt

import (
	"sort"
	"strings"

	"github.com/priyali/arithma/internal/skillgraph"
)

// PriorTable maps skill-ID prefixes to BKT parameters. It is immutable after
// construction: the orchestrator receives it as injected configuration and
// only ever reads from it, so one table may serve concurrent computations.
type PriorTable struct {
	entries  []priorEntry
	fallback Params
}

type priorEntry struct {
	prefix string
	params Params
}

// DefaultParams is the documented fallback for skill IDs that match no
// configured prefix. Unknown skills are never an error.
var DefaultParams = Params{PInit: 0.2, PLearn: 0.12, PSlip: 0.1, PGuess: 0.15}

// NewPriorTable builds a table from prefix -> params pairs. Lookup uses
// longest-prefix match, so "fractions.equivalent." may override a broader
// "fractions." entry. The input map is copied; later mutation of it does not
// affect the table.
func NewPriorTable(prefixes map[string]Params, fallback Params) *PriorTable {
	t := &PriorTable{fallback: fallback}
	for prefix, params := range prefixes {
		t.entries = append(t.entries, priorEntry{prefix: prefix, params: params})
	}
	// Longest prefix first; ties broken lexicographically for determinism.
	sort.Slice(t.entries, func(i, j int) bool {
		a, b := t.entries[i].prefix, t.entries[j].prefix
		if len(a) != len(b) {
			return len(a) > len(b)
		}
		return a < b
	})
	return t
}

// PriorEntry is one prefix rule of a table, exposed for display.
type PriorEntry struct {
	Prefix string
	Params Params
}

// Entries returns the table's rules in match order (longest prefix first).
func (t *PriorTable) Entries() []PriorEntry {
	entries := make([]PriorEntry, len(t.entries))
	for i, e := range t.entries {
		entries[i] = PriorEntry{Prefix: e.prefix, Params: e.params}
	}
	return entries
}

// Fallback returns the parameters used when no prefix matches.
func (t *PriorTable) Fallback() Params {
	return t.fallback
}

// Resolve returns the parameters for a skill ID. Resolution happens once per
// skill at ingestion; the string form is retained only as the external
// identifier.
func (t *PriorTable) Resolve(skillID string) Params {
	for _, e := range t.entries {
		if strings.HasPrefix(skillID, e.prefix) {
			return e.params
		}
	}
	return t.fallback
}

// DefaultPriors returns the built-in, domain-informed prior table for the
// arithmetic skill families. Basic facts start higher and are easier to
// guess; word problems start low and are nearly impossible to guess.
func DefaultPriors() *PriorTable {
	byFamily := map[skillgraph.Family]Params{
		skillgraph.FamilyBasic:          {PInit: 0.3, PLearn: 0.2, PSlip: 0.08, PGuess: 0.15},
		skillgraph.FamilyMultiplication: {PInit: 0.2, PLearn: 0.15, PSlip: 0.1, PGuess: 0.1},
		skillgraph.FamilyDivision:       {PInit: 0.15, PLearn: 0.12, PSlip: 0.12, PGuess: 0.1},
		skillgraph.FamilyFractions:      {PInit: 0.1, PLearn: 0.1, PSlip: 0.15, PGuess: 0.1},
		skillgraph.FamilyDecimals:       {PInit: 0.12, PLearn: 0.12, PSlip: 0.12, PGuess: 0.1},
		skillgraph.FamilyWordProblems:   {PInit: 0.1, PLearn: 0.08, PSlip: 0.15, PGuess: 0.05},
	}

	prefixes := make(map[string]Params, len(byFamily))
	for f, p := range byFamily {
		prefixes[string(f)+"."] = p
	}
	return NewPriorTable(prefixes, DefaultParams)
}
