package priorconf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_ValidFile(t *testing.T) {
	table, err := Parse([]byte(`{
		"priors": {
			"fractions.": {"p_init": 0.25, "p_learn": 0.1, "p_slip": 0.1, "p_guess": 0.1}
		}
	}`))
	require.NoError(t, err)

	got := table.Resolve("fractions.compare")
	assert.InDelta(t, 0.25, got.PInit, 0.0001)
}

func TestParse_InheritsUnshadowedDefaults(t *testing.T) {
	table, err := Parse([]byte(`{
		"priors": {
			"fractions.": {"p_init": 0.25, "p_learn": 0.1, "p_slip": 0.1, "p_guess": 0.1}
		}
	}`))
	require.NoError(t, err)

	// Families the file never mentions keep their built-in parameters.
	got := table.Resolve("basic.addition")
	assert.InDelta(t, 0.3, got.PInit, 0.0001)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"malformed JSON", `{"priors": `},
		{"missing priors key", `{}`},
		{"empty priors object", `{"priors": {}}`},
		{"probability out of range", `{"priors": {"basic.": {"p_init": 1.5, "p_learn": 0.1, "p_slip": 0.1, "p_guess": 0.1}}}`},
		{"probability at boundary", `{"priors": {"basic.": {"p_init": 0, "p_learn": 0.1, "p_slip": 0.1, "p_guess": 0.1}}}`},
		{"missing parameter", `{"priors": {"basic.": {"p_init": 0.3, "p_learn": 0.1, "p_slip": 0.1}}}`},
		{"unknown parameter", `{"priors": {"basic.": {"p_init": 0.3, "p_learn": 0.1, "p_slip": 0.1, "p_guess": 0.1, "p_bogus": 0.5}}}`},
		{"non-numeric parameter", `{"priors": {"basic.": {"p_init": "high", "p_learn": 0.1, "p_slip": 0.1, "p_guess": 0.1}}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.raw))
			assert.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "priors.json")
	content := `{"priors": {"decimals.": {"p_init": 0.4, "p_learn": 0.2, "p_slip": 0.05, "p_guess": 0.1}}}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	table, err := Load(path)
	require.NoError(t, err)
	assert.InDelta(t, 0.4, table.Resolve("decimals.rounding").PInit, 0.0001)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}
