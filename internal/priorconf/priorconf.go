// Package priorconf loads caller-supplied prior overrides for the tracing
// engine. Overrides are a JSON file mapping skill-ID prefixes to BKT
// parameters, validated against a schema at load time and layered over the
// built-in defaults. A bad file fails at load, never during a computation.
package priorconf

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/priyali/arithma/internal/bkt"
)

// fileFormat is the on-disk shape of a priors override file.
type fileFormat struct {
	Priors map[string]paramsJSON `json:"priors"`
}

type paramsJSON struct {
	PInit  float64 `json:"p_init"`
	PLearn float64 `json:"p_learn"`
	PSlip  float64 `json:"p_slip"`
	PGuess float64 `json:"p_guess"`
}

// Load reads and validates a priors file, returning a table that layers the
// file's prefixes over the built-in defaults.
func Load(path string) (*bkt.PriorTable, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read priors file: %w", err)
	}
	table, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return table, nil
}

// Parse validates raw JSON against the priors schema and builds the table.
func Parse(raw []byte) (*bkt.PriorTable, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	compiled, err := compiledSchema()
	if err != nil {
		return nil, fmt.Errorf("compile priors schema: %w", err)
	}
	if err := compiled.Validate(parsed); err != nil {
		return nil, fmt.Errorf("schema validation failed: %w", err)
	}

	var f fileFormat
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("decode priors: %w", err)
	}

	prefixes := make(map[string]bkt.Params, len(f.Priors))
	for prefix, p := range f.Priors {
		prefixes[prefix] = bkt.Params{
			PInit:  p.PInit,
			PLearn: p.PLearn,
			PSlip:  p.PSlip,
			PGuess: p.PGuess,
		}
	}
	// File entries are consulted before the defaults only when their
	// prefix is longer; re-state the default family prefixes so the file
	// fully shadows same-prefix entries.
	merged := defaultPrefixMap()
	for prefix, p := range prefixes {
		merged[prefix] = p
	}
	return bkt.NewPriorTable(merged, bkt.DefaultParams), nil
}

// defaultPrefixMap re-materializes the built-in table as a prefix map so a
// file can shadow individual families while inheriting the rest.
func defaultPrefixMap() map[string]bkt.Params {
	defaults := bkt.DefaultPriors()
	m := make(map[string]bkt.Params)
	for _, prefix := range defaultFamilyPrefixes {
		m[prefix] = defaults.Resolve(prefix)
	}
	return m
}

var defaultFamilyPrefixes = []string{
	"basic.", "multiplication.", "division.", "fractions.", "decimals.", "word-problems.",
}

var (
	schemaOnce    sync.Once
	cachedSchema  *jsonschema.Schema
	schemaCompErr error
)

func compiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		var parsed any
		if err := json.Unmarshal([]byte(priorsSchema), &parsed); err != nil {
			schemaCompErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		const schemaURL = "schema://priors.json"
		if err := c.AddResource(schemaURL, parsed); err != nil {
			schemaCompErr = fmt.Errorf("add resource: %w", err)
			return
		}
		cachedSchema, schemaCompErr = c.Compile(schemaURL)
	})
	return cachedSchema, schemaCompErr
}
