package skillgraph

import "strings"

// Family represents an arithmetic skill family. The family is the prefix
// segment of a skill ID: "basic.addition.two-digit" belongs to FamilyBasic.
type Family string

const (
	FamilyBasic          Family = "basic"
	FamilyMultiplication Family = "multiplication"
	FamilyDivision       Family = "division"
	FamilyFractions      Family = "fractions"
	FamilyDecimals       Family = "decimals"
	FamilyWordProblems   Family = "word-problems"

	// FamilyUnknown is returned for skill IDs whose prefix matches no
	// known family. Such skills still participate in tracing; they fall
	// back to the default prior parameters.
	FamilyUnknown Family = ""
)

// AllFamilies returns all known families in display order.
func AllFamilies() []Family {
	return []Family{
		FamilyBasic,
		FamilyMultiplication,
		FamilyDivision,
		FamilyFractions,
		FamilyDecimals,
		FamilyWordProblems,
	}
}

// FamilyOf resolves a skill ID to its family by prefix. The string skill ID
// remains the stable external identifier; the family is resolved once at
// ingestion so downstream code never re-scans the string.
func FamilyOf(skillID string) Family {
	prefix, _, _ := strings.Cut(skillID, ".")
	for _, f := range AllFamilies() {
		if prefix == string(f) {
			return f
		}
	}
	return FamilyUnknown
}

// FamilyDisplayName returns a human-readable name for a family.
func FamilyDisplayName(f Family) string {
	switch f {
	case FamilyBasic:
		return "Basic Arithmetic"
	case FamilyMultiplication:
		return "Multiplication"
	case FamilyDivision:
		return "Division"
	case FamilyFractions:
		return "Fractions"
	case FamilyDecimals:
		return "Decimals"
	case FamilyWordProblems:
		return "Word Problems"
	default:
		return string(f)
	}
}
