package chem

import "errors"

var (
	// ErrEmptyFormula indicates a formula with no elements at all.
	ErrEmptyFormula = errors.New("chem: formula must contain at least one element")
	// ErrParseFormula indicates a malformed formula string.
	ErrParseFormula = errors.New("chem: malformed formula")
	// ErrUnknownElement indicates a symbol that is not a known element.
	ErrUnknownElement = errors.New("chem: unknown element symbol")
	// ErrNonPositiveAmount indicates an element amount ≤ 0.
	ErrNonPositiveAmount = errors.New("chem: element amounts must be positive")
)
