package chem

import (
	"fmt"
	"strconv"
)

// Parse converts a chemical formula string into a Composition.
//
// Supported grammar:
//
//	formula := group+
//	group   := element count? | "(" formula ")" count?
//	element := uppercase letter followed by 0..2 lowercase letters
//	count   := decimal number (fractions allowed), default 1
//
// Examples: "YMnO3", "Ca(OH)2", "Li0.5CoO2".
func Parse(formula string) (Composition, error) {
	amounts := map[string]float64{}
	pos, err := parseInto(formula, 0, 1, amounts)
	if err != nil {
		return Composition{}, err
	}
	if pos != len(formula) {
		return Composition{}, fmt.Errorf("%w: unexpected %q at offset %d", ErrParseFormula, formula[pos], pos)
	}
	return NewComposition(amounts)
}

// MustParse is Parse but panics on error. Intended for fixtures and
// compile-time-constant formulas.
func MustParse(formula string) Composition {
	c, err := Parse(formula)
	if err != nil {
		panic(err)
	}
	return c
}

// parseInto accumulates scale×amounts of formula[pos:] into dst until
// the string ends or an unmatched ')' is reached. Returns the next
// unconsumed offset.
func parseInto(formula string, pos int, scale float64, dst map[string]float64) (int, error) {
	for pos < len(formula) {
		switch ch := formula[pos]; {
		case ch == '(':
			inner := map[string]float64{}
			next, err := parseInto(formula, pos+1, 1, inner)
			if err != nil {
				return pos, err
			}
			if next >= len(formula) || formula[next] != ')' {
				return pos, fmt.Errorf("%w: unclosed parenthesis at offset %d", ErrParseFormula, pos)
			}
			count, after, err := parseCount(formula, next+1)
			if err != nil {
				return pos, err
			}
			for sym, amt := range inner {
				dst[sym] += scale * count * amt
			}
			pos = after
		case ch == ')':
			return pos, nil
		case ch >= 'A' && ch <= 'Z':
			sym, next := scanSymbol(formula, pos)
			if !IsElementSymbol(sym) {
				return pos, fmt.Errorf("%w: %q", ErrUnknownElement, sym)
			}
			count, after, err := parseCount(formula, next)
			if err != nil {
				return pos, err
			}
			dst[sym] += scale * count
			pos = after
		default:
			return pos, fmt.Errorf("%w: unexpected %q at offset %d", ErrParseFormula, ch, pos)
		}
	}
	return pos, nil
}

// scanSymbol reads an element symbol starting at pos: one uppercase
// letter and the longest matching run of lowercase letters (≤2).
func scanSymbol(formula string, pos int) (string, int) {
	end := pos + 1
	for end < len(formula) && end-pos < 3 && formula[end] >= 'a' && formula[end] <= 'z' {
		end++
	}
	// Prefer the longest symbol that is actually an element: "Hg" over "H"+"g".
	for end > pos+1 && !IsElementSymbol(formula[pos:end]) {
		end--
	}
	return formula[pos:end], end
}

// parseCount reads an optional decimal count at pos; absent means 1.
func parseCount(formula string, pos int) (float64, int, error) {
	end := pos
	for end < len(formula) && (formula[end] == '.' || (formula[end] >= '0' && formula[end] <= '9')) {
		end++
	}
	if end == pos {
		return 1, pos, nil
	}
	v, err := strconv.ParseFloat(formula[pos:end], 64)
	if err != nil || v <= 0 {
		return 0, pos, fmt.Errorf("%w: bad count %q at offset %d", ErrParseFormula, formula[pos:end], pos)
	}
	return v, end, nil
}
