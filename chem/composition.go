package chem

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

// amountEps is the tolerance below which two element amounts are
// considered equal. All reduction and equality checks share it.
const amountEps = 1e-8

// Composition is an immutable mapping from element symbols to positive
// amounts (atom counts per formula unit).
//
// The zero value is an empty composition; construct via NewComposition,
// Parse, or MustParse.
type Composition struct {
	elems   []string  // sorted, unique element symbols
	amounts []float64 // parallel to elems, each > 0
	natoms  float64   // sum of amounts
}

// NewComposition builds a Composition from a symbol→amount map.
// Returns ErrEmptyFormula for an empty map, ErrUnknownElement for an
// unrecognized symbol, and ErrNonPositiveAmount for amounts ≤ 0.
func NewComposition(amounts map[string]float64) (Composition, error) {
	if len(amounts) == 0 {
		return Composition{}, ErrEmptyFormula
	}
	c := Composition{
		elems:   make([]string, 0, len(amounts)),
		amounts: make([]float64, 0, len(amounts)),
	}
	for sym := range amounts {
		if !IsElementSymbol(sym) {
			return Composition{}, ErrUnknownElement
		}
		c.elems = append(c.elems, sym)
	}
	sort.Strings(c.elems)
	for _, sym := range c.elems {
		amt := amounts[sym]
		if amt <= 0 || math.IsNaN(amt) || math.IsInf(amt, 0) {
			return Composition{}, ErrNonPositiveAmount
		}
		c.amounts = append(c.amounts, amt)
		c.natoms += amt
	}
	return c, nil
}

// Elements returns the element symbols in alphabetical order.
// The returned slice is a copy and safe to mutate.
func (c Composition) Elements() []string {
	out := make([]string, len(c.elems))
	copy(out, c.elems)
	return out
}

// Amount returns the amount of sym, or 0 when absent.
func (c Composition) Amount(sym string) float64 {
	i := sort.SearchStrings(c.elems, sym)
	if i < len(c.elems) && c.elems[i] == sym {
		return c.amounts[i]
	}
	return 0
}

// NumAtoms returns the total atom count per formula unit.
func (c Composition) NumAtoms() float64 { return c.natoms }

// Fraction returns the atomic fraction of sym (Amount/NumAtoms).
func (c Composition) Fraction(sym string) float64 {
	if c.natoms == 0 {
		return 0
	}
	return c.Amount(sym) / c.natoms
}

// IsElement reports whether the composition contains exactly one element.
func (c Composition) IsElement() bool { return len(c.elems) == 1 }

// IsEmpty reports whether the composition holds no elements (zero value).
func (c Composition) IsEmpty() bool { return len(c.elems) == 0 }

// Reduced returns the composition with all amounts divided by their
// greatest common measure, e.g. Y2O6 → YO3.
func (c Composition) Reduced() Composition {
	if len(c.elems) == 0 {
		return c
	}
	g := c.amounts[0]
	for _, amt := range c.amounts[1:] {
		g = gcdFloat(g, amt)
	}
	if g < amountEps {
		return c
	}
	out := Composition{
		elems:   c.elems,
		amounts: make([]float64, len(c.amounts)),
	}
	for i, amt := range c.amounts {
		out.amounts[i] = amt / g
		out.natoms += out.amounts[i]
	}
	return out
}

// ReducedFormula returns the canonical formula string of the reduced
// composition, with elements in ascending electronegativity order and
// unit counts omitted ("YMnO3", "Y2O3").
func (c Composition) ReducedFormula() string {
	return c.Reduced().Formula()
}

// Formula returns the unreduced formula string with explicit amounts,
// elements in ascending electronegativity order.
func (c Composition) Formula() string {
	var b strings.Builder
	for _, i := range c.renderOrder() {
		b.WriteString(c.elems[i])
		if amt := c.amounts[i]; math.Abs(amt-1) > amountEps {
			b.WriteString(formatAmount(amt))
		}
	}
	return b.String()
}

// renderOrder returns element indices sorted by (electronegativity,
// symbol) — the conventional order chemical formulas are written in.
func (c Composition) renderOrder() []int {
	order := make([]int, len(c.elems))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		xa, _ := Electronegativity(c.elems[order[a]])
		xb, _ := Electronegativity(c.elems[order[b]])
		if xa != xb {
			return xa < xb
		}
		return c.elems[order[a]] < c.elems[order[b]]
	})
	return order
}

// Key returns the canonical identity key used for set membership:
// the reduced formula string.
func (c Composition) Key() string { return c.ReducedFormula() }

// Equal reports whether c and other have the same reduced composition
// within amountEps per element.
func (c Composition) Equal(other Composition) bool {
	a, b := c.Reduced(), other.Reduced()
	if len(a.elems) != len(b.elems) {
		return false
	}
	for i := range a.elems {
		if a.elems[i] != b.elems[i] {
			return false
		}
		if math.Abs(a.amounts[i]-b.amounts[i]) > amountEps {
			return false
		}
	}
	return true
}

// String implements fmt.Stringer; identical to Formula.
func (c Composition) String() string { return c.Formula() }

// gcdFloat computes the greatest common measure of two positive floats
// via the Euclidean algorithm, snapping near-zero remainders to zero.
func gcdFloat(a, b float64) float64 {
	a, b = math.Abs(a), math.Abs(b)
	for b > amountEps {
		r := math.Mod(a, b)
		if r > b-amountEps {
			r = 0
		}
		a, b = b, r
	}
	return a
}

// formatAmount renders an amount exactly for near-integers and with
// shortest round-trip precision otherwise.
func formatAmount(v float64) string {
	if r := math.Round(v); math.Abs(v-r) < amountEps {
		return strconv.FormatFloat(r, 'f', -1, 64)
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
