package reactions

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/solvate/rxnpath/chem"
)

// CoeffTol is the tolerance under which coefficients are compared and
// near-zero values are treated as zero.
const CoeffTol = 1e-6

// Reaction is an immutable chemical reaction: reduced compositions with
// signed stoichiometric coefficients (negative = consumed, positive =
// produced). Construct via New, Balance, or ComputedBalance.
type Reaction struct {
	comps         []chem.Composition // reduced; reactants first, each side sorted by formula
	coeffs        []float64          // parallel to comps, signed
	balanced      bool
	energyPerAtom float64
}

// New builds a reaction from explicit compositions and signed
// coefficients. The Balanced flag is derived by checking elemental mass
// balance within CoeffTol per element.
func New(comps []chem.Composition, coeffs []float64) (Reaction, error) {
	if len(comps) != len(coeffs) {
		return Reaction{}, ErrLengthMismatch
	}

	var reactants, products []int
	for i, c := range coeffs {
		switch {
		case math.Abs(c) < CoeffTol:
			return Reaction{}, fmt.Errorf("%w: %s", ErrZeroCoefficient, comps[i].ReducedFormula())
		case c < 0:
			reactants = append(reactants, i)
		default:
			products = append(products, i)
		}
	}
	if len(reactants) == 0 || len(products) == 0 {
		return Reaction{}, ErrEmptyReaction
	}

	r := Reaction{
		comps:  make([]chem.Composition, 0, len(comps)),
		coeffs: make([]float64, 0, len(coeffs)),
	}
	seen := map[string]struct{}{}
	for _, side := range [][]int{reactants, products} {
		sort.Slice(side, func(a, b int) bool {
			return comps[side[a]].ReducedFormula() < comps[side[b]].ReducedFormula()
		})
		for _, i := range side {
			reduced := comps[i].Reduced()
			if _, dup := seen[reduced.Key()]; dup {
				return Reaction{}, fmt.Errorf("%w: %s", ErrDuplicateComposition, reduced.Key())
			}
			seen[reduced.Key()] = struct{}{}
			// Coefficients are rescaled so they count reduced formula units.
			scale := comps[i].NumAtoms() / reduced.NumAtoms()
			r.comps = append(r.comps, reduced)
			r.coeffs = append(r.coeffs, coeffs[i]*scale)
		}
	}
	r.balanced = r.massBalanced()
	return r, nil
}

// massBalanced checks Σ coeffᵢ·amountᵢ(el) ≈ 0 for every element.
func (r Reaction) massBalanced() bool {
	residual := map[string]float64{}
	for i, c := range r.comps {
		for _, sym := range c.Elements() {
			residual[sym] += r.coeffs[i] * c.Amount(sym)
		}
	}
	for _, v := range residual {
		if math.Abs(v) > CoeffTol {
			return false
		}
	}
	return true
}

// Compositions returns every species of the reaction, reactants first.
func (r Reaction) Compositions() []chem.Composition {
	out := make([]chem.Composition, len(r.comps))
	copy(out, r.comps)
	return out
}

// Reactants returns the consumed species.
func (r Reaction) Reactants() []chem.Composition {
	var out []chem.Composition
	for i, c := range r.coeffs {
		if c < 0 {
			out = append(out, r.comps[i])
		}
	}
	return out
}

// Products returns the produced species.
func (r Reaction) Products() []chem.Composition {
	var out []chem.Composition
	for i, c := range r.coeffs {
		if c > 0 {
			out = append(out, r.comps[i])
		}
	}
	return out
}

// Coeff returns the signed coefficient of the composition, matched by
// reduced form, or 0 when the species does not participate.
func (r Reaction) Coeff(c chem.Composition) float64 {
	key := c.Key()
	for i, rc := range r.comps {
		if rc.Key() == key {
			return r.coeffs[i]
		}
	}
	return 0
}

// HasComposition reports whether the species participates.
func (r Reaction) HasComposition(c chem.Composition) bool {
	key := c.Key()
	for _, rc := range r.comps {
		if rc.Key() == key {
			return true
		}
	}
	return false
}

// Balanced reports whether elemental mass balance holds.
func (r Reaction) Balanced() bool { return r.balanced }

// EnergyPerAtom returns the reaction energy in eV per atom of products,
// or 0 when no energy was attached.
func (r Reaction) EnergyPerAtom() float64 { return r.energyPerAtom }

// WithEnergyPerAtom returns a copy carrying the given reaction energy.
func (r Reaction) WithEnergyPerAtom(e float64) Reaction {
	r.energyPerAtom = e
	return r
}

// normalizer returns the scale factor mapping coefficients to canonical
// form: the first product (in stored order) gets coefficient 1.
func (r Reaction) normalizer() float64 {
	for _, c := range r.coeffs {
		if c > 0 {
			return 1 / c
		}
	}
	return 1
}

// Equal reports order-independent equality of the normalized
// coefficient sets within CoeffTol.
func (r Reaction) Equal(other Reaction) bool {
	if len(r.comps) != len(other.comps) {
		return false
	}
	sr, so := r.normalizer(), other.normalizer()
	for i, c := range r.comps {
		oc := other.Coeff(c)
		if oc == 0 {
			return false
		}
		if math.Abs(r.coeffs[i]*sr-oc*so) > CoeffTol {
			return false
		}
	}
	return true
}

// Key renders the canonical normalized form, e.g.
// "0.5 Y2O3 + 0.5 Mn2O3 -> YMnO3". It is stable across construction
// order and serves as the set-membership key for reactions.
func (r Reaction) Key() string {
	scale := r.normalizer()
	var reactants, products []string
	for i, c := range r.comps {
		coeff := r.coeffs[i] * scale
		term := formatTerm(math.Abs(coeff), c.ReducedFormula())
		if coeff < 0 {
			reactants = append(reactants, term)
		} else {
			products = append(products, term)
		}
	}
	return strings.Join(reactants, " + ") + " -> " + strings.Join(products, " + ")
}

// String implements fmt.Stringer; identical to Key.
func (r Reaction) String() string { return r.Key() }

// formatTerm renders "coeff formula" with the unit coefficient omitted
// and coefficients rounded to 4 decimals.
func formatTerm(coeff float64, formula string) string {
	rounded := math.Round(coeff*1e4) / 1e4
	if math.Abs(rounded-1) < CoeffTol {
		return formula
	}
	return strconv.FormatFloat(rounded, 'g', -1, 64) + " " + formula
}
