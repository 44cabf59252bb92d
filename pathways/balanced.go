package pathways

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/solvate/rxnpath/chem"
	"github.com/solvate/rxnpath/reactions"
)

// DefaultBalanceTol is the numeric tolerance applied to multiplicity
// signs and to the componentwise stoichiometry reconstruction.
const DefaultBalanceTol = 1e-6

// singularRel is the relative threshold under which a singular value is
// treated as zero when inverting the composition matrix.
const singularRel = 1e-12

// BalanceOptions tunes the pathway balancing procedure.
type BalanceOptions struct {
	// Tol is the balancing tolerance; non-positive values fall back to
	// DefaultBalanceTol.
	Tol float64
}

// DefaultBalanceOptions returns the standard balancing options.
func DefaultBalanceOptions() BalanceOptions {
	return BalanceOptions{Tol: DefaultBalanceTol}
}

// BalancedPathway is a pathway whose reactions carry multiplicity
// coefficients tying them to a net target reaction. When Balanced
// reports true the multiplicity-weighted sum of the reaction
// stoichiometries reproduces the net reaction within tolerance.
type BalancedPathway struct {
	Pathway
	coeffs   []float64
	balanced bool
}

// NewBalancedPathway builds a balanced pathway directly from reactions,
// per-reaction multiplicities, and costs. Balance is the usual
// constructor; this one serves callers re-assembling stored results.
func NewBalancedPathway(rxns []reactions.Reaction, coeffs, costs []float64, balanced bool) (BalancedPathway, error) {
	p, err := NewPathway(rxns, costs)
	if err != nil {
		return BalancedPathway{}, err
	}
	if len(coeffs) != len(rxns) {
		return BalancedPathway{}, fmt.Errorf("%w: %d reactions, %d coefficients",
			ErrCoeffMismatch, len(rxns), len(coeffs))
	}
	return BalancedPathway{
		Pathway:  p,
		coeffs:   append([]float64(nil), coeffs...),
		balanced: balanced,
	}, nil
}

// Balance computes non-negative multiplicities for the candidate
// pathways so that their weighted net stoichiometries sum to the net
// reaction.
//
// The composition-by-pathway matrix M has one row per distinct
// composition across the candidates and the net reaction, and one
// column per candidate; cell (i, j) is candidate j's summed coefficient
// for composition i. The multiplicities are the least-squares solution
// of M·x = v via the Moore-Penrose pseudoinverse, with v the net
// reaction's coefficient vector. The result is balanced iff every
// multiplicity is at least -Tol and M·x reproduces v componentwise
// within Tol; approximate solutions that miss the reconstruction are
// reported unbalanced with no separate signal.
//
// The returned pathway flattens the candidates in order; each reaction
// inherits its candidate's multiplicity.
func Balance(paths []Pathway, net reactions.Reaction, opts BalanceOptions) (BalancedPathway, error) {
	if opts.Tol <= 0 {
		opts.Tol = DefaultBalanceTol
	}
	if len(paths) == 0 {
		return BalancedPathway{}, ErrNoPathways
	}
	for _, p := range paths {
		if p.Len() == 0 {
			return BalancedPathway{}, ErrEmptyPathway
		}
	}

	comps := unionCompositions(paths, net)

	m := mat.NewDense(len(comps), len(paths), nil)
	for j, p := range paths {
		for i, c := range comps {
			m.Set(i, j, p.netCoeff(c))
		}
	}
	target := make([]float64, len(comps))
	for i, c := range comps {
		target[i] = net.Coeff(c)
	}

	mults, ok := leastSquares(m, target)
	for _, x := range mults {
		if x < -opts.Tol {
			ok = false
		}
	}
	for i := range comps {
		var rec float64
		for j := range paths {
			rec += m.At(i, j) * mults[j]
		}
		if math.Abs(rec-target[i]) > opts.Tol {
			ok = false
		}
	}

	var rxns []reactions.Reaction
	var costs, coeffs []float64
	for j, p := range paths {
		for k, r := range p.rxns {
			rxns = append(rxns, r)
			costs = append(costs, p.costs[k])
			coeffs = append(coeffs, mults[j])
		}
	}
	return BalancedPathway{
		Pathway:  Pathway{rxns: rxns, costs: costs},
		coeffs:   coeffs,
		balanced: ok,
	}, nil
}

// Coefficients returns a copy of the per-reaction multiplicities.
func (bp BalancedPathway) Coefficients() []float64 {
	return append([]float64(nil), bp.coeffs...)
}

// Balanced reports whether the multiplicities reproduce the net
// reaction.
func (bp BalancedPathway) Balanced() bool { return bp.balanced }

// AverageCost is the multiplicity-weighted mean of the per-reaction
// costs. It is zero when the multiplicities sum to zero.
func (bp BalancedPathway) AverageCost() float64 {
	var dot, sum float64
	for i, x := range bp.coeffs {
		dot += x * bp.costs[i]
		sum += x
	}
	if sum == 0 {
		return 0
	}
	return dot / sum
}

// Equal reports whether both pathways hold the same reactions in the
// same order with matching multiplicities and costs.
func (bp BalancedPathway) Equal(other BalancedPathway) bool {
	if len(bp.rxns) != len(other.rxns) {
		return false
	}
	for i := range bp.rxns {
		if !bp.rxns[i].Equal(other.rxns[i]) {
			return false
		}
		if math.Abs(bp.coeffs[i]-other.coeffs[i]) > reactions.CoeffTol {
			return false
		}
		if math.Abs(bp.costs[i]-other.costs[i]) > reactions.CoeffTol {
			return false
		}
	}
	return true
}

// Key is a canonical identity string: each reaction key annotated with
// its multiplicity, joined in pathway order.
func (bp BalancedPathway) Key() string {
	parts := make([]string, len(bp.rxns))
	for i, r := range bp.rxns {
		parts[i] = fmt.Sprintf("%s @ %.4f", r.Key(), bp.coeffs[i])
	}
	return strings.Join(parts, " | ")
}

// String renders one reaction per line with its energy, then the
// average cost.
func (bp BalancedPathway) String() string {
	var b strings.Builder
	for _, r := range bp.rxns {
		fmt.Fprintf(&b, "%s (dG = %.3f eV/atom)\n", r.Key(), r.EnergyPerAtom())
	}
	fmt.Fprintf(&b, "Average Cost: %.3f", bp.AverageCost())
	return b.String()
}

// unionCompositions collects the sorted distinct compositions across
// the candidate pathways and the net reaction.
func unionCompositions(paths []Pathway, net reactions.Reaction) []chem.Composition {
	merged := Pathway{}
	for _, p := range paths {
		merged.rxns = append(merged.rxns, p.rxns...)
	}
	merged.rxns = append(merged.rxns, net)
	return merged.Compositions()
}

// leastSquares solves min ‖M·x − b‖ through the thin-SVD pseudoinverse.
// The ok result is false when the factorization fails; x is then all
// zeros.
func leastSquares(m *mat.Dense, b []float64) (x []float64, ok bool) {
	rows, cols := m.Dims()
	x = make([]float64, cols)

	var svd mat.SVD
	if !svd.Factorize(m, mat.SVDThin) {
		return x, false
	}
	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)
	values := svd.Values(nil)
	if len(values) == 0 || values[0] == 0 {
		return x, false
	}

	// w = Σ⁺·Uᵀ·b, zeroing directions with negligible singular values.
	w := make([]float64, len(values))
	for i, s := range values {
		if s <= singularRel*values[0] {
			continue
		}
		var dot float64
		for r := 0; r < rows; r++ {
			dot += u.At(r, i) * b[r]
		}
		w[i] = dot / s
	}
	for j := 0; j < cols; j++ {
		var sum float64
		for i := range w {
			sum += v.At(j, i) * w[i]
		}
		x[j] = sum
	}
	return x, true
}
