package reactions

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/solvate/rxnpath/chem"
)

// singularRel is the relative threshold under which a singular value is
// treated as zero when measuring the null space.
const singularRel = 1e-8

// Balance solves the stoichiometric coefficients turning reactants into
// products. Species are reduced and deduplicated per side; a species on
// both sides is rejected with ErrSharedComposition.
//
// The returned reaction carries the null-space solution normalized so
// the first product has coefficient 1; Balanced() reports whether that
// solution is an exact, sign-consistent mass balance (see package doc).
func Balance(reactants, products []chem.Composition) (Reaction, error) {
	rside, err := dedupeSide(reactants)
	if err != nil {
		return Reaction{}, err
	}
	pside, err := dedupeSide(products)
	if err != nil {
		return Reaction{}, err
	}
	if len(rside) == 0 || len(pside) == 0 {
		return Reaction{}, ErrEmptyReaction
	}
	for _, p := range pside {
		for _, r := range rside {
			if r.Key() == p.Key() {
				return Reaction{}, fmt.Errorf("%w: %s", ErrSharedComposition, p.Key())
			}
		}
	}

	comps := append(append([]chem.Composition{}, rside...), pside...)
	elements := unionElements(comps)

	m := mat.NewDense(len(elements), len(comps), nil)
	for j, c := range comps {
		for i, sym := range elements {
			m.Set(i, j, c.Amount(sym))
		}
	}

	var svd mat.SVD
	if !svd.Factorize(m, mat.SVDFull) {
		return Reaction{comps: comps, coeffs: make([]float64, len(comps))}, nil
	}
	var v mat.Dense
	svd.VTo(&v)
	values := svd.Values(nil)

	n := len(comps)
	nullDims := n - len(values)
	for _, s := range values {
		if s < singularRel*values[0] {
			nullDims++
		}
	}

	// Right-singular vector of the smallest singular value (or an exact
	// null direction when n exceeds the element count).
	coeffs := make([]float64, n)
	for j := range coeffs {
		coeffs[j] = v.At(j, n-1)
	}

	// Normalize: first product gets coefficient 1.
	firstProduct := len(rside)
	ok := nullDims == 1
	if math.Abs(coeffs[firstProduct]) > 1e-10 {
		scale := 1 / coeffs[firstProduct]
		for j := range coeffs {
			coeffs[j] *= scale
		}
	} else {
		ok = false
	}

	// Sign consistency: reactants strictly negative, products strictly
	// positive.
	for j := range coeffs {
		if j < firstProduct && coeffs[j] > -CoeffTol {
			ok = false
		}
		if j >= firstProduct && coeffs[j] < CoeffTol {
			ok = false
		}
	}

	r := Reaction{comps: comps, coeffs: coeffs}
	r.balanced = ok && r.massBalanced()
	return r, nil
}

// Entry is the capability surface ComputedBalance requires of a
// thermodynamic entry.
type Entry interface {
	Composition() chem.Composition
	Energy() float64
}

// ComputedBalance balances the entries' compositions and attaches the
// reaction energy, in eV per atom of products, computed from the entry
// energies. The energy is only attached when the reaction balances.
func ComputedBalance(reactants, products []Entry) (Reaction, error) {
	byKey := map[string]Entry{}
	rc := make([]chem.Composition, len(reactants))
	for i, e := range reactants {
		rc[i] = e.Composition()
		byKey[e.Composition().Key()] = e
	}
	pc := make([]chem.Composition, len(products))
	for i, e := range products {
		pc[i] = e.Composition()
		byKey[e.Composition().Key()] = e
	}

	r, err := Balance(rc, pc)
	if err != nil || !r.balanced {
		return r, err
	}

	var total, productAtoms float64
	for i, c := range r.comps {
		e := byKey[c.Key()]
		perUnit := e.Energy() / e.Composition().NumAtoms() * c.NumAtoms()
		total += r.coeffs[i] * perUnit
		if r.coeffs[i] > 0 {
			productAtoms += r.coeffs[i] * c.NumAtoms()
		}
	}
	r.energyPerAtom = total / productAtoms
	return r, nil
}

// dedupeSide reduces the side's compositions and merges duplicates.
func dedupeSide(side []chem.Composition) ([]chem.Composition, error) {
	var out []chem.Composition
	seen := map[string]struct{}{}
	for _, c := range side {
		if c.IsEmpty() {
			return nil, ErrEmptyReaction
		}
		reduced := c.Reduced()
		if _, ok := seen[reduced.Key()]; ok {
			continue
		}
		seen[reduced.Key()] = struct{}{}
		out = append(out, reduced)
	}
	sort.Slice(out, func(a, b int) bool {
		return out[a].ReducedFormula() < out[b].ReducedFormula()
	})
	return out, nil
}

// unionElements returns the sorted union of element symbols.
func unionElements(comps []chem.Composition) []string {
	seen := map[string]struct{}{}
	var out []string
	for _, c := range comps {
		for _, sym := range c.Elements() {
			if _, ok := seen[sym]; !ok {
				seen[sym] = struct{}{}
				out = append(out, sym)
			}
		}
	}
	sort.Strings(out)
	return out
}
