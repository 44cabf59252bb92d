package pathways

import (
	"fmt"
	"sort"

	"github.com/solvate/rxnpath/chem"
	"github.com/solvate/rxnpath/reactions"
)

// DefaultMaxSubsetSize bounds the interdependency subset search.
// Pathways are typically 2-5 reactions long; the search is exponential
// in the reaction count, so the ceiling keeps the cost visible.
const DefaultMaxSubsetSize = 15

// InterdependencyOptions tunes the interdependency search.
type InterdependencyOptions struct {
	// MaxSubsetSize caps the number of distinct reactions the search
	// accepts; non-positive values fall back to DefaultMaxSubsetSize.
	MaxSubsetSize int
}

// DefaultInterdependencyOptions returns the standard search options.
func DefaultInterdependencyOptions() InterdependencyOptions {
	return InterdependencyOptions{MaxSubsetSize: DefaultMaxSubsetSize}
}

// ContainsInterdependentRxns reports whether some subset of the
// pathway's reactions is mutually dependent: every member needs an
// intermediate produced inside the subset that is neither a precursor
// nor available from any reaction outside the subset.
//
// Subsets are enumerated ascending in size from 2, lexicographically by
// reaction index, and the first qualifying subset wins. Subsets
// containing a reaction whose reactants are all precursors are skipped.
// For a qualifying subset a combined reaction is assembled by uniting
// the members' reactants and products, cancelling species on both
// sides, and mass-balancing the remainder; when that balance fails the
// verdict stays true and the combined reaction is nil.
//
// A pathway with a single distinct reaction is trivially independent.
// More distinct reactions than MaxSubsetSize is ErrTooManyReactions.
func (bp BalancedPathway) ContainsInterdependentRxns(precursors []chem.Composition, opts InterdependencyOptions) (bool, *reactions.Reaction, error) {
	if opts.MaxSubsetSize <= 0 {
		opts.MaxSubsetSize = DefaultMaxSubsetSize
	}

	rxns := dedupeReactions(bp.rxns)
	n := len(rxns)
	if n <= 1 {
		return false, nil, nil
	}
	if n > opts.MaxSubsetSize {
		return false, nil, fmt.Errorf("%w: %d reactions, ceiling %d",
			ErrTooManyReactions, n, opts.MaxSubsetSize)
	}

	prec := map[string]struct{}{}
	for _, c := range precursors {
		prec[c.Reduced().Key()] = struct{}{}
	}

	// Per-reaction composition key sets, reduced once up front.
	reactantKeys := make([]map[string]struct{}, n)
	productKeys := make([]map[string]struct{}, n)
	compKeys := make([]map[string]struct{}, n)
	fromPrecursors := make([]bool, n)
	for i, r := range rxns {
		reactantKeys[i] = keySet(r.Reactants())
		productKeys[i] = keySet(r.Products())
		compKeys[i] = keySet(r.Compositions())
		fromPrecursors[i] = subsetOf(reactantKeys[i], prec)
	}

	for size := 2; size <= n; size++ {
		combo := firstCombination(size)
		for combo != nil {
			if found, combined := checkSubset(rxns, combo, prec,
				reactantKeys, productKeys, compKeys, fromPrecursors); found {
				return true, combined, nil
			}
			combo = nextCombination(combo, n)
		}
	}
	return false, nil, nil
}

// checkSubset applies the cross-feeding test to one index subset and,
// on success, tries to assemble the combined reaction.
func checkSubset(
	rxns []reactions.Reaction,
	combo []int,
	prec map[string]struct{},
	reactantKeys, productKeys, compKeys []map[string]struct{},
	fromPrecursors []bool,
) (bool, *reactions.Reaction) {
	for _, i := range combo {
		if fromPrecursors[i] {
			return false, nil
		}
	}

	inCombo := map[int]struct{}{}
	for _, i := range combo {
		inCombo[i] = struct{}{}
	}
	otherComps := map[string]struct{}{}
	for i := range rxns {
		if _, ok := inCombo[i]; ok {
			continue
		}
		for k := range compKeys[i] {
			otherComps[k] = struct{}{}
		}
	}

	// Reactants and products with precursors stripped, per member.
	uniqueReactants := make([]map[string]struct{}, len(combo))
	uniqueProducts := make([]map[string]struct{}, len(combo))
	for pos, i := range combo {
		uniqueReactants[pos] = minus(reactantKeys[i], prec)
		uniqueProducts[pos] = minus(productKeys[i], prec)
	}

	// Member i depends on the subset when another member supplies one of
	// its reactants and no outside reaction touches that species.
	for pos := range combo {
		dependent := false
		for other := range combo {
			if other == pos {
				continue
			}
			for k := range uniqueReactants[pos] {
				if _, made := uniqueProducts[other][k]; !made {
					continue
				}
				if _, external := otherComps[k]; external {
					continue
				}
				dependent = true
				break
			}
			if dependent {
				break
			}
		}
		if !dependent {
			return false, nil
		}
	}

	return true, combineSubset(rxns, combo)
}

// combineSubset nets out a subset: union the members' reactants and
// products, cancel shared species, and balance the remainder. A failed
// balance yields nil.
func combineSubset(rxns []reactions.Reaction, combo []int) *reactions.Reaction {
	reactants := map[string]chem.Composition{}
	products := map[string]chem.Composition{}
	for _, i := range combo {
		for _, c := range rxns[i].Reactants() {
			reactants[c.Key()] = c
		}
		for _, c := range rxns[i].Products() {
			products[c.Key()] = c
		}
	}
	for k := range reactants {
		if _, ok := products[k]; ok {
			delete(reactants, k)
			delete(products, k)
		}
	}
	if len(reactants) == 0 || len(products) == 0 {
		return nil
	}

	r, err := reactions.Balance(sortedComps(reactants), sortedComps(products))
	if err != nil || !r.Balanced() {
		return nil
	}
	return &r
}

// dedupeReactions drops repeated reactions, keeping first-seen order.
func dedupeReactions(rxns []reactions.Reaction) []reactions.Reaction {
	seen := map[string]struct{}{}
	var out []reactions.Reaction
	for _, r := range rxns {
		if _, ok := seen[r.Key()]; ok {
			continue
		}
		seen[r.Key()] = struct{}{}
		out = append(out, r)
	}
	return out
}

// firstCombination returns the lexicographically first index subset of
// the given size: [0, 1, ..., size-1].
func firstCombination(size int) []int {
	combo := make([]int, size)
	for i := range combo {
		combo[i] = i
	}
	return combo
}

// nextCombination advances an ascending index subset to its
// lexicographic successor over [0, n), or nil when exhausted.
func nextCombination(combo []int, n int) []int {
	k := len(combo)
	i := k - 1
	for i >= 0 && combo[i] == n-k+i {
		i--
	}
	if i < 0 {
		return nil
	}
	combo[i]++
	for j := i + 1; j < k; j++ {
		combo[j] = combo[j-1] + 1
	}
	return combo
}

func keySet(comps []chem.Composition) map[string]struct{} {
	set := make(map[string]struct{}, len(comps))
	for _, c := range comps {
		set[c.Key()] = struct{}{}
	}
	return set
}

func subsetOf(a, b map[string]struct{}) bool {
	for k := range a {
		if _, ok := b[k]; !ok {
			return false
		}
	}
	return true
}

func minus(a, b map[string]struct{}) map[string]struct{} {
	out := map[string]struct{}{}
	for k := range a {
		if _, ok := b[k]; !ok {
			out[k] = struct{}{}
		}
	}
	return out
}

func sortedComps(m map[string]chem.Composition) []chem.Composition {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]chem.Composition, len(keys))
	for i, k := range keys {
		out[i] = m[k]
	}
	return out
}
