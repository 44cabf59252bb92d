package pathways

import (
	"fmt"
	"sort"
	"strings"

	"github.com/solvate/rxnpath/chem"
	"github.com/solvate/rxnpath/reactions"
)

// Pathway is an ordered sequence of reactions with one cost per
// reaction. The zero value is empty; construct with NewPathway.
type Pathway struct {
	rxns  []reactions.Reaction
	costs []float64
}

// NewPathway builds a pathway from reactions and parallel per-reaction
// costs. A nil cost slice defaults to all zeros; a non-nil slice must
// match the reaction count.
func NewPathway(rxns []reactions.Reaction, costs []float64) (Pathway, error) {
	if len(rxns) == 0 {
		return Pathway{}, ErrEmptyPathway
	}
	if costs != nil && len(costs) != len(rxns) {
		return Pathway{}, fmt.Errorf("%w: %d reactions, %d costs",
			ErrCostMismatch, len(rxns), len(costs))
	}
	p := Pathway{
		rxns:  append([]reactions.Reaction(nil), rxns...),
		costs: make([]float64, len(rxns)),
	}
	copy(p.costs, costs)
	return p, nil
}

// Reactions returns a copy of the pathway's reactions in order.
func (p Pathway) Reactions() []reactions.Reaction {
	return append([]reactions.Reaction(nil), p.rxns...)
}

// Costs returns a copy of the per-reaction costs.
func (p Pathway) Costs() []float64 {
	return append([]float64(nil), p.costs...)
}

// Len reports the number of reactions in the pathway.
func (p Pathway) Len() int { return len(p.rxns) }

// TotalCost sums the per-reaction costs.
func (p Pathway) TotalCost() float64 {
	var total float64
	for _, c := range p.costs {
		total += c
	}
	return total
}

// Compositions returns the deduplicated union of all compositions
// appearing across the pathway's reactions, sorted by reduced formula
// then key.
func (p Pathway) Compositions() []chem.Composition {
	seen := map[string]struct{}{}
	var out []chem.Composition
	for _, r := range p.rxns {
		for _, c := range r.Compositions() {
			if _, ok := seen[c.Key()]; ok {
				continue
			}
			seen[c.Key()] = struct{}{}
			out = append(out, c)
		}
	}
	sort.Slice(out, func(a, b int) bool {
		fa, fb := out[a].ReducedFormula(), out[b].ReducedFormula()
		if fa != fb {
			return fa < fb
		}
		return out[a].Key() < out[b].Key()
	})
	return out
}

// netCoeff sums the pathway's reaction coefficients for one composition.
func (p Pathway) netCoeff(c chem.Composition) float64 {
	var total float64
	for _, r := range p.rxns {
		total += r.Coeff(c)
	}
	return total
}

// String renders the pathway one reaction per line.
func (p Pathway) String() string {
	lines := make([]string, len(p.rxns))
	for i, r := range p.rxns {
		lines[i] = r.Key()
	}
	return strings.Join(lines, "\n")
}
