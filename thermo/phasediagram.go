package thermo

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"

	"github.com/solvate/rxnpath/chem"
)

// HullEps is the tolerance under which an energy-above-hull value is
// clamped to exactly zero (an entry "on the hull").
const HullEps = 1e-9

// simplexTol is the pivot tolerance handed to the LP solver.
const simplexTol = 1e-10

// Entry is the capability surface the phase diagram requires of a
// thermodynamic entry. Concrete entry variants (computed, interpolated,
// experimental reference) satisfy it structurally.
type Entry interface {
	Composition() chem.Composition
	Energy() float64
	EnergyPerAtom() float64
	ID() string
	IsElement() bool
}

// PhaseDiagram is an immutable convex-hull view over a set of entries.
// Construct via NewPhaseDiagram.
type PhaseDiagram struct {
	entries []Entry          // sorted by reduced formula, then ID
	elems   []string         // sorted chemical system
	elRefs  map[string]Entry // element symbol → lowest-energy elemental entry
}

// NewPhaseDiagram builds a phase diagram over the given entries.
// Every element appearing in any entry must have at least one elemental
// entry (its reference); otherwise ErrMissingElementRef is returned.
func NewPhaseDiagram(entries []Entry) (*PhaseDiagram, error) {
	if len(entries) == 0 {
		return nil, ErrNoEntries
	}

	pd := &PhaseDiagram{
		entries: make([]Entry, len(entries)),
		elRefs:  make(map[string]Entry),
	}
	copy(pd.entries, entries)
	sort.Slice(pd.entries, func(i, j int) bool {
		fi, fj := pd.entries[i].Composition().ReducedFormula(), pd.entries[j].Composition().ReducedFormula()
		if fi != fj {
			return fi < fj
		}
		return pd.entries[i].ID() < pd.entries[j].ID()
	})

	seen := map[string]struct{}{}
	for _, e := range pd.entries {
		for _, sym := range e.Composition().Elements() {
			if _, ok := seen[sym]; !ok {
				seen[sym] = struct{}{}
				pd.elems = append(pd.elems, sym)
			}
		}
		if e.IsElement() {
			sym := e.Composition().Elements()[0]
			ref, ok := pd.elRefs[sym]
			if !ok || e.EnergyPerAtom() < ref.EnergyPerAtom() {
				pd.elRefs[sym] = e
			}
		}
	}
	sort.Strings(pd.elems)

	for _, sym := range pd.elems {
		if _, ok := pd.elRefs[sym]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingElementRef, sym)
		}
	}
	return pd, nil
}

// Elements returns the sorted chemical system of the diagram.
func (pd *PhaseDiagram) Elements() []string {
	out := make([]string, len(pd.elems))
	copy(out, pd.elems)
	return out
}

// Chemsys returns the dash-joined sorted chemical system, e.g. "Mn-O-Y".
func (pd *PhaseDiagram) Chemsys() string { return ChemsysKey(pd.elems) }

// AllEntries returns every member entry in deterministic order.
func (pd *PhaseDiagram) AllEntries() []Entry {
	out := make([]Entry, len(pd.entries))
	copy(out, pd.entries)
	return out
}

// ElRefs returns the elemental reference entries keyed by symbol.
func (pd *PhaseDiagram) ElRefs() map[string]Entry {
	out := make(map[string]Entry, len(pd.elRefs))
	for sym, e := range pd.elRefs {
		out[sym] = e
	}
	return out
}

// HullEnergyPerAtom returns the convex-hull energy (eV/atom) at the
// given composition: the minimum mixture energy over all non-negative
// entry combinations reproducing its atomic fractions.
func (pd *PhaseDiagram) HullEnergyPerAtom(c chem.Composition) (float64, error) {
	if err := pd.checkChemsys(c); err != nil {
		return 0, err
	}

	nv := len(pd.entries)
	cost := make([]float64, nv)
	a := mat.NewDense(len(pd.elems), nv, nil)
	for j, e := range pd.entries {
		cost[j] = e.EnergyPerAtom()
		for i, sym := range pd.elems {
			a.Set(i, j, e.Composition().Fraction(sym))
		}
	}
	b := make([]float64, len(pd.elems))
	for i, sym := range pd.elems {
		b[i] = c.Fraction(sym)
	}

	opt, _, err := lp.Simplex(cost, a, b, simplexTol, nil)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInfeasible, err)
	}
	return opt, nil
}

// HullEnergy returns the hull energy (eV) for the composition as given,
// i.e. HullEnergyPerAtom scaled by its atom count.
func (pd *PhaseDiagram) HullEnergy(c chem.Composition) (float64, error) {
	perAtom, err := pd.HullEnergyPerAtom(c)
	if err != nil {
		return 0, err
	}
	return perAtom * c.NumAtoms(), nil
}

// EAboveHull returns the entry's energy per atom relative to the hull
// at its own composition. Member entries therefore report ≥ 0; values
// within HullEps of zero are clamped to exactly zero.
func (pd *PhaseDiagram) EAboveHull(e Entry) (float64, error) {
	hull, err := pd.HullEnergyPerAtom(e.Composition())
	if err != nil {
		return 0, err
	}
	eah := e.EnergyPerAtom() - hull
	if math.Abs(eah) < HullEps {
		return 0, nil
	}
	return eah, nil
}

// FormationEnergyPerAtom returns the entry energy per atom relative to
// the elemental reference entries.
func (pd *PhaseDiagram) FormationEnergyPerAtom(e Entry) (float64, error) {
	if err := pd.checkChemsys(e.Composition()); err != nil {
		return 0, err
	}
	fe := e.EnergyPerAtom()
	for _, sym := range e.Composition().Elements() {
		fe -= e.Composition().Fraction(sym) * pd.elRefs[sym].EnergyPerAtom()
	}
	return fe, nil
}

// StableEntries returns the entries sitting on the hull.
func (pd *PhaseDiagram) StableEntries() ([]Entry, error) {
	var out []Entry
	for _, e := range pd.entries {
		eah, err := pd.EAboveHull(e)
		if err != nil {
			return nil, err
		}
		if eah == 0 {
			out = append(out, e)
		}
	}
	return out, nil
}

func (pd *PhaseDiagram) checkChemsys(c chem.Composition) error {
	for _, sym := range c.Elements() {
		i := sort.SearchStrings(pd.elems, sym)
		if i >= len(pd.elems) || pd.elems[i] != sym {
			return fmt.Errorf("%w: %s not in %s", ErrOutOfChemsys, sym, pd.Chemsys())
		}
	}
	return nil
}

// ChemsysKey renders a set of element symbols as the canonical sorted,
// dash-joined chemsys string.
func ChemsysKey(elems []string) string {
	sorted := make([]string, len(elems))
	copy(sorted, elems)
	sort.Strings(sorted)
	key := ""
	for i, sym := range sorted {
		if i > 0 {
			key += "-"
		}
		key += sym
	}
	return key
}
