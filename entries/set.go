package entries

import (
	"fmt"
	"sort"

	"github.com/solvate/rxnpath/chem"
	"github.com/solvate/rxnpath/thermo"
)

// InterpolatedID is the source identifier carried by entries
// synthesized from the hull rather than computed or measured.
const InterpolatedID = "(interpolated entry)"

// DefaultInterpolationTol is the energy padding (eV) added above the
// hull when synthesizing an interpolated entry, keeping it strictly
// metastable.
const DefaultInterpolationTol = 1e-6

// DefaultStabilizationTol is the energy padding (eV) subtracted below
// the hull when stabilizing an entry.
const DefaultStabilizationTol = 1e-6

// Set is a deduplicated collection of entries. Membership follows the
// identity contract documented on Key. The zero value is unusable;
// construct via NewSet.
type Set struct {
	byKey map[string]Entry
}

// NewSet builds a set from the given entries, deduplicating by Key.
func NewSet(entries ...Entry) *Set {
	s := &Set{byKey: make(map[string]Entry, len(entries))}
	s.Update(entries...)
	return s
}

// Add inserts the entry; an entry with the same Key is replaced.
func (s *Set) Add(e Entry) {
	if e != nil {
		s.byKey[Key(e)] = e
	}
}

// Discard removes the entry if present.
func (s *Set) Discard(e Entry) {
	if e != nil {
		delete(s.byKey, Key(e))
	}
}

// Update inserts all given entries.
func (s *Set) Update(entries ...Entry) {
	for _, e := range entries {
		s.Add(e)
	}
}

// Contains reports membership under the identity contract.
func (s *Set) Contains(e Entry) bool {
	if e == nil {
		return false
	}
	_, ok := s.byKey[Key(e)]
	return ok
}

// Len returns the number of unique entries.
func (s *Set) Len() int { return len(s.byKey) }

// List returns the entries sorted by reduced formula, then identity
// key. The slice is a copy; the entries are shared.
func (s *Set) List() []Entry {
	out := make([]Entry, 0, len(s.byKey))
	for _, e := range s.byKey {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		fi, fj := out[i].Composition().ReducedFormula(), out[j].Composition().ReducedFormula()
		if fi != fj {
			return fi < fj
		}
		return Key(out[i]) < Key(out[j])
	})
	return out
}

// Chemsys returns the sorted union of element symbols across members.
func (s *Set) Chemsys() []string {
	seen := map[string]struct{}{}
	var out []string
	for _, e := range s.byKey {
		for _, sym := range e.Composition().Elements() {
			if _, ok := seen[sym]; !ok {
				seen[sym] = struct{}{}
				out = append(out, sym)
			}
		}
	}
	sort.Strings(out)
	return out
}

// Copy returns a shallow copy of the set (entries shared).
func (s *Set) Copy() *Set {
	out := &Set{byKey: make(map[string]Entry, len(s.byKey))}
	for k, e := range s.byKey {
		out.byKey[k] = e
	}
	return out
}

// BuildIndices writes each entry's ordinal (position in List order)
// into its Data map under "idx". Re-run after any mutation if consumers
// rely on the ordinal.
func (s *Set) BuildIndices() {
	for idx, e := range s.List() {
		e.Data()["idx"] = idx
	}
}

// SubsetInChemsys returns a new Set holding only entries whose elements
// are a subset of the requested system. The requested system must
// itself be a subset of the set's chemsys, else ErrNotSubset.
func (s *Set) SubsetInChemsys(elements []string) (*Set, error) {
	have := map[string]struct{}{}
	for _, sym := range s.Chemsys() {
		have[sym] = struct{}{}
	}
	want := map[string]struct{}{}
	for _, sym := range elements {
		if _, ok := have[sym]; !ok {
			return nil, fmt.Errorf("%w: %s not in %s",
				ErrNotSubset, sym, thermo.ChemsysKey(s.Chemsys()))
		}
		want[sym] = struct{}{}
	}

	out := NewSet()
	for _, e := range s.byKey {
		inside := true
		for _, sym := range e.Composition().Elements() {
			if _, ok := want[sym]; !ok {
				inside = false
				break
			}
		}
		if inside {
			out.Add(e)
		}
	}
	return out, nil
}

// FilterByStability returns a new Set holding only entries whose energy
// above hull is at most eAboveHull (eV/atom) in their subsystem's phase
// diagram. Subsystems come from thermo.ExpandPD; entries appearing in
// overlapping subsystems are deduplicated by identity. When
// includePolymorphs is false, only the lowest-energy entry per reduced
// formula survives.
func (s *Set) FilterByStability(eAboveHull float64, includePolymorphs bool) (*Set, error) {
	if s.Len() == 0 {
		return nil, ErrEmptySet
	}

	pds, err := thermo.ExpandPD(s.thermoEntries())
	if err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(pds))
	for k := range pds {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	filtered := map[string]Entry{} // identity key → entry
	best := map[string]Entry{}     // reduced formula → kept polymorph
	for _, k := range keys {
		pd := pds[k]
		for _, te := range pd.AllEntries() {
			e := te.(Entry)
			if _, ok := filtered[Key(e)]; ok {
				continue
			}
			eah, err := pd.EAboveHull(te)
			if err != nil {
				return nil, err
			}
			if eah > eAboveHull {
				continue
			}

			formula := e.Composition().ReducedFormula()
			if !includePolymorphs {
				if prev, ok := best[formula]; ok {
					if prev.EnergyPerAtom() <= e.EnergyPerAtom() {
						continue
					}
					delete(filtered, Key(prev))
				}
			}
			best[formula] = e
			filtered[Key(e)] = e
		}
	}

	out := NewSet()
	for _, e := range filtered {
		out.Add(e)
	}
	return out, nil
}

// MinEntryByFormula returns the lowest energy-per-atom entry whose
// reduced composition matches the formula, or ErrNoEntry.
func (s *Set) MinEntryByFormula(formula string) (Entry, error) {
	comp, err := chem.Parse(formula)
	if err != nil {
		return nil, err
	}

	var min Entry
	for _, e := range s.List() {
		if !e.Composition().Equal(comp) {
			continue
		}
		if min == nil || e.EnergyPerAtom() < min.EnergyPerAtom() {
			min = e
		}
	}
	if min == nil {
		return nil, fmt.Errorf("%w: %s", ErrNoEntry, comp.ReducedFormula())
	}
	return min, nil
}

// InterpolatedEntry synthesizes an entry for a formula absent from the
// set, at the hull energy of its composition plus tol (eV). The result
// is strictly above the hull, never artificially stable. tol ≤ 0 uses
// DefaultInterpolationTol.
func (s *Set) InterpolatedEntry(formula string, tol float64) (Entry, error) {
	if tol <= 0 {
		tol = DefaultInterpolationTol
	}
	comp, err := chem.Parse(formula)
	if err != nil {
		return nil, err
	}
	comp = comp.Reduced()

	pd, err := s.subsystemPD(comp.Elements())
	if err != nil {
		return nil, err
	}
	hull, err := pd.HullEnergy(comp)
	if err != nil {
		return nil, err
	}

	e := NewGibbsEntry(comp, hull+tol, 0, InterpolatedID)
	e.Data()["interpolated"] = true
	return e, nil
}

// StabilizeEntry returns a copy of the entry with a negative adjustment
// placing it tol (eV) below the hull of its chemical subsystem, so
// downstream hull constructions treat it as stable. Entries already on
// the hull are returned unchanged. tol ≤ 0 uses DefaultStabilizationTol.
func (s *Set) StabilizeEntry(e Entry, tol float64) (Entry, error) {
	if tol <= 0 {
		tol = DefaultStabilizationTol
	}
	pd, err := s.subsystemPD(e.Composition().Elements())
	if err != nil {
		return nil, err
	}
	eah, err := pd.EAboveHull(e)
	if err != nil {
		return nil, err
	}
	if eah == 0 {
		return e, nil
	}

	adj := Adjustment{
		Name:  "stabilization adjustment",
		Value: -eah*e.Composition().NumAtoms() - tol,
	}
	if g, ok := e.(*GibbsEntry); ok {
		return g.WithAdjustment(adj), nil
	}
	return NewGibbsEntry(e.Composition(), e.Energy(), e.Temperature(), e.ID()).WithAdjustment(adj), nil
}

// InitializeEntry acquires an entry by formula: the minimum entry when
// present, an interpolated one otherwise, optionally stabilized onto
// the hull.
func (s *Set) InitializeEntry(formula string, stabilize bool) (Entry, error) {
	e, err := s.MinEntryByFormula(formula)
	if err != nil {
		e, err = s.InterpolatedEntry(formula, DefaultInterpolationTol)
		if err != nil {
			return nil, err
		}
	}
	if stabilize {
		return s.StabilizeEntry(e, DefaultStabilizationTol)
	}
	return e, nil
}

// subsystemPD builds a phase diagram over the subset of the set inside
// the given elements.
func (s *Set) subsystemPD(elements []string) (*thermo.PhaseDiagram, error) {
	sub, err := s.SubsetInChemsys(elements)
	if err != nil {
		return nil, err
	}
	if sub.Len() == 0 {
		return nil, ErrEmptySet
	}
	return thermo.NewPhaseDiagram(sub.thermoEntries())
}

// thermoEntries adapts members to the thermo capability surface.
func (s *Set) thermoEntries() []thermo.Entry {
	list := s.List()
	out := make([]thermo.Entry, len(list))
	for i, e := range list {
		out[i] = e
	}
	return out
}
