package entries

import (
	"fmt"

	"github.com/solvate/rxnpath/chem"
)

// Entry is the capability surface of a thermodynamic entry.
// Concrete variants: GibbsEntry (computed), refdata.ReferenceEntry
// (experimental), and interpolated entries synthesized by Set.
type Entry interface {
	// Composition returns the entry's (immutable) composition.
	Composition() chem.Composition
	// Energy returns the total energy in eV per stored formula unit,
	// with all adjustments applied.
	Energy() float64
	// EnergyPerAtom returns Energy normalized per atom.
	EnergyPerAtom() float64
	// Temperature returns the temperature in Kelvin the energy refers to.
	Temperature() float64
	// ID identifies the entry's source (database id, "ref-...", etc.).
	ID() string
	// IsElement reports whether the composition is a single element.
	IsElement() bool
	// Data returns the entry's free-form metadata map (live, mutable).
	Data() map[string]any
}

// Key returns the canonical identity key used for Set membership:
// ID | reduced formula | temperature | energy rounded to 1e-6 eV.
func Key(e Entry) string {
	return fmt.Sprintf("%s|%s|%g|%.6f",
		e.ID(), e.Composition().ReducedFormula(), e.Temperature(), e.Energy())
}

// Adjustment is a named additive correction to an entry's base energy,
// in eV per stored formula unit.
type Adjustment struct {
	Name  string
	Value float64
}

// GibbsEntry is a computed thermodynamic entry: a composition with a
// Gibbs formation energy at a temperature, plus additive adjustments.
type GibbsEntry struct {
	comp        chem.Composition
	baseEnergy  float64 // eV per stored formula unit, before adjustments
	temperature float64
	id          string
	adjustments []Adjustment
	data        map[string]any
}

// NewGibbsEntry builds an entry from a total energy in eV per the
// given composition's formula unit.
func NewGibbsEntry(c chem.Composition, energy, temperature float64, id string) *GibbsEntry {
	return &GibbsEntry{comp: c, baseEnergy: energy, temperature: temperature, id: id}
}

// NewGibbsEntryPerAtom builds an entry from an energy given per atom.
func NewGibbsEntryPerAtom(c chem.Composition, energyPerAtom, temperature float64, id string) *GibbsEntry {
	return NewGibbsEntry(c, energyPerAtom*c.NumAtoms(), temperature, id)
}

// Composition returns the entry's composition.
func (e *GibbsEntry) Composition() chem.Composition { return e.comp }

// Energy returns the base energy plus all adjustments, in eV per
// stored formula unit.
func (e *GibbsEntry) Energy() float64 {
	energy := e.baseEnergy
	for _, adj := range e.adjustments {
		energy += adj.Value
	}
	return energy
}

// EnergyPerAtom returns Energy normalized per atom.
func (e *GibbsEntry) EnergyPerAtom() float64 { return e.Energy() / e.comp.NumAtoms() }

// Temperature returns the temperature in Kelvin.
func (e *GibbsEntry) Temperature() float64 { return e.temperature }

// ID returns the source identifier.
func (e *GibbsEntry) ID() string { return e.id }

// IsElement reports whether the composition is a single element.
func (e *GibbsEntry) IsElement() bool { return e.comp.IsElement() }

// Data returns the free-form metadata map, allocating on first use.
func (e *GibbsEntry) Data() map[string]any {
	if e.data == nil {
		e.data = make(map[string]any)
	}
	return e.data
}

// Adjustments returns a copy of the adjustment list.
func (e *GibbsEntry) Adjustments() []Adjustment {
	out := make([]Adjustment, len(e.adjustments))
	copy(out, e.adjustments)
	return out
}

// WithAdjustment returns a copy of the entry with adj appended.
// The original entry is untouched.
func (e *GibbsEntry) WithAdjustment(adj Adjustment) *GibbsEntry {
	out := &GibbsEntry{
		comp:        e.comp,
		baseEnergy:  e.baseEnergy,
		temperature: e.temperature,
		id:          e.id,
		adjustments: make([]Adjustment, 0, len(e.adjustments)+1),
	}
	out.adjustments = append(out.adjustments, e.adjustments...)
	out.adjustments = append(out.adjustments, adj)
	if e.data != nil {
		out.data = make(map[string]any, len(e.data))
		for k, v := range e.data {
			out.data[k] = v
		}
	}
	return out
}

// String renders the entry as "formula: energy eV (T K)".
func (e *GibbsEntry) String() string {
	return fmt.Sprintf("%s: %.4f eV (%g K)", e.comp.ReducedFormula(), e.Energy(), e.temperature)
}