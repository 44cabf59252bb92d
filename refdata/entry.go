package refdata

import (
	"fmt"

	"github.com/solvate/rxnpath/chem"
)

// ReferenceEntry is a thermodynamic entry backed by tabulated
// experimental data. It satisfies the entries.Entry capability surface.
type ReferenceEntry struct {
	comp        chem.Composition
	energy      float64 // eV per reduced formula unit, at temperature
	temperature float64
	data        map[string]any
}

// NewReferenceEntry resolves the composition's Gibbs formation energy
// from the table at the given temperature.
func NewReferenceEntry(table *Table, c chem.Composition, temperature float64) (*ReferenceEntry, error) {
	energy, err := table.Energy(c, temperature)
	if err != nil {
		return nil, err
	}
	return &ReferenceEntry{
		comp:        c.Reduced(),
		energy:      energy,
		temperature: temperature,
	}, nil
}

// Composition returns the (reduced) composition.
func (e *ReferenceEntry) Composition() chem.Composition { return e.comp }

// Energy returns the tabulated Gibbs formation energy in eV per
// reduced formula unit.
func (e *ReferenceEntry) Energy() float64 { return e.energy }

// EnergyPerAtom returns the energy normalized per atom.
func (e *ReferenceEntry) EnergyPerAtom() float64 { return e.energy / e.comp.NumAtoms() }

// Temperature returns the temperature in Kelvin the energy refers to.
func (e *ReferenceEntry) Temperature() float64 { return e.temperature }

// ID identifies the entry by source, formula and temperature.
func (e *ReferenceEntry) ID() string {
	return fmt.Sprintf("ref-%s-%gK", e.comp.ReducedFormula(), e.temperature)
}

// IsElement reports whether the entry is a single element.
func (e *ReferenceEntry) IsElement() bool { return e.comp.IsElement() }

// Data returns the free-form metadata map, allocating on first use.
func (e *ReferenceEntry) Data() map[string]any {
	if e.data == nil {
		e.data = make(map[string]any)
	}
	return e.data
}
