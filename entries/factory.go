package entries

import (
	"github.com/solvate/rxnpath/refdata"
	"github.com/solvate/rxnpath/thermo"
)

// FromPhaseDiagram builds a Set from a phase diagram's members at the
// given temperature. Entry energies become formation energies per
// reduced formula unit referenced to the diagram's elemental entries.
//
// When refs is non-nil, compounds with tabulated data additionally get
// one experimental ReferenceEntry per formula; tabulated data at an
// incompatible temperature falls back to the computed entry alone.
// Elemental entries other than the reference entry are skipped.
func FromPhaseDiagram(pd *thermo.PhaseDiagram, temperature float64, refs *refdata.Table) (*Set, error) {
	out := NewSet()
	elRefs := pd.ElRefs()
	seenRef := map[string]bool{}

	for _, te := range pd.AllEntries() {
		comp := te.Composition()
		if comp.IsElement() && !sameEntry(elRefs[comp.Elements()[0]], te) {
			continue
		}

		formula := comp.ReducedFormula()
		if refs.Has(formula) && !seenRef[formula] {
			if re, err := refdata.NewReferenceEntry(refs, comp.Reduced(), temperature); err == nil {
				out.Add(re)
				seenRef[formula] = true
			}
		}

		fe, err := pd.FormationEnergyPerAtom(te)
		if err != nil {
			return nil, err
		}
		out.Add(NewGibbsEntryPerAtom(comp.Reduced(), fe, temperature, te.ID()))
	}
	return out, nil
}

// sameEntry matches entries by source identity and energy, avoiding
// direct interface comparison of arbitrary concrete types.
func sameEntry(a, b thermo.Entry) bool {
	if a == nil || b == nil {
		return false
	}
	return a.ID() == b.ID() && a.EnergyPerAtom() == b.EnergyPerAtom()
}
