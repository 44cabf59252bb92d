package thermo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solvate/rxnpath/chem"
	"github.com/solvate/rxnpath/thermo"
)

// hullEntry is a minimal thermo.Entry fixture carrying an energy per
// atom directly.
type hullEntry struct {
	comp chem.Composition
	epa  float64
	id   string
}

func (e hullEntry) Composition() chem.Composition { return e.comp }
func (e hullEntry) Energy() float64               { return e.epa * e.comp.NumAtoms() }
func (e hullEntry) EnergyPerAtom() float64        { return e.epa }
func (e hullEntry) ID() string                    { return e.id }
func (e hullEntry) IsElement() bool               { return e.comp.IsElement() }

func entry(formula string, epa float64) hullEntry {
	return hullEntry{comp: chem.MustParse(formula), epa: epa, id: formula}
}

// ymoEntries builds a small Y-Mn-O fixture system. Energies are
// formation energies per atom (elements at zero), so hull math can be
// checked by hand.
func ymoEntries() []thermo.Entry {
	return []thermo.Entry{
		entry("Y", 0),
		entry("Mn", 0),
		entry("O2", 0),
		entry("Y2O3", -3.8),
		entry("Mn2O3", -2.9),
		entry("MnO2", -2.6),
		entry("YMnO3", -3.5),
	}
}

// TestNewPhaseDiagram_Validation covers the constructor sentinels.
func TestNewPhaseDiagram_Validation(t *testing.T) {
	_, err := thermo.NewPhaseDiagram(nil)
	assert.ErrorIs(t, err, thermo.ErrNoEntries)

	_, err = thermo.NewPhaseDiagram([]thermo.Entry{entry("Y2O3", -3.8)})
	assert.ErrorIs(t, err, thermo.ErrMissingElementRef, "no elemental references present")
}

// TestPhaseDiagram_ElementsAndRefs checks the chemical system and the
// lowest-energy elemental reference selection.
func TestPhaseDiagram_ElementsAndRefs(t *testing.T) {
	ents := append(ymoEntries(), entry("O", 0.5)) // higher-energy O polymorph must lose
	pd, err := thermo.NewPhaseDiagram(ents)
	require.NoError(t, err)

	assert.Equal(t, []string{"Mn", "O", "Y"}, pd.Elements())
	assert.Equal(t, "Mn-O-Y", pd.Chemsys())

	refs := pd.ElRefs()
	require.Contains(t, refs, "O")
	assert.Equal(t, 0.0, refs["O"].EnergyPerAtom(), "O2 at 0 eV/atom beats O at 0.5")
	assert.Len(t, pd.AllEntries(), len(ents))
}

// TestPhaseDiagram_HullEnergy verifies hull energies against hand
// computation: without YMnO3, the hull at its composition is the
// 0.5 Y2O3 + 0.5 Mn2O3 mixture at -3.35 eV/atom.
func TestPhaseDiagram_HullEnergy(t *testing.T) {
	withoutTernary := []thermo.Entry{
		entry("Y", 0), entry("Mn", 0), entry("O2", 0),
		entry("Y2O3", -3.8), entry("Mn2O3", -2.9),
	}
	pd, err := thermo.NewPhaseDiagram(withoutTernary)
	require.NoError(t, err)

	perAtom, err := pd.HullEnergyPerAtom(chem.MustParse("YMnO3"))
	require.NoError(t, err)
	assert.InDelta(t, -3.35, perAtom, 1e-8)

	total, err := pd.HullEnergy(chem.MustParse("YMnO3"))
	require.NoError(t, err)
	assert.InDelta(t, -16.75, total, 1e-7, "5 atoms at -3.35 eV/atom")

	// With the ternary present the hull at that composition is the entry itself.
	full, err := thermo.NewPhaseDiagram(ymoEntries())
	require.NoError(t, err)
	perAtom, err = full.HullEnergyPerAtom(chem.MustParse("YMnO3"))
	require.NoError(t, err)
	assert.InDelta(t, -3.5, perAtom, 1e-8)
}

// TestPhaseDiagram_EAboveHull checks clamping for stable members and a
// positive value for a metastable polymorph.
func TestPhaseDiagram_EAboveHull(t *testing.T) {
	poly := entry("YMnO3", -3.3)
	poly.id = "YMnO3-polymorph"
	pd, err := thermo.NewPhaseDiagram(append(ymoEntries(), poly))
	require.NoError(t, err)

	eah, err := pd.EAboveHull(entry("Y2O3", -3.8))
	require.NoError(t, err)
	assert.Equal(t, 0.0, eah, "stable entry sits exactly on the hull")

	eah, err = pd.EAboveHull(poly)
	require.NoError(t, err)
	assert.InDelta(t, 0.2, eah, 1e-8, "polymorph 0.2 eV/atom above the ground state")
}

// TestPhaseDiagram_FormationEnergy verifies referencing against the
// elemental entries.
func TestPhaseDiagram_FormationEnergy(t *testing.T) {
	pd, err := thermo.NewPhaseDiagram(ymoEntries())
	require.NoError(t, err)

	fe, err := pd.FormationEnergyPerAtom(entry("Y2O3", -3.8))
	require.NoError(t, err)
	assert.InDelta(t, -3.8, fe, 1e-12, "elements at zero: formation equals raw energy")

	fe, err = pd.FormationEnergyPerAtom(entry("O2", 0))
	require.NoError(t, err)
	assert.InDelta(t, 0, fe, 1e-12)
}

// TestPhaseDiagram_StableEntries checks that only on-hull entries
// survive.
func TestPhaseDiagram_StableEntries(t *testing.T) {
	poly := entry("YMnO3", -3.3)
	poly.id = "YMnO3-polymorph"
	pd, err := thermo.NewPhaseDiagram(append(ymoEntries(), poly))
	require.NoError(t, err)

	stable, err := pd.StableEntries()
	require.NoError(t, err)

	ids := make([]string, 0, len(stable))
	for _, e := range stable {
		ids = append(ids, e.ID())
	}
	assert.Contains(t, ids, "YMnO3")
	assert.Contains(t, ids, "Y2O3")
	assert.NotContains(t, ids, "YMnO3-polymorph")
}

// TestPhaseDiagram_OutOfChemsys confirms queries outside the system fail.
func TestPhaseDiagram_OutOfChemsys(t *testing.T) {
	pd, err := thermo.NewPhaseDiagram(ymoEntries())
	require.NoError(t, err)

	_, err = pd.HullEnergyPerAtom(chem.MustParse("NaCl"))
	assert.ErrorIs(t, err, thermo.ErrOutOfChemsys)

	_, err = pd.FormationEnergyPerAtom(entry("NaCl", -2))
	assert.ErrorIs(t, err, thermo.ErrOutOfChemsys)
}
