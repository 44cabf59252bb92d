package entries_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solvate/rxnpath/chem"
	"github.com/solvate/rxnpath/entries"
)

// gibbs builds a 300 K entry from an energy per atom.
func gibbs(formula string, epa float64, id string) *entries.GibbsEntry {
	return entries.NewGibbsEntryPerAtom(chem.MustParse(formula), epa, 300, id)
}

// ymoSet is the shared Y-Mn-O fixture: elemental references at zero,
// formation energies per atom for the compounds, and one metastable
// YMnO3 polymorph 0.2 eV/atom above the ground state.
func ymoSet() *entries.Set {
	return entries.NewSet(
		gibbs("Y", 0, "mp-Y"),
		gibbs("Mn", 0, "mp-Mn"),
		gibbs("O2", 0, "mp-O2"),
		gibbs("Y2O3", -3.8, "mp-Y2O3"),
		gibbs("Mn2O3", -2.9, "mp-Mn2O3"),
		gibbs("MnO2", -2.6, "mp-MnO2"),
		gibbs("YMnO3", -3.5, "mp-YMnO3"),
		gibbs("YMnO3", -3.3, "mp-YMnO3-poly"),
	)
}

// TestSet_DedupAndPolymorphs verifies the identity contract: exact
// duplicates collapse, polymorphs and different temperatures coexist.
func TestSet_DedupAndPolymorphs(t *testing.T) {
	a := gibbs("Y2O3", -3.8, "mp-Y2O3")
	dup := gibbs("Y2O3", -3.8, "mp-Y2O3")
	poly := gibbs("Y2O3", -3.6, "mp-Y2O3-poly")
	hot := entries.NewGibbsEntryPerAtom(chem.MustParse("Y2O3"), -3.8, 600, "mp-Y2O3")

	s := entries.NewSet(a, dup, poly, hot)
	assert.Equal(t, 3, s.Len(), "duplicate collapses; polymorph and hot entry coexist")
	assert.True(t, s.Contains(a))
	assert.True(t, s.Contains(dup), "membership is by identity key, not pointer")

	s.Discard(poly)
	assert.Equal(t, 2, s.Len())
	assert.False(t, s.Contains(poly))
}

// TestSet_ChemsysAndList checks derived chemsys and deterministic
// ordering.
func TestSet_ChemsysAndList(t *testing.T) {
	s := ymoSet()
	assert.Equal(t, []string{"Mn", "O", "Y"}, s.Chemsys())

	list := s.List()
	require.Len(t, list, 8)
	for i := 1; i < len(list); i++ {
		assert.LessOrEqual(t,
			list[i-1].Composition().ReducedFormula(),
			list[i].Composition().ReducedFormula(),
			"List is sorted by reduced formula")
	}
}

// TestSet_BuildIndices verifies ordinals land in entry data and track
// List order.
func TestSet_BuildIndices(t *testing.T) {
	s := ymoSet()
	s.BuildIndices()
	for idx, e := range s.List() {
		assert.Equal(t, idx, e.Data()["idx"])
	}
}

// TestSet_Copy verifies copies are independent collections over shared
// entries.
func TestSet_Copy(t *testing.T) {
	s := ymoSet()
	c := s.Copy()
	c.Discard(c.List()[0])
	assert.Equal(t, s.Len()-1, c.Len())
	assert.Equal(t, 8, s.Len(), "original untouched")
}

// TestSet_SubsetInChemsys covers both the happy path and the
// ErrNotSubset sentinel.
func TestSet_SubsetInChemsys(t *testing.T) {
	s := ymoSet()

	sub, err := s.SubsetInChemsys([]string{"Mn", "O"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Mn", "O"}, sub.Chemsys())
	assert.Equal(t, 4, sub.Len(), "Mn, O2, Mn2O3, MnO2")

	_, err = s.SubsetInChemsys([]string{"Na", "Cl"})
	assert.ErrorIs(t, err, entries.ErrNotSubset)
}

// TestSet_FilterByStability_Strict checks the zero-cutoff filter keeps
// one stable entry per formula and drops the polymorph.
func TestSet_FilterByStability_Strict(t *testing.T) {
	s := ymoSet()

	stable, err := s.FilterByStability(0.0, false)
	require.NoError(t, err)
	assert.Equal(t, 7, stable.Len(), "polymorph dropped, everything else on the hull")

	e, err := stable.MinEntryByFormula("YMnO3")
	require.NoError(t, err)
	assert.Equal(t, "mp-YMnO3", e.ID(), "ground state survives")
}

// TestSet_FilterByStability_Polymorphs checks the cutoff and polymorph
// switches together.
func TestSet_FilterByStability_Polymorphs(t *testing.T) {
	s := ymoSet()

	with, err := s.FilterByStability(0.25, true)
	require.NoError(t, err)
	assert.Equal(t, 8, with.Len(), "0.2 eV/atom polymorph inside the 0.25 cutoff")

	without, err := s.FilterByStability(0.25, false)
	require.NoError(t, err)
	assert.Equal(t, 7, without.Len(), "polymorph collapsed onto the ground state")
}

// TestSet_FilterByStability_Idempotent verifies filtering a filtered
// set is a no-op.
func TestSet_FilterByStability_Idempotent(t *testing.T) {
	s := ymoSet()

	once, err := s.FilterByStability(0.0, false)
	require.NoError(t, err)
	twice, err := once.FilterByStability(0.0, false)
	require.NoError(t, err)

	assert.Equal(t, once.Len(), twice.Len())
	for _, e := range once.List() {
		assert.True(t, twice.Contains(e))
	}
}

// TestSet_MinEntryByFormula covers lookup and the not-found sentinel.
func TestSet_MinEntryByFormula(t *testing.T) {
	s := ymoSet()

	e, err := s.MinEntryByFormula("YMnO3")
	require.NoError(t, err)
	assert.Equal(t, "mp-YMnO3", e.ID(), "lowest energy per atom wins")

	e, err = s.MinEntryByFormula("Y2Mn2O6")
	require.NoError(t, err)
	assert.Equal(t, "mp-YMnO3", e.ID(), "lookup matches by reduced composition")

	_, err = s.MinEntryByFormula("Y2Mn2O7")
	assert.ErrorIs(t, err, entries.ErrNoEntry)
}

// TestSet_InterpolatedEntry verifies hull interpolation stays strictly
// metastable.
func TestSet_InterpolatedEntry(t *testing.T) {
	s := entries.NewSet(
		gibbs("Y", 0, "mp-Y"),
		gibbs("Mn", 0, "mp-Mn"),
		gibbs("O2", 0, "mp-O2"),
		gibbs("Y2O3", -3.8, "mp-Y2O3"),
		gibbs("Mn2O3", -2.9, "mp-Mn2O3"),
	)

	e, err := s.InterpolatedEntry("YMnO3", 1e-4)
	require.NoError(t, err)
	assert.Equal(t, entries.InterpolatedID, e.ID())
	assert.InDelta(t, -16.75+1e-4, e.Energy(), 1e-8,
		"0.5 Y2O3 + 0.5 Mn2O3 hull energy plus padding")
	assert.Equal(t, true, e.Data()["interpolated"])

	_, err = s.InterpolatedEntry("NaCl", 1e-4)
	assert.ErrorIs(t, err, entries.ErrNotSubset)
}

// TestSet_StabilizeEntry verifies the correction lands the entry just
// below the hull and that on-hull entries pass through unchanged.
func TestSet_StabilizeEntry(t *testing.T) {
	s := ymoSet()

	poly, err := s.MinEntryByFormula("YMnO3")
	require.NoError(t, err)
	same, err := s.StabilizeEntry(poly, 1e-3)
	require.NoError(t, err)
	assert.Equal(t, poly.Energy(), same.Energy(), "on-hull entry unchanged")

	meta := gibbs("YMnO3", -3.3, "mp-YMnO3-poly")
	stabilized, err := s.StabilizeEntry(meta, 1e-3)
	require.NoError(t, err)
	// 0.2 eV/atom above hull, 5 atoms: correction -1.0 eV minus padding.
	assert.InDelta(t, meta.Energy()-1.0-1e-3, stabilized.Energy(), 1e-8)

	g, ok := stabilized.(*entries.GibbsEntry)
	require.True(t, ok)
	require.Len(t, g.Adjustments(), 1)
	assert.Equal(t, "stabilization adjustment", g.Adjustments()[0].Name)
}

// TestSet_InitializeEntry covers lookup with interpolation fallback.
func TestSet_InitializeEntry(t *testing.T) {
	s := ymoSet()

	e, err := s.InitializeEntry("Y2O3", false)
	require.NoError(t, err)
	assert.Equal(t, "mp-Y2O3", e.ID())

	e, err = s.InitializeEntry("Y4MnO7", false)
	require.NoError(t, err)
	assert.Equal(t, entries.InterpolatedID, e.ID(), "absent formula falls back to interpolation")
}
