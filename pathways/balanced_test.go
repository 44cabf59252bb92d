package pathways_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solvate/rxnpath/pathways"
	"github.com/solvate/rxnpath/reactions"
)

// TestBalance_TwoStep balances two single-reaction pathways against
// the overall synthesis from the elements.
func TestBalance_TwoStep(t *testing.T) {
	p1 := mustPath([]reactions.Reaction{formY2O3()}, []float64{0.4})
	p2 := mustPath([]reactions.Reaction{formYMnO3()}, []float64{0.6})

	bp, err := pathways.Balance(
		[]pathways.Pathway{p1, p2},
		netYMnO3FromElements(),
		pathways.DefaultBalanceOptions(),
	)
	require.NoError(t, err)

	require.True(t, bp.Balanced())
	coeffs := bp.Coefficients()
	require.Len(t, coeffs, 2)
	assert.InDelta(t, 1.0, coeffs[0], 1e-6)
	assert.InDelta(t, 1.0, coeffs[1], 1e-6)
	assert.InDelta(t, 0.5, bp.AverageCost(), 1e-6)
}

// TestBalance_MultiReactionPathway gives one candidate holding both
// steps; its single multiplicity fans out to every member reaction.
func TestBalance_MultiReactionPathway(t *testing.T) {
	p := mustPath([]reactions.Reaction{formY2O3(), formYMnO3()}, []float64{0.4, 0.6})

	bp, err := pathways.Balance(
		[]pathways.Pathway{p},
		netYMnO3FromElements(),
		pathways.BalanceOptions{},
	)
	require.NoError(t, err)

	require.True(t, bp.Balanced())
	coeffs := bp.Coefficients()
	require.Len(t, coeffs, 2)
	assert.InDelta(t, 1.0, coeffs[0], 1e-6)
	assert.InDelta(t, 1.0, coeffs[1], 1e-6)
	assert.Equal(t, 2, bp.Len())
}

// TestBalance_NegativeMultiplicity verifies a pathway that would have
// to run backwards is rejected through the flag.
func TestBalance_NegativeMultiplicity(t *testing.T) {
	reverse := mustRxn(
		[]string{"YMnO3", "Y2O3", "Mn2O3"},
		[]float64{-2, 1, 1},
	)
	p := mustPath([]reactions.Reaction{reverse}, nil)

	bp, err := pathways.Balance(
		[]pathways.Pathway{p},
		formYMnO3(),
		pathways.DefaultBalanceOptions(),
	)
	require.NoError(t, err)

	assert.False(t, bp.Balanced())
	require.Len(t, bp.Coefficients(), 1)
	assert.InDelta(t, -1.0, bp.Coefficients()[0], 1e-6)
}

// TestBalance_UnreproducedTarget verifies a least-squares solution that
// cannot reproduce the net stoichiometry is reported unbalanced even
// with non-negative multiplicities.
func TestBalance_UnreproducedTarget(t *testing.T) {
	p := mustPath([]reactions.Reaction{formYMnO3()}, nil)

	bp, err := pathways.Balance(
		[]pathways.Pathway{p},
		netYMnO3FromElements(),
		pathways.DefaultBalanceOptions(),
	)
	require.NoError(t, err)

	assert.False(t, bp.Balanced())
	require.Len(t, bp.Coefficients(), 1)
	assert.InDelta(t, 5.0/6, bp.Coefficients()[0], 1e-6)
	assert.Greater(t, bp.Coefficients()[0], 0.0)
}

// TestBalance_Validation covers the structural sentinels.
func TestBalance_Validation(t *testing.T) {
	_, err := pathways.Balance(nil, formYMnO3(), pathways.DefaultBalanceOptions())
	assert.ErrorIs(t, err, pathways.ErrNoPathways)

	_, err = pathways.Balance(
		[]pathways.Pathway{{}},
		formYMnO3(),
		pathways.DefaultBalanceOptions(),
	)
	assert.ErrorIs(t, err, pathways.ErrEmptyPathway)
}
