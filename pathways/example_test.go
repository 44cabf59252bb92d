package pathways_test

import (
	"fmt"

	"github.com/solvate/rxnpath/chem"
	"github.com/solvate/rxnpath/pathways"
	"github.com/solvate/rxnpath/reactions"
)

// ExampleBalance balances a two-step synthesis of YMnO3 from the
// elements: first form Y2O3, then react it with Mn2O3.
func ExampleBalance() {
	step1 := mustRxn([]string{"Y", "O2", "Y2O3"}, []float64{-2, -1.5, 1})
	step2 := mustRxn([]string{"Y2O3", "Mn2O3", "YMnO3"}, []float64{-1, -1, 2})
	net := mustRxn([]string{"Y", "O2", "Mn2O3", "YMnO3"}, []float64{-2, -1.5, -1, 2})

	bp, err := pathways.Balance(
		[]pathways.Pathway{
			mustPath([]reactions.Reaction{step1}, []float64{0.4}),
			mustPath([]reactions.Reaction{step2}, []float64{0.6}),
		},
		net,
		pathways.DefaultBalanceOptions(),
	)
	if err != nil {
		fmt.Println("balance:", err)
		return
	}

	fmt.Println("balanced:", bp.Balanced())
	fmt.Printf("multiplicities: %.2f\n", bp.Coefficients())
	fmt.Printf("average cost: %.2f\n", bp.AverageCost())
	// Output:
	// balanced: true
	// multiplicities: [1.00 1.00]
	// average cost: 0.50
}

// ExampleBalancedPathway_ContainsInterdependentRxns finds a pair of
// reactions that feed each other MnO2 and O2, neither of which is a
// precursor, and nets them into one combined reaction.
func ExampleBalancedPathway_ContainsInterdependentRxns() {
	r1 := mustRxn([]string{"Y2O3", "MnO2", "YMnO3", "O2"}, []float64{-1, -2, 2, 0.5})
	r2 := mustRxn([]string{"Mn2O3", "O2", "MnO2"}, []float64{-1, -0.5, 2})

	bp, err := pathways.NewBalancedPathway(
		[]reactions.Reaction{r1, r2}, []float64{1, 1}, nil, true)
	if err != nil {
		fmt.Println("construct:", err)
		return
	}

	ok, combined, err := bp.ContainsInterdependentRxns(
		[]chem.Composition{chem.MustParse("Y2O3"), chem.MustParse("Mn2O3")},
		pathways.DefaultInterdependencyOptions(),
	)
	if err != nil {
		fmt.Println("search:", err)
		return
	}

	fmt.Println("interdependent:", ok)
	fmt.Println("combined:", combined.Key())
	// Output:
	// interdependent: true
	// combined: 0.5 Mn2O3 + 0.5 Y2O3 -> YMnO3
}
