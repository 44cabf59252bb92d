// Package pathways balances multi-step reaction pathways against a net
// target reaction and detects interdependent reaction subsets.
//
// What:
//
//   - Pathway holds an ordered reaction sequence with per-reaction
//     costs and exposes the sorted union of its compositions.
//   - BalancedPathway extends Pathway with per-reaction multiplicities
//     and a balanced flag tying the pathway to a net reaction.
//   - Balance computes the multiplicities: it assembles the
//     composition-by-pathway coefficient matrix and solves the
//     least-squares system through the Moore-Penrose pseudoinverse
//     (gonum thin SVD). A pathway set is balanced only when every
//     multiplicity is non-negative within tolerance and the weighted
//     stoichiometries reproduce the net reaction componentwise.
//   - ContainsInterdependentRxns searches reaction subsets, ascending
//     in size and lexicographic by index, for groups whose members can
//     only run by feeding each other intermediates unavailable from
//     precursors or from reactions outside the group. A qualifying
//     subset is netted into a single combined reaction when its
//     remainder mass-balances.
//
// Failure surface:
//
//	Balancing failure is a state, not an error: negative multiplicities
//	and unreproduced stoichiometry both leave Balanced() false, and a
//	combined reaction that cannot balance leaves the interdependency
//	verdict true with a nil reaction. Errors are reserved for structural
//	misuse (empty inputs, mismatched slice lengths, oversized searches).
//
// Complexity:
//
//   - Balance: one thin SVD of a (#compositions x #pathways) matrix.
//   - ContainsInterdependentRxns: exponential, O(2^N) subset checks
//     over N distinct reactions; N is capped by
//     InterdependencyOptions.MaxSubsetSize.
//
// Errors:
//
//   - ErrEmptyPathway: a pathway with no reactions.
//   - ErrNoPathways: balancing with zero candidates.
//   - ErrCostMismatch, ErrCoeffMismatch: slice length disagreements.
//   - ErrTooManyReactions: interdependency search over the ceiling.
package pathways
