// Package reactions provides the Reaction value type and
// stoichiometric balancing.
//
// What:
//
//   - Reaction pairs reduced compositions with signed coefficients:
//     negative for consumed species, positive for produced ones, so
//     that elemental mass balance reads Σ coeffᵢ·amountᵢ(el) = 0 for
//     every element.
//   - Balance solves the coefficients from the reactant/product split
//     alone, via the null space of the element-by-composition matrix.
//   - ComputedBalance additionally derives the reaction energy from
//     thermodynamic entries.
//
// Balancing outline:
//
//  1. Reduce and deduplicate the compositions; a species on both sides
//     is rejected (cancel it first).
//  2. Build M with one row per element and one column per composition,
//     M[i][j] = amount of element i in composition j.
//  3. A valid coefficient vector lies in the null space of M. Take the
//     right-singular vector of the smallest singular value (full SVD),
//     normalize so the first product has coefficient 1.
//  4. The Balanced flag is set only when the residual ‖M·x‖∞ is within
//     tolerance, the null space is one-dimensional, and every
//     coefficient lands on its expected side (reactants strictly
//     negative, products strictly positive).
//
// Balance failure is not an error: callers inspect Balanced(), matching
// the flag-not-exception policy used throughout this module. Errors are
// reserved for structurally invalid input.
//
// Equality:
//
//	Two reactions are Equal iff their normalized coefficient-by-
//	composition maps agree within 1e-6, independent of construction
//	order. Key renders the canonical form ("0.5 Y2O3 + 0.5 Mn2O3 ->
//	YMnO3") and doubles as the set-membership key.
//
// Errors:
//
//   - ErrEmptyReaction: a side has no species.
//   - ErrLengthMismatch: compositions and coefficients differ in length.
//   - ErrZeroCoefficient: an explicit coefficient is zero.
//   - ErrDuplicateComposition: one species listed twice.
//   - ErrSharedComposition: one species on both sides of Balance.
package reactions
