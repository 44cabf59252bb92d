// Package chem provides the Composition value type and chemical
// formula parsing.
//
// What:
//
//   - Composition maps element symbols to positive amounts and is
//     immutable once constructed.
//   - Parse turns a formula string ("YMnO3", "Ca(OH)2", "Li0.5CoO2")
//     into a Composition, with support for nested parentheses and
//     fractional counts.
//   - Reduced form divides all amounts by their greatest common
//     measure; ReducedFormula renders a canonical string with elements
//     in ascending Pauling electronegativity order (the conventional
//     way formulas are written: "YMnO3", not "MnO3Y") and unit counts
//     omitted.
//
// Why:
//
//   - Every higher layer (entries, reactions, pathways) keys its set
//     arithmetic on compositions; a single canonical representation
//     keeps those comparisons exact and deterministic.
//
// Identity contract:
//
//   - Two Compositions are Equal iff their reduced forms match within
//     1e-8 per element. Key() returns the reduced formula string and is
//     the map key used by every set operation in this module.
//
// Complexity:
//
//   - Parse: O(len(formula)).
//   - Reduced / ReducedFormula: O(k log k) for k distinct elements.
//
// Errors:
//
//   - ErrEmptyFormula: formula contains no elements.
//   - ErrParseFormula: malformed formula (dangling parenthesis, bad count).
//   - ErrUnknownElement: symbol not in the periodic table.
//   - ErrNonPositiveAmount: constructed amount ≤ 0.
package chem
