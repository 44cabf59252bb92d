// Package entries manages deduplicated collections of thermodynamic
// entries with stability filtering, formula lookup, interpolation, and
// stabilization.
//
// What:
//
//   - Entry is the capability surface every entry variant implements:
//     composition, total energy (adjustments applied), energy per atom,
//     temperature, identity, and a free-form metadata map.
//   - GibbsEntry is the computed variant: base energy plus an additive
//     Adjustment list.
//   - Set is a deduplicated entry collection keyed by an explicit
//     identity contract, with chemical-subsystem filtering, hull-based
//     stability filtering, lookup, interpolation, and stabilization.
//
// Identity contract:
//
//	Two entries are the same Set member iff Key(e) matches:
//	ID | reduced formula | temperature | energy rounded to 1e-6 eV.
//	Polymorphs (same formula, different ID or energy) coexist, as do
//	temperature-dependent entries of one compound at different
//	temperatures. Floating energies are rounded before keying so the
//	contract survives serialization round-trips.
//
// Mutation and derived state:
//
//	Sets mutate only via Add, Discard, and Update. BuildIndices writes
//	each entry's ordinal into its Data map and must be re-run after
//	mutation if consumers rely on the ordinal.
//
// Errors:
//
//   - ErrNotSubset: requested chemical system exceeds the set's chemsys.
//   - ErrNoEntry: no entry matches the requested formula.
//   - ErrEmptySet: operation requires a non-empty set.
package entries
