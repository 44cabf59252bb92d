// Package refdata provides experimental Gibbs free-energy reference
// tables and entries backed by them.
//
// What:
//
//   - Table maps a reduced formula to tabulated Gibbs formation
//     energies (eV per reduced formula unit) at discrete temperatures.
//   - LoadTable reads a table from JSON once; the result is immutable
//     and injected wherever it is needed. There is no ambient global
//     table and no import-time loading.
//   - ReferenceEntry is a thermodynamic entry whose energy comes from a
//     Table, linearly interpolated between the two nearest tabulated
//     temperatures.
//
// JSON shape:
//
//	{
//	  "ClNa": {"300": -3.98, "400": -3.89},
//	  "CO2":  {"300": -4.09, "400": -4.11}
//	}
//
// Formula keys are canonicalized on load, so "NaCl" and "ClNa" address
// the same row.
//
// Errors:
//
//   - ErrBadTable: malformed JSON or non-numeric temperature key.
//   - ErrNoReference: formula absent from the table.
//   - ErrOutOfRange: requested temperature outside the tabulated span.
package refdata
