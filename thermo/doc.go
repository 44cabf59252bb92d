// Package thermo builds convex-hull phase diagrams over thermodynamic
// entries and answers stability queries.
//
// What:
//
//   - PhaseDiagram wraps a list of entries spanning a chemical system
//     and exposes hull energies, energy-above-hull, formation energies,
//     elemental reference entries, and the stable entry subset.
//   - ExpandPD decomposes a large entry list into maximal chemical
//     subsystems and builds one PhaseDiagram per subsystem, since
//     direct hull construction loses numerical stability in
//     high-dimensional systems.
//
// How:
//
//	The hull energy at a composition is the minimum mixture energy over
//	all non-negative combinations of entries that reproduce the target
//	atomic fractions. That is a linear program:
//
//	  minimize    Σ λᵢ·Eᵢ
//	  subject to  Σ λᵢ·fᵢ(el) = f(el)  for every element el
//	              λᵢ ≥ 0
//
//	with Eᵢ the per-atom entry energies and fᵢ the per-atom elemental
//	fractions. Solved with gonum's Simplex (optimize/convex/lp).
//	Energy-above-hull of a member entry is its per-atom energy minus
//	the hull energy at its own composition; values within HullEps of
//	zero are clamped to exactly zero.
//
// Determinism:
//
//   - Elements, entries, and subsystem keys are always sorted; the
//     ExpandPD result is keyed by the dash-joined sorted chemsys
//     ("Mn-O-Y") and accompanied by a sorted key list.
//
// Complexity:
//
//   - NewPhaseDiagram: O(n·k) for n entries over k elements.
//   - HullEnergyPerAtom: one (k+1)-constraint LP over n variables.
//   - ExpandPD: O(n²·k) subsystem assignment + per-subsystem builds.
//
// Errors:
//
//   - ErrNoEntries: empty entry list.
//   - ErrMissingElementRef: an element of the system has no elemental entry.
//   - ErrOutOfChemsys: queried composition outside the diagram's system.
//   - ErrInfeasible: the LP solver failed to produce a hull energy.
package thermo
