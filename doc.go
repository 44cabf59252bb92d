// Package rxnpath is an in-memory toolkit for inorganic synthesis
// planning: thermodynamic entry management, reaction balancing, and
// reaction-pathway analysis.
//
// 🚀 What is rxnpath?
//
//	A pure-Go library that brings together:
//		• Composition algebra: formula parsing, reduction, canonical keys
//		• Entry management: deduplicated Gibbs entry sets per chemical system
//		• Phase diagrams: convex-hull stability via linear programming
//		• Reference data: experimental Gibbs energy tables with interpolation
//		• Reaction balancing: stoichiometry from null-space linear algebra
//		• Pathway analysis: multiplicity balancing against a net reaction,
//		  interdependent-subset detection
//
// ✨ Why choose rxnpath?
//
//   - Deterministic – sorted orderings and canonical keys everywhere
//   - Explicit failure surface – balancing failures are flags, misuse is errors
//   - Pure Go – numerical heavy lifting through gonum, no cgo
//
// Everything is organized under six subpackages:
//
//	chem/      — elements, compositions, formula parsing
//	entries/   — Gibbs entries and mutable entry sets
//	refdata/   — experimental reference energy tables
//	thermo/    — phase diagrams and hull stability
//	reactions/ — balanced chemical reactions
//	pathways/  — pathway balancing and interdependency detection
//
// Quick example, the two-reaction synthesis of YMnO3:
//
//	Y2O3 + Mn2O3 ──► 2 YMnO3
//
// balance it, attach energies from a GibbsEntrySet, and probe the
// pathway for interdependent reaction groups.
//
// See each subpackage's doc.go for algorithms, complexity, and errors.
//
//	go get github.com/solvate/rxnpath
package rxnpath
