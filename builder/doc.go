// Package builder generates deterministic political-map fixtures for the
// coloring engine: classic topologies whose chromatic numbers are known, plus
// seeded random maps.
//
// Components:
//
//   - BuildMap(mopts, bopts, cons...): creates a core.Map and applies
//     constructors in order. Lookup(Params) resolves a textual kind
//     ("cycle", "wheel", "platonic", ...) for the CLI, HTTP and MCP front-ends.
//   - Constructors: Cycle, Path, Star, Wheel, Complete, CompleteBipartite,
//     Grid, PlatonicSolid, RandomSparse, RandomRegular, and Painting, which
//     reads a character drawing (one rune per cell) as a map.
//   - Region ID schemes (IDFn): DefaultIDFn, SymbolIDFn, ExcelColumnIDFn,
//     PrefixIDFn.
//   - Options: WithIDScheme, WithSeed, WithRand, WithPartitionPrefix,
//     WithOneSidedBorders.
//
// Guarantees:
//
//   - Region order is the construction order, which is also the solver's
//     search order; equal inputs and seeds give byte-identical maps.
//   - Borders are recorded on both sides unless WithOneSidedBorders is set.
//   - Option constructors panic on nonsense (WithRand(nil)); constructors
//     return sentinel errors and never panic.
//
// Known chromatic numbers (useful in tests):
//
//	Path, Grid, even Cycle, Star, CompleteBipartite   2
//	odd Cycle, Wheel with even rim                     3
//	Wheel with odd rim, Tetrahedron, Icosahedron       4
//	Complete(n)                                        n
package builder
