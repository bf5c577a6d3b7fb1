// Package mapcolor colors political maps so that no two bordering regions
// share a color, by depth-first search with chronological backtracking, and
// records every trial and every undo so the search can be replayed.
//
// 🚀 What is mapcolor?
//
//	A small, deterministic toolkit around one classic algorithm:
//		• Ordered maps: regions keep their declaration order, which is the search order
//		• Coloring engine: exhaustive backtracking with a full step trace
//		• Replay: board state at any step, forwards and backwards, with explanations
//		• Fixtures: cycles, wheels, grids, Platonic solids, seeded random maps
//		• Front-ends: CLI, HTTP API (resolver_coloreo wire format), MCP tools
//
// ✨ Guarantees
//
//   - Deterministic – same map, same palette size ⇒ byte-identical trace
//   - Complete – on symmetric maps, "no solution" means none exists
//   - Literal – only each region's own neighbour list is consulted
//   - Reentrant – no state survives a call; concurrent solves are safe
//
// Packages:
//
//	core/      — ordered region map, thread-safe building, JSON/YAML codecs
//	coloring/  — Solve, IsValid, Verify, trace types and options
//	replay/    — Player, StateAt, Explain, palette
//	builder/   — map fixtures with known chromatic numbers
//	internal/  — config, logging, metrics, HTTP and MCP transports, rendering
//	cmd/mapcolor — the command-line entry point
//
// Quick ASCII example:
//
//	    A───B
//	    │   │
//	    D───C
//
//	a square needs two colors: A=1 B=2 C=1 D=2.
//
//	go install github.com/katalvlaran/mapcolor/cmd/mapcolor@latest
package mapcolor
