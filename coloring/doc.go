// Package coloring implements exhaustive map coloring by depth-first search with
// chronological backtracking on a core.Map, recording every trial and every undo
// so the search can be replayed step by step.
//
// What:
//
//   - Solve(m, k): visits regions in the map's insertion order and tries colors
//     1..k in ascending order at each region. A color is accepted when no declared
//     neighbour of the region already holds it; the search then advances to the
//     next region. When a later region runs out of colors the current region's
//     color is undone and the next color is tried. Supports:
//   - Cancellation via context.Context
//   - A step budget (WithMaxSteps) bounding the trace length
//   - A per-step hook (WithOnStep) for live animation
//   - IsValid: the pure conflict check used by the search.
//   - Verify: an independent check of a finished assignment against every
//     declared border.
//
// Why:
//
//   - Teach and visualize backtracking: the trace is a log of the whole explored
//     search tree, dead ends included, not just the winning path.
//   - Deterministic output: the same map and palette always produce the same
//     assignment and the same trace, byte for byte.
//
// Trace semantics:
//
//   - Every color trial appends Step{Region, Color, Accepted: false} before its
//     validity is known; when the color is valid that same entry is flipped to
//     Accepted = true (the only retroactive edit).
//   - Every undo appends Step{Region, Color: NoColor, Undo: true}.
//   - Rejected trials get no undo entry; the failed trial is the whole record.
//
// Asymmetric maps:
//
//   - Only the current region's declared list is consulted. A border declared on
//     one side only constrains the region that declares it, and only against
//     neighbours colored before it. Results on such maps may fail Verify, which
//     checks every declared border regardless of search order.
//
// Complexity:
//
//   - Time:   O(k^n · d) worst case for n regions, k colors, max degree d.
//   - Memory: O(n) for the explicit frame stack and assignment, plus O(T) for a
//     trace of T steps.
//
// The search keeps its frames on an explicit stack, so the depth of the map does
// not grow the goroutine stack.
//
// Errors:
//
//   - ErrMapNil           m is nil
//   - ErrStepLimit        the trace would exceed WithMaxSteps
//   - context.Canceled / context.DeadlineExceeded from WithContext
//   - hook errors         propagated from WithOnStep
//   - ErrUncolored, ErrConflict, ErrColorOutOfRange from Verify
package coloring
