// Package core provides the ordered, thread-safe region map that every
// mapcolor algorithm consumes.
//
// A Map M = (R, N) is a sequence of regions R (kept in insertion order) and,
// for every region, an ordered list of declared neighbours N(r):
//
//   - Insertion order is significant: it is the order in which the coloring
//     search visits regions, so Regions() always reports regions in the order
//     they were first added (or first appeared in a decoded document).
//   - Neighbour lists are stored verbatim. The relation is NOT required to be
//     symmetric: a border declared on one side only constrains that side.
//   - Neighbours that are never declared as regions are legal; they simply
//     never receive a color. Undeclared() lists them for diagnostics.
//   - A single sync.RWMutex guards the catalog; readers receive copies and may
//     keep them without holding any lock.
//
// Why an ordered map instead of map[string][]string?
//
//   - Go maps randomize iteration order; the search order (and therefore the
//     recorded trace) would not be reproducible.
//   - JSON and YAML documents carry an order the caller chose; the codecs in
//     codec.go preserve it end to end.
//
// Core methods:
//
//	// Building
//	AddRegion(id string) error                    // O(1), idempotent
//	SetNeighbors(id string, nbs ...string) error  // O(d), replaces the list verbatim
//	AddNeighbor(id, nb string) error              // O(d), one-directional, de-duplicated
//	AddBorder(a, b string) error                  // O(d), symmetric
//	RemoveRegion(id string) error                 // O(V+E)
//
//	// Query
//	HasRegion(id string) bool                     // O(1)
//	Regions() []string                            // O(V), insertion order
//	Neighbors(id string) ([]string, error)        // O(d), declared order
//	Len() int                                     // O(1)
//	Snapshot() ([]string, map[string][]string)    // O(V+E), consistent copy
//	Symmetric() bool                              // O(V+E)
//	Undeclared() []string                         // O(V+E), sorted
//
//	// Codecs
//	ParseJSON / ParseYAML / MarshalJSON / MarshalYAML (order preserving)
//
// Errors:
//
//	ErrRegionNotFound - requested region does not exist.
//	ErrSelfBorder     - AddBorder(a, a).
//	ErrNotObject      - decoded document is not a mapping.
//	ErrNotList        - a region's neighbours are not a list of strings.
package core
