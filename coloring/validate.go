package coloring

import (
	"fmt"

	"github.com/katalvlaran/mapcolor/core"
)

// IsValid reports whether region may take color c given the partial assignment a:
// false iff one of region's declared neighbours in m already holds c.
// A region without declared neighbours (or absent from m, or m == nil) is always valid.
// IsValid is pure: it reads a and m and mutates neither.
// Complexity: O(d) for d declared neighbours.
func IsValid(region string, c Color, a Assignment, m *core.Map) bool {
	if m == nil {
		return true
	}
	nbs, err := m.Neighbors(region)
	if err != nil {
		return true
	}

	return noConflict(nbs, c, a)
}

// isValid is IsValid over a snapshot adjacency (no locking, no copies).
func isValid(region string, c Color, a Assignment, adj map[string][]string) bool {
	return noConflict(adj[region], c, a)
}

func noConflict(nbs []string, c Color, a Assignment) bool {
	for _, nb := range nbs {
		if got, ok := a[nb]; ok && got == c {
			return false
		}
	}

	return true
}

// Verify checks a finished assignment against m and a palette of numColors colors:
// every region of m is colored (ErrUncolored), every color is in 1..numColors
// (ErrColorOutOfRange) and no declared border joins two regions of the same color
// (ErrConflict). Self references are ignored. Borders are checked in both search
// directions, so results on asymmetric maps may be rejected.
// Complexity: O(V+E).
func Verify(m *core.Map, a Assignment, numColors int) error {
	if m == nil {
		return ErrMapNil
	}

	order, adj := m.Snapshot()
	for _, r := range order {
		c, ok := a[r]
		if !ok {
			return fmt.Errorf("%w: %q", ErrUncolored, r)
		}
		if c < 1 || int(c) > numColors {
			return fmt.Errorf("%w: %q has %d, palette 1..%d", ErrColorOutOfRange, r, c, numColors)
		}
		for _, nb := range adj[r] {
			if nb == r {
				continue
			}
			if got, ok := a[nb]; ok && got == c {
				return fmt.Errorf("%w: %q and %q are both %d", ErrConflict, r, nb, c)
			}
		}
	}

	return nil
}

// Palette returns the colors 1..numColors in trial order (empty for numColors <= 0).
func Palette(numColors int) []Color {
	if numColors <= 0 {
		return []Color{}
	}
	out := make([]Color, numColors)
	for i := range out {
		out[i] = Color(i + 1)
	}

	return out
}

// Summarize recomputes Stats for an arbitrary trace (MaxDepth excluded: it is a
// property of the search, not of the trace).
func Summarize(trace []Step) Stats {
	var st Stats
	for _, s := range trace {
		switch {
		case s.Undo:
			st.Undos++
		case s.Accepted:
			st.Trials++
			st.Accepted++
		default:
			st.Trials++
		}
	}

	return st
}
