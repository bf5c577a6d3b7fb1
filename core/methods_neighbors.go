// SPDX-License-Identifier: MIT
//
// File: methods_neighbors.go
// Role: Neighbour lists (declared borders) and whole-map views.
//
// Determinism:
//   - Neighbour lists keep the caller's order, duplicates included for SetNeighbors.
//   - Undeclared() is sorted; Snapshot() follows insertion order.

package core

import (
	"fmt"
	"slices"
	"sort"
)

// SetNeighbors declares id (if missing) and replaces its neighbour list with a copy of nbs.
//
// Behavior highlights:
//   - Neighbours are NOT auto-declared as regions and no mirror entry is written.
//   - Self references are stored as given; they never conflict during a search
//     because a region is unassigned while its own validity is checked.
//
// Complexity: Time O(d), Space O(d).
func (m *Map) SetNeighbors(id string, nbs ...string) error {
	list := make([]string, len(nbs))
	copy(list, nbs)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.addRegionLocked(id)
	m.neighbors[id] = list

	return nil
}

// AddNeighbor appends nb to id's list unless already present (one-directional).
// id is declared if missing; nb is not.
// Complexity: O(d).
func (m *Map) AddNeighbor(id, nb string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.addRegionLocked(id)
	m.appendUniqueLocked(id, nb)

	return nil
}

// AddBorder declares a and b (if missing) and records each as the other's neighbour.
//
// Implementation:
//   - Stage 1: Reject a == b (ErrSelfBorder).
//   - Stage 2: Declare a then b, so a fresh pair keeps the order (a, b).
//   - Stage 3: Append the mirror entries, skipping duplicates.
//
// Complexity: O(d(a) + d(b)).
func (m *Map) AddBorder(a, b string) error {
	if a == b {
		return fmt.Errorf("AddBorder(%q): %w", a, ErrSelfBorder)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.addRegionLocked(a)
	m.addRegionLocked(b)
	m.appendUniqueLocked(a, b)
	m.appendUniqueLocked(b, a)

	return nil
}

// appendUniqueLocked appends nb to id's list if missing. Caller holds mu and id is declared.
func (m *Map) appendUniqueLocked(id, nb string) {
	if slices.Contains(m.neighbors[id], nb) {
		return
	}
	m.neighbors[id] = append(m.neighbors[id], nb)
}

// Neighbors returns a copy of the declared neighbour list of id.
// Complexity: Time O(d), Space O(d).
func (m *Map) Neighbors(id string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	nbs, ok := m.neighbors[id]
	if !ok {
		return nil, fmt.Errorf("Neighbors(%q): %w", id, ErrRegionNotFound)
	}
	out := make([]string, len(nbs))
	copy(out, nbs)

	return out, nil
}

// Snapshot returns a consistent copy of the whole map: the region order and the
// neighbour lists, taken under a single read lock.
// Complexity: Time O(V+E), Space O(V+E).
func (m *Map) Snapshot() ([]string, map[string][]string) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	order := make([]string, len(m.order))
	copy(order, m.order)

	adj := make(map[string][]string, len(m.neighbors))
	for _, id := range m.order {
		nbs := m.neighbors[id]
		list := make([]string, len(nbs))
		copy(list, nbs)
		adj[id] = list
	}

	return order, adj
}

// AdjacencyList returns region → neighbour list copies (map iteration order is not
// deterministic; use Regions() to walk it in order).
// Complexity: O(V+E).
func (m *Map) AdjacencyList() map[string][]string {
	_, adj := m.Snapshot()

	return adj
}

// Symmetric reports whether every declared border between two declared regions is
// declared on both sides. Neighbours that are not regions are ignored.
// Complexity: O(V + E·d).
func (m *Map) Symmetric() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, id := range m.order {
		for _, nb := range m.neighbors[id] {
			back, declared := m.neighbors[nb]
			if !declared || nb == id {
				continue
			}
			if !slices.Contains(back, id) {
				return false
			}
		}
	}

	return true
}

// Undeclared returns the sorted, de-duplicated neighbour IDs that are not regions.
// Such neighbours never receive a color.
// Complexity: O(V+E + U·log U).
func (m *Map) Undeclared() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	seen := make(map[string]struct{})
	for _, id := range m.order {
		for _, nb := range m.neighbors[id] {
			if _, declared := m.index[nb]; !declared {
				seen[nb] = struct{}{}
			}
		}
	}

	out := make([]string, 0, len(seen))
	for nb := range seen {
		out = append(out, nb)
	}
	sort.Strings(out)

	return out
}

// EdgeCount returns the total number of declared neighbour entries (directed count).
// Complexity: O(V).
func (m *Map) EdgeCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	n := 0
	for _, nbs := range m.neighbors {
		n += len(nbs)
	}

	return n
}

// Clone returns a deep copy preserving region order and neighbour lists.
// Complexity: O(V+E).
func (m *Map) Clone() *Map {
	order, adj := m.Snapshot()

	c := NewMap(WithCapacity(len(order)))
	for i, id := range order {
		c.order = append(c.order, id)
		c.index[id] = i
		c.neighbors[id] = adj[id]
	}

	return c
}
