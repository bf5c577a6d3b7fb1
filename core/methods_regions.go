// SPDX-License-Identifier: MIT
//
// File: methods_regions.go
// Role: Region lifecycle & queries.
//
// Determinism:
//   - Regions() returns IDs in insertion order; RemoveRegion keeps the relative
//     order of the remaining regions.

package core

import "fmt"

// AddRegion inserts a region with an empty neighbour list if missing (idempotent).
// IDs are opaque: any string, the empty one included, names a region.
// Complexity: Time O(1) amortized, Space O(1) amortized.
func (m *Map) AddRegion(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.addRegionLocked(id)

	return nil
}

// addRegionLocked registers id at the end of the order. Caller holds mu.
func (m *Map) addRegionLocked(id string) {
	m.lazyInit()
	if _, exists := m.index[id]; exists {
		return // keep first position
	}
	m.index[id] = len(m.order)
	m.order = append(m.order, id)
	m.neighbors[id] = []string{}
}

// HasRegion reports whether id was declared as a region.
// Complexity: O(1).
func (m *Map) HasRegion(id string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.index[id]

	return ok
}

// Regions returns a copy of the region IDs in insertion order.
// Complexity: Time O(V), Space O(V).
func (m *Map) Regions() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]string, len(m.order))
	copy(out, m.order)

	return out
}

// Len returns the number of declared regions.
// Complexity: O(1).
func (m *Map) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.order)
}

// RemoveRegion deletes a region and every reference to it from other neighbour lists.
//
// Implementation:
//   - Stage 1: Locate the region (ErrRegionNotFound).
//   - Stage 2: Cut it out of order and re-index the tail.
//   - Stage 3: Filter the ID out of every remaining neighbour list.
//
// Complexity: Time O(V+E), Space O(1) extra.
func (m *Map) RemoveRegion(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	pos, ok := m.index[id]
	if !ok {
		return fmt.Errorf("RemoveRegion(%q): %w", id, ErrRegionNotFound)
	}

	// Stage 2: splice and re-index the shifted tail.
	m.order = append(m.order[:pos], m.order[pos+1:]...)
	delete(m.index, id)
	delete(m.neighbors, id)
	for i := pos; i < len(m.order); i++ {
		m.index[m.order[i]] = i
	}

	// Stage 3: drop dangling references in place.
	for r, nbs := range m.neighbors {
		kept := nbs[:0]
		for _, nb := range nbs {
			if nb != id {
				kept = append(kept, nb)
			}
		}
		m.neighbors[r] = kept
	}

	return nil
}

// Clear removes every region while keeping the allocated Map usable.
// Complexity: O(1).
func (m *Map) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.order = nil
	m.index = make(map[string]int)
	m.neighbors = make(map[string][]string)
}
