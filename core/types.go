// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Map type, options, sentinel errors and the NewMap constructor.
// Concurrency:
//   - mu guards order, index and neighbors; every exported method takes it.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core map operations.
var (
	// ErrRegionNotFound indicates an operation referenced a region that was never added.
	ErrRegionNotFound = errors.New("core: region not found")

	// ErrSelfBorder indicates AddBorder was asked to join a region with itself.
	ErrSelfBorder = errors.New("core: region cannot border itself")

	// ErrNotObject indicates a decoded adjacency document is not a mapping.
	ErrNotObject = errors.New("core: adjacency document is not an object")

	// ErrNotList indicates a region's neighbours are not a list of strings.
	ErrNotList = errors.New("core: neighbours are not a list of strings")
)

// MapOption configures a Map before first use.
type MapOption func(m *Map)

// WithCapacity pre-sizes the internal catalog for n regions.
// Non-positive values are ignored.
func WithCapacity(n int) MapOption {
	return func(m *Map) {
		if n <= 0 {
			return
		}
		m.order = make([]string, 0, n)
		m.index = make(map[string]int, n)
		m.neighbors = make(map[string][]string, n)
	}
}

// Map is an insertion-ordered adjacency mapping: region ID → ordered neighbour IDs.
//
// The zero value is ready to use. order holds the regions in insertion order,
// index maps a region to its position in order, neighbors holds the verbatim
// neighbour lists (never nil for a declared region).
type Map struct {
	mu sync.RWMutex // guards everything below

	order     []string            // regions, insertion order
	index     map[string]int      // region → position in order
	neighbors map[string][]string // region → declared neighbours
}

// NewMap creates an empty Map.
// Complexity: O(1) (O(n) with WithCapacity(n)).
func NewMap(opts ...MapOption) *Map {
	m := &Map{}
	for _, opt := range opts {
		opt(m)
	}
	m.lazyInit()

	return m
}

// lazyInit allocates the catalogs of a zero-value Map. Caller holds mu (or owns m).
func (m *Map) lazyInit() {
	if m.index == nil {
		m.index = make(map[string]int)
	}
	if m.neighbors == nil {
		m.neighbors = make(map[string][]string)
	}
}
