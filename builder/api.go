// SPDX-License-Identifier: MIT
// Package: mapcolor/builder
//
// api.go - public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildMap(mopts, bopts, cons...). Creates m, resolves cfg, runs cons in order.
//   - Constructors live in impl_*.go; Lookup resolves a textual kind (CLI, HTTP, MCP) to one.
//   - Functional options (BuilderOption) resolve into a builderConfig passed by value.
//   - Determinism: same inputs, options, seed and constructor order ⇒ identical maps,
//     region order included (region order is the search order of the solver).

package builder

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/mapcolor/core"
)

// Constructor applies a deterministic map mutation using the resolved builderConfig.
// Constructors validate parameters first and return sentinel errors; they never panic.
type Constructor func(m *core.Map, cfg builderConfig) error

// BuildMap creates a new core.Map with map options mopts, resolves the builder
// configuration from bopts and applies all constructors in order.
// Any constructor error is wrapped as "BuildMap: %w" and returned immediately;
// the partially built map is discarded.
//
// Complexity: O(len(bopts)) to resolve options plus the sum of constructor costs.
func BuildMap(mopts []core.MapOption, bopts []BuilderOption, cons ...Constructor) (*core.Map, error) {
	m := core.NewMap(mopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildMap: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(m, cfg); err != nil {
			return nil, fmt.Errorf("BuildMap: %w", err)
		}
	}

	return m, nil
}

// Kind names a constructor family for textual front-ends.
type Kind string

// Supported kinds.
const (
	KindCycle     Kind = "cycle"
	KindPath      Kind = "path"
	KindStar      Kind = "star"
	KindWheel     Kind = "wheel"
	KindComplete  Kind = "complete"
	KindBipartite Kind = "bipartite"
	KindGrid      Kind = "grid"
	KindPlatonic  Kind = "platonic"
	KindRandom    Kind = "random"
	KindRegular   Kind = "regular"
)

// Params selects and sizes a constructor by name.
type Params struct {
	// Kind is the constructor family (case-insensitive).
	Kind Kind

	// N is the main size: regions for most kinds, the side length for grid,
	// the total of both sides for bipartite, the vertex count (4, 6, 8, 12, 20)
	// for platonic.
	N int

	// P is the border probability for random.
	P float64

	// Degree is the region degree for regular.
	Degree int

	// WithCenter adds a hub region to platonic shells.
	WithCenter bool
}

// Kinds returns every supported kind in lexical order.
func Kinds() []Kind {
	out := []Kind{
		KindCycle, KindPath, KindStar, KindWheel, KindComplete,
		KindBipartite, KindGrid, KindPlatonic, KindRandom, KindRegular,
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// Lookup resolves p to a Constructor. Size validation is left to the
// constructor itself; Lookup only fails on an unknown kind or solid.
func Lookup(p Params) (Constructor, error) {
	switch Kind(strings.ToLower(string(p.Kind))) {
	case KindCycle:
		return Cycle(p.N), nil
	case KindPath:
		return Path(p.N), nil
	case KindStar:
		return Star(p.N), nil
	case KindWheel:
		return Wheel(p.N), nil
	case KindComplete:
		return Complete(p.N), nil
	case KindBipartite:
		return CompleteBipartite((p.N+1)/2, p.N/2), nil
	case KindGrid:
		return Grid(p.N, p.N), nil
	case KindPlatonic:
		name, ok := PlatonicByVertexCount(p.N)
		if !ok {
			return nil, fmt.Errorf("Lookup: no Platonic solid has %d vertices: %w", p.N, ErrUnknownKind)
		}
		return PlatonicSolid(name, p.WithCenter), nil
	case KindRandom:
		return RandomSparse(p.N, p.P), nil
	case KindRegular:
		return RandomRegular(p.N, p.Degree), nil
	default:
		return nil, fmt.Errorf("Lookup: %q: %w", p.Kind, ErrUnknownKind)
	}
}

// border records a border between a and b according to cfg: on both sides by
// default, on a's side only under WithOneSidedBorders.
func border(m *core.Map, cfg builderConfig, method, a, b string) error {
	var err error
	if cfg.oneSided {
		err = m.AddNeighbor(a, b)
	} else {
		err = m.AddBorder(a, b)
	}
	if err != nil {
		return fmt.Errorf("%s: border(%s, %s): %w", method, a, b, err)
	}

	return nil
}

// addRegions declares ids(0..n-1) in index order.
func addRegions(m *core.Map, cfg builderConfig, method string, n int) error {
	for i := 0; i < n; i++ {
		id := cfg.idFn(i)
		if err := m.AddRegion(id); err != nil {
			return fmt.Errorf("%s: AddRegion(%s): %w", method, id, err)
		}
	}

	return nil
}
