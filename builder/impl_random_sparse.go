// SPDX-License-Identifier: MIT
// Package: mapcolor/builder
//
// impl_random_sparse.go - RandomSparse(n, p): Erdős–Rényi G(n, p) borders.
//
// Contract:
//   • n ≥ 1 (ErrTooFewVertices), p ∈ [0,1] (ErrInvalidProbability).
//   • 0 < p < 1 requires cfg.rng (ErrNeedRandSource); p = 0 and p = 1 are
//     deterministic and run without one.
//   • Pairs (i, j), i < j, are drawn in lexicographic order, one draw per pair,
//     so a fixed seed reproduces the same map.
//
// Random maps are not necessarily planar; they may need more than four colors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/mapcolor/core"
)

// RandomSparse returns a Constructor for a seeded random map.
// Complexity: O(n²) pair checks.
func RandomSparse(n int, p float64) Constructor {
	return func(m *core.Map, cfg builderConfig) error {
		if n < MinRandomRegions {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodRandomSparse, n, MinRandomRegions, ErrTooFewVertices)
		}
		if p < MinProbability || p > MaxProbability {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				MethodRandomSparse, p, MinProbability, MaxProbability, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > MinProbability && p < MaxProbability {
			return fmt.Errorf("%s: rng is required: %w", MethodRandomSparse, ErrNeedRandSource)
		}

		if err := addRegions(m, cfg, MethodRandomSparse, n); err != nil {
			return err
		}

		var take bool
		for i := 0; i < n; i++ {
			u := cfg.idFn(i)
			for j := i + 1; j < n; j++ {
				switch {
				case p == MinProbability:
					take = false
				case p == MaxProbability:
					take = true
				default:
					take = cfg.rng.Float64() < p
				}
				if !take {
					continue
				}
				if err := border(m, cfg, MethodRandomSparse, u, cfg.idFn(j)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
