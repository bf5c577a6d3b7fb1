// SPDX-License-Identifier: MIT
// Package: mapcolor/builder
//
// impl_complete.go - Complete(n): every region borders every other region.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • Borders (i, j) for i < j in lexicographic index order.
//
// Coloring: needs exactly n colors; with n-1 colors the search exhausts the
// whole tree, which makes K_n the worst case for trace length.

package builder

import (
	"fmt"

	"github.com/katalvlaran/mapcolor/core"
)

// Complete returns a Constructor that builds K_n.
// Complexity: O(n²).
func Complete(n int) Constructor {
	return func(m *core.Map, cfg builderConfig) error {
		if n < MinCompleteRegions {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodComplete, n, MinCompleteRegions, ErrTooFewVertices)
		}
		if err := addRegions(m, cfg, MethodComplete, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			u := cfg.idFn(i)
			for j := i + 1; j < n; j++ {
				if err := border(m, cfg, MethodComplete, u, cfg.idFn(j)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
