// SPDX-License-Identifier: MIT
// Package: mapcolor/builder
//
// impl_path.go - Path(n): regions in a row, each bordering its successor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Regions idFn(0..n-1) in index order; borders i–(i+1) for i < n-1.
//
// Coloring: always 2-colorable and solved without a single undo.

package builder

import (
	"fmt"

	"github.com/katalvlaran/mapcolor/core"
)

// Path returns a Constructor that builds the path P_n.
// Complexity: O(n).
func Path(n int) Constructor {
	return func(m *core.Map, cfg builderConfig) error {
		if n < MinPathRegions {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodPath, n, MinPathRegions, ErrTooFewVertices)
		}
		if err := addRegions(m, cfg, MethodPath, n); err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err := border(m, cfg, MethodPath, cfg.idFn(i), cfg.idFn(i+1)); err != nil {
				return err
			}
		}

		return nil
	}
}
