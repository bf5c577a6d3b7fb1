// SPDX-License-Identifier: MIT
// Package: mapcolor/builder
//
// impl_star.go - Star(n): a hub region "Center" bordering n-1 leaf regions.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • "Center" is declared first, then leaves idFn(1..n-1) in index order,
//     each followed by its spoke Center–leaf.

package builder

import (
	"fmt"

	"github.com/katalvlaran/mapcolor/core"
)

// Star returns a Constructor that builds the star K_{1,n-1}.
// Complexity: O(n).
func Star(n int) Constructor {
	return func(m *core.Map, cfg builderConfig) error {
		if n < MinStarRegions {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodStar, n, MinStarRegions, ErrTooFewVertices)
		}
		if err := m.AddRegion(CenterRegionID); err != nil {
			return fmt.Errorf("%s: AddRegion(%s): %w", MethodStar, CenterRegionID, err)
		}

		var leaf string
		for i := 1; i < n; i++ {
			leaf = cfg.idFn(i)
			if err := m.AddRegion(leaf); err != nil {
				return fmt.Errorf("%s: AddRegion(%s): %w", MethodStar, leaf, err)
			}
			if err := border(m, cfg, MethodStar, CenterRegionID, leaf); err != nil {
				return err
			}
		}

		return nil
	}
}
