// SPDX-License-Identifier: MIT
// Package: mapcolor/builder
//
// impl_wheel.go - Wheel(n) = Cycle(n-1) + hub "Center".
//
// Contract:
//   • n ≥ 4, so the rim is a valid cycle (else ErrTooFewVertices).
//   • The rim is built by Cycle(n-1) with the same cfg, then "Center" is
//     declared and spokes Center–rim(i) are emitted in ascending i.
//
// Coloring: an odd rim (even n) needs 4 colors, the classic tight case
// for the four color theorem; an even rim needs 3.

package builder

import (
	"fmt"

	"github.com/katalvlaran/mapcolor/core"
)

// Wheel returns a Constructor that builds the wheel W_n.
// Complexity: O(n).
func Wheel(n int) Constructor {
	return func(m *core.Map, cfg builderConfig) error {
		if n < MinWheelRegions {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodWheel, n, MinWheelRegions, ErrTooFewVertices)
		}
		if err := Cycle(n-1)(m, cfg); err != nil {
			return fmt.Errorf("%s: rim C_%d: %w", MethodWheel, n-1, err)
		}
		if err := m.AddRegion(CenterRegionID); err != nil {
			return fmt.Errorf("%s: AddRegion(%s): %w", MethodWheel, CenterRegionID, err)
		}
		for i := 0; i < n-1; i++ {
			if err := border(m, cfg, MethodWheel, CenterRegionID, cfg.idFn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}
