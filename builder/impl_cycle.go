// SPDX-License-Identifier: MIT
// Package: mapcolor/builder
//
// impl_cycle.go - Cycle(n): a ring of n regions, each bordering the next.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Regions idFn(0..n-1) are declared in index order before any border.
//   • Borders i–(i+1) mod n are emitted in ascending i.
//
// Coloring: 2 colors suffice for even n, odd n needs 3.

package builder

import (
	"fmt"

	"github.com/katalvlaran/mapcolor/core"
)

// Cycle returns a Constructor that builds the ring C_n.
// Complexity: O(n) regions and borders.
func Cycle(n int) Constructor {
	return func(m *core.Map, cfg builderConfig) error {
		if n < MinCycleRegions {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodCycle, n, MinCycleRegions, ErrTooFewVertices)
		}
		if err := addRegions(m, cfg, MethodCycle, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := border(m, cfg, MethodCycle, cfg.idFn(i), cfg.idFn((i+1)%n)); err != nil {
				return err
			}
		}

		return nil
	}
}
