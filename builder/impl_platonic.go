// SPDX-License-Identifier: MIT
// Package: mapcolor/builder
//
// impl_platonic.go - PlatonicSolid(name, withCenter).
//
// Contract:
//   • Unknown name → ErrUnknownKind.
//   • Shell regions idFn(0..V-1) in index order, then the shell borders of
//     variants_platonic.go in their listed order.
//   • withCenter adds "Center" after the shell with spokes in ascending index.
//     A hub raises the chromatic number by one.

package builder

import (
	"fmt"

	"github.com/katalvlaran/mapcolor/core"
)

// PlatonicSolid returns a Constructor that builds the chosen solid's shell,
// optionally stellated with a central hub.
// Complexity: O(V+E), V ≤ 21 and E ≤ 50.
func PlatonicSolid(name PlatonicName, withCenter bool) Constructor {
	return func(m *core.Map, cfg builderConfig) error {
		n, ok := platonicVertexCounts[name]
		if !ok {
			return fmt.Errorf("%s: unknown solid %v: %w", MethodPlatonicSolid, name, ErrUnknownKind)
		}
		if err := addRegions(m, cfg, MethodPlatonicSolid, n); err != nil {
			return err
		}
		for _, ch := range platonicEdgeSets[name] {
			if err := border(m, cfg, MethodPlatonicSolid, cfg.idFn(ch.U), cfg.idFn(ch.V)); err != nil {
				return err
			}
		}

		if !withCenter {
			return nil
		}
		if err := m.AddRegion(CenterRegionID); err != nil {
			return fmt.Errorf("%s: AddRegion(%s): %w", MethodPlatonicSolid, CenterRegionID, err)
		}
		for i := 0; i < n; i++ {
			if err := border(m, cfg, MethodPlatonicSolid, CenterRegionID, cfg.idFn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}
