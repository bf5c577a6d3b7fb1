// SPDX-License-Identifier: MIT
// Package: mapcolor/builder
//
// impl_bipartite.go - CompleteBipartite(n1, n2): two sides, every cross pair borders.
//
// Contract:
//   • n1 ≥ 1 and n2 ≥ 1 (else ErrTooFewVertices).
//   • IDs are cfg.leftPrefix+i and cfg.rightPrefix+j (not cfg.idFn), left side first.
//   • Borders are emitted left-major: (L0,R0), (L0,R1), ...

package builder

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/mapcolor/core"
)

// CompleteBipartite returns a Constructor that builds K_{n1,n2}.
// Complexity: O(n1+n2) regions, O(n1·n2) borders.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(m *core.Map, cfg builderConfig) error {
		if n1 < MinPartitionSize || n2 < MinPartitionSize {
			return fmt.Errorf("%s: n1=%d, n2=%d (each must be ≥ %d): %w",
				MethodCompleteBipartite, n1, n2, MinPartitionSize, ErrTooFewVertices)
		}

		left := sideIDs(cfg.leftPrefix, n1)
		right := sideIDs(cfg.rightPrefix, n2)
		for _, id := range append(append([]string{}, left...), right...) {
			if err := m.AddRegion(id); err != nil {
				return fmt.Errorf("%s: AddRegion(%s): %w", MethodCompleteBipartite, id, err)
			}
		}
		for _, u := range left {
			for _, v := range right {
				if err := border(m, cfg, MethodCompleteBipartite, u, v); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

func sideIDs(prefix string, n int) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = prefix + strconv.Itoa(i)
	}

	return ids
}
