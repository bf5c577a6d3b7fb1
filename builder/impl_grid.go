// SPDX-License-Identifier: MIT
// Package: mapcolor/builder
//
// impl_grid.go - Grid(rows, cols): a chessboard of regions with 4-neighbourhood.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • IDs are "r,c" in row-major order; cfg.idFn is not used so coordinates stay explicit.
//   • For each cell the right border is emitted before the bottom one.
//
// Coloring: 2-colorable like a chessboard.

package builder

import (
	"fmt"

	"github.com/katalvlaran/mapcolor/core"
)

const gridIDFmt = "%d,%d"

// Grid returns a Constructor that builds a rows×cols grid.
// Complexity: O(rows·cols).
func Grid(rows, cols int) Constructor {
	return func(m *core.Map, cfg builderConfig) error {
		if rows < MinGridDim || cols < MinGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				MethodGrid, rows, cols, MinGridDim, ErrTooFewVertices)
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				id := fmt.Sprintf(gridIDFmt, r, c)
				if err := m.AddRegion(id); err != nil {
					return fmt.Errorf("%s: AddRegion(%s): %w", MethodGrid, id, err)
				}
			}
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := fmt.Sprintf(gridIDFmt, r, c)
				if c+1 < cols {
					if err := border(m, cfg, MethodGrid, u, fmt.Sprintf(gridIDFmt, r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := border(m, cfg, MethodGrid, u, fmt.Sprintf(gridIDFmt, r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
