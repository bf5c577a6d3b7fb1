// SPDX-License-Identifier: MIT
// Package: mapcolor/builder
//
// impl_painting.go - Painting(rows, conn): a map drawn as a character grid.
//
// Contract:
//   • Each non-water rune labels a cell; '.' and ' ' are water.
//   • A region is a maximal group of equally labelled cells connected under conn.
//   • The first group of a label is named by the label itself, later groups get
//     the label followed by 2, 3, ... in scan order.
//   • Regions appear in row-major order of their first cell; two regions border
//     when any of their cells are neighbours under conn.
//   • rows must be non-empty and rectangular (counted in runes).
//
// Coloring: any planar drawing under Conn4 is 4-colorable.

package builder

import (
	"fmt"

	"github.com/katalvlaran/mapcolor/core"
)

// Connectivity selects which cells of a painting touch.
type Connectivity int

const (
	// Conn4 joins cells sharing an edge: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 also joins cells touching at a corner.
	Conn8
)

// forward offsets (dx, dy): each unordered cell pair is visited once.
var (
	forward4 = [][2]int{{1, 0}, {0, 1}}
	forward8 = [][2]int{{1, 0}, {0, 1}, {1, 1}, {-1, 1}}
	all4     = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	all8     = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

// canvas is a rectangular rune grid.
type canvas struct {
	w, h  int
	cells [][]rune
}

func isWater(r rune) bool { return r == '.' || r == ' ' }

func newCanvas(rows []string) (*canvas, error) {
	if len(rows) == 0 || rows[0] == "" {
		return nil, fmt.Errorf("%s: empty painting: %w", MethodPainting, ErrTooFewVertices)
	}
	cv := &canvas{h: len(rows), cells: make([][]rune, len(rows))}
	for y, row := range rows {
		cv.cells[y] = []rune(row)
		if y == 0 {
			cv.w = len(cv.cells[0])
		} else if len(cv.cells[y]) != cv.w {
			return nil, fmt.Errorf("%s: row %d has %d cells, want %d: %w",
				MethodPainting, y, len(cv.cells[y]), cv.w, ErrNonRectangular)
		}
	}

	return cv, nil
}

func (cv *canvas) inBounds(x, y int) bool { return x >= 0 && x < cv.w && y >= 0 && y < cv.h }

// components labels every land cell with its component index (-1 for water)
// and returns the component names in discovery order.
func (cv *canvas) components(offsets [][2]int) ([]int, []string) {
	comp := make([]int, cv.w*cv.h)
	for i := range comp {
		comp[i] = -1
	}
	var names []string
	seen := make(map[rune]int)

	for y := 0; y < cv.h; y++ {
		for x := 0; x < cv.w; x++ {
			label := cv.cells[y][x]
			if isWater(label) || comp[y*cv.w+x] >= 0 {
				continue
			}
			idx := len(names)
			seen[label]++
			name := string(label)
			if n := seen[label]; n > 1 {
				name = fmt.Sprintf("%s%d", name, n)
			}
			names = append(names, name)

			// BFS over equally labelled cells
			queue := []int{y*cv.w + x}
			comp[queue[0]] = idx
			for qi := 0; qi < len(queue); qi++ {
				ux, uy := queue[qi]%cv.w, queue[qi]/cv.w
				for _, d := range offsets {
					vx, vy := ux+d[0], uy+d[1]
					if !cv.inBounds(vx, vy) || cv.cells[vy][vx] != label {
						continue
					}
					vi := vy*cv.w + vx
					if comp[vi] < 0 {
						comp[vi] = idx
						queue = append(queue, vi)
					}
				}
			}
		}
	}

	return comp, names
}

// Painting returns a Constructor that turns a character drawing into a map.
// cfg.idFn is not used: region IDs come from the labels.
// Complexity: O(W·H·d) with d = 4 or 8.
func Painting(rows []string, conn Connectivity) Constructor {
	return func(m *core.Map, cfg builderConfig) error {
		cv, err := newCanvas(rows)
		if err != nil {
			return err
		}
		all, fwd := all4, forward4
		if conn == Conn8 {
			all, fwd = all8, forward8
		}
		comp, names := cv.components(all)
		if len(names) == 0 {
			return fmt.Errorf("%s: painting has no land: %w", MethodPainting, ErrTooFewVertices)
		}

		for _, id := range names {
			if err := m.AddRegion(id); err != nil {
				return fmt.Errorf("%s: AddRegion(%s): %w", MethodPainting, id, err)
			}
		}

		for y := 0; y < cv.h; y++ {
			for x := 0; x < cv.w; x++ {
				u := comp[y*cv.w+x]
				if u < 0 {
					continue
				}
				for _, d := range fwd {
					vx, vy := x+d[0], y+d[1]
					if !cv.inBounds(vx, vy) {
						continue
					}
					v := comp[vy*cv.w+vx]
					if v < 0 || v == u {
						continue
					}
					if err := border(m, cfg, MethodPainting, names[u], names[v]); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
