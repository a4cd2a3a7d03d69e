// SPDX-License-Identifier: MIT
// Package: lvnet/builder
//
// impl_grid.go - implementation of Grid(rows, cols) constructor.
//
// Contract:
//   • rows, cols ≥ 1 (else ErrTooFewNodes).
//   • Labels "r,c" in row-major order; 4-neighborhood links right then down.
//
// Complexity: O(R·C) nodes + O(2·R·C) links.

package builder

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/lvnet/core"
)

// Grid returns a Constructor that builds a rows×cols lattice.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < MinGridDim || cols < MinGridDim {
			return fmt.Errorf("%s: dims %dx%d below %d: %w", MethodGrid, rows, cols, MinGridDim, ErrTooFewNodes)
		}
		ids := make([]int, rows*cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				ids[r*cols+c] = node(g, gridLabel(r, c))
			}
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := ids[r*cols+c]
				if c+1 < cols {
					if err := link(g, cfg, MethodGrid, u, ids[r*cols+c+1]); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := link(g, cfg, MethodGrid, u, ids[(r+1)*cols+c]); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}

// gridLabel formats a lattice coordinate as "r,c".
func gridLabel(r, c int) string {
	return strconv.Itoa(r) + "," + strconv.Itoa(c)
}
