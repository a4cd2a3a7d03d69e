// SPDX-License-Identifier: MIT
// Package: lvnet/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewNodes).
//   • Adds nodes via cfg.idFn in ascending index order (0..n-1).
//   • Emits links in stable order i -> (i+1)%n for i=0..n-1.
//
// Complexity: O(n) nodes + O(n) links.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvnet/core"
)

// Cycle returns a Constructor that builds the simple cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodCycle, n, MinCycleNodes, ErrTooFewNodes)
		}
		ids := addNodes(g, n, cfg.idFn)
		// for i==n-1 the step closes the ring
		for i := 0; i < n; i++ {
			if err := link(g, cfg, MethodCycle, ids[i], ids[(i+1)%n]); err != nil {
				return err
			}
		}

		return nil
	}
}
