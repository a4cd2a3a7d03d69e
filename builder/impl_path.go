// SPDX-License-Identifier: MIT
// Package: lvnet/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewNodes).
//   • Adds nodes via cfg.idFn in ascending index order (0..n-1).
//   • Emits links in stable order i -> i+1 for i=0..n-2.
//
// Complexity: O(n) nodes + O(n) links.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvnet/core"
)

// Path returns a Constructor that builds the simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodPath, n, MinPathNodes, ErrTooFewNodes)
		}
		ids := addNodes(g, n, cfg.idFn)
		for i := 0; i+1 < n; i++ {
			if err := link(g, cfg, MethodPath, ids[i], ids[i+1]); err != nil {
				return err
			}
		}

		return nil
	}
}
