// SPDX-License-Identifier: MIT
// Package: lvnet/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewNodes): the hub CenterLabel plus n-1 leaves.
//   • Leaves are labelled cfg.idFn(1..n-1); links run Center -> leaf.
//
// Complexity: O(n) nodes + O(n) links.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvnet/core"
)

// Star returns a Constructor that builds a star with n nodes.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodStar, n, MinStarNodes, ErrTooFewNodes)
		}
		hub := node(g, CenterLabel)
		for i := 1; i < n; i++ {
			if err := link(g, cfg, MethodStar, hub, node(g, cfg.idFn(i))); err != nil {
				return err
			}
		}

		return nil
	}
}
