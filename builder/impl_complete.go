// SPDX-License-Identifier: MIT
// Package: lvnet/builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewNodes).
//   • Emits links for i<j in (i asc, j asc) order; WithDirected adds j -> i too.
//
// Complexity: O(n) nodes + O(n²) links.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvnet/core"
)

// Complete returns a Constructor that builds K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < 1 {
			return fmt.Errorf("%s: n=%d < min=1: %w", MethodComplete, n, ErrTooFewNodes)
		}

		return addCompleteLinks(g, cfg, MethodComplete, addNodes(g, n, cfg.idFn))
	}
}
