// SPDX-License-Identifier: MIT
// Package: lvnet/builder
//
// impl_bipartite.go - implementation of CompleteBipartite(n1, n2).
//
// Contract:
//   • n1, n2 ≥ 1 (else ErrTooFewNodes).
//   • Left nodes leftPrefix+i, right nodes rightPrefix+j; links left -> right.
//
// Complexity: O(n1+n2) nodes + O(n1·n2) links.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvnet/core"
)

// CompleteBipartite returns a Constructor that builds K_{n1,n2}.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n1 < 1 || n2 < 1 {
			return fmt.Errorf("%s: sizes must be ≥ 1, got %d and %d: %w",
				MethodCompleteBipartite, n1, n2, ErrTooFewNodes)
		}
		left := addNodes(g, n1, PrefixIDFn(cfg.leftPrefix))
		right := addNodes(g, n2, PrefixIDFn(cfg.rightPrefix))
		for _, u := range left {
			for _, v := range right {
				if err := link(g, cfg, MethodCompleteBipartite, u, v); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
