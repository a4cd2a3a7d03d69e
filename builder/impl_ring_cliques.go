// SPDX-License-Identifier: MIT
// Package: lvnet/builder
//
// impl_ring_cliques.go - implementation of RingOfCliques(count, size).
//
// Canonical model:
//   • count cliques K_size; clique c holds indices c·size .. c·size+size-1.
//   • One bridge per consecutive pair: first node of clique c to the second
//     node of clique (c+1) mod count, so no node carries two bridges.
//
// Contract:
//   • count ≥ 2 and size ≥ 2 (else ErrTooFewNodes).
//   • Planted modules: the cliques maximize modularity for count ≥ 3.
//
// Complexity: O(count·size²) links.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvnet/core"
)

// RingOfCliques returns a Constructor that builds count cliques in a ring.
func RingOfCliques(count, size int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if count < MinCliqueCount || size < MinCliqueSize {
			return fmt.Errorf("%s: count=%d size=%d below %d/%d: %w",
				MethodRingOfCliques, count, size, MinCliqueCount, MinCliqueSize, ErrTooFewNodes)
		}
		ids := addNodes(g, count*size, cfg.idFn)
		for c := 0; c < count; c++ {
			if err := addCompleteLinks(g, cfg, MethodRingOfCliques, ids[c*size:(c+1)*size]); err != nil {
				return err
			}
		}
		for c := 0; c < count; c++ {
			next := (c + 1) % count
			if err := link(g, cfg, MethodRingOfCliques, ids[c*size], ids[next*size+1]); err != nil {
				return err
			}
		}

		return nil
	}
}
