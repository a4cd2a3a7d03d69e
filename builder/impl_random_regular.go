// SPDX-License-Identifier: MIT
// Package: lvnet/builder
//
// impl_random_regular.go - implementation of RandomRegular(n, d) constructor.
//
// Canonical model:
//   • Symmetric d-regular simple graph via stub matching with bounded retries.
//   • Stubs are shuffled (per stream) and paired consecutively. A pairing is
//     validated (no self-links, no duplicate pairs) before touching the graph;
//     an invalid one is reshuffled up to maxStubMatchingAttempts times.
//
// Contract:
//   • Not available with WithDirected (ErrUnsupportedGraphMode).
//   • n ≥ 1; 0 ≤ d < n; n·d even (else ErrTooFewNodes).
//   • A random stream is required (else ErrNeedRandSource).
//
// Complexity: ~O(n·d) per attempt; attempts are constant-bounded.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvnet/core"
)

const maxStubMatchingAttempts = 64

// RandomRegular returns a Constructor that builds a random d-regular graph.
func RandomRegular(n, d int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Mode gate.
		if cfg.directed {
			return fmt.Errorf("%s: only symmetric links are supported: %w",
				MethodRandomRegular, ErrUnsupportedGraphMode)
		}

		// 2) Parameter validation.
		if n < 1 {
			return fmt.Errorf("%s: n=%d < min=1: %w", MethodRandomRegular, n, ErrTooFewNodes)
		}
		if d < 0 || d >= n {
			return fmt.Errorf("%s: degree must be in [0,%d), got %d: %w",
				MethodRandomRegular, n, d, ErrTooFewNodes)
		}
		if (n*d)%2 != 0 {
			return fmt.Errorf("%s: n*d must be even (n=%d, d=%d): %w",
				MethodRandomRegular, n, d, ErrTooFewNodes)
		}
		if cfg.src == nil {
			return fmt.Errorf("%s: %w", MethodRandomRegular, ErrNeedRandSource)
		}

		// 3) Nodes and stubs (each index repeated d times).
		ids := addNodes(g, n, cfg.idFn)
		stubs := make([]int, 0, n*d)
		for i := 0; i < n; i++ {
			for k := 0; k < d; k++ {
				stubs = append(stubs, i)
			}
		}
		if len(stubs) == 0 {
			return nil
		}

		// 4) Bounded reshuffles until a simple pairing appears.
		for attempt := 1; attempt <= maxStubMatchingAttempts; attempt++ {
			shuffle(cfg.src, stubs)
			if !simplePairing(stubs) {
				continue
			}
			for i := 0; i < len(stubs); i += 2 {
				if err := link(g, cfg, MethodRandomRegular, ids[stubs[i]], ids[stubs[i+1]]); err != nil {
					return err
				}
			}
			return nil
		}

		return fmt.Errorf("%s: no simple pairing after %d attempts: %w",
			MethodRandomRegular, maxStubMatchingAttempts, ErrConstructFailed)
	}
}

// simplePairing reports whether consecutive stub pairs have no self-link
// and no duplicate.
func simplePairing(stubs []int) bool {
	seen := make(map[[2]int]struct{}, len(stubs)/2)
	for i := 0; i < len(stubs); i += 2 {
		u, v := stubs[i], stubs[i+1]
		if u == v {
			return false
		}
		if u > v {
			u, v = v, u
		}
		key := [2]int{u, v}
		if _, dup := seen[key]; dup {
			return false
		}
		seen[key] = struct{}{}
	}

	return true
}
