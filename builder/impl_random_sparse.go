// SPDX-License-Identifier: MIT
// Package: lvnet/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Canonical model:
//   - Erdős–Rényi G(n,p): include each admissible link independently with prob p.
//   - Symmetric: iterate unordered pairs {i,j} with i<j.
//   - Directed: iterate ordered pairs (i,j), i≠j.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewNodes).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - A random stream is required when 0 < p < 1 (else ErrNeedRandSource).
//
// Complexity: O(n) nodes + O(n²) Bernoulli trials.
//
// Determinism:
//   - Stable trial order: for each i asc, j asc; one draw per trial, then
//     one weight draw per accepted link.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvnet/core"
)

// RandomSparse returns a Constructor that samples G(n,p).
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Validate parameters early.
		if n < 1 {
			return fmt.Errorf("%s: n=%d < min=1: %w", MethodRandomSparse, n, ErrTooFewNodes)
		}
		if p < MinProbability || p > MaxProbability {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				MethodRandomSparse, p, MinProbability, MaxProbability, ErrInvalidProbability)
		}
		if cfg.src == nil && p > 0 && p < 1 {
			return fmt.Errorf("%s: %w", MethodRandomSparse, ErrNeedRandSource)
		}

		// 2) Nodes first, in label order.
		ids := addNodes(g, n, cfg.idFn)

		// 3) Bernoulli trials; p ∈ {0,1} consumes no draws.
		keep := func() bool {
			switch p {
			case 0:
				return false
			case 1:
				return true
			}
			return cfg.src.Float64() < p
		}
		for i := 0; i < n; i++ {
			start := i + 1
			if cfg.directed {
				start = 0
			}
			for j := start; j < n; j++ {
				if i == j || !keep() {
					continue
				}
				if err := link(g, cfg, MethodRandomSparse, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
