// SPDX-License-Identifier: MIT
// Package: lvnet/builder
//
// impl_wheel.go - implementation of Wheel(n) constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewNodes): a rim C_n plus the hub CenterLabel.
//   • Rim first (as Cycle), then spokes Center -> rim i in ascending i.
//
// Complexity: O(n) nodes + O(2n) links.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvnet/core"
)

// Wheel returns a Constructor that builds the wheel W_{n+1}.
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodWheel, n, MinWheelNodes, ErrTooFewNodes)
		}
		if err := Cycle(n)(g, cfg); err != nil {
			return fmt.Errorf("%s: %w", MethodWheel, err)
		}
		hub := node(g, CenterLabel)
		for i := 0; i < n; i++ {
			if err := link(g, cfg, MethodWheel, hub, node(g, cfg.idFn(i))); err != nil {
				return err
			}
		}

		return nil
	}
}
