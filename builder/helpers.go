package builder

import (
	"fmt"

	"github.com/katalvlaran/lvnet/core"
	"github.com/katalvlaran/lvnet/rng"
)

// node returns the id of the node labelled label, appending it when absent.
func node(g *core.Graph, label string) int {
	if id, ok := g.NodeByLabel(label); ok {
		return id
	}

	return g.AppendNode(label)
}

// addNodes ensures labels idFn(0..n-1) and returns their ids in index order.
// Complexity: O(n).
func addNodes(g *core.Graph, n int, idFn IDFn) []int {
	ids := make([]int, n)
	for i := 0; i < n; i++ {
		ids[i] = node(g, idFn(i))
	}

	return ids
}

// link adds u→v (and v→u unless directed) with a weight drawn from cfg.
// An existing link is left untouched.
func link(g *core.Graph, cfg builderConfig, method string, u, v int) error {
	w := cfg.weightFn(cfg.src)
	var opts []core.LinkOption
	if !cfg.directed {
		opts = append(opts, core.WithSymmetric())
	}
	if _, err := g.AddLink(u, v, w, opts...); err != nil {
		return fmt.Errorf("%s: AddLink(%s→%s, w=%g): %w", method, g.Label(u), g.Label(v), w, err)
	}

	return nil
}

// addCompleteLinks connects every unordered pair in ids.
// Complexity: O(m²) where m = len(ids).
func addCompleteLinks(g *core.Graph, cfg builderConfig, method string, ids []int) error {
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			if err := link(g, cfg, method, ids[i], ids[j]); err != nil {
				return err
			}
			if cfg.directed {
				if err := link(g, cfg, method, ids[j], ids[i]); err != nil {
					return err
				}
			}
		}
	}

	return nil
}

// shuffle permutes xs in place (Fisher–Yates) with draws from src.
func shuffle(src rng.Source, xs []int) {
	for i := len(xs) - 1; i > 0; i-- {
		j := rng.Intn(src, i+1)
		xs[i], xs[j] = xs[j], xs[i]
	}
}
