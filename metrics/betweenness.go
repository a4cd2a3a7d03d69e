package metrics

import (
	"fmt"

	"github.com/katalvlaran/lvnet/bfs"
	"github.com/katalvlaran/lvnet/core"
)

// LinkBetweenness computes the shortest-path betweenness of every link and
// stores it in Link.Betweenness (accumulators are zeroed first).
//
// Implementation (per source s, Brandes-style):
//   - Stage 1: multi-predecessor BFS from s.
//   - Stage 2: every node starts with one unit of occupancy.
//   - Stage 3: nodes are visited in reverse discovery order down to (and
//     excluding) s; each of v's np predecessors p receives occ[v]/np, and
//     the same amount is added to both entries v→p and p→v (an entry absent
//     in a directed graph is skipped).
//
// The units of every source flow back to it, so the links adjacent to s
// carry N_s - 1 units in total, N_s being the size of s's closure.
//
// Complexity: O(N·(N+E)) time, O(N+E) memory.
func LinkBetweenness(g *core.Graph, opts ...Option) error {
	_, _, _, err := accumulateBetweenness(g, "LinkBetweenness", resolve(opts), false)

	return err
}

// BiggestLinkBetweenness computes link betweenness like LinkBetweenness and
// reports the link with the largest value: n2→n1 is the entry whose value
// was the running maximum, n1 being the predecessor side. Ties keep the
// earliest entry to reach the maximum.
// Returns ErrNoLinks for graphs without links.
func BiggestLinkBetweenness(g *core.Graph, opts ...Option) (n1, n2 int, value float64, err error) {
	return accumulateBetweenness(g, "BiggestLinkBetweenness", resolve(opts), true)
}

// LinkBetweennessFrom zeroes the accumulators and stores the contribution
// of the single source src: its N_src - 1 units of occupancy flowing back
// along the shortest-path DAG.
// Complexity: O(N+E).
func LinkBetweennessFrom(g *core.Graph, src int, opts ...Option) error {
	if g == nil {
		return ErrGraphNil
	}
	o := resolve(opts)
	w, err := bfs.NewWalker(g, bfs.WithContext(o.ctx))
	if err != nil {
		return fmt.Errorf("LinkBetweennessFrom: %w", err)
	}
	if err = w.Run(src); err != nil {
		return fmt.Errorf("LinkBetweennessFrom(%d): %w", src, err)
	}
	g.ResetBetweenness()
	acc := betweennessAccumulator{g: g, occ: make([]float64, g.NodeCount()), bigP: -1, bigV: -1}

	return acc.source(w)
}

// betweennessAccumulator carries the occupancy scratch and the running
// maximum across sources.
type betweennessAccumulator struct {
	g     *core.Graph
	occ   []float64
	track bool
	// running maximum: entry bigV→bigP
	bigP, bigV int
}

// source folds the traversal held by w into the link accumulators.
func (a *betweennessAccumulator) source(w *bfs.Walker) error {
	order := w.Order()
	for _, v := range order {
		a.occ[v] = 1
	}
	for i := len(order) - 1; i > 0; i-- {
		v := order[i]
		preds := w.Preds(v)
		share := a.occ[v] / float64(len(preds))
		for _, p := range preds {
			a.occ[p] += share
			if a.g.HasLink(v, p) {
				val, err := a.g.AccrueBetweenness(v, p, share)
				if err != nil {
					return err
				}
				if a.track && (a.bigV < 0 || val > currentBetweenness(a.g, a.bigV, a.bigP)) {
					a.bigP, a.bigV = p, v
				}
			}
			if _, err := a.g.AccrueBetweenness(p, v, share); err != nil {
				return err
			}
		}
	}

	return nil
}

func accumulateBetweenness(g *core.Graph, name string, o options, track bool) (int, int, float64, error) {
	if g == nil {
		return -1, -1, 0, ErrGraphNil
	}
	if track && g.TotalLinks(false) == 0 {
		return -1, -1, 0, fmt.Errorf("%s: %w", name, ErrNoLinks)
	}
	g.ResetBetweenness()

	acc := betweennessAccumulator{g: g, occ: make([]float64, g.NodeCount()), track: track, bigP: -1, bigV: -1}
	err := sweep(g, name, o, func(w *bfs.Walker, _ int) error {
		return acc.source(w)
	})
	if err != nil {
		return -1, -1, 0, err
	}
	var bigVal float64
	if acc.bigV >= 0 {
		bigVal = currentBetweenness(g, acc.bigV, acc.bigP)
	}

	return acc.bigP, acc.bigV, bigVal, nil
}

func currentBetweenness(g *core.Graph, u, v int) float64 {
	l, err := g.Link(u, v)
	if err != nil {
		return 0
	}

	return l.Betweenness
}
