package metrics

import (
	"fmt"

	"github.com/katalvlaran/lvnet/bfs"
	"github.com/katalvlaran/lvnet/core"
)

// NodeClustering returns the local clustering coefficient of v: links
// among its neighbors over k(k-1), k being its number of distinct
// neighbors. Degree < 2 yields -1 and ErrLowDegree.
// Complexity: O(Σ deg(neighbors)).
func NodeClustering(g *core.Graph, v int, _ ...Option) (float64, error) {
	if g == nil {
		return -1, ErrGraphNil
	}
	if !g.HasNode(v) {
		return -1, fmt.Errorf("NodeClustering(%d): %w", v, core.ErrNodeNotFound)
	}
	k, between := countNeighborhood(g, v, make([]bool, g.NodeCount()))
	if k < 2 {
		return -1, fmt.Errorf("NodeClustering(%d): %w", v, ErrLowDegree)
	}

	return float64(between) / float64(k*(k-1)), nil
}

// ClusteringCoefficient returns the mean local clustering coefficient over
// the nodes of degree >= 2; lower-degree nodes are excluded from the mean.
// Complexity: O(Σ_v Σ deg(neighbors of v)).
func ClusteringCoefficient(g *core.Graph, opts ...Option) (float64, error) {
	if g == nil {
		return 0, ErrGraphNil
	}
	o := resolve(opts)
	mark := make([]bool, g.NodeCount())
	var sum float64
	eligible := 0
	for v := 0; v < g.NodeCount(); v++ {
		k, between := countNeighborhood(g, v, mark)
		if k < 2 {
			continue
		}
		sum += float64(between) / float64(k*(k-1))
		eligible++
	}
	if eligible == 0 {
		return 0, fmt.Errorf("ClusteringCoefficient: %w", ErrNoEligibleNodes)
	}
	o.log.Debug().Int("eligible", eligible).Msg("clustering coefficient")

	return sum / float64(eligible), nil
}

// GlobalClustering returns the total count of closed triples over the total
// count of connected triples: Σ links-among-neighbors / Σ k(k-1).
// Complexity: as ClusteringCoefficient.
func GlobalClustering(g *core.Graph, _ ...Option) (float64, error) {
	if g == nil {
		return 0, ErrGraphNil
	}
	mark := make([]bool, g.NodeCount())
	tri, triples := 0, 0
	for v := 0; v < g.NodeCount(); v++ {
		k, between := countNeighborhood(g, v, mark)
		if k < 2 {
			continue
		}
		tri += between
		triples += k * (k - 1)
	}
	if triples == 0 {
		return 0, fmt.Errorf("GlobalClustering: %w", ErrNoEligibleNodes)
	}

	return float64(tri) / float64(triples), nil
}

// countNeighborhood marks the distinct neighbors of v, counts the links
// among them (each undirected link twice) and clears the marks again.
func countNeighborhood(g *core.Graph, v int, mark []bool) (k, between int) {
	links := g.Links(v)
	for _, l := range links {
		if l.To != v && !mark[l.To] {
			mark[l.To] = true
			k++
		}
	}
	for _, l := range links {
		if l.To == v {
			continue
		}
		for _, m := range g.Links(l.To) {
			if m.To != l.To && mark[m.To] {
				between++
			}
		}
	}
	for _, l := range links {
		mark[l.To] = false
	}

	return k, between
}

// NodeSquareClustering returns the square clustering of v:
//
//	C4(v) = Σ_{x at distance 2} p(x)(p(x)-1) / (k2 · k1 · (k1-1))
//
// where p(x) is the number of first neighbors linking to x, k1 the number
// of first neighbors and k2 the number of second neighbors. Degenerate
// nodes return a sentinel code with an error, checked in this order:
// SquareIsolated (-1, ErrIsolatedNode), SquareNoSecond (-3,
// ErrNoSecondNeighbors), SquareSingleNeighbor (-2, ErrSingleNeighbor).
// Complexity: O(N+E) (a depth-2 BFS).
func NodeSquareClustering(g *core.Graph, v int, opts ...Option) (float64, error) {
	if g == nil {
		return SquareIsolated, ErrGraphNil
	}
	if !g.HasNode(v) {
		return SquareIsolated, fmt.Errorf("NodeSquareClustering(%d): %w", v, core.ErrNodeNotFound)
	}
	o := resolve(opts)
	w, err := bfs.NewWalker(g, bfs.WithContext(o.ctx), bfs.WithMaxDepth(2))
	if err != nil {
		return SquareIsolated, fmt.Errorf("NodeSquareClustering: %w", err)
	}

	return squareAt(g, w, v)
}

func squareAt(g *core.Graph, w *bfs.Walker, v int) (float64, error) {
	if g.Degree(v) == 0 {
		return SquareIsolated, fmt.Errorf("NodeSquareClustering(%d): %w", v, ErrIsolatedNode)
	}
	if err := w.Run(v); err != nil {
		return SquareIsolated, fmt.Errorf("NodeSquareClustering(%d): %w", v, err)
	}
	second := w.Layer(2)
	if len(second) == 0 {
		return SquareNoSecond, fmt.Errorf("NodeSquareClustering(%d): %w", v, ErrNoSecondNeighbors)
	}
	k1, k2 := len(w.Layer(1)), len(second)
	if k1 <= 1 {
		return SquareSingleNeighbor, fmt.Errorf("NodeSquareClustering(%d): %w", v, ErrSingleNeighbor)
	}
	cv := 0
	for _, x := range second {
		p := len(w.Preds(x))
		cv += p * (p - 1)
	}

	return float64(cv) / (float64(k2) * float64(k1) * float64(k1-1)), nil
}

// SquareClustering returns the mean square clustering over the nodes that
// have at least two first neighbors and at least one second neighbor.
// Complexity: O(N·(N+E)).
func SquareClustering(g *core.Graph, opts ...Option) (float64, error) {
	if g == nil {
		return 0, ErrGraphNil
	}
	if g.NodeCount() < 2 {
		return SquareIsolated, fmt.Errorf("SquareClustering: %w", ErrTooFewNodes)
	}
	o := resolve(opts)
	w, err := bfs.NewWalker(g, bfs.WithContext(o.ctx), bfs.WithMaxDepth(2))
	if err != nil {
		return 0, fmt.Errorf("SquareClustering: %w", err)
	}
	var sum float64
	eligible := 0
	for v := 0; v < g.NodeCount(); v++ {
		c, err := squareAt(g, w, v)
		if err != nil {
			if c == SquareIsolated && g.Degree(v) != 0 {
				// traversal failure, not a degenerate node
				return 0, fmt.Errorf("SquareClustering: %w", err)
			}
			continue
		}
		sum += c
		eligible++
	}
	if eligible == 0 {
		return 0, fmt.Errorf("SquareClustering: %w", ErrNoEligibleNodes)
	}
	o.log.Debug().Int("eligible", eligible).Msg("square clustering")

	return sum / float64(eligible), nil
}
