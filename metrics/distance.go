package metrics

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvnet/bfs"
	"github.com/katalvlaran/lvnet/core"
)

// errStopSweep aborts a sweep early without reporting a failure.
var errStopSweep = errors.New("metrics: stop sweep")

// DistanceHistogram returns the distribution of shortest-path lengths over
// ordered pairs: h[d] is the fraction of ordered pairs (u, v), u != v, at
// distance d. Each source contributes (nodes at d)/N/(N-1). Unreachable
// pairs contribute nothing, so Σh < 1 on disconnected graphs. h[0] is 0.
// Complexity: O(N·(N+E)).
func DistanceHistogram(g *core.Graph, opts ...Option) ([]float64, error) {
	o := resolve(opts)
	if g != nil && g.NodeCount() < 2 {
		return nil, fmt.Errorf("DistanceHistogram: %w", ErrTooFewNodes)
	}
	var hist []float64
	err := sweep(g, "DistanceHistogram", o, func(w *bfs.Walker, _ int) error {
		hist = accumulate(hist, w, float64(g.NodeCount())*float64(g.NodeCount()-1))
		return nil
	})
	if err != nil {
		return nil, err
	}

	return hist, nil
}

// DistanceHistogramFrom returns the distance distribution from src alone:
// h[d] = (nodes at distance d)/(N-1).
// Complexity: O(N+E).
func DistanceHistogramFrom(g *core.Graph, src int, opts ...Option) ([]float64, error) {
	o := resolve(opts)
	if g == nil {
		return nil, ErrGraphNil
	}
	if g.NodeCount() < 2 {
		return nil, fmt.Errorf("DistanceHistogramFrom: %w", ErrTooFewNodes)
	}
	w, err := bfs.NewWalker(g, bfs.WithContext(o.ctx))
	if err != nil {
		return nil, fmt.Errorf("DistanceHistogramFrom: %w", err)
	}
	if err = w.Run(src); err != nil {
		return nil, fmt.Errorf("DistanceHistogramFrom(%d): %w", src, err)
	}

	return accumulate(nil, w, float64(g.NodeCount()-1)), nil
}

// accumulate adds the layer sizes of w, divided by norm, into hist.
func accumulate(hist []float64, w *bfs.Walker, norm float64) []float64 {
	for len(hist) <= w.Depth() {
		hist = append(hist, 0)
	}
	for d := 1; d <= w.Depth(); d++ {
		hist[d] += float64(len(w.Layer(d))) / norm
	}

	return hist
}

// AveragePathLength returns the mean shortest-path length over ordered
// pairs of distinct nodes. If any source fails to reach every node it
// returns -1 and ErrDisconnected.
// Complexity: O(N·(N+E)).
func AveragePathLength(g *core.Graph, opts ...Option) (float64, error) {
	o := resolve(opts)
	if g != nil && g.NodeCount() < 2 {
		return -1, fmt.Errorf("AveragePathLength: %w", ErrTooFewNodes)
	}
	var hist []float64
	unreached := -1
	err := sweep(g, "AveragePathLength", o, func(w *bfs.Walker, src int) error {
		if w.Visited() != g.NodeCount() {
			unreached = src
			return errStopSweep
		}
		hist = accumulate(hist, w, float64(g.NodeCount())*float64(g.NodeCount()-1))
		return nil
	})
	if unreached >= 0 {
		o.log.Warn().Int("source", unreached).Msg("average path length: graph is not connected")
		return -1, fmt.Errorf("AveragePathLength: source %d: %w", unreached, ErrDisconnected)
	}
	if err != nil {
		return -1, err
	}
	var apl float64
	for d, h := range hist {
		apl += float64(d) * h
	}

	return apl, nil
}

// AverageInverseDistance returns the mean of 1/d over ordered pairs of
// distinct nodes; unreachable pairs count as 1/∞ = 0, so disconnected
// graphs are accepted.
// Complexity: O(N·(N+E)).
func AverageInverseDistance(g *core.Graph, opts ...Option) (float64, error) {
	hist, err := DistanceHistogram(g, opts...)
	if err != nil {
		return 0, err
	}
	var eff float64
	for d := 1; d < len(hist); d++ {
		eff += hist[d] / float64(d)
	}

	return eff, nil
}
