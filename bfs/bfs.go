// Package bfs provides breadth-first search over a core.Graph,
// returning unweighted shortest-path distances, every minimal-distance
// predecessor, and visit order.
//
// BFS explores nodes layer by layer from a source node, with optional
// hooks, depth limiting, and neighbor filtering.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/lvnet/core"
)

// Walker encapsulates reusable BFS scratch for one graph. The same Walker
// can be started from many sources; Start resets only the entries the
// previous traversal touched.
//
// A Walker is not safe for concurrent use; run one Walker per goroutine.
type Walker struct {
	graph *core.Graph
	opts  Options
	// dist[v] is -1 until v is reached.
	dist  []int
	preds [][]int
	// queue holds every reached node in discovery order; layers[d] is the
	// queue offset of the first node at distance d, with one extra entry
	// marking the end of the last layer.
	queue  []int
	layers []int
	source int
	// done is set once a layer adds nothing.
	done bool
}

// NewWalker validates g and opts and allocates scratch for g's current size.
// Returns ErrGraphNil, ErrOptionViolation, or core.ErrUnresolved when g still
// has pending soft links.
func NewWalker(g *core.Graph, opts ...Option) (*Walker, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.Resolved() {
		return nil, fmt.Errorf("bfs: %w", core.ErrUnresolved)
	}
	w := &Walker{graph: g, opts: o, source: -1}
	w.grow()

	return w, nil
}

// grow (re)allocates scratch when the graph gained nodes since the last run.
func (w *Walker) grow() {
	n := w.graph.NodeCount()
	if len(w.dist) == n {
		return
	}
	w.dist = make([]int, n)
	for i := range w.dist {
		w.dist[i] = -1
	}
	w.preds = make([][]int, n)
	w.queue = make([]int, 0, n)
	w.layers = w.layers[:0]
}

// Reset clears the scratch touched by the previous traversal.
// Complexity: O(visited).
func (w *Walker) Reset() {
	for _, v := range w.queue {
		w.dist[v] = -1
		w.preds[v] = w.preds[v][:0]
	}
	w.queue = w.queue[:0]
	w.layers = w.layers[:0]
	w.source = -1
	w.done = false
}

// Start resets the walker and seeds it with src at distance 0.
func (w *Walker) Start(src int) error {
	if !w.graph.HasNode(src) {
		return fmt.Errorf("%w: %d", ErrStartVertexNotFound, src)
	}
	if !w.graph.Resolved() {
		return fmt.Errorf("bfs: %w", core.ErrUnresolved)
	}
	w.Reset()
	w.grow()
	w.source = src
	w.dist[src] = 0
	w.queue = append(w.queue, src)
	w.layers = append(w.layers, 0, 1)
	w.opts.OnEnqueue(src, 0)

	return nil
}

// Advance expands the deepest layer by one hop and returns how many new
// nodes it discovered. A node reached again from the same layer gains an
// extra predecessor and is not enqueued twice. Advance returns 0 once the
// frontier is exhausted or MaxDepth is reached.
// Complexity: O(size of layer + its outgoing links).
func (w *Walker) Advance() (int, error) {
	if w.source < 0 {
		return 0, ErrNotStarted
	}
	d := w.Depth()
	if w.done || (w.opts.MaxDepth > 0 && d >= w.opts.MaxDepth) {
		return 0, nil
	}
	lo, hi := w.layers[d], w.layers[d+1]
	for i := lo; i < hi; i++ {
		u := w.queue[i]
		if err := w.opts.OnVisit(u, d); err != nil {
			return 0, fmt.Errorf("bfs: OnVisit error at %d: %w", u, err)
		}
		for _, l := range w.graph.Links(u) {
			v := l.To
			if !w.opts.FilterNeighbor(u, v) {
				continue
			}
			switch w.dist[v] {
			case -1:
				w.dist[v] = d + 1
				w.preds[v] = append(w.preds[v], u)
				w.queue = append(w.queue, v)
				w.opts.OnEnqueue(v, d+1)
			case d + 1:
				w.preds[v] = append(w.preds[v], u)
			}
		}
	}
	added := len(w.queue) - hi
	if added > 0 {
		w.layers = append(w.layers, len(w.queue))
	} else {
		w.done = true
	}

	return added, nil
}

// Run traverses from src until the frontier is exhausted, checking the
// context before every layer.
func (w *Walker) Run(src int) error {
	if err := w.Start(src); err != nil {
		return err
	}
	for {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}
		added, err := w.Advance()
		if err != nil {
			return err
		}
		if added == 0 {
			return nil
		}
	}
}

// Source returns the current source, or -1 before Start.
func (w *Walker) Source() int { return w.source }

// Order returns every reached node in discovery order. The slice is owned by
// the walker and valid until the next Start or Reset.
func (w *Walker) Order() []int { return w.queue }

// Visited returns the size of the closure reached so far.
func (w *Walker) Visited() int { return len(w.queue) }

// Dist returns the distance of v from the source, or -1 if unreached.
func (w *Walker) Dist(v int) int {
	if v < 0 || v >= len(w.dist) {
		return -1
	}

	return w.dist[v]
}

// Preds returns every predecessor of v at minimal distance. The slice is
// owned by the walker.
func (w *Walker) Preds(v int) []int {
	if v < 0 || v >= len(w.preds) {
		return nil
	}

	return w.preds[v]
}

// Layer returns the nodes at distance d, or nil when d is out of range.
func (w *Walker) Layer(d int) []int {
	if d < 0 || d+1 >= len(w.layers) {
		return nil
	}

	return w.queue[w.layers[d]:w.layers[d+1]]
}

// Depth returns the largest distance discovered so far, or -1 before Start.
func (w *Walker) Depth() int {
	if len(w.layers) == 0 {
		return -1
	}

	return len(w.layers) - 2
}

// Result copies the walker state into an independent BFSResult.
func (w *Walker) Result() *BFSResult {
	res := &BFSResult{
		Source: w.source,
		Order:  append([]int(nil), w.queue...),
		Dist:   append([]int(nil), w.dist...),
		Preds:  make([][]int, len(w.preds)),
	}
	for _, v := range w.queue {
		if len(w.preds[v]) > 0 {
			res.Preds[v] = append([]int(nil), w.preds[v]...)
		}
	}

	return res
}

// BFS runs breadth-first search on g starting from src, applying any number
// of functional Options.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, core.ErrUnresolved for graphs with
// pending soft links, the context error on cancellation, or any
// user-supplied hook error.
func BFS(g *core.Graph, src int, opts ...Option) (*BFSResult, error) {
	w, err := NewWalker(g, opts...)
	if err != nil {
		return nil, err
	}
	if err = w.Run(src); err != nil {
		return nil, err
	}

	return w.Result(), nil
}
