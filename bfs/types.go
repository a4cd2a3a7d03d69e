// Package bfs provides tunable options and error definitions
// for breadth‐first search over a core.Graph.
package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start id is out of range.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNotStarted is returned when the walker is advanced before Start.
	ErrNotStarted = errors.New("bfs: walker not started")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when the walker is built.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines; checked once per layer.
	Ctx context.Context

	// OnEnqueue is called when a node is reached for the first time.
	// Receives node id and its distance from the source.
	OnEnqueue func(id int, depth int)

	// OnVisit is called when a node's links are expanded. If it returns an
	// error, Run aborts and propagates that error.
	OnVisit func(id int, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// FilterNeighbor can skip links by returning false.
	// Called for each link curr→neighbor.
	FilterNeighbor func(curr, neighbor int) bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns an Options with sane defaults:
//   - Context.Background()
//   - no depth limit (MaxDepth == 0)
//   - no filtering (all neighbors allowed)
//   - no-op hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		OnEnqueue:      func(int, int) {},
		OnVisit:        func(int, int) error { return nil },
		MaxDepth:       0,
		FilterNeighbor: func(_, _ int) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on first discovery.
func WithOnEnqueue(fn func(id int, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnVisit registers a callback to run when a node is expanded; returning
// an error from this callback stops the traversal.
func WithOnVisit(fn func(id int, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth (inclusive).
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		default:
			o.MaxDepth = d
		}
	}
}

// WithFilterNeighbor skips neighbors when fn returns false.
func WithFilterNeighbor(fn func(curr, neighbor int) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// BFSResult holds the outcome of a BFS traversal:
//   - Order: nodes reached, in discovery sequence (source first).
//   - Dist: distance per node id, -1 for unreached nodes.
//   - Preds: every predecessor at minimal distance, per node id.
type BFSResult struct {
	Source int
	Order  []int
	Dist   []int
	Preds  [][]int
}

// Reached reports whether id was reached from the source.
func (r *BFSResult) Reached(id int) bool {
	return id >= 0 && id < len(r.Dist) && r.Dist[id] >= 0
}

// PathTo reconstructs one shortest path from the source to dest, following
// the first recorded predecessor at every step.
// Returns an error if dest was not reached.
func (r *BFSResult) PathTo(dest int) ([]int, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("bfs: no path to %d", dest)
	}
	// build reversed path
	path := make([]int, 0, r.Dist[dest]+1)
	for cur := dest; ; {
		path = append(path, cur)
		if len(r.Preds[cur]) == 0 {
			break
		}
		cur = r.Preds[cur][0]
	}
	// reverse to get source → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// PathCount returns the number of distinct shortest paths from the source
// to dest (0 when unreached). Counts are accumulated along the predecessor
// DAG in discovery order.
// Complexity: O(V + E).
func (r *BFSResult) PathCount(dest int) float64 {
	if !r.Reached(dest) {
		return 0
	}
	sigma := make([]float64, len(r.Dist))
	for _, v := range r.Order {
		if len(r.Preds[v]) == 0 {
			sigma[v] = 1
			continue
		}
		for _, p := range r.Preds[v] {
			sigma[v] += sigma[p]
		}
	}

	return sigma[dest]
}
