package connectivity

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvnet/bfs"
	"github.com/katalvlaran/lvnet/core"
)

// Component is one extracted cluster.
type Component struct {
	// Graph is the cluster materialized with ids 0..len(Members)-1.
	Graph *core.Graph
	// Members maps each id of Graph to its id in the source graph.
	Members []int
}

// Size returns the number of nodes in the cluster.
func (c *Component) Size() int { return len(c.Members) }

// IsConnected reports whether every node is reachable from node 0.
// Intended for undirected (symmetric) graphs; on directed graphs it tests
// reachability from node 0 only.
// Complexity: O(N+E).
func IsConnected(g *core.Graph, opts ...Option) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	if g.NodeCount() == 0 {
		return false, ErrEmptyGraph
	}
	o := resolve(opts)
	w, err := bfs.NewWalker(g, bfs.WithContext(o.ctx))
	if err != nil {
		return false, fmt.Errorf("IsConnected: %w", err)
	}
	if err = w.Run(0); err != nil {
		return false, fmt.Errorf("IsConnected: %w", err)
	}
	if w.Visited() != g.NodeCount() {
		o.log.Debug().Int("reached", w.Visited()).Int("nodes", g.NodeCount()).Msg("graph is not connected")
		return false, nil
	}

	return true, nil
}

// LargestStrong returns the largest strongly connected cluster of g.
// Extraction stops early once a cluster holds more than N/2 nodes or more
// than threshold nodes (threshold ≤ 0 disables the latter).
// Complexity: O(N·(N+E)) worst case.
func LargestStrong(g *core.Graph, threshold int, opts ...Option) (*Component, error) {
	return largest(g, Strong, threshold, "LargestStrong", resolve(opts))
}

// LargestWeak returns the largest weakly connected cluster of g, with the
// same early stop as LargestStrong.
// Complexity: O(N·(N+E)) worst case.
func LargestWeak(g *core.Graph, threshold int, opts ...Option) (*Component, error) {
	return largest(g, Weak, threshold, "LargestWeak", resolve(opts))
}

// Components returns the member ids (ascending) of every cluster of g in
// the given mode, in seed order.
// Complexity: O(N·(N+E)) worst case.
func Components(g *core.Graph, mode Mode, opts ...Option) ([][]int, error) {
	o := resolve(opts)
	ex, err := newExtractor(g, mode, o)
	if err != nil {
		return nil, fmt.Errorf("Components: %w", err)
	}
	var comps [][]int
	for {
		ok, err := ex.next()
		if err != nil {
			return nil, fmt.Errorf("Components(%s): %w", mode, err)
		}
		if !ok {
			break
		}
		comps = append(comps, ex.members())
	}
	o.log.Debug().Stringer("mode", mode).Int("clusters", len(comps)).Msg("components extracted")

	return comps, nil
}

// CountStrong returns the number of strongly connected clusters of g.
func CountStrong(g *core.Graph, opts ...Option) (int, error) {
	comps, err := Components(g, Strong, opts...)
	if err != nil {
		return 0, err
	}

	return len(comps), nil
}

func largest(g *core.Graph, mode Mode, threshold int, name string, o options) (*Component, error) {
	ex, err := newExtractor(g, mode, o)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	n := g.NodeCount()
	var giant *Component
	for {
		ok, err := ex.next()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		if !ok {
			break
		}
		size := ex.size
		if giant != nil && size <= giant.Size() {
			continue
		}
		sub, members, err := g.Subgraph(ex.member)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		giant = &Component{Graph: sub, Members: members}
		o.log.Debug().Stringer("mode", mode).Int("seed", members[0]).Int("size", size).Msg("new largest cluster")
		if size > n/2 || (threshold > 0 && size > threshold) {
			o.log.Info().Stringer("mode", mode).Int("size", size).Int("nodes", n).Msg("largest cluster found early")
			break
		}
	}

	return giant, nil
}

// extractor grows one cluster at a time. Forward growth runs on g; the
// reachability tests run on a frozen copy with their own walker.
type extractor struct {
	mode Mode
	ctx  context.Context
	fwd  *bfs.Walker
	back *bfs.Walker
	// selected marks nodes owned by any cluster so far; member marks the
	// cluster being grown; rejected marks strong candidates that failed
	// the mutual-reachability test for the current cluster.
	selected []bool
	member   []bool
	rejected []bool
	size     int
	cursor   int
	// err carries a failure out of the neighbor filter.
	err error
}

func newExtractor(g *core.Graph, mode Mode, o options) (*extractor, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if mode != Strong && mode != Weak {
		return nil, fmt.Errorf("%w: %d", ErrInvalidMode, int(mode))
	}
	if g.NodeCount() == 0 {
		return nil, ErrEmptyGraph
	}
	if !g.Resolved() {
		return nil, core.ErrUnresolved
	}
	n := g.NodeCount()
	ex := &extractor{
		mode:     mode,
		ctx:      o.ctx,
		selected: make([]bool, n),
		member:   make([]bool, n),
		rejected: make([]bool, n),
	}
	var err error
	if ex.fwd, err = bfs.NewWalker(g, bfs.WithContext(o.ctx), bfs.WithFilterNeighbor(ex.admit)); err != nil {
		return nil, err
	}
	if ex.back, err = bfs.NewWalker(g.Copy(), bfs.WithContext(o.ctx)); err != nil {
		return nil, err
	}

	return ex, nil
}

// admit is the forward walker's neighbor filter.
func (ex *extractor) admit(_, v int) bool {
	if ex.mode == Weak {
		// members were expanded by an earlier closure
		if ex.selected[v] {
			return false
		}
		ex.absorb(v)
		return true
	}
	if ex.member[v] {
		return true
	}
	if ex.selected[v] || ex.rejected[v] || ex.err != nil {
		return false
	}
	ok, err := ex.reaches(v)
	if err != nil {
		ex.err = err
		return false
	}
	if !ok {
		ex.rejected[v] = true
		return false
	}
	ex.absorb(v)

	return true
}

func (ex *extractor) absorb(v int) {
	ex.member[v] = true
	ex.selected[v] = true
	ex.size++
}

// next grows the cluster of the first unselected node. It returns false
// once every node belongs to a cluster.
func (ex *extractor) next() (bool, error) {
	for ex.cursor < len(ex.selected) && ex.selected[ex.cursor] {
		ex.cursor++
	}
	if ex.cursor == len(ex.selected) {
		return false, nil
	}
	for v := range ex.member {
		ex.member[v] = false
		ex.rejected[v] = false
	}
	ex.size = 0

	seed := ex.cursor
	ex.absorb(seed)
	if err := ex.grow(seed); err != nil {
		return false, err
	}
	if ex.mode == Weak {
		if err := ex.sweep(); err != nil {
			return false, err
		}
	}

	return true, nil
}

// grow runs the filtered forward BFS from src.
func (ex *extractor) grow(src int) error {
	if err := ex.fwd.Run(src); err != nil {
		return err
	}

	return ex.err
}

// sweep absorbs every unselected node that reaches the cluster, with its
// forward closure, until a full pass absorbs nothing.
func (ex *extractor) sweep() error {
	for changed := true; changed; {
		changed = false
		for q := ex.cursor + 1; q < len(ex.selected); q++ {
			if ex.selected[q] {
				continue
			}
			ok, err := ex.reaches(q)
			if err != nil {
				return err
			}
			if !ok {
				continue
			}
			ex.absorb(q)
			if err = ex.grow(q); err != nil {
				return err
			}
			changed = true
		}
	}

	return nil
}

// reaches reports whether a member of the current cluster is reachable from
// v in one hop or more. Each new layer is checked as soon as it is found.
func (ex *extractor) reaches(v int) (bool, error) {
	if err := ex.back.Start(v); err != nil {
		return false, err
	}
	for {
		select {
		case <-ex.ctx.Done():
			return false, ex.ctx.Err()
		default:
		}
		added, err := ex.back.Advance()
		if err != nil {
			return false, err
		}
		if added == 0 {
			return false, nil
		}
		for _, u := range ex.back.Layer(ex.back.Depth()) {
			if ex.member[u] {
				return true, nil
			}
		}
	}
}

// members returns the current cluster's ids in ascending order.
func (ex *extractor) members() []int {
	out := make([]int, 0, ex.size)
	for v, in := range ex.member {
		if in {
			out = append(out, v)
		}
	}

	return out
}
