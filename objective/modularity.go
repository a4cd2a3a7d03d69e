// Package objective provides energy models for the annealing engine.
//
// Modularity is Newman's Q over a symmetric core.Graph:
//
//	Q = Σ_m [ e_m / L2 − (D_m / L2)² ]
//
// where L2 = Σ_i k_i, e_m is the total weight of adjacency entries with
// both ends in module m and D_m is the total strength of m's members. In
// the unweighted variant every link counts 1 and k_i is the degree.
//
// Module strengths D_m are read from the partition masses, so partitions
// must be created by NewPartition (or carry the same masses).
package objective

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvnet/core"
	"github.com/katalvlaran/lvnet/partition"
)

var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("objective: graph is nil")
	// ErrNoLinks is returned for a graph without links (Q is undefined).
	ErrNoLinks = errors.New("objective: graph has no links")
)

// Option configures a Modularity.
type Option func(*Modularity)

// WithWeights makes link weights count instead of 1 per link.
func WithWeights() Option {
	return func(q *Modularity) { q.weighted = true }
}

// Modularity scores partitions of one graph.
type Modularity struct {
	g        *core.Graph
	weighted bool
	k        []float64
	l2       float64
	// neighbors caches link targets without self-links.
	neighbors [][]int
}

// NewModularity precomputes strengths for g.
// Complexity: O(N+E).
func NewModularity(g *core.Graph, opts ...Option) (*Modularity, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.Resolved() {
		return nil, fmt.Errorf("NewModularity: %w", core.ErrUnresolved)
	}
	q := &Modularity{g: g}
	for _, opt := range opts {
		opt(q)
	}
	n := g.NodeCount()
	q.k = make([]float64, n)
	q.neighbors = make([][]int, n)
	for u := 0; u < n; u++ {
		for _, l := range g.Links(u) {
			q.k[u] += q.weight(l)
			if l.To != u {
				q.neighbors[u] = append(q.neighbors[u], l.To)
			}
		}
		q.l2 += q.k[u]
	}
	if q.l2 == 0 {
		return nil, fmt.Errorf("NewModularity: %w", ErrNoLinks)
	}

	return q, nil
}

func (q *Modularity) weight(l core.Link) float64 {
	if q.weighted {
		return l.Weight
	}

	return 1
}

// Strengths returns a copy of the per-node strengths k_i.
func (q *Modularity) Strengths() []float64 { return append([]float64(nil), q.k...) }

// NewPartition returns a partition of the graph's nodes over modules slots
// (0 = singletons) carrying the node strengths as masses.
func (q *Modularity) NewPartition(modules int) (*partition.Partition, error) {
	return partition.New(q.g.NodeCount(), modules, partition.WithMass(q.k))
}

// Energy returns Q of p.
// Complexity: O(N+E).
func (q *Modularity) Energy(p *partition.Partition) float64 {
	var e float64
	for u := 0; u < q.g.NodeCount(); u++ {
		mu := p.ModuleOf(u)
		for _, l := range q.g.Links(u) {
			if p.ModuleOf(l.To) == mu {
				e += q.weight(l)
			}
		}
	}
	var d2 float64
	for m := 0; m < p.M(); m++ {
		d := p.Mass(m)
		d2 += d * d
	}

	return e/q.l2 - d2/(q.l2*q.l2)
}

// DeltaMove returns the change of Q when node moves to module target.
// Complexity: O(deg(node)).
func (q *Modularity) DeltaMove(p *partition.Partition, node, target int) float64 {
	from := p.ModuleOf(node)
	if from == target {
		return 0
	}
	var wFrom, wTo float64
	for _, l := range q.g.Links(node) {
		if l.To == node {
			continue
		}
		switch p.ModuleOf(l.To) {
		case from:
			wFrom += q.weight(l)
		case target:
			wTo += q.weight(l)
		}
	}
	ki := q.k[node]

	return 2*(wTo-wFrom)/q.l2 - 2*ki*(p.Mass(target)-p.Mass(from)+ki)/(q.l2*q.l2)
}

// DeltaMerge returns the change of Q when modules a and b are merged.
// Complexity: O(links of the smaller module).
func (q *Modularity) DeltaMerge(p *partition.Partition, a, b int) float64 {
	if a == b {
		return 0
	}
	if p.Size(a) > p.Size(b) {
		a, b = b, a
	}
	var wab float64
	for _, u := range p.Members(a) {
		for _, l := range q.g.Links(u) {
			if p.ModuleOf(l.To) == b {
				wab += q.weight(l)
			}
		}
	}

	return 2*wab/q.l2 - 2*p.Mass(a)*p.Mass(b)/(q.l2*q.l2)
}

// Neighbors returns the nodes linked from node, self excluded. The slice is
// owned by the Modularity.
func (q *Modularity) Neighbors(node int) []int { return q.neighbors[node] }
