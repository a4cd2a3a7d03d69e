package converters

import (
	"errors"
	"fmt"
	"sort"
	"strconv"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/lvnet/core"
)

// Sentinel errors for conversions.
var (
	// ErrGraphNil is returned when the input graph is nil.
	ErrGraphNil = errors.New("converters: graph is nil")
	// ErrSelfLink is returned on export of a self-link; gonum simple graphs
	// cannot hold one.
	ErrSelfLink = errors.New("converters: self-link not representable")
	// ErrAsymmetric is returned when an undirected export meets a link
	// whose mirror is missing or carries a different weight.
	ErrAsymmetric = errors.New("converters: link has no matching mirror")
)

// ToWeightedUndirected exports a symmetric g. Absent edges weigh absent;
// a node's self weight is 0.
// Complexity: O(N + E).
func ToWeightedUndirected(g *core.Graph, absent float64) (*simple.WeightedUndirectedGraph, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.Resolved() {
		return nil, fmt.Errorf("ToWeightedUndirected: %w", core.ErrUnresolved)
	}
	out := simple.NewWeightedUndirectedGraph(0, absent)
	for id := 0; id < g.NodeCount(); id++ {
		out.AddNode(simple.Node(id))
	}
	for u := 0; u < g.NodeCount(); u++ {
		for _, l := range g.Links(u) {
			if l.To == u {
				return nil, fmt.Errorf("ToWeightedUndirected: %d→%d: %w", u, u, ErrSelfLink)
			}
			back, err := g.Link(l.To, u)
			if err != nil || back.Weight != l.Weight {
				return nil, fmt.Errorf("ToWeightedUndirected: %d→%d: %w", u, l.To, ErrAsymmetric)
			}
			if u < l.To {
				out.SetWeightedEdge(out.NewWeightedEdge(simple.Node(u), simple.Node(l.To), l.Weight))
			}
		}
	}

	return out, nil
}

// ToWeightedDirected exports every adjacency entry as a directed edge.
// Complexity: O(N + E).
func ToWeightedDirected(g *core.Graph, absent float64) (*simple.WeightedDirectedGraph, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.Resolved() {
		return nil, fmt.Errorf("ToWeightedDirected: %w", core.ErrUnresolved)
	}
	out := simple.NewWeightedDirectedGraph(0, absent)
	for id := 0; id < g.NodeCount(); id++ {
		out.AddNode(simple.Node(id))
	}
	for _, e := range g.Edges(false) {
		if e.From == e.To {
			return nil, fmt.Errorf("ToWeightedDirected: %d→%d: %w", e.From, e.To, ErrSelfLink)
		}
		out.SetWeightedEdge(out.NewWeightedEdge(simple.Node(e.From), simple.Node(e.To), e.Weight))
	}

	return out, nil
}

// FromGonum imports src. Undirected graphs yield symmetric link pairs;
// weights come from graph.Weighted when src implements it, else 1.
// Complexity: O(N log N + E).
func FromGonum(src graph.Graph) (*core.Graph, error) {
	if src == nil {
		return nil, ErrGraphNil
	}
	nodes := graph.NodesOf(src.Nodes())
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].ID() < nodes[j].ID() })

	g := core.NewWithCapacity(len(nodes))
	index := make(map[int64]int, len(nodes))
	for _, n := range nodes {
		index[n.ID()] = g.AppendNode(strconv.FormatInt(n.ID(), 10))
	}

	weighted, isWeighted := src.(graph.Weighted)
	_, undirected := src.(graph.Undirected)
	for _, n := range nodes {
		uid := n.ID()
		to := graph.NodesOf(src.From(uid))
		sort.Slice(to, func(i, j int) bool { return to[i].ID() < to[j].ID() })
		for _, m := range to {
			vid := m.ID()
			if undirected && vid < uid {
				continue
			}
			w := 1.0
			if isWeighted {
				if x, ok := weighted.Weight(uid, vid); ok {
					w = x
				}
			}
			var opts []core.LinkOption
			if undirected {
				opts = append(opts, core.WithSymmetric())
			}
			if uid == vid {
				opts = append(opts, core.WithSelfLinks())
			}
			if _, err := g.AddLink(index[uid], index[vid], w, opts...); err != nil {
				return nil, fmt.Errorf("FromGonum: %d→%d: %w", uid, vid, err)
			}
		}
	}

	return g, nil
}
