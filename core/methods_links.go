// File: methods_links.go
// Role: Link lifecycle (hard and soft), lookups, read-only edge iteration and
// betweenness accumulators.
//
// Determinism:
//   - Links keep insertion order; Edges() iterates sources in id order and
//     targets in insertion order.
//
// Complexity notes:
//   - Link lookups scan the source adjacency: O(deg(u)).
package core

import (
	"fmt"
	"math"
)

const (
	methodAddLink     = "AddLink"
	methodAddLinkSoft = "AddLinkSoft"
	methodRemoveLink  = "RemoveLink"
	methodRewire      = "Rewire"
)

// AddLink creates the link u→v with the given weight.
//
// Behavior:
//   - u == v without WithSelfLinks → ErrSelfLink.
//   - If u→v exists: WithAccumulate adds weight and reports true; otherwise
//     nothing changes and false is reported.
//   - WithSymmetric applies the same rule to v→u (skipped for self-links).
//
// Returns true when at least one entry was created or reinforced.
// Complexity: O(deg(u) + deg(v)).
func (g *Graph) AddLink(u, v int, weight float64, opts ...LinkOption) (bool, error) {
	if !g.HasNode(u) || !g.HasNode(v) {
		return false, fmt.Errorf("%s(%d→%d): %w", methodAddLink, u, v, ErrNodeNotFound)
	}

	return g.addLink(methodAddLink, u, v, weight, false, resolveLinkOptions(opts))
}

// AddLinkSoft records the link u→v by target id only. v does not need to
// exist yet; the link stays unresolved until Rewire. Existence checks compare
// target ids, exactly as AddLink does.
// Complexity: O(deg(u)).
func (g *Graph) AddLinkSoft(u, v int, weight float64, opts ...LinkOption) (bool, error) {
	if !g.HasNode(u) || v < 0 {
		return false, fmt.Errorf("%s(%d→%d): %w", methodAddLinkSoft, u, v, ErrNodeNotFound)
	}
	o := resolveLinkOptions(opts)
	// a soft mirror would need v to exist already
	o.symmetric = o.symmetric && g.HasNode(v)

	return g.addLink(methodAddLinkSoft, u, v, weight, true, o)
}

func (g *Graph) addLink(method string, u, v int, weight float64, soft bool, o linkOptions) (bool, error) {
	if math.IsNaN(weight) || math.IsInf(weight, 0) {
		return false, fmt.Errorf("%s(%d→%d, w=%g): %w", method, u, v, weight, ErrBadWeight)
	}
	if u == v && !o.selfLinks {
		return false, fmt.Errorf("%s(%d→%d): %w", method, u, v, ErrSelfLink)
	}
	changed := g.putLink(u, v, weight, soft, o)
	if o.symmetric && u != v {
		if g.putLink(v, u, weight, soft, o) {
			changed = true
		}
	}

	return changed, nil
}

// putLink inserts or reinforces a single directed entry.
func (g *Graph) putLink(u, v int, weight float64, soft bool, o linkOptions) bool {
	if i := g.indexOf(u, v); i >= 0 {
		if o.accumulate {
			g.adjacency[u][i].Weight += weight
			return true
		}
		return false
	}
	g.adjacency[u] = append(g.adjacency[u], Link{To: v, Weight: weight, Status: o.status, soft: soft})
	if soft {
		g.pending++
	}

	return true
}

// Rewire resolves every soft link in one bulk pass. A soft link whose target
// has no node yields ErrDanglingLink and the graph stays unresolved.
// Complexity: O(N + E).
func (g *Graph) Rewire() error {
	if g.pending == 0 {
		return nil
	}
	n := len(g.nodes)
	for u := range g.adjacency {
		for i := range g.adjacency[u] {
			l := &g.adjacency[u][i]
			if !l.soft {
				continue
			}
			if l.To >= n {
				return fmt.Errorf("%s: %d→%d: %w", methodRewire, u, l.To, ErrDanglingLink)
			}
		}
	}
	for u := range g.adjacency {
		for i := range g.adjacency[u] {
			g.adjacency[u][i].soft = false
		}
	}
	g.pending = 0

	return nil
}

// RemoveLink deletes u→v and, when symmetric, v→u. Missing links report
// ErrLinkNotFound and leave the graph untouched.
// Complexity: O(deg(u) + deg(v)).
func (g *Graph) RemoveLink(u, v int, symmetric bool) error {
	if !g.HasNode(u) || !g.HasNode(v) {
		return fmt.Errorf("%s(%d→%d): %w", methodRemoveLink, u, v, ErrNodeNotFound)
	}
	i := g.indexOf(u, v)
	if i < 0 {
		return fmt.Errorf("%s(%d→%d): %w", methodRemoveLink, u, v, ErrLinkNotFound)
	}
	j := -1
	if symmetric && u != v {
		if j = g.indexOf(v, u); j < 0 {
			return fmt.Errorf("%s(%d→%d): mirror: %w", methodRemoveLink, v, u, ErrLinkNotFound)
		}
	}
	g.deleteAt(u, i)
	if j >= 0 {
		g.deleteAt(v, j)
	}

	return nil
}

// deleteAt removes entry i of u's adjacency, keeping insertion order.
func (g *Graph) deleteAt(u, i int) {
	adj := g.adjacency[u]
	if adj[i].soft {
		g.pending--
	}
	copy(adj[i:], adj[i+1:])
	g.adjacency[u] = adj[:len(adj)-1]
}

// indexOf returns the position of u→v in u's adjacency, or -1.
func (g *Graph) indexOf(u, v int) int {
	for i, l := range g.adjacency[u] {
		if l.To == v {
			return i
		}
	}

	return -1
}

// HasLink reports whether u→v exists.
// Complexity: O(deg(u)).
func (g *Graph) HasLink(u, v int) bool {
	if !g.HasNode(u) {
		return false
	}

	return g.indexOf(u, v) >= 0
}

// Link returns a copy of the u→v entry.
func (g *Graph) Link(u, v int) (Link, error) {
	if !g.HasNode(u) {
		return Link{}, fmt.Errorf("Link(%d→%d): %w", u, v, ErrNodeNotFound)
	}
	i := g.indexOf(u, v)
	if i < 0 {
		return Link{}, fmt.Errorf("Link(%d→%d): %w", u, v, ErrLinkNotFound)
	}

	return g.adjacency[u][i], nil
}

// Links exposes the live outgoing links of u in insertion order. The slice
// is owned by the graph: callers must treat it as read-only and must not
// retain it across mutations.
func (g *Graph) Links(u int) []Link {
	if !g.HasNode(u) {
		return nil
	}

	return g.adjacency[u]
}

// Edges returns every link as an Edge. With symmetric set, each mirrored
// pair is reported once (From <= To).
// Complexity: O(N + E).
func (g *Graph) Edges(symmetric bool) []Edge {
	out := make([]Edge, 0, g.TotalLinks(symmetric))
	for u, adj := range g.adjacency {
		for _, l := range adj {
			if symmetric && u > l.To {
				continue
			}
			out = append(out, Edge{From: u, To: l.To, Weight: l.Weight})
		}
	}

	return out
}

// ResetBetweenness zeroes every link's betweenness accumulator.
// Complexity: O(N + E).
func (g *Graph) ResetBetweenness() {
	for u := range g.adjacency {
		for i := range g.adjacency[u] {
			g.adjacency[u][i].Betweenness = 0
		}
	}
}

// AccrueBetweenness adds x to the accumulator of u→v and returns the new
// value.
// Complexity: O(deg(u)).
func (g *Graph) AccrueBetweenness(u, v int, x float64) (float64, error) {
	if !g.HasNode(u) {
		return 0, fmt.Errorf("AccrueBetweenness(%d→%d): %w", u, v, ErrNodeNotFound)
	}
	i := g.indexOf(u, v)
	if i < 0 {
		return 0, fmt.Errorf("AccrueBetweenness(%d→%d): %w", u, v, ErrLinkNotFound)
	}
	g.adjacency[u][i].Betweenness += x

	return g.adjacency[u][i].Betweenness, nil
}
