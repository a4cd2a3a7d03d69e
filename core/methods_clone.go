// File: methods_clone.go
// Role: Whole-graph maintenance: deep copy, isolated-node removal,
// renumbering and subgraph materialization.
//
// Complexity notes:
//   - Every operation here is O(N + E).
package core

import "fmt"

// Copy returns a deep clone of g: nodes, attributes, links, statuses,
// betweenness accumulators and pending soft links. The clone shares no
// memory with g.
// Complexity: O(N + E).
func (g *Graph) Copy() *Graph {
	c := NewWithCapacity(len(g.nodes))
	c.nodes = append(c.nodes, g.nodes...)
	for _, adj := range g.adjacency {
		var links []Link
		if len(adj) > 0 {
			links = make([]Link, len(adj))
			copy(links, adj)
		}
		c.adjacency = append(c.adjacency, links)
	}
	for label, id := range g.labels {
		c.labels[label] = id
	}
	c.pending = g.pending

	return c
}

// RemoveIsolatedNodes drops every node with neither outgoing nor incoming
// links, then renumbers the survivors. It returns the number of removed
// nodes.
// Complexity: O(N + E).
func (g *Graph) RemoveIsolatedNodes() int {
	n := len(g.nodes)
	keep := make([]bool, n)
	for u, adj := range g.adjacency {
		if len(adj) > 0 {
			keep[u] = true
		}
		for _, l := range adj {
			if l.To >= 0 && l.To < n {
				keep[l.To] = true
			}
		}
	}
	before := n
	g.compact(keep)
	g.Renumber()

	return before - len(g.nodes)
}

// compact removes the nodes not marked in keep while preserving order. Node
// ids and link targets are left untouched; Renumber restores the id
// invariant afterwards.
func (g *Graph) compact(keep []bool) {
	w := 0
	for r := range g.nodes {
		if !keep[r] {
			for _, l := range g.adjacency[r] {
				if l.soft {
					g.pending--
				}
			}
			continue
		}
		g.nodes[w] = g.nodes[r]
		g.adjacency[w] = g.adjacency[r]
		w++
	}
	for i := w; i < len(g.nodes); i++ {
		g.adjacency[i] = nil
	}
	g.nodes = g.nodes[:w]
	g.adjacency = g.adjacency[:w]
}

// Renumber makes every node id equal its position again and remaps link
// targets accordingly. Links pointing to nodes that no longer exist are
// dropped. The label index is rebuilt.
// Complexity: O(N + E).
func (g *Graph) Renumber() {
	maxID := -1
	for _, nd := range g.nodes {
		if nd.ID > maxID {
			maxID = nd.ID
		}
	}
	remap := make([]int, maxID+1)
	for i := range remap {
		remap[i] = unset
	}
	for pos, nd := range g.nodes {
		if nd.ID >= 0 {
			remap[nd.ID] = pos
		}
	}

	for u := range g.adjacency {
		adj := g.adjacency[u][:0]
		for _, l := range g.adjacency[u] {
			if l.soft {
				// soft targets are resolved later against the final ids
				adj = append(adj, l)
				continue
			}
			if l.To < 0 || l.To >= len(remap) || remap[l.To] == unset {
				continue
			}
			l.To = remap[l.To]
			adj = append(adj, l)
		}
		g.adjacency[u] = adj
	}

	g.labels = make(map[string]int, len(g.nodes))
	for pos := range g.nodes {
		g.nodes[pos].ID = pos
		if _, ok := g.labels[g.nodes[pos].Label]; !ok {
			g.labels[g.nodes[pos].Label] = pos
		}
	}
}

// Subgraph materializes the members flagged in keep as an independent graph.
// Links leaving the member set are dropped, node attributes are preserved and
// ids are renumbered 0..k-1 in original order. Node.ID of the result is the
// new id; use the returned mapping (new id → old id) to translate back.
// Complexity: O(N + E).
func (g *Graph) Subgraph(keep []bool) (*Graph, []int, error) {
	if len(keep) != len(g.nodes) {
		return nil, nil, fmt.Errorf("Subgraph: %d flags for %d nodes: %w", len(keep), len(g.nodes), ErrMaskLength)
	}
	if g.pending > 0 {
		return nil, nil, fmt.Errorf("Subgraph: %w", ErrUnresolved)
	}

	newID := make([]int, len(g.nodes))
	var oldID []int
	for u := range g.nodes {
		newID[u] = unset
		if keep[u] {
			newID[u] = len(oldID)
			oldID = append(oldID, u)
		}
	}

	s := NewWithCapacity(len(oldID))
	for _, u := range oldID {
		nd := g.nodes[u]
		id := s.AppendNode(nd.Label)
		s.nodes[id].Coords = nd.Coords
		s.nodes[id].Group = nd.Group
		s.nodes[id].Aux = nd.Aux
	}
	for _, u := range oldID {
		src := newID[u]
		for _, l := range g.adjacency[u] {
			if newID[l.To] == unset {
				continue
			}
			l.To = newID[l.To]
			s.adjacency[src] = append(s.adjacency[src], l)
		}
	}

	return s, oldID, nil
}
