// File: methods_nodes.go
// Role: Node lifecycle, attributes and per-node queries.
//
// Determinism:
//   - Ids are assigned sequentially; Nodes() iterates in id order.
//
// Complexity notes:
//   - AppendNode is O(1) amortized; NodeByLabel is O(1) via the label index.
package core

import "fmt"

// AppendNode adds a node with the given label at the end of the graph and
// returns its id. Labels are indexed on first use; a repeated label keeps
// pointing to its first node.
// Complexity: O(1) amortized.
func (g *Graph) AppendNode(label string) int {
	id := len(g.nodes)
	g.nodes = append(g.nodes, Node{
		ID:     id,
		Label:  label,
		Coords: [3]float64{unset, unset, unset},
		Group:  unset,
		Aux:    unset,
	})
	g.adjacency = append(g.adjacency, nil)
	if _, ok := g.labels[label]; !ok {
		g.labels[label] = id
	}

	return id
}

// NodeCount returns N.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// HasNode reports whether id is a valid node id.
func (g *Graph) HasNode(id int) bool { return id >= 0 && id < len(g.nodes) }

// Node returns a copy of node id.
func (g *Graph) Node(id int) (Node, error) {
	if !g.HasNode(id) {
		return Node{}, fmt.Errorf("Node(%d): %w", id, ErrNodeNotFound)
	}

	return g.nodes[id], nil
}

// NodeByLabel returns the id of the first node carrying label.
// Complexity: O(1).
func (g *Graph) NodeByLabel(label string) (int, bool) {
	id, ok := g.labels[label]

	return id, ok
}

// Label returns the label of node id, or "" for an unknown id.
func (g *Graph) Label(id int) string {
	if !g.HasNode(id) {
		return ""
	}

	return g.nodes[id].Label
}

// Nodes returns a snapshot of all nodes in id order. The store is not
// mutated and the returned slice is owned by the caller.
// Complexity: O(N).
func (g *Graph) Nodes() []Node {
	out := make([]Node, len(g.nodes))
	copy(out, g.nodes)

	return out
}

// SetCoords assigns spatial coordinates to node id.
func (g *Graph) SetCoords(id int, x, y, z float64) error {
	if !g.HasNode(id) {
		return fmt.Errorf("SetCoords(%d): %w", id, ErrNodeNotFound)
	}
	g.nodes[id].Coords = [3]float64{x, y, z}

	return nil
}

// SetGroup assigns a group id to node id.
func (g *Graph) SetGroup(id, group int) error {
	if !g.HasNode(id) {
		return fmt.Errorf("SetGroup(%d): %w", id, ErrNodeNotFound)
	}
	g.nodes[id].Group = group

	return nil
}

// SetAux assigns the auxiliary scalar of node id.
func (g *Graph) SetAux(id int, v float64) error {
	if !g.HasNode(id) {
		return fmt.Errorf("SetAux(%d): %w", id, ErrNodeNotFound)
	}
	g.nodes[id].Aux = v

	return nil
}

// Degree returns the number of outgoing links of node id (the degree, for
// symmetric graphs). Unknown ids report 0.
// Complexity: O(1).
func (g *Graph) Degree(id int) int {
	if !g.HasNode(id) {
		return 0
	}

	return len(g.adjacency[id])
}

// Strength returns the sum of the weights of the outgoing links of node id.
// Complexity: O(deg(id)).
func (g *Graph) Strength(id int) float64 {
	if !g.HasNode(id) {
		return 0
	}
	var s float64
	for _, l := range g.adjacency[id] {
		s += l.Weight
	}

	return s
}

// TotalLinks counts the adjacency entries of the graph. For symmetric graphs
// every undirected link is stored twice, so symmetric halves the count.
// Complexity: O(N).
func (g *Graph) TotalLinks(symmetric bool) int {
	total := 0
	for _, adj := range g.adjacency {
		total += len(adj)
	}
	if symmetric {
		return total / 2
	}

	return total
}

// AverageDegree returns TotalLinks(symmetric) / N, or 0 for an empty graph.
func (g *Graph) AverageDegree(symmetric bool) float64 {
	if len(g.nodes) == 0 {
		return 0
	}

	return float64(g.TotalLinks(symmetric)) / float64(len(g.nodes))
}

// Resolved reports whether every link has a resolved target (no pending
// soft links).
func (g *Graph) Resolved() bool { return g.pending == 0 }
