package metrics

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvnet/core"
)

// Degrees returns the degree sequence indexed by node id.
// Complexity: O(N).
func Degrees(g *core.Graph) []int {
	if g == nil {
		return nil
	}
	deg := make([]int, g.NodeCount())
	for v := range deg {
		deg[v] = g.Degree(v)
	}

	return deg
}

// Assortativity returns the Pearson correlation of the degrees at both ends
// of every link (Newman's r), over directed adjacency entries:
//
//	r = (jk/M − (jpk/2M)²) / (j2pk2/2M − (jpk/2M)²)
//
// with M = Σ degree. Graphs without links yield ErrNoLinks; graphs where
// every link joins equal degrees (0/0) yield NaN and ErrUndefined.
// Complexity: O(N+E).
func Assortativity(g *core.Graph) (float64, error) {
	if g == nil {
		return 0, ErrGraphNil
	}
	deg := Degrees(g)
	var m, jk, jpk, j2pk2 float64
	for _, d := range deg {
		m += float64(d)
	}
	if m == 0 {
		return 0, fmt.Errorf("Assortativity: %w", ErrNoLinks)
	}
	for u := range deg {
		du := float64(deg[u])
		for _, l := range g.Links(u) {
			dv := float64(deg[l.To])
			jk += du * dv
			jpk += du + dv
			j2pk2 += du*du + dv*dv
		}
	}
	mean := jpk / (2 * m)
	num := jk/m - mean*mean
	den := j2pk2/(2*m) - mean*mean
	if math.Abs(den) < 1e-12 {
		return math.NaN(), fmt.Errorf("Assortativity: %w", ErrUndefined)
	}

	return num / den, nil
}

// Knn returns the average degree of the neighbors of v.
// Complexity: O(deg(v)).
func Knn(g *core.Graph, v int) (float64, error) {
	if g == nil {
		return 0, ErrGraphNil
	}
	if !g.HasNode(v) {
		return 0, fmt.Errorf("Knn(%d): %w", v, core.ErrNodeNotFound)
	}
	links := g.Links(v)
	if len(links) == 0 {
		return 0, fmt.Errorf("Knn(%d): %w", v, ErrIsolatedNode)
	}
	total := 0
	for _, l := range links {
		total += g.Degree(l.To)
	}

	return float64(total) / float64(len(links)), nil
}

// TopologicalOverlap returns the overlap of n1 and n2 (Ravasz et al.):
// the neighbors of the lower-degree node that are the other node or link
// to it, divided by that lower degree. On equal degrees n2's neighbors are
// scanned. A node without links yields ErrIsolatedNode.
// Complexity: O(min(k1,k2) · max(k1,k2)).
func TopologicalOverlap(g *core.Graph, n1, n2 int) (float64, error) {
	if g == nil {
		return 0, ErrGraphNil
	}
	if !g.HasNode(n1) || !g.HasNode(n2) {
		return 0, fmt.Errorf("TopologicalOverlap(%d,%d): %w", n1, n2, core.ErrNodeNotFound)
	}
	scan, other := n2, n1
	if g.Degree(n1) < g.Degree(n2) {
		scan, other = n1, n2
	}
	minDeg := g.Degree(scan)
	if minDeg == 0 {
		return 0, fmt.Errorf("TopologicalOverlap(%d,%d): %w", n1, n2, ErrIsolatedNode)
	}
	common := 0
	for _, l := range g.Links(scan) {
		if l.To == other || g.HasLink(other, l.To) {
			common++
		}
	}

	return float64(common) / float64(minDeg), nil
}
