package objective_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/community"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/lvnet/core"
	"github.com/katalvlaran/lvnet/objective"
	"github.com/katalvlaran/lvnet/partition"
)

const eps = 1e-9

// barbell: triangles 0-1-2 and 3-4-5 joined by the bridge 2-3.
func barbell(t testing.TB) *core.Graph {
	t.Helper()
	g := core.New()
	for i := 0; i < 6; i++ {
		g.AppendNode(fmt.Sprint(i))
	}
	for _, e := range [][2]int{{0, 1}, {1, 2}, {2, 0}, {3, 4}, {4, 5}, {5, 3}, {2, 3}} {
		_, err := g.AddLink(e[0], e[1], 1, core.WithSymmetric())
		require.NoError(t, err)
	}

	return g
}

func randomWeighted(t testing.TB, n, m int, seed int64) *core.Graph {
	t.Helper()
	rnd := rand.New(rand.NewSource(seed))
	g := core.NewWithCapacity(n)
	for i := 0; i < n; i++ {
		g.AppendNode(fmt.Sprint(i))
	}
	for added := 0; added < m; {
		u, v := rnd.Intn(n), rnd.Intn(n)
		if u == v || g.HasLink(u, v) {
			continue
		}
		_, err := g.AddLink(u, v, 0.5+rnd.Float64()*3, core.WithSymmetric())
		require.NoError(t, err)
		added++
	}

	return g
}

func TestModularity_Barbell(t *testing.T) {
	q, err := objective.NewModularity(barbell(t))
	require.NoError(t, err)

	p, err := q.NewPartition(0)
	require.NoError(t, err)
	p.Merge(0, 1)
	p.Merge(0, 2)
	p.Merge(3, 4)
	p.Merge(3, 5)
	assert.InDelta(t, 5.0/14.0, q.Energy(p), eps)

	// everything together scores zero
	p.Merge(0, 3)
	assert.InDelta(t, 0.0, q.Energy(p), eps)
}

func TestModularity_DeltasMatchEnergy(t *testing.T) {
	for _, weighted := range []bool{false, true} {
		t.Run(fmt.Sprintf("weighted=%v", weighted), func(t *testing.T) {
			g := randomWeighted(t, 30, 70, 4)
			var opts []objective.Option
			if weighted {
				opts = append(opts, objective.WithWeights())
			}
			q, err := objective.NewModularity(g, opts...)
			require.NoError(t, err)
			p, err := q.NewPartition(8)
			require.NoError(t, err)

			rnd := rand.New(rand.NewSource(8))
			for step := 0; step < 300; step++ {
				before := q.Energy(p)
				if step%5 == 0 {
					a, b := rnd.Intn(p.M()), rnd.Intn(p.M())
					dE := q.DeltaMerge(p, a, b)
					p.Merge(a, b)
					require.InDelta(t, q.Energy(p)-before, dE, eps, "merge %d<-%d", a, b)
					continue
				}
				node, target := rnd.Intn(p.N()), rnd.Intn(p.M())
				dE := q.DeltaMove(p, node, target)
				p.Move(node, target)
				require.InDelta(t, q.Energy(p)-before, dE, eps, "move %d->%d", node, target)
			}
		})
	}
}

func TestModularity_MatchesGonum(t *testing.T) {
	g := randomWeighted(t, 40, 90, 12)

	ug := simple.NewUndirectedGraph()
	wg := simple.NewWeightedUndirectedGraph(0, 0)
	for i := 0; i < g.NodeCount(); i++ {
		ug.AddNode(simple.Node(i))
		wg.AddNode(simple.Node(i))
	}
	for _, e := range g.Edges(true) {
		ug.SetEdge(ug.NewEdge(simple.Node(e.From), simple.Node(e.To)))
		wg.SetWeightedEdge(wg.NewWeightedEdge(simple.Node(e.From), simple.Node(e.To), e.Weight))
	}

	unweighted, err := objective.NewModularity(g)
	require.NoError(t, err)
	weighted, err := objective.NewModularity(g, objective.WithWeights())
	require.NoError(t, err)

	for _, modules := range []int{1, 4, 9, 40} {
		p, err := unweighted.NewPartition(modules)
		require.NoError(t, err)
		comms := communities(p)
		assert.InDelta(t, community.Q(ug, comms, 1), unweighted.Energy(p), eps, "modules=%d", modules)

		pw, err := weighted.NewPartition(modules)
		require.NoError(t, err)
		assert.InDelta(t, community.Q(wg, comms, 1), weighted.Energy(pw), eps, "weighted modules=%d", modules)
	}
}

func communities(p *partition.Partition) [][]graph.Node {
	var out [][]graph.Node
	for _, grp := range p.Groups() {
		nodes := make([]graph.Node, len(grp))
		for i, id := range grp {
			nodes[i] = simple.Node(id)
		}
		out = append(out, nodes)
	}

	return out
}

func TestModularity_Errors(t *testing.T) {
	_, err := objective.NewModularity(nil)
	assert.ErrorIs(t, err, objective.ErrGraphNil)

	g := core.New()
	g.AppendNode("a")
	_, err = objective.NewModularity(g)
	assert.ErrorIs(t, err, objective.ErrNoLinks)

	_, err = g.AddLinkSoft(0, 3, 1)
	require.NoError(t, err)
	_, err = objective.NewModularity(g)
	assert.ErrorIs(t, err, core.ErrUnresolved)
}

func TestModularity_Neighbors(t *testing.T) {
	q, err := objective.NewModularity(barbell(t))
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{1, 0, 3}, q.Neighbors(2))
	assert.Equal(t, []float64{2, 2, 3, 3, 2, 2}, q.Strengths())
}
