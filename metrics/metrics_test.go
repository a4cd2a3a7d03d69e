package metrics_test

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvnet/core"
	"github.com/katalvlaran/lvnet/metrics"
)

const eps = 1e-12

// undirected builds an n-node graph with symmetric links for every pair.
func undirected(t testing.TB, n int, pairs ...[2]int) *core.Graph {
	t.Helper()
	g := core.NewWithCapacity(n)
	for i := 0; i < n; i++ {
		g.AppendNode(fmt.Sprintf("v%d", i))
	}
	for _, p := range pairs {
		_, err := g.AddLink(p[0], p[1], 1, core.WithSymmetric())
		require.NoError(t, err)
	}

	return g
}

func path4(t testing.TB) *core.Graph {
	return undirected(t, 4, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 3})
}

func cycle4(t testing.TB) *core.Graph {
	return undirected(t, 4, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 3}, [2]int{3, 0})
}

func twoTriangles(t testing.TB) *core.Graph {
	return undirected(t, 6,
		[2]int{0, 1}, [2]int{1, 2}, [2]int{2, 0},
		[2]int{3, 4}, [2]int{4, 5}, [2]int{5, 3})
}

func TestAveragePathLength_Path(t *testing.T) {
	apl, err := metrics.AveragePathLength(path4(t))
	require.NoError(t, err)
	assert.InDelta(t, 5.0/3.0, apl, eps)

	apl, err = metrics.AveragePathLength(cycle4(t))
	require.NoError(t, err)
	assert.InDelta(t, 4.0/3.0, apl, eps)
}

func TestAveragePathLength_Disconnected(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	apl, err := metrics.AveragePathLength(twoTriangles(t), metrics.WithLogger(log))
	require.ErrorIs(t, err, metrics.ErrDisconnected)
	assert.Equal(t, -1.0, apl)
	assert.Contains(t, buf.String(), "not connected")

	_, err = metrics.AveragePathLength(undirected(t, 1))
	assert.ErrorIs(t, err, metrics.ErrTooFewNodes)
	_, err = metrics.AveragePathLength(nil)
	assert.ErrorIs(t, err, metrics.ErrGraphNil)
}

func TestDistanceHistogram(t *testing.T) {
	hist, err := metrics.DistanceHistogram(path4(t))
	require.NoError(t, err)
	require.Len(t, hist, 4)
	// ordered pairs: 6 at d=1, 4 at d=2, 2 at d=3, out of 12
	assert.InDelta(t, 0.0, hist[0], eps)
	assert.InDelta(t, 6.0/12, hist[1], eps)
	assert.InDelta(t, 4.0/12, hist[2], eps)
	assert.InDelta(t, 2.0/12, hist[3], eps)

	from, err := metrics.DistanceHistogramFrom(path4(t), 0)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0, 1.0 / 3, 1.0 / 3, 1.0 / 3}, from, eps)

	// disconnected graphs leave mass missing instead of failing
	hist, err = metrics.DistanceHistogram(twoTriangles(t))
	require.NoError(t, err)
	assert.InDelta(t, 12.0/30, hist[1], eps)
}

func TestAverageInverseDistance(t *testing.T) {
	eff, err := metrics.AverageInverseDistance(path4(t))
	require.NoError(t, err)
	assert.InDelta(t, (6.0+4.0/2+2.0/3)/12, eff, eps)

	eff, err = metrics.AverageInverseDistance(twoTriangles(t))
	require.NoError(t, err)
	assert.InDelta(t, 12.0/30, eff, eps)
}

func TestClustering(t *testing.T) {
	c, err := metrics.ClusteringCoefficient(path4(t))
	require.NoError(t, err)
	assert.InDelta(t, 0.0, c, eps)

	tt := twoTriangles(t)
	c, err = metrics.ClusteringCoefficient(tt)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, c, eps)
	for v := 0; v < tt.NodeCount(); v++ {
		cv, err := metrics.NodeClustering(tt, v)
		require.NoError(t, err)
		assert.InDelta(t, 1.0, cv, eps)
	}
	gc, err := metrics.GlobalClustering(tt)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, gc, eps)

	cv, err := metrics.NodeClustering(path4(t), 0)
	assert.ErrorIs(t, err, metrics.ErrLowDegree)
	assert.Equal(t, -1.0, cv)

	_, err = metrics.ClusteringCoefficient(undirected(t, 3, [2]int{0, 1}))
	assert.ErrorIs(t, err, metrics.ErrNoEligibleNodes)
}

func TestClustering_TriangleWithTail(t *testing.T) {
	// triangle 0-1-2 plus tail 2-3: C(2) = 2/(3·2) = 1/3
	g := undirected(t, 4, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 0}, [2]int{2, 3})
	cv, err := metrics.NodeClustering(g, 2)
	require.NoError(t, err)
	assert.InDelta(t, 1.0/3, cv, eps)

	c, err := metrics.ClusteringCoefficient(g)
	require.NoError(t, err)
	assert.InDelta(t, (1+1+1.0/3)/3, c, eps)

	gc, err := metrics.GlobalClustering(g)
	require.NoError(t, err)
	// closed: 2+2+2 ordered pairs, triples: 2+2+6
	assert.InDelta(t, 6.0/10, gc, eps)
}

func TestSquareClustering(t *testing.T) {
	g := cycle4(t)
	// node 0: k1=2, k2=1 (node 2 with 2 predecessors) → 2/(1·2·1) = 1
	c, err := metrics.NodeSquareClustering(g, 0)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, c, eps)
	avg, err := metrics.SquareClustering(g)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, avg, eps)

	// path: end node has a single first neighbor
	c, err = metrics.NodeSquareClustering(path4(t), 0)
	assert.ErrorIs(t, err, metrics.ErrSingleNeighbor)
	assert.Equal(t, metrics.SquareSingleNeighbor, c)
	c, err = metrics.NodeSquareClustering(path4(t), 1)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, c, eps)

	// triangle: every node is a first neighbor
	c, err = metrics.NodeSquareClustering(twoTriangles(t), 0)
	assert.ErrorIs(t, err, metrics.ErrNoSecondNeighbors)
	assert.Equal(t, metrics.SquareNoSecond, c)

	// isolated node
	iso := undirected(t, 3, [2]int{0, 1})
	c, err = metrics.NodeSquareClustering(iso, 2)
	assert.ErrorIs(t, err, metrics.ErrIsolatedNode)
	assert.Equal(t, metrics.SquareIsolated, c)

	_, err = metrics.SquareClustering(twoTriangles(t))
	assert.ErrorIs(t, err, metrics.ErrNoEligibleNodes)
}

func TestAssortativity(t *testing.T) {
	// star: every link joins degree 3 with degree 1 → r = -1
	star := undirected(t, 4, [2]int{0, 1}, [2]int{0, 2}, [2]int{0, 3})
	r, err := metrics.Assortativity(star)
	require.NoError(t, err)
	assert.InDelta(t, -1.0, r, 1e-9)

	r, err = metrics.Assortativity(cycle4(t))
	assert.ErrorIs(t, err, metrics.ErrUndefined)
	assert.True(t, math.IsNaN(r))

	_, err = metrics.Assortativity(undirected(t, 2))
	assert.ErrorIs(t, err, metrics.ErrNoLinks)
}

func TestKnnAndOverlap(t *testing.T) {
	star := undirected(t, 4, [2]int{0, 1}, [2]int{0, 2}, [2]int{0, 3})
	k, err := metrics.Knn(star, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, k)
	k, err = metrics.Knn(star, 1)
	require.NoError(t, err)
	assert.Equal(t, 3.0, k)

	// 0 and 2 share both neighbors in the 4-cycle
	to, err := metrics.TopologicalOverlap(cycle4(t), 0, 2)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, to, eps)
	// adjacent nodes: each counts the other, no common neighbor
	to, err = metrics.TopologicalOverlap(cycle4(t), 0, 1)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, to, eps)

	iso := undirected(t, 3, [2]int{0, 1})
	_, err = metrics.TopologicalOverlap(iso, 0, 2)
	assert.ErrorIs(t, err, metrics.ErrIsolatedNode)
	_, err = metrics.Knn(iso, 2)
	assert.ErrorIs(t, err, metrics.ErrIsolatedNode)
	assert.Equal(t, []int{1, 1, 0}, metrics.Degrees(iso))
}

func TestLinkBetweenness_Cycle(t *testing.T) {
	g := cycle4(t)
	require.NoError(t, metrics.LinkBetweenness(g))

	n := g.NodeCount()
	var total float64
	for _, e := range g.Edges(true) {
		l, err := g.Link(e.From, e.To)
		require.NoError(t, err)
		back, err := g.Link(e.To, e.From)
		require.NoError(t, err)
		assert.InDelta(t, 4.0, l.Betweenness, eps, "link %d-%d", e.From, e.To)
		assert.InDelta(t, l.Betweenness, back.Betweenness, eps)
		total += l.Betweenness
	}
	assert.InDelta(t, 16.0, total, eps)

	// every source receives N-1 units through its own links; summed over
	// the sources that is N·(N-1)
	var arriving float64
	for s := 0; s < n; s++ {
		require.NoError(t, metrics.LinkBetweennessFrom(g, s))
		for _, l := range g.Links(s) {
			arriving += l.Betweenness
		}
	}
	assert.InDelta(t, float64(n*(n-1)), arriving, eps)
}

func TestLinkBetweenness_Path(t *testing.T) {
	g := path4(t)
	require.NoError(t, metrics.LinkBetweenness(g))
	// link i-(i+1) separates (i+1) nodes from (3-i): 2·(i+1)·(3-i) ordered pairs
	want := []float64{6, 8, 6}
	for i, w := range want {
		l, err := g.Link(i, i+1)
		require.NoError(t, err)
		assert.InDelta(t, w, l.Betweenness, eps, "link %d-%d", i, i+1)
	}

	// recomputation starts from zero
	require.NoError(t, metrics.LinkBetweenness(g))
	l, _ := g.Link(1, 2)
	assert.InDelta(t, 8.0, l.Betweenness, eps)

	n1, n2, val, err := metrics.BiggestLinkBetweenness(g)
	require.NoError(t, err)
	assert.InDelta(t, 8.0, val, eps)
	assert.ElementsMatch(t, []int{1, 2}, []int{n1, n2})
}

func TestLinkBetweenness_Bridge(t *testing.T) {
	// two triangles joined by the bridge 2-3: every cross pair uses it
	g := undirected(t, 6,
		[2]int{0, 1}, [2]int{1, 2}, [2]int{2, 0},
		[2]int{3, 4}, [2]int{4, 5}, [2]int{5, 3},
		[2]int{2, 3})
	n1, n2, val, err := metrics.BiggestLinkBetweenness(g)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{2, 3}, []int{n1, n2})
	assert.InDelta(t, 18.0, val, eps)

	_, _, _, err = metrics.BiggestLinkBetweenness(undirected(t, 3))
	assert.ErrorIs(t, err, metrics.ErrNoLinks)
}

func TestSweep_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := metrics.LinkBetweenness(cycle4(t), metrics.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)

	g := cycle4(t)
	_, err = g.AddLinkSoft(0, 9, 1)
	require.NoError(t, err)
	_, err = metrics.DistanceHistogram(g)
	assert.ErrorIs(t, err, core.ErrUnresolved)
}
