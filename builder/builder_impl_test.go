// File: builder_impl_test.go
// Functional tests for every Constructor: node and link counts, labels,
// degrees, determinism and sentinel errors.
package builder_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvnet/builder"
	"github.com/katalvlaran/lvnet/core"
	"github.com/katalvlaran/lvnet/rng"
)

// hasLink reports whether labels a and b are linked (a→b).
func hasLink(g *core.Graph, a, b string) bool {
	u, ok1 := g.NodeByLabel(a)
	v, ok2 := g.NodeByLabel(b)
	return ok1 && ok2 && g.HasLink(u, v)
}

func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		ctor   builder.Constructor
		opts   []builder.BuilderOption
		wantV  int
		wantE  int // undirected links
		checks func(t *testing.T, g *core.Graph)
	}{
		{
			name: "Cycle(5)", ctor: builder.Cycle(5), wantV: 5, wantE: 5,
			checks: func(t *testing.T, g *core.Graph) {
				assert.True(t, hasLink(g, "4", "0"))
				assert.True(t, hasLink(g, "0", "4"))
			},
		},
		{
			name: "Path(4)", ctor: builder.Path(4), wantV: 4, wantE: 3,
			checks: func(t *testing.T, g *core.Graph) {
				assert.True(t, hasLink(g, "2", "3"))
				assert.False(t, hasLink(g, "3", "0"))
			},
		},
		{
			name: "Star(4)", ctor: builder.Star(4), wantV: 4, wantE: 3,
			checks: func(t *testing.T, g *core.Graph) {
				hub, ok := g.NodeByLabel(builder.CenterLabel)
				require.True(t, ok)
				assert.Equal(t, 3, g.Degree(hub))
			},
		},
		{
			name: "Wheel(4)", ctor: builder.Wheel(4), wantV: 5, wantE: 8,
			checks: func(t *testing.T, g *core.Graph) {
				assert.True(t, hasLink(g, "0", "1"))
				assert.True(t, hasLink(g, builder.CenterLabel, "2"))
			},
		},
		{name: "Complete(4)", ctor: builder.Complete(4), wantV: 4, wantE: 6},
		{
			name: "CompleteBipartite(2,3)", ctor: builder.CompleteBipartite(2, 3), wantV: 5, wantE: 6,
			checks: func(t *testing.T, g *core.Graph) {
				assert.True(t, hasLink(g, "L1", "R2"))
				assert.False(t, hasLink(g, "L0", "L1"))
			},
		},
		{
			name: "CompleteBipartite prefixes", ctor: builder.CompleteBipartite(1, 1),
			opts:  []builder.BuilderOption{builder.WithPartitionPrefix("u", "")},
			wantV: 2, wantE: 1,
			checks: func(t *testing.T, g *core.Graph) { assert.True(t, hasLink(g, "u0", "R0")) },
		},
		{
			name: "Grid(2,3)", ctor: builder.Grid(2, 3), wantV: 6, wantE: 7,
			checks: func(t *testing.T, g *core.Graph) {
				assert.True(t, hasLink(g, "0,0", "1,0"))
				assert.True(t, hasLink(g, "1,1", "1,2"))
				assert.False(t, hasLink(g, "0,0", "1,1"))
			},
		},
		{
			name: "RingOfCliques(3,4)", ctor: builder.RingOfCliques(3, 4), wantV: 12, wantE: 3*6 + 3,
			checks: func(t *testing.T, g *core.Graph) {
				assert.True(t, hasLink(g, "0", "5"))
				assert.True(t, hasLink(g, "8", "1"))
				for _, id := range []int{0, 1, 4, 5, 8, 9} {
					assert.Equal(t, 4, g.Degree(id), "bridge end %d", id)
				}
				assert.Equal(t, 3, g.Degree(2))
			},
		},
		{
			name: "Symbol labels", ctor: builder.Path(3),
			opts:  []builder.BuilderOption{builder.WithSymbolIDs()},
			wantV: 3, wantE: 2,
			checks: func(t *testing.T, g *core.Graph) { assert.True(t, hasLink(g, "B", "C")) },
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildGraph(tc.opts, tc.ctor)
			require.NoError(t, err)
			assert.Equal(t, tc.wantV, g.NodeCount())
			assert.Equal(t, tc.wantE, g.TotalLinks(true))
			if tc.checks != nil {
				tc.checks(t, g)
			}
		})
	}
}

func TestBuilders_Compose(t *testing.T) {
	// the same constructor twice adds nothing
	g, err := builder.BuildGraph(nil, builder.Cycle(4), builder.Cycle(4), builder.Path(6))
	require.NoError(t, err)
	assert.Equal(t, 6, g.NodeCount())
	assert.Equal(t, 4+2, g.TotalLinks(true))

	require.NoError(t, builder.Apply(g, nil, builder.Star(3)))
	assert.Equal(t, 7, g.NodeCount())

	assert.ErrorIs(t, builder.Apply(nil, nil, builder.Path(2)), builder.ErrConstructFailed)
	_, err = builder.BuildGraph(nil, builder.Path(2), nil)
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
}

func TestBuilders_Directed(t *testing.T) {
	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithDirected()}, builder.Cycle(4))
	require.NoError(t, err)
	assert.Equal(t, 4, g.TotalLinks(false))
	assert.True(t, hasLink(g, "0", "1"))
	assert.False(t, hasLink(g, "1", "0"))

	g, err = builder.BuildGraph([]builder.BuilderOption{builder.WithDirected()}, builder.Complete(3))
	require.NoError(t, err)
	assert.Equal(t, 6, g.TotalLinks(false))
}

func TestRandomSparse(t *testing.T) {
	build := func(seed uint64) *core.Graph {
		g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(seed)}, builder.RandomSparse(50, 0.1))
		require.NoError(t, err)
		return g
	}
	a, b := build(9), build(9)
	assert.Equal(t, a.Edges(true), b.Edges(true))
	// 1225 trials at p=0.1
	assert.InDelta(t, 122, a.TotalLinks(true), 45)

	full, err := builder.BuildGraph(nil, builder.RandomSparse(5, 1))
	require.NoError(t, err)
	assert.Equal(t, 10, full.TotalLinks(true))
	empty, err := builder.BuildGraph(nil, builder.RandomSparse(5, 0))
	require.NoError(t, err)
	assert.Zero(t, empty.TotalLinks(true))
	assert.Equal(t, 5, empty.NodeCount())
}

func TestRandomRegular(t *testing.T) {
	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(4)}, builder.RandomRegular(12, 3))
	require.NoError(t, err)
	for id := 0; id < g.NodeCount(); id++ {
		assert.Equal(t, 3, g.Degree(id), "node %d", id)
	}
	assert.Equal(t, 18, g.TotalLinks(true))

	g, err = builder.BuildGraph([]builder.BuilderOption{builder.WithSource(rng.NewSeq(0.3))}, builder.RandomRegular(4, 0))
	require.NoError(t, err)
	assert.Zero(t, g.TotalLinks(true))
}

func TestWeights(t *testing.T) {
	g, err := builder.BuildGraph([]builder.BuilderOption{
		builder.WithSeed(2),
		builder.WithWeightFn(builder.IntegerWeightFn(2, 5)),
	}, builder.Complete(5))
	require.NoError(t, err)
	for _, e := range g.Edges(true) {
		assert.GreaterOrEqual(t, e.Weight, 2.0)
		assert.LessOrEqual(t, e.Weight, 5.0)
		back, err := g.Link(e.To, e.From)
		require.NoError(t, err)
		assert.Equal(t, e.Weight, back.Weight, "mirror keeps the weight")
	}
}

func TestBuilders_Errors(t *testing.T) {
	cases := []struct {
		name string
		ctor builder.Constructor
		opts []builder.BuilderOption
		want error
	}{
		{"Cycle(2)", builder.Cycle(2), nil, builder.ErrTooFewNodes},
		{"Path(1)", builder.Path(1), nil, builder.ErrTooFewNodes},
		{"Star(1)", builder.Star(1), nil, builder.ErrTooFewNodes},
		{"Wheel(2)", builder.Wheel(2), nil, builder.ErrTooFewNodes},
		{"Complete(0)", builder.Complete(0), nil, builder.ErrTooFewNodes},
		{"Bipartite(0,1)", builder.CompleteBipartite(0, 1), nil, builder.ErrTooFewNodes},
		{"Grid(0,3)", builder.Grid(0, 3), nil, builder.ErrTooFewNodes},
		{"RingOfCliques(1,3)", builder.RingOfCliques(1, 3), nil, builder.ErrTooFewNodes},
		{"RandomSparse p", builder.RandomSparse(3, 1.5), nil, builder.ErrInvalidProbability},
		{"RandomSparse src", builder.RandomSparse(3, 0.5), nil, builder.ErrNeedRandSource},
		{"RandomRegular odd", builder.RandomRegular(5, 3), []builder.BuilderOption{builder.WithSeed(1)}, builder.ErrTooFewNodes},
		{"RandomRegular src", builder.RandomRegular(4, 2), nil, builder.ErrNeedRandSource},
		{"RandomRegular directed", builder.RandomRegular(4, 2),
			[]builder.BuilderOption{builder.WithSeed(1), builder.WithDirected()}, builder.ErrUnsupportedGraphMode},
	}
	for _, c := range cases {
		_, err := builder.BuildGraph(c.opts, c.ctor)
		assert.True(t, errors.Is(err, c.want), "%s: got %v", c.name, err)
	}
}
