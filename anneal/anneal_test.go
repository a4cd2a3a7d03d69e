package anneal_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvnet/anneal"
	"github.com/katalvlaran/lvnet/builder"
	"github.com/katalvlaran/lvnet/core"
	"github.com/katalvlaran/lvnet/objective"
	"github.com/katalvlaran/lvnet/partition"
	"github.com/katalvlaran/lvnet/rng"
)

func ringOfCliques(t *testing.T, count, size int) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(nil, builder.RingOfCliques(count, size))
	require.NoError(t, err)

	return g
}

var quick = anneal.WithSchedule(0.1, 1e-4, 0.9)

func TestCluster_RingOfCliques(t *testing.T) {
	g := ringOfCliques(t, 4, 5)

	var steps []anneal.Step
	res, err := anneal.Cluster(context.Background(), g, rng.New(7), quick,
		anneal.WithObserver(func(s anneal.Step) { steps = append(steps, s) }))
	require.NoError(t, err)

	assert.GreaterOrEqual(t, res.Energy, 0.6)
	require.NoError(t, res.Partition.Validate())
	q, err := objective.NewModularity(g)
	require.NoError(t, err)
	assert.InDelta(t, q.Energy(res.Partition), res.Energy, 1e-9)

	require.Len(t, steps, res.Steps)
	for i := 1; i < len(steps); i++ {
		assert.GreaterOrEqual(t, steps[i].Best, steps[i-1].Best, "best energy decreased at step %d", i)
		assert.Equal(t, i+1, steps[i].Index)
	}

	require.Len(t, res.Groups, res.Partition.NonEmpty())
	total := 0
	for _, grp := range res.Groups {
		total += len(grp)
	}
	assert.Equal(t, g.NodeCount(), total)
	assert.NotEqual(t, uuid.Nil, res.RunID)
}

func TestRun_Deterministic(t *testing.T) {
	g := ringOfCliques(t, 3, 4)
	q, err := objective.NewModularity(g)
	require.NoError(t, err)

	run := func() *anneal.Result {
		p, err := q.NewPartition(0)
		require.NoError(t, err)
		res, err := anneal.Run(context.Background(), p, q, rng.New(42), quick)
		require.NoError(t, err)
		return res
	}
	a, b := run(), run()
	assert.Equal(t, a.Partition.Assignment(), b.Partition.Assignment())
	assert.Equal(t, a.Energy, b.Energy)
	assert.Equal(t, a.Steps, b.Steps)
	assert.NotEqual(t, a.RunID, b.RunID)
}

func TestRun_MetricsAndLogs(t *testing.T) {
	g := ringOfCliques(t, 3, 4)
	q, err := objective.NewModularity(g)
	require.NoError(t, err)
	p, err := q.NewPartition(0)
	require.NoError(t, err)

	reg := prometheus.NewRegistry()
	var buf bytes.Buffer
	res, err := anneal.Run(context.Background(), p, q, rng.New(3), quick,
		anneal.WithMetrics(anneal.NewMetrics(reg)),
		anneal.WithLogger(zerolog.New(&buf)))
	require.NoError(t, err)

	mfs, err := reg.Gather()
	require.NoError(t, err)
	found := map[string]bool{}
	for _, mf := range mfs {
		found[mf.GetName()] = true
		switch mf.GetName() {
		case "lvnet_anneal_best_energy":
			assert.InDelta(t, res.Energy, mf.GetMetric()[0].GetGauge().GetValue(), 1e-12)
		case "lvnet_anneal_temperature_steps":
			assert.Equal(t, uint64(1), mf.GetMetric()[0].GetHistogram().GetSampleCount())
		case "lvnet_anneal_moves_total":
			var total float64
			for _, m := range mf.GetMetric() {
				total += m.GetCounter().GetValue()
			}
			assert.Positive(t, total)
		}
	}
	assert.True(t, found["lvnet_anneal_moves_total"])
	assert.True(t, found["lvnet_anneal_best_energy"])

	assert.Contains(t, buf.String(), "annealing done")
	assert.Contains(t, buf.String(), res.RunID.String())
}

// peak scores the all-singletons partition 0 and every other partition -5,
// so a run that leaves it early and then freezes must restart.
type peak struct{}

func (peak) score(nonEmpty, n int) float64 {
	if nonEmpty == n {
		return 0
	}
	return -5
}

func (k peak) Energy(p *partition.Partition) float64 { return k.score(p.NonEmpty(), p.N()) }

func (k peak) DeltaMove(p *partition.Partition, node, target int) float64 {
	from := p.ModuleOf(node)
	if from == target {
		return 0
	}
	ne := p.NonEmpty()
	if p.Size(from) == 1 {
		ne--
	}
	if p.Size(target) == 0 {
		ne++
	}
	return k.score(ne, p.N()) - k.Energy(p)
}

func (k peak) DeltaMerge(p *partition.Partition, a, b int) float64 {
	if a == b {
		return 0
	}
	ne := p.NonEmpty()
	if p.Size(a) > 0 && p.Size(b) > 0 {
		ne--
	}
	return k.score(ne, p.N()) - k.Energy(p)
}

func (peak) Neighbors(int) []int { return nil }

func TestRun_RestartsFromBest(t *testing.T) {
	p, err := partition.New(10, 10)
	require.NoError(t, err)

	res, err := anneal.Run(context.Background(), p, peak{}, rng.New(1),
		anneal.WithSchedule(10, 1e-3, 0.5), anneal.WithNoChangeLimit(3))
	require.NoError(t, err)

	assert.GreaterOrEqual(t, res.Restarts, 1)
	assert.True(t, res.Converged)
	assert.Zero(t, res.Energy)
	assert.Equal(t, 10, res.Partition.NonEmpty())
}

func TestRun_Errors(t *testing.T) {
	g := ringOfCliques(t, 3, 3)
	q, err := objective.NewModularity(g)
	require.NoError(t, err)
	p, err := q.NewPartition(0)
	require.NoError(t, err)
	ctx := context.Background()

	_, err = anneal.Run(ctx, nil, q, rng.New(1))
	assert.ErrorIs(t, err, anneal.ErrNilPartition)
	_, err = anneal.Run(ctx, p, nil, rng.New(1))
	assert.ErrorIs(t, err, anneal.ErrNilObjective)
	_, err = anneal.Run(ctx, p, q, nil)
	assert.ErrorIs(t, err, anneal.ErrNilSource)

	bad := []anneal.Option{
		anneal.WithSchedule(1, 2, 0.9),
		anneal.WithSchedule(1, 0, 0.9),
		anneal.WithSchedule(-1, 0.1, 0.9),
		anneal.WithSchedule(1, 0.1, 1),
		anneal.WithIterationFactor(0),
		anneal.WithComponentProbability(1.5),
		anneal.WithNoChangeLimit(0),
		anneal.WithModules(-1),
	}
	for i, opt := range bad {
		_, err = anneal.Run(ctx, p, q, rng.New(1), opt)
		assert.ErrorIs(t, err, anneal.ErrOptionViolation, "option %d", i)
	}

	canceled, cancel := context.WithCancel(ctx)
	cancel()
	res, err := anneal.Run(canceled, p, q, rng.New(1), quick)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, res)

	_, err = anneal.Cluster(ctx, nil, rng.New(1))
	assert.ErrorIs(t, err, objective.ErrGraphNil)
	_, err = anneal.Cluster(ctx, g, rng.New(1), anneal.WithModules(g.NodeCount()+1))
	assert.ErrorIs(t, err, partition.ErrTooManyModules)
}

func TestCluster_Weighted(t *testing.T) {
	// two heavy pairs joined by light links
	g := core.New()
	for _, l := range []string{"a", "b", "c", "d"} {
		g.AppendNode(l)
	}
	for _, e := range []struct {
		u, v int
		w    float64
	}{{0, 1, 10}, {2, 3, 10}, {1, 2, 1}, {0, 3, 1}} {
		_, err := g.AddLink(e.u, e.v, e.w, core.WithSymmetric())
		require.NoError(t, err)
	}

	res, err := anneal.Cluster(context.Background(), g, rng.New(5), anneal.WithWeighted(), quick)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"a", "b"}, {"c", "d"}}, res.Groups)
}
