package anneal

import (
	"context"
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/lvnet/partition"
	"github.com/katalvlaran/lvnet/rng"
)

// Objective scores partitions. The engine maximizes Energy and only ever
// reads the objective; deltas must equal the exact change of Energy.
type Objective interface {
	// Energy returns the energy of p.
	Energy(p *partition.Partition) float64
	// DeltaMove returns the energy change of moving node to module target.
	DeltaMove(p *partition.Partition, node, target int) float64
	// DeltaMerge returns the energy change of merging modules a and b.
	DeltaMerge(p *partition.Partition, a, b int) float64
	// Neighbors returns the nodes adjacent to node, used to split modules
	// along connected components.
	Neighbors(node int) []int
}

// Step describes the state after one temperature step.
type Step struct {
	Index       int
	Temperature float64
	Energy      float64
	Best        float64
	Modules     int
	Stall       int
}

// Result is the outcome of a run: always the best partition seen.
type Result struct {
	RunID     uuid.UUID
	Partition *partition.Partition
	Energy    float64
	Steps     int
	Restarts  int
	// Converged is true when the run ended on the no-change limit rather
	// than on the final temperature.
	Converged bool
	// Groups holds the node labels per module; only Cluster fills it.
	Groups [][]string
}

// runner carries the state of one run.
type runner struct {
	ctx   context.Context
	p     *partition.Partition
	obj   Objective
	src   rng.Source
	o     options
	log   zerolog.Logger
	e     float64
	best  *partition.Partition
	bestE float64

	// componentSplits counts splits done along connected components.
	componentSplits int
}

// Run anneals p in place and returns the best partition seen (a separate
// copy). Temperature T starts at ti and is multiplied by ts while T > tf.
// At each T:
//
//  1. max(10, ⌊fac·N²⌋) individual moves: a random node to a random other
//     module, accepted iff u < exp(dE/T).
//  2. max(2, ⌊fac·N⌋) collective moves: a merge of the modules of two
//     random nodes (same rule, skipped when a single module is left) and a
//     split of a random non-singleton module into the first empty slot
//     (skipped when no slot is empty). A split tries connected components
//     when u > the component probability, otherwise (or on a single
//     component) a nested anneal over the module's nodes. The split is
//     reverted when re-merging would gain energy and a draw rejects it.
//
// After each step a relative energy change below 1e-6 counts as a stall.
// A better energy than the best so far is snapshotted. On the no-change
// limit the run ends if the current energy matches the best, otherwise p
// is restored from the best snapshot and cooling continues.
//
// The context is checked before every temperature step and every nested
// step; on cancellation the error is returned with no result.
func Run(ctx context.Context, p *partition.Partition, obj Objective, src rng.Source, opts ...Option) (*Result, error) {
	if p == nil {
		return nil, ErrNilPartition
	}
	if obj == nil {
		return nil, ErrNilObjective
	}
	if src == nil {
		return nil, ErrNilSource
	}
	if ctx == nil {
		ctx = context.Background()
	}
	o := resolve(opts)
	if o.err != nil {
		return nil, o.err
	}
	n := p.N()
	if o.ti == 0 {
		o.ti = 2 / float64(n)
	}

	id := uuid.New()
	ctx, span := o.tracer.Start(ctx, "anneal.Run",
		trace.WithAttributes(
			attribute.String("run_id", id.String()),
			attribute.Int("node_count", n),
			attribute.Int("module_slots", p.M()),
		),
	)
	defer span.End()

	r := &runner{
		ctx: ctx,
		p:   p,
		obj: obj,
		src: src,
		o:   o,
		log: o.log.With().Str("run_id", id.String()).Logger(),
	}
	res, err := r.run()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "anneal aborted")
		return nil, fmt.Errorf("anneal.Run: %w", err)
	}
	res.RunID = id
	span.SetAttributes(
		attribute.Float64("best_energy", res.Energy),
		attribute.Int("steps", res.Steps),
		attribute.Int("restarts", res.Restarts),
	)
	span.SetStatus(codes.Ok, "")

	return res, nil
}

// iterationNumber returns the individual and collective moves per step.
func iterationNumber(n int, fac float64) (individual, collective int) {
	individual = 10
	if x := fac * float64(n) * float64(n); x >= 10 {
		individual = int(math.Floor(x))
	}
	collective = 2
	if x := fac * float64(n); x >= 2 {
		collective = int(math.Floor(x))
	}

	return individual, collective
}

func (r *runner) run() (*Result, error) {
	individual, collective := iterationNumber(r.p.N(), r.o.fac)
	r.e = r.obj.Energy(r.p)
	r.best = r.p.Clone()
	r.bestE = r.e
	prevE := r.e
	stall := 0
	res := &Result{}

	r.log.Info().
		Int("nodes", r.p.N()).
		Int("individual", individual).
		Int("collective", collective).
		Float64("ti", r.o.ti).Float64("tf", r.o.tf).Float64("ts", r.o.ts).
		Float64("energy", r.e).
		Msg("annealing started")

	for t := r.o.ti; t > r.o.tf; t *= r.o.ts {
		if err := r.ctx.Err(); err != nil {
			return nil, err
		}
		for i := 0; i < individual; i++ {
			r.individualMove(t)
		}
		for i := 0; i < collective; i++ {
			r.merge(t)
			if err := r.split(t); err != nil {
				return nil, err
			}
		}
		res.Steps++

		if math.Abs(prevE) < epsilon || math.Abs(r.e-prevE)/math.Abs(prevE) < epsilon {
			stall++
			if stall == r.o.nochangeLimit {
				if r.e+epsilon >= r.bestE {
					r.snapshot()
					res.Converged = true
					r.observe(res.Steps, t, stall)
					r.log.Info().Int("step", res.Steps).Float64("energy", r.e).Msg("no-change limit reached at the best energy")
					break
				}
				r.log.Info().Float64("energy", r.e).Float64("best", r.bestE).Msg("restarting from the best partition")
				if err := r.p.Restore(r.best); err != nil {
					return nil, err
				}
				r.e = r.bestE
				stall = 0
				res.Restarts++
				r.o.metrics.restart()
			}
		}
		prevE = r.e
		r.snapshot()
		r.observe(res.Steps, t, stall)
	}

	res.Partition = r.best
	res.Energy = r.bestE
	r.o.metrics.finish(r.bestE, res.Steps)
	r.log.Info().
		Int("steps", res.Steps).
		Int("restarts", res.Restarts).
		Int("modules", r.best.NonEmpty()).
		Float64("best", r.bestE).
		Msg("annealing done")

	return res, nil
}

// snapshot saves the live partition when it beats the best by epsilon.
func (r *runner) snapshot() {
	if r.e <= r.bestE+epsilon {
		return
	}
	if err := r.best.Restore(r.p); err != nil {
		r.best = r.p.Clone()
	}
	r.bestE = r.e
	r.log.Debug().Float64("energy", r.e).Msg("new best partition")
}

func (r *runner) observe(index int, t float64, stall int) {
	r.log.Debug().Int("step", index).Float64("t", t).Float64("energy", r.e).Int("modules", r.p.NonEmpty()).Msg("temperature step")
	if r.o.observer == nil {
		return
	}
	r.o.observer(Step{
		Index:       index,
		Temperature: t,
		Energy:      r.e,
		Best:        r.bestE,
		Modules:     r.p.NonEmpty(),
		Stall:       stall,
	})
}

// metropolis accepts a move of energy change dE at temperature t.
func (r *runner) metropolis(dE, t float64) bool {
	return r.src.Float64() < math.Exp(dE/t)
}

// individualMove moves a random node to a random other module.
func (r *runner) individualMove(t float64) {
	if r.p.M() < 2 {
		return
	}
	node := rng.Intn(r.src, r.p.N())
	from := r.p.ModuleOf(node)
	to := from
	for to == from {
		to = rng.Intn(r.src, r.p.M())
	}
	dE := r.obj.DeltaMove(r.p, node, to)
	ok := r.metropolis(dE, t)
	if ok {
		r.p.Move(node, to)
		r.e += dE
	}
	r.o.metrics.move(kindIndividual, ok)
}

// merge joins the modules of two random nodes.
func (r *runner) merge(t float64) {
	g1 := r.p.ModuleOf(rng.Intn(r.src, r.p.N()))
	if r.p.NonEmpty() < 2 {
		return
	}
	g2 := g1
	for g2 == g1 {
		g2 = r.p.ModuleOf(rng.Intn(r.src, r.p.N()))
	}
	dE := r.obj.DeltaMerge(r.p, g1, g2)
	ok := r.metropolis(dE, t)
	if ok {
		r.p.Merge(g1, g2)
		r.e += dE
	}
	r.o.metrics.move(kindMerge, ok)
}
