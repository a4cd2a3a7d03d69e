// Package metrics defines options, sentinel errors and the shared
// all-sources sweep for the structural measures.
package metrics

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/lvnet/bfs"
	"github.com/katalvlaran/lvnet/core"
)

// Sentinel errors for metric computations.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("metrics: graph is nil")

	// ErrTooFewNodes is returned when a measure needs at least two nodes.
	ErrTooFewNodes = errors.New("metrics: at least two nodes required")

	// ErrDisconnected is returned when a measure needs every pair reachable.
	ErrDisconnected = errors.New("metrics: graph is not connected")

	// ErrLowDegree is returned for the clustering of a node with degree < 2.
	ErrLowDegree = errors.New("metrics: node degree below 2")

	// ErrIsolatedNode is returned for a node without links.
	ErrIsolatedNode = errors.New("metrics: node has no links")

	// ErrSingleNeighbor is returned by square clustering when the node has a
	// single first neighbor.
	ErrSingleNeighbor = errors.New("metrics: node has a single first neighbor")

	// ErrNoSecondNeighbors is returned by square clustering when the node has
	// no node at distance 2.
	ErrNoSecondNeighbors = errors.New("metrics: node has no second neighbors")

	// ErrNoEligibleNodes is returned when an average excludes every node.
	ErrNoEligibleNodes = errors.New("metrics: no node qualifies for the average")

	// ErrNoLinks is returned when a measure needs at least one link.
	ErrNoLinks = errors.New("metrics: graph has no links")

	// ErrUndefined is returned when a closed form degenerates (0/0).
	ErrUndefined = errors.New("metrics: measure undefined for this graph")
)

// Sentinel codes returned by NodeSquareClustering alongside its errors.
const (
	SquareIsolated       = -1.0
	SquareSingleNeighbor = -2.0
	SquareNoSecond       = -3.0
)

// Option configures a metric computation.
type Option func(*options)

type options struct {
	ctx    context.Context
	log    zerolog.Logger
	tracer trace.Tracer
}

// WithContext sets the context checked between sources and BFS layers.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithLogger sets the structured logger (default: disabled).
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.log = l }
}

// WithTracer overrides the OpenTelemetry tracer used for sweep spans.
func WithTracer(t trace.Tracer) Option {
	return func(o *options) {
		if t != nil {
			o.tracer = t
		}
	}
}

var (
	tracerOnce    sync.Once
	defaultTracer trace.Tracer
)

// getTracer returns the package tracer from the global provider, resolved
// lazily so callers may install a provider after import.
func getTracer() trace.Tracer {
	tracerOnce.Do(func() {
		defaultTracer = otel.Tracer("github.com/katalvlaran/lvnet/metrics")
	})

	return defaultTracer
}

func resolve(opts []Option) options {
	o := options{ctx: context.Background(), log: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.tracer == nil {
		o.tracer = getTracer()
	}

	return o
}

// sweep runs one BFS per source in id order and hands the finished walker
// to visit. It owns the span of the whole sweep.
// Complexity: O(N·(N+E)) plus the cost of visit.
func sweep(g *core.Graph, name string, o options, visit func(w *bfs.Walker, src int) error) error {
	if g == nil {
		return ErrGraphNil
	}
	ctx, span := o.tracer.Start(o.ctx, "metrics."+name,
		trace.WithAttributes(
			attribute.Int("node_count", g.NodeCount()),
			attribute.Int("link_count", g.TotalLinks(false)),
		),
	)
	defer span.End()

	w, err := bfs.NewWalker(g, bfs.WithContext(ctx))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "walker setup failed")
		return fmt.Errorf("%s: %w", name, err)
	}
	for src := 0; src < g.NodeCount(); src++ {
		if err = w.Run(src); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "traversal failed")
			return fmt.Errorf("%s: source %d: %w", name, src, err)
		}
		if err = visit(w, src); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "visit failed")
			return fmt.Errorf("%s: source %d: %w", name, src, err)
		}
	}
	span.SetStatus(codes.Ok, "")
	o.log.Debug().Str("metric", name).Int("sources", g.NodeCount()).Msg("sweep done")

	return nil
}
