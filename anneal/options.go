package anneal

import (
	"errors"
	"fmt"
	"math"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/trace"
)

// Sentinel errors for annealing runs.
var (
	// ErrNilPartition is returned when no partition is supplied.
	ErrNilPartition = errors.New("anneal: partition is nil")
	// ErrNilObjective is returned when no objective is supplied.
	ErrNilObjective = errors.New("anneal: objective is nil")
	// ErrNilSource is returned when no random source is supplied.
	ErrNilSource = errors.New("anneal: random source is nil")
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("anneal: invalid option supplied")
)

// Defaults applied when the corresponding option is not given.
const (
	// DefaultTf is the final temperature.
	DefaultTf = 1e-6
	// DefaultTs is the cooling factor.
	DefaultTs = 0.995
	// DefaultIterationFactor scales the moves per temperature.
	DefaultIterationFactor = 1.0
	// DefaultComponentProbability is compared against a uniform draw; a draw
	// above it splits by connected components.
	DefaultComponentProbability = 0.5
	// DefaultNoChangeLimit is the stall count that ends or restarts a run.
	DefaultNoChangeLimit = 25
	// splitTs is the cooling factor of the nested split anneal.
	splitTs = 0.95
	// epsilon is the relative energy change treated as no change.
	epsilon = 1e-6
)

// Option configures Run and Cluster.
type Option func(*options)

type options struct {
	ti, tf, ts    float64
	fac           float64
	probaComp     float64
	nochangeLimit int
	log           zerolog.Logger
	metrics       *Metrics
	tracer        trace.Tracer
	observer      func(Step)
	modules       int
	weighted      bool
	err           error
}

func defaultOptions() options {
	return options{
		tf:            DefaultTf,
		ts:            DefaultTs,
		fac:           DefaultIterationFactor,
		probaComp:     DefaultComponentProbability,
		nochangeLimit: DefaultNoChangeLimit,
		log:           zerolog.Nop(),
	}
}

func (o *options) violate(format string, args ...any) {
	if o.err == nil {
		o.err = fmt.Errorf("%w: "+format, append([]any{ErrOptionViolation}, args...)...)
	}
}

// WithSchedule sets the geometric cooling T = ti, ti·ts, … while T > tf.
// Requires tf > 0, 0 < ts < 1 and ti > tf; ti == 0 keeps the 2/N default.
func WithSchedule(ti, tf, ts float64) Option {
	return func(o *options) {
		if !(tf > 0) || !(ti == 0 || ti > tf) || math.IsInf(ti, 0) || !(ts > 0 && ts < 1) {
			o.violate("schedule ti=%g tf=%g ts=%g", ti, tf, ts)
			return
		}
		o.ti, o.tf, o.ts = ti, tf, ts
	}
}

// WithIterationFactor sets fac: max(10, ⌊fac·N²⌋) individual and
// max(2, ⌊fac·N⌋) collective moves per temperature.
func WithIterationFactor(fac float64) Option {
	return func(o *options) {
		if !(fac > 0) || math.IsInf(fac, 0) {
			o.violate("iteration factor %g", fac)
			return
		}
		o.fac = fac
	}
}

// WithComponentProbability sets the threshold a uniform draw must exceed
// for a split to try connected components before the nested anneal.
func WithComponentProbability(p float64) Option {
	return func(o *options) {
		if !(p >= 0 && p <= 1) {
			o.violate("component probability %g", p)
			return
		}
		o.probaComp = p
	}
}

// WithNoChangeLimit sets how many stalled temperature steps end the run
// (or restart it from the best partition).
func WithNoChangeLimit(n int) Option {
	return func(o *options) {
		if n < 1 {
			o.violate("no-change limit %d", n)
			return
		}
		o.nochangeLimit = n
	}
}

// WithLogger sets the structured logger (default: disabled).
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.log = l }
}

// WithMetrics records move and run statistics on m.
func WithMetrics(m *Metrics) Option {
	return func(o *options) { o.metrics = m }
}

// WithTracer overrides the OpenTelemetry tracer used for run spans.
func WithTracer(t trace.Tracer) Option {
	return func(o *options) {
		if t != nil {
			o.tracer = t
		}
	}
}

// WithObserver registers fn to be called after every temperature step.
func WithObserver(fn func(Step)) Option {
	return func(o *options) { o.observer = fn }
}

// WithModules sets the number of module slots Cluster starts from
// (0, the default, means one per node). Run ignores it.
func WithModules(n int) Option {
	return func(o *options) {
		if n < 0 {
			o.violate("modules %d", n)
			return
		}
		o.modules = n
	}
}

// WithWeighted makes Cluster use weighted modularity. Run ignores it.
func WithWeighted() Option {
	return func(o *options) { o.weighted = true }
}

func resolve(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.tracer == nil {
		o.tracer = getTracer()
	}

	return o
}
