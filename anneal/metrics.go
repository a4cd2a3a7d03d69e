package anneal

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// Move kinds and outcomes used as metric labels.
const (
	kindIndividual = "individual"
	kindMerge      = "merge"
	kindSplit      = "split"

	resultAccepted = "accepted"
	resultRejected = "rejected"
)

// Metrics holds the Prometheus collectors of annealing runs. Create it once
// per registry and share it across runs.
type Metrics struct {
	moves    *prometheus.CounterVec
	restarts prometheus.Counter
	best     prometheus.Gauge
	steps    prometheus.Histogram
}

// NewMetrics registers the annealing collectors on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		moves: f.NewCounterVec(prometheus.CounterOpts{
			Name: "lvnet_anneal_moves_total",
			Help: "Annealing moves by kind and outcome",
		}, []string{"kind", "result"}),
		restarts: f.NewCounter(prometheus.CounterOpts{
			Name: "lvnet_anneal_restarts_total",
			Help: "Restarts from the best partition after a stall",
		}),
		best: f.NewGauge(prometheus.GaugeOpts{
			Name: "lvnet_anneal_best_energy",
			Help: "Best energy of the latest run",
		}),
		steps: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "lvnet_anneal_temperature_steps",
			Help:    "Temperature steps per run",
			Buckets: []float64{10, 50, 100, 250, 500, 1000, 2500, 5000},
		}),
	}
}

func (m *Metrics) move(kind string, accepted bool) {
	if m == nil {
		return
	}
	res := resultRejected
	if accepted {
		res = resultAccepted
	}
	m.moves.WithLabelValues(kind, res).Inc()
}

func (m *Metrics) restart() {
	if m == nil {
		return
	}
	m.restarts.Inc()
}

func (m *Metrics) finish(best float64, steps int) {
	if m == nil {
		return
	}
	m.best.Set(best)
	m.steps.Observe(float64(steps))
}

var (
	tracerOnce  sync.Once
	annealTrace trace.Tracer
)

// getTracer returns the package tracer from the global provider, resolved
// lazily so callers may install a provider after import.
func getTracer() trace.Tracer {
	tracerOnce.Do(func() {
		annealTrace = otel.Tracer("github.com/katalvlaran/lvnet/anneal")
	})

	return annealTrace
}
