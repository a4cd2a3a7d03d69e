// Package anneal searches node partitions by simulated annealing over a
// caller-supplied Objective.
//
// What:
//
//   - Run: the annealing state machine over a partition.Partition, with
//     individual moves, merges, splits (by components or by a nested
//     anneal), best-partition snapshots and stall-based termination.
//   - Cluster: modularity objective + initial partition + Run + label
//     grouping, for a core.Graph.
//
// The engine never computes energy itself beyond the initial Energy call;
// it accumulates the deltas of accepted moves. Deltas must therefore be
// exact for the energy bookkeeping to stay correct.
//
// Options:
//
//   - WithSchedule(ti, tf, ts)     cooling (ti defaults to 2/N).
//   - WithIterationFactor(fac)     moves per temperature.
//   - WithComponentProbability(p)  split-by-components threshold.
//   - WithNoChangeLimit(n)         stall limit.
//   - WithLogger, WithMetrics, WithTracer, WithObserver.
//   - WithModules, WithWeighted    (Cluster only).
//
// Instrumentation: each run gets a uuid logged with every message and set
// on its OpenTelemetry span; Metrics counts moves by kind and outcome.
//
// Determinism: a run is a pure function of the partition, the objective
// and the random stream (rng.New(seed)); the run id is the only exception.
package anneal
