// Package builder assembles deterministic network fixtures on top of
// core.Graph: classic topologies for tests, examples and benchmarks, and the
// random generators used to exercise the randomizer and the annealer.
//
// The package offers:
//
//   - Composition:
//     – Constructor:  a closure that mutates a graph under a resolved config.
//     – BuildGraph:   creates a graph and applies constructors in order.
//   - Configuration (BuilderOption):
//     – WithIDScheme / WithDefaultIDs / WithSymbolIDs / ...: node labels.
//     – WithSource / WithSeed:  random stream for stochastic constructors.
//     – WithWeightFn:           per-link weights.
//     – WithPartitionPrefix:    bipartite side labels.
//     – WithDirected:           one-way links instead of symmetric pairs.
//   - Topologies:
//     – Path, Cycle, Star, Wheel, Complete, CompleteBipartite, Grid.
//     – RingOfCliques: planted modules joined in a ring.
//     – RandomSparse (G(n,p)) and RandomRegular (stub matching).
//
// Labels and ids:
//
//	Constructors label nodes through the ID scheme and reuse an existing node
//	with the same label, so constructors compose (Wheel = Cycle + hub) and a
//	repeated constructor adds nothing new. Fresh nodes get ids in label order.
//
// Links are symmetric by default (one entry per direction); WithDirected
// emits only u→v. Re-adding an existing link is a no-op.
//
// Guarantees:
//
//   - Fast-fail on meaningless option values via panics in option
//     constructors; constructors themselves return sentinel errors.
//   - Same options, seed and constructor order ⇒ identical graphs.
package builder
