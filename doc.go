// Package lvnet is an in-memory toolkit for complex-network analysis: a
// compact graph store, structural metrics, degree-preserving null models and
// community detection by simulated annealing of modularity.
//
// What is inside:
//
//	core/          - Graph with dense int ids, soft links, renumbering, subgraphs
//	bfs/           - layered BFS keeping every shortest-path predecessor
//	metrics/       - path lengths, clustering (triangle and square), degree
//	                 statistics, node and link betweenness
//	connectivity/  - strong/weak components and largest-cluster extraction
//	randomize/     - degree-preserving double-edge swaps
//	rng/           - deterministic random streams
//	partition/     - node→module assignment with O(1) moves and merges
//	objective/     - modularity energy with exact move/merge deltas
//	anneal/        - simulated-annealing engine and Cluster entry point
//	builder/       - deterministic topologies for tests and benchmarks
//	config/        - HCL run configuration
//	converters/    - gonum graph import/export
//
// Quick example (two triangles bridged twice):
//
//	g, _ := builder.BuildGraph(nil, builder.RingOfCliques(2, 3))
//	res, _ := anneal.Cluster(ctx, g, rng.New(1))
//	// res.Groups → [[0 1 2] [3 4 5]]
//
// Determinism: every stochastic operation draws from an rng.Source supplied
// by the caller; the same seed reproduces the same result.
package lvnet
