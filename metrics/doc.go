// Package metrics computes structural measures of a core.Graph on top of
// the multi-predecessor BFS of package bfs.
//
// Measures
//
//   - Distances:   DistanceHistogram, DistanceHistogramFrom,
//     AveragePathLength, AverageInverseDistance.
//   - Clustering:  NodeClustering, ClusteringCoefficient, GlobalClustering,
//     NodeSquareClustering, SquareClustering.
//   - Degrees:     Degrees, Assortativity, Knn, TopologicalOverlap.
//   - Betweenness: LinkBetweenness, BiggestLinkBetweenness (stored on links).
//
// All-sources measures reuse a single bfs.Walker and run one traversal per
// source in id order; they are wrapped in an OpenTelemetry span (the global
// provider is a no-op unless the caller installs one) and accept
// WithContext for cancellation and WithLogger for zerolog diagnostics.
//
// Conventions
//
//	Undirected graphs are expected to be stored symmetrically. Degree means
//	the number of outgoing links. Degenerate inputs never panic: they return
//	a sentinel error (plus, where a numeric code is customary, a negative
//	sentinel value such as -1 for the path length of a disconnected graph).
//
// Complexity (V = |Nodes|, E = |Links|)
//
//   - Per-node measures:  O(V+E) at most.
//   - All-sources sweeps: O(V·(V+E)).
package metrics
