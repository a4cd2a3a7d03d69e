// Package connectivity checks whether a core.Graph is connected and extracts
// its strongly or weakly connected clusters as independent graphs.
//
// What:
//
//   - IsConnected: one BFS from node 0; connected iff its closure is N.
//   - LargestStrong / LargestWeak: grow clusters from the first unselected
//     seed, materialize each with core.Subgraph and keep the largest.
//   - Components, CountStrong: every cluster's member ids, no short-circuit.
//
// Extraction:
//
//	Strong: a node discovered by the forward BFS is kept only when it also
//	reaches the current cluster back in a frozen copy of the graph. Rejected
//	nodes are not expanded.
//	Weak: the forward closure of the seed, then repeated sweeps over the
//	unselected nodes absorbing every node that reaches the cluster together
//	with its own forward closure, until a sweep absorbs nothing.
//
// The largest-cluster search stops as soon as a cluster holds more than
// N/2 nodes or more than the caller threshold (threshold ≤ 0 disables the
// latter).
//
// Complexity:
//
//   - IsConnected:         O(N+E).
//   - Strong/weak passes:  O(N·(N+E)) in the worst case, one reachability
//     BFS per tested node.
//
// Errors:
//
//   - ErrGraphNil:     nil graph.
//   - ErrEmptyGraph:   graph without nodes.
//   - ErrInvalidMode:  unknown extraction Mode.
//   - core.ErrUnresolved (wrapped): pending soft links.
package connectivity
