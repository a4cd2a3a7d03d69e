// Package bfs provides a layered breadth-first search over a core.Graph,
// returning unweighted shortest-path distances, every minimal-distance
// predecessor, and visit order.
//
// What
//
//   - Explore nodes in non-decreasing distance (link count) from a source.
//   - A node reached for the first time is enqueued at distance d+1 with the
//     current node as predecessor.
//   - A node reached again at the same distance d+1 from another node of
//     layer d gains that node as an extra predecessor; it is never enqueued
//     twice. The predecessor lists therefore describe the full shortest-path
//     DAG, which betweenness and path counting rely on.
//   - Expansion proceeds one layer at a time (Walker.Advance) and stops when
//     a layer adds nothing.
//
// Walker vs BFS
//
//	Walker owns reusable scratch (distances, predecessors, queue, layer
//	offsets). Algorithms that run one traversal per source (distance
//	histograms, betweenness, connectivity) keep a single Walker and call
//	Run(src) repeatedly; Start resets only what the previous run touched.
//	BFS(g, src) is the one-shot convenience that returns an independent
//	BFSResult.
//
// Determinism
//
//	Links are expanded in insertion order, so the visit sequence and the
//	predecessor order are fully reproducible.
//
// Complexity (V = |Nodes|, E = |Links|)
//
//   - Time:   O(V + E) per source
//   - Memory: O(V + E) scratch (predecessor lists are bounded by E)
//
// Usage
//
//	res, err := bfs.BFS(g, 0)
//	if err != nil {
//	    // ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation,
//	    // core.ErrUnresolved, context errors, or hook errors
//	}
//
//	w, _ := bfs.NewWalker(g, bfs.WithContext(ctx))
//	for src := 0; src < g.NodeCount(); src++ {
//	    if err := w.Run(src); err != nil { ... }
//	    for d := 1; d <= w.Depth(); d++ { _ = w.Layer(d) }
//	}
//
// Options
//
//   - DefaultOptions(): background Context, no-op hooks, no depth limit, no filtering.
//   - WithContext(ctx):            cancellation, checked once per layer.
//   - WithMaxDepth(d):             stop exploring beyond depth d (>0).
//   - WithFilterNeighbor(fn):      skip links for which fn(curr,neighbor)==false.
//   - WithOnEnqueue(fn):           hook on first discovery of a node.
//   - WithOnVisit(fn):             hook when a node is expanded; an error aborts.
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the source id is out of range.
//   - ErrOptionViolation      if invalid Option (e.g. negative MaxDepth).
//   - ErrNotStarted           if Advance is called before Start.
//   - core.ErrUnresolved      if the graph still has pending soft links.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
