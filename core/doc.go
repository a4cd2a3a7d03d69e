// Package core provides the in-memory graph store every lvnet algorithm runs on.
//
// A Graph G = (V,E) is an ordered collection of nodes with dense integer ids
// (0..N-1, the id doubles as the slice index) and, per node, a vector of
// outgoing weighted links:
//
//	nodes[id]    = Node{ID, Label, Coords, Group, Aux}
//	adjacency[id] = []Link{To, Weight, Status, Betweenness}
//
// Undirected graphs are stored symmetrically: every link u→v has a mirror
// v→u (see WithSymmetric). Directed graphs simply omit the mirror.
//
// Construction:
//
//	– AppendNode(label) assigns the next sequential id.
//	– AddLink(u, v, w, opts...) creates or (WithAccumulate) reinforces a link.
//	– AddLinkSoft(u, v, w, opts...) records a link by target id only, for the
//	  case where the target node does not exist yet; Rewire() resolves every
//	  soft link in one bulk pass. Traversals refuse graphs with pending soft
//	  links (ErrUnresolved).
//	– Builder / FromRecords turn labelled pairwise records into a Graph,
//	  deduplicating nodes through a label → id hash index.
//
// Maintenance:
//
//	– Copy() deep-clones topology and attributes in O(N+E).
//	– RemoveIsolatedNodes() drops nodes without links and renumbers.
//	– Renumber() makes ids match positions again and remaps every link target.
//	– Subgraph(keep) materializes an independent graph of the kept members.
//
// Concurrency:
//
//	A Graph has exactly one mutator. It carries no locks; callers that share a
//	Graph across goroutines must serialize access themselves.
//
// Errors:
//
//	ErrNodeNotFound   – id outside 0..N-1
//	ErrLinkNotFound   – link u→v (or its mirror) does not exist
//	ErrSelfLink       – self-link without WithSelfLinks
//	ErrDanglingLink   – Rewire found a soft link to a missing node
//	ErrUnresolved     – operation needs resolved links but soft links are pending
//	ErrBadWeight      – NaN or infinite weight
//	ErrEmptyLabel     – Builder record with an empty label
//	ErrMaskLength     – Subgraph mask length differs from N
package core
