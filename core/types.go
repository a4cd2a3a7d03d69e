// Package core defines the central Graph, Node, and Link types, the link
// options, and the sentinel errors of the graph store.
//
// Errors:
//
//	ErrNodeNotFound   - requested node id does not exist.
//	ErrLinkNotFound   - requested link does not exist.
//	ErrSelfLink       - self-link attempted without WithSelfLinks.
//	ErrDanglingLink   - soft link target does not resolve to a node.
//	ErrUnresolved     - soft links are pending; call Rewire first.
//	ErrBadWeight      - weight is NaN or infinite.
//	ErrEmptyLabel     - record label is empty.
//	ErrMaskLength     - membership mask does not cover every node.
package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrNodeNotFound indicates an operation referenced a non-existent node id.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrLinkNotFound indicates an operation referenced a non-existent link.
	ErrLinkNotFound = errors.New("core: link not found")

	// ErrSelfLink indicates a self-link was attempted when self-links are disabled.
	ErrSelfLink = errors.New("core: self-link not allowed")

	// ErrDanglingLink indicates a soft link whose target id has no node.
	ErrDanglingLink = errors.New("core: dangling soft link")

	// ErrUnresolved indicates that soft links are pending resolution.
	ErrUnresolved = errors.New("core: soft links pending, call Rewire")

	// ErrBadWeight indicates a NaN or infinite link weight.
	ErrBadWeight = errors.New("core: bad link weight")

	// ErrEmptyLabel indicates a record with an empty node label.
	ErrEmptyLabel = errors.New("core: node label is empty")

	// ErrMaskLength indicates a membership mask whose length differs from N.
	ErrMaskLength = errors.New("core: mask length mismatch")
)

// unset is the value used for node attributes that were never assigned.
const unset = -1

// Node is a vertex of the graph.
//
// ID equals the node's position in the graph after any renumbering.
// Visited/state flags used by traversals are NOT stored here; they live in
// per-traversal scratch (see package bfs).
type Node struct {
	// ID is the dense integer identifier (0..N-1).
	ID int

	// Label is the external name of the node.
	Label string

	// Coords holds optional spatial coordinates (x, y, z); -1 when unset.
	Coords [3]float64

	// Group is a caller-assigned group id; -1 when unset.
	Group int

	// Aux is an auxiliary scalar attribute; -1 when unset.
	Aux float64
}

// Link is an outgoing adjacency entry.
type Link struct {
	// To is the target node id.
	To int

	// Weight is the link weight (1 for unweighted inputs).
	Weight float64

	// Status is a caller-defined flag (e.g. 1 for links created by rewiring).
	Status int

	// Betweenness accumulates link betweenness (see package metrics).
	Betweenness float64

	// soft marks a link whose target has not been resolved by Rewire.
	soft bool
}

// Edge is a read-only (source, target, weight) triple produced by Edges.
type Edge struct {
	From   int
	To     int
	Weight float64
}

// LinkOption configures AddLink / AddLinkSoft.
type LinkOption func(*linkOptions)

type linkOptions struct {
	selfLinks  bool
	accumulate bool
	symmetric  bool
	status     int
}

// WithSelfLinks permits u == v.
func WithSelfLinks() LinkOption {
	return func(o *linkOptions) { o.selfLinks = true }
}

// WithAccumulate adds the weight to an already existing link instead of
// leaving it untouched.
func WithAccumulate() LinkOption {
	return func(o *linkOptions) { o.accumulate = true }
}

// WithSymmetric also creates (or reinforces) the mirror link v→u.
func WithSymmetric() LinkOption {
	return func(o *linkOptions) { o.symmetric = true }
}

// WithStatus sets the status flag stored on newly created links.
func WithStatus(status int) LinkOption {
	return func(o *linkOptions) { o.status = status }
}

func resolveLinkOptions(opts []LinkOption) linkOptions {
	var o linkOptions
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Graph is the in-memory graph store.
//
// nodes and adjacency are parallel slices indexed by node id; labels maps a
// label to the first node carrying it; pending counts unresolved soft links.
type Graph struct {
	nodes     []Node
	adjacency [][]Link
	labels    map[string]int
	pending   int
}

// New creates an empty Graph.
// Complexity: O(1)
func New() *Graph {
	return &Graph{labels: make(map[string]int)}
}

// NewWithCapacity creates an empty Graph with room for n nodes.
// Complexity: O(n)
func NewWithCapacity(n int) *Graph {
	if n < 0 {
		n = 0
	}

	return &Graph{
		nodes:     make([]Node, 0, n),
		adjacency: make([][]Link, 0, n),
		labels:    make(map[string]int, n),
	}
}
