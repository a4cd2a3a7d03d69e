// SPDX-License-Identifier: MIT
// Package: lvnet/core
//
// builder.go - turn labelled pairwise records into a Graph.
//
// Contract:
//   • Labels are deduplicated through the label → id index: the first
//     occurrence of a label creates the node, later ones reuse it.
//   • Unweighted builds store weight 1 on every link.
//   • Symmetric builds store each record twice (u→v and v→u).
//   • Duplicate records are ignored unless WithAccumulatedWeights is set.
//   • Self-links are rejected (ErrSelfLink) unless WithSelfLinksAllowed.

package core

import "fmt"

// Record is one pairwise input line: From → To with an optional weight.
type Record struct {
	From   string
	To     string
	Weight float64
}

// BuildOption configures a Builder.
type BuildOption func(*buildConfig)

type buildConfig struct {
	weighted   bool
	symmetric  bool
	selfLinks  bool
	accumulate bool
}

// WithWeighted keeps Record.Weight instead of forcing 1.
func WithWeighted() BuildOption {
	return func(c *buildConfig) { c.weighted = true }
}

// WithSymmetricLinks stores every record in both directions.
func WithSymmetricLinks() BuildOption {
	return func(c *buildConfig) { c.symmetric = true }
}

// WithSelfLinksAllowed accepts records whose endpoints coincide.
func WithSelfLinksAllowed() BuildOption {
	return func(c *buildConfig) { c.selfLinks = true }
}

// WithAccumulatedWeights adds the weight of a repeated record to the
// existing link.
func WithAccumulatedWeights() BuildOption {
	return func(c *buildConfig) { c.accumulate = true }
}

// Builder accumulates records into a Graph.
type Builder struct {
	g    *Graph
	cfg  buildConfig
	opts []LinkOption
}

// NewBuilder returns a Builder over an empty graph.
func NewBuilder(opts ...BuildOption) *Builder {
	var cfg buildConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	var lopts []LinkOption
	if cfg.symmetric {
		lopts = append(lopts, WithSymmetric())
	}
	if cfg.selfLinks {
		lopts = append(lopts, WithSelfLinks())
	}
	if cfg.accumulate {
		lopts = append(lopts, WithAccumulate())
	}

	return &Builder{g: New(), cfg: cfg, opts: lopts}
}

// node returns the id for label, appending a node on first sight.
func (b *Builder) node(label string) int {
	if id, ok := b.g.NodeByLabel(label); ok {
		return id
	}

	return b.g.AppendNode(label)
}

// Add inserts one record. It reports whether a link was created or
// reinforced.
func (b *Builder) Add(r Record) (bool, error) {
	if r.From == "" || r.To == "" {
		return false, fmt.Errorf("Builder.Add(%q→%q): %w", r.From, r.To, ErrEmptyLabel)
	}
	if r.From == r.To && !b.cfg.selfLinks {
		return false, fmt.Errorf("Builder.Add(%q→%q): %w", r.From, r.To, ErrSelfLink)
	}
	w := 1.0
	if b.cfg.weighted {
		w = r.Weight
	}
	u := b.node(r.From)
	v := b.node(r.To)

	return b.g.AddLink(u, v, w, b.opts...)
}

// Graph returns the graph built so far. The Builder keeps a reference to it;
// further Add calls keep mutating the same graph.
func (b *Builder) Graph() *Graph { return b.g }

// FromRecords builds a Graph from records in one call. The first failing
// record aborts the build.
// Complexity: O(R · d) where d is the typical degree (duplicate detection).
func FromRecords(records []Record, opts ...BuildOption) (*Graph, error) {
	b := NewBuilder(opts...)
	for i, r := range records {
		if _, err := b.Add(r); err != nil {
			return nil, fmt.Errorf("FromRecords: record %d: %w", i, err)
		}
	}

	return b.Graph(), nil
}
