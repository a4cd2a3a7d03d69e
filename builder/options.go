// SPDX-License-Identifier: MIT
// Package: lvnet/builder
//
// options.go - functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithSource.

package builder

import "github.com/katalvlaran/lvnet/rng"

// BuilderOption customizes a constructor by mutating a builderConfig
// before graph construction begins.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the deterministic node label generator: idx -> label.
// Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithSource provides an explicit random stream for stochastic builders.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithSource(src rng.Source) BuilderOption {
	if src == nil {
		panic("builder: WithSource(nil)")
	}
	return func(c *builderConfig) {
		c.src = src
	}
}

// WithSeed attaches a fresh rng.New(seed) stream.
func WithSeed(seed uint64) BuilderOption {
	return func(c *builderConfig) {
		c.src = rng.New(seed)
	}
}

// WithWeightFn overrides the per-link weight generator. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
	}
}

// WithPartitionPrefix sets bipartite side labels (left/right).
// Empty values mean “use defaults”.
func WithPartitionPrefix(left, right string) BuilderOption {
	return func(c *builderConfig) {
		c.leftPrefix, c.rightPrefix = left, right
	}
}

// WithDirected makes constructors emit u→v only.
func WithDirected() BuilderOption {
	return func(c *builderConfig) {
		c.directed = true
	}
}
