// SPDX-License-Identifier: MIT
// Package: lvnet/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults (no surprises):
//   • idFn        = DefaultIDFn        ("0","1","2",...)
//   • src         = nil                (pure/deterministic unless seeded)
//   • weightFn    = DefaultWeightFn    (constant 1)
//   • left/right  = "L" / "R"
//   • directed    = false              (symmetric link pairs)

package builder

import "github.com/katalvlaran/lvnet/rng"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// Node label strategy: index -> label (deterministic).
	idFn IDFn
	// Random stream for stochastic choices; nil means “no randomness”.
	src rng.Source
	// Weight generator for links.
	weightFn WeightFn

	// Bipartite label prefixes (left/right). Empty → defaults resolved below.
	leftPrefix  string
	rightPrefix string

	// directed emits u→v only.
	directed bool
}

const (
	defaultLeftPrefix  = "L"
	defaultRightPrefix = "R"
)

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (later overrides earlier).
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:        DefaultIDFn,
		weightFn:    DefaultWeightFn,
		leftPrefix:  defaultLeftPrefix,
		rightPrefix: defaultRightPrefix,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.leftPrefix == "" {
		cfg.leftPrefix = defaultLeftPrefix
	}
	if cfg.rightPrefix == "" {
		cfg.rightPrefix = defaultRightPrefix
	}

	return cfg
}
