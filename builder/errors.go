// SPDX-License-Identifier: MIT
// Package: lvnet/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context using `%w`.

package builder

import "errors"

// ErrTooFewNodes indicates that a numeric parameter (n, rows, cols, degree,
// clique size) is smaller than the allowed minimum for the constructor.
var ErrTooFewNodes = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor requires a random
// stream (WithSeed or WithSource).
var ErrNeedRandSource = errors.New("builder: random source is required")

// ErrUnsupportedGraphMode indicates the constructor cannot honor the
// configured mode (RandomRegular with WithDirected).
var ErrUnsupportedGraphMode = errors.New("builder: unsupported graph mode")

// ErrConstructFailed indicates that the builder exhausted its attempts, or was
// handed a nil graph or constructor.
var ErrConstructFailed = errors.New("builder: construction failed")
