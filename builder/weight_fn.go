// Package builder: link weight distributions (WeightFn implementations).
package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvnet/rng"
)

// DefaultEdgeWeight is the weight of every link when no WeightFn is set.
const DefaultEdgeWeight float64 = 1

// WeightFn produces a link weight from an optional random stream. It must be
// deterministic for a given stream state.
type WeightFn func(src rng.Source) float64

// DefaultWeightFn always returns DefaultEdgeWeight.
func DefaultWeightFn(_ rng.Source) float64 {
	return DefaultEdgeWeight
}

// ConstantWeightFn always yields value. Panics if value < 0.
func ConstantWeightFn(value float64) WeightFn {
	if value < 0 {
		panic(fmt.Sprintf("ConstantWeightFn: value must be ≥ 0, got %g", value))
	}

	return func(_ rng.Source) float64 {
		return value
	}
}

// UniformWeightFn samples uniformly in [min, max). Panics if min < 0 or
// max < min. A nil stream yields DefaultEdgeWeight.
func UniformWeightFn(min, max float64) WeightFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("UniformWeightFn: require 0 ≤ min ≤ max, got min=%g, max=%g", min, max))
	}
	return func(src rng.Source) float64 {
		if src == nil {
			return DefaultEdgeWeight
		}
		if max == min {
			return min
		}

		return min + src.Float64()*(max-min)
	}
}

// IntegerWeightFn samples integers uniformly in [min, max]. Panics if
// min < 0 or max < min. A nil stream yields DefaultEdgeWeight.
func IntegerWeightFn(min, max int) WeightFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("IntegerWeightFn: require 0 ≤ min ≤ max, got min=%d, max=%d", min, max))
	}
	return func(src rng.Source) float64 {
		if src == nil {
			return DefaultEdgeWeight
		}

		return float64(min + rng.Intn(src, max-min+1))
	}
}

// ExponentialWeightFn samples Exp(rate) by inversion. Panics if rate ≤ 0.
// A nil stream yields DefaultEdgeWeight.
func ExponentialWeightFn(rate float64) WeightFn {
	if rate <= 0 {
		panic(fmt.Sprintf("ExponentialWeightFn: rate must be > 0, got %g", rate))
	}
	return func(src rng.Source) float64 {
		if src == nil {
			return DefaultEdgeWeight
		}

		return -math.Log(1-src.Float64()) / rate
	}
}
