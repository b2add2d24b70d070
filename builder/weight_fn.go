package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// DefaultWeight is used when no weight function is configured.
const DefaultWeight = 1

// WeightFn produces one non-negative transition cost from rng.
// It must be deterministic for a given RNG state.
type WeightFn func(rng *rand.Rand) int

// ConstantWeightFn always yields value. Panics if value < 0.
func ConstantWeightFn(value int) WeightFn {
	if value < 0 {
		panic(fmt.Sprintf("ConstantWeightFn: value must be ≥ 0, got %d", value))
	}
	return func(_ *rand.Rand) int { return value }
}

// UniformWeightFn samples uniformly in [min, max]. Panics unless
// 0 ≤ min ≤ max.
func UniformWeightFn(min, max int) WeightFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("UniformWeightFn: require 0 ≤ min ≤ max, got min=%d, max=%d", min, max))
	}
	return func(rng *rand.Rand) int {
		if max == min {
			return min
		}
		return min + rng.Intn(max-min+1)
	}
}

// NormalWeightFn samples N(mean, stddev), rounded and clipped at 0.
// Panics if stddev < 0.
func NormalWeightFn(mean, stddev float64) WeightFn {
	if stddev < 0 {
		panic(fmt.Sprintf("NormalWeightFn: stddev must be ≥ 0, got %f", stddev))
	}
	return func(rng *rand.Rand) int {
		sample := math.Round(rng.NormFloat64()*stddev + mean)
		if sample < 0 {
			return 0
		}
		return int(sample)
	}
}

// WithConstantWeight sets every open transition to w.
func WithConstantWeight(w int) BuilderOption {
	return WithWeightFn(ConstantWeightFn(w))
}

// WithUniformWeight draws weights from U[min,max].
func WithUniformWeight(min, max int) BuilderOption {
	return WithWeightFn(UniformWeightFn(min, max))
}

// WithNormalWeight draws weights from N(mean,stddev).
func WithNormalWeight(mean, stddev float64) BuilderOption {
	return WithWeightFn(NormalWeightFn(mean, stddev))
}
