// SPDX-License-Identifier: MIT
// Package: builder
//
// options.go - functional options for the builder package.
//
// Option constructors validate and panic on meaningless inputs; the
// constructors themselves never panic.

package builder

import "math/rand"

// BuilderOption customizes a constructor by mutating builderConfig.
type BuilderOption func(*builderConfig)

// builderConfig is the resolved set of options.
type builderConfig struct {
	rng       *rand.Rand
	weightFn  WeightFn
	pBlocked  float64
	symmetric bool
	gridSide  int
}

// defaultSeed keeps unseeded builds reproducible.
const defaultSeed = 1

// defaultGridSide bounds Euclidean coordinates.
const defaultGridSide = 100

func newBuilderConfig(opts ...BuilderOption) *builderConfig {
	c := &builderConfig{
		weightFn: ConstantWeightFn(DefaultWeight),
		gridSide: defaultGridSide,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.rng == nil {
		c.rng = rand.New(rand.NewSource(defaultSeed))
	}
	return c
}

// WithSeed seeds a fresh RNG; same seed, same matrix.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand uses r for every draw. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithWeightFn overrides the weight generator. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) { c.weightFn = fn }
}

// WithBlockedProbability blocks each off-diagonal transition with
// probability p. Panics unless 0 ≤ p ≤ 1.
func WithBlockedProbability(p float64) BuilderOption {
	if p < 0 || p > 1 {
		panic("builder: WithBlockedProbability(p∉[0,1])")
	}
	return func(c *builderConfig) { c.pBlocked = p }
}

// WithSymmetric makes cost(i,j) == cost(j,i), blocked cells included.
func WithSymmetric() BuilderOption {
	return func(c *builderConfig) { c.symmetric = true }
}

// WithGridSide sets the coordinate range [0,side] used by Euclidean.
// Panics if side < 1.
func WithGridSide(side int) BuilderOption {
	if side < 1 {
		panic("builder: WithGridSide(side<1)")
	}
	return func(c *builderConfig) { c.gridSide = side }
}
