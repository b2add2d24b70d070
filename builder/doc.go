// Package builder generates cost-matrix instances for tests, benchmarks and
// the "littletsp gen" command.
//
// The package offers:
//
//   - Configuration primitives:
//     – BuilderOption: a function that mutates builderConfig before use.
//     – WithSeed / WithRand: deterministic randomness.
//     – WithWeightFn and its shorthands: weight distributions.
//     – WithBlockedProbability: chance that a transition is blocked.
//     – WithSymmetric: mirror (i,j) onto (j,i).
//   - Constructors, each returning a fresh *matrix.Costs:
//     – Random:    independent weights per cell.
//     – Euclidean: rounded distances between random grid points.
//     – Planted:   a known optimal tour hidden among heavier edges.
//     – Bipartite: transitions only across two groups (no tour unless the
//     groups have equal size).
//
// Guarantees:
//
//   - Same options and seed, same matrix.
//   - Option constructors panic on meaningless values; constructors return
//     sentinel errors wrapped with the constructor name.
package builder
