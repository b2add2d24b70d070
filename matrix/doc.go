// Package matrix holds the square cost matrices consumed by the tsp solvers.
//
// The matrix package provides:
//
//   - Cost, a tagged value that is either a non-negative integer weight or
//     Blocked (no transition allowed). Blocked never takes part in arithmetic.
//   - Costs, a dense row-major N×N matrix of Cost with a permanently blocked
//     diagonal, bounds-checked At/Set and deep Clone.
//   - Decoders and encoders for the line-per-row text format and for
//     JSON, YAML and TOML documents carrying a "costs" table.
//
// Matrices are small by nature here (N ≲ 20), so O(N²) storage and O(N²)
// validation passes are always acceptable.
package matrix
