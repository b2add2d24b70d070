// Package tsp - input validation shared by the solvers.
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only sentinel errors.
//   - O(N²) worst-case where N is the matrix order.
package tsp

import "github.com/katalvlaran/littletsp/matrix"

// validateInput verifies the matrix and the node-count limits and returns N.
//
// Contract:
//   - dist must be non-nil, square, with blocked diagonal and non-negative
//     open weights (see matrix.ValidateMatrix).
//   - MinNodes ≤ N ≤ maxNodes; maxNodes ≤ 0 disables the upper limit.
func validateInput(dist matrix.Matrix, maxNodes int) (int, error) {
	n, err := matrix.ValidateMatrix(dist)
	if err != nil {
		return 0, err
	}
	if n < MinNodes {
		return 0, ErrTooFewNodes
	}
	if maxNodes > 0 && n > maxNodes {
		return 0, ErrTooManyNodes
	}

	return n, nil
}
