// Package tsp - tour utilities shared by the solvers and their callers.
//
// Provided helpers:
//   - ValidateTour: enforce Hamiltonian cycle invariants on a sequence.
//   - TourCost: sum the original costs along a sequence.
//
// Design:
//   - No logging, no panics on user input - only sentinel errors from types.go.
//   - O(N) time.
package tsp

import (
	"fmt"

	"github.com/katalvlaran/littletsp/matrix"
)

// ValidateTour enforces the Route invariants for n nodes:
//
//	len(seq) == n+1, seq[0]==seq[n]==0,
//	each node v∈[0..n-1] appears exactly once in positions [0..n-1].
//
// Complexity: O(n) time, O(n) space.
func ValidateTour(seq []int, n int) error {
	if n < 1 || len(seq) != n+1 {
		return fmt.Errorf("length %d for %d nodes: %w", len(seq), n, ErrInvalidTour)
	}
	if seq[0] != startNode || seq[n] != startNode {
		return fmt.Errorf("tour must start and end at %d: %w", startNode, ErrInvalidTour)
	}
	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = seq[i]
		if v < 0 || v >= n {
			return fmt.Errorf("node %d out of range: %w", v, ErrInvalidTour)
		}
		if seen[v] {
			return fmt.Errorf("node %d visited twice: %w", v, ErrInvalidTour)
		}
		seen[v] = true
	}

	return nil
}

// TourCost sums dist along seq[i]→seq[i+1].
//
// Errors: matrix.ErrOutOfRange for bad indices, ErrBlockedTransition when
// an edge is blocked.
// Complexity: O(len(seq)).
func TourCost(dist matrix.Matrix, seq []int) (int, error) {
	if dist == nil {
		return 0, matrix.ErrNilMatrix
	}
	var (
		sum int
		i   int
		c   matrix.Cost
		w   int
		ok  bool
		err error
	)
	for i = 1; i < len(seq); i++ {
		if c, err = dist.At(seq[i-1], seq[i]); err != nil {
			return 0, err
		}
		if w, ok = c.Value(); !ok {
			return 0, fmt.Errorf("%d→%d: %w", seq[i-1], seq[i], ErrBlockedTransition)
		}
		sum += w
	}

	return sum, nil
}
