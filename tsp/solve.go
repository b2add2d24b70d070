// Package tsp - unified entry point for the exact solvers.
//
// Solve validates the input once and routes to the requested algorithm.
//
// Design principles:
//   - Deterministic: identical input and options give identical routes.
//   - Strict sentinels: only errors from types.go and the matrix package.
//   - Stateless: nothing survives between calls, so concurrent Solve calls
//     on different inputs are safe.
package tsp

import (
	"context"
	"strings"

	"github.com/katalvlaran/littletsp/matrix"
)

// Algorithm selects the solver.
type Algorithm int

const (
	// LittleBranchAndBound is Little's reduction branch-and-bound (default).
	LittleBranchAndBound Algorithm = iota
	// ExactHeldKarp is the Held–Karp dynamic program (N ≤ HeldKarpMaxNodes).
	ExactHeldKarp
)

// String returns the canonical algorithm name.
func (a Algorithm) String() string {
	switch a {
	case LittleBranchAndBound:
		return "little"
	case ExactHeldKarp:
		return "heldkarp"
	default:
		return "unknown"
	}
}

// ParseAlgorithm maps a name to an Algorithm ("little", "bnb", "heldkarp",
// "held-karp", "dp").
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "little", "bnb", "branch-and-bound":
		return LittleBranchAndBound, nil
	case "heldkarp", "held-karp", "dp":
		return ExactHeldKarp, nil
	default:
		return 0, ErrUnsupportedAlgorithm
	}
}

// Options configures Solve.
type Options struct {
	// Algo selects the solver.
	Algo Algorithm

	// MaxNodes rejects larger instances with ErrTooManyNodes; 0 disables
	// the check.
	MaxNodes int
}

// DefaultOptions returns Little's algorithm with the interactive size limit.
func DefaultOptions() Options {
	return Options{Algo: LittleBranchAndBound, MaxNodes: DefaultMaxNodes}
}

// Validate checks dist against the input rules and the limits of o
// without searching. It returns N.
func (o Options) Validate(dist matrix.Matrix) (int, error) {
	n, err := validateInput(dist, o.MaxNodes)
	if err != nil {
		return 0, err
	}
	switch o.Algo {
	case LittleBranchAndBound:
	case ExactHeldKarp:
		if n > HeldKarpMaxNodes {
			return 0, ErrTooManyNodes
		}
	default:
		return 0, ErrUnsupportedAlgorithm
	}

	return n, nil
}

// Solve finds an optimal tour of dist starting and ending at node 0.
//
// Returns the Route, or ErrNoTour when none exists, or an error matching
// both ErrCancelled and ctx.Err() when ctx is done first. Malformed input
// yields matrix sentinels, ErrTooFewNodes or ErrTooManyNodes.
func Solve(ctx context.Context, dist matrix.Matrix, opts Options) (Route, error) {
	if _, err := opts.Validate(dist); err != nil {
		return Route{}, err
	}

	switch opts.Algo {
	case LittleBranchAndBound:
		e, err := NewEngine(dist)
		if err != nil {
			return Route{}, err
		}
		return e.Run(ctx)

	case ExactHeldKarp:
		return HeldKarp(ctx, dist)

	default:
		return Route{}, ErrUnsupportedAlgorithm
	}
}
