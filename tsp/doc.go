// Package tsp solves the asymmetric Travelling Salesman Problem exactly on
// small instances (N ≲ 20) given a matrix.Matrix of integer costs.
//
// It includes two exact algorithms:
//
//   - LittleBranchAndBound - Little's matrix-reduction branch-and-bound
//     (default). A best-first search over reduced cost matrices; each branch
//     either commits the first zero-cost successor of the current node or
//     forbids it.
//
//   - Complexity: exponential worst case, fast in practice on N ≤ 20.
//
//   - Memory:     O(N²) per pending subproblem.
//
//   - ExactHeldKarp - the Held–Karp dynamic program, used as a reference
//     and cross-check for N ≤ 16.
//
//   - Complexity: O(N²·2ᴺ)
//
//   - Memory:     O(N·2ᴺ)
//
// Tours always start and end at node 0. Blocked transitions are expressed
// with matrix.Blocked(), never with a reserved integer. Outcomes:
//
//   - a Route (cost and N+1 node sequence) on success,
//   - ErrNoTour when no Hamiltonian cycle exists,
//   - ErrCancelled (also matching the context error) when ctx is done.
//
// The search is single-threaded and deterministic: the same input always
// yields the same Route.
package tsp
