// Package matrix defines the read-only Matrix interface consumed by solvers.
//
// What & Why:
//
//	Solvers only ever read the input costs once, when they build their own
//	working copy. Accepting this narrow interface instead of *Costs lets
//	callers hand over any square storage (a UI table model, a test double)
//	without converting it first.
//
// Complexity:
//
//	Rows() and Cols() run in O(1) time.
//	At() performs bounds checking in O(1) time, returning an error on invalid indices.
package matrix

// Matrix represents a two-dimensional read-only array of Cost values.
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (Cost, error)
}
