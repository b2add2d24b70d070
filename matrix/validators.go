// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for shape and value checks.
//  - Return plain sentinel errors (no wrapping) so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.

package matrix

import "errors"

// ValidateSquare checks that rows is a non-empty n×n table and returns n.
//
// Errors: ErrBadShape if rows is empty, ErrNonSquare if any row length
// differs from len(rows).
// Complexity: O(n).
func ValidateSquare(rows [][]Cost) (int, error) {
	n := len(rows)
	if n == 0 {
		return 0, ErrBadShape
	}
	var i int
	for i = 0; i < n; i++ {
		if len(rows[i]) != n {
			return 0, ErrNonSquare
		}
	}

	return n, nil
}

// ValidateMatrix checks that m is non-nil and square, that its diagonal is
// blocked and that no open cell carries a negative weight. It returns the
// matrix order.
//
// Complexity: O(n²).
func ValidateMatrix(m Matrix) (int, error) {
	if m == nil {
		return 0, ErrNilMatrix
	}
	n := m.Rows()
	if n != m.Cols() {
		return 0, ErrNonSquare
	}
	if n <= 0 {
		// A typed nil *Costs has no rows either.
		if _, err := m.At(0, 0); errors.Is(err, ErrNilMatrix) {
			return 0, ErrNilMatrix
		}
		return 0, ErrBadShape
	}
	var (
		i, j int
		c    Cost
		err  error
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if c, err = m.At(i, j); err != nil {
				return 0, err
			}
			if i == j {
				if !c.IsBlocked() {
					return 0, ErrDiagonal
				}
				continue
			}
			if err = validateCost(c); err != nil {
				return 0, err
			}
		}
	}

	return n, nil
}

// validateCost rejects open negative weights.
func validateCost(c Cost) error {
	if w, ok := c.Value(); ok && w < 0 {
		return ErrNegativeCost
	}

	return nil
}
