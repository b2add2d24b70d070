// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Functions return these sentinels (optionally wrapped with %w for
// row/column context) and tests check them via errors.Is.

package matrix

import "errors"

var (
	// ErrBadShape is returned when a requested or decoded shape is invalid
	// (e.g., n<=0, empty input, ragged rows).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNegativeCost signals an off-diagonal weight below zero.
	ErrNegativeCost = errors.New("matrix: negative cost")

	// ErrDiagonal signals an attempt to open a diagonal cell; a node never
	// transitions to itself.
	ErrDiagonal = errors.New("matrix: diagonal cells are always blocked")

	// ErrNilMatrix indicates that a nil *Costs (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrSyntax is returned by decoders for tokens that are neither an integer
	// nor a blocked marker.
	ErrSyntax = errors.New("matrix: invalid cost token")

	// ErrUnknownFormat is returned when no codec matches a format name or path.
	ErrUnknownFormat = errors.New("matrix: unknown format")
)
