// SPDX-License-Identifier: MIT
// Package: builder
//
// errors.go - sentinel errors for the builder package.
//
// Callers branch with errors.Is; constructors attach their name with %w.

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewNodes indicates a size parameter below the constructor minimum.
var ErrTooFewNodes = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrUnknownKind is returned by Build for an unsupported instance kind.
var ErrUnknownKind = errors.New("builder: unknown instance kind")

// builderErrorf prefixes err with the constructor name, keeping err for
// errors.Is.
func builderErrorf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
