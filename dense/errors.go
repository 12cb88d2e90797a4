// SPDX-License-Identifier: MIT
// Package dense: sentinel error set.
// Algorithms return these sentinels (possibly wrapped with an operation tag)
// and tests match them via errors.Is. Nothing in this package panics on
// user-triggered conditions.

package dense

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "dense: ..." so it is easy to grep in logs.
// Operations wrap the sentinel with their tag ("dense.Inverse: dense:
// singular matrix"); callers still use errors.Is.

var (
	// ErrInvalidDimensions indicates that requested dimensions are non-positive.
	ErrInvalidDimensions = errors.New("dense: dimensions must be > 0")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("dense: index out of range")

	// ErrDimensionMismatch indicates incompatible operand shapes, or a backing
	// slice whose length does not match the requested shape.
	ErrDimensionMismatch = errors.New("dense: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required.
	ErrNonSquare = errors.New("dense: matrix is not square")

	// ErrSingular is returned when no usable pivot exists during LU.
	ErrSingular = errors.New("dense: singular matrix")
)

// Operation tags used in wrapped errors.
const (
	opNew       = "dense.New"
	opFrom      = "dense.FromColumnMajor"
	opMul       = "dense.Mul"
	opAdd       = "dense.Add"
	opLU        = "dense.LU"
	opInverse   = "dense.Inverse"
	opDet       = "dense.Det"
	opTranspose = "dense.Transpose"
)

// denseErrorf wraps err with an operation tag.
func denseErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
