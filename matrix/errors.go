// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All kernels return these sentinels (possibly wrapped with an operation tag)
// and tests check them via errors.Is. No kernel panics on user input.

package matrix

import "errors"

// Every message is prefixed with "matrix: ..." so it can be grepped in logs.
// Context is attached with matrixErrorf / denseErrorf; callers still match
// with errors.Is.
var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. a non-square system matrix or a right-hand side of the wrong length.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (or nil vector) was passed.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrSingular is returned when no non-zero pivot exists in a column
	// during LU factorization.
	ErrSingular = errors.New("matrix: singular matrix")
)
