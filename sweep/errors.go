// SPDX-License-Identifier: MIT

package sweep

import "errors"

var (
	// ErrInvalidRange indicates a grid range that yields no points.
	ErrInvalidRange = errors.New("sweep: invalid range")

	// ErrInvalidParams indicates missing or malformed run parameters.
	ErrInvalidParams = errors.New("sweep: invalid parameters")

	// ErrUnknownPolicy indicates an unrecognised on-error policy name.
	ErrUnknownPolicy = errors.New("sweep: unknown on-error policy")
)
