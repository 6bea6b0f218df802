// SPDX-License-Identifier: MIT
// Package detector: sentinel error set.
package detector

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyAxis indicates an axis with no points.
	ErrEmptyAxis = errors.New("detector: axis must have at least one point")

	// ErrIndexOutOfBounds indicates a row or column outside the image.
	ErrIndexOutOfBounds = errors.New("detector: index out of bounds")

	// ErrLengthMismatch indicates a data slice whose length is not rows·cols.
	ErrLengthMismatch = errors.New("detector: data length does not match image size")
)

// imageErrorf wraps err with Image method context.
func imageErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Image.%s(%d,%d): %w", method, row, col, err)
}
