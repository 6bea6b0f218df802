// SPDX-License-Identifier: MIT
// Package modelinfo: sentinel error set.
// Every message is prefixed with "modelinfo: ..." so it can be grepped in logs.
// Callers match with errors.Is; context is added with modelinfoErrorf.

package modelinfo

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyName is returned when a model or parameter has no name.
	ErrEmptyName = errors.New("modelinfo: empty name")

	// ErrDuplicateName is returned when two parameters share a name.
	ErrDuplicateName = errors.New("modelinfo: duplicate parameter name")

	// ErrNoParameters is returned when a model declares no parameters.
	ErrNoParameters = errors.New("modelinfo: model has no parameters")

	// ErrInvalidDefault is returned when a default value is NaN or ±Inf.
	ErrInvalidDefault = errors.New("modelinfo: default must be finite")

	// ErrInvalidBounds is returned when Min > Max or either bound is NaN.
	ErrInvalidBounds = errors.New("modelinfo: invalid bounds")

	// ErrUnknownParameter is returned when a name does not match any parameter.
	ErrUnknownParameter = errors.New("modelinfo: unknown parameter")

	// ErrOutOfRange is returned by positional accessors for a bad index.
	ErrOutOfRange = errors.New("modelinfo: parameter index out of range")

	// ErrNilInfo is returned when a nil *ModelInfo is passed where one is required.
	ErrNilInfo = errors.New("modelinfo: nil model info")
)

// modelinfoErrorf wraps err with an operation tag.
func modelinfoErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
