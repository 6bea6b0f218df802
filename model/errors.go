// SPDX-License-Identifier: MIT
// Package model: sentinel error set.
// Decode failures surface as the params sentinels, wrapped with the model name
// and entry point.
package model

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownModel is returned by Lookup for an unregistered name.
	ErrUnknownModel = errors.New("model: unknown model")

	// ErrDestroyed is returned by any call on a destroyed instance.
	ErrDestroyed = errors.New("model: instance destroyed")

	// ErrNotDispersable is returned when polydispersity is requested for a
	// parameter the kernel does not average over.
	ErrNotDispersable = errors.New("model: parameter cannot be polydisperse")

	// ErrLengthMismatch is returned when output and input buffers differ in length.
	ErrLengthMismatch = errors.New("model: buffer length mismatch")

	// ErrNilInstance is returned when a method is called on a nil *Instance.
	ErrNilInstance = errors.New("model: nil instance")
)

// modelErrorf wraps err with an operation tag.
func modelErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
