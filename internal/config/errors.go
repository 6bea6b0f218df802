// SPDX-License-Identifier: MIT
// Package config: sentinel error set.
package config

import "errors"

var (
	// ErrMissingModel indicates a job without a model name.
	ErrMissingModel = errors.New("config: model is required")

	// ErrNothingToCompute indicates a job with neither a q nor a detector block.
	ErrNothingToCompute = errors.New("config: job needs a q or detector block")

	// ErrInvalidQ indicates an inconsistent q block.
	ErrInvalidQ = errors.New("config: invalid q block")

	// ErrDuplicateBlock indicates two parameter or override blocks with one label.
	ErrDuplicateBlock = errors.New("config: duplicate block")

	// ErrUnknownParameter indicates a block naming no model parameter.
	ErrUnknownParameter = errors.New("config: unknown parameter")

	// ErrConflictingValues indicates a parameter with both values and a dispersion.
	ErrConflictingValues = errors.New("config: values and dispersion are exclusive")

	// ErrEmptyParameter indicates a parameter block with no value at all.
	ErrEmptyParameter = errors.New("config: parameter block sets nothing")
)
