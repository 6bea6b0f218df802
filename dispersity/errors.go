// SPDX-License-Identifier: MIT
// Package dispersity: sentinel error set.
package dispersity

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyDistribution is returned when a mesh is built from a distribution with no points.
	ErrEmptyDistribution = errors.New("dispersity: distribution has no points")

	// ErrTooManyPoints is returned when a mesh would exceed MaxMeshPoints.
	ErrTooManyPoints = errors.New("dispersity: mesh too large")

	// ErrUnknownDispersion is returned for an unrecognized dispersion type.
	ErrUnknownDispersion = errors.New("dispersity: unknown dispersion type")

	// ErrInvalidWidth is returned for a negative, NaN or infinite width.
	ErrInvalidWidth = errors.New("dispersity: invalid width")

	// ErrInvalidPoints is returned for a non-positive point count or sigma range.
	ErrInvalidPoints = errors.New("dispersity: invalid point count")

	// ErrNoPointsInBounds is returned when every generated point falls outside the bounds.
	ErrNoPointsInBounds = errors.New("dispersity: no points within bounds")
)

// dispersityErrorf wraps err with an operation tag.
func dispersityErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
