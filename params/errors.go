// SPDX-License-Identifier: MIT
// Package params: sentinel error set.
// Malformed-block and shape-mismatch sentinels are what calculation entry points
// turn into NaN outputs; callers match them with errors.Is.

package params

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyBlock is returned when the block is nil/short or its count is zero.
	ErrEmptyBlock = errors.New("params: empty parameter block")

	// ErrTruncated is returned when an offset, count or payload reaches past the block.
	ErrTruncated = errors.New("params: truncated parameter block")

	// ErrUnknownTag is returned when a parameter entry is neither Scalar nor Distribution.
	ErrUnknownTag = errors.New("params: unknown entry tag")

	// ErrMissingEnd is returned when the entry after the last parameter is not End.
	ErrMissingEnd = errors.New("params: missing end sentinel")

	// ErrCountMismatch is returned when the entry count differs from the model's parameter count.
	ErrCountMismatch = errors.New("params: parameter count mismatch")

	// ErrShapeMismatch is returned when an entry's shape disagrees with the
	// polydisperse capability declared for its position.
	ErrShapeMismatch = errors.New("params: entry shape does not match descriptor")

	// ErrIndexOutOfRange is returned by accessors for a bad parameter or point index.
	ErrIndexOutOfRange = errors.New("params: index out of range")

	// ErrKindMismatch is returned when an accessor's expected shape differs from the entry.
	ErrKindMismatch = errors.New("params: entry kind mismatch")

	// ErrLengthMismatch is returned when values and weights differ in length.
	ErrLengthMismatch = errors.New("params: values and weights length mismatch")

	// ErrEmptyDistribution is returned when a distribution is built, or decoded, with no points.
	ErrEmptyDistribution = errors.New("params: distribution has no points")

	// ErrUnknownParameter is returned by Encode for a name the model does not declare.
	ErrUnknownParameter = errors.New("params: unknown parameter name")

	// ErrNilParameters is returned when a nil *Parameters is used.
	ErrNilParameters = errors.New("params: nil parameters")
)

// paramsErrorf wraps err with an operation tag.
func paramsErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// entryErrorf wraps err with the entry position.
func entryErrorf(tag string, i int, err error) error {
	return fmt.Errorf("%s[%d]: %w", tag, i, err)
}
