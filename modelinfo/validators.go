// SPDX-License-Identifier: MIT
// Package: modelinfo
//
// Purpose:
//   - Single place for descriptor sanity checks shared by New and Layer.
//   - Return plain sentinels wrapped with the parameter name.

package modelinfo

import "math"

// validateParameter checks one descriptor: non-empty name, finite default,
// non-NaN bounds with Min ≤ Max.
// Complexity: O(1).
func validateParameter(p ParameterInfo) error {
	if p.Name == "" {
		return ErrEmptyName
	}
	if math.IsNaN(p.Default) || math.IsInf(p.Default, 0) {
		return modelinfoErrorf(p.Name, ErrInvalidDefault)
	}

	return validateBounds(p.Name, p.Min, p.Max)
}

// validateBounds rejects NaN bounds and inverted ranges.
func validateBounds(name string, lo, hi float64) error {
	if math.IsNaN(lo) || math.IsNaN(hi) || lo > hi {
		return modelinfoErrorf(name, ErrInvalidBounds)
	}

	return nil
}

// isInf reports whether x is an infinity of the given sign.
func isInf(x float64, sign int) bool {
	return math.IsInf(x, sign)
}
