// SPDX-License-Identifier: MIT

// Package detector provides Image, a row-major grid of intensities sampled on
// a rectangular (qx, qy) detector.
//
// Rows follow the qy axis and columns the qx axis, so pixel (row, col) holds
// I(qx[col], qy[row]). Storage is one flat slice of rows·cols values.
package detector
