// SPDX-License-Identifier: MIT

// Package dispersity turns per-particle kernels into population averages over
// weighted parameter distributions (polydispersity).
//
// 🚀 What is it?
//
//	A polydisperse sample is a mixture of particles whose sizes (or angles)
//	follow a distribution. The measured intensity is the volume-weighted mean of
//	each particle's intensity:
//
//	  sum  += w · I(x) · V(x)
//	  vol  += w · V(x)
//	  norm += w
//
//	  I = sum / (vol/norm) / norm      (each division skipped when its divisor is 0)
//
//	Scalar summaries such as the effective radius use the plain weighted mean
//	Σw·x / Σw, falling back to the raw Σw·x when all weights are zero.
//
// ✨ Key features:
//   - Accumulator: the three running sums and their guarded renormalization.
//   - Mesh: cartesian product of several distributions (weights multiply), so a
//     kernel with two dispersed sizes is averaged the same way as one with one.
//   - Dispersion: generates (value, weight) points for gaussian, rectangle,
//     lognormal and schulz shapes around a center value.
//
// Determinism:
//
//	Points are visited in distribution order; the inner accumulation is strictly
//	sequential, so results are bit-for-bit reproducible.
//
// A distribution of one point with a non-zero weight reduces exactly to the
// direct kernel value. Zero weights are legal: they add nothing to sum and vol
// but still count toward norm.
package dispersity
