// SPDX-License-Identifier: MIT

// Package quadrature provides fixed Gauss-Legendre rules for orientation
// averages.
//
// A Table holds n abscissae z_i on [-1, 1] and their weights w_i. Integrating a
// smooth f over [a, b] is
//
//	∫ f ≈ (b-a)/2 · Σ w_i · f((b-a)/2 · z_i + (b+a)/2)
//
// Gauss76 is the 76-point rule used by the cylinder orientation average; it is
// built once at package initialisation and is read-only thereafter, so it can be
// shared by any number of goroutines.
//
// Nodes and weights come from gonum's integrate/quad Legendre rule.
package quadrature
