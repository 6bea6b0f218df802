// SPDX-License-Identifier: MIT

// Package config loads calculation jobs from HCL files.
//
// A job names a model, the q values (or detector grid) to evaluate, parameter
// values with optional dispersion, and per-instance overrides:
//
//	model = "cylinder"
//
//	q {
//	  values = logspace(0.001, 0.5, 100)   # or: min, max, points, spacing = "log"
//	}
//
//	detector {
//	  qx = linspace(-0.1, 0.1, 64)
//	  qy = linspace(-0.1, 0.1, 64)
//	}
//
//	parameter "radius" {
//	  value = 20
//	  dispersion {
//	    type  = "gaussian"
//	    width = 0.1
//	  }
//	}
//
//	parameter "theta" {
//	  values  = [30, 60, 90]
//	  weights = [1, 2, 1]
//	}
//
//	override "theta" {
//	  polydisperse = true
//	}
//
// Expressions may use the variable pi and the functions linspace(start, stop, n)
// and logspace(start, stop, n); logspace takes the end points themselves, not
// their exponents.
package config
