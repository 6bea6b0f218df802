// SPDX-License-Identifier: MIT

package model

import "github.com/katalvlaran/lvsas/modelinfo"

// Option configures an Instance at Create time. Options never panic; the
// values they carry are validated by Create.
type Option func(*options)

type options struct {
	override *modelinfo.Override
}

// WithBounds sets the effective [lo, hi] of a parameter for this instance.
func WithBounds(name string, lo, hi float64) Option {
	return func(o *options) {
		o.override.Bounds(name, lo, hi)
	}
}

// WithPolydisperse makes a parameter take a distribution on the wire. Only
// parameters the kernel averages over may be enabled.
func WithPolydisperse(name string) Option {
	return func(o *options) {
		o.override.Polydisperse(name, true)
	}
}

// WithMonodisperse makes a polydisperse parameter take a scalar on the wire.
func WithMonodisperse(name string) Option {
	return func(o *options) {
		o.override.Polydisperse(name, false)
	}
}

// gatherOptions applies opts over an empty override.
func gatherOptions(opts ...Option) options {
	o := options{override: modelinfo.NewOverride()}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
