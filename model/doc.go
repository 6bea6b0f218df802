// SPDX-License-Identifier: MIT

// Package model is the calculation surface a host program drives: a registry
// of built-in scattering models, per-instance configuration, and the
// calculation entry points.
//
// Lifecycle:
//
//	p, _ := model.Lookup("sphere")     // plugin; p.Info() is the shared descriptor
//	in, _ := p.Create(opts...)         // instance with its own overrides
//	block, _ := in.Encode(values)      // or a block produced by any host
//	err := in.CalculateQ(block, iq, q) // iq[i] = I(q[i])
//	in.Destroy()
//
// Every entry point decodes the parameter block against the instance's
// effective descriptor. On any failure (malformed block, shape mismatch, length
// mismatch, destroyed instance) the output buffer is filled with NaN and the
// error is returned; the host never reads stale or partial values.
//
// Built-in models:
//
//	sphere   - scale, radius (polydisperse), sldSph, sldSolv, background.
//	cylinder - scale, sld, solvent_sld, radius and length (polydisperse),
//	           theta and phi (orientation; dispersable on request), background.
//
// Concurrency:
//
//	Descriptors are built once under sync.Once and never mutated. Instances hold
//	no per-call state, so one instance may serve concurrent calls.
//
// Logging:
//
//	The package is silent by default. SetLogger installs a *zap.Logger;
//	failures are logged at Debug with model and operation fields.
package model
