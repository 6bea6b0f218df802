// SPDX-License-Identifier: MIT

// Package modelinfo describes scattering models: their identity and the ordered
// list of parameters every calculation call must supply.
//
// What & Why:
//
//	A ModelInfo is the static contract between a host and a model. Its parameter
//	order fixes the positional mapping of entries in a parameter block (see package
//	params), and each parameter's flags decide whether the entry at that position
//	must be a scalar or a weighted distribution.
//
// Descriptors are immutable after construction. Per-instance changes (effective
// bounds, enabling or disabling polydispersity) are expressed as an Override and
// layered on top of the shared descriptor with Layer, which always returns a new
// value:
//
//	base := sphereInfo()                     // shared, never mutated
//	ov := modelinfo.NewOverride().Bounds("radius", 0, 500)
//	eff, err := modelinfo.Layer(base, ov)     // per-instance view
//
// Complexity:
//
//	Count, Parameter and IsPolydisperse run in O(1); Index and Names are O(P).
package modelinfo
