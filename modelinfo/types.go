// SPDX-License-Identifier: MIT

// Package modelinfo: parameter flags and the per-parameter descriptor.
// Flag values are part of the host protocol and must not be renumbered.
package modelinfo

import "strings"

// APIVersion is the descriptor layout version reported by every model.
// Hosts must refuse descriptors with a different version.
const APIVersion = 1

// Flag is a capability bit set attached to a parameter.
type Flag uint32

// Parameter capability flags.
const (
	// FlagNone marks a plain fittable scalar.
	FlagNone Flag = 0x00

	// FlagOrientation marks an angle used only by oriented (2D/3D) evaluation.
	FlagOrientation Flag = 0x01

	// FlagMagnetic marks a magnetic scattering parameter.
	FlagMagnetic Flag = 0x02

	// FlagUnfittable marks a parameter a fitter must leave alone.
	FlagUnfittable Flag = 0x04

	// FlagInteger marks a parameter restricted to integer values.
	FlagInteger Flag = 0x08

	// FlagPolydisperse marks a parameter supplied as a weighted distribution.
	FlagPolydisperse Flag = 0x10

	// FlagRepeatCount marks a multiplicity parameter; it is always unfittable.
	FlagRepeatCount Flag = 0x20 | FlagUnfittable

	// FlagRepeated marks a parameter repeated RepeatCount times.
	FlagRepeated Flag = 0x40
)

// Has reports whether every bit of g is set in f.
func (f Flag) Has(g Flag) bool {
	return f&g == g
}

// String renders the set bits, e.g. "orientation|polydisperse".
func (f Flag) String() string {
	if f == FlagNone {
		return "none"
	}
	var parts []string
	// RepeatCount includes Unfittable, test it first and strip both bits.
	if f.Has(FlagRepeatCount) {
		parts = append(parts, "repeat-count")
		f &^= FlagRepeatCount
	}
	named := []struct {
		flag Flag
		name string
	}{
		{FlagOrientation, "orientation"},
		{FlagMagnetic, "magnetic"},
		{FlagUnfittable, "unfittable"},
		{FlagInteger, "integer"},
		{FlagPolydisperse, "polydisperse"},
		{FlagRepeated, "repeated"},
	}
	for _, n := range named {
		if f.Has(n.flag) {
			parts = append(parts, n.name)
		}
	}
	if len(parts) == 0 {
		return "none"
	}

	return strings.Join(parts, "|")
}

// ParameterInfo describes one model parameter.
//
// Min and Max are the declared bounds (±Inf when unbounded). Flags decide the
// entry shape on the wire: FlagPolydisperse ⇒ distribution, otherwise scalar.
type ParameterInfo struct {
	Name        string
	Description string // optional
	Unit        string
	Default     float64
	Min         float64
	Max         float64
	Flags       Flag
}

// IsPolydisperse reports whether the parameter is supplied as a distribution.
func (p ParameterInfo) IsPolydisperse() bool {
	return p.Flags.Has(FlagPolydisperse)
}

// HasMin reports whether the lower bound is finite.
func (p ParameterInfo) HasMin() bool { return !isInf(p.Min, -1) }

// HasMax reports whether the upper bound is finite.
func (p ParameterInfo) HasMax() bool { return !isInf(p.Max, 1) }

// Clamp limits v to [Min, Max].
func (p ParameterInfo) Clamp(v float64) float64 {
	if v < p.Min {
		return p.Min
	}
	if v > p.Max {
		return p.Max
	}

	return v
}
