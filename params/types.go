// SPDX-License-Identifier: MIT

// Package params: wire tags and decoded entry types.
package params

import "iter"

// Tag identifies an entry on the wire. Values are fixed by the host protocol.
type Tag uint64

// Wire tags.
const (
	TagEnd          Tag = 0xAAAAAAA0
	TagScalar       Tag = 0xAAAAAAA1
	TagDistribution Tag = 0xAAAAAAA2
)

// wordSize is the width of every count, offset, tag and float on the wire.
const wordSize = 8

// Kind is the decoded shape of an entry.
type Kind int

const (
	// KindScalar is a single value.
	KindScalar Kind = iota

	// KindDistribution is an ordered list of (value, weight) points.
	KindDistribution
)

// String returns "scalar" or "distribution".
func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindDistribution:
		return "distribution"
	default:
		return "unknown"
	}
}

// Sample is one (value, weight) point of a Distribution.
type Sample struct {
	Value  float64
	Weight float64
}

// Distribution is a read-only view of weighted points: two equal-length
// spans, values and weights. Weights are neither normalized nor required to be
// non-negative; consumers normalize.
type Distribution struct {
	values  []float64
	weights []float64
}

// NewDistribution builds a distribution over copies of values and weights.
// A nil weights slice means uniform weights 1/n.
func NewDistribution(values, weights []float64) (Distribution, error) {
	if len(values) == 0 {
		return Distribution{}, paramsErrorf("NewDistribution", ErrEmptyDistribution)
	}
	if weights == nil {
		weights = Uniform(values)
	}
	if len(values) != len(weights) {
		return Distribution{}, paramsErrorf("NewDistribution", ErrLengthMismatch)
	}
	v := make([]float64, len(values))
	w := make([]float64, len(weights))
	copy(v, values)
	copy(w, weights)

	return Distribution{values: v, weights: w}, nil
}

// Monodisperse returns the one-point distribution {value: 1}.
func Monodisperse(value float64) Distribution {
	return Distribution{values: []float64{value}, weights: []float64{1}}
}

// Uniform returns weights 1/n for n values.
func Uniform(values []float64) []float64 {
	w := make([]float64, len(values))
	if len(values) == 0 {
		return w
	}
	u := 1.0 / float64(len(values))
	for i := range w {
		w[i] = u
	}

	return w
}

// Len returns the number of points.
func (d Distribution) Len() int { return len(d.values) }

// At returns point i or ErrIndexOutOfRange.
func (d Distribution) At(i int) (Sample, error) {
	if i < 0 || i >= len(d.values) {
		return Sample{}, entryErrorf("Distribution.At", i, ErrIndexOutOfRange)
	}

	return Sample{Value: d.values[i], Weight: d.weights[i]}, nil
}

// All iterates the points in order.
func (d Distribution) All() iter.Seq2[int, Sample] {
	return func(yield func(int, Sample) bool) {
		for i := range d.values {
			if !yield(i, Sample{Value: d.values[i], Weight: d.weights[i]}) {
				return
			}
		}
	}
}

// Values returns a copy of the values span.
func (d Distribution) Values() []float64 {
	out := make([]float64, len(d.values))
	copy(out, d.values)

	return out
}

// Weights returns a copy of the weights span.
func (d Distribution) Weights() []float64 {
	out := make([]float64, len(d.weights))
	copy(out, d.weights)

	return out
}

// Entry is a decoded parameter: a Scalar or a Distribution.
type Entry struct {
	kind   Kind
	scalar float64
	dist   Distribution
}

// Kind returns the entry shape.
func (e Entry) Kind() Kind { return e.kind }

// Scalar returns the scalar value; ok is false for a Distribution entry.
func (e Entry) Scalar() (v float64, ok bool) {
	return e.scalar, e.kind == KindScalar
}

// Distribution returns the distribution; ok is false for a Scalar entry.
func (e Entry) Distribution() (d Distribution, ok bool) {
	return e.dist, e.kind == KindDistribution
}
