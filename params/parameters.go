// SPDX-License-Identifier: MIT

package params

// Parameters is a decoded, indexable parameter block.
// It is produced by Decode and read-only afterwards; it lives for one call.
type Parameters struct {
	entries []Entry
}

// Len returns the number of real parameters (the End sentinel excluded).
func (p *Parameters) Len() int {
	if p == nil {
		return 0
	}

	return len(p.entries)
}

// entry returns entry i or ErrIndexOutOfRange.
func (p *Parameters) entry(tag string, i int) (Entry, error) {
	if p == nil {
		return Entry{}, paramsErrorf(tag, ErrNilParameters)
	}
	if i < 0 || i >= len(p.entries) {
		return Entry{}, entryErrorf(tag, i, ErrIndexOutOfRange)
	}

	return p.entries[i], nil
}

// Kind returns the shape of entry i.
func (p *Parameters) Kind(i int) (Kind, error) {
	e, err := p.entry("Kind", i)
	if err != nil {
		return 0, err
	}

	return e.kind, nil
}

// Scalar returns entry i as a scalar. A Distribution entry is an
// ErrKindMismatch, never coerced.
func (p *Parameters) Scalar(i int) (float64, error) {
	e, err := p.entry("Scalar", i)
	if err != nil {
		return 0, err
	}
	if e.kind != KindScalar {
		return 0, entryErrorf("Scalar", i, ErrKindMismatch)
	}

	return e.scalar, nil
}

// Distribution returns entry i as a distribution. A Scalar entry is an
// ErrKindMismatch, never coerced.
func (p *Parameters) Distribution(i int) (Distribution, error) {
	e, err := p.entry("Distribution", i)
	if err != nil {
		return Distribution{}, err
	}
	if e.kind != KindDistribution {
		return Distribution{}, entryErrorf("Distribution", i, ErrKindMismatch)
	}

	return e.dist, nil
}

// Dispersion returns entry i as a distribution, viewing a Scalar entry as the
// one-point distribution {value: 1}. Kernels use it for parameters an instance
// may switch between monodisperse and polydisperse.
func (p *Parameters) Dispersion(i int) (Distribution, error) {
	e, err := p.entry("Dispersion", i)
	if err != nil {
		return Distribution{}, err
	}
	if e.kind == KindScalar {
		return Monodisperse(e.scalar), nil
	}

	return e.dist, nil
}

// Entry returns entry i.
func (p *Parameters) Entry(i int) (Entry, error) {
	return p.entry("Entry", i)
}
