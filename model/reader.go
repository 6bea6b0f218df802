// SPDX-License-Identifier: MIT

package model

import "github.com/katalvlaran/lvsas/params"

// reader pulls kernel arguments out of decoded parameters. The first error
// sticks; later reads return zero values.
type reader struct {
	p   *params.Parameters
	err error
}

// scalar reads a parameter that is always a scalar for this kernel.
func (r *reader) scalar(i int) float64 {
	if r.err != nil {
		return 0
	}
	v, err := r.p.Scalar(i)
	r.err = err

	return v
}

// dispersion reads a parameter the kernel averages over; a scalar entry is a
// one-point distribution.
func (r *reader) dispersion(i int) params.Distribution {
	if r.err != nil {
		return params.Distribution{}
	}
	d, err := r.p.Dispersion(i)
	r.err = err

	return d
}
