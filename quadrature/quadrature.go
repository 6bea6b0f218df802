// SPDX-License-Identifier: MIT

package quadrature

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/integrate/quad"
)

// ErrInvalidOrder is returned by NewGaussLegendre for n < 1.
var ErrInvalidOrder = errors.New("quadrature: order must be >= 1")

// Gauss76 is the shared 76-point Gauss-Legendre table.
var Gauss76 = MustGaussLegendre(76)

// Table is an immutable set of Gauss-Legendre nodes on [-1, 1].
type Table struct {
	z []float64
	w []float64
}

// NewGaussLegendre returns the n-point Gauss-Legendre rule on [-1, 1].
func NewGaussLegendre(n int) (*Table, error) {
	if n < 1 {
		return nil, fmt.Errorf("NewGaussLegendre(%d): %w", n, ErrInvalidOrder)
	}
	t := &Table{z: make([]float64, n), w: make([]float64, n)}
	quad.Legendre{}.FixedLocations(t.z, t.w, -1, 1)

	return t, nil
}

// MustGaussLegendre is NewGaussLegendre that panics on error.
func MustGaussLegendre(n int) *Table {
	t, err := NewGaussLegendre(n)
	if err != nil {
		panic(err)
	}

	return t
}

// Len returns the number of nodes.
func (t *Table) Len() int { return len(t.z) }

// Abscissa returns node i on [-1, 1]. It panics if i is out of range.
func (t *Table) Abscissa(i int) float64 { return t.z[i] }

// Weight returns the weight of node i. It panics if i is out of range.
func (t *Table) Weight(i int) float64 { return t.w[i] }

// Integrate approximates ∫_lo^hi f(x) dx.
// Complexity: O(Len()) evaluations of f.
func (t *Table) Integrate(lo, hi float64, f func(x float64) float64) float64 {
	half := 0.5 * (hi - lo)
	mid := 0.5 * (hi + lo)
	var sum float64
	for i, z := range t.z {
		sum += t.w[i] * f(half*z+mid)
	}

	return half * sum
}
