// SPDX-License-Identifier: MIT

package dispersity

import "github.com/katalvlaran/lvsas/params"

// MaxMeshPoints caps the cartesian product size of a Mesh.
const MaxMeshPoints = 1 << 22

// Mesh is the cartesian product of one or more distributions. Point k carries
// one value per dimension and the product of the per-dimension weights.
// The first distribution varies slowest.
type Mesh struct {
	dims    int
	values  []float64 // row-major, len = points·dims
	weights []float64
}

// NewMesh builds the product of dists.
//
// Implementation:
//   - Stage 1: Validate every distribution is non-empty and the product fits MaxMeshPoints.
//   - Stage 2: Expand dimension by dimension, multiplying weights.
//
// Complexity: O(P·D) time and memory for P points in D dimensions.
func NewMesh(dists ...params.Distribution) (*Mesh, error) {
	total := 1
	for _, d := range dists {
		if d.Len() == 0 {
			return nil, dispersityErrorf("NewMesh", ErrEmptyDistribution)
		}
		if total > MaxMeshPoints/d.Len() {
			return nil, dispersityErrorf("NewMesh", ErrTooManyPoints)
		}
		total *= d.Len()
	}

	m := &Mesh{
		dims:    len(dists),
		values:  make([]float64, 0, total*len(dists)),
		weights: make([]float64, 0, total),
	}
	if len(dists) == 0 {
		m.weights = append(m.weights, 1)

		return m, nil
	}

	point := make([]float64, len(dists))
	var expand func(dim int, w float64)
	expand = func(dim int, w float64) {
		if dim == len(dists) {
			m.values = append(m.values, point...)
			m.weights = append(m.weights, w)

			return
		}
		for _, s := range dists[dim].All() {
			point[dim] = s.Value
			expand(dim+1, w*s.Weight)
		}
	}
	expand(0, 1)

	return m, nil
}

// Len returns the number of mesh points.
func (m *Mesh) Len() int { return len(m.weights) }

// Dims returns the number of dispersed dimensions.
func (m *Mesh) Dims() int { return m.dims }

// point returns a view of point k's values; callers must not retain it.
func (m *Mesh) point(k int) []float64 {
	return m.values[k*m.dims : (k+1)*m.dims]
}

// Intensity returns the volume-weighted average of kernel over the mesh.
// kernel and volume receive one value per dimension, in NewMesh order.
// A single point with non-zero weight returns kernel(point) exactly.
func (m *Mesh) Intensity(kernel, volume func(x []float64) float64) float64 {
	if len(m.weights) == 1 && m.weights[0] != 0 {
		return kernel(m.point(0))
	}
	var acc Accumulator
	for k, w := range m.weights {
		x := m.point(k)
		acc.Add(w, kernel(x), volume(x))
	}

	return acc.Result()
}

// Mean returns Σw·f(x) / Σw over the mesh. When Σw is zero it returns the raw
// Σw·f(x) with degenerate=true.
func (m *Mesh) Mean(f func(x []float64) float64) (mean float64, degenerate bool) {
	var sum, norm float64
	for k, w := range m.weights {
		sum += w * f(m.point(k))
		norm += w
	}
	if norm == 0 {
		return sum, true
	}

	return sum / norm, false
}
