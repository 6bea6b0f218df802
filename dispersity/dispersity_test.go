package dispersity_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsas/dispersity"
	"github.com/katalvlaran/lvsas/params"
)

func dist(t *testing.T, values, weights []float64) params.Distribution {
	t.Helper()
	d, err := params.NewDistribution(values, weights)
	require.NoError(t, err)

	return d
}

func identity(x float64) float64 { return x }
func unit(float64) float64       { return 1 }

func TestAverage_SinglePointIsExact(t *testing.T) {
	kernel := func(x float64) float64 { return math.Sin(x) / 3 }
	got := dispersity.Average(params.Monodisperse(0.7), kernel, func(x float64) float64 { return x * x * x })
	assert.Equal(t, kernel(0.7), got)

	// weight other than one still reduces to the kernel value
	got = dispersity.Average(dist(t, []float64{0.7}, []float64{4}), kernel, unit)
	assert.Equal(t, kernel(0.7), got)
}

func TestAverage_TwoEqualWeights(t *testing.T) {
	d := dist(t, []float64{2, 6}, []float64{1, 1})
	got := dispersity.Average(d, identity, unit)
	assert.InDelta(t, 4.0, got, 1e-15)
}

func TestAverage_VolumeWeighting(t *testing.T) {
	// Σ w·I·V / Σ w·V = (1·2·1 + 1·6·3) / (1+3) = 5
	d := dist(t, []float64{1, 3}, []float64{1, 1})
	got := dispersity.Average(d, func(x float64) float64 { return 2 * x }, identity)
	assert.InDelta(t, 5.0, got, 1e-15)
}

func TestAverage_ScaleInvariantInWeights(t *testing.T) {
	a := dist(t, []float64{10, 20, 30}, []float64{0.2, 0.5, 0.3})
	b := dist(t, []float64{10, 20, 30}, []float64{2, 5, 3})
	k := func(x float64) float64 { return 1 / x }
	v := func(x float64) float64 { return x * x * x }
	assert.InDelta(t, dispersity.Average(a, k, v), dispersity.Average(b, k, v), 1e-12)
}

func TestAverage_AllZeroWeights(t *testing.T) {
	d := dist(t, []float64{1, 2}, []float64{0, 0})
	assert.Equal(t, 0.0, dispersity.Average(d, identity, unit))

	one := dist(t, []float64{5}, []float64{0})
	assert.Equal(t, 0.0, dispersity.Average(one, identity, unit))
}

func TestAverage_ZeroVolumeSkipsRenormalization(t *testing.T) {
	// vol = 0 means sum is only divided by norm: 0/2 = 0
	d := dist(t, []float64{1, 2}, []float64{1, 1})
	got := dispersity.Average(d, identity, func(float64) float64 { return 0 })
	assert.Equal(t, 0.0, got)
}

func TestMean(t *testing.T) {
	m, degenerate := dispersity.Mean(dist(t, []float64{10, 20, 30}, []float64{0.2, 0.5, 0.3}))
	assert.False(t, degenerate)
	assert.InDelta(t, 21.0, m, 1e-12)

	raw, degenerate := dispersity.Mean(dist(t, []float64{10, 20}, []float64{0, 0}))
	assert.True(t, degenerate)
	assert.Equal(t, 0.0, raw)
}

func TestAccumulator_Reset(t *testing.T) {
	var acc dispersity.Accumulator
	acc.Add(1, 3, 1)
	assert.Equal(t, 3.0, acc.Result())
	assert.False(t, acc.Degenerate())

	acc.Reset()
	assert.True(t, acc.Degenerate())
	assert.Equal(t, 0.0, acc.Result())
	acc.Add(2, 5, 1)
	assert.Equal(t, 5.0, acc.Result())
	assert.Equal(t, 2.0, acc.Norm())
}

func TestMesh_ProductAndWeights(t *testing.T) {
	r := dist(t, []float64{1, 2}, []float64{1, 3})
	l := dist(t, []float64{10, 20, 30}, []float64{1, 1, 2})
	m, err := dispersity.NewMesh(r, l)
	require.NoError(t, err)
	assert.Equal(t, 6, m.Len())
	assert.Equal(t, 2, m.Dims())

	// Σ w = (1+3)(1+1+2) = 16, Σ w·r·l = (1·1 + 3·2)·(10+20+60) = 630
	mean, degenerate := m.Mean(func(x []float64) float64 { return x[0] * x[1] })
	assert.False(t, degenerate)
	assert.InDelta(t, 630.0/16.0, mean, 1e-12)
}

func TestMesh_SinglePointFastPath(t *testing.T) {
	m, err := dispersity.NewMesh(params.Monodisperse(3), params.Monodisperse(4))
	require.NoError(t, err)
	kernel := func(x []float64) float64 { return x[0] / x[1] }
	assert.Equal(t, 0.75, m.Intensity(kernel, func([]float64) float64 { return 0 }))
}

func TestMesh_MatchesAverageInOneDimension(t *testing.T) {
	d := dist(t, []float64{10, 20, 30}, []float64{0.2, 0.5, 0.3})
	m, err := dispersity.NewMesh(d)
	require.NoError(t, err)
	k := func(x float64) float64 { return 1 / (x + 1) }
	v := func(x float64) float64 { return x * x }
	want := dispersity.Average(d, k, v)
	got := m.Intensity(func(x []float64) float64 { return k(x[0]) }, func(x []float64) float64 { return v(x[0]) })
	assert.Equal(t, want, got)
}

func TestMesh_Errors(t *testing.T) {
	_, err := dispersity.NewMesh(params.Distribution{})
	assert.ErrorIs(t, err, dispersity.ErrEmptyDistribution)

	big := dist(t, make([]float64, 4096), nil)
	_, err = dispersity.NewMesh(big, big)
	assert.ErrorIs(t, err, dispersity.ErrTooManyPoints)
}

func TestMesh_NoDimensions(t *testing.T) {
	m, err := dispersity.NewMesh()
	require.NoError(t, err)
	assert.Equal(t, 1, m.Len())
	assert.Equal(t, 7.0, m.Intensity(func([]float64) float64 { return 7 }, func([]float64) float64 { return 1 }))
}
