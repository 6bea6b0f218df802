package quadrature_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsas/quadrature"
)

func TestGauss76_Shape(t *testing.T) {
	require.Equal(t, 76, quadrature.Gauss76.Len())

	var sum float64
	for i := 0; i < quadrature.Gauss76.Len(); i++ {
		z := quadrature.Gauss76.Abscissa(i)
		assert.Greater(t, z, -1.0)
		assert.Less(t, z, 1.0)
		assert.Greater(t, quadrature.Gauss76.Weight(i), 0.0)
		sum += quadrature.Gauss76.Weight(i)
	}
	assert.InDelta(t, 2.0, sum, 1e-12)
}

func TestIntegrate_PolynomialsExact(t *testing.T) {
	g, err := quadrature.NewGaussLegendre(5)
	require.NoError(t, err)

	// a 5-point rule is exact up to degree 9
	got := g.Integrate(0, 2, func(x float64) float64 { return math.Pow(x, 9) })
	assert.InDelta(t, math.Pow(2, 10)/10, got, 1e-10)

	got = g.Integrate(-1, 3, func(x float64) float64 { return 3*x*x - 2*x + 1 })
	assert.InDelta(t, 24.0, got, 1e-12)
}

func TestIntegrate_Smooth(t *testing.T) {
	got := quadrature.Gauss76.Integrate(0, math.Pi/2, math.Sin)
	assert.InDelta(t, 1.0, got, 1e-13)
}

func TestNewGaussLegendre_InvalidOrder(t *testing.T) {
	_, err := quadrature.NewGaussLegendre(0)
	assert.ErrorIs(t, err, quadrature.ErrInvalidOrder)
	assert.Panics(t, func() { quadrature.MustGaussLegendre(-1) })
}
