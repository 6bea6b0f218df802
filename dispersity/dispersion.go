// SPDX-License-Identifier: MIT

package dispersity

import (
	"math"
	"strings"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/lvsas/params"
)

// Shape names a dispersion weight function.
type Shape string

// Supported shapes.
const (
	Gaussian  Shape = "gaussian"
	Rectangle Shape = "rectangle"
	LogNormal Shape = "lognormal"
	Schulz    Shape = "schulz"
)

// Defaults for Dispersion fields left at zero.
const (
	DefaultPoints = 35
	DefaultSigmas = 3.0
)

// ParseShape maps a case-insensitive name to a Shape.
func ParseShape(name string) (Shape, error) {
	switch s := Shape(strings.ToLower(strings.TrimSpace(name))); s {
	case Gaussian, Rectangle, LogNormal, Schulz:
		return s, nil
	default:
		return "", dispersityErrorf("ParseShape "+name, ErrUnknownDispersion)
	}
}

// Dispersion describes how to spread a parameter around its center value.
//
// Width is relative to the center for size parameters (relative=true in
// Sample) and absolute, in the parameter's own unit, for angles.
// Points is the number of samples before bounds filtering; Sigmas is the
// half-range in units of the standard deviation. Rectangle ignores Sigmas and
// spans ±√3·σ, which is the half-width of a uniform law with deviation σ.
type Dispersion struct {
	Shape  Shape
	Width  float64
	Points int
	Sigmas float64
}

// Sample draws the dispersion around center and drops samples outside
// [lo, hi]. A zero width, or a single point, yields the monodisperse center.
//
// Implementation:
//   - Stage 1: Validate shape, width, point count; fill defaults.
//   - Stage 2: Lay out Points evenly over center ± n·σ.
//   - Stage 3: Filter by bounds (and x>0 for lognormal/schulz), then weight by
//     the shape's density.
//
// Complexity: O(Points).
func (d Dispersion) Sample(center, lo, hi float64, relative bool) (params.Distribution, error) {
	const tag = "Dispersion.Sample"
	switch d.Shape {
	case Gaussian, Rectangle, LogNormal, Schulz:
	case "":
		d.Shape = Gaussian
	default:
		return params.Distribution{}, dispersityErrorf(tag, ErrUnknownDispersion)
	}
	if d.Width < 0 || math.IsNaN(d.Width) || math.IsInf(d.Width, 0) {
		return params.Distribution{}, dispersityErrorf(tag, ErrInvalidWidth)
	}
	if d.Points == 0 {
		d.Points = DefaultPoints
	}
	if d.Sigmas == 0 {
		d.Sigmas = DefaultSigmas
	}
	if d.Points < 0 || d.Sigmas < 0 || math.IsNaN(d.Sigmas) {
		return params.Distribution{}, dispersityErrorf(tag, ErrInvalidPoints)
	}

	sigma := d.Width
	if relative {
		sigma = d.Width * math.Abs(center)
	}
	if sigma == 0 || d.Points == 1 {
		if center < lo || center > hi {
			return params.Distribution{}, dispersityErrorf(tag, ErrNoPointsInBounds)
		}

		return params.Monodisperse(center), nil
	}

	span := d.Sigmas * sigma
	if d.Shape == Rectangle {
		span = math.Sqrt(3) * sigma
	}
	positive := d.Shape == LogNormal || d.Shape == Schulz
	if positive && center <= 0 {
		return params.Distribution{}, dispersityErrorf(tag, ErrNoPointsInBounds)
	}

	density := d.density(center, sigma, span)
	values := make([]float64, 0, d.Points)
	weights := make([]float64, 0, d.Points)
	last := float64(d.Points - 1)
	for k := 0; k < d.Points; k++ {
		// endpoints and the midpoint land exactly on center±span and center
		x := center + span*(2*float64(k)/last-1)
		if x < lo || x > hi || (positive && x <= 0) {
			continue
		}
		values = append(values, x)
		weights = append(weights, density(x))
	}
	if len(values) == 0 {
		return params.Distribution{}, dispersityErrorf(tag, ErrNoPointsInBounds)
	}

	return params.NewDistribution(values, weights)
}

// density returns the probability density of d's shape with the given center
// and deviation. Weights are relative, so normalization constants cancel.
//
//   - Gaussian: normal law N(center, σ).
//   - Rectangle: uniform law over center ± span.
//   - LogNormal: ln(x) ~ N(ln center, σ/center).
//   - Schulz: gamma law with shape z+1 and rate (z+1)/center, z = (center/σ)² − 1.
func (d Dispersion) density(center, sigma, span float64) func(x float64) float64 {
	switch d.Shape {
	case Rectangle:
		return distuv.Uniform{Min: center - span, Max: center + span}.Prob
	case LogNormal:
		return distuv.LogNormal{Mu: math.Log(center), Sigma: sigma / center}.Prob
	case Schulz:
		z := (center/sigma)*(center/sigma) - 1

		return distuv.Gamma{Alpha: z + 1, Beta: (z + 1) / center}.Prob
	default:
		return distuv.Normal{Mu: center, Sigma: sigma}.Prob
	}
}
