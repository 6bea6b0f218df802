// SPDX-License-Identifier: MIT

package model

import (
	"math"

	"github.com/katalvlaran/lvsas/dispersity"
	"github.com/katalvlaran/lvsas/formfactor"
	"github.com/katalvlaran/lvsas/modelinfo"
	"github.com/katalvlaran/lvsas/params"
)

const sphereName = "sphere"

// Sphere parameter positions on the wire.
const (
	sphereScale = iota
	sphereRadius
	sphereSLD
	sphereSolventSLD
	sphereBackground
)

// newSphere assembles the sphere plugin. Only radius is averaged over.
func newSphere() *Plugin {
	return newPlugin(sphereName, describeSphere, sphereKernel{}, "radius")
}

// describeSphere builds the sphere descriptor in wire order. Plugin.Info runs
// it once; SLDs are in 1/A² and the radius is polydisperse by default.
func describeSphere() *modelinfo.ModelInfo {
	inf := math.Inf(1)

	return modelinfo.MustNew(sphereName, "P(q)= analytic sphere + bkg",
		modelinfo.ParameterInfo{Name: "scale", Description: "I", Default: 1, Min: 0, Max: inf},
		modelinfo.ParameterInfo{Name: "radius", Description: "radius of sphere", Unit: "A",
			Default: 20, Min: 0, Max: inf, Flags: modelinfo.FlagPolydisperse},
		modelinfo.ParameterInfo{Name: "sldSph", Description: "sphere SLD", Unit: "1/A^2",
			Default: 4e-6, Min: -10e-6, Max: 20e-6},
		modelinfo.ParameterInfo{Name: "sldSolv", Description: "solvent SLD", Unit: "1/A^2",
			Default: 4e-6, Min: -10e-6, Max: 20e-6},
		modelinfo.ParameterInfo{Name: "background", Description: "constant background", Unit: "1/cm",
			Default: 0, Min: 0, Max: inf},
	)
}

// sphereArgs are the decoded sphere parameters.
type sphereArgs struct {
	scale, delrho, background float64
	radius                    params.Distribution
}

// readSphere pulls the sphere arguments out of decoded parameters.
// Stage 1 (Read): scalars and the radius distribution; the first error sticks.
// Stage 2 (Derive): contrast Δρ = sldSph − sldSolv.
// Complexity: O(1); the radius distribution is shared, not copied.
func readSphere(p *params.Parameters) (sphereArgs, error) {
	r := reader{p: p}
	a := sphereArgs{
		scale:      r.scalar(sphereScale),
		radius:     r.dispersion(sphereRadius),
		delrho:     r.scalar(sphereSLD) - r.scalar(sphereSolventSLD),
		background: r.scalar(sphereBackground),
	}

	return a, r.err
}

// cube is the sphere volume proxy; the 4π/3 factor cancels in the average.
func cube(r float64) float64 { return r * r * r }

// intensity is scale·⟨SphereForm⟩ + background at |q|.
func (a sphereArgs) intensity(q float64) float64 {
	avg := dispersity.Average(a.radius, func(r float64) float64 {
		return formfactor.SphereForm(r, a.delrho, q)
	}, cube)

	return a.scale*avg + a.background
}

// sphereKernel implements kernel for the sphere model.
type sphereKernel struct{}

// iq evaluates I(q) at every q.
// Complexity: O(len(q)·Nr) for Nr radius points.
func (sphereKernel) iq(p *params.Parameters, q, out []float64) error {
	a, err := readSphere(p)
	if err != nil {
		return err
	}
	for i, qi := range q {
		out[i] = a.intensity(qi)
	}

	return nil
}

// iqxyz uses |q|: a sphere has no orientation.
func (sphereKernel) iqxyz(p *params.Parameters, qx, qy, qz, out []float64) error {
	a, err := readSphere(p)
	if err != nil {
		return err
	}
	for i := range out {
		q := math.Hypot(qx[i], qy[i])
		if qz != nil {
			q = math.Hypot(q, qz[i])
		}
		out[i] = a.intensity(q)
	}

	return nil
}

// er is the weighted mean radius.
func (sphereKernel) er(p *params.Parameters) (float64, error) {
	radius, err := p.Dispersion(sphereRadius)
	if err != nil {
		return math.NaN(), err
	}
	mean, _ := dispersity.Mean(radius)

	return mean, nil
}

// vr is 1: a homogeneous sphere has no shell.
func (sphereKernel) vr(*params.Parameters) (float64, error) { return 1, nil }
