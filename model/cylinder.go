// SPDX-License-Identifier: MIT

package model

import (
	"math"

	"github.com/katalvlaran/lvsas/dispersity"
	"github.com/katalvlaran/lvsas/formfactor"
	"github.com/katalvlaran/lvsas/modelinfo"
	"github.com/katalvlaran/lvsas/params"
)

const cylinderName = "cylinder"

// Cylinder parameter positions on the wire.
const (
	cylScale = iota
	cylSLD
	cylSolventSLD
	cylRadius
	cylLength
	cylTheta
	cylPhi
	cylBackground
)

// newCylinder assembles the cylinder plugin. Both sizes and both angles can
// be averaged over; angles only matter for oriented evaluation.
func newCylinder() *Plugin {
	return newPlugin(cylinderName, describeCylinder, cylinderKernel{},
		"radius", "length", "theta", "phi")
}

// describeCylinder builds the cylinder descriptor in wire order. SLDs are in
// 1e-6/Ang²; theta and phi are in degrees and flagged as orientation.
func describeCylinder() *modelinfo.ModelInfo {
	inf := math.Inf(1)

	return modelinfo.MustNew(cylinderName,
		"right circular cylinder with uniform scattering length density",
		modelinfo.ParameterInfo{Name: "scale", Default: 1, Min: 0, Max: inf},
		modelinfo.ParameterInfo{Name: "sld", Description: "cylinder scattering length density",
			Unit: "1e-6/Ang^2", Default: 4, Min: -inf, Max: inf},
		modelinfo.ParameterInfo{Name: "solvent_sld", Description: "solvent scattering length density",
			Unit: "1e-6/Ang^2", Default: 1, Min: -inf, Max: inf},
		modelinfo.ParameterInfo{Name: "radius", Description: "cylinder radius",
			Unit: "Ang", Default: 20, Min: 0, Max: inf, Flags: modelinfo.FlagPolydisperse},
		modelinfo.ParameterInfo{Name: "length", Description: "cylinder length",
			Unit: "Ang", Default: 400, Min: 0, Max: inf, Flags: modelinfo.FlagPolydisperse},
		modelinfo.ParameterInfo{Name: "theta", Description: "in plane angle",
			Unit: "degrees", Default: 60, Min: -360, Max: 360, Flags: modelinfo.FlagOrientation},
		modelinfo.ParameterInfo{Name: "phi", Description: "out of plane angle",
			Unit: "degrees", Default: 60, Min: -360, Max: 360, Flags: modelinfo.FlagOrientation},
		modelinfo.ParameterInfo{Name: "background", Unit: "1/cm", Default: 0, Min: 0, Max: inf},
	)
}

// cylinderArgs are the decoded cylinder parameters.
type cylinderArgs struct {
	scale, sld, solventSLD, background float64
	radius, length, theta, phi         params.Distribution
}

// readCylinder pulls the cylinder arguments out of decoded parameters.
// Stage 1 (Read): scalars, then the four dispersable parameters as
// distributions (a scalar entry reads as one point).
// Stage 2 (Finalize): report the first read error, if any.
// Complexity: O(1).
func readCylinder(p *params.Parameters) (cylinderArgs, error) {
	r := reader{p: p}
	a := cylinderArgs{
		scale:      r.scalar(cylScale),
		sld:        r.scalar(cylSLD),
		solventSLD: r.scalar(cylSolventSLD),
		radius:     r.dispersion(cylRadius),
		length:     r.dispersion(cylLength),
		theta:      r.dispersion(cylTheta),
		phi:        r.dispersion(cylPhi),
		background: r.scalar(cylBackground),
	}

	return a, r.err
}

// cylinderVolume is the mesh volume proxy; x holds radius then length.
func cylinderVolume(x []float64) float64 {
	return formfactor.CylinderVolume(x[0], x[1])
}

// cylinderKernel implements kernel for the cylinder model.
type cylinderKernel struct{}

// iq averages over radius and length; orientation is integrated analytically
// so theta and phi do not enter.
// Stage 1 (Read): decode arguments.
// Stage 2 (Prepare): build the radius × length mesh once for all q.
// Stage 3 (Execute): volume-weighted mesh average per q, then scale and background.
// Complexity: O(len(q)·Nr·Nl·76).
func (cylinderKernel) iq(p *params.Parameters, q, out []float64) error {
	a, err := readCylinder(p)
	if err != nil {
		return err
	}
	mesh, err := dispersity.NewMesh(a.radius, a.length)
	if err != nil {
		return err
	}
	for i, qi := range q {
		avg := mesh.Intensity(func(x []float64) float64 {
			return formfactor.CylinderForm(qi, a.sld, a.solventSLD, x[0], x[1])
		}, cylinderVolume)
		out[i] = a.scale*avg + a.background
	}

	return nil
}

// iqxyz averages over radius, length, theta and phi. A nil qz means every
// point lies in the detector plane.
// Complexity: O(len(out)·Nr·Nl·Nθ·Nφ).
func (cylinderKernel) iqxyz(p *params.Parameters, qx, qy, qz, out []float64) error {
	a, err := readCylinder(p)
	if err != nil {
		return err
	}
	mesh, err := dispersity.NewMesh(a.radius, a.length, a.theta, a.phi)
	if err != nil {
		return err
	}
	for i := range out {
		z := 0.0
		if qz != nil {
			z = qz[i]
		}
		avg := mesh.Intensity(func(x []float64) float64 {
			return formfactor.CylinderFormXYZ(qx[i], qy[i], z, a.sld, a.solventSLD, x[0], x[1], x[2], x[3])
		}, cylinderVolume)
		out[i] = a.scale*avg + a.background
	}

	return nil
}

// er is the weighted mean equivalent-sphere radius over radius and length.
func (cylinderKernel) er(p *params.Parameters) (float64, error) {
	r := reader{p: p}
	radius, length := r.dispersion(cylRadius), r.dispersion(cylLength)
	if r.err != nil {
		return math.NaN(), r.err
	}
	mesh, err := dispersity.NewMesh(radius, length)
	if err != nil {
		return math.NaN(), err
	}
	mean, _ := mesh.Mean(func(x []float64) float64 {
		return formfactor.CylinderER(x[0], x[1])
	})

	return mean, nil
}

// vr is 1 for a solid cylinder.
func (cylinderKernel) vr(*params.Parameters) (float64, error) { return 1, nil }
