// SPDX-License-Identifier: MIT

package formfactor

import (
	"math"

	"github.com/katalvlaran/lvsas/quadrature"
)

const deg = math.Pi / 180

// CylinderVolume returns π·r²·L.
func CylinderVolume(radius, length float64) float64 {
	return math.Pi * radius * radius * length
}

// CylinderAmplitude returns sinc(siarg)·J1(besarg)/besarg, the cylinder
// amplitude divided by 2·V·Δρ. besarg = q·r·sin α and siarg = q·L/2·cos α.
// The limits at zero arguments are 0.5 for the Bessel term and 1 for sinc.
func CylinderAmplitude(besarg, siarg float64) float64 {
	bj := 0.5
	if besarg != 0 {
		bj = math.J1(besarg) / besarg
	}
	si := 1.0
	if siarg != 0 {
		si = math.Sin(siarg) / siarg
	}

	return si * bj
}

// CylinderIq returns the orientation-averaged intensity of a randomly oriented
// cylinder: 1e-4·(2ΔρV)²·∫₀^{π/2} A²(α)·sin α dα, evaluated with Gauss76.
func CylinderIq(q, sld, solventSLD, radius, length float64) float64 {
	qr := q * radius
	qh := 0.5 * q * length
	total := quadrature.Gauss76.Integrate(0, math.Pi/2, func(alpha float64) float64 {
		sn, cn := math.Sincos(alpha)
		fq := CylinderAmplitude(qr*sn, qh*cn)

		return fq * fq * sn
	})
	twovd := 2 * (sld - solventSLD) * CylinderVolume(radius, length)

	return 1e-4 * twovd * twovd * total
}

// CylinderIqxy returns the intensity of a cylinder with axis angles θ, φ
// (degrees) at detector position (qx, qy).
func CylinderIqxy(qx, qy, sld, solventSLD, radius, length, theta, phi float64) float64 {
	return CylinderIqxyz(qx, qy, 0, sld, solventSLD, radius, length, theta, phi)
}

// CylinderIqxyz is CylinderIqxy for a full 3D scattering vector. With qz = 0
// it is identical to CylinderIqxy.
func CylinderIqxyz(qx, qy, qz, sld, solventSLD, radius, length, theta, phi float64) float64 {
	q := math.Sqrt(qx*qx + qy*qy + qz*qz)
	cosVal := 1.0
	if q != 0 {
		st, ct := math.Sincos(theta * deg)
		sp, cp := math.Sincos(phi * deg)
		cosVal = (ct*cp*qx + st*qy + ct*sp*qz) / q
	}
	// rounding can push |cos| past 1
	cosVal = math.Max(-1, math.Min(1, cosVal))
	sn, cn := math.Sincos(math.Acos(cosVal))

	twovd := 2 * (sld - solventSLD) * CylinderVolume(radius, length)
	fq := twovd * CylinderAmplitude(q*radius*sn, 0.5*q*length*cn)

	return 1e-4 * fq * fq
}

// CylinderForm returns CylinderIq divided by the cylinder volume, the
// per-particle kernel the dispersity integrator re-weights by volume.
// A zero volume scatters nothing.
func CylinderForm(q, sld, solventSLD, radius, length float64) float64 {
	vol := CylinderVolume(radius, length)
	if vol == 0 {
		return 0
	}

	return CylinderIq(q, sld, solventSLD, radius, length) / vol
}

// CylinderFormXYZ is the volume-normalized CylinderIqxyz.
func CylinderFormXYZ(qx, qy, qz, sld, solventSLD, radius, length, theta, phi float64) float64 {
	vol := CylinderVolume(radius, length)
	if vol == 0 {
		return 0
	}

	return CylinderIqxyz(qx, qy, qz, sld, solventSLD, radius, length, theta, phi) / vol
}

// CylinderER returns the radius of the sphere whose second virial coefficient
// matches a cylinder of the given radius and length.
func CylinderER(radius, length float64) float64 {
	ddd := 0.75 * radius * (2*radius*length + (length+radius)*(length+math.Pi*radius))

	return 0.5 * math.Cbrt(ddd)
}
