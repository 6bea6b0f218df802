// SPDX-License-Identifier: MIT

// Package formfactor holds the per-particle scattering kernels: pure functions
// of q and a fixed parameter set, with no knowledge of distributions, scale or
// background.
//
// Units:
//
//	Sphere kernels take absolute SLDs in 1/Å² and convert with 1e8.
//	Cylinder kernels take SLDs in 1e-6/Å² and convert with 1e-4.
//	Both return 1/cm.
//
// Volume normalization:
//
//	SphereForm and CylinderForm are normalized by particle volume, so the
//	dispersity integrator can re-weight them with w·V. CylinderIq and
//	CylinderIqxy are the raw (un-normalized) intensities.
//
// Orientation:
//
//	θ and φ are in degrees. The cylinder axis is
//	  (cos θ cos φ, sin θ, cos θ sin φ)
//	and in the detector plane (qz = 0) the cosine of the angle to q reduces to
//	  (cos θ cos φ · qx + sin θ · qy) / |q|.
//	At |q| = 0 the cosine is taken as 1.
package formfactor
