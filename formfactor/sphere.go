// SPDX-License-Identifier: MIT

package formfactor

import "math"

// SphereVolume returns 4/3·π·r³.
func SphereVolume(radius float64) float64 {
	return 4.0 * math.Pi / 3.0 * radius * radius * radius
}

// SphereBessel returns the normalized sphere amplitude 3(sin x − x cos x)/x³,
// with its limit 1 at x = 0.
func SphereBessel(qr float64) float64 {
	if qr == 0 {
		return 1
	}

	return 3 * (math.Sin(qr) - qr*math.Cos(qr)) / (qr * qr * qr)
}

// SphereForm returns the volume-normalized intensity of one sphere,
// (V·bes·Δρ)²/V·1e8 in 1/cm. A zero volume scatters nothing.
func SphereForm(radius, delrho, q float64) float64 {
	vol := SphereVolume(radius)
	if vol == 0 {
		return 0
	}
	f := vol * SphereBessel(q*radius) * delrho

	return f * f / vol * 1e8
}
