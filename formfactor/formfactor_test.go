package formfactor_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvsas/formfactor"
)

func TestSphereForm_ZeroQLimit(t *testing.T) {
	r, delrho := 20.0, 2e-6
	v := formfactor.SphereVolume(r)
	assert.InEpsilon(t, v*delrho*delrho*1e8, formfactor.SphereForm(r, delrho, 0), 1e-12)
}

func TestSphereBessel_SmallArgument(t *testing.T) {
	assert.Equal(t, 1.0, formfactor.SphereBessel(0))
	// series 1 - x²/10 + x⁴/280
	x := 1e-2
	assert.InDelta(t, 1-x*x/10+x*x*x*x/280, formfactor.SphereBessel(x), 1e-9)
}

func TestSphereForm_EqualSLDIsZero(t *testing.T) {
	for _, q := range []float64{0, 0.001, 0.1, 1} {
		assert.Equal(t, 0.0, formfactor.SphereForm(20, 0, q))
	}
}

func TestSphereForm_ZeroRadius(t *testing.T) {
	assert.Equal(t, 0.0, formfactor.SphereForm(0, 1e-6, 0.1))
}

func TestCylinderAmplitude_Limits(t *testing.T) {
	assert.Equal(t, 0.5, formfactor.CylinderAmplitude(0, 0))
	assert.InDelta(t, math.Sin(2)/2*0.5, formfactor.CylinderAmplitude(0, 2), 1e-15)
	assert.InDelta(t, math.J1(3)/3, formfactor.CylinderAmplitude(3, 0), 1e-15)
}

func TestCylinderIq_ZeroQ(t *testing.T) {
	// A = 1/2 at q = 0 and ∫ sin α/4 dα over [0, π/2] is 1/4
	sld, solvent, r, l := 4.0, 1.0, 20.0, 400.0
	v := formfactor.CylinderVolume(r, l)
	want := 1e-4 * (sld - solvent) * (sld - solvent) * v * v
	assert.InEpsilon(t, want, formfactor.CylinderIq(0, sld, solvent, r, l), 1e-12)
	assert.InEpsilon(t, want, formfactor.CylinderIqxy(0, 0, sld, solvent, r, l, 60, 60), 1e-12)
}

func TestCylinderIq_EqualSLDIsZero(t *testing.T) {
	assert.Equal(t, 0.0, formfactor.CylinderIq(0.05, 1, 1, 20, 400))
	assert.Equal(t, 0.0, formfactor.CylinderIqxy(0.05, 0.01, 1, 1, 20, 400, 60, 60))
}

func TestCylinderIqxyz_ReducesToIqxy(t *testing.T) {
	for _, qx := range []float64{-0.1, 0, 0.02} {
		for _, qy := range []float64{-0.05, 0.03} {
			want := formfactor.CylinderIqxy(qx, qy, 4, 1, 20, 400, 30, 45)
			got := formfactor.CylinderIqxyz(qx, qy, 0, 4, 1, 20, 400, 30, 45)
			assert.Equal(t, want, got)
		}
	}
}

func TestCylinderIqxy_AxisAlongQ(t *testing.T) {
	// θ = φ = 0 puts the axis on x; with q on x only the sinc term varies
	q, r, l := 0.01, 20.0, 400.0
	v := formfactor.CylinderVolume(r, l)
	x := q * l / 2
	a := 2 * 3.0 * v * 0.5 * math.Sin(x) / x
	assert.InEpsilon(t, 1e-4*a*a, formfactor.CylinderIqxy(q, 0, 4, 1, r, l, 0, 0), 1e-9)
}

func TestCylinderIqxyz_AxisAlongZ(t *testing.T) {
	// φ = 90° turns the axis onto z
	q, r, l := 0.01, 20.0, 400.0
	onAxis := formfactor.CylinderIqxyz(0, 0, q, 4, 1, r, l, 0, 90)
	inPlane := formfactor.CylinderIqxy(q, 0, 4, 1, r, l, 0, 0)
	assert.InEpsilon(t, inPlane, onAxis, 1e-9)
}

func TestCylinderForm_NormalizedByVolume(t *testing.T) {
	q, r, l := 0.02, 20.0, 400.0
	assert.InEpsilon(t,
		formfactor.CylinderIq(q, 4, 1, r, l)/formfactor.CylinderVolume(r, l),
		formfactor.CylinderForm(q, 4, 1, r, l), 1e-15)
	assert.Equal(t, 0.0, formfactor.CylinderForm(q, 4, 1, 0, l))
	assert.Equal(t, 0.0, formfactor.CylinderFormXYZ(q, 0, 0, 4, 1, r, 0, 0, 0))
}

func TestCylinderER(t *testing.T) {
	assert.InDelta(t, 1.221169024992697, formfactor.CylinderER(1, 2), 1e-12)
	assert.Greater(t, formfactor.CylinderER(20, 800), formfactor.CylinderER(20, 400))
}
