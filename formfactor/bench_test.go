package formfactor_test

import (
	"testing"

	"github.com/katalvlaran/lvsas/formfactor"
)

var sinkF float64

func BenchmarkSphereForm(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkF = formfactor.SphereForm(20, 2e-6, 0.05)
	}
}

func BenchmarkCylinderIq(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkF = formfactor.CylinderIq(0.05, 4, 1, 20, 400)
	}
}

func BenchmarkCylinderIqxy(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkF = formfactor.CylinderIqxy(0.03, 0.04, 4, 1, 20, 400, 60, 60)
	}
}
