// Package lvsas is a small-angle scattering model engine: analytic form
// factors, polydispersity averaging, and the binary parameter protocol a host
// program uses to drive them.
//
// 🚀 What is lvsas?
//
//	A host (a fitting program, a GUI, the bundled CLI) asks a model for its
//	parameter descriptor, encodes values into a self-describing parameter block,
//	and calls the model's entry points to fill intensity buffers:
//		• Descriptors: named parameters with units, defaults, bounds and flags
//		• Parameter blocks: scalars and weighted distributions in one byte slice
//		• Dispersity: volume-weighted averages over size and angle distributions
//		• Kernels: sphere and cylinder form factors, 1D, 2D and 3D q
//		• Detector images: row-major qx × qy grids
//
// ✨ Why lvsas?
//
//   - Strict decoding: malformed blocks are errors, never panics or garbage
//   - NaN on failure: a host never reads stale output
//   - Per-instance overrides: bounds and polydispersity never leak between instances
//   - Deterministic: sequential accumulation, bit-for-bit repeatable results
//
// Packages:
//
//	modelinfo/   - parameter and model descriptors, per-instance overrides
//	params/      - parameter block decoder, encoder and host-side Values
//	dispersity/  - accumulator, distribution meshes, dispersion generators
//	quadrature/  - Gauss-Legendre tables (Gauss76)
//	formfactor/  - sphere and cylinder kernels
//	model/       - registry, instances and calculation entry points
//	detector/    - 2D detector images
//	cmd/sascalc  - command line: models, info, run, history, version
//
// Quick start:
//
//	p, _ := model.Lookup("sphere")
//	in, _ := p.Create()
//	block, _ := in.Encode(params.Values{"radius": params.ScalarValue(30)})
//	iq := make([]float64, len(q))
//	err := in.CalculateQ(block, iq, q)
//
// See examples/ for complete programs and job files.
package lvsas
