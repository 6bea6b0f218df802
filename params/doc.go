// SPDX-License-Identifier: MIT

// Package params encodes and decodes parameter blocks: the self-describing binary
// records a host passes to every model calculation.
//
// 🚀 Wire layout (little-endian, 8-byte words):
//
//	word 0          count   : number of entries INCLUDING the trailing End sentinel
//	words 1..count  offsets : byte offset of each entry, relative to base
//	base = 8·(1+count)
//
//	entry at base+offset:
//	  Scalar        tag=0xAAAAAAA1, value
//	  Distribution  tag=0xAAAAAAA2, npoints, values[npoints], weights[npoints]
//	  End           tag=0xAAAAAAA0
//
// ✨ Decoding:
//   - count == 0 is invalid; the number of real parameters is N = count−1.
//   - entries 0..N−1 must be Scalar or Distribution, entry N must be End.
//   - with a *modelinfo.ModelInfo, N must equal its parameter count and each
//     entry must be a Distribution exactly where the parameter is polydisperse.
//   - every offset, count and payload is bounds-checked against the block;
//     a malformed block is an error, never a panic or an out-of-block read.
//
// The decoded Parameters own their data: values and weights are copied once
// into two equal-length slices, and Samples handed to kernels alias those.
//
// ⚙️ Usage:
//
//	block, err := params.NewBuilder().
//	    Scalar(1).                              // scale
//	    Distribution([]float64{10, 20}, nil).   // radius, uniform weights
//	    Bytes()
//
//	p, err := params.Decode(block, info)
//	scale, err := p.Scalar(0)
//	radius, err := p.Distribution(1)
package params
