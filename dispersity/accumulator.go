// SPDX-License-Identifier: MIT

package dispersity

import "github.com/katalvlaran/lvsas/params"

// Accumulator holds the running sums of a volume-weighted average for one
// output element. The zero value is ready to use.
type Accumulator struct {
	sum  float64 // Σ w·I·V
	vol  float64 // Σ w·V
	norm float64 // Σ w
}

// Add folds one point: weight w, per-particle intensity i and volume proxy v.
func (a *Accumulator) Add(w, i, v float64) {
	a.sum += w * i * v
	a.vol += w * v
	a.norm += w
}

// Reset clears the sums for the next output element.
func (a *Accumulator) Reset() {
	*a = Accumulator{}
}

// Norm returns Σw.
func (a *Accumulator) Norm() float64 { return a.norm }

// Degenerate reports whether Σw is zero, in which case Result is the raw sum.
func (a *Accumulator) Degenerate() bool { return a.norm == 0 }

// Result returns the volume-normalized weighted mean.
// When vol and norm are both non-zero the extra volume weighting is removed
// (sum / (vol/norm)); then sum is divided by norm unless norm is zero.
func (a *Accumulator) Result() float64 {
	sum := a.sum
	if a.vol != 0 && a.norm != 0 {
		sum /= a.vol / a.norm
	}
	if a.norm != 0 {
		sum /= a.norm
	}

	return sum
}

// Average computes the volume-weighted population average of kernel over d.
// kernel and volume receive the point value. A single point of non-zero
// weight returns kernel(value) unchanged.
// Complexity: O(d.Len()) kernel calls.
func Average(d params.Distribution, kernel, volume func(x float64) float64) float64 {
	if d.Len() == 1 {
		if s, _ := d.At(0); s.Weight != 0 {
			return kernel(s.Value)
		}
	}
	var acc Accumulator
	for _, s := range d.All() {
		acc.Add(s.Weight, kernel(s.Value), volume(s.Value))
	}

	return acc.Result()
}

// Mean returns the weighted mean Σw·x / Σw of d's values. When Σw is zero it
// returns the raw Σw·x and degenerate=true; that value is not a meaningful mean.
func Mean(d params.Distribution) (mean float64, degenerate bool) {
	var sum, norm float64
	for _, s := range d.All() {
		sum += s.Weight * s.Value
		norm += s.Weight
	}
	if norm == 0 {
		return sum, true
	}

	return sum / norm, false
}
