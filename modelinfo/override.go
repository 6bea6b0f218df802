// SPDX-License-Identifier: MIT

// Package modelinfo: per-instance override layer.
//
// Instances never write into the shared descriptor. An Override records what an
// instance changes (effective bounds, polydisperse flag) and Layer produces a
// fresh descriptor with those changes applied.
package modelinfo

import "sort"

// bounds is an effective [min, max] pair.
type bounds struct {
	min, max float64
}

// Override is an ordered-by-name record of per-instance changes.
// The zero value is not usable; call NewOverride. Builder methods return the
// receiver so calls can be chained; problems are reported by Layer.
type Override struct {
	bounds map[string]bounds
	poly   map[string]bool
}

// NewOverride returns an empty override record.
func NewOverride() *Override {
	return &Override{
		bounds: make(map[string]bounds),
		poly:   make(map[string]bool),
	}
}

// Bounds sets the effective bounds of the named parameter.
func (o *Override) Bounds(name string, lo, hi float64) *Override {
	o.bounds[name] = bounds{min: lo, max: hi}

	return o
}

// Polydisperse sets (on=true) or clears the polydisperse flag of the named parameter.
func (o *Override) Polydisperse(name string, on bool) *Override {
	o.poly[name] = on

	return o
}

// Empty reports whether the override changes nothing.
func (o *Override) Empty() bool {
	return o == nil || (len(o.bounds) == 0 && len(o.poly) == 0)
}

// PolydisperseChanges returns a copy of the flag changes keyed by parameter name.
func (o *Override) PolydisperseChanges() map[string]bool {
	out := make(map[string]bool, len(o.poly))
	for k, v := range o.poly {
		out[k] = v
	}

	return out
}

// names returns every parameter name the override touches, sorted for
// deterministic error reporting.
func (o *Override) names() []string {
	seen := make(map[string]struct{}, len(o.bounds)+len(o.poly))
	for k := range o.bounds {
		seen[k] = struct{}{}
	}
	for k := range o.poly {
		seen[k] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for k := range seen {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}

// Layer returns base with ov applied. base is not modified.
// Implementation:
//   - Stage 1: nil/empty guards (an empty override yields base itself).
//   - Stage 2: clone base, then apply bounds and polydisperse changes by name.
//
// Errors:
//   - ErrNilInfo, ErrUnknownParameter, ErrInvalidBounds (wrapped with the name).
//
// Complexity:
//   - Time O(P + K log K) for K overridden names.
func Layer(base *ModelInfo, ov *Override) (*ModelInfo, error) {
	// Stage 1 (Validate).
	if base == nil {
		return nil, modelinfoErrorf(opLayer, ErrNilInfo)
	}
	if ov.Empty() {
		return base, nil
	}

	// Stage 2 (Apply).
	eff := base.clone()
	for _, name := range ov.names() {
		i, ok := eff.index[name]
		if !ok {
			return nil, modelinfoErrorf(opLayer+": "+name, ErrUnknownParameter)
		}
		if b, ok := ov.bounds[name]; ok {
			if err := validateBounds(name, b.min, b.max); err != nil {
				return nil, modelinfoErrorf(opLayer, err)
			}
			eff.params[i].Min, eff.params[i].Max = b.min, b.max
		}
		if on, ok := ov.poly[name]; ok {
			if on {
				eff.params[i].Flags |= FlagPolydisperse
			} else {
				eff.params[i].Flags &^= FlagPolydisperse
			}
		}
	}

	return eff, nil
}
