// SPDX-License-Identifier: MIT

package params

import (
	"sort"

	"github.com/katalvlaran/lvsas/modelinfo"
)

// Value is a host-side parameter setting: a scalar or a distribution.
type Value struct {
	entry Entry
}

// ScalarValue returns a scalar setting.
func ScalarValue(v float64) Value {
	return Value{entry: Entry{kind: KindScalar, scalar: v}}
}

// DistributionValue returns a distribution setting; nil weights mean uniform 1/n.
func DistributionValue(values, weights []float64) (Value, error) {
	d, err := NewDistribution(values, weights)
	if err != nil {
		return Value{}, err
	}

	return Value{entry: Entry{kind: KindDistribution, dist: d}}, nil
}

// Kind returns the setting's shape.
func (v Value) Kind() Kind { return v.entry.kind }

// Values maps parameter names to settings.
type Values map[string]Value

// Defaults returns every parameter at its declared default: polydisperse
// parameters as the one-point distribution {default: 1}.
func Defaults(info *modelinfo.ModelInfo) Values {
	out := make(Values, info.Count())
	for _, p := range info.Parameters() {
		if p.IsPolydisperse() {
			out[p.Name] = Value{entry: Entry{kind: KindDistribution, dist: Monodisperse(p.Default)}}
		} else {
			out[p.Name] = ScalarValue(p.Default)
		}
	}

	return out
}

// Encode builds the block for info from values.
// Implementation:
//   - Stage 1: reject names info does not declare (sorted for deterministic errors).
//   - Stage 2: walk parameters in order; missing names take their default.
//   - Stage 3: a scalar given for a polydisperse parameter becomes {v: 1};
//     a distribution given for a scalar parameter is ErrShapeMismatch.
//
// Complexity:
//   - Time O(P + total points).
func Encode(info *modelinfo.ModelInfo, values Values) ([]byte, error) {
	if info == nil {
		return nil, paramsErrorf("Encode", modelinfo.ErrNilInfo)
	}

	// Stage 1 (Unknown names).
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if _, ok := info.Index(name); !ok {
			return nil, paramsErrorf("Encode: "+name, ErrUnknownParameter)
		}
	}

	// Stage 2/3 (Ordered entries).
	b := NewBuilder()
	for i, p := range info.Parameters() {
		v, ok := values[p.Name]
		if !ok {
			if p.IsPolydisperse() {
				b.Append(Entry{kind: KindDistribution, dist: Monodisperse(p.Default)})
			} else {
				b.Scalar(p.Default)
			}
			continue
		}
		switch {
		case p.IsPolydisperse() && v.entry.kind == KindScalar:
			b.Append(Entry{kind: KindDistribution, dist: Monodisperse(v.entry.scalar)})
		case !p.IsPolydisperse() && v.entry.kind == KindDistribution:
			return nil, entryErrorf("Encode: "+p.Name, i, ErrShapeMismatch)
		default:
			b.Append(v.entry)
		}
	}

	return b.Bytes()
}
