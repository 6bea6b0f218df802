// SPDX-License-Identifier: MIT

package config

import (
	"math"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/gocty"
	"gonum.org/v1/gonum/floats"
)

// evalContext exposes pi, linspace and logspace to job expressions.
func evalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"pi": cty.NumberFloatVal(math.Pi),
		},
		Functions: map[string]function.Function{
			"linspace": gridFunction(Linspace),
			"logspace": gridFunction(Logspace),
		},
	}
}

// gridFunction adapts a (start, stop, n) generator to a cty function
// returning list(number).
func gridFunction(grid func(start, stop float64, n int) ([]float64, error)) function.Function {
	return function.New(&function.Spec{
		Params: []function.Parameter{
			{Name: "start", Type: cty.Number},
			{Name: "stop", Type: cty.Number},
			{Name: "n", Type: cty.Number},
		},
		Type: function.StaticReturnType(cty.List(cty.Number)),
		Impl: func(args []cty.Value, _ cty.Type) (cty.Value, error) {
			var start, stop float64
			var n int
			if err := gocty.FromCtyValue(args[0], &start); err != nil {
				return cty.NilVal, function.NewArgError(0, err)
			}
			if err := gocty.FromCtyValue(args[1], &stop); err != nil {
				return cty.NilVal, function.NewArgError(1, err)
			}
			if err := gocty.FromCtyValue(args[2], &n); err != nil {
				return cty.NilVal, function.NewArgError(2, err)
			}
			xs, err := grid(start, stop, n)
			if err != nil {
				return cty.NilVal, err
			}
			vals := make([]cty.Value, len(xs))
			for i, x := range xs {
				vals[i] = cty.NumberFloatVal(x)
			}

			return cty.ListVal(vals), nil
		},
	})
}

// Linspace returns n evenly spaced values from start to stop inclusive.
// n == 1 yields just start.
func Linspace(start, stop float64, n int) ([]float64, error) {
	if n < 1 {
		return nil, ErrInvalidQ
	}
	if n == 1 {
		return []float64{start}, nil
	}
	xs := floats.Span(make([]float64, n), start, stop)
	xs[n-1] = stop

	return xs, nil
}

// Logspace returns n geometrically spaced values from start to stop
// inclusive; both ends must be positive.
func Logspace(start, stop float64, n int) ([]float64, error) {
	if n < 1 || start <= 0 || stop <= 0 {
		return nil, ErrInvalidQ
	}
	if n == 1 {
		return []float64{start}, nil
	}
	xs := floats.LogSpan(make([]float64, n), start, stop)
	// exp(log(x)) need not round-trip
	xs[0], xs[n-1] = start, stop

	return xs, nil
}
