// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/katalvlaran/lvsas/dispersity"
	"github.com/katalvlaran/lvsas/model"
	"github.com/katalvlaran/lvsas/modelinfo"
	"github.com/katalvlaran/lvsas/params"
)

// Job is one decoded job file.
type Job struct {
	Model      string            `hcl:"model"`
	Q          *QBlock           `hcl:"q,block"`
	Detector   *DetectorBlock    `hcl:"detector,block"`
	Parameters []*ParameterBlock `hcl:"parameter,block"`
	Overrides  []*OverrideBlock  `hcl:"override,block"`
}

// QBlock lists q values directly or as a generated range.
type QBlock struct {
	Values  []float64 `hcl:"values,optional"`
	Min     *float64  `hcl:"min,optional"`
	Max     *float64  `hcl:"max,optional"`
	Points  *int      `hcl:"points,optional"`
	Spacing string    `hcl:"spacing,optional"` // "linear" (default) or "log"
}

// DetectorBlock gives the axes of a 2D detector grid.
type DetectorBlock struct {
	QX []float64 `hcl:"qx"`
	QY []float64 `hcl:"qy"`
}

// ParameterBlock sets one parameter: a scalar value, explicit
// values/weights, or a value with a generated dispersion.
type ParameterBlock struct {
	Name       string           `hcl:"name,label"`
	Value      *float64         `hcl:"value,optional"`
	Values     []float64        `hcl:"values,optional"`
	Weights    []float64        `hcl:"weights,optional"`
	Dispersion *DispersionBlock `hcl:"dispersion,block"`
}

// DispersionBlock configures a dispersity.Dispersion.
type DispersionBlock struct {
	Type    string  `hcl:"type,optional"`
	Width   float64 `hcl:"width"`
	Npts    int     `hcl:"npts,optional"`
	Nsigmas float64 `hcl:"nsigmas,optional"`
}

// OverrideBlock changes one parameter's bounds or polydisperse flag for the
// job's model instance.
type OverrideBlock struct {
	Name         string   `hcl:"name,label"`
	Min          *float64 `hcl:"min,optional"`
	Max          *float64 `hcl:"max,optional"`
	Polydisperse *bool    `hcl:"polydisperse,optional"`
}

// Load reads and parses the job file at path.
func Load(path string) (*Job, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	return Parse(src, path)
}

// Parse decodes a job from HCL source. filename is used in diagnostics.
//
// Implementation:
//   - Stage 1: Parse and decode with pi, linspace and logspace in scope.
//   - Stage 2: Check the model name, that something is computable, and that
//     block labels are unique.
func Parse(src []byte, filename string) (*Job, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("config: parse %s: %w", filename, diags)
	}
	var job Job
	if diags = gohcl.DecodeBody(file.Body, evalContext(), &job); diags.HasErrors() {
		return nil, fmt.Errorf("config: decode %s: %w", filename, diags)
	}

	if strings.TrimSpace(job.Model) == "" {
		return nil, fmt.Errorf("%s: %w", filename, ErrMissingModel)
	}
	if job.Q == nil && job.Detector == nil {
		return nil, fmt.Errorf("%s: %w", filename, ErrNothingToCompute)
	}
	seen := make(map[string]bool)
	for _, p := range job.Parameters {
		if seen[p.Name] {
			return nil, fmt.Errorf("%s: parameter %q: %w", filename, p.Name, ErrDuplicateBlock)
		}
		seen[p.Name] = true
	}
	clear(seen)
	for _, o := range job.Overrides {
		if seen[o.Name] {
			return nil, fmt.Errorf("%s: override %q: %w", filename, o.Name, ErrDuplicateBlock)
		}
		seen[o.Name] = true
	}

	return &job, nil
}

// QValues returns the 1D q values, or nil when the job has no q block.
func (j *Job) QValues() ([]float64, error) {
	q := j.Q
	if q == nil {
		return nil, nil
	}
	ranged := q.Min != nil || q.Max != nil || q.Points != nil
	switch {
	case len(q.Values) > 0 && ranged:
		return nil, fmt.Errorf("values with min/max/points: %w", ErrInvalidQ)
	case len(q.Values) > 0:
		return append([]float64(nil), q.Values...), nil
	case q.Min == nil || q.Max == nil || q.Points == nil:
		return nil, fmt.Errorf("need values or min, max and points: %w", ErrInvalidQ)
	}

	switch strings.ToLower(q.Spacing) {
	case "", "linear":
		return Linspace(*q.Min, *q.Max, *q.Points)
	case "log":
		return Logspace(*q.Min, *q.Max, *q.Points)
	default:
		return nil, fmt.Errorf("spacing %q: %w", q.Spacing, ErrInvalidQ)
	}
}

// DetectorAxes returns the detector grid axes; ok is false without a
// detector block.
func (j *Job) DetectorAxes() (qx, qy []float64, ok bool) {
	if j.Detector == nil {
		return nil, nil, false
	}

	return append([]float64(nil), j.Detector.QX...), append([]float64(nil), j.Detector.QY...), true
}

// Options translates override blocks into model options. A bound left out
// of an override keeps base's value.
func (j *Job) Options(base *modelinfo.ModelInfo) ([]model.Option, error) {
	opts := make([]model.Option, 0, len(j.Overrides))
	for _, o := range j.Overrides {
		i, ok := base.Index(o.Name)
		if !ok {
			return nil, fmt.Errorf("override %q: %w", o.Name, ErrUnknownParameter)
		}
		if o.Min != nil || o.Max != nil {
			p, err := base.Parameter(i)
			if err != nil {
				return nil, err
			}
			lo, hi := p.Min, p.Max
			if o.Min != nil {
				lo = *o.Min
			}
			if o.Max != nil {
				hi = *o.Max
			}
			opts = append(opts, model.WithBounds(o.Name, lo, hi))
		}
		if o.Polydisperse != nil {
			if *o.Polydisperse {
				opts = append(opts, model.WithPolydisperse(o.Name))
			} else {
				opts = append(opts, model.WithMonodisperse(o.Name))
			}
		}
	}

	return opts, nil
}

// Values builds the parameter values for info, which should be the effective
// descriptor of the instance the job runs on: its bounds clip generated
// dispersions and its flags decide relative (size) or absolute (angle) width.
// Parameters without a block are left out and take their defaults on encode.
func (j *Job) Values(info *modelinfo.ModelInfo) (params.Values, error) {
	out := make(params.Values, len(j.Parameters))
	for _, b := range j.Parameters {
		i, ok := info.Index(b.Name)
		if !ok {
			return nil, fmt.Errorf("parameter %q: %w", b.Name, ErrUnknownParameter)
		}
		p, err := info.Parameter(i)
		if err != nil {
			return nil, err
		}
		v, err := b.value(p)
		if err != nil {
			return nil, fmt.Errorf("parameter %q: %w", b.Name, err)
		}
		out[b.Name] = v
	}

	return out, nil
}

// value resolves one block against its descriptor.
func (b *ParameterBlock) value(p modelinfo.ParameterInfo) (params.Value, error) {
	switch {
	case len(b.Values) > 0 && b.Dispersion != nil:
		return params.Value{}, ErrConflictingValues
	case len(b.Values) > 0:
		return params.DistributionValue(b.Values, b.Weights)
	case b.Dispersion != nil:
		center := p.Default
		if b.Value != nil {
			center = *b.Value
		}
		shape := dispersity.Gaussian
		if b.Dispersion.Type != "" {
			s, err := dispersity.ParseShape(b.Dispersion.Type)
			if err != nil {
				return params.Value{}, err
			}
			shape = s
		}
		d := dispersity.Dispersion{
			Shape:  shape,
			Width:  b.Dispersion.Width,
			Points: b.Dispersion.Npts,
			Sigmas: b.Dispersion.Nsigmas,
		}
		relative := !p.Flags.Has(modelinfo.FlagOrientation)
		dist, err := d.Sample(center, p.Min, p.Max, relative)
		if err != nil {
			return params.Value{}, err
		}

		return params.DistributionValue(dist.Values(), dist.Weights())
	case b.Value != nil:
		return params.ScalarValue(*b.Value), nil
	default:
		return params.Value{}, ErrEmptyParameter
	}
}
