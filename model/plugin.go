// SPDX-License-Identifier: MIT

package model

import (
	"maps"
	"slices"
	"sync"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvsas/modelinfo"
	"github.com/katalvlaran/lvsas/params"
)

// kernel is the numeric side of a built-in model. Parameters arrive decoded
// and validated against the instance's effective descriptor; output buffers
// have already been length-checked.
type kernel interface {
	iq(p *params.Parameters, q, out []float64) error
	// iqxyz evaluates oriented intensities; qz is nil for detector-plane points.
	iqxyz(p *params.Parameters, qx, qy, qz, out []float64) error
	er(p *params.Parameters) (float64, error)
	vr(p *params.Parameters) (float64, error)
}

// Plugin is a registered model: a lazily built descriptor plus its kernel.
type Plugin struct {
	name        string
	describe    func() *modelinfo.ModelInfo
	kernel      kernel
	dispersable map[string]bool

	once sync.Once
	info *modelinfo.ModelInfo
}

// newPlugin registers nothing; it only assembles the pieces.
func newPlugin(name string, describe func() *modelinfo.ModelInfo, k kernel, dispersable ...string) *Plugin {
	d := make(map[string]bool, len(dispersable))
	for _, n := range dispersable {
		d[n] = true
	}

	return &Plugin{name: name, describe: describe, kernel: k, dispersable: d}
}

// Name returns the registry key.
func (p *Plugin) Name() string { return p.name }

// Info returns the shared, immutable descriptor, building it on first use.
func (p *Plugin) Info() *modelinfo.ModelInfo {
	p.once.Do(func() {
		p.info = p.describe()
	})

	return p.info
}

// Dispersable reports whether the kernel averages over the named parameter.
func (p *Plugin) Dispersable(name string) bool { return p.dispersable[name] }

// Create returns a new instance whose effective descriptor is Info() with
// opts layered on top. The shared descriptor is never modified.
//
// Errors:
//   - modelinfo.ErrUnknownParameter for an option naming no parameter.
//   - ErrNotDispersable when WithPolydisperse names a parameter the kernel cannot average.
//   - modelinfo.ErrInvalidBounds for NaN or inverted bounds.
func (p *Plugin) Create(opts ...Option) (*Instance, error) {
	const op = "Create"
	base := p.Info()
	o := gatherOptions(opts...)

	changes := o.override.PolydisperseChanges()
	for _, name := range slices.Sorted(maps.Keys(changes)) {
		if _, ok := base.Index(name); !ok {
			return nil, modelErrorf(op+" "+p.name+": "+name, modelinfo.ErrUnknownParameter)
		}
		if changes[name] && !p.Dispersable(name) {
			return nil, modelErrorf(op+" "+p.name+": "+name, ErrNotDispersable)
		}
	}
	eff, err := modelinfo.Layer(base, o.override)
	if err != nil {
		return nil, modelErrorf(op+" "+p.name, err)
	}

	Logger().Debug("instance created",
		zap.String("model", p.name),
		zap.Strings("polydisperse", eff.Names(modelinfo.FlagPolydisperse)))

	return &Instance{plugin: p, info: eff}, nil
}
