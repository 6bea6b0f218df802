// SPDX-License-Identifier: MIT

package model

import (
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvsas/modelinfo"
	"github.com/katalvlaran/lvsas/params"
)

// Instance is one configured use of a plugin. It is safe for concurrent calls;
// after Destroy every call fails with ErrDestroyed.
type Instance struct {
	plugin    *Plugin
	info      *modelinfo.ModelInfo
	destroyed atomic.Bool
}

// Name returns the plugin name.
func (in *Instance) Name() string { return in.plugin.name }

// Info returns the effective descriptor: the plugin's descriptor with this
// instance's overrides applied.
func (in *Instance) Info() *modelinfo.ModelInfo { return in.info }

// Destroy releases the instance. A second Destroy returns ErrDestroyed.
func (in *Instance) Destroy() error {
	if in == nil {
		return modelErrorf("Destroy", ErrNilInstance)
	}
	if !in.destroyed.CompareAndSwap(false, true) {
		return modelErrorf("Destroy "+in.Name(), ErrDestroyed)
	}
	Logger().Debug("instance destroyed", zap.String("model", in.Name()))

	return nil
}

// Encode builds a parameter block for this instance from named values, taking
// defaults for missing names. See params.Encode.
func (in *Instance) Encode(values params.Values) ([]byte, error) {
	if err := in.check(); err != nil {
		return nil, modelErrorf("Encode", err)
	}

	return params.Encode(in.info, values)
}

// Defaults returns the default values under this instance's shapes.
func (in *Instance) Defaults() params.Values {
	return params.Defaults(in.info)
}

// check guards every entry point; callers add context.
func (in *Instance) check() error {
	if in == nil {
		return ErrNilInstance
	}
	if in.destroyed.Load() {
		return ErrDestroyed
	}

	return nil
}
