// SPDX-License-Identifier: MIT

package model

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvsas/detector"
	"github.com/katalvlaran/lvsas/params"
)

// Entry point names used in errors and logs.
const (
	opCalculateQ     = "CalculateQ"
	opCalculateQxQy  = "CalculateQxQy"
	opCalculateQxyz  = "CalculateQxQyQz"
	opCalculateER    = "CalculateER"
	opCalculateVR    = "CalculateVR"
	opCalculateImage = "CalculateImage"
)

// CalculateQ evaluates the 1D intensity: iq[i] = I(q[i]).
// len(iq) must equal len(q). On failure iq is filled with NaN.
func (in *Instance) CalculateQ(block []byte, iq, q []float64) error {
	return in.calculate(opCalculateQ, block, iq, func(p *params.Parameters) error {
		if len(iq) != len(q) {
			return lengthErrorf(len(iq), len(q))
		}

		return in.plugin.kernel.iq(p, q, iq)
	})
}

// CalculateQxQy evaluates the 2D intensity at detector points (qx[i], qy[i]).
// All three slices must have the same length. On failure iq is filled with NaN.
func (in *Instance) CalculateQxQy(block []byte, iq, qx, qy []float64) error {
	return in.calculate(opCalculateQxQy, block, iq, func(p *params.Parameters) error {
		if len(iq) != len(qx) || len(iq) != len(qy) {
			return lengthErrorf(len(iq), len(qx), len(qy))
		}

		return in.plugin.kernel.iqxyz(p, qx, qy, nil, iq)
	})
}

// CalculateQxQyQz evaluates the intensity at full 3D scattering vectors.
// With every qz zero it agrees with CalculateQxQy.
func (in *Instance) CalculateQxQyQz(block []byte, iq, qx, qy, qz []float64) error {
	return in.calculate(opCalculateQxyz, block, iq, func(p *params.Parameters) error {
		if len(iq) != len(qx) || len(iq) != len(qy) || len(iq) != len(qz) {
			return lengthErrorf(len(iq), len(qx), len(qy), len(qz))
		}

		return in.plugin.kernel.iqxyz(p, qx, qy, qz, iq)
	})
}

// CalculateER returns the effective radius, or NaN with the error.
func (in *Instance) CalculateER(block []byte) (float64, error) {
	return in.scalar(opCalculateER, block, func(p *params.Parameters) (float64, error) {
		return in.plugin.kernel.er(p)
	})
}

// CalculateVR returns the volume ratio, or NaN with the error.
func (in *Instance) CalculateVR(block []byte) (float64, error) {
	return in.scalar(opCalculateVR, block, func(p *params.Parameters) (float64, error) {
		return in.plugin.kernel.vr(p)
	})
}

// CalculateImage evaluates a detector frame over the grid qxAxis × qyAxis.
// On a calculation failure the returned image holds NaN and err is non-nil;
// empty axes return a nil image.
func (in *Instance) CalculateImage(block []byte, qxAxis, qyAxis []float64) (*detector.Image, error) {
	img, err := detector.NewImage(qxAxis, qyAxis)
	if err != nil {
		return nil, modelErrorf(opCalculateImage, err)
	}
	qx, qy := img.Flatten()
	iq := make([]float64, len(qx))
	calcErr := in.CalculateQxQy(block, iq, qx, qy)
	if err = img.Load(iq); err != nil {
		return nil, modelErrorf(opCalculateImage, err)
	}
	if calcErr != nil {
		return img, modelErrorf(opCalculateImage, calcErr)
	}

	return img, nil
}

// calculate runs the shared guard, decode and NaN-fill sequence.
func (in *Instance) calculate(op string, block []byte, out []float64, eval func(p *params.Parameters) error) error {
	p, err := in.decode(op, block)
	if err == nil {
		err = eval(p)
	}
	if err != nil {
		fillNaN(out)

		return in.fail(op, err)
	}

	return nil
}

// scalar is calculate for entry points with one result.
func (in *Instance) scalar(op string, block []byte, eval func(p *params.Parameters) (float64, error)) (float64, error) {
	p, err := in.decode(op, block)
	if err != nil {
		return math.NaN(), in.fail(op, err)
	}
	v, err := eval(p)
	if err != nil {
		return math.NaN(), in.fail(op, err)
	}

	return v, nil
}

// decode checks the instance and decodes block against its effective descriptor.
func (in *Instance) decode(op string, block []byte) (*params.Parameters, error) {
	if err := in.check(); err != nil {
		return nil, err
	}

	return params.Decode(block, in.info)
}

// fail wraps err with model and op (once) and logs it.
func (in *Instance) fail(op string, err error) error {
	name := "<nil>"
	if in != nil {
		name = in.Name()
	}
	Logger().Debug("calculation failed",
		zap.String("model", name),
		zap.String("op", op),
		zap.Error(err))

	return modelErrorf(op+" "+name, err)
}

// lengthErrorf reports mismatched buffer lengths.
func lengthErrorf(lengths ...int) error {
	return fmt.Errorf("lengths %v: %w", lengths, ErrLengthMismatch)
}

// fillNaN overwrites every element of out with NaN.
func fillNaN(out []float64) {
	nan := math.NaN()
	for i := range out {
		out[i] = nan
	}
}
