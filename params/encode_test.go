package params_test

import (
	"testing"

	"github.com/katalvlaran/lvsas/params"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode_DefaultsDecodeAgainstDescriptor(t *testing.T) {
	info := sphereInfo()
	block, err := params.Encode(info, params.Defaults(info))
	require.NoError(t, err)

	p, err := params.Decode(block, info)
	require.NoError(t, err)

	radius, err := p.Distribution(1)
	require.NoError(t, err)
	s, err := radius.At(0)
	require.NoError(t, err)
	assert.Equal(t, params.Sample{Value: 20, Weight: 1}, s)
}

func TestEncode_MissingNamesTakeDefaults(t *testing.T) {
	info := sphereInfo()
	block, err := params.Encode(info, params.Values{"scale": params.ScalarValue(3)})
	require.NoError(t, err)

	p, err := params.Decode(block, info)
	require.NoError(t, err)
	scale, _ := p.Scalar(0)
	sld, _ := p.Scalar(2)
	assert.Equal(t, 3.0, scale)
	assert.Equal(t, 4e-6, sld)
}

func TestEncode_ScalarPromotedForPolydisperse(t *testing.T) {
	info := sphereInfo()
	block, err := params.Encode(info, params.Values{"radius": params.ScalarValue(35)})
	require.NoError(t, err)

	p, err := params.Decode(block, info)
	require.NoError(t, err)
	radius, err := p.Distribution(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{35}, radius.Values())
	assert.Equal(t, []float64{1}, radius.Weights())
}

func TestEncode_UniformWeights(t *testing.T) {
	info := sphereInfo()
	dv, err := params.DistributionValue([]float64{10, 20, 30, 40}, nil)
	require.NoError(t, err)
	assert.Equal(t, params.KindDistribution, dv.Kind())

	block, err := params.Encode(info, params.Values{"radius": dv})
	require.NoError(t, err)
	p, err := params.Decode(block, info)
	require.NoError(t, err)
	radius, _ := p.Distribution(1)
	assert.Equal(t, []float64{0.25, 0.25, 0.25, 0.25}, radius.Weights())
}

func TestEncode_Errors(t *testing.T) {
	info := sphereInfo()

	_, err := params.Encode(info, params.Values{"nope": params.ScalarValue(1)})
	assert.ErrorIs(t, err, params.ErrUnknownParameter)

	dv, err := params.DistributionValue([]float64{1, 2}, nil)
	require.NoError(t, err)
	_, err = params.Encode(info, params.Values{"scale": dv})
	assert.ErrorIs(t, err, params.ErrShapeMismatch)

	_, err = params.DistributionValue([]float64{1, 2}, []float64{1})
	assert.ErrorIs(t, err, params.ErrLengthMismatch)

	_, err = params.DistributionValue(nil, nil)
	assert.ErrorIs(t, err, params.ErrEmptyDistribution)

	_, err = params.Encode(nil, nil)
	assert.Error(t, err)
}

func TestBuilder_StickyError(t *testing.T) {
	b := params.NewBuilder().
		Scalar(1).
		Distribution([]float64{1, 2}, []float64{1}).
		Scalar(2)
	assert.Equal(t, 1, b.Len(), "entries after the error are ignored")

	_, err := b.Bytes()
	assert.ErrorIs(t, err, params.ErrLengthMismatch)
}

func TestBuilder_DoesNotAliasCallerSlices(t *testing.T) {
	values := []float64{1, 2}
	weights := []float64{0.5, 0.5}
	block, err := params.NewBuilder().Distribution(values, weights).Bytes()
	require.NoError(t, err)
	values[0] = 99

	p, err := params.Decode(block, nil)
	require.NoError(t, err)
	d, _ := p.Distribution(0)
	assert.Equal(t, []float64{1, 2}, d.Values())
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "scalar", params.KindScalar.String())
	assert.Equal(t, "distribution", params.KindDistribution.String())
	assert.Equal(t, "unknown", params.Kind(7).String())
}
