package numeric_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"oss.terrastruct.com/shapes/lib/numeric"
)

type meters float32

func TestValidate(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		in   interface{}
		exp  float64
		kind numeric.Kind
	}{
		{name: "int", in: 8, exp: 8},
		{name: "negative_int", in: -3, exp: -3},
		{name: "uint8", in: uint8(200), exp: 200},
		{name: "float64", in: 2.5, exp: 2.5},
		{name: "float32", in: float32(0.5), exp: 0.5},
		{name: "named_float", in: meters(4), exp: 4},
		{name: "zero", in: 0, exp: 0},
		{name: "true", in: true, kind: numeric.TypeKind},
		{name: "false", in: false, kind: numeric.TypeKind},
		{name: "string", in: "8", kind: numeric.TypeKind},
		{name: "nil", in: nil, kind: numeric.TypeKind},
		{name: "slice", in: []float64{1}, kind: numeric.TypeKind},
		{name: "nan", in: math.NaN(), kind: numeric.TypeKind},
		{name: "inf", in: math.Inf(-1), kind: numeric.TypeKind},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := numeric.Validate(tc.in)
			if tc.kind != 0 {
				assert.Error(t, err)
				assert.Equal(t, tc.kind, numeric.KindOf(err))
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.exp, got)
		})
	}
}

func TestDomainChecks(t *testing.T) {
	t.Parallel()

	_, err := numeric.NonNegative("radius", 0)
	assert.NoError(t, err)

	_, err = numeric.NonNegative("radius", -0.1)
	assert.True(t, errors.Is(err, numeric.ErrValue))
	assert.False(t, errors.Is(err, numeric.ErrType))
	assert.Equal(t, "radius cannot be negative", err.Error())

	_, err = numeric.Positive("side", 0)
	assert.True(t, errors.Is(err, numeric.ErrValue))
	assert.Equal(t, "side must be larger than zero", err.Error())

	_, err = numeric.Positive("side", true)
	assert.True(t, errors.Is(err, numeric.ErrType))
	assert.Equal(t, "side can't be bool", err.Error())

	f, err := numeric.Positive("side", 1e-12)
	assert.NoError(t, err)
	assert.Equal(t, 1e-12, f)
}

func TestParse(t *testing.T) {
	t.Parallel()

	f, err := numeric.Parse("side", " 2.5 ")
	assert.NoError(t, err)
	assert.Equal(t, 2.5, f)

	for _, s := range []string{"True", "false", "abc", "", "NaN", "inf"} {
		_, err := numeric.Parse("side", s)
		assert.Equal(t, numeric.TypeKind, numeric.KindOf(err), s)
	}
}

func TestClose(t *testing.T) {
	t.Parallel()

	assert.True(t, numeric.Close(1.0, 1.0000001))
	assert.True(t, numeric.Close(0.0, 1e-10))
	assert.True(t, numeric.Close(float32(5), float32(5)))
	assert.False(t, numeric.Close(1.0, 1.001))
	assert.False(t, numeric.Close(0.0, 1e-6))
	assert.False(t, numeric.Close(math.Inf(1), 1e308))
	assert.False(t, numeric.Close(math.NaN(), math.NaN()))
}

func TestKindString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "TypeKind", numeric.TypeKind.String())
	assert.Equal(t, "ValueKind", numeric.ValueKind.String())
	assert.Equal(t, numeric.Kind(0), numeric.KindOf(errors.New("other")))
}
