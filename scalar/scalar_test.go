package scalar_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linmath/scalar"
)

func TestEpsilonPerPrecision(t *testing.T) {
	// float32 machine epsilon is 2^-23, float64 is 2^-52.
	assert.Equal(t, float32(math.Ldexp(1, -23)), scalar.Epsilon[float32]())
	assert.Equal(t, math.Ldexp(1, -52), scalar.Epsilon[float64]())
}

func TestConstants(t *testing.T) {
	assert.Equal(t, 0.0, scalar.Zero[float64]())
	assert.Equal(t, 1.0, scalar.One[float64]())
	assert.Equal(t, 2.0, scalar.Two[float64]())
	assert.Equal(t, math.Pi, scalar.Pi[float64]())
	assert.Equal(t, float32(math.Pi), scalar.Pi[float32]())
}

func TestAbsSignum(t *testing.T) {
	assert.Equal(t, 1.5, scalar.Abs(-1.5))
	assert.Equal(t, 1.5, scalar.Abs(1.5))
	assert.Equal(t, 1.0, scalar.Signum(42.0))
	assert.Equal(t, -1.0, scalar.Signum(-0.25))
	assert.True(t, scalar.IsNaN(scalar.Signum(math.NaN())))
}

func TestClamp(t *testing.T) {
	for _, tc := range []struct {
		name             string
		x, from, to, out float64
	}{
		{"below", -2, -1, 1, -1},
		{"inside", 0.5, -1, 1, 0.5},
		{"above", 7, -1, 1, 1},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.out, scalar.Clamp(tc.x, tc.from, tc.to))
		})
	}
}

func TestMinMax(t *testing.T) {
	assert.Equal(t, -3.0, scalar.Min(-3.0, 2.0))
	assert.Equal(t, 2.0, scalar.Max(-3.0, 2.0))
}

func TestAngleUnits(t *testing.T) {
	assert.InDelta(t, math.Pi, scalar.ToRadians(180.0), 1e-12)
	assert.InDelta(t, 180.0, scalar.ToDegrees(math.Pi), 1e-12)

	// Round trip at float32 precision.
	deg := float32(73)
	assert.InDelta(t, float64(deg), float64(scalar.ToDegrees(scalar.ToRadians(deg))), 1e-4)
}

func TestIsZero(t *testing.T) {
	require.True(t, scalar.IsZero(0.0))
	assert.True(t, scalar.IsZero(scalar.Epsilon[float64]()/2))
	assert.False(t, scalar.IsZero(scalar.Epsilon[float64]()))
	// A value negligible at float32 precision is not negligible at float64.
	assert.True(t, scalar.IsZero(float32(1e-8)))
	assert.False(t, scalar.IsZero(1e-8))
}

func TestEqual(t *testing.T) {
	assert.True(t, scalar.Equal(1.0, 1.0+1e-12, 1e-10))
	assert.True(t, scalar.Equal(1.0, 1.0, 0.0))
	assert.False(t, scalar.Equal(1.0, 1.1, 1e-10))
	assert.True(t, scalar.Equal[float32](1, 1.000001, 1e-5))
}

func TestTrigForwards(t *testing.T) {
	assert.InDelta(t, 1.0, scalar.Sin(math.Pi/2), 1e-12)
	assert.InDelta(t, -1.0, scalar.Cos(math.Pi), 1e-12)
	assert.InDelta(t, math.Pi/2, scalar.Atan2(1.0, 0.0), 1e-12)
	assert.InDelta(t, math.Pi/2, scalar.Asin(1.0), 1e-12)
	assert.InDelta(t, 0.0, scalar.Acos(1.0), 1e-12)
	assert.True(t, scalar.IsNaN(scalar.Asin(1.0+1e-9)))
	assert.InDelta(t, 3.0, scalar.Sqrt(9.0), 1e-12)
	assert.InDelta(t, 1.0, scalar.Ln(math.E), 1e-12)
	assert.InDelta(t, math.E, scalar.Exp(1.0), 1e-12)
}
