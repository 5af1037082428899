package vec_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linmath/vec"
)

func TestComplexPolar(t *testing.T) {
	c := vec.ComplexFromAngle(math.Pi / 3)
	assert.InDelta(t, 1.0, c.Magnitude(), tol64)
	assert.InDelta(t, math.Pi/3, c.Angle(), tol64)

	mag, ang := vec.NewComplex(3.0, 4.0).MagnitudeAngle()
	assert.InDelta(t, 5.0, mag, tol64)
	assert.InDelta(t, math.Atan2(4, 3), ang, tol64)
}

func TestComplexMulComposesAngles(t *testing.T) {
	a := vec.ComplexFromAngle(0.4)
	b := vec.ComplexFromAngle(0.7)
	assert.InDelta(t, 1.1, a.Mul(b).Angle(), tol64)
}

func TestComplexConjugateReciprocal(t *testing.T) {
	c := vec.NewComplex(2.0, -1.0)
	require.Equal(t, vec.NewComplex(2.0, 1.0), c.Conjugate())

	// c * (1/c) = 1.
	one := c.Mul(c.Reciprocal())
	assert.InDelta(t, 1.0, one.Real, tol64)
	assert.InDelta(t, 0.0, one.Imag, tol64)

	// Division is multiplication by the reciprocal.
	q := vec.NewComplex(4.0, 2.0).Div(c)
	back := q.Mul(c)
	assert.InDelta(t, 4.0, back.Real, tol64)
	assert.InDelta(t, 2.0, back.Imag, tol64)
}

func TestComplexSqrt(t *testing.T) {
	c := vec.NewComplex(3.0, 4.0)
	r1, r2 := c.Sqrt()

	sq := r1.Mul(r1)
	assert.InDelta(t, c.Real, sq.Real, tol64)
	assert.InDelta(t, c.Imag, sq.Imag, tol64)
	assert.Equal(t, r1.Real, -r2.Real)
	assert.Equal(t, r1.Imag, -r2.Imag)
}

func TestComplexExp(t *testing.T) {
	// Euler's identity: e^(iπ) = -1.
	e := vec.NewComplex(0.0, math.Pi).Exp()
	assert.InDelta(t, -1.0, e.Real, tol64)
	assert.InDelta(t, 0.0, e.Imag, tol64)
}

func TestComplexVectorRoundTrip(t *testing.T) {
	v := vec.New2(0.5, -2.0)
	assert.Equal(t, v, v.Complex().Vector2())
}
