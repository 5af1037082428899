package mat_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linmath/mat"
	"github.com/katalvlaran/linmath/vec"
)

const (
	tol32 = 1e-5
	tol64 = 1e-10
)

func assertMatrix3InDelta(t *testing.T, want, got mat.Matrix3[float64], tol float64) {
	t.Helper()
	w, g := want.Array(), got.Array()
	for i := range w {
		assert.InDelta(t, w[i], g[i], tol, "element %d", i)
	}
}

func TestMatrixConstructors(t *testing.T) {
	m := mat.New2(1.0, 2.0, 3.0, 4.0)
	require.Equal(t, m, mat.FromRows2(vec.New2(1.0, 2.0), vec.New2(3.0, 4.0)))
	require.Equal(t, m, mat.FromColumns2(vec.New2(1.0, 3.0), vec.New2(2.0, 4.0)))
	require.Equal(t, m, mat.FromArray2(m.Array()))

	assert.Equal(t, mat.New2(1.0, 0.0, 0.0, 1.0), mat.Identity2[float64]())
	assert.Equal(t, mat.New2(1.0, 1.0, 1.0, 1.0), mat.One2[float64]())
	assert.Equal(t, 1, mat.One3[float64]().Rank())
	assert.Equal(t, mat.New2(2.0, 0.0, 0.0, 3.0), mat.Diagonal2(vec.New2(2.0, 3.0)))
	assert.Equal(t, mat.Diagonal3(vec.New3(2.0, 3.0, 4.0)), mat.Scaling3(vec.New3(2.0, 3.0, 4.0)))

	m3 := mat.New3(1.0, 2.0, 3.0, 4.0, 5.0, 6.0, 7.0, 8.0, 9.0)
	require.Equal(t, m3, mat.FromArray3(m3.Array()))

	m4 := mat.Identity4[float64]()
	require.Equal(t, m4, mat.FromArray4(m4.Array()))
}

func TestRowColumnAccess(t *testing.T) {
	m := mat.New3(1.0, 2.0, 3.0, 4.0, 5.0, 6.0, 7.0, 8.0, 9.0)

	assert.Equal(t, vec.New3(4.0, 5.0, 6.0), m.Row(1))
	assert.Equal(t, vec.New3(2.0, 5.0, 8.0), m.Column(1))
	assert.Equal(t, vec.New3(1.0, 5.0, 9.0), m.Diagonal())
	assert.Equal(t, 15.0, m.Trace())

	m.SetRow(0, vec.New3(-1.0, -2.0, -3.0))
	assert.Equal(t, vec.New3(-1.0, -2.0, -3.0), m.Row1)

	m.SetColumn(2, vec.New3(0.0, 0.0, 0.0))
	assert.Equal(t, vec.New3(0.0, 0.0, 0.0), m.Column(2))

	m.SetDiagonal(vec.New3(1.0, 1.0, 1.0))
	assert.Equal(t, vec.New3(1.0, 1.0, 1.0), m.Diagonal())

	assert.PanicsWithValue(t, "mat: row index out of range", func() { m.Row(3) })
	assert.PanicsWithValue(t, "mat: column index out of range", func() { m.Column(-1) })
	assert.PanicsWithValue(t, "mat: row index out of range", func() { m.SetRow(5, vec.Zero3[float64]()) })
}

func TestArithmetic(t *testing.T) {
	a := mat.New2(1.0, 2.0, 3.0, 4.0)
	b := mat.New2(5.0, 6.0, 7.0, 8.0)

	assert.Equal(t, mat.New2(6.0, 8.0, 10.0, 12.0), a.Add(b))
	assert.Equal(t, mat.New2(-4.0, -4.0, -4.0, -4.0), a.Sub(b))
	assert.Equal(t, mat.New2(-1.0, -2.0, -3.0, -4.0), a.Neg())
	assert.Equal(t, mat.New2(2.0, 4.0, 6.0, 8.0), a.Scale(2))
	assert.Equal(t, mat.New2(0.5, 1.0, 1.5, 2.0), a.Div(2))
}

func TestMatrixProduct(t *testing.T) {
	a := mat.New2(1.0, 2.0, 3.0, 4.0)
	b := mat.New2(5.0, 6.0, 7.0, 8.0)

	assert.Equal(t, mat.New2(19.0, 22.0, 43.0, 50.0), a.Mul(b))
	assert.Equal(t, a, a.Mul(mat.Identity2[float64]()))
	assert.Equal(t, a, mat.Identity2[float64]().Mul(a))

	assert.Equal(t, vec.New2(5.0, 11.0), a.MulVec(vec.New2(1.0, 2.0)))
}

func TestTranspose(t *testing.T) {
	m := mat.New3(1.0, 2.0, 3.0, 4.0, 5.0, 6.0, 7.0, 8.0, 9.0)
	mt := m.Transposed()
	assert.Equal(t, m.Column(0), mt.Row1)
	assert.Equal(t, m, mt.Transposed())

	m.Transpose()
	assert.Equal(t, mt, m)
}

func TestRotation2(t *testing.T) {
	v := mat.Rotation2(math.Pi / 2).MulVec(vec.New2(1.0, 0.0))
	assert.InDelta(t, 0.0, v.X, tol64)
	assert.InDelta(t, 1.0, v.Y, tol64)

	// A unit complex number and its rotation matrix agree.
	c := vec.ComplexFromAngle(0.6)
	assert.Equal(t, mat.Rotation2(0.6), mat.FromComplex2(c))
}

func TestRotation3Axes(t *testing.T) {
	x := vec.UnitX3[float64]()

	v := mat.RotationZ3(math.Pi / 2).MulVec(x)
	assert.InDelta(t, 0.0, v.X, tol64)
	assert.InDelta(t, 1.0, v.Y, tol64)
	assert.InDelta(t, 0.0, v.Z, tol64)

	v = mat.RotationY3(math.Pi / 2).MulVec(x)
	assert.InDelta(t, 0.0, v.X, tol64)
	assert.InDelta(t, -1.0, v.Z, tol64)

	v = mat.RotationX3(math.Pi / 2).MulVec(vec.UnitY3[float64]())
	assert.InDelta(t, 1.0, v.Z, tol64)
}

func TestRotationComposition(t *testing.T) {
	const z, x, y = 0.3, 0.5, 0.7
	v := vec.New3(1.0, 0.5, -0.3)

	// Composite constructors must match applying the component rotations in
	// their documented order.
	seq := mat.RotationY3(y).MulVec(mat.RotationX3(x).MulVec(mat.RotationZ3(z).MulVec(v)))
	got := mat.RotationZXY3(z, x, y).MulVec(v)
	assert.InDelta(t, seq.X, got.X, tol64)
	assert.InDelta(t, seq.Y, got.Y, tol64)
	assert.InDelta(t, seq.Z, got.Z, tol64)

	assertMatrix3InDelta(t, mat.RotationY3(y).Mul(mat.RotationX3(x)), mat.RotationXY3(x, y), tol64)
	assertMatrix3InDelta(t, mat.RotationX3(x).Mul(mat.RotationZ3(z)), mat.RotationZX3(z, x), tol64)
	assertMatrix3InDelta(t, mat.RotationY3(y).Mul(mat.RotationZ3(z)), mat.RotationZY3(z, y), tol64)
}

func TestAxisAngleRoundTrip(t *testing.T) {
	axis := vec.New3(1.0, 2.0, 2.0).Normalized()
	const angle = 0.9

	m := mat.FromAxisAngle3(axis, angle)
	gotAxis, gotAngle := m.ToAxisAngle()

	assert.InDelta(t, angle, gotAngle, tol64)
	assert.InDelta(t, axis.X, gotAxis.X, tol64)
	assert.InDelta(t, axis.Y, gotAxis.Y, tol64)
	assert.InDelta(t, axis.Z, gotAxis.Z, tol64)

	// Axis-angle around a base axis matches the dedicated constructor.
	assertMatrix3InDelta(t, mat.RotationZ3(angle), mat.FromAxisAngle3(vec.UnitZ3[float64](), angle), tol64)
}

func TestRotationAxisDegenerate(t *testing.T) {
	// The identity rotates by zero around no axis; extraction divides by a
	// zero magnitude and yields NaN, it is not corrected.
	axis := mat.Identity3[float64]().RotationAxis()
	assert.True(t, math.IsNaN(axis.X))
	assert.InDelta(t, 0.0, mat.Identity3[float64]().RotationAngle(), tol64)
}

func TestTranslation4(t *testing.T) {
	m := mat.Translation4(vec.New3(1.0, 2.0, 3.0))

	p := m.MulVec(vec.New4(10.0, 20.0, 30.0, 1.0))
	assert.Equal(t, vec.New4(11.0, 22.0, 33.0, 1.0), p)

	// Directions (w = 0) are unaffected by translation.
	d := m.MulVec(vec.New4(1.0, 0.0, 0.0, 0.0))
	assert.Equal(t, vec.New4(1.0, 0.0, 0.0, 0.0), d)
}

func TestExtendTruncate(t *testing.T) {
	m2 := mat.New2(1.0, 2.0, 3.0, 4.0)
	m3 := m2.Extend(vec.New2(5.0, 6.0), vec.New2(7.0, 8.0), 9.0)
	require.Equal(t, mat.New3(1.0, 2.0, 7.0, 3.0, 4.0, 8.0, 5.0, 6.0, 9.0), m3)
	assert.Equal(t, m2, m3.Truncate())

	m4 := m3.Extend(vec.Zero3[float64](), vec.Zero3[float64](), 1.0)
	assert.Equal(t, m3, m4.Truncate())
	assert.Equal(t, vec.New4(0.0, 0.0, 0.0, 1.0), m4.Row4)
}

func TestSwapRows(t *testing.T) {
	m := mat.New2(1.0, 2.0, 3.0, 4.0)
	m.SwapRows(0, 1)
	assert.Equal(t, mat.New2(3.0, 4.0, 1.0, 2.0), m)

	assert.PanicsWithValue(t, "mat: rows must differ", func() { m.SwapRows(1, 1) })
	assert.PanicsWithValue(t, "mat: row index out of range", func() { m.SwapRows(0, 2) })
}
