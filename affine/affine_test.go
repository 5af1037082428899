package affine_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/linmath/affine"
	"github.com/katalvlaran/linmath/quat"
	"github.com/katalvlaran/linmath/vec"
)

const tol64 = 1e-10

func assertVec3InDelta(t *testing.T, want, got vec.Vector3[float64], tol float64) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, tol)
	assert.InDelta(t, want.Y, got.Y, tol)
	assert.InDelta(t, want.Z, got.Z, tol)
}

func TestIdentity(t *testing.T) {
	v := vec.New3(1.0, -2.0, 3.0)
	assert.Equal(t, v, affine.Identity3[float64]().Apply(v))
}

func TestPureConstructors(t *testing.T) {
	v := vec.New3(1.0, 2.0, 3.0)

	assert.Equal(t, vec.New3(11.0, 22.0, 33.0),
		affine.FromTranslation(vec.New3(10.0, 20.0, 30.0)).Apply(v))

	assert.Equal(t, vec.New3(2.0, 6.0, 12.0),
		affine.FromScale(vec.New3(2.0, 3.0, 4.0)).Apply(v))

	q := quat.FromAxisAngle(vec.UnitZ3[float64](), math.Pi/2)
	assertVec3InDelta(t, q.Rotate(v), affine.FromRotation(q).Apply(v), tol64)
}

func TestScaleBeforeRotation(t *testing.T) {
	// The linear part is rotation · scale: scaling acts in local axes
	// before the rotation turns them.
	q := quat.FromAxisAngle(vec.UnitZ3[float64](), math.Pi/2)
	a := affine.FromScaleRotation(vec.New3(2.0, 1.0, 1.0), q)

	// X is doubled first, then carried onto Y.
	assertVec3InDelta(t, vec.New3(0.0, 2.0, 0.0), a.Apply(vec.UnitX3[float64]()), tol64)
}

func TestFullTransform(t *testing.T) {
	q := quat.FromAxisAngle(vec.UnitZ3[float64](), math.Pi/2)
	a := affine.FromScaleRotationTranslation(
		vec.New3(2.0, 2.0, 2.0),
		q,
		vec.New3(10.0, 0.0, 0.0),
	)

	// (1,0,0) → scaled (2,0,0) → rotated (0,2,0) → translated (10,2,0).
	assertVec3InDelta(t, vec.New3(10.0, 2.0, 0.0), a.Apply(vec.UnitX3[float64]()), tol64)

	// Composed pieces agree with the combined constructor.
	b := affine.FromRotationTranslation(q, vec.New3(10.0, 0.0, 0.0))
	assertVec3InDelta(t,
		b.Apply(vec.New3(2.0, 0.0, 0.0)),
		a.Apply(vec.UnitX3[float64]()), tol64)
}

func TestScaleTranslation(t *testing.T) {
	a := affine.FromScaleTranslation(vec.New3(2.0, 3.0, 4.0), vec.New3(1.0, 1.0, 1.0))
	assert.Equal(t, vec.New3(3.0, 7.0, 13.0), a.Apply(vec.New3(1.0, 2.0, 3.0)))
}

func TestMatrix4Agrees(t *testing.T) {
	q := quat.FromAxisAngle(vec.New3(1.0, 2.0, 2.0).Normalized(), 0.9)
	a := affine.FromScaleRotationTranslation(
		vec.New3(2.0, 1.0, 0.5),
		q,
		vec.New3(-1.0, 4.0, 2.5),
	)

	v := vec.New3(0.3, -0.7, 1.1)
	h := a.Matrix4().MulVec(v.Extend(1.0))

	want := a.Apply(v)
	assert.InDelta(t, want.X, h.X, tol64)
	assert.InDelta(t, want.Y, h.Y, tol64)
	assert.InDelta(t, want.Z, h.Z, tol64)
	assert.InDelta(t, 1.0, h.W, tol64)
}
