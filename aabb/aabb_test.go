package aabb_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/linmath/aabb"
	"github.com/katalvlaran/linmath/vec"
)

func unitBox() aabb.Aabb3[float64] {
	return aabb.FromMinMax(vec.Zero3[float64](), vec.One3[float64]())
}

func TestTranslate(t *testing.T) {
	b := unitBox()
	b.Translate(vec.New3(1.0, 2.0, 3.0))
	assert.Equal(t, vec.New3(1.0, 2.0, 3.0), b.Min)
	assert.Equal(t, vec.New3(2.0, 3.0, 4.0), b.Max)

	moved := unitBox().Translated(vec.New3(1.0, 2.0, 3.0))
	assert.Equal(t, b, moved)
	// The value form leaves the receiver untouched.
	assert.Equal(t, unitBox(), unitBox())
}

func TestIsRight(t *testing.T) {
	assert.True(t, unitBox().IsRight())
	assert.False(t, unitBox().Inversed().IsRight())

	// A flat box is not right: the ordering is strict.
	flat := aabb.FromMinMax(vec.Zero3[float64](), vec.New3(1.0, 0.0, 1.0))
	assert.False(t, flat.IsRight())
}

func TestInverse(t *testing.T) {
	b := unitBox()
	b.Inverse()
	assert.Equal(t, vec.One3[float64](), b.Min)
	assert.Equal(t, vec.Zero3[float64](), b.Max)
	assert.Equal(t, b, unitBox().Inversed())
	assert.Equal(t, unitBox(), b.Inversed())
}

func TestVolume(t *testing.T) {
	assert.Equal(t, 1.0, unitBox().Volume())
	assert.Equal(t, 24.0, aabb.FromMinMax(vec.Zero3[float64](), vec.New3(2.0, 3.0, 4.0)).Volume())

	// Swapping the corners inverts all three axes, an odd count, so the
	// volume flips sign.
	assert.Equal(t, -1.0, unitBox().Inversed().Volume())

	// Volume is translation invariant.
	assert.Equal(t, 1.0, unitBox().Translated(vec.New3(-5.0, 7.0, 0.5)).Volume())
}

func TestContains(t *testing.T) {
	b := unitBox()

	assert.True(t, b.Contains(vec.New3(0.5, 0.5, 0.5)))
	// Faces and corners are inside.
	assert.True(t, b.Contains(vec.Zero3[float64]()))
	assert.True(t, b.Contains(vec.One3[float64]()))
	assert.True(t, b.Contains(vec.New3(1.0, 0.5, 0.0)))

	assert.False(t, b.Contains(vec.New3(1.5, 0.5, 0.5)))
	assert.False(t, b.Contains(vec.New3(0.5, -0.1, 0.5)))

	// An inverted box contains nothing, not even its center.
	assert.False(t, b.Inversed().Contains(vec.New3(0.5, 0.5, 0.5)))
}

func TestFloat32Box(t *testing.T) {
	b := aabb.FromMinMax(vec.New3[float32](-1, -1, -1), vec.New3[float32](1, 1, 1))
	assert.True(t, b.IsRight())
	assert.Equal(t, float32(8), b.Volume())
	assert.True(t, b.Contains(vec.Zero3[float32]()))
}
