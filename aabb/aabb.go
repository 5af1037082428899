package aabb

import (
	"github.com/katalvlaran/linmath/scalar"
	"github.com/katalvlaran/linmath/vec"
)

// Aabb3 is a 3D axis-aligned bounding box spanned by its Min and Max
// corners. The corners are not validated; see IsRight.
type Aabb3[T scalar.Float] struct {
	Min, Max vec.Vector3[T]
}

// FromMinMax creates a bounding box from its corners, as given.
func FromMinMax[T scalar.Float](min, max vec.Vector3[T]) Aabb3[T] {
	return Aabb3[T]{Min: min, Max: max}
}

// Translate moves the box in place by delta.
func (b *Aabb3[T]) Translate(delta vec.Vector3[T]) {
	b.Min = b.Min.Add(delta)
	b.Max = b.Max.Add(delta)
}

// Translated returns a copy of the box moved by delta.
func (b Aabb3[T]) Translated(delta vec.Vector3[T]) Aabb3[T] {
	return FromMinMax(b.Min.Add(delta), b.Max.Add(delta))
}

// IsRight reports whether the corners are properly ordered: Max strictly
// greater than Min on every axis.
func (b Aabb3[T]) IsRight() bool {
	return b.Max.X > b.Min.X && b.Max.Y > b.Min.Y && b.Max.Z > b.Min.Z
}

// Inverse swaps the corners in place.
func (b *Aabb3[T]) Inverse() { b.Min, b.Max = b.Max, b.Min }

// Inversed returns a copy of the box with the corners swapped.
func (b Aabb3[T]) Inversed() Aabb3[T] { return FromMinMax(b.Max, b.Min) }

// Volume returns the product of the box extents. It is negative for boxes
// inverted on an odd number of axes.
func (b Aabb3[T]) Volume() T { return b.Max.Sub(b.Min).Product() }

// Contains reports whether point lies inside the box, faces included.
func (b Aabb3[T]) Contains(point vec.Vector3[T]) bool {
	return point.X >= b.Min.X && point.X <= b.Max.X &&
		point.Y >= b.Min.Y && point.Y <= b.Max.Y &&
		point.Z >= b.Min.Z && point.Z <= b.Max.Z
}
