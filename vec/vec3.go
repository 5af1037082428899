package vec

import "github.com/katalvlaran/linmath/scalar"

// Vector3 is a 3-dimensional vector. Components are contiguous and
// order-preserving (X, Y, Z); see Array for the layout contract.
type Vector3[T scalar.Float] struct {
	X, Y, Z T
}

// New3 creates a vector from individual components.
func New3[T scalar.Float](x, y, z T) Vector3[T] { return Vector3[T]{X: x, Y: y, Z: z} }

// Same3 creates a vector with all components equal to val.
func Same3[T scalar.Float](val T) Vector3[T] { return Vector3[T]{X: val, Y: val, Z: val} }

// Zero3 returns the zero vector.
func Zero3[T scalar.Float]() Vector3[T] { return Vector3[T]{} }

// One3 returns the vector with all components equal to 1.
func One3[T scalar.Float]() Vector3[T] { return Vector3[T]{X: 1, Y: 1, Z: 1} }

// UnitX3 returns the positive X axis.
func UnitX3[T scalar.Float]() Vector3[T] { return Vector3[T]{X: 1} }

// UnitY3 returns the positive Y axis.
func UnitY3[T scalar.Float]() Vector3[T] { return Vector3[T]{Y: 1} }

// UnitZ3 returns the positive Z axis.
func UnitZ3[T scalar.Float]() Vector3[T] { return Vector3[T]{Z: 1} }

// Array returns the components as a fixed-size array in declared field order.
func (v Vector3[T]) Array() [3]T { return [3]T{v.X, v.Y, v.Z} }

// FromArray3 builds a vector from an array in declared field order.
func FromArray3[T scalar.Float](a [3]T) Vector3[T] { return Vector3[T]{X: a[0], Y: a[1], Z: a[2]} }

// Add returns v + o.
func (v Vector3[T]) Add(o Vector3[T]) Vector3[T] {
	return Vector3[T]{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// Sub returns v - o.
func (v Vector3[T]) Sub(o Vector3[T]) Vector3[T] {
	return Vector3[T]{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

// Neg returns -v.
func (v Vector3[T]) Neg() Vector3[T] { return Vector3[T]{X: -v.X, Y: -v.Y, Z: -v.Z} }

// Scale returns the vector with all components multiplied by factor.
func (v Vector3[T]) Scale(factor T) Vector3[T] {
	return Vector3[T]{X: v.X * factor, Y: v.Y * factor, Z: v.Z * factor}
}

// Div returns the vector with all components divided by divisor.
func (v Vector3[T]) Div(divisor T) Vector3[T] {
	return Vector3[T]{X: v.X / divisor, Y: v.Y / divisor, Z: v.Z / divisor}
}

// Min returns the component-wise minimum of v and o.
func (v Vector3[T]) Min(o Vector3[T]) Vector3[T] {
	return Vector3[T]{X: scalar.Min(v.X, o.X), Y: scalar.Min(v.Y, o.Y), Z: scalar.Min(v.Z, o.Z)}
}

// Max returns the component-wise maximum of v and o.
func (v Vector3[T]) Max(o Vector3[T]) Vector3[T] {
	return Vector3[T]{X: scalar.Max(v.X, o.X), Y: scalar.Max(v.Y, o.Y), Z: scalar.Max(v.Z, o.Z)}
}

// Clamp returns a copy with all components limited to [from, to].
func (v Vector3[T]) Clamp(from, to T) Vector3[T] {
	return Vector3[T]{
		X: scalar.Clamp(v.X, from, to),
		Y: scalar.Clamp(v.Y, from, to),
		Z: scalar.Clamp(v.Z, from, to),
	}
}

// Abs returns a copy with all components made non-negative.
func (v Vector3[T]) Abs() Vector3[T] {
	return Vector3[T]{X: scalar.Abs(v.X), Y: scalar.Abs(v.Y), Z: scalar.Abs(v.Z)}
}

// Sum returns the sum of all components.
func (v Vector3[T]) Sum() T { return v.X + v.Y + v.Z }

// Product returns the product of all components.
func (v Vector3[T]) Product() T { return v.X * v.Y * v.Z }

// IsZero reports whether every component is below machine epsilon in
// magnitude.
func (v Vector3[T]) IsZero() bool {
	return scalar.IsZero(v.X) && scalar.IsZero(v.Y) && scalar.IsZero(v.Z)
}

// Dot computes the dot product of two vectors.
func (v Vector3[T]) Dot(o Vector3[T]) T { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

// Cross computes the cross product: a vector perpendicular to both v and o.
func (v Vector3[T]) Cross(o Vector3[T]) Vector3[T] {
	return Vector3[T]{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// Triple computes the triple product v · (b × c), the signed volume of the
// parallelepiped spanned by the three vectors.
func (v Vector3[T]) Triple(b, c Vector3[T]) T { return v.Dot(b.Cross(c)) }

// SqrMagnitude returns the squared magnitude.
func (v Vector3[T]) SqrMagnitude() T { return v.Dot(v) }

// Magnitude returns the magnitude.
func (v Vector3[T]) Magnitude() T { return scalar.Sqrt(v.SqrMagnitude()) }

// Normalize scales the vector in place to magnitude 1. The zero vector
// normalizes to NaN components.
func (v *Vector3[T]) Normalize() { *v = v.Normalized() }

// Normalized returns a copy scaled to magnitude 1. See Normalize.
func (v Vector3[T]) Normalized() Vector3[T] { return v.Div(v.Magnitude()) }

// DotNormalized computes the dot product of both vectors normalized
// beforehand.
func (v Vector3[T]) DotNormalized(o Vector3[T]) T { return v.Normalized().Dot(o.Normalized()) }

// AngleTo returns the angle in radians between two vectors, range [0, π].
func (v Vector3[T]) AngleTo(o Vector3[T]) T { return scalar.Acos(v.DotNormalized(o)) }

// DistanceTo computes the distance between two vectors.
func (v Vector3[T]) DistanceTo(o Vector3[T]) T { return o.Sub(v).Magnitude() }

// SqrDistanceTo computes the squared distance between two vectors.
func (v Vector3[T]) SqrDistanceTo(o Vector3[T]) T { return o.Sub(v).SqrMagnitude() }

// Lerp linearly interpolates between v (t=0) and end (t=1).
func (v Vector3[T]) Lerp(end Vector3[T], t T) Vector3[T] {
	return v.Add(end.Sub(v).Scale(t))
}

// InvLerp is the inverse of Lerp: it projects p onto the segment direction.
func (v Vector3[T]) InvLerp(end, p Vector3[T]) T {
	return p.Sub(v).Dot(end.Sub(v))
}

// Nlerp returns the normalized linear interpolation between two vectors.
func (v Vector3[T]) Nlerp(end Vector3[T], t T) Vector3[T] {
	return v.Lerp(end, t).Normalized()
}

// Slerp spherically interpolates between two vectors. Parallel inputs make
// the interpolation angle zero and the result NaN.
func (v Vector3[T]) Slerp(end Vector3[T], t T) Vector3[T] {
	omega := scalar.Acos(v.DotNormalized(end))
	sin := scalar.Sin(omega)

	return v.Scale(scalar.Sin((1 - t) * omega) / sin).
		Add(end.Scale(scalar.Sin(t*omega) / sin))
}

// ProjectOnto projects the vector in place onto axis.
func (v *Vector3[T]) ProjectOnto(axis Vector3[T]) { *v = v.ProjectedOnto(axis) }

// ProjectedOnto returns the projection of the vector onto axis; the result
// is collinear with axis.
func (v Vector3[T]) ProjectedOnto(axis Vector3[T]) Vector3[T] {
	an := axis.Normalized()

	return an.Scale(v.Dot(an))
}

// Extend appends a W component, producing a Vector4.
func (v Vector3[T]) Extend(w T) Vector4[T] { return Vector4[T]{X: v.X, Y: v.Y, Z: v.Z, W: w} }

// Truncate drops the Z component, producing a Vector2.
func (v Vector3[T]) Truncate() Vector2[T] { return Vector2[T]{X: v.X, Y: v.Y} }
