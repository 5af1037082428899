package vec

import "github.com/katalvlaran/linmath/scalar"

// Vector2 is a 2-dimensional vector. Components are contiguous and
// order-preserving (X then Y); see Array for the layout contract.
type Vector2[T scalar.Float] struct {
	X, Y T
}

// New2 creates a vector from individual components.
func New2[T scalar.Float](x, y T) Vector2[T] { return Vector2[T]{X: x, Y: y} }

// Same2 creates a vector with both components equal to val.
func Same2[T scalar.Float](val T) Vector2[T] { return Vector2[T]{X: val, Y: val} }

// Zero2 returns the zero vector.
func Zero2[T scalar.Float]() Vector2[T] { return Vector2[T]{} }

// One2 returns the vector with all components equal to 1.
func One2[T scalar.Float]() Vector2[T] { return Vector2[T]{X: 1, Y: 1} }

// UnitX2 returns the positive X axis.
func UnitX2[T scalar.Float]() Vector2[T] { return Vector2[T]{X: 1} }

// UnitY2 returns the positive Y axis.
func UnitY2[T scalar.Float]() Vector2[T] { return Vector2[T]{Y: 1} }

// Array returns the components as a fixed-size array in declared field
// order. Together with FromArray2 it forms the raw component layout used for
// buffer upload.
func (v Vector2[T]) Array() [2]T { return [2]T{v.X, v.Y} }

// FromArray2 builds a vector from an array in declared field order.
func FromArray2[T scalar.Float](a [2]T) Vector2[T] { return Vector2[T]{X: a[0], Y: a[1]} }

// Add returns v + o.
func (v Vector2[T]) Add(o Vector2[T]) Vector2[T] { return Vector2[T]{X: v.X + o.X, Y: v.Y + o.Y} }

// Sub returns v - o.
func (v Vector2[T]) Sub(o Vector2[T]) Vector2[T] { return Vector2[T]{X: v.X - o.X, Y: v.Y - o.Y} }

// Neg returns -v.
func (v Vector2[T]) Neg() Vector2[T] { return Vector2[T]{X: -v.X, Y: -v.Y} }

// Scale returns the vector with all components multiplied by factor.
func (v Vector2[T]) Scale(factor T) Vector2[T] {
	return Vector2[T]{X: v.X * factor, Y: v.Y * factor}
}

// Div returns the vector with all components divided by divisor.
func (v Vector2[T]) Div(divisor T) Vector2[T] {
	return Vector2[T]{X: v.X / divisor, Y: v.Y / divisor}
}

// Min returns the component-wise minimum of v and o.
func (v Vector2[T]) Min(o Vector2[T]) Vector2[T] {
	return Vector2[T]{X: scalar.Min(v.X, o.X), Y: scalar.Min(v.Y, o.Y)}
}

// Max returns the component-wise maximum of v and o.
func (v Vector2[T]) Max(o Vector2[T]) Vector2[T] {
	return Vector2[T]{X: scalar.Max(v.X, o.X), Y: scalar.Max(v.Y, o.Y)}
}

// Clamp returns a copy with all components limited to [from, to].
func (v Vector2[T]) Clamp(from, to T) Vector2[T] {
	return Vector2[T]{X: scalar.Clamp(v.X, from, to), Y: scalar.Clamp(v.Y, from, to)}
}

// Abs returns a copy with all components made non-negative.
func (v Vector2[T]) Abs() Vector2[T] { return Vector2[T]{X: scalar.Abs(v.X), Y: scalar.Abs(v.Y)} }

// Sum returns the sum of all components.
func (v Vector2[T]) Sum() T { return v.X + v.Y }

// Product returns the product of all components.
func (v Vector2[T]) Product() T { return v.X * v.Y }

// IsZero reports whether every component is below machine epsilon in
// magnitude.
func (v Vector2[T]) IsZero() bool { return scalar.IsZero(v.X) && scalar.IsZero(v.Y) }

// Dot computes the dot (scalar) product of two vectors. For two normalized
// vectors it equals the cosine of the angle between them.
func (v Vector2[T]) Dot(o Vector2[T]) T { return v.X*o.X + v.Y*o.Y }

// SqrMagnitude returns the squared magnitude.
func (v Vector2[T]) SqrMagnitude() T { return v.Dot(v) }

// Magnitude returns the magnitude.
func (v Vector2[T]) Magnitude() T { return scalar.Sqrt(v.SqrMagnitude()) }

// Normalize scales the vector in place to magnitude 1. The zero vector
// normalizes to NaN components.
func (v *Vector2[T]) Normalize() { *v = v.Normalized() }

// Normalized returns a copy scaled to magnitude 1. See Normalize.
func (v Vector2[T]) Normalized() Vector2[T] { return v.Div(v.Magnitude()) }

// DotNormalized computes the dot product of both vectors normalized
// beforehand.
func (v Vector2[T]) DotNormalized(o Vector2[T]) T { return v.Normalized().Dot(o.Normalized()) }

// AngleTo returns the angle in radians between two vectors, range [0, π].
func (v Vector2[T]) AngleTo(o Vector2[T]) T { return scalar.Acos(v.DotNormalized(o)) }

// ArcAngleTo returns the angle between two vectors measured counter-
// clockwise along the circle arc from v to o, range [0, 2π).
func (v Vector2[T]) ArcAngleTo(o Vector2[T]) T {
	v1, v2 := v.Normalized(), o.Normalized()

	dot := v1.Dot(v2)
	det := v1.X*v2.Y - v1.Y*v2.X

	ang := scalar.Atan2(det, dot)
	if ang < 0 {
		ang += scalar.Two[T]() * scalar.Pi[T]()
	}

	return ang
}

// DistanceTo computes the distance between two vectors.
func (v Vector2[T]) DistanceTo(o Vector2[T]) T { return o.Sub(v).Magnitude() }

// SqrDistanceTo computes the squared distance between two vectors.
func (v Vector2[T]) SqrDistanceTo(o Vector2[T]) T { return o.Sub(v).SqrMagnitude() }

// Lerp linearly interpolates between v (t=0) and end (t=1).
func (v Vector2[T]) Lerp(end Vector2[T], t T) Vector2[T] {
	return v.Add(end.Sub(v).Scale(t))
}

// InvLerp is the inverse of Lerp: it projects p onto the segment direction.
func (v Vector2[T]) InvLerp(end, p Vector2[T]) T {
	return p.Sub(v).Dot(end.Sub(v))
}

// Nlerp returns the normalized linear interpolation between two vectors.
func (v Vector2[T]) Nlerp(end Vector2[T], t T) Vector2[T] {
	return v.Lerp(end, t).Normalized()
}

// Slerp spherically interpolates between two vectors. Parallel inputs make
// the interpolation angle zero and the result NaN.
func (v Vector2[T]) Slerp(end Vector2[T], t T) Vector2[T] {
	omega := scalar.Acos(v.DotNormalized(end))
	sin := scalar.Sin(omega)

	return v.Scale(scalar.Sin((1 - t) * omega) / sin).
		Add(end.Scale(scalar.Sin(t*omega) / sin))
}

// ProjectOnto projects the vector in place onto axis; the result is
// collinear with axis.
func (v *Vector2[T]) ProjectOnto(axis Vector2[T]) { *v = v.ProjectedOnto(axis) }

// ProjectedOnto returns the projection of the vector onto axis.
func (v Vector2[T]) ProjectedOnto(axis Vector2[T]) Vector2[T] {
	an := axis.Normalized()

	return an.Scale(v.Dot(an))
}

// Extend appends a Z component, producing a Vector3.
func (v Vector2[T]) Extend(z T) Vector3[T] { return Vector3[T]{X: v.X, Y: v.Y, Z: z} }

// Complex reinterprets the vector as a complex number with Real = X and
// Imag = Y.
func (v Vector2[T]) Complex() Complex[T] { return Complex[T]{Real: v.X, Imag: v.Y} }

// MulComplex multiplies the vector by a complex number, rotating (and
// scaling) it around the origin.
func (v Vector2[T]) MulComplex(c Complex[T]) Vector2[T] {
	return Vector2[T]{
		X: v.X*c.Real - v.Y*c.Imag,
		Y: v.X*c.Imag + v.Y*c.Real,
	}
}

// RotateBy rotates the vector in place around the origin by angle radians
// counter-clockwise.
func (v *Vector2[T]) RotateBy(angle T) { *v = v.RotatedBy(angle) }

// RotatedBy returns a copy rotated around the origin by angle radians
// counter-clockwise.
func (v Vector2[T]) RotatedBy(angle T) Vector2[T] {
	return v.MulComplex(ComplexFromAngle(angle))
}

// RotateByClockwise rotates the vector in place by angle radians clockwise.
func (v *Vector2[T]) RotateByClockwise(angle T) { *v = v.RotatedByClockwise(angle) }

// RotatedByClockwise returns a copy rotated by angle radians clockwise.
func (v Vector2[T]) RotatedByClockwise(angle T) Vector2[T] {
	return v.MulComplex(ComplexFromAngle(angle).Conjugate())
}
