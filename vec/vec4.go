package vec

import "github.com/katalvlaran/linmath/scalar"

// Vector4 is a 4-dimensional vector. Components are contiguous and
// order-preserving (X, Y, Z, W); see Array for the layout contract.
type Vector4[T scalar.Float] struct {
	X, Y, Z, W T
}

// New4 creates a vector from individual components.
func New4[T scalar.Float](x, y, z, w T) Vector4[T] { return Vector4[T]{X: x, Y: y, Z: z, W: w} }

// Same4 creates a vector with all components equal to val.
func Same4[T scalar.Float](val T) Vector4[T] { return Vector4[T]{X: val, Y: val, Z: val, W: val} }

// Zero4 returns the zero vector.
func Zero4[T scalar.Float]() Vector4[T] { return Vector4[T]{} }

// One4 returns the vector with all components equal to 1.
func One4[T scalar.Float]() Vector4[T] { return Vector4[T]{X: 1, Y: 1, Z: 1, W: 1} }

// UnitX4 returns the positive X axis.
func UnitX4[T scalar.Float]() Vector4[T] { return Vector4[T]{X: 1} }

// UnitY4 returns the positive Y axis.
func UnitY4[T scalar.Float]() Vector4[T] { return Vector4[T]{Y: 1} }

// UnitZ4 returns the positive Z axis.
func UnitZ4[T scalar.Float]() Vector4[T] { return Vector4[T]{Z: 1} }

// UnitW4 returns the positive W axis.
func UnitW4[T scalar.Float]() Vector4[T] { return Vector4[T]{W: 1} }

// Array returns the components as a fixed-size array in declared field order.
func (v Vector4[T]) Array() [4]T { return [4]T{v.X, v.Y, v.Z, v.W} }

// FromArray4 builds a vector from an array in declared field order.
func FromArray4[T scalar.Float](a [4]T) Vector4[T] {
	return Vector4[T]{X: a[0], Y: a[1], Z: a[2], W: a[3]}
}

// Add returns v + o.
func (v Vector4[T]) Add(o Vector4[T]) Vector4[T] {
	return Vector4[T]{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z, W: v.W + o.W}
}

// Sub returns v - o.
func (v Vector4[T]) Sub(o Vector4[T]) Vector4[T] {
	return Vector4[T]{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z, W: v.W - o.W}
}

// Neg returns -v.
func (v Vector4[T]) Neg() Vector4[T] { return Vector4[T]{X: -v.X, Y: -v.Y, Z: -v.Z, W: -v.W} }

// Scale returns the vector with all components multiplied by factor.
func (v Vector4[T]) Scale(factor T) Vector4[T] {
	return Vector4[T]{X: v.X * factor, Y: v.Y * factor, Z: v.Z * factor, W: v.W * factor}
}

// Div returns the vector with all components divided by divisor.
func (v Vector4[T]) Div(divisor T) Vector4[T] {
	return Vector4[T]{X: v.X / divisor, Y: v.Y / divisor, Z: v.Z / divisor, W: v.W / divisor}
}

// Min returns the component-wise minimum of v and o.
func (v Vector4[T]) Min(o Vector4[T]) Vector4[T] {
	return Vector4[T]{
		X: scalar.Min(v.X, o.X),
		Y: scalar.Min(v.Y, o.Y),
		Z: scalar.Min(v.Z, o.Z),
		W: scalar.Min(v.W, o.W),
	}
}

// Max returns the component-wise maximum of v and o.
func (v Vector4[T]) Max(o Vector4[T]) Vector4[T] {
	return Vector4[T]{
		X: scalar.Max(v.X, o.X),
		Y: scalar.Max(v.Y, o.Y),
		Z: scalar.Max(v.Z, o.Z),
		W: scalar.Max(v.W, o.W),
	}
}

// Clamp returns a copy with all components limited to [from, to].
func (v Vector4[T]) Clamp(from, to T) Vector4[T] {
	return Vector4[T]{
		X: scalar.Clamp(v.X, from, to),
		Y: scalar.Clamp(v.Y, from, to),
		Z: scalar.Clamp(v.Z, from, to),
		W: scalar.Clamp(v.W, from, to),
	}
}

// Abs returns a copy with all components made non-negative.
func (v Vector4[T]) Abs() Vector4[T] {
	return Vector4[T]{X: scalar.Abs(v.X), Y: scalar.Abs(v.Y), Z: scalar.Abs(v.Z), W: scalar.Abs(v.W)}
}

// Sum returns the sum of all components.
func (v Vector4[T]) Sum() T { return v.X + v.Y + v.Z + v.W }

// Product returns the product of all components.
func (v Vector4[T]) Product() T { return v.X * v.Y * v.Z * v.W }

// IsZero reports whether every component is below machine epsilon in
// magnitude.
func (v Vector4[T]) IsZero() bool {
	return scalar.IsZero(v.X) && scalar.IsZero(v.Y) && scalar.IsZero(v.Z) && scalar.IsZero(v.W)
}

// Dot computes the dot product of two vectors.
func (v Vector4[T]) Dot(o Vector4[T]) T { return v.X*o.X + v.Y*o.Y + v.Z*o.Z + v.W*o.W }

// SqrMagnitude returns the squared magnitude.
func (v Vector4[T]) SqrMagnitude() T { return v.Dot(v) }

// Magnitude returns the magnitude.
func (v Vector4[T]) Magnitude() T { return scalar.Sqrt(v.SqrMagnitude()) }

// Normalize scales the vector in place to magnitude 1. The zero vector
// normalizes to NaN components.
func (v *Vector4[T]) Normalize() { *v = v.Normalized() }

// Normalized returns a copy scaled to magnitude 1. See Normalize.
func (v Vector4[T]) Normalized() Vector4[T] { return v.Div(v.Magnitude()) }

// DistanceTo computes the distance between two vectors.
func (v Vector4[T]) DistanceTo(o Vector4[T]) T { return o.Sub(v).Magnitude() }

// SqrDistanceTo computes the squared distance between two vectors.
func (v Vector4[T]) SqrDistanceTo(o Vector4[T]) T { return o.Sub(v).SqrMagnitude() }

// Lerp linearly interpolates between v (t=0) and end (t=1).
func (v Vector4[T]) Lerp(end Vector4[T], t T) Vector4[T] {
	return v.Add(end.Sub(v).Scale(t))
}

// Truncate drops the W component, producing a Vector3.
func (v Vector4[T]) Truncate() Vector3[T] { return Vector3[T]{X: v.X, Y: v.Y, Z: v.Z} }
