package quat

import "github.com/katalvlaran/linmath/scalar"

// Radians tags an Euler triple whose angles are radians.
type Radians struct{}

// Degrees tags an Euler triple whose angles are degrees.
type Degrees struct{}

// Unit constrains the angle-unit tag of an Euler triple.
type Unit interface{ Radians | Degrees }

// Euler is a yaw/pitch/roll triple of angles carrying its unit in the type
// parameter U. The unit is a phantom tag: it occupies no storage and exists
// only so that mixing radian and degree triples fails to compile. Yaw
// rotates around Z, Pitch around X, Roll around Y; rotations apply pitch
// first, then roll, then yaw.
type Euler[U Unit, T scalar.Float] struct {
	Yaw, Pitch, Roll T
}

// NewRadians creates a radian Euler triple.
func NewRadians[T scalar.Float](yaw, pitch, roll T) Euler[Radians, T] {
	return Euler[Radians, T]{Yaw: yaw, Pitch: pitch, Roll: roll}
}

// NewDegrees creates a degree Euler triple.
func NewDegrees[T scalar.Float](yaw, pitch, roll T) Euler[Degrees, T] {
	return Euler[Degrees, T]{Yaw: yaw, Pitch: pitch, Roll: roll}
}

// ToDegrees converts a radian triple to degrees. It is a free function
// because Go does not allow methods on a single instantiation of a generic
// type.
func ToDegrees[T scalar.Float](e Euler[Radians, T]) Euler[Degrees, T] {
	return Euler[Degrees, T]{
		Yaw:   scalar.ToDegrees(e.Yaw),
		Pitch: scalar.ToDegrees(e.Pitch),
		Roll:  scalar.ToDegrees(e.Roll),
	}
}

// ToRadians converts a degree triple to radians.
func ToRadians[T scalar.Float](e Euler[Degrees, T]) Euler[Radians, T] {
	return Euler[Radians, T]{
		Yaw:   scalar.ToRadians(e.Yaw),
		Pitch: scalar.ToRadians(e.Pitch),
		Roll:  scalar.ToRadians(e.Roll),
	}
}

// Add returns the component-wise sum. Both operands carry the same unit by
// construction.
func (e Euler[U, T]) Add(o Euler[U, T]) Euler[U, T] {
	return Euler[U, T]{Yaw: e.Yaw + o.Yaw, Pitch: e.Pitch + o.Pitch, Roll: e.Roll + o.Roll}
}

// Sub returns the component-wise difference.
func (e Euler[U, T]) Sub(o Euler[U, T]) Euler[U, T] {
	return Euler[U, T]{Yaw: e.Yaw - o.Yaw, Pitch: e.Pitch - o.Pitch, Roll: e.Roll - o.Roll}
}

// Neg returns the component-wise negation.
func (e Euler[U, T]) Neg() Euler[U, T] {
	return Euler[U, T]{Yaw: -e.Yaw, Pitch: -e.Pitch, Roll: -e.Roll}
}

// Scale returns the triple with every angle multiplied by s.
func (e Euler[U, T]) Scale(s T) Euler[U, T] {
	return Euler[U, T]{Yaw: e.Yaw * s, Pitch: e.Pitch * s, Roll: e.Roll * s}
}

// Div returns the triple with every angle divided by s.
func (e Euler[U, T]) Div(s T) Euler[U, T] {
	return Euler[U, T]{Yaw: e.Yaw / s, Pitch: e.Pitch / s, Roll: e.Roll / s}
}
