package vec

import "github.com/katalvlaran/linmath/scalar"

// Complex is a complex number. Interpreted through magnitude and angle it
// represents a rotation plus uniform scale in the plane, which is how the
// Vector2 rotation helpers use it.
type Complex[T scalar.Float] struct {
	Real, Imag T
}

// NewComplex creates a complex number from real and imaginary parts.
func NewComplex[T scalar.Float](real, imag T) Complex[T] {
	return Complex[T]{Real: real, Imag: imag}
}

// ComplexFromAngle converts angle in radians to a unit complex number
// representing a counter-clockwise rotation by that angle.
func ComplexFromAngle[T scalar.Float](angle T) Complex[T] {
	return Complex[T]{Real: scalar.Cos(angle), Imag: scalar.Sin(angle)}
}

// Vector2 reinterprets the complex number as a vector with X = Real and
// Y = Imag.
func (c Complex[T]) Vector2() Vector2[T] { return Vector2[T]{X: c.Real, Y: c.Imag} }

// Angle extracts the angle of the complex number, in radians.
func (c Complex[T]) Angle() T { return scalar.Atan2(c.Imag, c.Real) }

// SqrMagnitude returns the squared magnitude.
func (c Complex[T]) SqrMagnitude() T { return c.Real*c.Real + c.Imag*c.Imag }

// Magnitude returns the magnitude.
func (c Complex[T]) Magnitude() T { return scalar.Sqrt(c.SqrMagnitude()) }

// MagnitudeAngle returns the polar form: magnitude and angle in radians.
func (c Complex[T]) MagnitudeAngle() (T, T) { return c.Magnitude(), c.Angle() }

// Conjugate returns a - bi for c = a + bi. For a unit complex number this
// inverts the rotation it represents.
func (c Complex[T]) Conjugate() Complex[T] { return Complex[T]{Real: c.Real, Imag: -c.Imag} }

// Reciprocal returns 1 / (a + bi).
func (c Complex[T]) Reciprocal() Complex[T] {
	sqrMag := c.SqrMagnitude()

	return Complex[T]{Real: c.Real / sqrMag, Imag: -c.Imag / sqrMag}
}

// Mul computes the complex product, composing the rotations (and scales) the
// two operands represent.
func (c Complex[T]) Mul(o Complex[T]) Complex[T] {
	return Complex[T]{
		Real: c.Real*o.Real - c.Imag*o.Imag,
		Imag: c.Real*o.Imag + c.Imag*o.Real,
	}
}

// Div divides c by o.
func (c Complex[T]) Div(o Complex[T]) Complex[T] { return c.Mul(o.Reciprocal()) }

// Sqrt computes both square roots of the complex number.
func (c Complex[T]) Sqrt() (Complex[T], Complex[T]) {
	mag := c.Magnitude()
	gamma := scalar.Sqrt((c.Real + mag) / 2)
	delta := scalar.Signum(c.Imag) * scalar.Sqrt((-c.Real+mag)/2)

	return Complex[T]{Real: gamma, Imag: delta}, Complex[T]{Real: -gamma, Imag: -delta}
}

// Exp computes e raised to the complex power.
func (c Complex[T]) Exp() Complex[T] {
	expReal := scalar.Exp(c.Real)

	return Complex[T]{
		Real: expReal * scalar.Cos(c.Imag),
		Imag: expReal * scalar.Sin(c.Imag),
	}
}
