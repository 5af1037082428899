package quat

import (
	"github.com/katalvlaran/linmath/mat"
	"github.com/katalvlaran/linmath/scalar"
	"github.com/katalvlaran/linmath/vec"
)

// Quaternion is a scalar (real) part plus a Vector3 imaginary part. Unit
// quaternions represent 3D rotations; the rotation helpers (Rotate,
// Matrix3, ToAxisAngle, ToEuler) assume the receiver is normalized.
type Quaternion[T scalar.Float] struct {
	Scalar T
	Vector vec.Vector3[T]
}

// New creates a quaternion from a scalar part and a vector part.
func New[T scalar.Float](s T, v vec.Vector3[T]) Quaternion[T] {
	return Quaternion[T]{Scalar: s, Vector: v}
}

// FromVector creates a pure quaternion: zero scalar part and v as the
// vector part. This is how vectors enter the rotation sandwich product.
func FromVector[T scalar.Float](v vec.Vector3[T]) Quaternion[T] {
	return Quaternion[T]{Vector: v}
}

// Identity returns the identity quaternion, the rotation by nothing.
func Identity[T scalar.Float]() Quaternion[T] {
	return Quaternion[T]{Scalar: scalar.One[T]()}
}

// FromAxisAngle creates the unit quaternion rotating by angle radians
// around axis. The axis must be normalized.
func FromAxisAngle[T scalar.Float](axis vec.Vector3[T], angle T) Quaternion[T] {
	half := angle / scalar.Two[T]()

	return Quaternion[T]{
		Scalar: scalar.Cos(half),
		Vector: axis.Scale(scalar.Sin(half)),
	}
}

// FromEuler creates the unit quaternion applying e: pitch around X first,
// then roll around Y, then yaw around Z. The closed form below is the
// expanded half-angle product qZ(yaw) · qY(roll) · qX(pitch).
func FromEuler[T scalar.Float](e Euler[Radians, T]) Quaternion[T] {
	half := e.Div(scalar.Two[T]())
	sinPitch, cosPitch := scalar.Sin(half.Pitch), scalar.Cos(half.Pitch)
	sinRoll, cosRoll := scalar.Sin(half.Roll), scalar.Cos(half.Roll)
	sinYaw, cosYaw := scalar.Sin(half.Yaw), scalar.Cos(half.Yaw)

	return Quaternion[T]{
		Scalar: cosPitch*cosRoll*cosYaw + sinPitch*sinRoll*sinYaw,
		Vector: vec.New3(
			sinPitch*cosRoll*cosYaw-cosPitch*sinRoll*sinYaw,
			cosPitch*sinRoll*cosYaw+sinPitch*cosRoll*sinYaw,
			cosPitch*cosRoll*sinYaw-sinPitch*sinRoll*cosYaw,
		),
	}
}

// FromMatrix3 extracts the unit quaternion of a rotation matrix. The
// branch keys on the largest of the trace and the diagonal entries so the
// square root is always taken of the largest available quantity.
func FromMatrix3[T scalar.Float](m mat.Matrix3[T]) Quaternion[T] {
	one, two := scalar.One[T](), scalar.Two[T]()
	four := two * two

	tr := m.Trace()
	switch {
	case tr > scalar.Zero[T]():
		s := scalar.Sqrt(tr+one) * two
		return Quaternion[T]{
			Scalar: s / four,
			Vector: vec.New3(
				(m.Row3.Y-m.Row2.Z)/s,
				(m.Row1.Z-m.Row3.X)/s,
				(m.Row2.X-m.Row1.Y)/s,
			),
		}
	case m.Row1.X > m.Row2.Y && m.Row1.X > m.Row3.Z:
		s := scalar.Sqrt(one+m.Row1.X-m.Row2.Y-m.Row3.Z) * two
		return Quaternion[T]{
			Scalar: (m.Row3.Y - m.Row2.Z) / s,
			Vector: vec.New3(
				s/four,
				(m.Row1.Y+m.Row2.X)/s,
				(m.Row1.Z+m.Row3.X)/s,
			),
		}
	case m.Row2.Y > m.Row3.Z:
		s := scalar.Sqrt(one+m.Row2.Y-m.Row1.X-m.Row3.Z) * two
		return Quaternion[T]{
			Scalar: (m.Row1.Z - m.Row3.X) / s,
			Vector: vec.New3(
				(m.Row1.Y+m.Row2.X)/s,
				s/four,
				(m.Row2.Z+m.Row3.Y)/s,
			),
		}
	default:
		s := scalar.Sqrt(one+m.Row3.Z-m.Row1.X-m.Row2.Y) * two
		return Quaternion[T]{
			Scalar: (m.Row2.X - m.Row1.Y) / s,
			Vector: vec.New3(
				(m.Row1.Z+m.Row3.X)/s,
				(m.Row2.Z+m.Row3.Y)/s,
				s/four,
			),
		}
	}
}

// Conjugate negates the vector part. For a unit quaternion this inverts
// the rotation.
func (q Quaternion[T]) Conjugate() Quaternion[T] {
	return Quaternion[T]{Scalar: q.Scalar, Vector: q.Vector.Neg()}
}

// SqrNorm returns the squared norm.
func (q Quaternion[T]) SqrNorm() T {
	return q.Scalar*q.Scalar + q.Vector.SqrMagnitude()
}

// Norm returns the norm.
func (q Quaternion[T]) Norm() T { return scalar.Sqrt(q.SqrNorm()) }

// Normalize scales the quaternion in place to unit norm. A zero
// quaternion normalizes to NaN components, it is not corrected.
func (q *Quaternion[T]) Normalize() { *q = q.Normalized() }

// Normalized returns the quaternion scaled to unit norm. See Normalize
// for the zero-quaternion caveat.
func (q Quaternion[T]) Normalized() Quaternion[T] { return q.Div(q.Norm()) }

// Reciprocal returns q⁻¹, so that q · q⁻¹ is the identity. For unit
// quaternions the conjugate is the cheaper equivalent.
func (q Quaternion[T]) Reciprocal() Quaternion[T] {
	return q.Conjugate().Div(q.SqrNorm())
}

// Add returns the component-wise sum.
func (q Quaternion[T]) Add(o Quaternion[T]) Quaternion[T] {
	return Quaternion[T]{Scalar: q.Scalar + o.Scalar, Vector: q.Vector.Add(o.Vector)}
}

// Sub returns the component-wise difference.
func (q Quaternion[T]) Sub(o Quaternion[T]) Quaternion[T] {
	return Quaternion[T]{Scalar: q.Scalar - o.Scalar, Vector: q.Vector.Sub(o.Vector)}
}

// Neg returns the component-wise negation. A unit quaternion and its
// negation represent the same rotation.
func (q Quaternion[T]) Neg() Quaternion[T] {
	return Quaternion[T]{Scalar: -q.Scalar, Vector: q.Vector.Neg()}
}

// Scale returns the quaternion with every component multiplied by s.
func (q Quaternion[T]) Scale(s T) Quaternion[T] {
	return Quaternion[T]{Scalar: q.Scalar * s, Vector: q.Vector.Scale(s)}
}

// Div returns the quaternion with every component divided by s.
func (q Quaternion[T]) Div(s T) Quaternion[T] {
	return Quaternion[T]{Scalar: q.Scalar / s, Vector: q.Vector.Div(s)}
}

// Dot returns the four-component dot product.
func (q Quaternion[T]) Dot(o Quaternion[T]) T {
	return q.Scalar*o.Scalar + q.Vector.Dot(o.Vector)
}

// Mul is shorthand for HamiltonProduct.
func (q Quaternion[T]) Mul(o Quaternion[T]) Quaternion[T] {
	return q.HamiltonProduct(o)
}

// HamiltonProduct returns the Hamilton product q · o, composing the
// rotations with o applied first. The product is not commutative.
func (q Quaternion[T]) HamiltonProduct(o Quaternion[T]) Quaternion[T] {
	return Quaternion[T]{
		Scalar: q.Scalar*o.Scalar - q.Vector.Dot(o.Vector),
		Vector: o.Vector.Scale(q.Scalar).
			Add(q.Vector.Scale(o.Scalar)).
			Add(q.Vector.Cross(o.Vector)),
	}
}

// Rotate applies the rotation of a unit quaternion to v through the
// sandwich product q · (0, v) · q*.
func (q Quaternion[T]) Rotate(v vec.Vector3[T]) vec.Vector3[T] {
	return q.Mul(FromVector(v)).Mul(q.Conjugate()).Vector
}

// Matrix3 converts a unit quaternion to its rotation matrix.
func (q Quaternion[T]) Matrix3() mat.Matrix3[T] {
	one, two := scalar.One[T](), scalar.Two[T]()
	w, x, y, z := q.Scalar, q.Vector.X, q.Vector.Y, q.Vector.Z

	return mat.FromRows3(
		vec.New3(one-two*(y*y+z*z), two*(x*y-w*z), two*(x*z+w*y)),
		vec.New3(two*(x*y+w*z), one-two*(x*x+z*z), two*(y*z-w*x)),
		vec.New3(two*(x*z-w*y), two*(y*z+w*x), one-two*(x*x+y*y)),
	)
}

// ToAxisAngle extracts the axis and angle of a unit quaternion: the
// normalized vector part and 2·atan2(|v|, s). The axis of a zero rotation
// is undefined and comes out NaN, it is not corrected.
func (q Quaternion[T]) ToAxisAngle() (vec.Vector3[T], T) {
	return q.Vector.Normalized(),
		scalar.Two[T]() * scalar.Atan2(q.Vector.Magnitude(), q.Scalar)
}

// ToEuler extracts the Euler angles of a unit quaternion. The sine of the
// roll is clamped to [-1, 1] before the arcsine so that rounding on inputs
// near the ±90° roll singularity yields the boundary angle instead of NaN.
func (q Quaternion[T]) ToEuler() Euler[Radians, T] {
	one, two := scalar.One[T](), scalar.Two[T]()
	w, x, y, z := q.Scalar, q.Vector.X, q.Vector.Y, q.Vector.Z

	sinRoll := scalar.Clamp(two*(w*y-z*x), -one, one)

	return Euler[Radians, T]{
		Yaw:   scalar.Atan2(two*(w*z+x*y), one-two*(y*y+z*z)),
		Pitch: scalar.Atan2(two*(w*x+y*z), one-two*(x*x+y*y)),
		Roll:  scalar.Asin(sinRoll),
	}
}

// Exp computes the quaternion exponential. A pure-real quaternion maps to
// its real exponential with a zero vector part.
func (q Quaternion[T]) Exp() Quaternion[T] {
	expScalar := scalar.Exp(q.Scalar)
	mag := q.Vector.Magnitude()
	if scalar.IsZero(mag) {
		return Quaternion[T]{Scalar: expScalar}
	}

	return Quaternion[T]{
		Scalar: expScalar * scalar.Cos(mag),
		Vector: q.Vector.Scale(expScalar * scalar.Sin(mag) / mag),
	}
}

// Ln computes the quaternion natural logarithm. A pure-real quaternion
// maps to its real logarithm with a zero vector part.
func (q Quaternion[T]) Ln() Quaternion[T] {
	norm := q.Norm()
	lnNorm := scalar.Ln(norm)
	mag := q.Vector.Magnitude()
	if scalar.IsZero(mag) {
		return Quaternion[T]{Scalar: lnNorm}
	}

	return Quaternion[T]{
		Scalar: lnNorm,
		Vector: q.Vector.Scale(scalar.Acos(q.Scalar/norm) / mag),
	}
}

// Pow raises the quaternion to the power t via exp(t · ln q). For a unit
// quaternion this scales the rotation angle by t.
func (q Quaternion[T]) Pow(t T) Quaternion[T] {
	return q.Ln().Scale(t).Exp()
}

// Lerp linearly interpolates every component. The result is not
// normalized; see Nlerp.
func (q Quaternion[T]) Lerp(o Quaternion[T], t T) Quaternion[T] {
	return q.Add(o.Sub(q).Scale(t))
}

// Nlerp linearly interpolates and normalizes, the cheap approximation of
// Slerp that does not hold angular velocity constant.
func (q Quaternion[T]) Nlerp(o Quaternion[T], t T) Quaternion[T] {
	return q.Lerp(o, t).Normalized()
}

// Slerp interpolates along the great arc between two unit quaternions at
// constant angular velocity. The shorter of the two arcs is taken: when
// the dot product is negative the far operand is negated, which leaves
// its rotation unchanged. Nearly parallel operands fall back to Nlerp,
// where the arc formula would divide by a vanishing sine.
func (q Quaternion[T]) Slerp(o Quaternion[T], t T) Quaternion[T] {
	dot := q.Dot(o)
	if dot < scalar.Zero[T]() {
		o = o.Neg()
		dot = -dot
	}

	theta := scalar.Acos(scalar.Min(dot, scalar.One[T]()))
	sinTheta := scalar.Sin(theta)
	if scalar.IsZero(sinTheta) {
		return q.Nlerp(o, t)
	}

	a := scalar.Sin((scalar.One[T]()-t)*theta) / sinTheta
	b := scalar.Sin(t*theta) / sinTheta

	return q.Scale(a).Add(o.Scale(b))
}
