package scalar

import "math"

// Float is the scalar capability constraint: any type whose underlying type
// is float32 or float64. Every generic type in the module is bound by it.
type Float interface {
	~float32 | ~float64
}

// Machine epsilons of the two supported precisions.
const (
	epsilon32 = 0x1p-23 // float32: 1.1920929e-07
	epsilon64 = 0x1p-52 // float64: 2.220446049250313e-16
)

// Zero returns the additive identity of T.
func Zero[T Float]() T { return 0 }

// One returns the multiplicative identity of T.
func One[T Float]() T { return 1 }

// Two returns the constant 2 of T.
func Two[T Float]() T { return 2 }

// Pi returns π at the precision of T.
func Pi[T Float]() T { return T(math.Pi) }

// Epsilon returns the machine epsilon of the instantiated precision.
// It is the threshold used by pivot rejection and IsZero across the module.
func Epsilon[T Float]() T {
	// 1+2^-52 rounds to 1 only at float32 precision, so this branch is
	// decided per instantiation and folds away at compile time.
	if T(1)+T(epsilon64) == T(1) {
		return T(epsilon32)
	}

	return T(epsilon64)
}

// Abs returns |x|. NaN propagates.
func Abs[T Float](x T) T {
	if x < 0 {
		return -x
	}

	return x
}

// Signum returns 1 with the sign of x (±1 for finite x, NaN for NaN).
func Signum[T Float](x T) T { return T(math.Copysign(1, float64(x))) }

// Sqrt returns √x.
func Sqrt[T Float](x T) T { return T(math.Sqrt(float64(x))) }

// Sin returns the sine of x (radians).
func Sin[T Float](x T) T { return T(math.Sin(float64(x))) }

// Cos returns the cosine of x (radians).
func Cos[T Float](x T) T { return T(math.Cos(float64(x))) }

// Asin returns the arcsine of x, in radians. x outside [-1, 1] yields NaN.
func Asin[T Float](x T) T { return T(math.Asin(float64(x))) }

// Acos returns the arccosine of x, in radians. x outside [-1, 1] yields NaN.
func Acos[T Float](x T) T { return T(math.Acos(float64(x))) }

// Atan2 returns the angle of the point (x, y) in radians, range (-π, π].
func Atan2[T Float](y, x T) T { return T(math.Atan2(float64(y), float64(x))) }

// Exp returns e^x.
func Exp[T Float](x T) T { return T(math.Exp(float64(x))) }

// Ln returns the natural logarithm of x.
func Ln[T Float](x T) T { return T(math.Log(float64(x))) }

// Min returns the smaller of a and b.
func Min[T Float](a, b T) T {
	if b < a {
		return b
	}

	return a
}

// Max returns the larger of a and b.
func Max[T Float](a, b T) T {
	if b > a {
		return b
	}

	return a
}

// Clamp limits x to the interval [from, to]. from must not exceed to.
func Clamp[T Float](x, from, to T) T {
	if x < from {
		return from
	}
	if x > to {
		return to
	}

	return x
}

// ToRadians converts degrees to radians.
func ToRadians[T Float](deg T) T { return deg * Pi[T]() / 180 }

// ToDegrees converts radians to degrees.
func ToDegrees[T Float](rad T) T { return rad * 180 / Pi[T]() }

// IsNaN reports whether x is an IEEE-754 not-a-number.
func IsNaN[T Float](x T) bool { return x != x }

// IsZero reports whether |x| is below the machine epsilon of T.
func IsZero[T Float](x T) bool { return Abs(x) < Epsilon[T]() }

// Equal reports whether a and b differ by no more than tol.
func Equal[T Float](a, b, tol T) bool { return Abs(a-b) <= tol }
