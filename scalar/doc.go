// Package scalar defines the floating-point capability set every other
// package in the module is parameterized over.
//
// The scalar package provides:
//
//   - The Float constraint (~float32 | ~float64), the single type parameter
//     bound used by vec, mat, quat, affine and aabb.
//   - Typed constants per instantiation: Zero, One, Two, Pi and Epsilon
//     (machine epsilon of the instantiated precision).
//   - Forwarded math operations (Sqrt, Sin, Cos, Asin, Acos, Atan2, Exp, Ln,
//     Abs, Signum, Min, Max, Clamp, unit conversions) so generic code never
//     touches package math directly.
//
// All helpers follow IEEE-754 semantics of the underlying type: NaN
// propagates, nothing is validated. Epsilon is the pivot-rejection and
// is-zero threshold used throughout the module; callers comparing across
// precisions should pick tolerances accordingly (≈1e-5 for float32,
// ≈1e-10 for float64 round-trip checks).
package scalar
