// Package vec provides fixed-size 2, 3 and 4 component vectors and the
// Complex number type used for 2D rotations.
//
// The vec package provides:
//
//   - Vector2, Vector3, Vector4 value types generic over scalar.Float, with
//     component-wise arithmetic, dot/cross products, normalization,
//     projection and interpolation (lerp, nlerp, slerp).
//   - Complex, a 2-scalar rotation+scale representation with polar
//     conversions, used by Vector2 rotation helpers.
//   - A layout contract: components are contiguous and order-preserving
//     (X, Y[, Z[, W]]), and Array/FromArray round-trip through plain Go
//     arrays in declared field order, so vectors can be copied verbatim into
//     GPU buffers.
//
// No invariant is enforced on component values; normalizing a zero vector or
// slerping parallel vectors produces NaN per IEEE-754, as documented on the
// individual methods.
package vec
