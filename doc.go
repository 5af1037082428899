// Package linmath is a small, allocation-free linear algebra toolkit for
// graphics, physics and simulation code: fixed-size vectors, square matrices,
// quaternions, complex numbers, Euler angles, affine transforms and bounding
// boxes, all generic over float32/float64.
//
// 🚀 What is linmath?
//
//	A pure-Go, value-semantics library that brings together:
//		• scalar/ — the Float capability set: typed constants & math helpers
//		• vec/    — Vector2/3/4 and Complex (2D rotation) primitives
//		• mat/    — Matrix2/3/4 with a shared Gaussian-elimination engine
//		            (row echelon, rank, determinant, Gauss-Jordan inversion)
//		• quat/   — Quaternion, Euler angles with compile-time unit tags,
//		            and every rotation-representation conversion
//		• affine/ — scale·rotation·translation composite transforms
//		• aabb/   — axis-aligned bounding boxes
//
// ✨ Why choose linmath?
//
//   - Value semantics – every operation is a pure value-to-value transform or
//     an explicit in-place mutation of a caller-owned copy; concurrent use on
//     distinct values needs no locks
//   - Predictable numerics – partial pivoting in the elimination engine,
//     documented degenerate cases, explicit checked/unchecked inversion
//   - Pure Go – no cgo, no hidden deps
//   - Layout you can rely on – components are contiguous and order-preserving
//     (x, y, z, w), so Array()/FromArray round-trips match buffer layouts
//     expected by graphics APIs
//
// Contract violations (inverting a singular matrix through the checked entry
// point, out-of-range row/column indices) panic; degenerate numeric inputs on
// the documented unchecked paths produce NaN without signaling. There is no
// recoverable error type anywhere in the library.
//
//	go get github.com/katalvlaran/linmath
package linmath
