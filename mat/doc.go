// Package mat provides fixed-size 2×2, 3×3 and 4×4 row-major square
// matrices built from vec row vectors, together with the Gaussian
// elimination engine shared by all three sizes.
//
// The mat package provides:
//
//   - Matrix2, Matrix3, Matrix4 value types with constructors from elements,
//     rows, columns and diagonals, plus rotation, scaling and translation
//     builders.
//   - Row/column/diagonal accessors (0-based, panicking on out-of-range
//     indices), transposition and matrix/vector products.
//   - The elimination engine: ToRowEchelon (partial pivoting), Rank, Det and
//     Gauss-Jordan inversion through an adjacent identity matrix.
//
// Inversion comes in two deliberately separate flavors per size. The checked
// entry points (Inverse, Inversed) panic when |det| is within machine
// epsilon of zero — calling them on a singular matrix is a programmer error,
// not a runtime condition. The unchecked entry points (InverseUnchecked,
// InversedUnchecked) skip the determinant test for hot paths that have
// already validated invertibility; on singular input their result is
// meaningless or NaN-laden, by design. The two surfaces are never merged
// into a single fallible function.
//
// Det reuses ToRowEchelon and returns the diagonal product of the echelon
// form. Row swaps performed by pivoting are not parity-tracked, so the sign
// of Det can be wrong for inputs that require an odd number of swaps; the
// magnitude is always correct. See the Det documentation per type.
package mat
