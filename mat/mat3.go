package mat

import (
	"github.com/katalvlaran/linmath/scalar"
	"github.com/katalvlaran/linmath/vec"
)

// size3 is the row/column count of Matrix3.
const size3 = 3

// Matrix3 is a 3×3 row-major matrix of three Vector3 rows.
type Matrix3[T scalar.Float] struct {
	Row1, Row2, Row3 vec.Vector3[T]
}

// New3 creates a matrix from elements in row-major order.
func New3[T scalar.Float](m11, m12, m13, m21, m22, m23, m31, m32, m33 T) Matrix3[T] {
	return Matrix3[T]{
		Row1: vec.New3(m11, m12, m13),
		Row2: vec.New3(m21, m22, m23),
		Row3: vec.New3(m31, m32, m33),
	}
}

// FromRows3 creates a matrix from three row vectors.
func FromRows3[T scalar.Float](r1, r2, r3 vec.Vector3[T]) Matrix3[T] {
	return Matrix3[T]{Row1: r1, Row2: r2, Row3: r3}
}

// FromColumns3 creates a matrix from three column vectors.
func FromColumns3[T scalar.Float](c1, c2, c3 vec.Vector3[T]) Matrix3[T] {
	return Matrix3[T]{
		Row1: vec.New3(c1.X, c2.X, c3.X),
		Row2: vec.New3(c1.Y, c2.Y, c3.Y),
		Row3: vec.New3(c1.Z, c2.Z, c3.Z),
	}
}

// Zero3 returns the all-zero matrix.
func Zero3[T scalar.Float]() Matrix3[T] { return Matrix3[T]{} }

// One3 returns the all-ones matrix.
func One3[T scalar.Float]() Matrix3[T] {
	return Matrix3[T]{Row1: vec.One3[T](), Row2: vec.One3[T](), Row3: vec.One3[T]()}
}

// Identity3 returns the identity matrix.
func Identity3[T scalar.Float]() Matrix3[T] {
	return Diagonal3(vec.One3[T]())
}

// Diagonal3 returns a matrix with d on the main diagonal and zeros
// elsewhere.
func Diagonal3[T scalar.Float](d vec.Vector3[T]) Matrix3[T] {
	zero := scalar.Zero[T]()

	return Matrix3[T]{
		Row1: vec.New3(d.X, zero, zero),
		Row2: vec.New3(zero, d.Y, zero),
		Row3: vec.New3(zero, zero, d.Z),
	}
}

// Scaling3 returns the matrix scaling each axis by the matching component
// of scale. It is the diagonal matrix of scale.
func Scaling3[T scalar.Float](scale vec.Vector3[T]) Matrix3[T] {
	return Diagonal3(scale)
}

// RotationX3 returns the matrix rotating by angle radians around the X
// axis, counter-clockwise when the axis points at the viewer.
func RotationX3[T scalar.Float](angle T) Matrix3[T] {
	zero, one := scalar.Zero[T](), scalar.One[T]()
	sin, cos := scalar.Sin(angle), scalar.Cos(angle)

	return Matrix3[T]{
		Row1: vec.New3(one, zero, zero),
		Row2: vec.New3(zero, cos, -sin),
		Row3: vec.New3(zero, sin, cos),
	}
}

// RotationY3 returns the matrix rotating by angle radians around the Y
// axis, counter-clockwise when the axis points at the viewer.
func RotationY3[T scalar.Float](angle T) Matrix3[T] {
	zero, one := scalar.Zero[T](), scalar.One[T]()
	sin, cos := scalar.Sin(angle), scalar.Cos(angle)

	return Matrix3[T]{
		Row1: vec.New3(cos, zero, sin),
		Row2: vec.New3(zero, one, zero),
		Row3: vec.New3(-sin, zero, cos),
	}
}

// RotationZ3 returns the matrix rotating by angle radians around the Z
// axis, counter-clockwise when the axis points at the viewer.
func RotationZ3[T scalar.Float](angle T) Matrix3[T] {
	zero, one := scalar.Zero[T](), scalar.One[T]()
	sin, cos := scalar.Sin(angle), scalar.Cos(angle)

	return Matrix3[T]{
		Row1: vec.New3(cos, -sin, zero),
		Row2: vec.New3(sin, cos, zero),
		Row3: vec.New3(zero, zero, one),
	}
}

// RotationXY3 composes rotations around X then Y: RotY(y) · RotX(x).
func RotationXY3[T scalar.Float](x, y T) Matrix3[T] {
	return RotationY3(y).Mul(RotationX3(x))
}

// RotationZX3 composes rotations around Z then X: RotX(x) · RotZ(z).
func RotationZX3[T scalar.Float](z, x T) Matrix3[T] {
	return RotationX3(x).Mul(RotationZ3(z))
}

// RotationZY3 composes rotations around Z then Y: RotY(y) · RotZ(z).
func RotationZY3[T scalar.Float](z, y T) Matrix3[T] {
	return RotationY3(y).Mul(RotationZ3(z))
}

// RotationZXY3 composes rotations around Z, then X, then Y:
// RotY(y) · RotX(x) · RotZ(z).
func RotationZXY3[T scalar.Float](z, x, y T) Matrix3[T] {
	return RotationY3(y).Mul(RotationX3(x)).Mul(RotationZ3(z))
}

// FromAxisAngle3 returns the matrix rotating by angle radians around axis,
// by the Rodrigues formula. The axis must be normalized.
func FromAxisAngle3[T scalar.Float](axis vec.Vector3[T], angle T) Matrix3[T] {
	sin, cos := scalar.Sin(angle), scalar.Cos(angle)
	oneSubCos := scalar.One[T]() - cos
	x, y, z := axis.X, axis.Y, axis.Z

	return Matrix3[T]{
		Row1: vec.New3(
			cos+x*x*oneSubCos,
			x*y*oneSubCos-z*sin,
			x*z*oneSubCos+y*sin,
		),
		Row2: vec.New3(
			y*x*oneSubCos+z*sin,
			cos+y*y*oneSubCos,
			y*z*oneSubCos-x*sin,
		),
		Row3: vec.New3(
			z*x*oneSubCos-y*sin,
			z*y*oneSubCos+x*sin,
			cos+z*z*oneSubCos,
		),
	}
}

// FromArray3 creates a matrix from a row-major element array.
func FromArray3[T scalar.Float](a [size3 * size3]T) Matrix3[T] {
	return New3(a[0], a[1], a[2], a[3], a[4], a[5], a[6], a[7], a[8])
}

// Array returns the elements in row-major order.
func (m Matrix3[T]) Array() [size3 * size3]T {
	return [size3 * size3]T{
		m.Row1.X, m.Row1.Y, m.Row1.Z,
		m.Row2.X, m.Row2.Y, m.Row2.Z,
		m.Row3.X, m.Row3.Y, m.Row3.Z,
	}
}

func (m Matrix3[T]) flat() []T {
	a := m.Array()

	return a[:]
}

func fromFlat3[T scalar.Float](a []T) Matrix3[T] {
	return New3(a[0], a[1], a[2], a[3], a[4], a[5], a[6], a[7], a[8])
}

// Row returns row n (0-based). Panics if n is out of range.
func (m Matrix3[T]) Row(n int) vec.Vector3[T] {
	switch n {
	case 0:
		return m.Row1
	case 1:
		return m.Row2
	case 2:
		return m.Row3
	default:
		panic("mat: row index out of range")
	}
}

// SetRow replaces row n (0-based). Panics if n is out of range.
func (m *Matrix3[T]) SetRow(n int, r vec.Vector3[T]) {
	switch n {
	case 0:
		m.Row1 = r
	case 1:
		m.Row2 = r
	case 2:
		m.Row3 = r
	default:
		panic("mat: row index out of range")
	}
}

// Column returns column n (0-based). Panics if n is out of range.
func (m Matrix3[T]) Column(n int) vec.Vector3[T] {
	switch n {
	case 0:
		return vec.New3(m.Row1.X, m.Row2.X, m.Row3.X)
	case 1:
		return vec.New3(m.Row1.Y, m.Row2.Y, m.Row3.Y)
	case 2:
		return vec.New3(m.Row1.Z, m.Row2.Z, m.Row3.Z)
	default:
		panic("mat: column index out of range")
	}
}

// SetColumn replaces column n (0-based). Panics if n is out of range.
func (m *Matrix3[T]) SetColumn(n int, c vec.Vector3[T]) {
	switch n {
	case 0:
		m.Row1.X, m.Row2.X, m.Row3.X = c.X, c.Y, c.Z
	case 1:
		m.Row1.Y, m.Row2.Y, m.Row3.Y = c.X, c.Y, c.Z
	case 2:
		m.Row1.Z, m.Row2.Z, m.Row3.Z = c.X, c.Y, c.Z
	default:
		panic("mat: column index out of range")
	}
}

// Diagonal returns the main diagonal.
func (m Matrix3[T]) Diagonal() vec.Vector3[T] {
	return vec.New3(m.Row1.X, m.Row2.Y, m.Row3.Z)
}

// SetDiagonal replaces the main diagonal.
func (m *Matrix3[T]) SetDiagonal(d vec.Vector3[T]) {
	m.Row1.X, m.Row2.Y, m.Row3.Z = d.X, d.Y, d.Z
}

// Trace returns the sum of the main diagonal.
func (m Matrix3[T]) Trace() T { return m.Row1.X + m.Row2.Y + m.Row3.Z }

// Add returns the element-wise sum m + o.
func (m Matrix3[T]) Add(o Matrix3[T]) Matrix3[T] {
	return Matrix3[T]{
		Row1: m.Row1.Add(o.Row1),
		Row2: m.Row2.Add(o.Row2),
		Row3: m.Row3.Add(o.Row3),
	}
}

// Sub returns the element-wise difference m - o.
func (m Matrix3[T]) Sub(o Matrix3[T]) Matrix3[T] {
	return Matrix3[T]{
		Row1: m.Row1.Sub(o.Row1),
		Row2: m.Row2.Sub(o.Row2),
		Row3: m.Row3.Sub(o.Row3),
	}
}

// Neg returns the element-wise negation.
func (m Matrix3[T]) Neg() Matrix3[T] {
	return Matrix3[T]{Row1: m.Row1.Neg(), Row2: m.Row2.Neg(), Row3: m.Row3.Neg()}
}

// Scale returns the matrix with every element multiplied by s.
func (m Matrix3[T]) Scale(s T) Matrix3[T] {
	return Matrix3[T]{Row1: m.Row1.Scale(s), Row2: m.Row2.Scale(s), Row3: m.Row3.Scale(s)}
}

// Div returns the matrix with every element divided by s.
func (m Matrix3[T]) Div(s T) Matrix3[T] {
	return Matrix3[T]{Row1: m.Row1.Div(s), Row2: m.Row2.Div(s), Row3: m.Row3.Div(s)}
}

// Mul returns the matrix product m · o.
func (m Matrix3[T]) Mul(o Matrix3[T]) Matrix3[T] {
	c0, c1, c2 := o.Column(0), o.Column(1), o.Column(2)

	return Matrix3[T]{
		Row1: vec.New3(m.Row1.Dot(c0), m.Row1.Dot(c1), m.Row1.Dot(c2)),
		Row2: vec.New3(m.Row2.Dot(c0), m.Row2.Dot(c1), m.Row2.Dot(c2)),
		Row3: vec.New3(m.Row3.Dot(c0), m.Row3.Dot(c1), m.Row3.Dot(c2)),
	}
}

// MulVec returns the product m · v with v as a column vector.
func (m Matrix3[T]) MulVec(v vec.Vector3[T]) vec.Vector3[T] {
	return vec.New3(m.Row1.Dot(v), m.Row2.Dot(v), m.Row3.Dot(v))
}

// Transpose transposes the matrix in place.
func (m *Matrix3[T]) Transpose() { *m = m.Transposed() }

// Transposed returns the transpose.
func (m Matrix3[T]) Transposed() Matrix3[T] {
	return FromColumns3(m.Row1, m.Row2, m.Row3)
}

// RotationAxis extracts the rotation axis from a rotation matrix. For the
// identity (zero angle) the axis is undefined and the result is NaN.
func (m Matrix3[T]) RotationAxis() vec.Vector3[T] {
	return vec.New3(
		m.Row3.Y-m.Row2.Z,
		m.Row1.Z-m.Row3.X,
		m.Row2.X-m.Row1.Y,
	).Normalized()
}

// RotationAngle extracts the rotation angle in radians from a rotation
// matrix, from the trace identity tr = 1 + 2cos(angle).
func (m Matrix3[T]) RotationAngle() T {
	return scalar.Acos((m.Trace() - scalar.One[T]()) / scalar.Two[T]())
}

// ToAxisAngle extracts the axis-angle form of a rotation matrix. See
// RotationAxis for the zero-angle caveat.
func (m Matrix3[T]) ToAxisAngle() (vec.Vector3[T], T) {
	return m.RotationAxis(), m.RotationAngle()
}

// SwapRows exchanges rows i and j (0-based). Panics if either index is out
// of range or the indices are equal.
func (m *Matrix3[T]) SwapRows(i, j int) {
	if i == j {
		panic("mat: rows must differ")
	}
	ri, rj := m.Row(i), m.Row(j)
	m.SetRow(i, rj)
	m.SetRow(j, ri)
}

// ToRowEchelon reduces the matrix in place to row echelon form by Gaussian
// elimination with partial pivoting. Row swap parity is not tracked.
func (m *Matrix3[T]) ToRowEchelon() {
	a := m.flat()
	toRowEchelon(a, size3)
	*m = fromFlat3(a)
}

// Rank returns the number of linearly independent rows.
func (m Matrix3[T]) Rank() int {
	a := m.flat()
	toRowEchelon(a, size3)

	return echelonRank(a, size3)
}

// Det returns the determinant as the diagonal product of the row echelon
// form. Pivoting row swaps are not parity-tracked, so for inputs whose
// elimination performs an odd number of swaps the sign is flipped; the
// magnitude is always correct.
func (m Matrix3[T]) Det() T {
	a := m.flat()
	toRowEchelon(a, size3)

	return echelonDiagonalProduct(a, size3)
}

// Inverse inverts the matrix in place. Panics if the matrix is singular;
// use InverseUnchecked when invertibility is already guaranteed.
func (m *Matrix3[T]) Inverse() { *m = m.Inversed() }

// Inversed returns the inverse. Panics if the matrix is singular; use
// InversedUnchecked when invertibility is already guaranteed.
func (m Matrix3[T]) Inversed() Matrix3[T] {
	if scalar.Abs(m.Det()) <= scalar.Epsilon[T]() {
		panic("mat: matrix is singular")
	}

	return m.InversedUnchecked()
}

// InverseUnchecked inverts the matrix in place without testing the
// determinant. The result is meaningless for a singular matrix.
func (m *Matrix3[T]) InverseUnchecked() { *m = m.InversedUnchecked() }

// InversedUnchecked returns the inverse without testing the determinant.
// Gauss-Jordan reduction is mirrored onto an adjacent identity matrix,
// which becomes the inverse. The result is meaningless for a singular
// matrix.
func (m Matrix3[T]) InversedUnchecked() Matrix3[T] {
	a := m.flat()
	adj := identityFlat[T](size3)
	gaussJordan(a, adj, size3)

	return fromFlat3(adj)
}

// Extend grows the matrix to 4×4 with bottom as the new last row, right as
// the new last column and corner in the remaining cell.
func (m Matrix3[T]) Extend(bottom, right vec.Vector3[T], corner T) Matrix4[T] {
	return Matrix4[T]{
		Row1: m.Row1.Extend(right.X),
		Row2: m.Row2.Extend(right.Y),
		Row3: m.Row3.Extend(right.Z),
		Row4: bottom.Extend(corner),
	}
}

// Truncate shrinks the matrix to its top-left 2×2 block.
func (m Matrix3[T]) Truncate() Matrix2[T] {
	return FromRows2(m.Row1.Truncate(), m.Row2.Truncate())
}
