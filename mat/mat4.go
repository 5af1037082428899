package mat

import (
	"github.com/katalvlaran/linmath/scalar"
	"github.com/katalvlaran/linmath/vec"
)

// size4 is the row/column count of Matrix4.
const size4 = 4

// Matrix4 is a 4×4 row-major matrix of four Vector4 rows.
type Matrix4[T scalar.Float] struct {
	Row1, Row2, Row3, Row4 vec.Vector4[T]
}

// New4 creates a matrix from elements in row-major order.
func New4[T scalar.Float](
	m11, m12, m13, m14,
	m21, m22, m23, m24,
	m31, m32, m33, m34,
	m41, m42, m43, m44 T,
) Matrix4[T] {
	return Matrix4[T]{
		Row1: vec.New4(m11, m12, m13, m14),
		Row2: vec.New4(m21, m22, m23, m24),
		Row3: vec.New4(m31, m32, m33, m34),
		Row4: vec.New4(m41, m42, m43, m44),
	}
}

// FromRows4 creates a matrix from four row vectors.
func FromRows4[T scalar.Float](r1, r2, r3, r4 vec.Vector4[T]) Matrix4[T] {
	return Matrix4[T]{Row1: r1, Row2: r2, Row3: r3, Row4: r4}
}

// FromColumns4 creates a matrix from four column vectors.
func FromColumns4[T scalar.Float](c1, c2, c3, c4 vec.Vector4[T]) Matrix4[T] {
	return Matrix4[T]{
		Row1: vec.New4(c1.X, c2.X, c3.X, c4.X),
		Row2: vec.New4(c1.Y, c2.Y, c3.Y, c4.Y),
		Row3: vec.New4(c1.Z, c2.Z, c3.Z, c4.Z),
		Row4: vec.New4(c1.W, c2.W, c3.W, c4.W),
	}
}

// Zero4 returns the all-zero matrix.
func Zero4[T scalar.Float]() Matrix4[T] { return Matrix4[T]{} }

// One4 returns the all-ones matrix.
func One4[T scalar.Float]() Matrix4[T] {
	return Matrix4[T]{
		Row1: vec.One4[T](),
		Row2: vec.One4[T](),
		Row3: vec.One4[T](),
		Row4: vec.One4[T](),
	}
}

// Identity4 returns the identity matrix.
func Identity4[T scalar.Float]() Matrix4[T] {
	return Diagonal4(vec.One4[T]())
}

// Diagonal4 returns a matrix with d on the main diagonal and zeros
// elsewhere.
func Diagonal4[T scalar.Float](d vec.Vector4[T]) Matrix4[T] {
	zero := scalar.Zero[T]()

	return Matrix4[T]{
		Row1: vec.New4(d.X, zero, zero, zero),
		Row2: vec.New4(zero, d.Y, zero, zero),
		Row3: vec.New4(zero, zero, d.Z, zero),
		Row4: vec.New4(zero, zero, zero, d.W),
	}
}

// Scaling4 returns the matrix scaling each axis by the matching component
// of scale. It is the diagonal matrix of scale.
func Scaling4[T scalar.Float](scale vec.Vector4[T]) Matrix4[T] {
	return Diagonal4(scale)
}

// Translation4 returns the homogeneous matrix translating 3D points by t:
// the identity with t in the last column.
func Translation4[T scalar.Float](t vec.Vector3[T]) Matrix4[T] {
	m := Identity4[T]()
	m.SetColumn(3, t.Extend(scalar.One[T]()))

	return m
}

// FromArray4 creates a matrix from a row-major element array.
func FromArray4[T scalar.Float](a [size4 * size4]T) Matrix4[T] {
	return fromFlat4(a[:])
}

// Array returns the elements in row-major order.
func (m Matrix4[T]) Array() [size4 * size4]T {
	return [size4 * size4]T{
		m.Row1.X, m.Row1.Y, m.Row1.Z, m.Row1.W,
		m.Row2.X, m.Row2.Y, m.Row2.Z, m.Row2.W,
		m.Row3.X, m.Row3.Y, m.Row3.Z, m.Row3.W,
		m.Row4.X, m.Row4.Y, m.Row4.Z, m.Row4.W,
	}
}

func (m Matrix4[T]) flat() []T {
	a := m.Array()

	return a[:]
}

func fromFlat4[T scalar.Float](a []T) Matrix4[T] {
	return Matrix4[T]{
		Row1: vec.New4(a[0], a[1], a[2], a[3]),
		Row2: vec.New4(a[4], a[5], a[6], a[7]),
		Row3: vec.New4(a[8], a[9], a[10], a[11]),
		Row4: vec.New4(a[12], a[13], a[14], a[15]),
	}
}

// Row returns row n (0-based). Panics if n is out of range.
func (m Matrix4[T]) Row(n int) vec.Vector4[T] {
	switch n {
	case 0:
		return m.Row1
	case 1:
		return m.Row2
	case 2:
		return m.Row3
	case 3:
		return m.Row4
	default:
		panic("mat: row index out of range")
	}
}

// SetRow replaces row n (0-based). Panics if n is out of range.
func (m *Matrix4[T]) SetRow(n int, r vec.Vector4[T]) {
	switch n {
	case 0:
		m.Row1 = r
	case 1:
		m.Row2 = r
	case 2:
		m.Row3 = r
	case 3:
		m.Row4 = r
	default:
		panic("mat: row index out of range")
	}
}

// Column returns column n (0-based). Panics if n is out of range.
func (m Matrix4[T]) Column(n int) vec.Vector4[T] {
	switch n {
	case 0:
		return vec.New4(m.Row1.X, m.Row2.X, m.Row3.X, m.Row4.X)
	case 1:
		return vec.New4(m.Row1.Y, m.Row2.Y, m.Row3.Y, m.Row4.Y)
	case 2:
		return vec.New4(m.Row1.Z, m.Row2.Z, m.Row3.Z, m.Row4.Z)
	case 3:
		return vec.New4(m.Row1.W, m.Row2.W, m.Row3.W, m.Row4.W)
	default:
		panic("mat: column index out of range")
	}
}

// SetColumn replaces column n (0-based). Panics if n is out of range.
func (m *Matrix4[T]) SetColumn(n int, c vec.Vector4[T]) {
	switch n {
	case 0:
		m.Row1.X, m.Row2.X, m.Row3.X, m.Row4.X = c.X, c.Y, c.Z, c.W
	case 1:
		m.Row1.Y, m.Row2.Y, m.Row3.Y, m.Row4.Y = c.X, c.Y, c.Z, c.W
	case 2:
		m.Row1.Z, m.Row2.Z, m.Row3.Z, m.Row4.Z = c.X, c.Y, c.Z, c.W
	case 3:
		m.Row1.W, m.Row2.W, m.Row3.W, m.Row4.W = c.X, c.Y, c.Z, c.W
	default:
		panic("mat: column index out of range")
	}
}

// Diagonal returns the main diagonal.
func (m Matrix4[T]) Diagonal() vec.Vector4[T] {
	return vec.New4(m.Row1.X, m.Row2.Y, m.Row3.Z, m.Row4.W)
}

// SetDiagonal replaces the main diagonal.
func (m *Matrix4[T]) SetDiagonal(d vec.Vector4[T]) {
	m.Row1.X, m.Row2.Y, m.Row3.Z, m.Row4.W = d.X, d.Y, d.Z, d.W
}

// Trace returns the sum of the main diagonal.
func (m Matrix4[T]) Trace() T { return m.Row1.X + m.Row2.Y + m.Row3.Z + m.Row4.W }

// Add returns the element-wise sum m + o.
func (m Matrix4[T]) Add(o Matrix4[T]) Matrix4[T] {
	return Matrix4[T]{
		Row1: m.Row1.Add(o.Row1),
		Row2: m.Row2.Add(o.Row2),
		Row3: m.Row3.Add(o.Row3),
		Row4: m.Row4.Add(o.Row4),
	}
}

// Sub returns the element-wise difference m - o.
func (m Matrix4[T]) Sub(o Matrix4[T]) Matrix4[T] {
	return Matrix4[T]{
		Row1: m.Row1.Sub(o.Row1),
		Row2: m.Row2.Sub(o.Row2),
		Row3: m.Row3.Sub(o.Row3),
		Row4: m.Row4.Sub(o.Row4),
	}
}

// Neg returns the element-wise negation.
func (m Matrix4[T]) Neg() Matrix4[T] {
	return Matrix4[T]{
		Row1: m.Row1.Neg(),
		Row2: m.Row2.Neg(),
		Row3: m.Row3.Neg(),
		Row4: m.Row4.Neg(),
	}
}

// Scale returns the matrix with every element multiplied by s.
func (m Matrix4[T]) Scale(s T) Matrix4[T] {
	return Matrix4[T]{
		Row1: m.Row1.Scale(s),
		Row2: m.Row2.Scale(s),
		Row3: m.Row3.Scale(s),
		Row4: m.Row4.Scale(s),
	}
}

// Div returns the matrix with every element divided by s.
func (m Matrix4[T]) Div(s T) Matrix4[T] {
	return Matrix4[T]{
		Row1: m.Row1.Div(s),
		Row2: m.Row2.Div(s),
		Row3: m.Row3.Div(s),
		Row4: m.Row4.Div(s),
	}
}

// Mul returns the matrix product m · o.
func (m Matrix4[T]) Mul(o Matrix4[T]) Matrix4[T] {
	c0, c1, c2, c3 := o.Column(0), o.Column(1), o.Column(2), o.Column(3)

	return Matrix4[T]{
		Row1: vec.New4(m.Row1.Dot(c0), m.Row1.Dot(c1), m.Row1.Dot(c2), m.Row1.Dot(c3)),
		Row2: vec.New4(m.Row2.Dot(c0), m.Row2.Dot(c1), m.Row2.Dot(c2), m.Row2.Dot(c3)),
		Row3: vec.New4(m.Row3.Dot(c0), m.Row3.Dot(c1), m.Row3.Dot(c2), m.Row3.Dot(c3)),
		Row4: vec.New4(m.Row4.Dot(c0), m.Row4.Dot(c1), m.Row4.Dot(c2), m.Row4.Dot(c3)),
	}
}

// MulVec returns the product m · v with v as a column vector.
func (m Matrix4[T]) MulVec(v vec.Vector4[T]) vec.Vector4[T] {
	return vec.New4(m.Row1.Dot(v), m.Row2.Dot(v), m.Row3.Dot(v), m.Row4.Dot(v))
}

// Transpose transposes the matrix in place.
func (m *Matrix4[T]) Transpose() { *m = m.Transposed() }

// Transposed returns the transpose.
func (m Matrix4[T]) Transposed() Matrix4[T] {
	return FromColumns4(m.Row1, m.Row2, m.Row3, m.Row4)
}

// SwapRows exchanges rows i and j (0-based). Panics if either index is out
// of range or the indices are equal.
func (m *Matrix4[T]) SwapRows(i, j int) {
	if i == j {
		panic("mat: rows must differ")
	}
	ri, rj := m.Row(i), m.Row(j)
	m.SetRow(i, rj)
	m.SetRow(j, ri)
}

// ToRowEchelon reduces the matrix in place to row echelon form by Gaussian
// elimination with partial pivoting. Row swap parity is not tracked.
func (m *Matrix4[T]) ToRowEchelon() {
	a := m.flat()
	toRowEchelon(a, size4)
	*m = fromFlat4(a)
}

// Rank returns the number of linearly independent rows.
func (m Matrix4[T]) Rank() int {
	a := m.flat()
	toRowEchelon(a, size4)

	return echelonRank(a, size4)
}

// Det returns the determinant as the diagonal product of the row echelon
// form. Pivoting row swaps are not parity-tracked, so for inputs whose
// elimination performs an odd number of swaps the sign is flipped; the
// magnitude is always correct.
func (m Matrix4[T]) Det() T {
	a := m.flat()
	toRowEchelon(a, size4)

	return echelonDiagonalProduct(a, size4)
}

// Inverse inverts the matrix in place. Panics if the matrix is singular;
// use InverseUnchecked when invertibility is already guaranteed.
func (m *Matrix4[T]) Inverse() { *m = m.Inversed() }

// Inversed returns the inverse. Panics if the matrix is singular; use
// InversedUnchecked when invertibility is already guaranteed.
func (m Matrix4[T]) Inversed() Matrix4[T] {
	if scalar.Abs(m.Det()) <= scalar.Epsilon[T]() {
		panic("mat: matrix is singular")
	}

	return m.InversedUnchecked()
}

// InverseUnchecked inverts the matrix in place without testing the
// determinant. The result is meaningless for a singular matrix.
func (m *Matrix4[T]) InverseUnchecked() { *m = m.InversedUnchecked() }

// InversedUnchecked returns the inverse without testing the determinant.
// Gauss-Jordan reduction is mirrored onto an adjacent identity matrix,
// which becomes the inverse. The result is meaningless for a singular
// matrix.
func (m Matrix4[T]) InversedUnchecked() Matrix4[T] {
	a := m.flat()
	adj := identityFlat[T](size4)
	gaussJordan(a, adj, size4)

	return fromFlat4(adj)
}

// Truncate shrinks the matrix to its top-left 3×3 block.
func (m Matrix4[T]) Truncate() Matrix3[T] {
	return FromRows3(m.Row1.Truncate(), m.Row2.Truncate(), m.Row3.Truncate())
}
