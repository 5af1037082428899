package mat

import (
	"github.com/katalvlaran/linmath/scalar"
	"github.com/katalvlaran/linmath/vec"
)

// size2 is the row/column count of Matrix2.
const size2 = 2

// Matrix2 is a 2×2 row-major matrix of two Vector2 rows.
type Matrix2[T scalar.Float] struct {
	Row1, Row2 vec.Vector2[T]
}

// New2 creates a matrix from elements in row-major order.
func New2[T scalar.Float](m11, m12, m21, m22 T) Matrix2[T] {
	return Matrix2[T]{
		Row1: vec.New2(m11, m12),
		Row2: vec.New2(m21, m22),
	}
}

// FromRows2 creates a matrix from two row vectors.
func FromRows2[T scalar.Float](r1, r2 vec.Vector2[T]) Matrix2[T] {
	return Matrix2[T]{Row1: r1, Row2: r2}
}

// FromColumns2 creates a matrix from two column vectors.
func FromColumns2[T scalar.Float](c1, c2 vec.Vector2[T]) Matrix2[T] {
	return Matrix2[T]{
		Row1: vec.New2(c1.X, c2.X),
		Row2: vec.New2(c1.Y, c2.Y),
	}
}

// Zero2 returns the all-zero matrix.
func Zero2[T scalar.Float]() Matrix2[T] { return Matrix2[T]{} }

// One2 returns the all-ones matrix.
func One2[T scalar.Float]() Matrix2[T] {
	return Matrix2[T]{Row1: vec.One2[T](), Row2: vec.One2[T]()}
}

// Identity2 returns the identity matrix.
func Identity2[T scalar.Float]() Matrix2[T] {
	return Diagonal2(vec.One2[T]())
}

// Diagonal2 returns a matrix with d on the main diagonal and zeros
// elsewhere.
func Diagonal2[T scalar.Float](d vec.Vector2[T]) Matrix2[T] {
	return Matrix2[T]{
		Row1: vec.New2(d.X, scalar.Zero[T]()),
		Row2: vec.New2(scalar.Zero[T](), d.Y),
	}
}

// Scaling2 returns the matrix scaling each axis by the matching component
// of scale. It is the diagonal matrix of scale.
func Scaling2[T scalar.Float](scale vec.Vector2[T]) Matrix2[T] {
	return Diagonal2(scale)
}

// Rotation2 returns the matrix rotating the plane counter-clockwise by
// angle radians.
func Rotation2[T scalar.Float](angle T) Matrix2[T] {
	sin, cos := scalar.Sin(angle), scalar.Cos(angle)

	return Matrix2[T]{
		Row1: vec.New2(cos, -sin),
		Row2: vec.New2(sin, cos),
	}
}

// FromComplex2 returns the matrix applying the rotation-and-scale the
// complex number represents: for c = a + bi the matrix is [[a, -b], [b, a]].
func FromComplex2[T scalar.Float](c vec.Complex[T]) Matrix2[T] {
	return Matrix2[T]{
		Row1: vec.New2(c.Real, -c.Imag),
		Row2: vec.New2(c.Imag, c.Real),
	}
}

// FromArray2 creates a matrix from a row-major element array.
func FromArray2[T scalar.Float](a [size2 * size2]T) Matrix2[T] {
	return New2(a[0], a[1], a[2], a[3])
}

// Array returns the elements in row-major order.
func (m Matrix2[T]) Array() [size2 * size2]T {
	return [size2 * size2]T{m.Row1.X, m.Row1.Y, m.Row2.X, m.Row2.Y}
}

// flat returns the elements as a fresh row-major slice for the elimination
// kernels; mutating it does not affect m.
func (m Matrix2[T]) flat() []T {
	a := m.Array()

	return a[:]
}

func fromFlat2[T scalar.Float](a []T) Matrix2[T] {
	return New2(a[0], a[1], a[2], a[3])
}

// Row returns row n (0-based). Panics if n is out of range.
func (m Matrix2[T]) Row(n int) vec.Vector2[T] {
	switch n {
	case 0:
		return m.Row1
	case 1:
		return m.Row2
	default:
		panic("mat: row index out of range")
	}
}

// SetRow replaces row n (0-based). Panics if n is out of range.
func (m *Matrix2[T]) SetRow(n int, r vec.Vector2[T]) {
	switch n {
	case 0:
		m.Row1 = r
	case 1:
		m.Row2 = r
	default:
		panic("mat: row index out of range")
	}
}

// Column returns column n (0-based). Panics if n is out of range.
func (m Matrix2[T]) Column(n int) vec.Vector2[T] {
	switch n {
	case 0:
		return vec.New2(m.Row1.X, m.Row2.X)
	case 1:
		return vec.New2(m.Row1.Y, m.Row2.Y)
	default:
		panic("mat: column index out of range")
	}
}

// SetColumn replaces column n (0-based). Panics if n is out of range.
func (m *Matrix2[T]) SetColumn(n int, c vec.Vector2[T]) {
	switch n {
	case 0:
		m.Row1.X, m.Row2.X = c.X, c.Y
	case 1:
		m.Row1.Y, m.Row2.Y = c.X, c.Y
	default:
		panic("mat: column index out of range")
	}
}

// Diagonal returns the main diagonal.
func (m Matrix2[T]) Diagonal() vec.Vector2[T] {
	return vec.New2(m.Row1.X, m.Row2.Y)
}

// SetDiagonal replaces the main diagonal.
func (m *Matrix2[T]) SetDiagonal(d vec.Vector2[T]) {
	m.Row1.X, m.Row2.Y = d.X, d.Y
}

// Trace returns the sum of the main diagonal.
func (m Matrix2[T]) Trace() T { return m.Row1.X + m.Row2.Y }

// Add returns the element-wise sum m + o.
func (m Matrix2[T]) Add(o Matrix2[T]) Matrix2[T] {
	return Matrix2[T]{Row1: m.Row1.Add(o.Row1), Row2: m.Row2.Add(o.Row2)}
}

// Sub returns the element-wise difference m - o.
func (m Matrix2[T]) Sub(o Matrix2[T]) Matrix2[T] {
	return Matrix2[T]{Row1: m.Row1.Sub(o.Row1), Row2: m.Row2.Sub(o.Row2)}
}

// Neg returns the element-wise negation.
func (m Matrix2[T]) Neg() Matrix2[T] {
	return Matrix2[T]{Row1: m.Row1.Neg(), Row2: m.Row2.Neg()}
}

// Scale returns the matrix with every element multiplied by s.
func (m Matrix2[T]) Scale(s T) Matrix2[T] {
	return Matrix2[T]{Row1: m.Row1.Scale(s), Row2: m.Row2.Scale(s)}
}

// Div returns the matrix with every element divided by s.
func (m Matrix2[T]) Div(s T) Matrix2[T] {
	return Matrix2[T]{Row1: m.Row1.Div(s), Row2: m.Row2.Div(s)}
}

// Mul returns the matrix product m · o.
func (m Matrix2[T]) Mul(o Matrix2[T]) Matrix2[T] {
	return Matrix2[T]{
		Row1: vec.New2(m.Row1.Dot(o.Column(0)), m.Row1.Dot(o.Column(1))),
		Row2: vec.New2(m.Row2.Dot(o.Column(0)), m.Row2.Dot(o.Column(1))),
	}
}

// MulVec returns the product m · v with v as a column vector.
func (m Matrix2[T]) MulVec(v vec.Vector2[T]) vec.Vector2[T] {
	return vec.New2(m.Row1.Dot(v), m.Row2.Dot(v))
}

// Transpose transposes the matrix in place.
func (m *Matrix2[T]) Transpose() { *m = m.Transposed() }

// Transposed returns the transpose.
func (m Matrix2[T]) Transposed() Matrix2[T] {
	return FromColumns2(m.Row1, m.Row2)
}

// SwapRows exchanges rows i and j (0-based). Panics if either index is out
// of range or the indices are equal.
func (m *Matrix2[T]) SwapRows(i, j int) {
	if i == j {
		panic("mat: rows must differ")
	}
	ri, rj := m.Row(i), m.Row(j)
	m.SetRow(i, rj)
	m.SetRow(j, ri)
}

// ToRowEchelon reduces the matrix in place to row echelon form by Gaussian
// elimination with partial pivoting. Row swap parity is not tracked.
func (m *Matrix2[T]) ToRowEchelon() {
	a := m.flat()
	toRowEchelon(a, size2)
	*m = fromFlat2(a)
}

// Rank returns the number of linearly independent rows.
func (m Matrix2[T]) Rank() int {
	a := m.flat()
	toRowEchelon(a, size2)

	return echelonRank(a, size2)
}

// Det returns the determinant, in closed form.
func (m Matrix2[T]) Det() T {
	return m.Row1.X*m.Row2.Y - m.Row1.Y*m.Row2.X
}

// Inverse inverts the matrix in place. Panics if the matrix is singular;
// use InverseUnchecked when invertibility is already guaranteed.
func (m *Matrix2[T]) Inverse() { *m = m.Inversed() }

// Inversed returns the inverse. Panics if the matrix is singular; use
// InversedUnchecked when invertibility is already guaranteed.
func (m Matrix2[T]) Inversed() Matrix2[T] {
	if scalar.Abs(m.Det()) <= scalar.Epsilon[T]() {
		panic("mat: matrix is singular")
	}

	return m.InversedUnchecked()
}

// InverseUnchecked inverts the matrix in place without testing the
// determinant. The result is meaningless for a singular matrix.
func (m *Matrix2[T]) InverseUnchecked() { *m = m.InversedUnchecked() }

// InversedUnchecked returns the inverse without testing the determinant.
// Gauss-Jordan reduction is mirrored onto an adjacent identity matrix,
// which becomes the inverse. The result is meaningless for a singular
// matrix.
func (m Matrix2[T]) InversedUnchecked() Matrix2[T] {
	a := m.flat()
	adj := identityFlat[T](size2)
	gaussJordan(a, adj, size2)

	return fromFlat2(adj)
}

// Extend grows the matrix to 3×3 with bottom as the new last row, right as
// the new last column and corner in the remaining cell.
func (m Matrix2[T]) Extend(bottom, right vec.Vector2[T], corner T) Matrix3[T] {
	return Matrix3[T]{
		Row1: m.Row1.Extend(right.X),
		Row2: m.Row2.Extend(right.Y),
		Row3: bottom.Extend(corner),
	}
}
