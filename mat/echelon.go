package mat

import "github.com/katalvlaran/linmath/scalar"

// This file holds the elimination engine shared by Matrix2, Matrix3 and
// Matrix4. The kernels operate on a flat row-major slice of length n*n with
// stride n; each matrix type copies itself into such a slice, runs a kernel
// and copies back. Loop orders are fixed and documented, so results are
// deterministic for identical inputs across runs.

// swapFlatRows exchanges rows i and j of the flat row-major matrix a.
func swapFlatRows[T scalar.Float](a []T, n, i, j int) {
	for c := 0; c < n; c++ {
		a[i*n+c], a[j*n+c] = a[j*n+c], a[i*n+c]
	}
}

// identityFlat returns the n×n identity in flat row-major form.
func identityFlat[T scalar.Float](n int) []T {
	a := make([]T, n*n)
	for i := 0; i < n; i++ {
		a[i*n+i] = scalar.One[T]()
	}

	return a
}

// toRowEchelon reduces a, in place, to row echelon form by Gaussian
// elimination with partial pivoting.
//
// Two cursors walk the matrix: h is the current pivot row, k the current
// pivot column. At each step the rows h..n-1 are scanned for the entry of
// largest magnitude in column k. If that candidate is within machine epsilon
// of zero the column holds no usable pivot: k advances, h stays, and the
// step repeats. Otherwise the candidate row is swapped into position h,
// every row below has the pivot column eliminated (the entry is assigned an
// explicit zero rather than left to cancellation), and both cursors advance.
//
// Row swaps are not counted, so callers deriving a determinant from the
// result see an unreliable sign. Complexity: O(n³).
func toRowEchelon[T scalar.Float](a []T, n int) {
	eps := scalar.Epsilon[T]()

	h, k := 0, 0
	for h < n && k < n {
		// Partial pivoting: the largest |a[i][k]| for i in h..n-1.
		iMax := h
		for i := h + 1; i < n; i++ {
			if scalar.Abs(a[i*n+k]) > scalar.Abs(a[iMax*n+k]) {
				iMax = i
			}
		}

		if scalar.Abs(a[iMax*n+k]) < eps {
			// No pivot in this column; move to the next one.
			k++
			continue
		}

		if iMax != h {
			swapFlatRows(a, n, h, iMax)
		}

		for i := h + 1; i < n; i++ {
			f := a[i*n+k] / a[h*n+k]
			a[i*n+k] = scalar.Zero[T]()
			for j := k + 1; j < n; j++ {
				a[i*n+j] -= a[h*n+j] * f
			}
		}

		h++
		k++
	}
}

// echelonRank counts the non-zero rows of a matrix already in row echelon
// form. A row counts as zero when every entry is within machine epsilon of
// zero.
func echelonRank[T scalar.Float](a []T, n int) int {
	eps := scalar.Epsilon[T]()

	rank := 0
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if scalar.Abs(a[i*n+j]) >= eps {
				rank++
				break
			}
		}
	}

	return rank
}

// echelonDiagonalProduct multiplies the diagonal entries of a matrix in row
// echelon form, which is the determinant up to the sign of untracked row
// swaps.
func echelonDiagonalProduct[T scalar.Float](a []T, n int) T {
	det := scalar.One[T]()
	for i := 0; i < n; i++ {
		det *= a[i*n+i]
	}

	return det
}

// gaussJordan reduces a to reduced row echelon form, mirroring every
// operation onto the adjacent matrix adj. Seeding adj with the identity
// turns the pair into an inversion: when a reaches the identity, adj holds
// a⁻¹.
//
// The reduction walks rows top to bottom with a lead column cursor. For each
// row the first non-epsilon pivot at or below it in the lead column is
// swapped into place; if the lead column runs off the matrix before a pivot
// is found the matrix is rank deficient and the reduction stops early,
// leaving both operands partially reduced. Pivot rows are normalized to a
// unit pivot and the pivot column is eliminated from every other row, above
// and below. All three operations — swap, scale, subtract — are applied
// identically to adj.
func gaussJordan[T scalar.Float](a, adj []T, n int) {
	eps := scalar.Epsilon[T]()

	lead := 0
	for r := 0; r < n; r++ {
		if lead >= n {
			return
		}

		// Find a usable pivot at or below row r.
		i := r
		for scalar.Abs(a[i*n+lead]) < eps {
			i++
			if i == n {
				i = r
				lead++
				if lead == n {
					return
				}
			}
		}

		if i != r {
			swapFlatRows(a, n, i, r)
			swapFlatRows(adj, n, i, r)
		}

		// Normalize the pivot row to a unit pivot.
		pivot := a[r*n+lead]
		for j := 0; j < n; j++ {
			a[r*n+j] /= pivot
			adj[r*n+j] /= pivot
		}

		// Eliminate the lead column from every other row.
		for i := 0; i < n; i++ {
			if i == r {
				continue
			}
			f := a[i*n+lead]
			for j := 0; j < n; j++ {
				a[i*n+j] -= a[r*n+j] * f
				adj[i*n+j] -= adj[r*n+j] * f
			}
		}

		lead++
	}
}
