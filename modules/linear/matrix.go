package linear

import (
	"errors"
	"fmt"

	"AlgebraicPermutations/modules/fields"
)

// ErrSingular is returned when inverting a singular matrix.
var ErrSingular = errors.New("matrix is singular")

// Matrix is a dense row-major matrix of field elements.
type Matrix[E comparable] [][]E

// NewMatrix returns an n x m zero matrix.
func NewMatrix[E comparable](f fields.Field[E], n, m int) Matrix[E] {
	res := make(Matrix[E], n)
	for i := range res {
		res[i] = fields.Zeroes(f, m)
	}
	return res
}

// Identity returns the n x n identity matrix.
func Identity[E comparable](f fields.Field[E], n int) Matrix[E] {
	res := NewMatrix(f, n, n)
	for i := 0; i < n; i++ {
		res[i][i] = f.One()
	}
	return res
}

// CirculantMatrix expands a first row into M[i][j] = row[(j - i) mod n].
func CirculantMatrix[E comparable](row []E) Matrix[E] {
	n := len(row)
	res := make(Matrix[E], n)
	for i := 0; i < n; i++ {
		res[i] = make([]E, n)
		for j := 0; j < n; j++ {
			res[i][j] = row[(j-i+n)%n]
		}
	}
	return res
}

// CauchyMatrix builds M[i][j] = 1 / (xs[i] + ys[j]). Every sum has to be
// non-zero, distinct xs and ys make the matrix MDS.
func CauchyMatrix[E comparable](f fields.Field[E], xs, ys []E) (Matrix[E], error) {
	res := make(Matrix[E], len(xs))
	for i := range xs {
		res[i] = make([]E, len(ys))
		for j := range ys {
			inv, ok := f.Inverse(f.Add(xs[i], ys[j]))
			if !ok {
				return nil, fmt.Errorf("cauchy entry (%d, %d): %w", i, j, fields.ErrNoInverse)
			}
			res[i][j] = inv
		}
	}
	return res, nil
}

// Rows returns the number of rows.
func (m Matrix[E]) Rows() int { return len(m) }

// Cols returns the number of columns.
func (m Matrix[E]) Cols() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// IsSquare reports whether m is n x n with n > 0.
func (m Matrix[E]) IsSquare() bool {
	if len(m) == 0 {
		return false
	}
	for _, row := range m {
		if len(row) != len(m) {
			return false
		}
	}
	return true
}

// Clone deep-copies the matrix.
func (m Matrix[E]) Clone() Matrix[E] {
	res := make(Matrix[E], len(m))
	for i := range m {
		res[i] = append([]E(nil), m[i]...)
	}
	return res
}

// Transpose returns the transposed matrix.
func (m Matrix[E]) Transpose() Matrix[E] {
	res := make(Matrix[E], m.Cols())
	for j := range res {
		res[j] = make([]E, m.Rows())
		for i := range m {
			res[j][i] = m[i][j]
		}
	}
	return res
}

// Submatrix cuts rows [r0, r1) and columns [c0, c1).
func (m Matrix[E]) Submatrix(r0, r1, c0, c1 int) Matrix[E] {
	res := make(Matrix[E], r1-r0)
	for i := r0; i < r1; i++ {
		res[i-r0] = append([]E(nil), m[i][c0:c1]...)
	}
	return res
}

// MulVec computes m * v.
func (m Matrix[E]) MulVec(f fields.Field[E], v []E) []E {
	res := make([]E, len(m))
	for i, row := range m {
		acc := f.Zero()
		for j, a := range row {
			acc = f.Add(acc, f.Mul(a, v[j]))
		}
		res[i] = acc
	}
	return res
}

// VecMul computes the row vector v * m.
func (m Matrix[E]) VecMul(f fields.Field[E], v []E) []E {
	res := fields.Zeroes(f, m.Cols())
	for i, row := range m {
		for j, a := range row {
			res[j] = f.Add(res[j], f.Mul(v[i], a))
		}
	}
	return res
}

// Mul computes m * o.
func (m Matrix[E]) Mul(f fields.Field[E], o Matrix[E]) Matrix[E] {
	res := NewMatrix(f, m.Rows(), o.Cols())
	for i := range m {
		for k, a := range m[i] {
			if f.IsZero(a) {
				continue
			}
			for j := range o[k] {
				res[i][j] = f.Add(res[i][j], f.Mul(a, o[k][j]))
			}
		}
	}
	return res
}

// Equal compares two matrices entry by entry.
func (m Matrix[E]) Equal(o Matrix[E]) bool {
	if len(m) != len(o) {
		return false
	}
	for i := range m {
		if len(m[i]) != len(o[i]) {
			return false
		}
		for j := range m[i] {
			if m[i][j] != o[i][j] {
				return false
			}
		}
	}
	return true
}

// Inverse computes m^-1 by Gauss-Jordan elimination.
func (m Matrix[E]) Inverse(f fields.Field[E]) (Matrix[E], error) {
	if !m.IsSquare() {
		return nil, fmt.Errorf("inverse of a %dx%d matrix", m.Rows(), m.Cols())
	}
	n := len(m)
	a := m.Clone()
	inv := Identity(f, n)

	for col := 0; col < n; col++ {
		pivot := -1
		for row := col; row < n; row++ {
			if !f.IsZero(a[row][col]) {
				pivot = row
				break
			}
		}
		if pivot < 0 {
			return nil, ErrSingular
		}
		a[col], a[pivot] = a[pivot], a[col]
		inv[col], inv[pivot] = inv[pivot], inv[col]

		scale, _ := f.Inverse(a[col][col])
		for j := 0; j < n; j++ {
			a[col][j] = f.Mul(a[col][j], scale)
			inv[col][j] = f.Mul(inv[col][j], scale)
		}

		for row := 0; row < n; row++ {
			if row == col || f.IsZero(a[row][col]) {
				continue
			}
			factor := a[row][col]
			for j := 0; j < n; j++ {
				a[row][j] = f.Sub(a[row][j], f.Mul(factor, a[col][j]))
				inv[row][j] = f.Sub(inv[row][j], f.Mul(factor, inv[col][j]))
			}
		}
	}
	return inv, nil
}

// IsInvertible reports whether m has full rank.
func (m Matrix[E]) IsInvertible(f fields.Field[E]) bool {
	_, err := m.Inverse(f)
	return err == nil
}
