package objective

import "gonum.org/v1/gonum/mat"

// Matrix is the dense row-major n×n matrix used by the BFGS (inverse
// Hessian) and SR1 (Hessian) drivers. It is a thin alias over gonum's
// mat.Dense, the same type gonum's own quasi-Newton optimizers build their
// rank-one/rank-two updates on.
type Matrix = mat.Dense

// NewMatrix allocates a zero-valued r×c Matrix.
func NewMatrix(r, c int) *Matrix {
	return mat.NewDense(r, c, nil)
}

// IdentityMatrix allocates an n×n identity Matrix.
func IdentityMatrix(n int) *Matrix {
	m := NewMatrix(n, n)
	for i := 0; i < n; i++ {
		m.Set(i, i, 1)
	}
	return m
}
