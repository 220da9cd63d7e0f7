// Package vecx provides a generic numeric-primitives layer: a scalar
// constraint, elementwise vector arithmetic, and the reductions (inner
// product, norms) that line-search and minimizer code is written in terms
// of.
//
// The driver packages (optimize, linesearch, nlcg) are monomorphized on
// float64 and use gonum.org/v1/gonum/floats and gonum.org/v1/gonum/mat
// directly; none of them imports vecx. vecx is a standalone package for
// callers that want the same vector algebra at float32 precision too.
package vecx

import "math"

// Float constrains T to IEEE single or double precision.
type Float interface {
	~float32 | ~float64
}

// Add performs dst += s elementwise. Panics if lengths differ.
func Add[T Float](dst, s []T) {
	mustSameLen(dst, s)
	for i := range dst {
		dst[i] += s[i]
	}
}

// Sub performs dst -= s elementwise. Panics if lengths differ.
func Sub[T Float](dst, s []T) {
	mustSameLen(dst, s)
	for i := range dst {
		dst[i] -= s[i]
	}
}

// Scale multiplies every element of dst by c.
func Scale[T Float](c T, dst []T) {
	for i := range dst {
		dst[i] *= c
	}
}

// AddScaled performs dst = dst + alpha*s elementwise.
func AddScaled[T Float](dst []T, alpha T, s []T) {
	mustSameLen(dst, s)
	for i := range dst {
		dst[i] += alpha * s[i]
	}
}

// Mul performs dst *= s elementwise.
func Mul[T Float](dst, s []T) {
	mustSameLen(dst, s)
	for i := range dst {
		dst[i] *= s[i]
	}
}

// Div performs dst /= s elementwise.
func Div[T Float](dst, s []T) {
	mustSameLen(dst, s)
	for i := range dst {
		dst[i] /= s[i]
	}
}

// Sqrt replaces every element of dst with its square root.
func Sqrt[T Float](dst []T) {
	for i := range dst {
		dst[i] = T(math.Sqrt(float64(dst[i])))
	}
}

// Abs replaces every element of dst with its absolute value.
func Abs[T Float](dst []T) {
	for i := range dst {
		if dst[i] < 0 {
			dst[i] = -dst[i]
		}
	}
}

// Pow replaces every element of dst with dst[i]^p.
func Pow[T Float](dst []T, p T) {
	for i := range dst {
		dst[i] = T(math.Pow(float64(dst[i]), float64(p)))
	}
}

// Dot returns the inner product of a and b.
func Dot[T Float](a, b []T) T {
	mustSameLen(a, b)
	var sum T
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}

// Norm2 returns the Euclidean (2-) norm of v.
func Norm2[T Float](v []T) T {
	return T(math.Sqrt(float64(Dot(v, v))))
}

// NormInf returns the infinity norm (max absolute value) of v.
func NormInf[T Float](v []T) T {
	var m T
	for _, x := range v {
		if x < 0 {
			x = -x
		}
		if x > m {
			m = x
		}
	}
	return m
}

// Outer computes the outer product a ⊗ b into the row-major dst buffer of
// size len(a)*len(b).
func Outer[T Float](dst []T, a, b []T) {
	n, m := len(a), len(b)
	if len(dst) != n*m {
		panic("vecx: Outer: dst has wrong length")
	}
	for i := 0; i < n; i++ {
		for j := 0; j < m; j++ {
			dst[i*m+j] = a[i] * b[j]
		}
	}
}

// MatVec computes dst = A*x for a row-major n×m matrix A and x of length m.
func MatVec[T Float](dst []T, a []T, rows, cols int, x []T) {
	if len(x) != cols || len(dst) != rows || len(a) != rows*cols {
		panic("vecx: MatVec: dimension mismatch")
	}
	for i := 0; i < rows; i++ {
		var sum T
		row := a[i*cols : i*cols+cols]
		for j := 0; j < cols; j++ {
			sum += row[j] * x[j]
		}
		dst[i] = sum
	}
}

// Identity writes an n×n identity matrix, row-major, into dst.
func Identity[T Float](dst []T, n int) {
	if len(dst) != n*n {
		panic("vecx: Identity: dst has wrong length")
	}
	for i := range dst {
		dst[i] = 0
	}
	for i := 0; i < n; i++ {
		dst[i*n+i] = 1
	}
}

// MaxElem returns the elementwise max of a and b into dst.
func MaxElem[T Float](dst, a, b []T) {
	mustSameLen(a, b)
	for i := range a {
		if a[i] >= b[i] {
			dst[i] = a[i]
		} else {
			dst[i] = b[i]
		}
	}
}

// ClipElem clamps every element of dst into [lo, hi].
func ClipElem[T Float](dst []T, lo, hi T) {
	for i := range dst {
		if dst[i] < lo {
			dst[i] = lo
		} else if dst[i] > hi {
			dst[i] = hi
		}
	}
}

func mustSameLen[T Float](a, b []T) {
	if len(a) != len(b) {
		panic("vecx: argument length mismatch")
	}
}
