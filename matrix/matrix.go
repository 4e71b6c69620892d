// Package matrix implements the 2x2 matrix over F used to convert between
// a pair of coefficient-domain values and a pair of evaluation-domain
// values at each level of the ECFFT recursion (spec §4.2).
package matrix

import (
	"github.com/jonathanmweiss/go-ecfft/field"
	"github.com/jonathanmweiss/go-ecfft/group"
)

// Matrix is [[A,B],[C,D]] over F, row-major.
type Matrix struct {
	A, B, C, D field.Elem
}

// New builds a matrix from its four entries.
func New(a, b, c, d field.Elem) Matrix {
	return Matrix{A: a, B: b, C: c, D: d}
}

// Inverse returns (1/det)*[[D,-B],[-C,A]]. Panics when det == 0: the caller
// guarantees invertibility in the ECFFT construction (spec §4.2), so a
// singular matrix here is a programmer precondition violation.
func (m Matrix) Inverse() Matrix {
	det := m.A.Mul(m.D).Sub(m.B.Mul(m.C))
	if det.IsZero() {
		panic("matrix: singular 2x2 matrix has no inverse")
	}

	invDet := det.Inverse()

	return Matrix{
		A: m.D.Mul(invDet),
		B: m.B.Neg().Mul(invDet),
		C: m.C.Neg().Mul(invDet),
		D: m.A.Mul(invDet),
	}
}

// Multiply returns [A*x + B*y, C*x + D*y]. Does not assume G is
// commutative (it isn't, in general, on an elliptic curve).
func (m Matrix) Multiply(x, y group.Group) (group.Group, group.Group) {
	out0 := x.ScalarMul(m.A).Add(y.ScalarMul(m.B))
	out1 := x.ScalarMul(m.C).Add(y.ScalarMul(m.D))

	return out0, out1
}
