// Package poly implements the dense coefficient-form polynomial over a
// coefficient group G (spec §4.4), grounded on the teacher's field.Polynomial
// Horner loop (field/poly.go, now removed from this tree — see DESIGN.md)
// generalised from coefficients-over-a-field to coefficients-over-a-group.
package poly

import (
	"github.com/jonathanmweiss/go-ecfft/field"
	"github.com/jonathanmweiss/go-ecfft/group"
)

// DenseGroupPolynomial is a vector of coefficients in G, index i holding
// the coefficient of x^i. Polynomials are value objects; no shared
// ownership.
type DenseGroupPolynomial struct {
	Coeffs []group.Group
}

func New(coeffs []group.Group) *DenseGroupPolynomial {
	return &DenseGroupPolynomial{Coeffs: coeffs}
}

// Degree returns len(coeffs)-1 for a non-zero polynomial, 0 for the zero
// polynomial (spec §4.4). Trailing-zero canonicalisation is otherwise
// advisory (spec §3): evaluation routines tolerate trailing zero
// coefficients in a non-zero polynomial.
func (p *DenseGroupPolynomial) Degree() int {
	if p.IsZero() {
		return 0
	}

	return len(p.Coeffs) - 1
}

// IsZero reports whether p is empty or every coefficient is zero.
func (p *DenseGroupPolynomial) IsZero() bool {
	for _, c := range p.Coeffs {
		if !c.IsZero() {
			return false
		}
	}

	return true
}

// Evaluate computes p(point) via Horner's rule: starting from the leading
// coefficient c_{n-1}, repeatedly set acc <- acc*point + c_i for
// i = n-2..0. Panics if p has no coefficients.
func (p *DenseGroupPolynomial) Evaluate(point field.Elem) group.Group {
	if len(p.Coeffs) == 0 {
		panic("poly: Evaluate called on empty polynomial")
	}

	acc := p.Coeffs[len(p.Coeffs)-1]
	for i := len(p.Coeffs) - 2; i >= 0; i-- {
		acc = acc.ScalarMul(point).Add(p.Coeffs[i])
	}

	return acc
}

// EvaluateSmall computes p(point) for a signed small integer point,
// exploiting cheap group negation for negative points (spec §4.4):
//
//	point == 0  -> c_0
//	point > 0   -> ordinary Horner with F::from(point)
//	point < 0   -> negated-Horner: acc <- -(acc*|point|) + c_i
//
// The negated-Horner identity: with p = -q, q>0, acc*p = -(acc*q).
func (p *DenseGroupPolynomial) EvaluateSmall(point int32) group.Group {
	if len(p.Coeffs) == 0 {
		panic("poly: EvaluateSmall called on empty polynomial")
	}

	if point == 0 {
		return p.Coeffs[0]
	}

	f := group.FieldOf(p.Coeffs[0])

	if point > 0 {
		return p.Evaluate(f.ElemFromUint64(uint64(point)))
	}

	q := f.ElemFromUint64(uint64(-int64(point)))

	acc := p.Coeffs[len(p.Coeffs)-1]
	for i := len(p.Coeffs) - 2; i >= 0; i-- {
		acc = acc.ScalarMul(q).Neg().Add(p.Coeffs[i])
	}

	return acc
}
