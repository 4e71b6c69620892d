// Package isogeny represents the degree-2 rational maps E -> E' that
// collapse a coset level onto the next (spec §4.3).
package isogeny

import "github.com/jonathanmweiss/go-ecfft/field"

// Isogeny stores the four coefficient vectors of a degree-2 rational map
// x -> num_x(x)/den_x(x), y -> num_y(x)/den_y(x)*y. The y-coordinate map is
// stored for completeness (spec §3) but unused by the evaluation engine,
// which only ever collapses x-coordinates of a coset.
type Isogeny struct {
	NumX, DenX []field.Elem
	NumY, DenY []field.Elem
}

// EvaluateX returns num_x(x)/den_x(x), evaluating numerator and
// denominator with field.Horner (spec §9). Panics if den_x(x) == 0: the
// pairing invariant guarantees the denominator never vanishes on a
// well-formed coset, so a zero here is a malformed-parameter-data fault.
func (i Isogeny) EvaluateX(x field.Elem) field.Elem {
	num := field.Horner(i.NumX, x)
	den := field.Horner(i.DenX, x)

	return num.Mul(den.Inverse())
}

// NewMonomialSquare returns the isogeny x -> x^2, the degree-2 map used by
// the toy parameter set's classical doubling tower (params/toy).
func NewMonomialSquare(f *field.Field) Isogeny {
	zero := f.Zero()
	one := f.One()

	return Isogeny{
		NumX: []field.Elem{zero, zero, one}, // 0 + 0*x + 1*x^2
		DenX: []field.Elem{one},             // 1
		NumY: []field.Elem{zero},
		DenY: []field.Elem{one},
	}
}
