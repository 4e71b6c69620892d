// Package group defines the abelian-group capability set G that ECFFT's
// coefficient domain must satisfy (spec §3/§4.1): addition, negation,
// identity, and scalar multiplication by a field.Elem.
package group

import "github.com/jonathanmweiss/go-ecfft/field"

// Group is the coefficient type ECFFT polynomials range over. Negation
// must be O(1) relative to Add; this is relied on by DenseGroupPolynomial's
// signed small-point Horner variant and by the Vandermonde symmetric-domain
// specialisation.
//
// Two concrete implementations are provided: FieldElement (G = F itself)
// and Point (G = E'(F), a companion elliptic curve's point group).
type Group interface {
	Add(Group) Group
	Neg() Group
	IsZero() bool
	ScalarMul(field.Elem) Group
	Equal(Group) bool
	// Zero returns the identity element of the same concrete type as the
	// receiver, used to build accumulators without a type switch.
	Zero() Group
}

// FieldOf recovers the scalar field backing a Group element's concrete
// type. Both concrete implementations carry their field (directly, or via
// their curve), so callers that need an F::from(uint64)/F::zero() outside
// of a Group method (e.g. the signed small-point Horner variants) can get
// one back without widening the Group interface itself.
func FieldOf(g Group) *field.Field {
	switch v := g.(type) {
	case FieldElement:
		return v.E.Field()
	case Point:
		return v.Curve.F
	default:
		panic("group: unknown Group implementation")
	}
}
