package group

import "github.com/jonathanmweiss/go-ecfft/field"

// FieldElement is the G = F case: the field acting as its own additive
// group, with scalar multiplication equal to field multiplication.
type FieldElement struct {
	E field.Elem
}

func NewFieldElement(e field.Elem) FieldElement {
	return FieldElement{E: e}
}

func (g FieldElement) Add(o Group) Group {
	return FieldElement{E: g.E.Add(o.(FieldElement).E)}
}

func (g FieldElement) Neg() Group {
	return FieldElement{E: g.E.Neg()}
}

func (g FieldElement) IsZero() bool {
	return g.E.IsZero()
}

func (g FieldElement) ScalarMul(s field.Elem) Group {
	return FieldElement{E: g.E.Mul(s)}
}

func (g FieldElement) Equal(o Group) bool {
	return g.E.Equal(o.(FieldElement).E)
}

func (g FieldElement) Zero() Group {
	return FieldElement{E: g.E.Field().Zero()}
}
