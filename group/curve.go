package group

import "github.com/jonathanmweiss/go-ecfft/field"

// Curve is a short Weierstrass curve y^2 = x^3 + a*x + b over F, the
// companion curve a G = E'(F) coefficient group is built on.
type Curve struct {
	A, B field.Elem
	F    *field.Field
}

func NewCurve(a, b field.Elem) *Curve {
	return &Curve{A: a, B: b, F: a.Field()}
}

// Point is an affine point on a Curve, or the point at infinity (the
// group's identity) when Infinity is true.
type Point struct {
	X, Y     field.Elem
	Infinity bool
	Curve    *Curve
}

func (c *Curve) Identity() Point {
	return Point{Infinity: true, Curve: c}
}

func (c *Curve) NewPoint(x, y field.Elem) Point {
	return Point{X: x, Y: y, Curve: c}
}

func (p Point) checkCurve(o Point) {
	if p.Curve != o.Curve {
		panic("group: mismatched curves")
	}
}

// Add implements the standard affine addition/doubling law for short
// Weierstrass curves.
func (p Point) Add(og Group) Group {
	o := og.(Point)
	p.checkCurve(o)

	if p.Infinity {
		return o
	}
	if o.Infinity {
		return p
	}

	if p.X.Equal(o.X) {
		if p.Y.Equal(o.Y.Neg()) {
			return p.Curve.Identity()
		}
		return p.double()
	}

	// slope = (o.Y - p.Y) / (o.X - p.X)
	lambda := o.Y.Sub(p.Y).Mul(o.X.Sub(p.X).Inverse())
	x3 := lambda.Mul(lambda).Sub(p.X).Sub(o.X)
	y3 := lambda.Mul(p.X.Sub(x3)).Sub(p.Y)

	return p.Curve.NewPoint(x3, y3)
}

func (p Point) double() Group {
	if p.Infinity || p.Y.IsZero() {
		return p.Curve.Identity()
	}

	f := p.Curve.F
	three := f.ElemFromUint64(3)
	two := f.ElemFromUint64(2)

	// slope = (3x^2 + a) / 2y
	num := p.X.Mul(p.X).Mul(three).Add(p.Curve.A)
	den := p.Y.Mul(two)
	lambda := num.Mul(den.Inverse())

	x3 := lambda.Mul(lambda).Sub(p.X).Sub(p.X)
	y3 := lambda.Mul(p.X.Sub(x3)).Sub(p.Y)

	return p.Curve.NewPoint(x3, y3)
}

// Neg is O(1): flip the y-coordinate.
func (p Point) Neg() Group {
	if p.Infinity {
		return p
	}

	return p.Curve.NewPoint(p.X, p.Y.Neg())
}

func (p Point) IsZero() bool {
	return p.Infinity
}

// ScalarMul computes s*P via double-and-add over s's big.Int bits.
func (p Point) ScalarMul(s field.Elem) Group {
	acc := p.Curve.Identity()
	addend := Group(p)
	v := s.BigInt()

	for i := 0; i < v.BitLen(); i++ {
		if v.Bit(i) == 1 {
			acc = acc.Add(addend).(Point)
		}
		addend = addend.Add(addend)
	}

	return acc
}

func (p Point) Equal(og Group) bool {
	o := og.(Point)
	p.checkCurve(o)

	if p.Infinity || o.Infinity {
		return p.Infinity == o.Infinity
	}

	return p.X.Equal(o.X) && p.Y.Equal(o.Y)
}

func (p Point) Zero() Group {
	return p.Curve.Identity()
}

func (p Point) IsOnCurve() bool {
	if p.Infinity {
		return true
	}

	lhs := p.Y.Mul(p.Y)
	rhs := p.X.Mul(p.X).Mul(p.X).Add(p.Curve.A.Mul(p.X)).Add(p.Curve.B)

	return lhs.Equal(rhs)
}
