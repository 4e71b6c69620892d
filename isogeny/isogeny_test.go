package isogeny

import (
	"math/big"
	"testing"

	"github.com/jonathanmweiss/go-ecfft/field"
	"github.com/stretchr/testify/assert"
)

func TestMonomialSquare(t *testing.T) {
	a := assert.New(t)

	f, err := field.NewField(big.NewInt(17))
	a.NoError(err)

	iso := NewMonomialSquare(f)

	for v := uint64(0); v < 17; v++ {
		x := f.ElemFromUint64(v)
		got := iso.EvaluateX(x)
		want := x.Mul(x)
		a.True(got.Equal(want), "x=%d", v)
	}
}

func TestEvaluateXGeneralRational(t *testing.T) {
	a := assert.New(t)

	f, err := field.NewField(big.NewInt(17))
	a.NoError(err)

	// num_x(x) = 1 + x, den_x(x) = 2 (constant), so evaluate_x(x) = (1+x)/2.
	iso := Isogeny{
		NumX: []field.Elem{f.ElemFromUint64(1), f.ElemFromUint64(1)},
		DenX: []field.Elem{f.ElemFromUint64(2)},
	}

	x := f.ElemFromUint64(5)
	got := iso.EvaluateX(x)
	want := f.ElemFromUint64(1).Add(x).Mul(f.ElemFromUint64(2).Inverse())
	a.True(got.Equal(want))
}
