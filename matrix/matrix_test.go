package matrix

import (
	"math/big"
	"testing"

	"github.com/jonathanmweiss/go-ecfft/field"
	"github.com/jonathanmweiss/go-ecfft/group"
	"github.com/stretchr/testify/assert"
)

func TestInverseRoundTrip(t *testing.T) {
	a := assert.New(t)

	f, err := field.NewField(big.NewInt(17))
	a.NoError(err)

	m := New(f.ElemFromUint64(1), f.ElemFromUint64(5), f.ElemFromUint64(2), f.ElemFromUint64(7))
	inv := m.Inverse()

	x := group.NewFieldElement(f.ElemFromUint64(3))
	y := group.NewFieldElement(f.ElemFromUint64(11))

	x1, y1 := m.Multiply(x, y)
	x2, y2 := inv.Multiply(x1, y1)

	a.True(x2.Equal(x))
	a.True(y2.Equal(y))

	x3, y3 := inv.Multiply(x, y)
	x4, y4 := m.Multiply(x3, y3)

	a.True(x4.Equal(x))
	a.True(y4.Equal(y))
}

func TestSingularPanics(t *testing.T) {
	a := assert.New(t)

	f, err := field.NewField(big.NewInt(17))
	a.NoError(err)

	m := New(f.ElemFromUint64(1), f.ElemFromUint64(2), f.ElemFromUint64(2), f.ElemFromUint64(4))

	a.Panics(func() {
		m.Inverse()
	})
}
