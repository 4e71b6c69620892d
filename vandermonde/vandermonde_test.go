package vandermonde

import (
	"math/big"
	"testing"

	"github.com/jonathanmweiss/go-ecfft/field"
	"github.com/jonathanmweiss/go-ecfft/group"
	"github.com/stretchr/testify/assert"
)

func f17(t *testing.T) *field.Field {
	t.Helper()

	f, err := field.NewField(big.NewInt(17))
	assert.NoError(t, err)

	return f
}

func toVec(f *field.Field, vs []uint64) []group.Group {
	out := make([]group.Group, len(vs))
	for i, v := range vs {
		out[i] = group.NewFieldElement(f.ElemFromUint64(v))
	}

	return out
}

func toElems(f *field.Field, vs []uint64) []field.Elem {
	out := make([]field.Elem, len(vs))
	for i, v := range vs {
		out[i] = f.ElemFromUint64(v)
	}

	return out
}

func assertVecEqual(t *testing.T, want, got []group.Group) {
	t.Helper()

	if !assert.Equal(t, len(want), len(got)) {
		return
	}

	for i := range want {
		assert.True(t, want[i].Equal(got[i]), "index %d", i)
	}
}

// TestLeftMultiply uses the vectors from the reference implementation's
// own test table (points, vector, expected), first case hand-derived and
// the rest generated from a Sage notebook.
func TestLeftMultiply(t *testing.T) {
	f := f17(t)

	cases := []struct {
		points, vector, want []uint64
	}{
		{[]uint64{1, 2}, []uint64{3, 4}, []uint64{7, 11, 2, 1}},
		{[]uint64{3}, []uint64{10}, []uint64{10, 13}},
		{[]uint64{16}, []uint64{16}, []uint64{16}},
		{[]uint64{1, 0}, []uint64{2, 9}, []uint64{11, 2, 2}},
		{[]uint64{10, 16}, []uint64{4, 10}, []uint64{14, 13, 2, 12}},
		{[]uint64{5, 16, 2, 5, 14}, []uint64{14, 1, 14, 3, 14}, []uint64{12, 2}},
		{[]uint64{2, 8, 4, 4, 6}, []uint64{12, 14, 3, 13, 10}, []uint64{1, 5, 13}},
	}

	for _, c := range cases {
		m := Matrix{Points: toElems(f, c.points), NbCols: len(c.want)}
		got := m.LeftMultiply(toVec(f, c.vector))
		assertVecEqual(t, toVec(f, c.want), got)
	}
}

// TestSmallLeftMultiply uses the reference implementation's own test table
// for the signed-symmetric-domain specialisation.
func TestSmallLeftMultiply(t *testing.T) {
	f := f17(t)

	cases := []struct {
		vector, want []uint64
	}{
		{[]uint64{2}, []uint64{2}},
		{[]uint64{14}, []uint64{14, 0}},
		{[]uint64{0}, []uint64{0, 0, 0, 0, 0}},
		{[]uint64{15, 11}, []uint64{9}},
		{[]uint64{10, 16}, []uint64{9, 16, 16, 16, 16}},
		{[]uint64{2, 9, 4}, []uint64{15, 2, 6, 2, 6}},
		{[]uint64{10, 14, 1, 14}, []uint64{5, 2, 16, 1, 14}},
		{[]uint64{3, 14, 12, 14, 3}, []uint64{12, 0}},
	}

	for _, c := range cases {
		got := SmallVandermondeLeftMultiply(toVec(f, c.vector), len(c.want))
		assertVecEqual(t, toVec(f, c.want), got)
	}
}

func TestSmallestRange(t *testing.T) {
	a := assert.New(t)

	a.Equal([]int32{-2, -1, 0, 1, 2}, SmallestRange(5))
	a.Equal([]int32{-1, 0, 1, 2}, SmallestRange(4))
	a.Equal([]int32{0}, SmallestRange(1))

	a.Equal([]int32{}, SmallestRange(0))

	a.Panics(func() {
		SmallestRange(-3)
	})
}

func TestSmallLeftMultiplyAgreesWithGeneral(t *testing.T) {
	f := f17(t)

	vector := toVec(f, []uint64{2, 9, 4, 11, 16})
	nbCols := 6

	points := SmallestRange(int32(len(vector)))
	elemPoints := make([]field.Elem, len(points))
	for i, p := range points {
		var e field.Elem
		if p >= 0 {
			e = f.ElemFromUint64(uint64(p))
		} else {
			e = f.ElemFromUint64(uint64(-p)).Neg()
		}
		elemPoints[i] = e
	}

	m := Matrix{Points: elemPoints, NbCols: nbCols}
	want := m.LeftMultiply(vector)
	got := SmallVandermondeLeftMultiply(vector, nbCols)

	assertVecEqual(t, want, got)
}
