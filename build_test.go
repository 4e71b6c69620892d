package ecfft

import (
	"math/big"
	"testing"

	"github.com/jonathanmweiss/go-ecfft/field"
	"github.com/jonathanmweiss/go-ecfft/isogeny"
	"github.com/stretchr/testify/assert"
)

type fakeParams struct {
	logN      int
	size      int
	coset     []field.Elem
	isogenies []isogeny.Isogeny
}

func (p *fakeParams) LogN() int {
	return p.logN
}

func (p *fakeParams) Size() int {
	if p.size != 0 {
		return p.size
	}
	return 1 << uint(p.logN)
}

func (p *fakeParams) Coset() []field.Elem             { return p.coset }
func (p *fakeParams) Isogenies() []isogeny.Isogeny    { return p.isogenies }
func (p *fakeParams) SubCoset(depth int) []field.Elem { return nil }

func f17Field(t *testing.T) *field.Field {
	t.Helper()

	f, err := field.NewField(big.NewInt(17))
	assert.NoError(t, err)

	return f
}

func validToyParams(t *testing.T) *fakeParams {
	t.Helper()

	f := f17Field(t)
	raw := []uint64{1, 9, 13, 15, 16, 8, 4, 2}
	coset := make([]field.Elem, len(raw))
	for i, v := range raw {
		coset[i] = f.ElemFromUint64(v)
	}

	isos := make([]isogeny.Isogeny, 3)
	for i := range isos {
		isos[i] = isogeny.NewMonomialSquare(f)
	}

	return &fakeParams{logN: 3, coset: coset, isogenies: isos}
}

func TestBuildPrecomputationSucceeds(t *testing.T) {
	a := assert.New(t)

	p := validToyParams(t)
	precomp, err := BuildPrecomputation(p)
	a.NoError(err)
	a.NotNil(precomp)
	a.Equal(3, len(precomp.Coset.Steps))
}

func TestBuildPrecomputationRejectsWrongIsogenyCount(t *testing.T) {
	a := assert.New(t)

	p := validToyParams(t)
	p.isogenies = p.isogenies[:2]

	_, err := BuildPrecomputation(p)
	a.Error(err)
}

func TestBuildPrecomputationRejectsMismatchedCosetLength(t *testing.T) {
	a := assert.New(t)

	p := validToyParams(t)
	p.coset = p.coset[:7]

	_, err := BuildPrecomputation(p)
	a.Error(err)
}

func TestBuildPrecomputationRejectsOddLevel(t *testing.T) {
	a := assert.New(t)

	f := f17Field(t)
	p := &fakeParams{
		logN: 1,
		size: 3,
		coset: []field.Elem{
			f.ElemFromUint64(1), f.ElemFromUint64(2), f.ElemFromUint64(3),
		},
		isogenies: []isogeny.Isogeny{isogeny.NewMonomialSquare(f)},
	}

	_, err := BuildPrecomputation(p)
	a.Error(err)
}

func TestExtendPanicsOnLengthMismatch(t *testing.T) {
	a := assert.New(t)

	p := validToyParams(t)
	precomp, err := BuildPrecomputation(p)
	a.NoError(err)

	a.Panics(func() {
		precomp.CosetPrecomputationAt(0).Extend(nil)
	})
}
