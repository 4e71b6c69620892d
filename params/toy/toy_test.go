package toy

import (
	"testing"

	ecfft "github.com/jonathanmweiss/go-ecfft"
	"github.com/jonathanmweiss/go-ecfft/field"
	"github.com/jonathanmweiss/go-ecfft/group"
	"github.com/jonathanmweiss/go-ecfft/poly"
	"github.com/stretchr/testify/assert"
)

func TestPrecomputationShape(t *testing.T) {
	a := assert.New(t)

	p := New()
	precomp, err := ecfft.BuildPrecomputation(p)
	a.NoError(err)
	a.Equal(logN, len(precomp.Coset.Steps))

	for i, step := range precomp.Coset.Steps {
		want := 1 << uint(logN-i-1)
		a.Equal(want, len(step.S), "level %d", i)
		a.Equal(want, len(step.SPrime), "level %d", i)
		a.Equal(want, len(step.Matrices))
		a.Equal(want, len(step.Weights))
	}
}

func randPoly(f *field.Field, n int, seed uint64) *poly.DenseGroupPolynomial {
	coeffs := make([]group.Group, n)
	x := seed
	for i := range coeffs {
		x = x*6364136223846793005 + 1
		coeffs[i] = group.NewFieldElement(f.ElemFromUint64(x % 17))
	}
	return poly.New(coeffs)
}

func TestExtendAgreesWithNaiveEvaluate(t *testing.T) {
	a := assert.New(t)

	p := New()
	f := p.Field()
	precomp, err := ecfft.BuildPrecomputation(p)
	a.NoError(err)

	for i := 0; i < logN; i++ {
		step := precomp.Coset.Steps[i]
		halfLen := len(step.S)

		pl := randPoly(f, halfLen, uint64(i+1))

		evalsS := make([]group.Group, halfLen)
		for j, x := range step.S {
			evalsS[j] = pl.Evaluate(x)
		}

		wantSPrime := make([]group.Group, len(step.SPrime))
		for j, x := range step.SPrime {
			wantSPrime[j] = pl.Evaluate(x)
		}

		gotSPrime := precomp.CosetPrecomputationAt(i).Extend(evalsS)

		a.Equal(len(wantSPrime), len(gotSPrime))
		for j := range wantSPrime {
			a.True(wantSPrime[j].Equal(gotSPrime[j]), "level %d, index %d", i, j)
		}
	}
}

func TestEvaluateOverDomainAgreesWithNaiveEvaluate(t *testing.T) {
	a := assert.New(t)

	p := New()
	f := p.Field()
	precomp, err := ecfft.BuildPrecomputation(p)
	a.NoError(err)

	for j := 0; j <= logN; j++ {
		n := 1 << uint(j)
		pl := randPoly(f, n, uint64(100+j))

		domain := p.SubCoset(logN - j)
		a.Equal(n, len(domain))

		want := make([]group.Group, n)
		for i, x := range domain {
			want[i] = pl.Evaluate(x)
		}

		got := precomp.EvaluateOverDomain(pl)

		a.Equal(len(want), len(got))
		for i := range want {
			a.True(want[i].Equal(got[i]), "j=%d index=%d", j, i)
		}
	}
}

func TestEvaluateOverDomainDeterministic(t *testing.T) {
	a := assert.New(t)

	p := New()
	f := p.Field()
	precomp, err := ecfft.BuildPrecomputation(p)
	a.NoError(err)

	pl := randPoly(f, 4, 42)

	got1 := precomp.EvaluateOverDomain(pl)
	got2 := precomp.EvaluateOverDomain(pl)

	a.Equal(len(got1), len(got2))
	for i := range got1 {
		a.True(got1[i].Equal(got2[i]))
	}
}
