package ecfft

import (
	"fmt"

	"github.com/jonathanmweiss/go-ecfft/field"
	"github.com/jonathanmweiss/go-ecfft/matrix"
)

// BuildPrecomputation runs the ECFFT precomputation (spec §4.6): from
// Params.Coset() (length N = 2^k) and Params.Isogenies() (length k), it
// builds the chain of k level records. Parameter data is trusted input
// (spec §7); a malformed blob (wrong isogeny count, odd-length level, or a
// level whose pairing collapses to a single image point when it shouldn't)
// is reported as an error rather than panicking, since it originates
// outside this package's control.
func BuildPrecomputation(p Parameters) (*Precomputation, error) {
	k := p.LogN()
	l := p.Coset()

	if len(l) != p.Size() {
		return nil, fmt.Errorf("ecfft: coset length %d does not match size %d", len(l), p.Size())
	}

	isos := p.Isogenies()
	if len(isos) != k {
		return nil, fmt.Errorf("ecfft: expected %d isogenies, got %d", k, len(isos))
	}

	steps := make([]Step, k)

	for i := 0; i < k; i++ {
		n := len(l)
		if n%2 != 0 {
			return nil, fmt.Errorf("ecfft: level %d has odd length %d", i, n)
		}

		half := n / 2
		s := l[:half]
		sPrime := l[half:]

		f := s[0].Field()
		one := f.One()

		matrices := make([]matrix.Matrix, half)
		weights := make([]field.Elem, half)

		for j := 0; j < half; j++ {
			matrices[j] = matrix.New(one, s[j], one, sPrime[j])

			w := one
			for m := 0; m < half; m++ {
				if m == j {
					continue
				}

				diff := s[j].Sub(s[m])
				if diff.IsZero() {
					return nil, fmt.Errorf("ecfft: level %d has a repeated coset point", i)
				}

				w = w.Mul(diff)
			}
			if w.IsZero() {
				return nil, fmt.Errorf("ecfft: level %d produced a zero barycentric denominator", i)
			}

			weights[j] = w.Inverse()
		}

		steps[i] = Step{S: s, SPrime: sPrime, Matrices: matrices, Weights: weights}

		next := make([]field.Elem, half)
		for j := 0; j < half; j++ {
			next[j] = isos[i].EvaluateX(s[j])
		}
		l = next
	}

	if len(l) != 1 {
		return nil, fmt.Errorf("ecfft: precomputation base case has length %d, want 1", len(l))
	}

	return &Precomputation{Params: p, Coset: CosetPrecomputation{Steps: steps}}, nil
}
