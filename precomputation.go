package ecfft

import (
	"github.com/jonathanmweiss/go-ecfft/group"
	"github.com/jonathanmweiss/go-ecfft/poly"
)

// Precomputation is the immutable, read-only object produced once from a
// Parameters value (spec §3/§6). All query operations borrow it
// immutably and return fresh output vectors.
type Precomputation struct {
	Params Parameters
	Coset  CosetPrecomputation
}

// CosetPrecomputationAt returns the view of the precomputation starting at
// the given depth, matching the reference API's
// precomp.coset_precomputations[depth].
func (p *Precomputation) CosetPrecomputationAt(depth int) CosetPrecomputation {
	return CosetPrecomputation{Steps: p.Coset.Steps[depth:]}
}

// EvaluateOverDomain evaluates poly (coefficient vector of length 2^j, j <=
// LogN) at every point of Params.SubCoset(LogN-j) (spec §4.8). Panics if
// poly is empty or its length is not a power of two no greater than
// Params.Size().
func (p *Precomputation) EvaluateOverDomain(dgp *poly.DenseGroupPolynomial) []group.Group {
	n := len(dgp.Coeffs)
	if n == 0 {
		panic("ecfft: EvaluateOverDomain called on an empty polynomial")
	}

	j := 0
	for (1 << uint(j)) < n {
		j++
	}
	if 1<<uint(j) != n {
		panic("ecfft: EvaluateOverDomain requires a power-of-two coefficient length")
	}

	k := p.Params.LogN()
	depth := k - j
	if depth < 0 {
		panic("ecfft: polynomial degree exceeds the precomputation's coset size")
	}

	return p.evaluateAt(depth, dgp.Coeffs)
}

// evaluateAt is the recursive even/odd butterfly: P(x) = P_e(phi(x)) +
// x*P_o(phi(x)), combined pair-by-pair via the level's forward matrix
// (spec §4.8). coeffs has length 2^(k-depth).
func (p *Precomputation) evaluateAt(depth int, coeffs []group.Group) []group.Group {
	n := len(coeffs)
	if n == 1 {
		return []group.Group{coeffs[0]}
	}

	half := n / 2
	even := make([]group.Group, half)
	odd := make([]group.Group, half)
	for i := 0; i < half; i++ {
		even[i] = coeffs[2*i]
		odd[i] = coeffs[2*i+1]
	}

	evalsEven := p.evaluateAt(depth+1, even)
	evalsOdd := p.evaluateAt(depth+1, odd)

	// step.Matrices[j] = [[1,S[j]],[1,S'[j]]] assumes the odd-half weight
	// psi(x)=x, i.e. P(x) = P_e(phi(x)) + x*P_o(phi(x)) exactly -- true of
	// the monomial tower phi(x)=x^2 (params/toy) but not the general
	// degree-2 curve isogeny, whose psi_i(x) weight (spec §4.7) can differ
	// from the identity. Only params/toy exercises this path; see
	// DESIGN.md's Open Questions for the production-curve caveat.
	step := p.Coset.Steps[depth]
	out := make([]group.Group, n)
	for j := 0; j < half; j++ {
		x0, x1 := step.Matrices[j].Multiply(evalsEven[j], evalsOdd[j])
		out[j] = x0
		out[j+half] = x1
	}

	return out
}
