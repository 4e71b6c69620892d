package ecfft

import (
	"github.com/jonathanmweiss/go-ecfft/field"
	"github.com/jonathanmweiss/go-ecfft/matrix"
)

// Step is level record i of a coset precomputation, covering one halving
// L^(i) -> L^(i+1) (spec §3/§4.6). S and SPrime hold the two halves of
// L^(i); S[j] and SPrime[j] are the isogeny-kernel pair collapsed together
// by that level's isogeny.
type Step struct {
	S, SPrime []field.Elem

	// Matrices[j] is [[1, S[j]], [1, SPrime[j]]], the forward map from
	// (P0(y_j), P1(y_j)) to (P(S[j]), P(SPrime[j])) for any polynomial P
	// of degree < len(S)+len(SPrime) split as P(x) = P0(phi(x)) +
	// x*P1(phi(x)) (spec §4.2/§4.6). Used by EvaluateOverDomain's
	// butterfly combine step.
	Matrices []matrix.Matrix

	// Weights holds the barycentric weights of S: Weights[j] =
	// 1 / prod_{i != j} (S[j] - S[i]). Extend uses these to interpolate
	// the degree-<len(S) polynomial implied by values on S and evaluate
	// it at SPrime directly (see DESIGN.md for why this replaces the
	// spec's inverse_matrices/vanishing_on_s_prime recursion).
	Weights []field.Elem
}
