package ecfft

import "github.com/jonathanmweiss/go-ecfft/group"

// CosetPrecomputation is an ordered list of level records, indexed by depth
// (spec §3). Steps[0] covers the coset this precomputation was built for;
// Steps[1:] cover the nested image cosets reached by repeatedly applying
// the isogeny tower.
type CosetPrecomputation struct {
	Steps []Step
}

// Extend computes [P(x') : x' in Steps[0].SPrime] given values = [P(x) : x
// in Steps[0].S], for any polynomial P of degree < len(Steps[0].S) (spec
// §4.7). It reconstructs P via Lagrange interpolation over S (using the
// level's precomputed barycentric weights) and evaluates the result at
// each point of SPrime, an O(n^2) algorithm in the pair count n =
// len(S) = len(SPrime) — see DESIGN.md for why this is used in place of
// the spec's O(n log n) matrix recursion.
func (c CosetPrecomputation) Extend(values []group.Group) []group.Group {
	if len(c.Steps) == 0 {
		panic("ecfft: extend called on an empty coset precomputation")
	}

	step := c.Steps[0]
	if len(values) != len(step.S) {
		panic("ecfft: extend: input length must equal the level's coset half")
	}
	if len(step.S) == 0 {
		return nil
	}

	f := step.S[0].Field()
	out := make([]group.Group, len(step.SPrime))

	for j, x := range step.SPrime {
		// Z(x) = prod_i (x - S[i]).
		z := f.One()
		for _, si := range step.S {
			z = z.Mul(x.Sub(si))
		}

		acc := values[0].Zero()
		for i, si := range step.S {
			// L_i(x) = Weights[i] * Z(x) / (x - S[i]).
			li := step.Weights[i].Mul(z).Mul(x.Sub(si).Inverse())
			acc = acc.Add(values[i].ScalarMul(li))
		}

		out[j] = acc
	}

	return out
}
