// Package ecfft implements the Elliptic-Curve Fast Fourier Transform engine:
// precomputing, from a coset of an elliptic curve and a tower of 2-isogenies,
// the per-level data needed to evaluate a polynomial with coefficients in an
// abelian group G on that coset in O(k*2^k) group operations.
package ecfft

import (
	"github.com/jonathanmweiss/go-ecfft/field"
	"github.com/jonathanmweiss/go-ecfft/isogeny"
)

// Parameters is published by a concrete curve's parameter set (params/bn254,
// params/bls12381, params/curve25519, params/ed25519sc, params/toy). It is
// the sole interface the engine needs to build a Precomputation.
type Parameters interface {
	// LogN is the number of 2-isogeny levels, k.
	LogN() int
	// Size is 2^LogN.
	Size() int
	// Coset returns the base coset L_0, length Size().
	Coset() []field.Elem
	// Isogenies returns the tower phi_0..phi_{k-1}, length LogN().
	Isogenies() []isogeny.Isogeny
	// SubCoset returns the size-2^(LogN()-depth) coset L^(depth) reached
	// from Coset() by applying the first depth isogenies to successive
	// first halves (params.ComputeSubCosets), the evaluation domain for a
	// degree-<2^(LogN()-depth) polynomial. It is in general not a prefix of
	// Coset().
	SubCoset(depth int) []field.Elem
}
