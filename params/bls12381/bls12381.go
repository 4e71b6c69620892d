// Package bls12381 publishes the ECFFT parameter set for the BLS12-381
// base field (spec §6). LogN=15 matches the companion curve's order
// factorisation (2^15 * ...). See params/bn254's package doc for the
// rationale behind sourcing the modulus from gnark-crypto, leaving the
// production coset/isogeny tables unembedded, and wiring them in via New
// instead.
package bls12381

import (
	"fmt"
	"sync"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fp"
	"github.com/jonathanmweiss/go-ecfft/field"
	"github.com/jonathanmweiss/go-ecfft/isogeny"
	"github.com/jonathanmweiss/go-ecfft/params"
)

const (
	// LogN is the number of 2-isogeny levels.
	LogN = 15
	// NumLimbs is the 64-bit limb width of the base field (384 bits).
	NumLimbs = 6
)

var (
	fieldOnce sync.Once
	theField  *field.Field
)

// Field returns the BLS12-381 base field.
func Field() *field.Field {
	fieldOnce.Do(func() {
		f, err := field.NewField(fp.Modulus())
		if err != nil {
			panic(err)
		}
		theField = f
	})

	return theField
}

// Parameters implements ecfft.Parameters for BLS12-381. The zero value
// carries no coset/isogeny data; build one with New to actually evaluate
// anything.
type Parameters struct {
	coset     []field.Elem
	isos      []isogeny.Isogeny
	subCosets [][]field.Elem
}

// New decodes a production (coset, isogeny tower) pair from the blob format
// params.DecodeCoset/DecodeIsogenies expect. Returns an error if either
// blob decodes to the wrong length for LogN.
func New(cosetBlob, isoBlob []byte) (Parameters, error) {
	f := Field()

	coset, err := params.DecodeCoset(cosetBlob, NumLimbs, params.NewLimbDecoder(f))
	if err != nil {
		return Parameters{}, err
	}
	if len(coset) != 1<<LogN {
		return Parameters{}, fmt.Errorf("params/bls12381: coset has %d elements, want %d", len(coset), 1<<LogN)
	}

	isos, err := params.DecodeIsogenies(isoBlob, NumLimbs, params.NewLimbDecoder(f))
	if err != nil {
		return Parameters{}, err
	}
	if len(isos) != LogN {
		return Parameters{}, fmt.Errorf("params/bls12381: isogeny tower has %d levels, want %d", len(isos), LogN)
	}

	return Parameters{
		coset:     coset,
		isos:      isos,
		subCosets: params.ComputeSubCosets(coset, isos),
	}, nil
}

func (Parameters) LogN() int { return LogN }

func (Parameters) Size() int { return 1 << LogN }

func (p Parameters) Coset() []field.Elem {
	if p.coset == nil {
		panic("params/bls12381: Parameters has no embedded coset data; construct it with New(cosetBlob, isoBlob)")
	}
	return p.coset
}

func (p Parameters) Isogenies() []isogeny.Isogeny {
	if p.isos == nil {
		panic("params/bls12381: Parameters has no embedded isogeny data; construct it with New(cosetBlob, isoBlob)")
	}
	return p.isos
}

func (p Parameters) SubCoset(depth int) []field.Elem {
	if p.subCosets == nil {
		panic("params/bls12381: Parameters has no embedded coset data; construct it with New(cosetBlob, isoBlob)")
	}
	return p.subCosets[depth]
}
