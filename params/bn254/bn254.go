// Package bn254 publishes the ECFFT parameter set for the BN254 curve's
// base field, the companion curve E: y^2 = x^3 + x + b over that field
// (spec §6). LogN=14 matches the factorisation of E's order (2^14 * ...).
//
// The base field modulus comes from gnark-crypto's generated bn254/fp
// package (grounded on RiemaLabs-go-kzg-4844, the pack repo that wires
// gnark-crypto into a domain/roots-of-unity precomputation the same way
// this package wires it into an ECFFT precomputation). The real (coset,
// isogenies) data tables are offline algebra-system output the spec
// treats as an opaque external collaborator and out of scope for this
// module (spec §1), so this package does not embed them -- but it does
// wire the params loader (C5): a deployment that has that data as a blob
// supplies it through New, which decodes it with the same
// params.DecodeCoset/DecodeIsogenies path params/toy self-tests against.
// The zero value Parameters{} still implements ecfft.Parameters, with
// Coset/Isogenies/SubCoset panicking until constructed via New.
package bn254

import (
	"fmt"
	"sync"

	"github.com/consensys/gnark-crypto/ecc/bn254/fp"
	"github.com/jonathanmweiss/go-ecfft/field"
	"github.com/jonathanmweiss/go-ecfft/isogeny"
	"github.com/jonathanmweiss/go-ecfft/params"
)

const (
	// LogN is the number of 2-isogeny levels: E's order is
	// 2^14 * 3^2 * 229 * 503 * ... .
	LogN = 14
	// NumLimbs is the 64-bit limb width of the base field (256 bits).
	NumLimbs = 4
)

var (
	fieldOnce sync.Once
	theField  *field.Field
)

// Field returns the BN254 base field, lazily constructed from
// gnark-crypto's modulus.
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

// Parameters implements ecfft.Parameters for BN254. The zero value carries
// no coset/isogeny data; build one with New to actually evaluate anything.
type Parameters struct {
	coset     []field.Elem
	isos      []isogeny.Isogeny
	subCosets [][]field.Elem
}

// New decodes a production (coset, isogeny tower) pair from the blob format
// params.DecodeCoset/DecodeIsogenies expect -- the wiring DESIGN.md calls
// for so a deployment can supply the offline-computed BN254 data instead of
// this package fabricating it. Returns an error if either blob decodes to
// the wrong length for LogN.
func New(cosetBlob, isoBlob []byte) (Parameters, error) {
	f := Field()

	coset, err := params.DecodeCoset(cosetBlob, NumLimbs, params.NewLimbDecoder(f))
	if err != nil {
		return Parameters{}, err
	}
	if len(coset) != 1<<LogN {
		return Parameters{}, fmt.Errorf("params/bn254: coset has %d elements, want %d", len(coset), 1<<LogN)
	}

	isos, err := params.DecodeIsogenies(isoBlob, NumLimbs, params.NewLimbDecoder(f))
	if err != nil {
		return Parameters{}, err
	}
	if len(isos) != LogN {
		return Parameters{}, fmt.Errorf("params/bn254: isogeny tower has %d levels, want %d", len(isos), LogN)
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
		panic("params/bn254: Parameters has no embedded coset data; construct it with New(cosetBlob, isoBlob)")
	}
	return p.coset
}

func (p Parameters) Isogenies() []isogeny.Isogeny {
	if p.isos == nil {
		panic("params/bn254: Parameters has no embedded isogeny data; construct it with New(cosetBlob, isoBlob)")
	}
	return p.isos
}

func (p Parameters) SubCoset(depth int) []field.Elem {
	if p.subCosets == nil {
		panic("params/bn254: Parameters has no embedded coset data; construct it with New(cosetBlob, isoBlob)")
	}
	return p.subCosets[depth]
}
