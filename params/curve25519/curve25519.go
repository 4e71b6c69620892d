// Package curve25519 publishes the ECFFT parameter set for the Curve25519
// base field F_p, p = 2^255 - 19 (spec §6). LogN=16 matches the companion
// curve's order factorisation (2^16 * ...). Unlike BN254/BLS12-381 this
// field has no gnark-crypto package in this module's dependency set, so
// the modulus is a literal hex constant -- the same fromHex idiom the
// pack's bn128 field type uses for its curve constants.
package curve25519

import (
	"fmt"
	"math/big"
	"sync"

	"github.com/jonathanmweiss/go-ecfft/field"
	"github.com/jonathanmweiss/go-ecfft/isogeny"
	"github.com/jonathanmweiss/go-ecfft/params"
)

const (
	// LogN is the number of 2-isogeny levels.
	LogN = 16
	// NumLimbs is the 64-bit limb width of the base field (256 bits).
	NumLimbs = 4

	modulusHex = "7fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffed" // 2^255 - 19
)

var (
	fieldOnce sync.Once
	theField  *field.Field
)

func fromHex(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("params/curve25519: invalid hex constant " + s)
	}
	return v
}

// Field returns the Curve25519 base field.
func Field() *field.Field {
	fieldOnce.Do(func() {
		f, err := field.NewField(fromHex(modulusHex))
		if err != nil {
			panic(err)
		}
		theField = f
	})

	return theField
}

// Parameters implements ecfft.Parameters for Curve25519. The zero value
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
		return Parameters{}, fmt.Errorf("params/curve25519: coset has %d elements, want %d", len(coset), 1<<LogN)
	}

	isos, err := params.DecodeIsogenies(isoBlob, NumLimbs, params.NewLimbDecoder(f))
	if err != nil {
		return Parameters{}, err
	}
	if len(isos) != LogN {
		return Parameters{}, fmt.Errorf("params/curve25519: isogeny tower has %d levels, want %d", len(isos), LogN)
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
		panic("params/curve25519: Parameters has no embedded coset data; construct it with New(cosetBlob, isoBlob)")
	}
	return p.coset
}

func (p Parameters) Isogenies() []isogeny.Isogeny {
	if p.isos == nil {
		panic("params/curve25519: Parameters has no embedded isogeny data; construct it with New(cosetBlob, isoBlob)")
	}
	return p.isos
}

func (p Parameters) SubCoset(depth int) []field.Elem {
	if p.subCosets == nil {
		panic("params/curve25519: Parameters has no embedded coset data; construct it with New(cosetBlob, isoBlob)")
	}
	return p.subCosets[depth]
}
