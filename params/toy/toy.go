// Package toy is a small synthetic parameter set over F_17 (grounded on
// the reference implementation's own F17 test field, utils/f17.rs),
// exercising every operation end-to-end without depending on offline
// algebra-system output for a production curve (out of scope per spec §1).
//
// Its coset is the order-8 subgroup of F_17^* generated by 3^2=9 (F_17^*
// is cyclic of order 16 with generator 3), and its isogeny tower is the
// classical squaring map phi(x) = x^2 at every level: since the subgroup
// contains -1 (16 = -1 mod 17), it is closed under negation, giving the
// {x, -x} -> x^2 pairing the engine needs at every halving. This is a
// classical radix-2 FFT domain dressed in the ECFFT data model -- a
// deliberate simplification for a parameter set whose only job is to
// exercise the engine, not to model an elliptic curve.
package toy

import (
	"math/big"

	"github.com/jonathanmweiss/go-ecfft/field"
	"github.com/jonathanmweiss/go-ecfft/isogeny"
	"github.com/jonathanmweiss/go-ecfft/params"
)

const (
	modulus = 17
	logN    = 3
	numLimbs = 1
)

var theField = mustField()

func mustField() *field.Field {
	f, err := field.NewField(big.NewInt(modulus))
	if err != nil {
		panic(err)
	}
	return f
}

// Parameters implements ecfft.Parameters for the toy F_17 subgroup coset.
type Parameters struct {
	coset     []field.Elem
	isos      []isogeny.Isogeny
	subCosets [][]field.Elem
}

// New builds the toy parameter set, round-tripping its coset through the
// same blob encode/decode path params.DecodeCoset uses for production
// curves (params.EncodeCoset/DecodeCoset), so the loader (C5) is genuinely
// exercised rather than bypassed.
func New() *Parameters {
	rawCoset := []uint64{1, 9, 13, 15, 16, 8, 4, 2}

	coset := make([]field.Elem, len(rawCoset))
	for i, v := range rawCoset {
		coset[i] = theField.ElemFromUint64(v)
	}

	blob := params.EncodeCoset(coset, numLimbs)
	decoded, err := params.DecodeCoset(blob, numLimbs, params.NewLimbDecoder(theField))
	if err != nil {
		panic(err)
	}

	isos := make([]isogeny.Isogeny, logN)
	for i := range isos {
		isos[i] = isogeny.NewMonomialSquare(theField)
	}

	isoBlob := params.EncodeIsogenies(isos, numLimbs)
	decodedIsos, err := params.DecodeIsogenies(isoBlob, numLimbs, params.NewLimbDecoder(theField))
	if err != nil {
		panic(err)
	}

	return &Parameters{
		coset:     decoded,
		isos:      decodedIsos,
		subCosets: params.ComputeSubCosets(decoded, decodedIsos),
	}
}

func (p *Parameters) LogN() int { return logN }

func (p *Parameters) Size() int { return 1 << logN }

func (p *Parameters) Coset() []field.Elem { return p.coset }

func (p *Parameters) Isogenies() []isogeny.Isogeny { return p.isos }

func (p *Parameters) SubCoset(depth int) []field.Elem { return p.subCosets[depth] }

// Field exposes the backing field for tests that need to build
// DenseGroupPolynomial coefficients directly.
func (p *Parameters) Field() *field.Field { return theField }
