// Package params implements the parameter-set loader (spec §4.5/§6):
// deterministic deserialisation of a stored coset and isogeny tower from a
// byte blob keyed by name, parameterised over field-element limb width so
// the same decoder serves both 256-bit and 384-bit fields. Concrete curve
// parameter sets (params/bn254, params/bls12381, params/curve25519,
// params/ed25519sc, params/toy) each publish an ecfft.Parameters built on
// top of this loader.
package params

import (
	"encoding/binary"
	"fmt"
	"math/big"

	"github.com/jonathanmweiss/go-ecfft/field"
	"github.com/jonathanmweiss/go-ecfft/isogeny"
)

// LimbDecoder turns numLimbs little-endian 64-bit limbs into a field
// element, bridging limb-width differences across fields (spec §9): 4
// limbs for a 256-bit field, 6 for a 384-bit one.
type LimbDecoder func(limbs []uint64) field.Elem

// NewLimbDecoder returns the canonical LimbDecoder for f: treat the limbs
// as a little-endian unsigned integer and reduce into f.
func NewLimbDecoder(f *field.Field) LimbDecoder {
	return func(limbs []uint64) field.Elem {
		v := new(big.Int)
		for i := len(limbs) - 1; i >= 0; i-- {
			v.Lsh(v, 64)
			v.Or(v, new(big.Int).SetUint64(limbs[i]))
		}

		return f.ElemFromBigInt(v)
	}
}

// DecodeCoset decodes a coset blob: numLimbs*8 bytes per element, as many
// elements as the blob holds. Returns an error if the blob length is not a
// multiple of numLimbs*8 bytes.
func DecodeCoset(blob []byte, numLimbs int, decode LimbDecoder) ([]field.Elem, error) {
	stride := numLimbs * 8
	if stride == 0 || len(blob)%stride != 0 {
		return nil, fmt.Errorf("params: coset blob length %d is not a multiple of %d bytes", len(blob), stride)
	}

	n := len(blob) / stride
	out := make([]field.Elem, n)

	for i := 0; i < n; i++ {
		out[i] = decode(readLimbs(blob[i*stride:(i+1)*stride], numLimbs))
	}

	return out, nil
}

// DecodeIsogenies decodes an isogeny tower blob. Each isogeny is stored as
// four length-prefixed coefficient vectors (NumX, DenX, NumY, DenY, in that
// order): a little-endian uint32 element count followed by that many
// numLimbs-limb field elements.
func DecodeIsogenies(blob []byte, numLimbs int, decode LimbDecoder) ([]isogeny.Isogeny, error) {
	var out []isogeny.Isogeny

	pos := 0
	for pos < len(blob) {
		var vecs [4][]field.Elem

		for v := 0; v < 4; v++ {
			vec, next, err := readVector(blob, pos, numLimbs, decode)
			if err != nil {
				return nil, err
			}

			vecs[v] = vec
			pos = next
		}

		out = append(out, isogeny.Isogeny{NumX: vecs[0], DenX: vecs[1], NumY: vecs[2], DenY: vecs[3]})
	}

	return out, nil
}

func readVector(blob []byte, pos, numLimbs int, decode LimbDecoder) ([]field.Elem, int, error) {
	if pos+4 > len(blob) {
		return nil, 0, fmt.Errorf("params: isogeny blob truncated at byte %d", pos)
	}

	count := int(binary.LittleEndian.Uint32(blob[pos : pos+4]))
	pos += 4

	stride := numLimbs * 8
	need := count * stride
	if pos+need > len(blob) {
		return nil, 0, fmt.Errorf("params: isogeny blob truncated reading %d elements at byte %d", count, pos)
	}

	vec := make([]field.Elem, count)
	for i := 0; i < count; i++ {
		vec[i] = decode(readLimbs(blob[pos+i*stride:pos+(i+1)*stride], numLimbs))
	}

	return vec, pos + need, nil
}

func readLimbs(b []byte, numLimbs int) []uint64 {
	limbs := make([]uint64, numLimbs)
	for i := 0; i < numLimbs; i++ {
		limbs[i] = binary.LittleEndian.Uint64(b[i*8 : i*8+8])
	}

	return limbs
}

// EncodeCoset is the inverse of DecodeCoset, used by parameter sets that
// build their data in Go (params/toy) and round-trip it through the same
// blob format the production curve loaders use, rather than special-casing
// an in-memory representation.
func EncodeCoset(coset []field.Elem, numLimbs int) []byte {
	stride := numLimbs * 8
	out := make([]byte, len(coset)*stride)

	for i, e := range coset {
		writeLimbs(out[i*stride:(i+1)*stride], e.BigInt(), numLimbs)
	}

	return out
}

// EncodeIsogenies is the inverse of DecodeIsogenies.
func EncodeIsogenies(isos []isogeny.Isogeny, numLimbs int) []byte {
	var out []byte

	for _, iso := range isos {
		for _, vec := range [][]field.Elem{iso.NumX, iso.DenX, iso.NumY, iso.DenY} {
			out = append(out, encodeVector(vec, numLimbs)...)
		}
	}

	return out
}

func encodeVector(vec []field.Elem, numLimbs int) []byte {
	stride := numLimbs * 8
	out := make([]byte, 4+len(vec)*stride)
	binary.LittleEndian.PutUint32(out[:4], uint32(len(vec)))

	for i, e := range vec {
		writeLimbs(out[4+i*stride:4+(i+1)*stride], e.BigInt(), numLimbs)
	}

	return out
}

func writeLimbs(dst []byte, v *big.Int, numLimbs int) {
	bytes := v.Bytes() // big-endian, no leading zeros

	for i := 0; i < numLimbs; i++ {
		var limb uint64
		for b := 0; b < 8; b++ {
			idx := len(bytes) - 1 - (i*8 + b)
			if idx >= 0 {
				limb |= uint64(bytes[idx]) << (8 * b)
			}
		}
		binary.LittleEndian.PutUint64(dst[i*8:i*8+8], limb)
	}
}

// LeadingSubCoset returns the size-2^(logN-depth) leading prefix of coset.
// No parameter set in this module uses it: their SubCoset returns the
// ComputeSubCosets chain below instead (see DESIGN.md).
func LeadingSubCoset(coset []field.Elem, logN, depth int) []field.Elem {
	size := 1 << uint(logN-depth)
	return coset[:size]
}

// ComputeSubCosets derives the canonical depth-0..logN sub-coset chain
// L^(0)=coset, L^(i+1)=isos[i] applied to the first half of L^(i), i.e.
// exactly the coset sequence BuildPrecomputation's own recursion walks
// (spec §4.6). A parameter set's SubCoset(d) must return result[d] for
// EvaluateOverDomain's contract ("evaluate_over_domain(poly) == [poly(x)
// for x in sub_coset(k-j)]", spec §8) to hold. result[d] is in general not
// the leading prefix of coset (for params/toy, result[1] is {1,13,16,4}
// while the length-4 prefix is {1,9,13,15}); see DESIGN.md.
func ComputeSubCosets(coset []field.Elem, isos []isogeny.Isogeny) [][]field.Elem {
	chain := make([][]field.Elem, len(isos)+1)
	chain[0] = coset

	l := coset
	for i, iso := range isos {
		half := len(l) / 2
		next := make([]field.Elem, half)
		for j := 0; j < half; j++ {
			next[j] = iso.EvaluateX(l[j])
		}
		chain[i+1] = next
		l = next
	}

	return chain
}
