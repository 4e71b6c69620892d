// Package field implements the prime field F that ECFFT cosets, isogenies
// and scalar multiplications are defined over.
//
// Unlike a classical radix-2 FFT field (which fits in a machine word), the
// curves ECFFT targets need 253-381 bit moduli, so Field is backed by
// math/big rather than a fixed-width integer.
package field

import (
	"errors"
	"math/big"
)

var (
	errNotPrime      = errors.New("field: modulus must be prime")
	errModulusTooBig = errors.New("field: modulus must be positive")
	errZeroInverse   = errors.New("field: zero has no inverse")
)

// Field is a prime field (Z/pZ). It is immutable once constructed and safe
// for concurrent reads.
type Field struct {
	modulus *big.Int
}

// NewField builds the field Z/modulusZ. modulus is assumed prime; the
// primality check below only guards against accidental misuse (an
// all-bases Miller-Rabin pass is too expensive to run for every field
// constructed from a cheap literal, so a handful of bases is enough to
// catch a typo'd modulus without materially weakening the check for the
// odds-are-prime moduli this package is actually given).
func NewField(modulus *big.Int) (*Field, error) {
	if modulus.Sign() <= 0 {
		return nil, errModulusTooBig
	}

	if !modulus.ProbablyPrime(20) {
		return nil, errNotPrime
	}

	return &Field{modulus: new(big.Int).Set(modulus)}, nil
}

// Modulus returns the field's prime modulus. The caller must not mutate it.
func (f *Field) Modulus() *big.Int {
	return f.modulus
}

// Zero returns the additive identity.
func (f *Field) Zero() Elem {
	return Elem{f: f, v: big.NewInt(0)}
}

// One returns the multiplicative identity.
func (f *Field) One() Elem {
	return Elem{f: f, v: big.NewInt(1)}
}

// ElemFromBigInt reduces v modulo the field's modulus.
func (f *Field) ElemFromBigInt(v *big.Int) Elem {
	r := new(big.Int).Mod(v, f.modulus)
	return Elem{f: f, v: r}
}

// ElemFromUint64 reduces v modulo the field's modulus.
func (f *Field) ElemFromUint64(v uint64) Elem {
	return Elem{f: f, v: new(big.Int).Mod(new(big.Int).SetUint64(v), f.modulus)}
}

// ElemFromInt64 reduces a signed integer modulo the field's modulus,
// routing negative values through Neg (cheap field operation).
func (f *Field) ElemFromInt64(v int64) Elem {
	if v >= 0 {
		return f.ElemFromUint64(uint64(v))
	}

	return f.ElemFromUint64(uint64(-v)).Neg()
}

// Elem is a value in a Field. The zero value of Elem is not usable;
// elements must be obtained from a Field constructor.
type Elem struct {
	f *Field
	v *big.Int
}

func (e Elem) checkField(o Elem) {
	if e.f != o.f {
		panic("field: mismatched field elements")
	}
}

// Field returns the field this element belongs to.
func (e Elem) Field() *Field {
	return e.f
}

// BigInt returns the element's canonical representative in [0, modulus).
// The caller must not mutate the returned value.
func (e Elem) BigInt() *big.Int {
	return e.v
}

// Add returns e + o.
func (e Elem) Add(o Elem) Elem {
	e.checkField(o)

	r := new(big.Int).Add(e.v, o.v)
	if r.Cmp(e.f.modulus) >= 0 {
		r.Sub(r, e.f.modulus)
	}

	return Elem{f: e.f, v: r}
}

// Sub returns e - o.
func (e Elem) Sub(o Elem) Elem {
	e.checkField(o)

	r := new(big.Int).Sub(e.v, o.v)
	if r.Sign() < 0 {
		r.Add(r, e.f.modulus)
	}

	return Elem{f: e.f, v: r}
}

// Mul returns e * o.
func (e Elem) Mul(o Elem) Elem {
	e.checkField(o)

	r := new(big.Int).Mul(e.v, o.v)
	r.Mod(r, e.f.modulus)

	return Elem{f: e.f, v: r}
}

// Neg returns -e. O(1) relative to Mul, matching the cheap-negation
// requirement the group layer relies on.
func (e Elem) Neg() Elem {
	if e.v.Sign() == 0 {
		return e
	}

	return Elem{f: e.f, v: new(big.Int).Sub(e.f.modulus, e.v)}
}

// Inverse returns e^-1 via Fermat's little theorem (e^(p-2) = e^-1 mod p).
// Panics on the zero element; division by zero is a programmer precondition
// violation per the error handling design, not a recoverable error.
func (e Elem) Inverse() Elem {
	if e.v.Sign() == 0 {
		panic(errZeroInverse)
	}

	exp := new(big.Int).Sub(e.f.modulus, big.NewInt(2))
	r := new(big.Int).Exp(e.v, exp, e.f.modulus)

	return Elem{f: e.f, v: r}
}

// IsZero reports whether e is the additive identity.
func (e Elem) IsZero() bool {
	return e.v.Sign() == 0
}

// Equal reports whether e and o represent the same field element.
func (e Elem) Equal(o Elem) bool {
	e.checkField(o)
	return e.v.Cmp(o.v) == 0
}

// Copy returns an independent value with the same representative.
func (e Elem) Copy() Elem {
	return Elem{f: e.f, v: new(big.Int).Set(e.v)}
}

func (e Elem) String() string {
	return e.v.String()
}

// Horner evaluates coeffs (lowest degree first) at point via Horner's rule.
// The isogeny evaluator uses it; poly.DenseGroupPolynomial runs its own
// loop of the same shape over group coefficients.
func Horner(coeffs []Elem, point Elem) Elem {
	if len(coeffs) == 0 {
		return point.f.Zero()
	}

	acc := coeffs[len(coeffs)-1]
	for i := len(coeffs) - 2; i >= 0; i-- {
		acc = acc.Mul(point).Add(coeffs[i])
	}

	return acc
}
