// Package modprime implements arithmetic modulo an arbitrary caller-supplied
// prime, for the generic-prime Shamir engine (pkg/shamir). Unlike
// pkg/curves, the modulus is not fixed at compile time, so inversion is
// computed with the extended Euclidean algorithm rather than delegated to a
// curve-specific library.
package modprime

import (
	"math/big"

	"github.com/shardkit/vss/internal"
	"github.com/shardkit/vss/pkg/random"
)

// Scalar is an integer reduced modulo a prime p supplied at construction.
// Every constructor and arithmetic method returns a value renormalised into
// [0, p).
type Scalar struct {
	value *big.Int
	prime *big.Int
}

// Zero returns the additive identity modulo p.
func Zero(p *big.Int) Scalar {
	return Scalar{value: big.NewInt(0), prime: p}
}

// One returns the multiplicative identity modulo p.
func One(p *big.Int) Scalar {
	return Scalar{value: big.NewInt(1), prime: p}
}

// New reduces n modulo p. p must be prime; New does not itself check this
// (checking primality belongs to the engine that owns the config, so it is
// checked once, not on every scalar construction — see pkg/shamir.Config).
func New(n, p *big.Int) Scalar {
	v := new(big.Int).Mod(n, p)
	return Scalar{value: v, prime: p}
}

// Random draws a uniform value in [0, p) from src.
func Random(src random.Source, p *big.Int) (Scalar, error) {
	// p is at most a few hundred bits for any prime this module will be
	// asked to use; 8 extra bytes of entropy keep the modulo bias
	// cryptographically negligible without needing rejection sampling.
	byteLen := (p.BitLen() + 7) / 8
	buf := make([]byte, byteLen+8)
	if err := random.Fill(src, buf); err != nil {
		return Scalar{}, err
	}
	n := new(big.Int).SetBytes(buf)
	internal.ZeroizeBytes(buf)
	return New(n, p), nil
}

// BigInt returns the canonical value in [0, p).
func (s Scalar) BigInt() *big.Int {
	return new(big.Int).Set(s.value)
}

// Prime returns the modulus s was constructed against.
func (s Scalar) Prime() *big.Int {
	return s.prime
}

// Add returns s + other mod p.
func (s Scalar) Add(other Scalar) Scalar {
	return New(new(big.Int).Add(s.value, other.value), s.prime)
}

// Sub returns s - other mod p, renormalised into [0, p).
func (s Scalar) Sub(other Scalar) Scalar {
	return New(new(big.Int).Sub(s.value, other.value), s.prime)
}

// Mul returns s * other mod p.
func (s Scalar) Mul(other Scalar) Scalar {
	return New(new(big.Int).Mul(s.value, other.value), s.prime)
}

// Inverse computes the modular multiplicative inverse of s via the extended
// Euclidean algorithm: maintain (r, r', s, s', t, t') <- (p, a, 1, 0, 0, 1),
// iterate q <- r / r' and update the three pairs by x <- x - q*x' until
// r' = 0; the returned t is the inverse, renormalised into [0, p). Inverting
// zero is a programmer error: it panics.
func (s Scalar) Inverse() Scalar {
	if s.value.Sign() == 0 {
		panic("modprime: Inverse of zero scalar")
	}

	r, nextR := new(big.Int).Set(s.prime), new(big.Int).Set(s.value)
	sCoeff, nextS := big.NewInt(1), big.NewInt(0)
	tCoeff, nextT := big.NewInt(0), big.NewInt(1)

	q := new(big.Int)
	for nextR.Sign() != 0 {
		q.Div(r, nextR)

		r, nextR = nextR, new(big.Int).Sub(r, new(big.Int).Mul(q, nextR))
		sCoeff, nextS = nextS, new(big.Int).Sub(sCoeff, new(big.Int).Mul(q, nextS))
		tCoeff, nextT = nextT, new(big.Int).Sub(tCoeff, new(big.Int).Mul(q, nextT))
	}

	return New(tCoeff, s.prime)
}

// Reduce is idempotent canonicalisation; New already leaves every value in
// [0, p), so this is a no-op kept for symmetry with curves.Scalar.
func (s Scalar) Reduce() Scalar {
	return New(s.value, s.prime)
}

// IsZero reports whether s is the additive identity.
func (s Scalar) IsZero() bool {
	return s.value.Sign() == 0
}

// Equal reports whether s and other are the same residue mod the same prime.
func (s Scalar) Equal(other Scalar) bool {
	return s.prime.Cmp(other.prime) == 0 && s.value.Cmp(other.value) == 0
}

// Zeroize overwrites s's internal storage. The prime is not secret and is
// left intact.
func (s *Scalar) Zeroize() {
	internal.ZeroizeBigInt(s.value)
}
