package curves

import (
	"encoding/hex"
	"math/big"

	"github.com/btcsuite/btcd/btcec/v2"

	"github.com/shardkit/vss/internal"
	"github.com/shardkit/vss/pkg/random"
)

// Scalar is an element of F_q, q the group order of secp256k1. Its
// canonical encoding is a 32-byte big-endian unsigned integer in [0, q).
// Every constructor and every arithmetic method returns a fully reduced
// value — there is no lazy reduction visible outside this package.
type Scalar struct {
	n btcec.ModNScalar
}

// ZeroScalar is the additive identity.
func ZeroScalar() Scalar {
	var s Scalar
	s.n.SetInt(0)
	return s
}

// OneScalar is the multiplicative identity.
func OneScalar() Scalar {
	var s Scalar
	s.n.SetInt(1)
	return s
}

// RandomScalar draws 32 uniform bytes from src and reduces them mod q. The
// bias this introduces is at most (2^256 - q) / 2^256 (about 2^-128),
// cryptographically negligible,
// so a single draw is used rather than rejection sampling.
func RandomScalar(src random.Source) (Scalar, error) {
	var buf [32]byte
	if err := random.Fill(src, buf[:]); err != nil {
		return Scalar{}, err
	}
	var s Scalar
	s.n.SetByteSlice(buf[:])
	internal.ZeroizeBytes(buf[:])
	return s, nil
}

// ScalarFromBigInt reduces n mod q.
func ScalarFromBigInt(n *big.Int) Scalar {
	reduced := new(big.Int).Mod(n, secp256k1().Params().N)
	var s Scalar
	b := make([]byte, 32)
	reduced.FillBytes(b)
	s.n.SetByteSlice(b)
	internal.ZeroizeBytes(b)
	return s
}

// ScalarFromHex parses a base-16 ASCII string and reduces it mod q.
func ScalarFromHex(s string) (Scalar, error) {
	raw, err := hex.DecodeString(s)
	if err != nil {
		return Scalar{}, internal.NewDecodeError("scalar: invalid hex: %v", err)
	}
	return ScalarFromBigInt(new(big.Int).SetBytes(raw)), nil
}

// BigInt performs a big-endian unsigned reading of the 32-byte canonical
// form.
func (s Scalar) BigInt() *big.Int {
	b := s.n.Bytes()
	return new(big.Int).SetBytes(b[:])
}

// Bytes returns the canonical 32-byte big-endian encoding.
func (s Scalar) Bytes() [32]byte {
	return s.n.Bytes()
}

// Hex returns the 64-character lowercase hex encoding of Bytes.
func (s Scalar) Hex() string {
	b := s.Bytes()
	return hex.EncodeToString(b[:])
}

// Add returns s + other mod q.
func (s Scalar) Add(other Scalar) Scalar {
	var out Scalar
	out.n.Set(&s.n)
	out.n.Add(&other.n)
	return out
}

// Sub returns s - other mod q.
func (s Scalar) Sub(other Scalar) Scalar {
	var negOther btcec.ModNScalar
	negOther.Set(&other.n)
	negOther.Negate()
	var out Scalar
	out.n.Set(&s.n)
	out.n.Add(&negOther)
	return out
}

// Mul returns s * other mod q.
func (s Scalar) Mul(other Scalar) Scalar {
	var out Scalar
	out.n.Set(&s.n)
	out.n.Mul(&other.n)
	return out
}

// Inverse returns the modular multiplicative inverse of s in F_q. Inverting
// zero is a programmer error, not a recoverable one: it panics.
func (s Scalar) Inverse() Scalar {
	if s.n.IsZero() {
		panic("curves: Inverse of zero scalar")
	}
	var out Scalar
	out.n.Set(&s.n)
	out.n.InverseNonConst()
	return out
}

// Reduce is idempotent canonicalisation. ModNScalar values are always
// stored reduced, so this is a no-op that exists for callers chaining
// arithmetic from an implementation that might otherwise defer reduction.
func (s Scalar) Reduce() Scalar {
	return s
}

// IsZero reports whether s is the additive identity.
func (s Scalar) IsZero() bool {
	return s.n.IsZero()
}

// Equal reports whether s and other encode the same field element.
func (s Scalar) Equal(other Scalar) bool {
	return s.n.Equals(&other.n)
}

// Zeroize overwrites s's internal storage. Callers holding a secret Scalar
// (a sampled polynomial coefficient, a share value) must call this once the
// value has served its purpose.
func (s *Scalar) Zeroize() {
	s.n.Zero()
}
