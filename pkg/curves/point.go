package curves

import (
	"math/big"

	"github.com/shardkit/vss/internal"
)

// Point is an affine point on secp256k1. The identity element has no affine
// form: an operation that yields it (such as multiplying by the zero scalar)
// returns the coordinates (0, 0), which are not on the curve and which
// PointFromAffineUncompressed rejects.
type Point struct {
	x, y *big.Int
}

// Generator returns the standard secp256k1 base point G.
func Generator() Point {
	params := secp256k1().Params()
	return Point{x: params.Gx, y: params.Gy}
}

// ScalarBaseMult returns G * k.
func ScalarBaseMult(k Scalar) Point {
	b := k.Bytes()
	x, y := secp256k1().ScalarBaseMult(b[:])
	return Point{x: x, y: y}
}

// Mul returns k * p.
func (p Point) Mul(k Scalar) Point {
	b := k.Bytes()
	x, y := secp256k1().ScalarMult(p.x, p.y, b[:])
	return Point{x: x, y: y}
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	x, y := secp256k1().Add(p.x, p.y, q.x, q.y)
	return Point{x: x, y: y}
}

// Equal reports whether p and q are the same affine point.
func (p Point) Equal(q Point) bool {
	return p.x.Cmp(q.x) == 0 && p.y.Cmp(q.y) == 0
}

// ToAffineUncompressed encodes p as uncompressed SEC1: 0x04 || X || Y.
func (p Point) ToAffineUncompressed() [65]byte {
	var out [65]byte
	out[0] = 0x04
	p.x.FillBytes(out[1:33])
	p.y.FillBytes(out[33:65])
	return out
}

// PointFromAffineUncompressed decodes an uncompressed SEC1 point and
// verifies it lies on the curve.
func PointFromAffineUncompressed(b []byte) (Point, error) {
	if len(b) != 65 || b[0] != 0x04 {
		return Point{}, internal.NewDecodeError("point: expected 65-byte uncompressed SEC1 encoding")
	}
	x := new(big.Int).SetBytes(b[1:33])
	y := new(big.Int).SetBytes(b[33:65])
	if !secp256k1().IsOnCurve(x, y) {
		return Point{}, internal.NewDecodeError("point: not on curve")
	}
	return Point{x: x, y: y}, nil
}
