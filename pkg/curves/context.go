// Package curves implements F_q scalar arithmetic and secp256k1 point
// arithmetic, q being the group order of secp256k1. This is the hard
// engineering layer: everything above it (pkg/feldman) is built in terms of
// Scalar and Point alone.
package curves

import (
	"crypto/elliptic"
	"sync"

	"github.com/btcsuite/btcd/btcec/v2"
)

var (
	curveOnce sync.Once
	curve     elliptic.Curve
)

// secp256k1 returns the process-wide secp256k1 curve context, initialised
// at most once regardless of how many goroutines race to acquire it first.
// It is read-only after initialisation and never torn down before process
// exit.
func secp256k1() elliptic.Curve {
	curveOnce.Do(func() {
		curve = btcec.S256()
	})
	return curve
}
