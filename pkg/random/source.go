// Package random provides the RandomSource contract the sharing engines
// draw polynomial coefficients from, plus the two concrete sources this
// module ships: a crypto/rand-backed default and an HKDF-derived
// deterministic source for reproducible tests.
package random

import (
	"crypto/rand"
	"io"

	"github.com/shardkit/vss/internal"
)

// Source is a cryptographically secure byte generator. It is satisfied by
// *any* io.Reader, including crypto/rand.Reader itself, so callers are
// never forced through this package to get a working engine.
type Source interface {
	io.Reader
}

// CryptoSource is the default Source, backed by the operating system CSPRNG.
type CryptoSource struct{}

// NewCryptoSource returns the default crypto-secure RandomSource.
func NewCryptoSource() *CryptoSource {
	return &CryptoSource{}
}

func (*CryptoSource) Read(p []byte) (int, error) {
	n, err := rand.Read(p)
	if err != nil {
		return n, internal.NewRandomnessError(err)
	}
	return n, nil
}

// Fill draws exactly len(p) bytes from src, wrapping a short read or error
// as a RandomnessError so engines never emit a partial share on failure.
func Fill(src Source, p []byte) error {
	_, err := io.ReadFull(src, p)
	if err != nil {
		return internal.NewRandomnessError(err)
	}
	return nil
}
