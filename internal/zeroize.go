package internal

import "math/big"

// ZeroizeBytes overwrites b in place. Used to scrub secret scalar and
// polynomial coefficient buffers once they have served their purpose.
func ZeroizeBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// ZeroizeBigInt overwrites the internal storage of v in place by setting it
// to zero. It does not free v; callers own its lifetime.
func ZeroizeBigInt(v *big.Int) {
	if v == nil {
		return
	}
	words := v.Bits()
	for i := range words {
		words[i] = 0
	}
	v.SetInt64(0)
}
