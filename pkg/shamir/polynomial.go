package shamir

import (
	"github.com/shardkit/vss/pkg/modprime"
	"github.com/shardkit/vss/pkg/random"
)

// polynomial is a_0..a_{t-1} mod p, a_0 the secret. It is ephemeral to one
// Split call and is zeroised before that call returns.
type polynomial struct {
	coefficients []modprime.Scalar
}

// samplePolynomial draws threshold-1 independent uniform coefficients from
// [0, p) and prepends secret as a_0.
func samplePolynomial(secret modprime.Scalar, threshold uint32, src random.Source) (*polynomial, error) {
	coeffs := make([]modprime.Scalar, threshold)
	coeffs[0] = secret
	for i := uint32(1); i < threshold; i++ {
		c, err := modprime.Random(src, secret.Prime())
		if err != nil {
			return nil, err
		}
		coeffs[i] = c
	}
	return &polynomial{coefficients: coeffs}, nil
}

// evaluate computes P(x) by Horner's method, coefficients highest-degree
// first: acc <- 0; for c in reverse(coefficients): acc <- acc*x + c.
func (p *polynomial) evaluate(x modprime.Scalar) modprime.Scalar {
	acc := modprime.Zero(x.Prime())
	for i := len(p.coefficients) - 1; i >= 0; i-- {
		acc = acc.Mul(x).Add(p.coefficients[i])
	}
	return acc
}

// zeroize scrubs every coefficient, including the secret at index 0.
func (p *polynomial) zeroize() {
	for i := range p.coefficients {
		p.coefficients[i].Zeroize()
	}
}
