package feldman

import (
	"github.com/shardkit/vss/pkg/curves"
	"github.com/shardkit/vss/pkg/random"
)

// polynomial is a_0..a_{t-1} in F_q, a_0 the secret. It is ephemeral to one
// Split call and is zeroised (coefficients only — commitments already
// derived from them survive) before that call returns.
type polynomial struct {
	coefficients []curves.Scalar
}

// samplePolynomial draws threshold-1 independent uniform coefficients and
// prepends secret as a_0.
func samplePolynomial(secret curves.Scalar, threshold uint32, src random.Source) (*polynomial, error) {
	coeffs := make([]curves.Scalar, threshold)
	coeffs[0] = secret
	for i := uint32(1); i < threshold; i++ {
		c, err := curves.RandomScalar(src)
		if err != nil {
			return nil, err
		}
		coeffs[i] = c
	}
	return &polynomial{coefficients: coeffs}, nil
}

// evaluate computes P(x) by Horner's method, highest-degree coefficient
// first: acc <- 0; for c in reverse(coefficients): acc <- acc*x + c.
func (p *polynomial) evaluate(x curves.Scalar) curves.Scalar {
	acc := curves.ZeroScalar()
	for i := len(p.coefficients) - 1; i >= 0; i-- {
		acc = acc.Mul(x).Add(p.coefficients[i])
	}
	return acc
}

func (p *polynomial) zeroize() {
	for i := range p.coefficients {
		p.coefficients[i].Zeroize()
	}
}
