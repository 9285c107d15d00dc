package feldman

import (
	"github.com/shardkit/vss/internal"
	"github.com/shardkit/vss/pkg/curves"
)

// CommitmentVector is the dealer's published [C_0, ..., C_{t-1}], C_i = G*a_i.
// It is non-secret once emitted by Split.
type CommitmentVector []curves.Point

// commitmentsFor computes C_i = G*a_i for every coefficient of poly.
func commitmentsFor(poly *polynomial) CommitmentVector {
	out := make(CommitmentVector, len(poly.coefficients))
	for i, c := range poly.coefficients {
		out[i] = curves.ScalarBaseMult(c)
	}
	return out
}

// evalAtIndex computes G*P(index) homomorphically from the commitment
// vector alone, via Horner evaluated in the group:
//
//	acc <- C_{t-1}
//	for k from t-2 down to 0:
//	    acc <- acc*e + C_k   // scalar-mul then point-add
//
// e = index lifted into F_q. When t=1 the loop body never runs and
// acc = C_0, matching P(x) = a_0 for every x.
func (cv CommitmentVector) evalAtIndex(index uint32) curves.Point {
	e := indexScalar(index)
	acc := cv[len(cv)-1]
	for k := len(cv) - 2; k >= 0; k-- {
		acc = acc.Mul(e).Add(cv[k])
	}
	return acc
}

// validate checks cv has the expected length for threshold t.
func (cv CommitmentVector) validate(threshold uint32) error {
	if uint32(len(cv)) != threshold {
		return internal.NewConfigError("feldman: commitment vector must have length %d, got %d", threshold, len(cv))
	}
	return nil
}
