// Package feldman implements (t, n) Feldman Verifiable Secret Sharing over
// F_q, q the group order of secp256k1: split, evaluate by Horner, recover
// by Lagrange interpolation at x=0, and verify a single share against the
// dealer's published commitment vector without learning any other share.
// It is the curve-specific sibling of pkg/shamir; the two are intentionally
// not unified behind a shared interface (see DESIGN.md).
package feldman

import (
	"github.com/pkg/errors"

	"github.com/shardkit/vss/internal"
	"github.com/shardkit/vss/pkg/curves"
	"github.com/shardkit/vss/pkg/random"
	"github.com/shardkit/vss/pkg/telemetry"
)

// Config is a (threshold, limit) scheme, validated once at construction and
// immutable thereafter.
//
// IDs optionally assigns the evaluation point for each of the Limit shares.
// When nil, shares are assigned points 1..Limit. When set, it must contain
// exactly Limit distinct, non-zero entries.
type Config struct {
	Threshold uint32
	Limit     uint32
	IDs       []uint32
}

// Engine is a validated Config plus an optional logger.
type Engine struct {
	cfg    Config
	logger *telemetry.Logger
}

// Option configures an Engine at construction.
type Option func(*Engine)

// WithLogger attaches a non-secret-bearing observability logger.
func WithLogger(l *telemetry.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// NewEngine validates cfg. Feldman's threshold floor is 2, stricter than
// plain Shamir's 1: a threshold-1 Feldman scheme degenerates to every share
// equalling the secret in the clear, so spec.md requires 2 <= t <= n here.
func NewEngine(cfg Config, opts ...Option) (*Engine, error) {
	e := &Engine{cfg: cfg}
	for _, opt := range opts {
		opt(e)
	}

	if cfg.Threshold < 2 || cfg.Threshold > cfg.Limit {
		err := internal.NewConfigError("feldman: threshold must satisfy 2 <= t <= n, got t=%d n=%d", cfg.Threshold, cfg.Limit)
		e.logger.ConfigRejected("feldman", err.Error())
		return nil, err
	}
	if cfg.IDs != nil {
		if err := validateIDs(cfg.IDs, cfg.Limit); err != nil {
			wrapped := internal.NewConfigError("feldman: %s", err)
			e.logger.ConfigRejected("feldman", wrapped.Error())
			return nil, wrapped
		}
	}

	e.logger.EngineConstructed("feldman", cfg.Threshold, cfg.Limit)
	return e, nil
}

// validateIDs checks that ids has exactly limit entries, all distinct and
// non-zero (index 0 is reserved for the secret itself).
func validateIDs(ids []uint32, limit uint32) error {
	if uint32(len(ids)) != limit {
		return errors.Errorf("IDs must have length %d, got %d", limit, len(ids))
	}
	seen := make(map[uint32]bool, len(ids))
	for _, id := range ids {
		if id == 0 {
			return errors.New("IDs must not contain 0")
		}
		if seen[id] {
			return errors.Errorf("IDs must be distinct, duplicate %d", id)
		}
		seen[id] = true
	}
	return nil
}

// indexFor returns the evaluation point for the i-th share (0-based).
func (e *Engine) indexFor(i uint32) uint32 {
	if e.cfg.IDs != nil {
		return e.cfg.IDs[i]
	}
	return i + 1
}

// Split samples a degree-(t-1) polynomial with secret as its constant term,
// evaluates it at x=1..n (or at Config.IDs when set), and commits to every
// coefficient.
func (e *Engine) Split(secret curves.Scalar, src random.Source) ([]Share, CommitmentVector, error) {
	poly, err := samplePolynomial(secret, e.cfg.Threshold, src)
	if err != nil {
		return nil, nil, err
	}
	commitments := commitmentsFor(poly)
	defer poly.zeroize()

	shares := make([]Share, e.cfg.Limit)
	for i := uint32(0); i < e.cfg.Limit; i++ {
		idx := e.indexFor(i)
		shares[i] = Share{Index: idx, Value: poly.evaluate(indexScalar(idx))}
	}
	return shares, commitments, nil
}

// Recover runs Lagrange interpolation at x=0 over exactly t shares with
// distinct indices. Duplicate indices are a precondition violation (the
// denominator would be zero) and panic rather than silently returning a
// wrong value.
func (e *Engine) Recover(shares []Share) (curves.Scalar, error) {
	if uint32(len(shares)) != e.cfg.Threshold {
		return curves.Scalar{}, internal.NewConfigError("feldman: recover needs exactly %d shares, got %d", e.cfg.Threshold, len(shares))
	}

	xs := make([]curves.Scalar, len(shares))
	ys := make([]curves.Scalar, len(shares))
	seen := make(map[uint32]bool, len(shares))
	for i, sh := range shares {
		if seen[sh.Index] {
			panic("feldman: duplicate share index in Recover")
		}
		seen[sh.Index] = true
		xs[i] = indexScalar(sh.Index)
		ys[i] = sh.Value
	}

	return lagrangeAtZero(xs, ys), nil
}

// Verify checks that share lies on the dealer's polynomial without
// learning any other share. It never panics on well-typed input: a
// wrong-length commitment vector or a zero share index is reported through
// the error return ("could not check"); a mismatched-but-well-formed share
// is reported through the bool return ("did not verify").
func (e *Engine) Verify(share Share, commitments CommitmentVector) (bool, error) {
	if share.Index == 0 {
		return false, internal.NewConfigError("feldman: share index must be >= 1")
	}
	if err := commitments.validate(e.cfg.Threshold); err != nil {
		return false, err
	}

	lhs := curves.ScalarBaseMult(share.Value)
	rhs := commitments.evalAtIndex(share.Index)
	ok := lhs.Equal(rhs)
	e.logger.VerifyResult(share.Index, ok)
	return ok, nil
}

// lagrangeAtZero computes P(0) = sum_i y_i * prod_{j!=i} (-x_j) / (x_i - x_j),
// each numerator and denominator accumulated as a separate product before
// the one division per term.
func lagrangeAtZero(xs, ys []curves.Scalar) curves.Scalar {
	zero := curves.ZeroScalar()
	sum := zero

	for i := range xs {
		numerator := curves.OneScalar()
		denominator := curves.OneScalar()
		for j := range xs {
			if i == j {
				continue
			}
			numerator = numerator.Mul(zero.Sub(xs[j]))
			denominator = denominator.Mul(xs[i].Sub(xs[j]))
		}
		term := numerator.Mul(denominator.Inverse()).Mul(ys[i])
		sum = sum.Add(term)
	}
	return sum
}
