// Package shamir implements (t, n) Shamir Secret Sharing over a
// caller-supplied prime: split, evaluate by Horner, recover by Lagrange
// interpolation at x=0. It is the generic-prime sibling of pkg/feldman; the
// two are intentionally not unified behind a shared interface (see
// DESIGN.md).
package shamir

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/shardkit/vss/internal"
	"github.com/shardkit/vss/pkg/modprime"
	"github.com/shardkit/vss/pkg/random"
	"github.com/shardkit/vss/pkg/telemetry"
)

// Config is a (threshold, limit, prime) scheme, validated once at
// construction and immutable thereafter.
//
// IDs optionally assigns the evaluation point for each of the Limit shares.
// When nil, shares are assigned points 1..Limit. When set, it must contain
// exactly Limit distinct, non-zero entries; this lets a dealer scatter
// identifiers across a wider range than the default dense assignment (see
// internal.SampleUniqueUint32s).
type Config struct {
	Threshold uint32
	Limit     uint32
	Prime     *big.Int
	IDs       []uint32
}

// Engine is a validated Config plus an optional logger. Two Engines built
// from the same Config behave identically; Engine carries no other state
// between calls.
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

// NewEngine validates cfg and returns an Engine. The source material's
// "threshold < limit" assertion is a documented bug (spec.md §9): this
// implementation accepts the mathematically sufficient threshold <= limit.
func NewEngine(cfg Config, opts ...Option) (*Engine, error) {
	e := &Engine{cfg: cfg}
	for _, opt := range opts {
		opt(e)
	}

	if cfg.Threshold < 1 || cfg.Threshold > cfg.Limit {
		err := internal.NewConfigError("shamir: threshold must satisfy 1 <= t <= n, got t=%d n=%d", cfg.Threshold, cfg.Limit)
		e.logger.ConfigRejected("shamir", err.Error())
		return nil, err
	}
	if cfg.Prime == nil || cfg.Prime.Sign() <= 0 || !cfg.Prime.ProbablyPrime(32) {
		err := internal.NewConfigError("shamir: prime must be a positive prime")
		e.logger.ConfigRejected("shamir", err.Error())
		return nil, err
	}
	if cfg.Prime.Bit(0) == 0 {
		err := internal.NewConfigError("shamir: prime must be odd")
		e.logger.ConfigRejected("shamir", err.Error())
		return nil, err
	}
	if cfg.IDs != nil {
		if err := validateIDs(cfg.IDs, cfg.Limit); err != nil {
			wrapped := internal.NewConfigError("shamir: %s", err)
			e.logger.ConfigRejected("shamir", wrapped.Error())
			return nil, wrapped
		}
	}

	e.logger.EngineConstructed("shamir", cfg.Threshold, cfg.Limit)
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

// Split samples a degree-(t-1) polynomial with secret as its constant term
// and evaluates it at x=1..n (or at Config.IDs when set).
func (e *Engine) Split(secret *big.Int, src random.Source) ([]Share, error) {
	if secret.Sign() < 0 || secret.Cmp(e.cfg.Prime) >= 0 {
		return nil, internal.NewConfigError("shamir: secret must satisfy 0 <= secret < p")
	}

	secretScalar := modprime.New(secret, e.cfg.Prime)
	poly, err := samplePolynomial(secretScalar, e.cfg.Threshold, src)
	if err != nil {
		return nil, err
	}
	defer poly.zeroize()

	shares := make([]Share, e.cfg.Limit)
	for i := uint32(0); i < e.cfg.Limit; i++ {
		idx := e.indexFor(i)
		x := modprime.New(big.NewInt(int64(idx)), e.cfg.Prime)
		shares[i] = Share{Index: idx, Value: poly.evaluate(x).BigInt()}
	}
	return shares, nil
}

// Recover runs Lagrange interpolation at x=0 over exactly t shares with
// distinct indices. Duplicate indices are a precondition violation (the
// denominator is zero) and panic rather than silently returning a wrong
// value.
func (e *Engine) Recover(shares []Share) (*big.Int, error) {
	if uint32(len(shares)) != e.cfg.Threshold {
		return nil, internal.NewConfigError("shamir: recover needs exactly %d shares, got %d", e.cfg.Threshold, len(shares))
	}

	xs := make([]modprime.Scalar, len(shares))
	ys := make([]modprime.Scalar, len(shares))
	seen := make(map[uint32]bool, len(shares))
	for i, sh := range shares {
		if seen[sh.Index] {
			panic("shamir: duplicate share index in Recover")
		}
		seen[sh.Index] = true
		xs[i] = modprime.New(big.NewInt(int64(sh.Index)), e.cfg.Prime)
		ys[i] = modprime.New(sh.Value, e.cfg.Prime)
	}

	return lagrangeAtZero(xs, ys, e.cfg.Prime).BigInt(), nil
}

// lagrangeAtZero computes P(0) = sum_i y_i * prod_{j!=i} (-x_j) / (x_i - x_j),
// each numerator and denominator accumulated as a separate product before
// the one division per term, matching the structure of the source this was
// distilled from.
func lagrangeAtZero(xs, ys []modprime.Scalar, p *big.Int) modprime.Scalar {
	zero := modprime.Zero(p)
	sum := zero

	for i := range xs {
		numerator := modprime.One(p)
		denominator := modprime.One(p)
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
