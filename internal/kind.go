package internal

// Kind categorises the errors this module can return, so callers can branch
// on error category (internal.KindOf(err)) instead of matching strings.
//
//go:generate stringer -type=Kind -output=kind_string.go
type Kind int

const (
	// KindConfig covers bad (t, n), a non-prime modulus, or a
	// wrong-length commitment vector. Raised synchronously on engine
	// construction or Split.
	KindConfig Kind = iota
	// KindDecode covers invalid hex, wrong byte length, or a scalar >= q.
	KindDecode
	// KindArithmetic covers inverse-of-zero and duplicate Lagrange
	// indices. These are precondition violations, not decode failures.
	KindArithmetic
	// KindRandomness covers RandomSource failures.
	KindRandomness
)

// coder is implemented by the sentinel errors in this package so KindOf can
// recover the category through an arbitrary chain of pkg/errors wraps.
type coder interface {
	Kind() Kind
}

// KindOf returns the Kind carried by err, walking any github.com/pkg/errors
// wrap chain, and false if err (or nothing in its chain) carries one.
func KindOf(err error) (Kind, bool) {
	type causer interface {
		Cause() error
	}
	for err != nil {
		if c, ok := err.(coder); ok {
			return c.Kind(), true
		}
		cause, ok := err.(causer)
		if !ok {
			break
		}
		err = cause.Cause()
	}
	return 0, false
}
