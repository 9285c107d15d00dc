package internal

import "github.com/pkg/errors"

// kindError pairs a plain error with the Kind it belongs to so KindOf can
// recover the category after github.com/pkg/errors has wrapped it with
// call-site context.
type kindError struct {
	kind Kind
	err  error
}

func (e *kindError) Error() string { return e.err.Error() }
func (e *kindError) Kind() Kind    { return e.kind }
func (e *kindError) Unwrap() error { return e.err }

// NewConfigError reports a bad (t, n), a non-prime modulus, or a
// wrong-length commitment vector.
func NewConfigError(format string, args ...interface{}) error {
	return &kindError{KindConfig, errors.Errorf(format, args...)}
}

// NewDecodeError reports invalid hex, a wrong byte length, or a scalar that
// does not reduce to a canonical value.
func NewDecodeError(format string, args ...interface{}) error {
	return &kindError{KindDecode, errors.Errorf(format, args...)}
}

// NewArithmeticError builds a KindArithmetic error. The two conditions of
// that category in this module, inverse of zero and duplicate Lagrange
// indices in Recover, panic instead of returning this error.
func NewArithmeticError(format string, args ...interface{}) error {
	return &kindError{KindArithmetic, errors.Errorf(format, args...)}
}

// NewRandomnessError wraps a RandomSource failure.
func NewRandomnessError(err error) error {
	return &kindError{KindRandomness, errors.Wrap(err, "random source failed")}
}
