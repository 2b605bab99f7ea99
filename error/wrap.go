package error

// Wrap converts err to *Error.
//
// Behavior:
//   - nil input => nil output
//   - if err is itself an *Error => returned as-is (same pointer)
//   - otherwise the description is the %#v rendering of err, see From
//
// An *Error further down the chain is not unwrapped; the outer error is rendered whole.
func Wrap(err error) *Error {
	if err == nil {
		return nil
	}

	if e, ok := err.(*Error); ok {
		return e
	}

	return From(err)
}

// Check adapts a (value, error) pair at a call site.
// On failure it returns the zero value of T and the wrapped error. Otherwise the
// returned error is an untyped nil, never a nil *Error; a nil *Error held in err
// counts as success.
func Check[T any](v T, err error) (T, error) {
	if e := Wrap(err); e != nil {
		var zero T
		return zero, e
	}

	return v, nil
}
