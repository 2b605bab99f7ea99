package error

import (
	"fmt"

	"github.com/next-trace/scg-easyutils/contract"
)

// Error is the uniform error type. Its only state is the description.
type Error struct {
	description string
}

// compile-time guarantee that *Error implements contract.Error
var _ contract.Error = (*Error)(nil)

// ------ standard error interface

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}

	return e.description
}

// ------ contract.Error getters

func (e *Error) Description() string {
	if e == nil {
		return "<nil>"
	}

	return e.description
}

// GoString makes %#v of an *Error print its description, so From(e) keeps it unchanged.
func (e *Error) GoString() string { return e.Error() }

// ------ core constructors

// New creates an Error with an already-rendered description.
func New(description string) *Error {
	return &Error{description: description}
}

// From converts any value into an Error.
// The description is the Go-syntax representation of value (the %#v verb), which
// honours fmt.GoStringer. From never returns nil.
// Pointer fields render as addresses (e.g. the Err field of *strconv.NumError), so a
// description can differ between runs; do not compare descriptions by literal text.
func From[T any](value T) *Error {
	return New(fmt.Sprintf("%#v", value))
}
