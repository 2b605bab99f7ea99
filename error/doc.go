// Package error provides a uniform error type that any failure value can be absorbed into.
//
// It exposes a single concrete type Error that implements contract.Error. An Error holds
// only a description: the Go-syntax (%#v) rendering of the value it was built from.
//
// Key characteristics:
//   - Universal: From accepts a value of any type and never fails
//   - Lossy: the original value is rendered once and not retained
//   - Immutable: there are no setters
//
// Wrap and Check adapt plain errors at call sites so that functions mixing several
// failure sources can return one error type.
package error
