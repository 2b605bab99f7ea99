// Package contract exposes the minimal error interface used by other packages.
//
// Implementations carry a single description string and nothing else: no
// codes, no cause chain.
package contract

// Error is the minimal, stable surface that other packages can depend on.
//
// Implementations must:
//   - Return the same text from Error() and Description().
//   - Never change the description after construction.
type Error interface {
	error
	Description() string
}
