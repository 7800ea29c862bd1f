// Package identifier provides interfaces for types to be in compliance with.
package identifier

// Generator defines a set of methods for types implementing Generator.
// Generate returns a fresh short code; uniqueness against any store is the
// caller's responsibility.
type Generator interface {
	Generate() (string, error)
}
