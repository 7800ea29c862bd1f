// Package session provides interfaces for types to be in compliance with.
package session

// Manager defines a set of methods for types implementing Manager.
// Tokens are opaque to callers; the only field carried is the user ID.
type Manager interface {
	Issue(userID string) (token string, err error)
	Parse(token string) (userID string, err error)
}
