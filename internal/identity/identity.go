// Package identity resolves the current user id used to scope queries and to
// set per-record ownership. The vault core never authenticates users itself;
// it only consumes an identity established elsewhere.
package identity

import "context"

// Provider yields the user id for the current operation.
type Provider interface {
	UserID(ctx context.Context) (string, error)
}

// Static always returns the same user id. Used in tests and by system-level
// jobs such as the retention sweeper.
type Static struct {
	ID string
}

func (s Static) UserID(ctx context.Context) (string, error) {
	return s.ID, nil
}
