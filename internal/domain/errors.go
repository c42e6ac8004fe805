package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a mutation addresses an id that is not in
	// the collection, or that the current user does not own.
	ErrNotFound = errors.New("entity not found")

	// ErrNoUser is returned by the remote backend when no user is signed in.
	ErrNoUser = errors.New("no authenticated user")

	// ErrEmptyResponse is returned when a generation provider answered
	// successfully but produced nothing.
	ErrEmptyResponse = errors.New("provider returned empty response")
)

// RemoteError wraps a failure of the remote persistence backend.
type RemoteError struct {
	Op         string
	Collection string
	Err        error
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("remote %s %s: %v", e.Op, e.Collection, e.Err)
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}
