package adapter

import "errors"

var (
	// ErrUnauthorized is returned when the server rejects the bearer token
	// or the login credentials. The caller must re-authenticate before the
	// next sync round.
	ErrUnauthorized = errors.New("client unauthorized")

	// ErrTransport wraps timeouts, connection resets and other transient
	// network failures that survived the retry policy. The round fails as a
	// whole; pending state is preserved for the next attempt.
	ErrTransport = errors.New("transport failure")
)
