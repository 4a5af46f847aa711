package broker

import "errors"

var (
	// ErrDuplicateClient - returns when a client with the same identity is registered already.
	// Identities are assigned from monotonic counter, so the error points to a programming mistake.
	ErrDuplicateClient = errors.New("broker.Registry: client is registered already")

	// ErrNilHandle - returns when handle or its outbound endpoint is missing.
	ErrNilHandle = errors.New("broker: nil client handle")
)
