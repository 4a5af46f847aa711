package chat

import "errors"

var (
	// ErrUnderStopCondition - returns in case if Server is under stop condition
	// and will not accept any new connections, so you should close such connection by your own.
	ErrUnderStopCondition = errors.New("chat.Server: under stop condition")

	// ErrNilConnection - returns when connection to keep is nil.
	ErrNilConnection = errors.New("chat.Server: connection is nil")
)
