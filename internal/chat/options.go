package chat

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"
	"golang.org/x/time/rate"
)

// ServerOption - configures Server on construction.
type ServerOption func(s *Server) error

func setup(s *Server, options ...ServerOption) error {
	for _, option := range options {
		if option == nil {
			continue
		}
		if err := option(s); err != nil {
			return err
		}
	}
	return nil
}

// WithLogger - overwrites default logger (slog.Default).
func WithLogger(logger *slog.Logger) ServerOption {
	return func(s *Server) error {
		if logger == nil {
			return errors.New("chat.WithLogger: logger is nil")
		}
		s.logger = logger
		return nil
	}
}

// WithMaxMessageSize - overwrites maximum size of accepted message in bytes.
// Clients sending longer messages are disconnected.
func WithMaxMessageSize(size int) ServerOption {
	return func(s *Server) error {
		if size <= 0 {
			return fmt.Errorf("chat.WithMaxMessageSize: invalid size (%d)", size)
		}
		s.maxMessageSize = size
		return nil
	}
}

// WithWriteTimeout - bounds every single write to client connection. Zero disables the bound.
func WithWriteTimeout(timeout time.Duration) ServerOption {
	return func(s *Server) error {
		if timeout < 0 {
			return fmt.Errorf("chat.WithWriteTimeout: invalid timeout (%v)", timeout)
		}
		s.writeTimeout = timeout
		return nil
	}
}

// WithMessageHistory - attaches history of broadcast lines,
// greets is the number of latest lines pushed to newly connected client.
func WithMessageHistory(history MessageHistory, greets int) ServerOption {
	return func(s *Server) error {
		if history == nil {
			return errors.New("chat.WithMessageHistory: history is nil")
		}
		if greets < 0 {
			return fmt.Errorf("chat.WithMessageHistory: invalid greets value (%d)", greets)
		}
		s.history = history
		s.greets = greets
		return nil
	}
}

// WithClock - overwrites real clock, mostly for tests.
func WithClock(clock clockwork.Clock) ServerOption {
	return func(s *Server) error {
		if clock == nil {
			return errors.New("chat.WithClock: clock is nil")
		}
		s.clock = clock
		return nil
	}
}

// WithAcceptRate - limits rate of accepted connections per second with allowed burst.
func WithAcceptRate(perSecond float64, burst int) ServerOption {
	return func(s *Server) error {
		if perSecond <= 0 || burst <= 0 {
			return fmt.Errorf("chat.WithAcceptRate: invalid rate (%v) or burst (%d)", perSecond, burst)
		}
		s.acceptLimit = rate.NewLimiter(rate.Limit(perSecond), burst)
		return nil
	}
}
