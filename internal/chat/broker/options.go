package broker

import (
	"errors"
	"log/slog"
)

type brokerOption func(b *Broker) error

func setup(b *Broker, options ...brokerOption) error {
	if b == nil {
		return nil
	}
	for _, option := range options {
		if option == nil {
			continue
		}
		if err := option(b); err != nil {
			return err
		}
	}
	return nil
}

// WithRegistry - overwrites default registry implementation.
func WithRegistry(r Registry) brokerOption {
	return func(b *Broker) error {
		if r == nil {
			return errors.New("broker.WithRegistry: registry is nil")
		}
		b.clients = r
		return nil
	}
}

// WithLogger - overwrites default logger (slog.Default).
func WithLogger(logger *slog.Logger) brokerOption {
	return func(b *Broker) error {
		if logger == nil {
			return errors.New("broker.WithLogger: logger is nil")
		}
		b.logger = logger
		return nil
	}
}
