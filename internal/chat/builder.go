package chat

import (
	"errors"
	"log/slog"

	"github.com/wtask/linechat/internal/chat/broker"
)

// BrokerBuilder - helps to build custom broker.Broker for the server logger.
type BrokerBuilder func(logger *slog.Logger) (*broker.Broker, error)

// DefaultBroker - returns builder of broker.Broker with default registry.
func DefaultBroker() BrokerBuilder {
	return func(logger *slog.Logger) (*broker.Broker, error) {
		if logger == nil {
			return nil, errors.New("chat.DefaultBroker: logger is required")
		}
		return broker.New(
			broker.WithRegistry(broker.NewRegistry()),
			broker.WithLogger(logger.With("component", "broker")),
		)
	}
}
