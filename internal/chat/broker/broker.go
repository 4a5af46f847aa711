package broker

import (
	"log/slog"

	"github.com/wtask/linechat/internal/metrics"
)

// Broker - keeps live client handles and fans messages out to them.
//
// There are two fan-out policies. Relay (peer-originated) never prunes:
// a recipient which fails to accept the message is skipped and it is up to
// recipient's own session to notice its dead connection and leave.
// Announce (operator-originated) prunes failed recipients right after the pass.
type Broker struct {
	clients Registry
	logger  *slog.Logger
}

// New - builds Broker with needed options.
func New(options ...brokerOption) (*Broker, error) {
	b := &Broker{
		clients: NewRegistry(),
		logger:  slog.Default(),
	}
	if err := setup(b, options...); err != nil {
		return nil, err
	}
	return b, nil
}

// Join - registers client handle.
func (b *Broker) Join(h *Handle) error {
	if err := b.clients.Register(h); err != nil {
		return err
	}
	metrics.ConnectedClients.Inc()
	return nil
}

// Leave - deregisters exactly the given handle. It is safe to call it for a handle which has gone already.
func (b *Broker) Leave(h *Handle) bool {
	if h == nil {
		return false
	}
	if !b.clients.Deregister(h.ID(), h) {
		return false
	}
	metrics.ConnectedClients.Dec()
	return true
}

// Clients - returns snapshot of currently registered clients.
func (b *Broker) Clients() []*Handle {
	return b.clients.Snapshot()
}

// Len - returns number of registered clients.
func (b *Broker) Len() int {
	return b.clients.Len()
}

// Relay - sends line to every registered client except the author.
// Returns number of recipients which failed to accept the line.
func (b *Broker) Relay(author *Handle, line string) (failed int) {
	metrics.MessagesTotal.WithLabelValues("relay").Inc()
	for _, h := range b.clients.Snapshot() {
		if author != nil && h.ID() == author.ID() {
			continue
		}
		if err := h.WriteLine(line); err != nil {
			failed++
			metrics.WriteFailuresTotal.WithLabelValues("relay").Inc()
			b.logger.Warn("Failed to relay message",
				"client", h.Name(),
				"client_id", uint64(h.ID()),
				"error", err,
			)
		}
	}
	return failed
}

// Announce - sends line to every registered client.
// Clients which failed to accept the line are removed from the registry in a single batch
// and returned as pruned.
func (b *Broker) Announce(line string) (delivered int, pruned []*Handle) {
	metrics.MessagesTotal.WithLabelValues("announce").Inc()
	var failed []*Handle
	for _, h := range b.clients.Snapshot() {
		if err := h.WriteLine(line); err != nil {
			failed = append(failed, h)
			metrics.WriteFailuresTotal.WithLabelValues("announce").Inc()
			b.logger.Warn("Failed to announce message",
				"client", h.Name(),
				"client_id", uint64(h.ID()),
				"error", err,
			)
			continue
		}
		delivered++
	}
	for _, h := range failed {
		if b.clients.Deregister(h.ID(), h) {
			pruned = append(pruned, h)
			metrics.PrunedClientsTotal.Inc()
			metrics.ConnectedClients.Dec()
			b.logger.Info("Client pruned after failed announce", "client", h.Name(), "client_id", uint64(h.ID()))
		}
	}
	return delivered, pruned
}
