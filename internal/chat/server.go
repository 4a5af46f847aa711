package chat

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"golang.org/x/time/rate"

	"github.com/wtask/linechat/internal/chat/broker"
	"github.com/wtask/linechat/internal/chat/message"
	"github.com/wtask/linechat/internal/metrics"
	"github.com/wtask/linechat/pkg/background"
)

// Server - text line chat relay over any stream connections.
type Server struct {
	wg *sync.WaitGroup

	// mu - serializes session start with shutdown, so no session starts unnoticed by shutdown
	mu       sync.Mutex
	sessions *background.Scope
	shutdown *broker.Signal
	stopping *broker.Subscription

	broker *broker.Broker
	ids    identities

	logger         *slog.Logger
	clock          clockwork.Clock
	maxMessageSize int
	writeTimeout   time.Duration
	history        MessageHistory
	greets         int
	acceptLimit    *rate.Limiter
}

// NewServer - creates new chat server which ready to serve several network listeners.
func NewServer(buildBroker BrokerBuilder, options ...ServerOption) (*Server, error) {
	if buildBroker == nil {
		return nil, errors.New("chat.NewServer: required chat.BrokerBuilder is nil")
	}
	sessions := background.NewScope(context.Background())
	shutdown := broker.NewSignal()
	s := &Server{
		wg:             &sync.WaitGroup{},
		sessions:       sessions,
		shutdown:       shutdown,
		stopping:       shutdown.Subscribe(),
		logger:         slog.Default(),
		clock:          clockwork.NewRealClock(),
		maxMessageSize: message.DefaultMaxSize,
	}
	if err := setup(s, options...); err != nil {
		sessions.Cancel()
		return nil, err
	}
	b, err := buildBroker(s.logger)
	if err != nil {
		sessions.Cancel()
		return nil, fmt.Errorf("chat.NewServer: can't build broker: %w", err)
	}
	s.broker = b
	return s, nil
}

// Serve - accepts connections of the listener until the server is stopped.
// Returns nil when listener was closed due to shutdown, otherwise returns listener error.
func (s *Server) Serve(listener net.Listener) error {
	if listener == nil {
		return errors.New("chat.Server: listener is nil")
	}
	if s.shutdown.Fired() || s.sessions.Context().Err() != nil {
		return ErrUnderStopCondition
	}
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		select {
		case <-s.sessions.Context().Done():
		case <-s.stopping.Done():
		}
		listener.Close()
	}()

	s.wg.Add(1)
	defer s.wg.Done()
	logger := s.logger.With("listener", formatAddress(listener.Addr()))
	logger.Info("Serving connections")
	for {
		conn, err := listener.Accept()
		if err != nil {
			if s.shutdown.Fired() || s.sessions.Context().Err() != nil {
				logger.Info("Listener closed")
				return nil
			}
			var netErr net.Error
			if errors.As(err, &netErr) && netErr.Timeout() {
				logger.Warn("Accept timeout", "error", err)
				continue
			}
			logger.Error("Unable to accept connection", "error", err)
			return err
		}

		if s.acceptLimit != nil && !s.acceptLimit.Allow() {
			metrics.RejectedConnectionsTotal.WithLabelValues("rate_limit").Inc()
			logger.Warn("Connection rejected: accept rate exceeded", "remote", formatAddress(conn.RemoteAddr()))
			conn.Close()
			continue
		}

		if err := s.KeepConnection(conn, formatAddress(conn.RemoteAddr())); err != nil {
			metrics.RejectedConnectionsTotal.WithLabelValues("stopping").Inc()
			logger.Warn("Connection rejected", "remote", formatAddress(conn.RemoteAddr()), "error", err)
			conn.Close()
		}
	}
}

// KeepConnection - registers new client connection and starts its session in background.
// On error the connection is not kept and should be closed by the caller.
func (s *Server) KeepConnection(conn io.ReadWriteCloser, remote string) error {
	if conn == nil {
		return ErrNilConnection
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	// subscribe before the check, then shutdown either reaches the subscription or is detected here
	sub := s.shutdown.Subscribe()
	if s.shutdown.Fired() {
		sub.Cancel()
		return ErrUnderStopCondition
	}

	id := s.ids.next()
	handle := broker.NewHandle(id, displayName(id), conn)
	handle.SetWriteTimeout(s.writeTimeout)
	if err := s.broker.Join(handle); err != nil {
		sub.Cancel()
		s.logger.Error("Unable to register client", "client", handle.Name(), "error", err)
		return fmt.Errorf("chat.Server: can't register %s: %w", handle.Name(), err)
	}

	ss := newSession(s, handle, conn, sub, remote)
	s.sessions.Go(func(context.Context) {
		ss.run()
	})
	return nil
}

// Announce - sends operator line to all clients, clients which failed to receive it are pruned.
func (s *Server) Announce(line string) (delivered int, pruned []*broker.Handle) {
	out := message.Server(line)
	historyPush(s.history, out)
	return s.broker.Announce(out)
}

// Stop - fires shutdown signal, every session will close at its next read wait.
// Returns false if server was stopped already.
func (s *Server) Stop() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.shutdown.Fire()
}

// Stopping - returns channel which is closed when server stop was requested.
func (s *Server) Stopping() <-chan struct{} {
	return s.stopping.Done()
}

// Stopped - reports whether the server was stopped.
func (s *Server) Stopped() bool {
	return s.shutdown.Fired()
}

// Clients - returns number of registered clients.
func (s *Server) Clients() int {
	return s.broker.Len()
}

// Shutdown - stops server with the specified timeout and returns stopping duration.
func (s *Server) Shutdown(timeout time.Duration) time.Duration {
	from := s.clock.Now()
	s.Stop()
	s.sessions.Cancel()
	if !s.sessions.Wait(timeout) {
		s.logger.Warn("Sessions are still running after shutdown timeout",
			"timeout", timeout,
			"sessions", s.sessions.Active(),
			"clients", s.broker.Len(),
		)
	}
	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(timeout):
	}
	return s.clock.Since(from)
}
