package chat

import (
	"errors"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/wtask/linechat/internal/chat/broker"
	"github.com/wtask/linechat/internal/chat/message"
	"github.com/wtask/linechat/internal/metrics"
)

// readResult - outcome of a single read wait: either the next line or the end of stream.
type readResult struct {
	line string
	end  bool
	err  error // nil at clean end of stream
}

// session - drives single client connection:
// read -> echo and relay -> read ... until the client leaves, fails, or the server stops.
type session struct {
	server *Server
	handle *broker.Handle
	conn   io.ReadWriteCloser
	sub    *broker.Subscription
	logger *slog.Logger

	started time.Time
	stop    chan struct{}
	reader  sync.WaitGroup
}

func newSession(s *Server, h *broker.Handle, conn io.ReadWriteCloser, sub *broker.Subscription, remote string) *session {
	return &session{
		server:  s,
		handle:  h,
		conn:    conn,
		sub:     sub,
		logger:  s.logger.With(clientAttrs(h.Name(), uint64(h.ID()), connectionID(), remote)...),
		started: s.clock.Now(),
		stop:    make(chan struct{}),
	}
}

// run - serves the session and always deregisters the client at the end.
func (ss *session) run() {
	reason := closePanic
	defer func() {
		if r := recover(); r != nil {
			ss.logger.Error("Session panic recovered", "panic", r)
		}
		ss.server.broker.Leave(ss.handle)
		ss.sub.Cancel()
		close(ss.stop)
		ss.conn.Close()
		ss.reader.Wait()

		lifetime := ss.server.clock.Since(ss.started)
		metrics.SessionsClosedTotal.WithLabelValues(reason.String()).Inc()
		metrics.SessionDuration.Observe(lifetime.Seconds())
		ss.logger.Info("Client disconnected", "reason", reason.String(), "duration", lifetime)
	}()

	ss.logger.Info("Client connected")
	reason = ss.serve()
}

func (ss *session) serve() closeReason {
	for _, line := range historyTail(ss.server.history, ss.server.greets) {
		if err := ss.handle.WriteLine(line); err != nil {
			ss.logger.Error("Failed to greet client with history", "error", err)
			return closeWriteError
		}
	}

	results := make(chan readResult)
	ss.reader.Add(1)
	go ss.read(results)

	for {
		select {
		case <-ss.sub.Done():
			ss.logger.Info("Shutdown received, closing session")
			return closeShutdown
		case r := <-results:
			if r.end {
				return ss.closeOnEnd(r.err)
			}
			if reason, next := ss.process(r.line); !next {
				return reason
			}
		}
	}
}

// read - pumps lines from the connection into results until the stream ends or session stops.
func (ss *session) read(results chan<- readResult) {
	defer ss.reader.Done()
	scanner := message.NewScanner(ss.conn, ss.server.maxMessageSize)
	for scanner.Scan() {
		select {
		case results <- readResult{line: scanner.Text()}:
		case <-ss.stop:
			return
		}
	}
	select {
	case results <- readResult{end: true, err: scanner.Err()}:
	case <-ss.stop:
	}
}

func (ss *session) closeOnEnd(err error) closeReason {
	switch {
	case err == nil:
		return closeLeft
	case errors.Is(err, message.ErrTooLong):
		ss.logger.Warn("Message too long, disconnecting", "max_size", ss.server.maxMessageSize)
		return closeOversize
	default:
		ss.logger.Error("Error reading from client", "error", err)
		return closeReadError
	}
}

// process - handles single received line, returns false with reason when the session should close.
func (ss *session) process(line string) (closeReason, bool) {
	msg := message.Normalize(line)
	if len(msg) > ss.server.maxMessageSize {
		ss.logger.Warn("Message too long, disconnecting", "size", len(msg), "max_size", ss.server.maxMessageSize)
		return closeOversize, false
	}
	if message.IsExit(msg) {
		ss.logger.Info("Client requested exit")
		return closeExit, false
	}
	ss.logger.Info("Message received", "message", msg)

	if err := ss.handle.WriteLine(message.Echo(msg)); err != nil {
		metrics.WriteFailuresTotal.WithLabelValues("echo").Inc()
		ss.logger.Error("Failed to write echo", "error", err)
		return closeWriteError, false
	}
	metrics.MessagesTotal.WithLabelValues("echo").Inc()

	out := message.Relay(ss.handle.Name(), msg)
	historyPush(ss.server.history, out)
	ss.server.broker.Relay(ss.handle, out)
	return 0, true
}
