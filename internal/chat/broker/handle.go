package broker

import (
	"io"
	"sync"
	"time"
)

// ID - process-unique client identity, assigned once per accepted connection.
type ID uint64

// deadliner - optional capability of outbound endpoints which support write deadlines (net.Conn does).
type deadliner interface {
	SetWriteDeadline(t time.Time) error
}

// Handle - exclusive-access handle to one client's outbound endpoint.
// References to the same Handle are shared by the Registry, the owning session
// and every broadcaster, so the endpoint is guarded by its own lock
// which is held for a single write only.
type Handle struct {
	id   ID
	name string

	mu           sync.Mutex
	out          io.Writer
	writeTimeout time.Duration
}

// NewHandle - wraps outbound endpoint of the client identified by id.
// The name is used as display name of the client within broadcast messages.
func NewHandle(id ID, name string, out io.Writer) *Handle {
	return &Handle{id: id, name: name, out: out}
}

// ID - returns client identity.
func (h *Handle) ID() ID {
	return h.id
}

// Name - returns client display name.
func (h *Handle) Name() string {
	return h.name
}

// SetWriteTimeout - bounds every single write when endpoint supports write deadlines.
// Zero value disables the bound.
func (h *Handle) SetWriteTimeout(d time.Duration) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.writeTimeout = d
}

// WriteLine - atomically writes line terminated with '\n' into outbound endpoint.
func (h *Handle) WriteLine(line string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.out == nil {
		return ErrNilHandle
	}
	if d, ok := h.out.(deadliner); ok && h.writeTimeout > 0 {
		d.SetWriteDeadline(time.Now().Add(h.writeTimeout))
		defer d.SetWriteDeadline(time.Time{})
	}
	_, err := io.WriteString(h.out, line+"\n")
	return err
}
