package broker

import "sync"

// Registry - concurrency-safe collection of live client handles.
// There is no raw iteration, broadcasters always work with a snapshot.
type Registry interface {
	// Register - inserts handle, fails with ErrDuplicateClient when its identity is present already.
	Register(h *Handle) error
	// Deregister - removes the entry matching both identity and handle,
	// returns false when there is no such entry.
	Deregister(id ID, h *Handle) bool
	// Snapshot - returns point-in-time copy of registered handles in registration order.
	Snapshot() []*Handle
	// Len - returns number of registered handles.
	Len() int
}

type registry struct {
	mu   sync.RWMutex
	list []*Handle
}

// NewRegistry - builds empty Registry guarded by reader/writer lock.
func NewRegistry() Registry {
	return &registry{list: []*Handle{}}
}

func (r *registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.list)
}

func (r *registry) Register(h *Handle) error {
	if h == nil {
		return ErrNilHandle
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, item := range r.list {
		if item.id == h.id {
			return ErrDuplicateClient
		}
	}
	r.list = append(r.list, h)
	return nil
}

func (r *registry) Deregister(id ID, h *Handle) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, item := range r.list {
		if item.id == id && item == h {
			r.list = append(r.list[:i], r.list[i+1:]...)
			return true
		}
	}
	return false
}

func (r *registry) Snapshot() []*Handle {
	r.mu.RLock()
	defer r.mu.RUnlock()
	snapshot := make([]*Handle, len(r.list))
	copy(snapshot, r.list)
	return snapshot
}
