package background

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// Scope - joins goroutines which share the same lifetime.
// Members receive scope context, which is cancelled with Cancel or with parent context.
type Scope struct {
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
	active atomic.Int64
}

// NewScope - concurrency scope builder, nil parent means context.Background().
func NewScope(parent context.Context) *Scope {
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithCancel(parent)
	return &Scope{ctx: ctx, cancel: cancel}
}

// Context - returns scope context.
func (s *Scope) Context() context.Context {
	return s.ctx
}

// Cancel - cancels scope context, does not wait for members.
func (s *Scope) Cancel() {
	s.cancel()
}

// Go - runs f as a new member of the scope.
func (s *Scope) Go(f func(ctx context.Context)) {
	s.active.Add(1)
	s.wg.Add(1)
	go func() {
		defer func() {
			s.active.Add(-1)
			s.wg.Done()
		}()
		f(s.ctx)
	}()
}

// Active - number of running members.
func (s *Scope) Active() int {
	return int(s.active.Load())
}

// Wait - waits for all members no longer than timeout.
// Returns false if some members are still running after timeout.
func (s *Scope) Wait(timeout time.Duration) bool {
	if s.Active() == 0 {
		return true
	}
	if timeout <= 0 {
		return false
	}
	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()
	t := time.NewTimer(timeout)
	defer t.Stop()
	select {
	case <-done:
		return true
	case <-t.C:
		return false
	}
}
