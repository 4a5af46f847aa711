package broker

import "sync"

// Signal - one-shot notification delivered to every current subscriber.
// Subscriptions created after the signal was fired are not notified,
// use Fired to detect such condition.
type Signal struct {
	mu          sync.Mutex
	fired       bool
	subscribers map[*Subscription]struct{}
}

// Subscription - single listener of the Signal.
type Subscription struct {
	signal *Signal
	done   chan struct{}
	once   sync.Once
}

// NewSignal - builds signal which is not fired yet.
func NewSignal() *Signal {
	return &Signal{subscribers: map[*Subscription]struct{}{}}
}

// Subscribe - creates new subscription. Call Cancel when the subscription is not needed anymore.
func (s *Signal) Subscribe() *Subscription {
	sub := &Subscription{signal: s, done: make(chan struct{})}
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.fired {
		s.subscribers[sub] = struct{}{}
	}
	return sub
}

// Fire - notifies all current subscribers.
// Returns true only for the call which has actually fired the signal, the rest of calls are no-op.
func (s *Signal) Fire() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fired {
		return false
	}
	s.fired = true
	for sub := range s.subscribers {
		sub.close()
	}
	s.subscribers = nil
	return true
}

// Fired - reports whether the signal has been fired.
func (s *Signal) Fired() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fired
}

// Done - returns channel which is closed when signal fires.
func (sub *Subscription) Done() <-chan struct{} {
	return sub.done
}

// Cancel - detaches subscription from the signal.
func (sub *Subscription) Cancel() {
	sub.signal.mu.Lock()
	defer sub.signal.mu.Unlock()
	delete(sub.signal.subscribers, sub)
}

func (sub *Subscription) close() {
	sub.once.Do(func() { close(sub.done) })
}
