package broker

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func fired(sub *Subscription) bool {
	select {
	case <-sub.Done():
		return true
	case <-time.After(10 * time.Millisecond):
		return false
	}
}

func TestSignal_Fire(test *testing.T) {
	s := NewSignal()
	subs := []*Subscription{s.Subscribe(), s.Subscribe(), s.Subscribe()}
	canceled := s.Subscribe()
	canceled.Cancel()

	assert.False(test, s.Fired())
	for _, sub := range subs {
		assert.False(test, fired(sub))
	}

	assert.True(test, s.Fire())
	assert.True(test, s.Fired())
	for _, sub := range subs {
		assert.True(test, fired(sub))
	}
	assert.False(test, fired(canceled))

	// second fire has no effect
	assert.False(test, s.Fire())
	for _, sub := range subs {
		assert.True(test, fired(sub))
		sub.Cancel()
	}
}

func TestSignal_LateSubscriber(test *testing.T) {
	s := NewSignal()
	s.Fire()
	late := s.Subscribe()
	assert.False(test, fired(late))
	assert.True(test, s.Fired())
	late.Cancel()
}

func TestSignal_ConcurrentFire(test *testing.T) {
	s := NewSignal()
	sub := s.Subscribe()
	wins := make(chan bool, 10)
	wg := sync.WaitGroup{}
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			wins <- s.Fire()
		}()
	}
	wg.Wait()
	close(wins)

	n := 0
	for w := range wins {
		if w {
			n++
		}
	}
	assert.Equal(test, 1, n)
	assert.True(test, fired(sub))
}
