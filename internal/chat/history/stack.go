package history

import (
	"fmt"
	"sync"
)

// Stack - keeps a limited number of the latest broadcast lines.
// When the stack is full, every push drops the oldest line.
type Stack struct {
	mu    sync.RWMutex
	data  []string
	head  int // index of the oldest line
	count int
}

// NewStack - builds history stack for max lines.
func NewStack(max int) (*Stack, error) {
	if max <= 0 {
		return nil, fmt.Errorf("history.NewStack: max (%d) must be greater than 0", max)
	}
	return &Stack{data: make([]string, max)}, nil
}

// Len - returns number of lines currently kept.
func (s *Stack) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.count
}

// Push - adds line to history.
func (s *Stack) Push(line string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.count < len(s.data) {
		s.data[(s.head+s.count)%len(s.data)] = line
		s.count++
		return
	}
	s.data[s.head] = line
	s.head = (s.head + 1) % len(s.data)
}

// Tail - copies last n lines in chronological order, the first line is the oldest.
// Negative n is treated as its absolute value.
func (s *Stack) Tail(n int) []string {
	if n < 0 {
		n = -n
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if n > s.count {
		n = s.count
	}
	tail := make([]string, n)
	for i := 0; i < n; i++ {
		tail[i] = s.data[(s.head+s.count-n+i)%len(s.data)]
	}
	return tail
}
