package timer

import (
	"sync"
	"time"
)

// Scheduler runs deferred tasks through a post function, normally the
// supervisor's Post. A task is dropped if it was cancelled before it
// reached the loop, even when its timer had already fired.
type Scheduler struct {
	post func(func())

	mu      sync.Mutex
	next    uint64
	pending map[uint64]*time.Timer
}

// NewScheduler creates a scheduler delivering tasks through post.
func NewScheduler(post func(func())) *Scheduler {
	return &Scheduler{
		post:    post,
		pending: make(map[uint64]*time.Timer),
	}
}

// After schedules fn to run after d and returns a token for Cancel.
func (s *Scheduler) After(d time.Duration, fn func()) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.next++
	token := s.next
	s.pending[token] = time.AfterFunc(d, func() {
		s.post(func() {
			if s.take(token) {
				fn()
			}
		})
	})
	return token
}

// Cancel drops a pending task. Unknown tokens are ignored.
func (s *Scheduler) Cancel(token uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t, ok := s.pending[token]; ok {
		t.Stop()
		delete(s.pending, token)
	}
}

// CancelAll drops every pending task.
func (s *Scheduler) CancelAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for token, t := range s.pending {
		t.Stop()
		delete(s.pending, token)
	}
}

// Pending returns the number of tasks not yet run or cancelled.
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

func (s *Scheduler) take(token uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.pending[token]; !ok {
		return false
	}
	delete(s.pending, token)
	return true
}
