package ratelimit

import (
	"context"
	"sync"
	"time"
)

type window struct {
	start time.Time
	count int
}

// MemoryStore is the process-default fixed-window counter. Windows reset
// a full duration after the first request that opened them; state is lost
// on restart.
type MemoryStore struct {
	mu      sync.Mutex
	limit   int
	window  time.Duration
	windows map[string]*window
	now     func() time.Time
}

func NewMemoryStore(limit int, windowDur time.Duration) *MemoryStore {
	return &MemoryStore{
		limit:   limit,
		window:  windowDur,
		windows: make(map[string]*window),
		now:     time.Now,
	}
}

func (s *MemoryStore) Allow(_ context.Context, key string) (*Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	w, ok := s.windows[key]
	if !ok || now.Sub(w.start) >= s.window {
		w = &window{start: now}
		s.windows[key] = w
	}

	resetIn := s.window - now.Sub(w.start)
	if w.count >= s.limit {
		return &Result{Allowed: false, Limit: s.limit, Remaining: 0, ResetIn: resetIn}, nil
	}
	w.count++
	return &Result{
		Allowed:   true,
		Limit:     s.limit,
		Remaining: s.limit - w.count,
		ResetIn:   resetIn,
	}, nil
}
