package limiter

import (
	"context"
	"sync"
	"time"
)

type window struct {
	count int
	start time.Time
	ttl   time.Duration
}

// MemoryStore is the in-process fixed-window store. State is local to the
// process: in a multi-instance deployment each replica enforces its own
// budget. Use RedisStore when the limit must hold fleet-wide.
type MemoryStore struct {
	mu      sync.Mutex
	windows map[string]*window
	now     func() time.Time
}

// NewMemoryStore creates an empty MemoryStore and starts a background sweep
// of expired windows so the map does not grow without bound.
func NewMemoryStore() *MemoryStore {
	s := &MemoryStore{
		windows: make(map[string]*window),
		now:     time.Now,
	}
	go s.sweepLoop()
	return s
}

var _ Store = (*MemoryStore)(nil)

// Allow applies the fixed-window algorithm: first request opens a window with
// count 1; an elapsed window resets; below the ceiling the count increments;
// at the ceiling the request is rejected and the count stays untouched.
func (s *MemoryStore) Allow(_ context.Context, id Identity, rule Rule) (Decision, error) {
	key := id.String()
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	w, ok := s.windows[key]
	if !ok || now.After(w.start.Add(rule.Window)) {
		s.windows[key] = &window{count: 1, start: now, ttl: rule.Window}
		return Decision{Allowed: true, Remaining: rule.Limit - 1}, nil
	}

	if w.count < rule.Limit {
		w.count++
		return Decision{Allowed: true, Remaining: rule.Limit - w.count}, nil
	}

	return Decision{
		Allowed:    false,
		Remaining:  0,
		RetryAfter: w.start.Add(rule.Window).Sub(now),
	}, nil
}

// sweepLoop periodically drops windows whose period has elapsed.
func (s *MemoryStore) sweepLoop() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()
	for range ticker.C {
		now := s.now()
		s.mu.Lock()
		for key, w := range s.windows {
			if now.After(w.start.Add(w.ttl)) {
				delete(s.windows, key)
			}
		}
		s.mu.Unlock()
	}
}
