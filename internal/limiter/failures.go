package limiter

import (
	"sync"
	"time"
)

type failEntry struct {
	count        int
	first        time.Time
	blockedUntil time.Time
}

// FailureTracker counts failed login attempts per identity and, once the
// threshold is reached inside the window, blocks the identity until a fixed
// future timestamp. The block outlives the counting window and is checked
// before credentials are even looked at.
//
// State is process-local, same accepted trade-off as MemoryStore.
type FailureTracker struct {
	threshold time.Duration // counting window
	limit     int
	blockFor  time.Duration

	mu      sync.Mutex
	entries map[string]*failEntry
	now     func() time.Time
}

// NewFailureTracker creates a tracker blocking for blockFor after limit
// failures within window.
func NewFailureTracker(limit int, window, blockFor time.Duration) *FailureTracker {
	return &FailureTracker{
		threshold: window,
		limit:     limit,
		blockFor:  blockFor,
		entries:   make(map[string]*failEntry),
		now:       time.Now,
	}
}

// Blocked reports whether key is currently blocked and for how much longer.
// Expired entries are evicted lazily.
func (t *FailureTracker) Blocked(key string) (bool, time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()

	e, ok := t.entries[key]
	if !ok {
		return false, 0
	}
	now := t.now()
	if e.blockedUntil.After(now) {
		return true, e.blockedUntil.Sub(now)
	}
	if now.After(e.first.Add(t.threshold)) && !e.blockedUntil.After(now) {
		delete(t.entries, key)
	}
	return false, 0
}

// RecordFailure registers one failed attempt for key. The limit-th failure
// inside the window sets the block timestamp.
func (t *FailureTracker) RecordFailure(key string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	e, ok := t.entries[key]
	if !ok || now.After(e.first.Add(t.threshold)) {
		t.entries[key] = &failEntry{count: 1, first: now}
		return
	}
	e.count++
	if e.count >= t.limit {
		e.blockedUntil = now.Add(t.blockFor)
	}
}
