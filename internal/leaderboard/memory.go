// internal/leaderboard/memory.go
//
// In-memory implementation of Store.
//
// Characteristics:
//   - Keeps entries in a slice, sorted on read.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - State is lost when the process restarts.

package leaderboard

import (
	"context"
	"sync"
	"time"
)

// memory is a slice-backed Store.
type memory struct {
	mu      sync.RWMutex // guards entries
	entries []Entry
	now     func() time.Time
}

// NewMemory constructs an empty in-memory Store.
func NewMemory() Store {
	return &memory{now: time.Now}
}

// Submit appends a validated entry.
func (m *memory) Submit(ctx context.Context, s Submission) (Entry, error) {
	e, err := newEntry(s, m.now())
	if err != nil {
		return Entry{}, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, e)
	return e, nil
}

// List returns a sorted copy of at most limit entries.
func (m *memory) List(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	m.mu.RLock()
	out := append([]Entry(nil), m.entries...)
	m.mu.RUnlock()

	sortEntries(out)
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *memory) Close() error { return nil }
