// internal/store/memory.go
//
// In-memory registry of live plays for the HTTP shell.
//
// Characteristics:
//   - Stores *play.Play objects keyed by ID in a map.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - Delete stops the play's clock before dropping it.
//   - Sweep drops plays created before a cutoff, so abandoned runs do not
//     keep their clocks alive.
//   - State is lost when the process restarts.

package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/robalobadob/crossword/internal/play"
)

// ErrNotFound is returned by Get for unknown IDs.
var ErrNotFound = errors.New("play not found")

// Store defines the registry interface for plays.
type Store interface {
	// Save adds or replaces a play.
	Save(ctx context.Context, p *play.Play) error

	// Get retrieves a play by ID.
	Get(ctx context.Context, id string) (*play.Play, error)

	// Delete closes and removes a play. Unknown IDs are ignored.
	Delete(ctx context.Context, id string) error

	// Sweep closes and removes every play created before cutoff and
	// reports how many were removed.
	Sweep(ctx context.Context, cutoff time.Time) int

	// Len reports how many plays are held.
	Len() int
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu    sync.RWMutex          // guards plays
	plays map[string]*play.Play // keyed by Play.ID
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{plays: make(map[string]*play.Play)}
}

// Save adds or replaces the play. A replaced play is closed.
func (m *memory) Save(ctx context.Context, p *play.Play) error {
	m.mu.Lock()
	old := m.plays[p.ID]
	m.plays[p.ID] = p
	m.mu.Unlock()
	if old != nil && old != p {
		old.Close()
	}
	return nil
}

// Get looks up a play by ID.
func (m *memory) Get(ctx context.Context, id string) (*play.Play, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if p, ok := m.plays[id]; ok {
		return p, nil
	}
	return nil, ErrNotFound
}

// Delete drops the play and stops its clock.
func (m *memory) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	p := m.plays[id]
	delete(m.plays, id)
	m.mu.Unlock()
	if p != nil {
		p.Close()
	}
	return nil
}

// Sweep drops plays whose Created is before cutoff. Plays are closed
// after the lock is released.
func (m *memory) Sweep(ctx context.Context, cutoff time.Time) int {
	var expired []*play.Play
	m.mu.Lock()
	for id, p := range m.plays {
		if p.Created.Before(cutoff) {
			expired = append(expired, p)
			delete(m.plays, id)
		}
	}
	m.mu.Unlock()
	for _, p := range expired {
		p.Close()
	}
	return len(expired)
}

func (m *memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.plays)
}
