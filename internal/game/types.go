// internal/game/types.go
//
// Core type definitions for a crossword play session.
// Defines:
//   - EventKind/Event: notifications emitted to shells (tick, edit, complete).
//   - Options: knobs for starting a session (hints, seed, clock).
//   - Session: live state for one level attempt.

package game

import (
	"math/rand/v2"
	"sync"

	"github.com/robalobadob/crossword/internal/grid"
	"github.com/robalobadob/crossword/internal/levels"
)

// EventKind names what changed in a session.
type EventKind string

const (
	EventTick     EventKind = "tick"
	EventEdit     EventKind = "edit"
	EventComplete EventKind = "complete"
)

// Event is a snapshot of the session counters after a change.
type Event struct {
	Kind     EventKind `json:"kind"`
	Elapsed  int       `json:"elapsed"`
	Time     string    `json:"time"`
	Complete bool      `json:"complete"`
	GaveUp   bool      `json:"gaveUp"`
}

// Options configures Start.
type Options struct {
	Hints   bool        // pre-fill random hint cells
	RNG     *rand.Rand  // hint source; hints are skipped when nil
	Elapsed int         // carried-over seconds, normally 0
	Ticks   TickSource  // clock driver; RealTicks when nil
	OnEvent func(Event) // optional observer, called outside the lock
}

// Session holds the state of a single level attempt.
// All methods are safe for concurrent use; the clock goroutine and the
// owning shell both go through the mutex.
type Session struct {
	mu       sync.Mutex
	level    levels.Level
	grid     *grid.Grid
	elapsed  int  // seconds, increases only while active
	complete bool // one-way latch
	gaveUp   bool // set with complete by GiveUp
	stopped  bool // clock torn down
	stopOnce sync.Once
	done     chan struct{}
	stopTick func()
	onEvent  func(Event)
}
