// internal/leaderboard/leaderboard.go
//
// Leaderboard of finished runs.
// Defines:
//   - Entry: one submitted run (nickname, total time, per-level times).
//   - Store: persistence interface (memory and SQLite implementations).
//
// Entries are never updated or deduplicated. Display order is ascending
// total time, ties broken by completion time.

package leaderboard

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultLimit caps List when no limit is given.
const DefaultLimit = 20

// ErrEmptyNickname is returned for blank nicknames.
var ErrEmptyNickname = errors.New("nickname is required")

// Entry is one persisted run.
type Entry struct {
	ID           string      `json:"id"`
	Nickname     string      `json:"nickname"`
	TotalSeconds int         `json:"totalSeconds"`
	LevelTimes   map[int]int `json:"levelTimes"`
	CompletedAt  time.Time   `json:"completedAt"`
}

// Submission is what a player sends after finishing every level.
type Submission struct {
	Nickname     string
	TotalSeconds int
	LevelTimes   map[int]int
}

// Store defines the persistence interface for leaderboard entries.
type Store interface {
	// Submit validates and stores a new entry.
	Submit(ctx context.Context, s Submission) (Entry, error)

	// List returns up to limit entries, fastest first.
	List(ctx context.Context, limit int) ([]Entry, error)

	Close() error
}

// newEntry validates a submission and stamps ID and time.
func newEntry(s Submission, now time.Time) (Entry, error) {
	nick := strings.TrimSpace(s.Nickname)
	if nick == "" {
		return Entry{}, ErrEmptyNickname
	}
	times := make(map[int]int, len(s.LevelTimes))
	for k, v := range s.LevelTimes {
		times[k] = v
	}
	return Entry{
		ID:           uuid.NewString(),
		Nickname:     nick,
		TotalSeconds: max(s.TotalSeconds, 0),
		LevelTimes:   times,
		CompletedAt:  now.UTC(),
	}, nil
}

// sortEntries orders entries by total time, then completion time.
func sortEntries(es []Entry) {
	sort.SliceStable(es, func(i, j int) bool {
		if es[i].TotalSeconds != es[j].TotalSeconds {
			return es[i].TotalSeconds < es[j].TotalSeconds
		}
		return es[i].CompletedAt.Before(es[j].CompletedAt)
	})
}

// Open returns the store for dsn: "memory" selects the in-process list,
// anything else is treated as a SQLite DSN.
func Open(dsn string) (Store, error) {
	if dsn == "" || dsn == "memory" {
		return NewMemory(), nil
	}
	s, err := OpenSQL(dsn)
	if err != nil {
		return nil, err
	}
	return s, nil
}
