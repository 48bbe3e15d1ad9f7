// internal/play/play.go
//
// A Play is one player's run through the level list.
// Responsibilities:
//   - Own the progression state and the live session of the current level.
//   - Apply every transition (select, edit, give up, continue, restart)
//     one at a time under a single mutex.
//   - Produce JSON-ready snapshots for the shells.
//
// Edit events reach Options.OnEvent while the Play lock is held, so
// OnEvent must not call back into the Play.

package play

import (
	"errors"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/robalobadob/crossword/internal/game"
	"github.com/robalobadob/crossword/internal/levels"
	"github.com/robalobadob/crossword/internal/progress"
)

var (
	ErrNoLevels    = errors.New("no levels to play")
	ErrNotComplete = errors.New("level not complete")
	ErrNotFinished = errors.New("run not finished")
)

// Event is a session event tagged with the level index it belongs to.
type Event struct {
	game.Event
	Level int `json:"level"`
}

// Options configures a Play.
type Options struct {
	Hints   bool                         // pre-fill hint cells on each level
	Seeder  func(levelID int) *rand.Rand // hint RNG per level; random when nil
	Ticks   game.TickSource              // session clock; wall clock when nil
	OnEvent func(Event)                  // optional observer
}

// Play holds one run. All methods are safe for concurrent use.
type Play struct {
	ID      string
	Created time.Time

	mu       sync.Mutex
	opts     Options
	progress *progress.Progress
	session  *game.Session // nil once the run is finished
}

// New creates a run over lv and starts the first level. An empty id is
// replaced with a fresh UUID.
func New(id string, lv []levels.Level, opts Options) (*Play, error) {
	if len(lv) == 0 {
		return nil, ErrNoLevels
	}
	if id == "" {
		id = uuid.NewString()
	}
	p := &Play{
		ID:       id,
		Created:  time.Now().UTC(),
		opts:     opts,
		progress: progress.New(lv),
	}
	p.startLocked()
	return p, nil
}

// StartLevel switches to level i, discarding the current attempt.
func (p *Play) StartLevel(i int) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.progress.Select(i); err != nil {
		return err
	}
	p.startLocked()
	return nil
}

// Edit writes letter into (row, col) of the current level. Reports whether
// the board changed.
func (p *Play) Edit(row, col int, letter string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.session == nil {
		return false
	}
	return p.session.EditCell(row, col, letter)
}

// GiveUp reveals the current level's solution.
func (p *Play) GiveUp() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.session != nil {
		p.session.GiveUp()
	}
}

// Continue records the finished level and starts the next one, or marks
// the run finished after the last level.
func (p *Play) Continue() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.progress.Finished() {
		return progress.ErrFinished
	}
	s := p.session
	if s == nil || !s.Complete() {
		return ErrNotComplete
	}
	err := p.progress.Advance(progress.Outcome{
		LevelID: s.Level().ID,
		Seconds: s.Elapsed(),
		GaveUp:  s.GaveUp(),
	})
	if err != nil {
		return err
	}
	if p.progress.Finished() {
		p.session = nil
		return nil
	}
	p.startLocked()
	return nil
}

// Restart clears the run and starts again from the first level.
func (p *Play) Restart() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.progress.Restart()
	p.startLocked()
}

// Close stops the session clock. The Play must not be used afterwards.
func (p *Play) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.session != nil {
		p.session.Stop()
	}
}

// Summary is the final result of a finished run.
type Summary struct {
	TotalSeconds int           `json:"totalSeconds"`
	Legitimate   int           `json:"legitimate"`
	LevelTimes   map[int]int   `json:"levelTimes"`
	Rank         progress.Rank `json:"rank"`
}

// Summary returns the run result; ErrNotFinished until every level is done.
func (p *Play) Summary() (Summary, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.progress.Finished() {
		return Summary{}, ErrNotFinished
	}
	return Summary{
		TotalSeconds: p.progress.TotalSeconds(),
		Legitimate:   p.progress.LegitimateCount(),
		LevelTimes:   p.progress.LevelTimes(),
		Rank:         p.progress.Rank(),
	}, nil
}

// startLocked replaces the session with a fresh one for the current level;
// p.mu must be held.
func (p *Play) startLocked() {
	if p.session != nil {
		p.session.Stop()
		p.session = nil
	}
	lv, ok := p.progress.Current()
	if !ok {
		return
	}

	opts := game.Options{Hints: p.opts.Hints, Ticks: p.opts.Ticks}
	if p.opts.Hints {
		if p.opts.Seeder != nil {
			opts.RNG = p.opts.Seeder(lv.ID)
		} else {
			opts.RNG = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
		}
	}
	if cb := p.opts.OnEvent; cb != nil {
		idx := p.progress.Index()
		opts.OnEvent = func(ev game.Event) { cb(Event{Event: ev, Level: idx}) }
	}
	p.session = game.Start(lv, opts)
}
