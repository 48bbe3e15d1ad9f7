// internal/progress/progress.go
//
// Level progression for one player.
// Responsibilities:
//   - Track the current level index and the outcome of each played level.
//   - Gate level selection: a level opens once the previous one is done.
//   - Move to the next level, or to the finished state after the last one.
//   - Sum times and legitimate completions for the final rank.

package progress

import (
	"errors"

	"github.com/robalobadob/crossword/internal/levels"
)

var (
	ErrFinished    = errors.New("all levels finished")
	ErrNoSuchLevel = errors.New("no such level")
	ErrLevelLocked = errors.New("level locked")
)

// Outcome is the result of one level attempt.
type Outcome struct {
	LevelID int  `json:"levelId"`
	Seconds int  `json:"seconds"`
	GaveUp  bool `json:"gaveUp"`
}

// Progress is the progression state. Not safe for concurrent use; the
// owner applies transitions one at a time.
type Progress struct {
	levels   []levels.Level
	index    int
	outcomes []Outcome
	finished bool
}

// New starts a progression at the first level.
func New(lv []levels.Level) *Progress {
	return &Progress{levels: lv}
}

// Levels returns the levels in play order.
func (p *Progress) Levels() []levels.Level { return p.levels }

// Index returns the current level index.
func (p *Progress) Index() int { return p.index }

// Current returns the current level.
func (p *Progress) Current() (levels.Level, bool) {
	if p.index < 0 || p.index >= len(p.levels) {
		return levels.Level{}, false
	}
	return p.levels[p.index], true
}

// Finished reports whether the last level has been passed.
func (p *Progress) Finished() bool { return p.finished }

// Outcomes returns recorded outcomes in the order levels were first done.
func (p *Progress) Outcomes() []Outcome {
	return append([]Outcome(nil), p.outcomes...)
}

// Done reports whether an outcome exists for the level ID.
func (p *Progress) Done(levelID int) bool {
	for _, o := range p.outcomes {
		if o.LevelID == levelID {
			return true
		}
	}
	return false
}

// Unlocked reports whether level i may be selected.
func (p *Progress) Unlocked(i int) bool {
	if i < 0 || i >= len(p.levels) {
		return false
	}
	return i == 0 || p.Done(p.levels[i-1].ID)
}

// Select moves to level i.
func (p *Progress) Select(i int) error {
	if p.finished {
		return ErrFinished
	}
	if i < 0 || i >= len(p.levels) {
		return ErrNoSuchLevel
	}
	if !p.Unlocked(i) {
		return ErrLevelLocked
	}
	p.index = i
	return nil
}

// Advance records the outcome of the current level and moves on. A replayed
// level's earlier outcome is replaced. After the last level the progression
// is finished.
func (p *Progress) Advance(o Outcome) error {
	if p.finished {
		return ErrFinished
	}
	replaced := false
	for i := range p.outcomes {
		if p.outcomes[i].LevelID == o.LevelID {
			p.outcomes[i] = o
			replaced = true
			break
		}
	}
	if !replaced {
		p.outcomes = append(p.outcomes, o)
	}

	if p.index >= len(p.levels)-1 {
		p.finished = true
		return nil
	}
	p.index++
	return nil
}

// Restart clears all history and returns to the first level.
func (p *Progress) Restart() {
	p.index = 0
	p.outcomes = nil
	p.finished = false
}

// TotalSeconds sums the recorded level times.
func (p *Progress) TotalSeconds() int {
	total := 0
	for _, o := range p.outcomes {
		total += o.Seconds
	}
	return total
}

// LegitimateCount counts levels finished without giving up.
func (p *Progress) LegitimateCount() int {
	n := 0
	for _, o := range p.outcomes {
		if !o.GaveUp {
			n++
		}
	}
	return n
}

// LevelTimes maps level ID to recorded seconds.
func (p *Progress) LevelTimes() map[int]int {
	out := make(map[int]int, len(p.outcomes))
	for _, o := range p.outcomes {
		out[o.LevelID] = o.Seconds
	}
	return out
}

// Rank computes the final rank from the recorded outcomes.
func (p *Progress) Rank() Rank {
	return ComputeRank(p.TotalSeconds(), p.LegitimateCount(), len(p.levels))
}
