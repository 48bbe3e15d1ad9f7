// internal/game/engine.go
//
// Session controller for one crossword level.
// Responsibilities:
//   - Build the level's grid (with optional hint cells) and start the clock.
//   - Apply cell edits and re-check completion in the same step.
//   - Reveal the solution on give up.
//
// State transitions:
//   - playing → complete, when an edit makes every word correct.
//   - playing → complete+gaveUp, on GiveUp.
//   Completion is a latch: afterwards edits are ignored and the clock is
//   stopped.
//
// Invalid edits (blocked cell, hint cell, after completion, non-letters)
// are silent no-ops; the shells are expected to filter them first.

package game

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/robalobadob/crossword/internal/grid"
	"github.com/robalobadob/crossword/internal/levels"
	"github.com/robalobadob/crossword/internal/puzzle"
)

// Start builds a session for level and starts its clock.
func Start(level levels.Level, opts Options) *Session {
	g := puzzle.BuildGrid(level.Rows, level.Cols, level.Words)
	if opts.Hints && opts.RNG != nil {
		puzzle.ApplyHints(g, puzzle.GenerateHints(level.Rows, level.Cols, level.Words, level.Tier(), opts.RNG))
	}

	s := &Session{
		level:   level,
		grid:    g,
		elapsed: max(opts.Elapsed, 0),
		done:    make(chan struct{}),
		onEvent: opts.OnEvent,
	}
	// Hints can, in theory, cover every word.
	if puzzle.IsPuzzleComplete(g, level.Words) {
		s.complete = true
		s.stopped = true
		s.stopOnce.Do(func() { close(s.done) })
		return s
	}

	ticks := opts.Ticks
	if ticks == nil {
		ticks = RealTicks
	}
	ch, stop := ticks(TickPeriod)
	s.stopTick = stop
	go s.runClock(ch)
	return s
}

// EditCell sets the cell at (row, col) to letter, or clears it when letter
// is empty. Only the last rune of letter is used. Reports whether the grid
// changed.
func (s *Session) EditCell(row, col int, letter string) bool {
	s.mu.Lock()
	if s.complete {
		s.mu.Unlock()
		return false
	}
	cell := s.grid.CellAt(row, col)
	if cell == nil || cell.Blocked() || cell.HintLocked {
		s.mu.Unlock()
		return false
	}
	in, ok := normalizeInput(letter)
	if !ok {
		s.mu.Unlock()
		return false
	}
	cell.Input = in

	kind := EventEdit
	if puzzle.IsPuzzleComplete(s.grid, s.level.Words) {
		s.complete = true
		s.stopLocked()
		kind = EventComplete
	}
	ev := s.eventLocked(kind)
	s.mu.Unlock()

	s.emit(ev)
	return true
}

// GiveUp reveals the solution and ends the session. Calling it again has
// no further effect.
func (s *Session) GiveUp() {
	s.mu.Lock()
	if s.gaveUp {
		s.mu.Unlock()
		return
	}
	s.grid = puzzle.RevealSolution(s.grid, s.level.Words)
	s.gaveUp = true
	s.complete = true
	s.stopLocked()
	ev := s.eventLocked(EventComplete)
	s.mu.Unlock()

	s.emit(ev)
}

// Level returns the level being played.
func (s *Session) Level() levels.Level { return s.level }

// Grid returns a copy of the current board.
func (s *Session) Grid() *grid.Grid {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.grid.Clone()
}

// Elapsed returns the seconds counted so far.
func (s *Session) Elapsed() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.elapsed
}

// Complete reports whether the session has ended.
func (s *Session) Complete() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.complete
}

// GaveUp reports whether the solution was revealed.
func (s *Session) GaveUp() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gaveUp
}

// Satisfied lists the words currently spelled correctly.
func (s *Session) Satisfied() []puzzle.ClueRef {
	s.mu.Lock()
	defer s.mu.Unlock()
	return puzzle.SatisfiedClues(s.grid, s.level.Words)
}

// normalizeInput maps raw key input to a cell value. Empty input clears
// the cell; otherwise the last rune must be a letter.
func normalizeInput(raw string) (rune, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, true
	}
	r, _ := utf8.DecodeLastRuneInString(raw)
	if !unicode.IsLetter(r) {
		return 0, false
	}
	return unicode.ToUpper(r), true
}

// eventLocked snapshots the counters; s.mu must be held.
func (s *Session) eventLocked(kind EventKind) Event {
	return Event{
		Kind:     kind,
		Elapsed:  s.elapsed,
		Time:     FormatTime(s.elapsed),
		Complete: s.complete,
		GaveUp:   s.gaveUp,
	}
}

func (s *Session) emit(ev Event) {
	if s.onEvent != nil {
		s.onEvent(ev)
	}
}
