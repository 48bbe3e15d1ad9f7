// internal/game/clock.go
//
// Elapsed-time clock for a session.
// One goroutine per active session receives ticks and bumps the counter.
// The goroutine and its ticker are stopped as soon as the session
// completes or is torn down, so a discarded session never keeps counting.

package game

import (
	"fmt"
	"time"
)

// TickPeriod is the clock resolution.
const TickPeriod = time.Second

// TickSource returns a channel firing every period and a func that stops it.
type TickSource func(period time.Duration) (<-chan time.Time, func())

// RealTicks is the wall-clock TickSource.
func RealTicks(period time.Duration) (<-chan time.Time, func()) {
	t := time.NewTicker(period)
	return t.C, t.Stop
}

// runClock forwards ticks until the session stops.
func (s *Session) runClock(ticks <-chan time.Time) {
	for {
		select {
		case <-s.done:
			return
		case <-ticks:
			if !s.Tick() {
				return
			}
		}
	}
}

// Tick advances the counter by one second. Returns false once the session
// is complete or stopped, in which case nothing changes.
func (s *Session) Tick() bool {
	s.mu.Lock()
	if s.complete || s.stopped {
		s.mu.Unlock()
		return false
	}
	s.elapsed++
	ev := s.eventLocked(EventTick)
	s.mu.Unlock()

	s.emit(ev)
	return true
}

// Stop tears the clock down. The session keeps its state but no longer
// counts time. Safe to call more than once.
func (s *Session) Stop() {
	s.mu.Lock()
	s.stopLocked()
	s.mu.Unlock()
}

// stopLocked cancels the clock; s.mu must be held.
func (s *Session) stopLocked() {
	s.stopped = true
	s.stopOnce.Do(func() {
		close(s.done)
		if s.stopTick != nil {
			s.stopTick()
		}
	})
}

// FormatTime renders seconds as MM:SS. Minutes are not wrapped into hours.
func FormatTime(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
