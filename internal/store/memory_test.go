package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/robalobadob/crossword/internal/levels"
	"github.com/robalobadob/crossword/internal/play"
	"github.com/robalobadob/crossword/internal/puzzle"
)

var oneLevel = []levels.Level{{
	ID: 1, Name: "Level 1", Rows: 1, Cols: 3,
	Words: []puzzle.Placement{{Text: "SOL", Number: 1, Direction: puzzle.Across}},
}}

func newPlay(t *testing.T, id string) *play.Play {
	t.Helper()
	p, err := play.New(id, oneLevel, play.Options{
		Ticks: func(time.Duration) (<-chan time.Time, func()) { return nil, func() {} },
	})
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func TestSaveGetDelete(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()
	p := newPlay(t, "abc")

	if err := st.Save(ctx, p); err != nil {
		t.Fatal(err)
	}
	got, err := st.Get(ctx, "abc")
	if err != nil || got != p {
		t.Fatalf("expected stored play, got %v, %v", got, err)
	}
	if st.Len() != 1 {
		t.Fatalf("expected 1 play, got %d", st.Len())
	}

	if err := st.Delete(ctx, "abc"); err != nil {
		t.Fatal(err)
	}
	if _, err := st.Get(ctx, "abc"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := st.Delete(ctx, "abc"); err != nil {
		t.Fatalf("deleting twice should be harmless: %v", err)
	}
}

func TestSaveReplaces(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()
	first, second := newPlay(t, "same"), newPlay(t, "same")
	_ = st.Save(ctx, first)
	_ = st.Save(ctx, second)

	got, _ := st.Get(ctx, "same")
	if got != second || st.Len() != 1 {
		t.Fatal("expected the second play to replace the first")
	}
}

// stopTracker is a TickSource that records when its ticker is stopped.
func stopTracker(stopped chan<- struct{}) func(time.Duration) (<-chan time.Time, func()) {
	return func(time.Duration) (<-chan time.Time, func()) {
		return make(chan time.Time), func() { close(stopped) }
	}
}

func TestSweepRemovesExpiredPlays(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()

	stopped := make(chan struct{})
	old, err := play.New("old", oneLevel, play.Options{Ticks: stopTracker(stopped)})
	if err != nil {
		t.Fatal(err)
	}
	old.Created = time.Now().Add(-2 * time.Hour)
	fresh := newPlay(t, "fresh")
	_ = st.Save(ctx, old)
	_ = st.Save(ctx, fresh)

	if n := st.Sweep(ctx, time.Now().Add(-time.Hour)); n != 1 {
		t.Fatalf("expected 1 play swept, got %d", n)
	}
	if _, err := st.Get(ctx, "old"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected expired play to be gone, got %v", err)
	}
	if _, err := st.Get(ctx, "fresh"); err != nil {
		t.Fatalf("fresh play should survive: %v", err)
	}
	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Fatal("expired play's clock was not stopped")
	}
}

func TestRunSweeperStopsWithContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	st := NewMemoryStore()

	stopped := make(chan struct{})
	p, err := play.New("abandoned", oneLevel, play.Options{Ticks: stopTracker(stopped)})
	if err != nil {
		t.Fatal(err)
	}
	_ = st.Save(ctx, p)

	done := make(chan struct{})
	go func() {
		RunSweeper(ctx, st, time.Nanosecond, 5*time.Millisecond)
		close(done)
	}()

	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Fatal("sweeper did not expire the play")
	}
	if st.Len() != 0 {
		t.Fatalf("expected empty store, got %d", st.Len())
	}
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("sweeper did not return after cancel")
	}
}
