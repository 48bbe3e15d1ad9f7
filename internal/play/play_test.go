package play

import (
	"errors"
	"math/rand/v2"
	"sync"
	"testing"
	"time"

	"github.com/robalobadob/crossword/internal/levels"
	"github.com/robalobadob/crossword/internal/progress"
	"github.com/robalobadob/crossword/internal/puzzle"
)

var twoLevels = []levels.Level{
	{ID: 1, Name: "Level 1", Difficulty: "easy", Rows: 1, Cols: 4, Words: []puzzle.Placement{
		{Text: "JAVI", Clue: "Name", Number: 1, Direction: puzzle.Across},
	}},
	{ID: 2, Name: "Level 2", Difficulty: "easy", Rows: 3, Cols: 3, Words: []puzzle.Placement{
		{Text: "SOL", Clue: "Star", Number: 1, Direction: puzzle.Across},
		{Text: "SAL", Clue: "Seasoning", Number: 1, Direction: puzzle.Down},
	}},
}

// stillTicks never fires.
func stillTicks(time.Duration) (<-chan time.Time, func()) { return nil, func() {} }

func newPlay(t *testing.T, opts Options) *Play {
	t.Helper()
	if opts.Ticks == nil {
		opts.Ticks = stillTicks
	}
	p, err := New("", twoLevels, opts)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	t.Cleanup(p.Close)
	return p
}

func spell(p *Play, row, col int, across bool, text string) {
	for i, r := range text {
		if across {
			p.Edit(row, col+i, string(r))
		} else {
			p.Edit(row+i, col, string(r))
		}
	}
}

func TestNewRequiresLevels(t *testing.T) {
	if _, err := New("x", nil, Options{}); !errors.Is(err, ErrNoLevels) {
		t.Fatalf("expected ErrNoLevels, got %v", err)
	}
}

func TestNewAssignsID(t *testing.T) {
	p := newPlay(t, Options{})
	if p.ID == "" {
		t.Fatal("expected generated id")
	}
	v := p.Snapshot()
	if v.LevelIndex != 0 || v.Rows != 1 || v.Cols != 4 || v.Complete {
		t.Fatalf("unexpected initial view: %+v", v)
	}
	if !v.Levels[0].Unlocked || v.Levels[1].Unlocked {
		t.Fatalf("only the first level should be open: %+v", v.Levels)
	}
}

func TestSnapshotHidesSolution(t *testing.T) {
	p := newPlay(t, Options{})
	for _, row := range p.Snapshot().Cells {
		for _, c := range row {
			if c.Letter != "" {
				t.Fatalf("fresh board leaked a letter: %+v", c)
			}
		}
	}
}

func TestContinueRequiresCompletion(t *testing.T) {
	p := newPlay(t, Options{})
	if err := p.Continue(); !errors.Is(err, ErrNotComplete) {
		t.Fatalf("expected ErrNotComplete, got %v", err)
	}
	if err := p.StartLevel(1); !errors.Is(err, progress.ErrLevelLocked) {
		t.Fatalf("expected ErrLevelLocked, got %v", err)
	}
}

func TestFullRun(t *testing.T) {
	p := newPlay(t, Options{})

	spell(p, 0, 0, true, "javi")
	v := p.Snapshot()
	if !v.Complete || v.GaveUp {
		t.Fatalf("expected legit completion, got %+v", v)
	}
	if len(v.Clues) != 1 || !v.Clues[0].Solved {
		t.Fatalf("expected solved clue, got %+v", v.Clues)
	}
	if err := p.Continue(); err != nil {
		t.Fatalf("continue: %v", err)
	}

	v = p.Snapshot()
	if v.LevelIndex != 1 || v.Complete || !v.Levels[1].Unlocked || !v.Levels[0].Done {
		t.Fatalf("expected level 2 in play, got %+v", v)
	}

	p.GiveUp()
	if v = p.Snapshot(); !v.GaveUp || v.Cells[0][0].Letter != "S" {
		t.Fatalf("expected revealed board, got %+v", v.Cells)
	}
	if _, err := p.Summary(); !errors.Is(err, ErrNotFinished) {
		t.Fatalf("expected ErrNotFinished, got %v", err)
	}
	if err := p.Continue(); err != nil {
		t.Fatalf("continue: %v", err)
	}

	v = p.Snapshot()
	if !v.Finished || v.Rank != progress.RankRealHuman || v.RankTitle != "REAL HUMAN" {
		t.Fatalf("expected finished realHuman run, got %+v", v)
	}
	if v.Cells != nil {
		t.Fatal("finished run should have no board")
	}
	sum, err := p.Summary()
	if err != nil {
		t.Fatal(err)
	}
	if sum.Legitimate != 1 || len(sum.LevelTimes) != 2 {
		t.Fatalf("unexpected summary: %+v", sum)
	}

	if err := p.Continue(); !errors.Is(err, progress.ErrFinished) {
		t.Fatalf("expected ErrFinished, got %v", err)
	}
	if p.Edit(0, 0, "X") {
		t.Fatal("edits after the run must be ignored")
	}
}

func TestRestartClearsRun(t *testing.T) {
	p := newPlay(t, Options{})
	p.GiveUp()
	_ = p.Continue()
	p.Restart()

	v := p.Snapshot()
	if v.LevelIndex != 0 || len(v.Outcomes) != 0 || v.Finished || v.Complete {
		t.Fatalf("expected clean run, got %+v", v)
	}
	if v.Levels[1].Unlocked {
		t.Fatal("level 2 should be locked again")
	}
}

func TestReplayUnlockedLevel(t *testing.T) {
	p := newPlay(t, Options{})
	p.GiveUp()
	_ = p.Continue()
	if err := p.StartLevel(0); err != nil {
		t.Fatalf("replay: %v", err)
	}
	if v := p.Snapshot(); v.LevelIndex != 0 || v.Complete {
		t.Fatalf("expected fresh level 1, got %+v", v)
	}
}

func TestSeededHintsAreReproducible(t *testing.T) {
	seeder := func(levelID int) *rand.Rand { return rand.New(rand.NewPCG(7, uint64(levelID))) }
	a := newPlay(t, Options{Hints: true, Seeder: seeder})
	b := newPlay(t, Options{Hints: true, Seeder: seeder})

	va, vb := a.Snapshot(), b.Snapshot()
	hints := 0
	for r := range va.Cells {
		for c := range va.Cells[r] {
			if va.Cells[r][c] != vb.Cells[r][c] {
				t.Fatalf("cell %d,%d differs: %+v vs %+v", r, c, va.Cells[r][c], vb.Cells[r][c])
			}
			if va.Cells[r][c].Hint {
				hints++
			}
		}
	}
	if hints == 0 {
		t.Fatal("expected at least one hint cell")
	}
}

func TestElapsedIsRecorded(t *testing.T) {
	ch := make(chan time.Time)
	ticks := func(time.Duration) (<-chan time.Time, func()) { return ch, func() {} }
	p := newPlay(t, Options{Ticks: ticks})

	for range 3 {
		select {
		case ch <- time.Now():
		case <-time.After(time.Second):
			t.Fatal("clock goroutine not receiving")
		}
	}
	deadline := time.Now().Add(time.Second)
	for p.Snapshot().Elapsed < 3 {
		if time.Now().After(deadline) {
			t.Fatalf("expected 3s elapsed, got %d", p.Snapshot().Elapsed)
		}
		time.Sleep(time.Millisecond)
	}

	spell(p, 0, 0, true, "JAVI")
	if err := p.Continue(); err != nil {
		t.Fatal(err)
	}
	out := p.Snapshot().Outcomes
	if len(out) != 1 || out[0].Seconds != 3 || out[0].GaveUp {
		t.Fatalf("unexpected outcome: %+v", out)
	}
}

func TestEventsCarryLevelIndex(t *testing.T) {
	var (
		mu  sync.Mutex
		got []Event
	)
	p := newPlay(t, Options{OnEvent: func(ev Event) {
		mu.Lock()
		got = append(got, ev)
		mu.Unlock()
	}})
	p.Edit(0, 0, "J")
	p.GiveUp()
	_ = p.Continue()
	p.Edit(0, 0, "S")

	mu.Lock()
	defer mu.Unlock()
	if len(got) != 3 {
		t.Fatalf("expected 3 events, got %+v", got)
	}
	if got[0].Level != 0 || got[2].Level != 1 {
		t.Fatalf("unexpected level tags: %+v", got)
	}
}
