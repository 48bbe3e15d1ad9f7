package progress

import (
	"errors"
	"testing"

	"github.com/robalobadob/crossword/internal/levels"
)

func threeLevels() []levels.Level {
	return []levels.Level{{ID: 1}, {ID: 2}, {ID: 3}}
}

func TestComputeRank(t *testing.T) {
	cases := []struct {
		total, legit, count int
		want                Rank
	}{
		{25, 3, 3, RankSuperOG},
		{60, 3, 3, RankSuperOG},
		{61, 3, 3, RankOG},
		{120, 3, 3, RankOG},
		{200, 3, 3, RankRealHuman},
		{10, 2, 3, RankRealHuman},
		{10, 0, 3, RankNiceTry},
		{9999, 0, 3, RankNiceTry},
	}
	for _, tc := range cases {
		if got := ComputeRank(tc.total, tc.legit, tc.count); got != tc.want {
			t.Fatalf("ComputeRank(%d, %d, %d) = %s, want %s", tc.total, tc.legit, tc.count, got, tc.want)
		}
	}
	if RankNiceTry.Title() != "NICE TRY" || RankSuperOG.Title() != "SUPER OG" {
		t.Fatal("unexpected rank titles")
	}
}

func TestAdvanceThroughLevels(t *testing.T) {
	p := New(threeLevels())
	if lvl, ok := p.Current(); !ok || lvl.ID != 1 {
		t.Fatalf("expected level 1, got %+v", lvl)
	}

	if err := p.Advance(Outcome{LevelID: 1, Seconds: 10}); err != nil {
		t.Fatal(err)
	}
	if p.Index() != 1 || p.Finished() {
		t.Fatalf("expected index 1, got %d", p.Index())
	}
	_ = p.Advance(Outcome{LevelID: 2, Seconds: 20, GaveUp: true})
	_ = p.Advance(Outcome{LevelID: 3, Seconds: 30})

	if !p.Finished() {
		t.Fatal("expected finished after the last level")
	}
	if p.TotalSeconds() != 60 || p.LegitimateCount() != 2 {
		t.Fatalf("got total %d legit %d", p.TotalSeconds(), p.LegitimateCount())
	}
	if p.Rank() != RankRealHuman {
		t.Fatalf("expected RealHuman, got %s", p.Rank())
	}
	if err := p.Advance(Outcome{LevelID: 3}); !errors.Is(err, ErrFinished) {
		t.Fatalf("expected ErrFinished, got %v", err)
	}
	times := p.LevelTimes()
	if times[1] != 10 || times[2] != 20 || times[3] != 30 {
		t.Fatalf("unexpected level times %v", times)
	}
}

func TestSelectRespectsLocks(t *testing.T) {
	p := New(threeLevels())
	if err := p.Select(1); !errors.Is(err, ErrLevelLocked) {
		t.Fatalf("expected locked, got %v", err)
	}
	if err := p.Select(5); !errors.Is(err, ErrNoSuchLevel) {
		t.Fatalf("expected no such level, got %v", err)
	}
	_ = p.Advance(Outcome{LevelID: 1, Seconds: 5})
	if !p.Unlocked(1) || p.Unlocked(2) {
		t.Fatal("expected only level 2 to open")
	}
	if err := p.Select(0); err != nil {
		t.Fatalf("replaying level 1 should be allowed: %v", err)
	}
}

func TestReplayReplacesOutcome(t *testing.T) {
	p := New(threeLevels())
	_ = p.Advance(Outcome{LevelID: 1, Seconds: 50, GaveUp: true})
	_ = p.Select(0)
	_ = p.Advance(Outcome{LevelID: 1, Seconds: 20})

	if got := p.Outcomes(); len(got) != 1 || got[0].Seconds != 20 || got[0].GaveUp {
		t.Fatalf("expected a single replaced outcome, got %+v", got)
	}
	if p.Index() != 1 {
		t.Fatalf("expected to move on to level 2, got index %d", p.Index())
	}
}

func TestRestart(t *testing.T) {
	p := New(threeLevels())
	for id := 1; id <= 3; id++ {
		_ = p.Advance(Outcome{LevelID: id, Seconds: 5})
	}
	p.Restart()
	if p.Index() != 0 || p.Finished() || p.TotalSeconds() != 0 || len(p.Outcomes()) != 0 {
		t.Fatal("restart must clear all progression state")
	}
	if err := p.Select(1); !errors.Is(err, ErrLevelLocked) {
		t.Fatalf("expected locks to come back, got %v", err)
	}
}
