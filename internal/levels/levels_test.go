package levels

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/robalobadob/crossword/internal/puzzle"
)

func TestBundledLevelsLoad(t *testing.T) {
	if err := Load(); err != nil {
		t.Fatalf("load: %v", err)
	}
	all := All()
	if len(all) != 3 {
		t.Fatalf("expected 3 levels, got %d", len(all))
	}
	first, ok := Get(0)
	if !ok || first.ID != 1 || first.Rows != 12 || first.Cols != 6 {
		t.Fatalf("unexpected first level: %+v", first)
	}
	if first.Words[0].Text != "JAVI" || first.Words[0].Direction != puzzle.Across {
		t.Fatalf("unexpected first word: %+v", first.Words[0])
	}
	if first.Tier() != puzzle.TierEasy {
		t.Fatalf("expected easy tier, got %v", first.Tier())
	}
	if _, ok := Get(3); ok {
		t.Fatal("expected no level at index 3")
	}
}

func TestBundledLevelsAreConsistent(t *testing.T) {
	for _, l := range All() {
		if problems := puzzle.Check(l.Rows, l.Cols, l.Words); len(problems) != 0 {
			t.Fatalf("level %d: %v", l.ID, problems)
		}
	}
}

func TestParseRejectsBadInput(t *testing.T) {
	cases := map[string]string{
		"empty":    `[]`,
		"no size":  `[{id: 1, words: [{word: AB, number: 1, direction: across}]}]`,
		"no words": `[{id: 1, rows: 2, cols: 2}]`,
		"not yaml": `{{{`,
	}
	for name, in := range cases {
		if _, err := Parse([]byte(in)); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}

func TestParseDefaultsIDs(t *testing.T) {
	got, err := Parse([]byte(`
- rows: 1
  cols: 2
  words:
    - {word: ab, clue: x, number: 1, direction: across, row: 0, col: 0}
`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got[0].ID != 1 {
		t.Fatalf("expected ID 1, got %d", got[0].ID)
	}
}

func TestReadLevelsFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "levels.yaml")
	body := "- id: 7\n  name: Tiny\n  difficulty: Hard\n  rows: 1\n  cols: 3\n  words:\n    - {word: SOL, clue: Star, number: 1, direction: across, row: 0, col: 0}\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := readLevels(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(got) != 1 || got[0].ID != 7 || got[0].Words[0].Text != "SOL" {
		t.Fatalf("unexpected levels: %+v", got)
	}

	embedded, err := readLevels("")
	if err != nil || len(embedded) != 3 {
		t.Fatalf("expected embedded levels, got %d, %v", len(embedded), err)
	}
	if _, err := readLevels(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for a missing file")
	}
}
