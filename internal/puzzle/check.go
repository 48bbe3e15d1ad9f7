// internal/puzzle/check.go
//
// Authoring-time lint for level content.
// The engine never calls this while building or playing a level; it is run
// when levels are loaded (problems are logged) and by content tests.

package puzzle

import (
	"fmt"
	"unicode"
)

// Problem describes one content defect in a level.
type Problem struct {
	Number    int
	Direction Direction
	Message   string
}

func (p Problem) String() string {
	return fmt.Sprintf("%d %s: %s", p.Number, p.Direction, p.Message)
}

// Check reports placements that fall outside the grid, crossing words that
// disagree on a shared letter, empty or non-alphabetic words, unknown
// directions, and duplicate clue numbers within a direction.
func Check(rows, cols int, placements []Placement) []Problem {
	var out []Problem
	add := func(p Placement, format string, args ...any) {
		out = append(out, Problem{Number: p.Number, Direction: p.Direction, Message: fmt.Sprintf(format, args...)})
	}

	type coord struct{ row, col int }
	type owner struct {
		letter rune
		ref    ClueRef
	}
	letters := make(map[coord]owner)
	refs := make(map[ClueRef]struct{})

	for _, p := range placements {
		if p.Direction != Across && p.Direction != Down {
			add(p, "unknown direction %q", string(p.Direction))
		}
		if p.Number <= 0 {
			add(p, "clue number must be positive")
		}
		if _, dup := refs[p.Ref()]; dup {
			add(p, "duplicate clue number")
		}
		refs[p.Ref()] = struct{}{}

		if p.Len() == 0 {
			add(p, "empty word")
			continue
		}
		for i, letter := range p.Letters() {
			if !unicode.IsLetter(letter) {
				add(p, "non-letter %q at index %d", letter, i)
			}
			row, col := p.Position(i)
			if row < 0 || row >= rows || col < 0 || col >= cols {
				add(p, "letter %d at (%d,%d) is outside the %dx%d grid", i, row, col, rows, cols)
				continue
			}
			key := coord{row, col}
			if prev, ok := letters[key]; ok && prev.letter != letter {
				add(p, "letter %q at (%d,%d) conflicts with %q from %d %s",
					letter, row, col, prev.letter, prev.ref.Number, prev.ref.Direction)
				continue
			}
			letters[key] = owner{letter: letter, ref: p.Ref()}
		}
	}
	return out
}
