// internal/cli/render.go
//
// Plain-text rendering of a Play snapshot.
// Responsibilities:
//   - Print the level header with its timer, and the board with row and
//     column indexes.
//   - List clues, marking the ones already satisfied.
//   - Report a solved level after an edit.
//
// Blocked cells render as blanks, hint cells in lower case.

package cli

import (
	"fmt"
	"strings"

	"github.com/robalobadob/crossword/internal/play"
)

// show prints the level header, board and timer.
func (sh *Shell) show() {
	v := sh.play.Snapshot()
	if v.Finished {
		sh.printf("Run finished in %s. Type 'rank', 'submit NICK' or 'restart'.\n", v.TotalTime)
		return
	}
	sh.printf("%s  [%s]\n", v.LevelName, v.Time)
	if v.Note != "" {
		sh.printf("%s\n", v.Note)
	}
	sh.printf("%s", board(v))
	switch {
	case v.GaveUp:
		sh.printf("(solution revealed)\n")
	case v.Complete:
		sh.printf("(solved)\n")
	}
}

// board renders the grid with column and row indices. Blocked cells are
// blank, empty cells are '.', hint cells are lower case.
func board(v play.View) string {
	var b strings.Builder
	b.WriteString("    ")
	for c := 0; c < v.Cols; c++ {
		fmt.Fprintf(&b, "%-2d", c%100)
	}
	b.WriteByte('\n')
	for r, row := range v.Cells {
		fmt.Fprintf(&b, "%2d  ", r%100)
		for _, cell := range row {
			switch {
			case cell.Blocked:
				b.WriteString("  ")
			case cell.Letter == "":
				b.WriteString(". ")
			case cell.Hint:
				b.WriteString(strings.ToLower(cell.Letter) + " ")
			default:
				b.WriteString(cell.Letter + " ")
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// clues lists every clue with its start cell, length and state.
func (sh *Shell) clues(v play.View) {
	for _, c := range v.Clues {
		mark := " "
		if c.Solved {
			mark = "✓"
		}
		sh.printf("%s %2d %-6s (%d,%d) [%d] %s\n", mark, c.Number, c.Direction, c.Row, c.Col, c.Length, c.Clue)
	}
}

// afterEdit reports a completed level.
func (sh *Shell) afterEdit() {
	v := sh.play.Snapshot()
	sh.printf("%s", board(v))
	if v.Complete && !v.GaveUp {
		sh.printf("Solved in %s! Type 'next' to continue.\n", v.Time)
	}
}
