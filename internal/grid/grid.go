// internal/grid/grid.go
//
// Board representation for a crossword level.
// Defines:
//   - Cell: solution letter, player input, hint lock.
//   - Grid: rectangular rows × cols board of cells.
//
// The model enforces no cross-cell rules; the puzzle package builds and
// checks grids, the game package mutates them.

package grid

import "strings"

// Cell is one board position.
//
// A zero Solution means the cell is blocked (not part of any word) and
// must never receive input. A zero Input means the player left it empty.
type Cell struct {
	Solution   rune // upper-case solution letter, 0 when blocked
	Input      rune // upper-case player letter, 0 when empty
	HintLocked bool // pre-filled by the engine, immutable for the session
}

// Blocked reports whether the cell is outside every word.
func (c Cell) Blocked() bool { return c.Solution == 0 }

// Grid is the full board. Cells is indexed [row][col].
type Grid struct {
	Rows  int
	Cols  int
	Cells [][]Cell
}

// New returns a rows × cols grid of blocked, empty, unlocked cells.
// Negative dimensions are treated as zero.
func New(rows, cols int) *Grid {
	rows, cols = max(rows, 0), max(cols, 0)
	cells := make([][]Cell, rows)
	for r := range cells {
		cells[r] = make([]Cell, cols)
	}
	return &Grid{Rows: rows, Cols: cols, Cells: cells}
}

// CellAt returns the cell at (row, col), or nil when out of range.
// Callers probe neighbours freely without bounds checks of their own.
func (g *Grid) CellAt(row, col int) *Cell {
	if g == nil || row < 0 || row >= g.Rows || col < 0 || col >= g.Cols {
		return nil
	}
	return &g.Cells[row][col]
}

// Clone returns a deep copy.
func (g *Grid) Clone() *Grid {
	cp := New(g.Rows, g.Cols)
	for r := range g.Cells {
		copy(cp.Cells[r], g.Cells[r])
	}
	return cp
}

// Equal compares two grids cell by cell.
func (g *Grid) Equal(o *Grid) bool {
	if g.Rows != o.Rows || g.Cols != o.Cols {
		return false
	}
	for r := range g.Cells {
		for c := range g.Cells[r] {
			if g.Cells[r][c] != o.Cells[r][c] {
				return false
			}
		}
	}
	return true
}

// Row renders row r for plain-text displays: '#' for blocked cells,
// '.' for empty ones, the input letter otherwise.
func (g *Grid) Row(r int) string {
	if r < 0 || r >= g.Rows {
		return ""
	}
	var b strings.Builder
	for _, cell := range g.Cells[r] {
		switch {
		case cell.Blocked():
			b.WriteByte('#')
		case cell.Input == 0:
			b.WriteByte('.')
		default:
			b.WriteRune(cell.Input)
		}
	}
	return b.String()
}
