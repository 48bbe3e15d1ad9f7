// internal/puzzle/engine.go
//
// Stateless puzzle operations over a grid.
// Responsibilities:
//   - Build a grid from authored placements.
//   - Check single words and the whole puzzle against player input.
//   - Reveal the solution into a copy of the grid.
//
// Notes:
//   - Placements are trusted authoring data. Crossing words are assumed to
//     agree on shared letters; a later placement overwrites an earlier one.
//   - Letters falling outside the grid are dropped when building and are
//     ignored when checking, so a revealed grid is always complete.

package puzzle

import "github.com/robalobadob/crossword/internal/grid"

// BuildGrid returns a rows × cols grid whose solution letters are the
// projection of every placement. Uncovered cells stay blocked.
func BuildGrid(rows, cols int, placements []Placement) *grid.Grid {
	g := grid.New(rows, cols)
	for _, p := range placements {
		for i, letter := range p.Letters() {
			if cell := g.CellAt(p.Position(i)); cell != nil {
				cell.Solution = letter
			}
		}
	}
	return g
}

// IsWordSatisfied reports whether the player's input spells the word.
// An empty cell never satisfies a letter.
func IsWordSatisfied(g *grid.Grid, p Placement) bool {
	for i, letter := range p.Letters() {
		cell := g.CellAt(p.Position(i))
		if cell == nil {
			continue
		}
		if cell.Input == 0 || normalize(cell.Input) != letter {
			return false
		}
	}
	return true
}

// IsPuzzleComplete is the sole completion predicate: every placement is
// satisfied. Cells outside all words are never checked.
func IsPuzzleComplete(g *grid.Grid, placements []Placement) bool {
	for _, p := range placements {
		if !IsWordSatisfied(g, p) {
			return false
		}
	}
	return true
}

// SatisfiedClues lists the placements currently spelled correctly, in
// placement order.
func SatisfiedClues(g *grid.Grid, placements []Placement) []ClueRef {
	out := make([]ClueRef, 0, len(placements))
	for _, p := range placements {
		if IsWordSatisfied(g, p) {
			out = append(out, p.Ref())
		}
	}
	return out
}

// RevealSolution returns a copy of g where every placement cell holds its
// solution letter. Existing input is overwritten; g is left untouched.
func RevealSolution(g *grid.Grid, placements []Placement) *grid.Grid {
	out := g.Clone()
	for _, p := range placements {
		for i := range p.Letters() {
			if cell := out.CellAt(p.Position(i)); cell != nil && !cell.Blocked() {
				cell.Input = cell.Solution
			}
		}
	}
	return out
}
