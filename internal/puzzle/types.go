// internal/puzzle/types.go
//
// Core type definitions for the puzzle engine.
// Defines:
//   - Direction: word orientation (across/down).
//   - Placement: one authored word with its clue and start cell.
//   - Hint: a pre-filled cell chosen by the hint generator.
//   - ClueRef: identifies a numbered word for progress display.

package puzzle

import (
	"strings"
	"unicode"
)

// Direction is the orientation of a placed word.
type Direction string

const (
	Across Direction = "across" // letters advance along columns
	Down   Direction = "down"   // letters advance along rows
)

// Placement is one word's fixed position on the board.
type Placement struct {
	Text      string    `yaml:"word" json:"-"`
	Clue      string    `yaml:"clue" json:"clue"`
	Number    int       `yaml:"number" json:"number"`
	Direction Direction `yaml:"direction" json:"direction"`
	Row       int       `yaml:"row" json:"row"`
	Col       int       `yaml:"col" json:"col"`
}

// Letters returns the upper-cased letters of the word.
func (p Placement) Letters() []rune {
	return []rune(strings.ToUpper(p.Text))
}

// Len is the word length in letters.
func (p Placement) Len() int { return len([]rune(p.Text)) }

// Position returns the grid coordinates of letter i.
func (p Placement) Position(i int) (row, col int) {
	if p.Direction == Down {
		return p.Row + i, p.Col
	}
	return p.Row, p.Col + i
}

// Ref returns the clue reference of the placement.
func (p Placement) Ref() ClueRef {
	return ClueRef{Number: p.Number, Direction: p.Direction}
}

// Hint is a cell the engine pre-fills and locks.
type Hint struct {
	Row    int  `json:"row"`
	Col    int  `json:"col"`
	Letter rune `json:"letter"`
}

// ClueRef identifies a numbered word, e.g. 2 down.
type ClueRef struct {
	Number    int       `json:"number"`
	Direction Direction `json:"direction"`
}

// normalize upper-cases a single rune.
func normalize(r rune) rune { return unicode.ToUpper(r) }
