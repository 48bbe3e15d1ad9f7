// internal/play/view.go
//
// Read-only snapshots of a Play for the shells. Solutions never appear in
// a view; a revealed board shows them as input letters.

package play

import (
	"github.com/robalobadob/crossword/internal/game"
	"github.com/robalobadob/crossword/internal/grid"
	"github.com/robalobadob/crossword/internal/progress"
	"github.com/robalobadob/crossword/internal/puzzle"
)

// CellView is one board cell as shown to the player.
type CellView struct {
	Blocked bool   `json:"blocked,omitempty"`
	Letter  string `json:"letter,omitempty"`
	Hint    bool   `json:"hint,omitempty"`
}

// ClueView is one clue with its current state.
type ClueView struct {
	Number    int              `json:"number"`
	Direction puzzle.Direction `json:"direction"`
	Clue      string           `json:"clue"`
	Row       int              `json:"row"`
	Col       int              `json:"col"`
	Length    int              `json:"length"`
	Solved    bool             `json:"solved"`
}

// LevelStatus is one entry of the level picker.
type LevelStatus struct {
	Index    int    `json:"index"`
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Title    string `json:"title,omitempty"`
	Unlocked bool   `json:"unlocked"`
	Done     bool   `json:"done"`
}

// View is the full state of a Play at one instant.
type View struct {
	ID         string             `json:"id"`
	LevelIndex int                `json:"levelIndex"`
	LevelName  string             `json:"levelName,omitempty"`
	Note       string             `json:"note,omitempty"`
	Rows       int                `json:"rows"`
	Cols       int                `json:"cols"`
	Cells      [][]CellView       `json:"cells,omitempty"`
	Clues      []ClueView         `json:"clues,omitempty"`
	Elapsed    int                `json:"elapsed"`
	Time       string             `json:"time"`
	Complete   bool               `json:"complete"`
	GaveUp     bool               `json:"gaveUp"`
	Finished   bool               `json:"finished"`
	Levels     []LevelStatus      `json:"levels"`
	Outcomes   []progress.Outcome `json:"outcomes"`
	TotalTime  string             `json:"totalTime"`
	Rank       progress.Rank      `json:"rank,omitempty"`
	RankTitle  string             `json:"rankTitle,omitempty"`
	RankText   string             `json:"rankMessage,omitempty"`
}

// Snapshot captures the current state.
func (p *Play) Snapshot() View {
	p.mu.Lock()
	defer p.mu.Unlock()

	v := View{
		ID:         p.ID,
		LevelIndex: p.progress.Index(),
		Finished:   p.progress.Finished(),
		Outcomes:   p.progress.Outcomes(),
		TotalTime:  game.FormatTime(p.progress.TotalSeconds()),
		Time:       game.FormatTime(0),
	}
	for i, lv := range p.progress.Levels() {
		v.Levels = append(v.Levels, LevelStatus{
			Index:    i,
			ID:       lv.ID,
			Name:     lv.Name,
			Title:    lv.Title,
			Unlocked: p.progress.Unlocked(i),
			Done:     p.progress.Done(lv.ID),
		})
	}
	if v.Finished {
		r := p.progress.Rank()
		v.Rank, v.RankTitle, v.RankText = r, r.Title(), r.Message()
	}

	s := p.session
	if s == nil {
		return v
	}
	lv := s.Level()
	g := s.Grid()
	v.LevelName = lv.Name
	v.Note = lv.Note
	v.Rows, v.Cols = g.Rows, g.Cols
	v.Cells = cellViews(g)
	v.Elapsed = s.Elapsed()
	v.Time = game.FormatTime(v.Elapsed)
	v.Complete = s.Complete()
	v.GaveUp = s.GaveUp()

	solved := make(map[puzzle.ClueRef]bool)
	for _, ref := range puzzle.SatisfiedClues(g, lv.Words) {
		solved[ref] = true
	}
	for _, w := range lv.Words {
		v.Clues = append(v.Clues, ClueView{
			Number:    w.Number,
			Direction: w.Direction,
			Clue:      w.Clue,
			Row:       w.Row,
			Col:       w.Col,
			Length:    w.Len(),
			Solved:    solved[w.Ref()],
		})
	}
	return v
}

func cellViews(g *grid.Grid) [][]CellView {
	out := make([][]CellView, g.Rows)
	for r := range g.Cells {
		out[r] = make([]CellView, g.Cols)
		for c, cell := range g.Cells[r] {
			cv := CellView{Blocked: cell.Blocked(), Hint: cell.HintLocked}
			if cell.Input != 0 {
				cv.Letter = string(cell.Input)
			}
			out[r][c] = cv
		}
	}
	return out
}
