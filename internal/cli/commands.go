// internal/cli/commands.go
//
// Command table for the terminal shell.
// Responsibilities:
//   - Declare every command with its aliases, usage and argument count.
//   - Resolve names and aliases, and suggest the nearest command name
//     within a length-scaled Levenshtein distance.
//   - Translate each command into Play transitions and print the result.
//
// Coordinates are 0-based; level numbers are 1-based.

package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/robalobadob/crossword/internal/game"
	"github.com/robalobadob/crossword/internal/leaderboard"
	"github.com/robalobadob/crossword/internal/play"
	"github.com/robalobadob/crossword/internal/puzzle"
)

type command struct {
	name    string
	aliases []string
	usage   string
	help    string
	minArgs int
	run     func(ctx context.Context, sh *Shell, args []string) error
}

// commands is filled in init; "help" ranges over it.
var commands []command

func init() {
	commands = []command{
		{name: "levels", help: "list levels and their state", run: cmdLevels},
		{name: "play", usage: "N", help: "switch to level N (1-based)", minArgs: 1, run: cmdPlay},
		{name: "put", aliases: []string{"p"}, usage: "ROW COL LETTER", help: "write a letter (0-based coordinates)", minArgs: 3, run: cmdPut},
		{name: "clear", usage: "ROW COL", help: "empty a cell", minArgs: 2, run: cmdClear},
		{name: "word", aliases: []string{"w"}, usage: "N across|down TEXT", help: "type TEXT along a clue", minArgs: 3, run: cmdWord},
		{name: "show", aliases: []string{"s"}, help: "print the board and timer", run: cmdShow},
		{name: "clues", aliases: []string{"c"}, help: "list clues", run: cmdClues},
		{name: "giveup", help: "reveal the solution", run: cmdGiveUp},
		{name: "next", aliases: []string{"n"}, help: "continue to the next level", run: cmdNext},
		{name: "restart", help: "start the run over", run: cmdRestart},
		{name: "rank", help: "show times and rank", run: cmdRank},
		{name: "submit", usage: "NICKNAME", help: "add a finished run to the leaderboard", minArgs: 1, run: cmdSubmit},
		{name: "leaderboard", aliases: []string{"lb"}, help: "show the fastest runs", run: cmdLeaderboard},
		{name: "help", aliases: []string{"h", "?"}, help: "this list", run: cmdHelp},
		{name: "quit", aliases: []string{"q", "exit"}, help: "leave", run: cmdQuit},
	}
}

func lookup(name string) (command, bool) {
	for _, c := range commands {
		if c.name == name {
			return c, true
		}
		for _, a := range c.aliases {
			if a == name {
				return c, true
			}
		}
	}
	return command{}, false
}

// suggest returns the closest command name within a length-scaled edit
// distance, or "".
func suggest(name string) string {
	best, bestDist := "", -1
	for _, c := range commands {
		d := levenshtein.ComputeDistance(name, c.name)
		if d > levenshteinLimit(len(c.name)) {
			continue
		}
		if bestDist < 0 || d < bestDist {
			best, bestDist = c.name, d
		}
	}
	return best
}

func levenshteinLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}

func atoi(s, what string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number, got %q", what, s)
	}
	return n, nil
}

// ---- commands ----

func cmdLevels(_ context.Context, sh *Shell, _ []string) error {
	v := sh.play.Snapshot()
	for _, l := range v.Levels {
		state := "locked"
		switch {
		case l.Done:
			state = "done"
		case l.Unlocked:
			state = "open"
		}
		cur := " "
		if l.Index == v.LevelIndex && !v.Finished {
			cur = "*"
		}
		sh.printf("%s %d. %-10s %-7s %s\n", cur, l.Index+1, l.Name, state, l.Title)
	}
	return nil
}

func cmdPlay(_ context.Context, sh *Shell, args []string) error {
	n, err := atoi(args[0], "level")
	if err != nil {
		return err
	}
	if err := sh.play.StartLevel(n - 1); err != nil {
		return err
	}
	sh.show()
	return nil
}

func cmdPut(_ context.Context, sh *Shell, args []string) error {
	row, err := atoi(args[0], "row")
	if err != nil {
		return err
	}
	col, err := atoi(args[1], "col")
	if err != nil {
		return err
	}
	if !sh.play.Edit(row, col, args[2]) {
		return errors.New("cell cannot be changed")
	}
	sh.afterEdit()
	return nil
}

func cmdClear(_ context.Context, sh *Shell, args []string) error {
	row, err := atoi(args[0], "row")
	if err != nil {
		return err
	}
	col, err := atoi(args[1], "col")
	if err != nil {
		return err
	}
	if !sh.play.Edit(row, col, "") {
		return errors.New("cell cannot be changed")
	}
	sh.afterEdit()
	return nil
}

// cmdWord types TEXT from the clue's first cell onward. Hint cells and
// letters past the end of the word are skipped.
func cmdWord(_ context.Context, sh *Shell, args []string) error {
	num, err := atoi(args[0], "clue number")
	if err != nil {
		return err
	}
	dir := puzzle.Direction(strings.ToLower(args[1]))
	if dir != puzzle.Across && dir != puzzle.Down {
		return fmt.Errorf("direction must be across or down, got %q", args[1])
	}
	v := sh.play.Snapshot()
	var clue *play.ClueView
	for i := range v.Clues {
		if v.Clues[i].Number == num && v.Clues[i].Direction == dir {
			clue = &v.Clues[i]
			break
		}
	}
	if clue == nil {
		return fmt.Errorf("no clue %d %s", num, dir)
	}

	text := []rune(strings.Join(args[2:], ""))
	p := puzzle.Placement{Direction: dir, Row: clue.Row, Col: clue.Col}
	for i := 0; i < len(text) && i < clue.Length; i++ {
		r, c := p.Position(i)
		sh.play.Edit(r, c, string(text[i]))
	}
	sh.afterEdit()
	return nil
}

func cmdShow(_ context.Context, sh *Shell, _ []string) error {
	sh.show()
	return nil
}

func cmdClues(_ context.Context, sh *Shell, _ []string) error {
	sh.clues(sh.play.Snapshot())
	return nil
}

func cmdGiveUp(_ context.Context, sh *Shell, _ []string) error {
	sh.play.GiveUp()
	sh.show()
	sh.printf("Solution revealed. Type 'next' to continue.\n")
	return nil
}

func cmdNext(ctx context.Context, sh *Shell, _ []string) error {
	if err := sh.play.Continue(); err != nil {
		if errors.Is(err, play.ErrNotComplete) {
			return errors.New("finish the level or 'giveup' first")
		}
		return err
	}
	if sh.play.Snapshot().Finished {
		return cmdRank(ctx, sh, nil)
	}
	sh.show()
	return nil
}

func cmdRestart(_ context.Context, sh *Shell, _ []string) error {
	sh.play.Restart()
	sh.show()
	return nil
}

func cmdRank(_ context.Context, sh *Shell, _ []string) error {
	v := sh.play.Snapshot()
	for _, o := range v.Outcomes {
		name := fmt.Sprintf("level %d", o.LevelID)
		for _, l := range v.Levels {
			if l.ID == o.LevelID {
				name = l.Name
			}
		}
		mark := ""
		if o.GaveUp {
			mark = " (gave up)"
		}
		sh.printf("  %-10s %s%s\n", name, game.FormatTime(o.Seconds), mark)
	}
	sh.printf("  %-10s %s\n", "total", v.TotalTime)
	if !v.Finished {
		sh.printf("Rank is decided after the last level.\n")
		return nil
	}
	sh.printf("\n%s\n%s\n", v.RankTitle, v.RankText)
	return nil
}

func cmdSubmit(ctx context.Context, sh *Shell, args []string) error {
	if sh.board == nil {
		return errors.New("leaderboard disabled")
	}
	sum, err := sh.play.Summary()
	if err != nil {
		return errors.New("finish every level before submitting")
	}
	e, err := sh.board.Submit(ctx, leaderboard.Submission{
		Nickname:     strings.Join(args, " "),
		TotalSeconds: sum.TotalSeconds,
		LevelTimes:   sum.LevelTimes,
	})
	if err != nil {
		return err
	}
	sh.printf("Saved %s with %s.\n", e.Nickname, game.FormatTime(e.TotalSeconds))
	return nil
}

func cmdLeaderboard(ctx context.Context, sh *Shell, _ []string) error {
	if sh.board == nil {
		return errors.New("leaderboard disabled")
	}
	rows, err := sh.board.List(ctx, leaderboard.DefaultLimit)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		sh.printf("No entries yet. Finish a run and 'submit' your nickname.\n")
		return nil
	}
	for i, e := range rows {
		sh.printf("%2d. %-16s %s\n", i+1, e.Nickname, game.FormatTime(e.TotalSeconds))
	}
	return nil
}

func cmdHelp(_ context.Context, sh *Shell, _ []string) error {
	for _, c := range commands {
		usage := c.name
		if c.usage != "" {
			usage += " " + c.usage
		}
		sh.printf("  %-26s %s\n", usage, c.help)
	}
	return nil
}

func cmdQuit(context.Context, *Shell, []string) error { return errQuit }
