// internal/cli/shell.go
//
// Line-oriented terminal shell over a single Play.
// Responsibilities:
//   - Read one command per line, dispatch it, print the result.
//   - Render the board, clues and timer as plain text.
//   - Suggest the closest command for typos.
//
// The shell never prints asynchronously: clock ticks are only visible
// through "show", so output never interleaves with typing.

package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/robalobadob/crossword/internal/leaderboard"
	"github.com/robalobadob/crossword/internal/levels"
	"github.com/robalobadob/crossword/internal/play"
)

// errQuit ends Run without an error.
var errQuit = errors.New("quit")

// Shell is an interactive session.
type Shell struct {
	out   io.Writer
	play  *play.Play
	board leaderboard.Store
}

// New starts a run over lv. board may be nil to disable the leaderboard.
func New(out io.Writer, lv []levels.Level, board leaderboard.Store, opts play.Options) (*Shell, error) {
	p, err := play.New("", lv, opts)
	if err != nil {
		return nil, err
	}
	return &Shell{out: out, play: p, board: board}, nil
}

// Close stops the run's clock.
func (sh *Shell) Close() { sh.play.Close() }

// Run reads commands from in until "quit", EOF or ctx is done.
func (sh *Shell) Run(ctx context.Context, in io.Reader) error {
	sh.printf("Crossword. Type 'help' for commands.\n\n")
	sh.show()

	sc := bufio.NewScanner(in)
	for {
		sh.printf("> ")
		if !sc.Scan() {
			sh.printf("\n")
			return sc.Err()
		}
		if ctx.Err() != nil {
			return nil
		}
		err := sh.Exec(ctx, sc.Text())
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			sh.printf("error: %v\n", err)
		}
	}
}

// Exec runs one command line.
func (sh *Shell) Exec(ctx context.Context, line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	name, args := strings.ToLower(fields[0]), fields[1:]

	cmd, ok := lookup(name)
	if !ok {
		if s := suggest(name); s != "" {
			return fmt.Errorf("unknown command %q, did you mean %q?", name, s)
		}
		return fmt.Errorf("unknown command %q, type 'help'", name)
	}
	if len(args) < cmd.minArgs {
		return fmt.Errorf("usage: %s %s", cmd.name, cmd.usage)
	}
	return cmd.run(ctx, sh, args)
}

func (sh *Shell) printf(format string, a ...any) {
	fmt.Fprintf(sh.out, format, a...)
}
