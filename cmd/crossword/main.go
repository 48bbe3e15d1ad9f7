// cmd/crossword/main.go
//
// Terminal client: plays the level list in a line-oriented shell.
//
//	crossword [-hints] [-daily] [-leaderboard DSN]
//
// Logs go to stderr through zerolog's console writer so they never mix
// with the board on stdout.

package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/crossword/internal/cli"
	"github.com/robalobadob/crossword/internal/config"
	"github.com/robalobadob/crossword/internal/daily"
	"github.com/robalobadob/crossword/internal/leaderboard"
	"github.com/robalobadob/crossword/internal/levels"
	"github.com/robalobadob/crossword/internal/play"
)

func main() {
	cfg := config.Load()

	var (
		hints   bool
		useDay  bool
		dsn     string
		file    string
		verbose bool
	)
	flag.BoolVar(&hints, "hints", cfg.HintsEnabled, "pre-fill a few hint cells per level")
	flag.BoolVar(&useDay, "daily", false, "use today's shared hint cells")
	flag.StringVar(&dsn, "leaderboard", cfg.LeaderboardDSN, `leaderboard store: "memory" or a SQLite DSN`)
	flag.StringVar(&file, "levels", cfg.LevelsFile, "YAML level file; embedded levels when empty")
	flag.BoolVar(&verbose, "v", false, "debug logging")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if err := levels.LoadFile(file); err != nil {
		log.Fatal().Err(err).Str("file", file).Msg("failed to load levels")
	}
	board, err := leaderboard.Open(dsn)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open leaderboard")
	}
	defer board.Close()

	opts := play.Options{Hints: hints}
	if useDay {
		now := time.Now()
		opts.Seeder = func(levelID int) *rand.Rand {
			return daily.RNG(now, cfg.DailySalt, levelID)
		}
		fmt.Printf("Daily hints for %s\n", daily.DateKey(now))
	}

	sh, err := cli.New(os.Stdout, levels.All(), board, opts)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to start")
	}
	defer sh.Close()

	if err := sh.Run(context.Background(), os.Stdin); err != nil {
		log.Error().Err(err).Msg("input")
	}
}
