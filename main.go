// main.go
//
// Entry point for the crossword HTTP server.
// Loads configuration (.env + environment), the level list and the
// leaderboard store, then serves the API until the process is stopped.
// Plays older than the token TTL are swept once a minute.

package main

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/crossword/internal/config"
	"github.com/robalobadob/crossword/internal/httpserver"
	"github.com/robalobadob/crossword/internal/leaderboard"
	"github.com/robalobadob/crossword/internal/levels"
	"github.com/robalobadob/crossword/internal/store"
)

func main() {
	cfg := config.Load()
	zerolog.SetGlobalLevel(cfg.LogLevel)

	if err := levels.LoadFile(cfg.LevelsFile); err != nil {
		log.Fatal().Err(err).Str("file", cfg.LevelsFile).Msg("failed to load levels")
	}
	lv := levels.All()

	board, err := leaderboard.Open(cfg.LeaderboardDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open leaderboard")
	}
	defer board.Close()

	plays := store.NewMemoryStore()
	go store.RunSweeper(context.Background(), plays, cfg.TokenTTL, time.Minute)

	srv := httpserver.New(cfg, lv, plays, board)
	log.Info().
		Str("port", cfg.Port).
		Int("levels", len(lv)).
		Bool("hints", cfg.HintsEnabled).
		Msg("starting crossword server")
	if err := srv.Start(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
