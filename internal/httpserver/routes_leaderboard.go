// internal/httpserver/routes_leaderboard.go
//
// Leaderboard endpoints.
//   - POST /leaderboard → submit the caller's finished run under a nickname
//   - GET  /leaderboard → fastest runs (?limit=N, default 20, max 100)
//
// Only finished runs can be submitted; the times come from the play, never
// from the client.

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/crossword/internal/game"
	"github.com/robalobadob/crossword/internal/leaderboard"
	"github.com/robalobadob/crossword/internal/play"
)

const maxLeaderboardLimit = 100

// mountLeaderboard registers the /leaderboard routes.
func (s *Server) mountLeaderboard(r chi.Router) {
	r.Get("/leaderboard", s.handleLeaderboard)
	r.With(s.requireGame()).Post("/leaderboard", s.handleSubmit)
}

// submitReq is the request payload for POST /leaderboard.
type submitReq struct {
	Nickname string `json:"nickname"`
}

// entryRes is one leaderboard row with its formatted time.
type entryRes struct {
	leaderboard.Entry
	Time string `json:"time"`
}

func toEntryRes(e leaderboard.Entry) entryRes {
	return entryRes{Entry: e, Time: game.FormatTime(e.TotalSeconds)}
}

// handleSubmit stores the caller's run.
func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	var req submitReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	p := playFrom(r)
	sum, err := p.Summary()
	if errors.Is(err, play.ErrNotFinished) {
		http.Error(w, `{"error":"not_finished"}`, http.StatusConflict)
		return
	}
	if err != nil {
		http.Error(w, `{"error":"internal"}`, http.StatusInternalServerError)
		return
	}

	e, err := s.board.Submit(r.Context(), leaderboard.Submission{
		Nickname:     req.Nickname,
		TotalSeconds: sum.TotalSeconds,
		LevelTimes:   sum.LevelTimes,
	})
	if errors.Is(err, leaderboard.ErrEmptyNickname) {
		http.Error(w, `{"error":"nickname_required"}`, http.StatusBadRequest)
		return
	}
	if err != nil {
		log.Error().Err(err).Str("gameId", p.ID).Msg("submit leaderboard entry")
		http.Error(w, `{"error":"server_error"}`, http.StatusInternalServerError)
		return
	}
	log.Info().Str("gameId", p.ID).Str("nickname", e.Nickname).Int("total", e.TotalSeconds).Msg("leaderboard entry")

	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(toEntryRes(e))
}

// handleLeaderboard lists the fastest runs.
func (s *Server) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	limit := leaderboard.DefaultLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			http.Error(w, `{"error":"bad_limit"}`, http.StatusBadRequest)
			return
		}
		limit = min(n, maxLeaderboardLimit)
	}
	rows, err := s.board.List(r.Context(), limit)
	if err != nil {
		log.Error().Err(err).Msg("list leaderboard")
		http.Error(w, `{"error":"server_error"}`, http.StatusInternalServerError)
		return
	}
	out := make([]entryRes, 0, len(rows))
	for _, e := range rows {
		out = append(out, toEntryRes(e))
	}
	_ = json.NewEncoder(w).Encode(out)
}
