// internal/httpserver/routes_game.go
//
// Game endpoints. Each call applies one transition to the caller's play
// and answers with the fresh snapshot.
//   - POST /game/new       → start a run ("normal" or "daily" hints)
//   - GET  /game/state     → current snapshot
//   - POST /game/level     → jump to an unlocked level
//   - POST /game/cell      → write or clear one cell
//   - POST /game/giveup    → reveal the current level
//   - POST /game/continue  → record the level and move on
//   - POST /game/restart   → clear the run
//   - GET  /game/events    → SSE stream of tick/edit/complete events

package httpserver

import (
	"encoding/json"
	"errors"
	"math/rand/v2"
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/crossword/internal/daily"
	"github.com/robalobadob/crossword/internal/play"
	"github.com/robalobadob/crossword/internal/progress"
)

const (
	modeNormal = "normal"
	modeDaily  = "daily"
)

// playEvent is pushed to SSE clients after a level transition.
type playEvent struct {
	Kind  string `json:"kind"`
	Level int    `json:"level"`
}

// newGameReq/Res payloads for POST /game/new.
type newGameReq struct {
	Mode string `json:"mode"` // "normal" (default) | "daily"
}
type newGameRes struct {
	GameID string    `json:"gameId"`
	Token  string    `json:"token"`
	Date   string    `json:"date,omitempty"`
	State  play.View `json:"state"`
}

// handleNewGame creates a play, registers it, and hands out its token.
// A play already bound to the caller is discarded.
func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req newGameReq
	_ = json.NewDecoder(r.Body).Decode(&req)
	if req.Mode == "" {
		req.Mode = modeNormal
	}
	if req.Mode != modeNormal && req.Mode != modeDaily {
		http.Error(w, `{"error":"bad_mode"}`, http.StatusBadRequest)
		return
	}

	id := uuid.NewString()
	opts := play.Options{
		Hints:   s.cfg.HintsEnabled,
		Ticks:   s.ticks,
		OnEvent: func(ev play.Event) {
			b, _ := json.Marshal(ev)
			s.events.Broadcast(id, string(b))
		},
	}
	var date string
	if req.Mode == modeDaily {
		now := s.now()
		date = daily.DateKey(now)
		opts.Seeder = func(levelID int) *rand.Rand {
			return daily.RNG(now, s.cfg.DailySalt, levelID)
		}
	}

	p, err := play.New(id, s.levels, opts)
	if err != nil {
		log.Error().Err(err).Msg("new play")
		http.Error(w, `{"error":"no_levels"}`, http.StatusServiceUnavailable)
		return
	}
	if err := s.plays.Save(r.Context(), p); err != nil {
		p.Close()
		log.Error().Err(err).Msg("save play")
		http.Error(w, `{"error":"save_failed"}`, http.StatusInternalServerError)
		return
	}
	if old := s.currentPlayID(r); old != "" && old != id {
		_ = s.plays.Delete(r.Context(), old)
	}

	tok, exp, err := s.signToken(id)
	if err != nil {
		http.Error(w, `{"error":"sign_failed"}`, http.StatusInternalServerError)
		return
	}
	s.setPlayCookie(w, tok, exp)
	log.Info().Str("gameId", id).Str("mode", req.Mode).Msg("play started")

	_ = json.NewEncoder(w).Encode(newGameRes{GameID: id, Token: tok, Date: date, State: p.Snapshot()})
}

// handleState returns the current snapshot.
func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	_ = json.NewEncoder(w).Encode(playFrom(r).Snapshot())
}

type levelReq struct {
	Index int `json:"index"`
}

// handleSelectLevel jumps to an unlocked level.
func (s *Server) handleSelectLevel(w http.ResponseWriter, r *http.Request) {
	var req levelReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	p := playFrom(r)
	if err := p.StartLevel(req.Index); err != nil {
		writeProgressErr(w, err)
		return
	}
	s.publish(p, "level")
	_ = json.NewEncoder(w).Encode(p.Snapshot())
}

// cellReq is the payload for POST /game/cell. An empty letter clears.
type cellReq struct {
	Row    int    `json:"row"`
	Col    int    `json:"col"`
	Letter string `json:"letter"`
}
type cellRes struct {
	Changed bool      `json:"changed"`
	State   play.View `json:"state"`
}

// handleCell applies one edit. Rejected edits are not errors; Changed
// reports whether the board moved.
func (s *Server) handleCell(w http.ResponseWriter, r *http.Request) {
	var req cellReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	p := playFrom(r)
	changed := p.Edit(req.Row, req.Col, req.Letter)
	_ = json.NewEncoder(w).Encode(cellRes{Changed: changed, State: p.Snapshot()})
}

// handleGiveUp reveals the current level.
func (s *Server) handleGiveUp(w http.ResponseWriter, r *http.Request) {
	p := playFrom(r)
	p.GiveUp()
	_ = json.NewEncoder(w).Encode(p.Snapshot())
}

// handleContinue records the finished level and moves on.
func (s *Server) handleContinue(w http.ResponseWriter, r *http.Request) {
	p := playFrom(r)
	if err := p.Continue(); err != nil {
		writeProgressErr(w, err)
		return
	}
	v := p.Snapshot()
	if v.Finished {
		log.Info().Str("gameId", p.ID).Str("rank", string(v.Rank)).Str("total", v.TotalTime).Msg("run finished")
		s.publish(p, "finished")
	} else {
		s.publish(p, "level")
	}
	_ = json.NewEncoder(w).Encode(v)
}

// handleRestart clears the run.
func (s *Server) handleRestart(w http.ResponseWriter, r *http.Request) {
	p := playFrom(r)
	p.Restart()
	s.publish(p, "level")
	_ = json.NewEncoder(w).Encode(p.Snapshot())
}

// handleEvents streams session events. The first message is the current
// snapshot so a client never has to poll after connecting.
func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	p := playFrom(r)
	s.events.ServeSSE(w, r, p.ID, func(c *client) {
		b, _ := json.Marshal(p.Snapshot())
		c.ch <- string(b)
	})
}

// publish tells SSE clients the play moved to another level state.
func (s *Server) publish(p *play.Play, kind string) {
	b, _ := json.Marshal(playEvent{Kind: kind, Level: p.Snapshot().LevelIndex})
	s.events.Broadcast(p.ID, string(b))
}

// writeProgressErr maps transition errors to HTTP statuses.
func writeProgressErr(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, progress.ErrNoSuchLevel):
		http.Error(w, `{"error":"no_such_level"}`, http.StatusNotFound)
	case errors.Is(err, progress.ErrLevelLocked):
		http.Error(w, `{"error":"level_locked"}`, http.StatusConflict)
	case errors.Is(err, progress.ErrFinished):
		http.Error(w, `{"error":"finished"}`, http.StatusConflict)
	case errors.Is(err, play.ErrNotComplete):
		http.Error(w, `{"error":"not_complete"}`, http.StatusConflict)
	default:
		log.Error().Err(err).Msg("play transition")
		http.Error(w, `{"error":"internal"}`, http.StatusInternalServerError)
	}
}
