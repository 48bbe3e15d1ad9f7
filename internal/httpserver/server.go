// internal/httpserver/server.go
//
// HTTP server wiring for the crossword backend.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs,
//     request logging).
//   - Public endpoints: "/", "/health", "/levels", GET /leaderboard.
//   - Game endpoints (require a play token): /game/*, POST /leaderboard.
//   - Live events: GET /game/events (SSE, mounted outside the timeout).
//
// Notes:
//   - CORS is origin-aware and credentials-enabled (so cookies work).
//   - Every play's session events are pushed to its SSE clients.

package httpserver

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/crossword/internal/config"
	"github.com/robalobadob/crossword/internal/game"
	"github.com/robalobadob/crossword/internal/leaderboard"
	"github.com/robalobadob/crossword/internal/levels"
	"github.com/robalobadob/crossword/internal/store"
)

// Server bundles router, play registry, leaderboard and event fan-out.
type Server struct {
	r      *chi.Mux
	cfg    config.Config
	levels []levels.Level
	plays  store.Store
	board  leaderboard.Store
	events *Broadcaster
	now    func() time.Time
	ticks  game.TickSource // session clock; wall clock when nil
}

// New constructs a Server, installs middleware, and registers routes.
func New(cfg config.Config, lv []levels.Level, plays store.Store, board leaderboard.Store) *Server {
	s := &Server{
		r:      chi.NewRouter(),
		cfg:    cfg,
		levels: lv,
		plays:  plays,
		board:  board,
		events: NewBroadcaster(),
		now:    time.Now,
	}

	// --- middleware ---
	s.r.Use(chimw.RequestID)        // add X-Request-ID
	s.r.Use(chimw.RealIP)           // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(requestLogger)          // one log line per request
	s.r.Use(chimw.Recoverer)        // recover from panics
	s.r.Use(jsonContentType)        // default JSON responses
	s.r.Use(cors(cfg.ClientOrigin)) // credentials-friendly CORS

	// Streaming stays outside the handler timeout.
	s.r.With(s.requireGame()).Get("/game/events", s.handleEvents)

	s.r.Group(func(r chi.Router) {
		r.Use(chimw.Timeout(10 * time.Second)) // bound handler time

		// --- diagnostics ---
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"service":"crossword-go","endpoints":["/health","/levels","POST /game/new","/game/*","/leaderboard"]}`))
		})
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"ok":true}`))
		})
		r.Get("/levels", s.handleLevels)

		r.Post("/game/new", s.handleNewGame)
		r.Group(func(r chi.Router) {
			r.Use(s.requireGame())
			r.Get("/game/state", s.handleState)
			r.Post("/game/level", s.handleSelectLevel)
			r.Post("/game/cell", s.handleCell)
			r.Post("/game/giveup", s.handleGiveUp)
			r.Post("/game/continue", s.handleContinue)
			r.Post("/game/restart", s.handleRestart)
		})

		s.mountLeaderboard(r)
	})

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"not_found","path":"`+r.URL.Path+`"}`, http.StatusNotFound)
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// cors enables credentialed CORS for a single origin.
func cors(origin string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// requestLogger writes one zerolog line per request with status and latency.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		defer func() {
			log.Debug().
				Str("reqId", chimw.GetReqID(r.Context())).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", ww.Status()).
				Int("bytes", ww.BytesWritten()).
				Dur("took", time.Since(start)).
				Msg("request")
		}()
		next.ServeHTTP(ww, r)
	})
}

// ------------------------------ LEVELS -------------------------------------

// levelInfo is the public face of a level: no answers.
type levelInfo struct {
	Index      int    `json:"index"`
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Title      string `json:"title,omitempty"`
	Difficulty string `json:"difficulty"`
	Rows       int    `json:"rows"`
	Cols       int    `json:"cols"`
	Clues      int    `json:"clues"`
}

// handleLevels lists the level catalogue.
func (s *Server) handleLevels(w http.ResponseWriter, r *http.Request) {
	out := make([]levelInfo, 0, len(s.levels))
	for i, lv := range s.levels {
		out = append(out, levelInfo{
			Index:      i,
			ID:         lv.ID,
			Name:       lv.Name,
			Title:      lv.Title,
			Difficulty: lv.Difficulty,
			Rows:       lv.Rows,
			Cols:       lv.Cols,
			Clues:      len(lv.Words),
		})
	}
	_ = json.NewEncoder(w).Encode(out)
}
