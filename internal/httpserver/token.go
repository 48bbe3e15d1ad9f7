// internal/httpserver/token.go
//
// Play tokens.
// A play is bound to its client by an HS256 JWT carrying the play id. The
// token travels in an HttpOnly cookie (browsers) or an Authorization
// bearer header (CLI clients, tests). There are no accounts: whoever holds
// the token owns the play.

package httpserver

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/robalobadob/crossword/internal/play"
	"github.com/robalobadob/crossword/internal/store"
)

// ctxPlayKey is the context key for the request's *play.Play.
type ctxPlayKey struct{}

var errBadToken = errors.New("invalid token")

// signToken creates a play token expiring after the configured TTL.
func (s *Server) signToken(playID string) (string, time.Time, error) {
	now := time.Now()
	exp := now.Add(s.cfg.TokenTTL)
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"pid": playID,
		"exp": exp.Unix(),
		"iat": now.Unix(),
	})
	ss, err := t.SignedString([]byte(s.cfg.JWTSecret))
	return ss, exp, err
}

// parseToken validates a play token and returns its play id.
func (s *Server) parseToken(tok string) (string, error) {
	claims := jwt.MapClaims{}
	t, err := jwt.ParseWithClaims(tok, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.JWTSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !t.Valid {
		return "", errBadToken
	}
	id, _ := claims["pid"].(string)
	if id == "" {
		return "", errBadToken
	}
	return id, nil
}

// setPlayCookie writes the token cookie with appropriate security attributes.
func (s *Server) setPlayCookie(w http.ResponseWriter, token string, exp time.Time) {
	sameSite := http.SameSiteLaxMode
	if s.cfg.CookieSecure {
		sameSite = http.SameSiteNoneMode // required for third-party contexts when Secure
	}
	http.SetCookie(w, &http.Cookie{
		Name:     s.cfg.CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.cfg.CookieSecure,
		SameSite: sameSite,
		Expires:  exp,
	})
}

// bearerOrCookie extracts a token from the Authorization header or cookie.
func (s *Server) bearerOrCookie(r *http.Request) string {
	if a := r.Header.Get("Authorization"); strings.HasPrefix(strings.ToLower(a), "bearer ") {
		return strings.TrimSpace(a[7:])
	}
	if c, err := r.Cookie(s.cfg.CookieName); err == nil {
		return c.Value
	}
	return ""
}

// currentPlayID returns the play id of a valid token, or "".
func (s *Server) currentPlayID(r *http.Request) string {
	tok := s.bearerOrCookie(r)
	if tok == "" {
		return ""
	}
	id, err := s.parseToken(tok)
	if err != nil {
		return ""
	}
	return id
}

// requireGame enforces a valid play token and injects the play into the
// request context.
func (s *Server) requireGame() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tok := s.bearerOrCookie(r)
			if tok == "" {
				http.Error(w, `{"error":"Unauthorized"}`, http.StatusUnauthorized)
				return
			}
			id, err := s.parseToken(tok)
			if err != nil {
				http.Error(w, `{"error":"Invalid token"}`, http.StatusUnauthorized)
				return
			}
			p, err := s.plays.Get(r.Context(), id)
			if errors.Is(err, store.ErrNotFound) {
				http.Error(w, `{"error":"no_game"}`, http.StatusNotFound)
				return
			}
			if err != nil {
				http.Error(w, `{"error":"store_failed"}`, http.StatusInternalServerError)
				return
			}
			ctx := context.WithValue(r.Context(), ctxPlayKey{}, p)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// playFrom returns the play injected by requireGame.
func playFrom(r *http.Request) *play.Play {
	p, _ := r.Context().Value(ctxPlayKey{}).(*play.Play)
	return p
}
