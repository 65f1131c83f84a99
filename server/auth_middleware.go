package server

import (
	"context"
	"net/http"

	"github.com/jrsteele09/go-contest-portal/internal/errors"
	"github.com/jrsteele09/go-contest-portal/session"
	"github.com/rs/zerolog/log"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

// ContextKeySession stores the authenticated *session.Persisted
const ContextKeySession ContextKey = "session"

// sessionFromContext returns the session injected by RequireSession or RequireAPISession
func sessionFromContext(ctx context.Context) *session.Persisted {
	p, _ := ctx.Value(ContextKeySession).(*session.Persisted)
	return p
}

// authenticatedSession opens the browser session and reports whether it is logged in
func (s *Server) authenticatedSession(r *http.Request) (*session.Persisted, bool, error) {
	p, err := s.openSession(r.Context(), r)
	if errors.Is(err, errors.ErrSessionNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return p, p.Snapshot().Authenticated(), nil
}

// RequireSession is middleware for HTML routes; unauthenticated browsers go to the login page
func (s *Server) RequireSession(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok, err := s.authenticatedSession(r)
		if err != nil {
			s.runtimeError(w, r, err)
			return
		}
		if !ok {
			redirectSuccess(w, r, RouteLogin)
			return
		}
		next(w, r.WithContext(context.WithValue(r.Context(), ContextKeySession, p)))
	}
}

// RequireAPISession is middleware for JSON routes; unauthenticated requests get 401
func (s *Server) RequireAPISession(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok, err := s.authenticatedSession(r)
		if err != nil {
			log.Err(err).Str("path", r.URL.Path).Msg("Failed to open session")
			writeJSONError(w, "server_error", "session unavailable", http.StatusInternalServerError)
			return
		}
		if !ok {
			writeJSONError(w, "unauthorized", "login required", http.StatusUnauthorized)
			return
		}
		next(w, r.WithContext(context.WithValue(r.Context(), ContextKeySession, p)))
	}
}
