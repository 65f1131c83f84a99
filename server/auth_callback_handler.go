package server

import (
	"context"
	"net/http"

	"github.com/jrsteele09/go-contest-portal/callback"
	"github.com/jrsteele09/go-contest-portal/internal/metrics"
	"github.com/jrsteele09/go-contest-portal/session"
	"github.com/rs/zerolog/log"
)

// callbackSession is handed to the callback router. Nothing is opened or
// written until Login is called, so the failure path leaves storage untouched.
// A login always starts a fresh browser session ID and drops the previous record.
type callbackSession struct {
	s *Server
	w http.ResponseWriter
	r *http.Request
}

func (c *callbackSession) Login(ctx context.Context, identity session.Identity, token string) error {
	id := c.s.sessions.NewID()
	p, err := c.s.sessions.Open(ctx, id)
	if err != nil {
		return err
	}
	if err := p.Login(ctx, identity, token); err != nil {
		return err
	}

	if previous := sessionID(c.r); previous != "" {
		if err := c.s.sessions.Discard(ctx, previous); err != nil {
			log.Warn().Err(err).Msg("Failed to discard previous session")
		}
	}
	c.s.SetSessionCookie(c.w, id, c.r, c.s.cookieMaxAge(token))
	return nil
}

type callbackPage struct {
	PageData
	Target      string
	Phase       callback.Phase
	Placeholder string
}

// CallbackHandler completes the identity provider redirect: it logs the browser in
// when the credentials are present and navigates to the login page, the dashboard
// or role selection.
func (s *Server) CallbackHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, err := s.callback.Resolve(r.Context(), r.URL.RawQuery, &callbackSession{s: s, w: w, r: r})
		if err != nil {
			s.runtimeError(w, r, err)
			return
		}
		metrics.CallbackOutcomes.WithLabelValues(string(res.Outcome)).Inc()

		if res.Outcome == callback.OutcomeMissingCredentials {
			log.Debug().Str("phase", res.Phase.String()).Msg("Callback without credentials, sending to login")
		}

		if isHTMXRequest(r) {
			redirectSuccess(w, r, res.Target)
			return
		}

		w.Header().Set("Location", res.Target)
		s.render(w, http.StatusSeeOther, s.pages.callback, callbackPage{
			PageData:    s.pageData(r, res.Phase.Placeholder()),
			Target:      res.Target,
			Phase:       res.Phase,
			Placeholder: res.Phase.Placeholder(),
		})
	}
}
