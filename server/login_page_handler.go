package server

import (
	"net/http"

	"github.com/jrsteele09/go-contest-portal/internal/errors"
)

type loginPage struct {
	PageData
	AuthStartURL string
	Error        string
}

// IndexHandler sends logged in browsers to the dashboard and everyone else to the login page
func (s *Server) IndexHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, ok, err := s.authenticatedSession(r)
		if err != nil {
			s.runtimeError(w, r, err)
			return
		}
		if ok {
			redirectSuccess(w, r, RouteDashboard)
			return
		}
		redirectSuccess(w, r, RouteLogin)
	}
}

func (s *Server) LoginPageHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.render(w, http.StatusOK, s.pages.login, loginPage{
			PageData:     s.pageData(r, "Login"),
			AuthStartURL: s.config.GetAuthStartURL(),
			Error:        r.URL.Query().Get("error"),
		})
	}
}

// LogoutHandler clears the session, expires the cookie and returns to the login page.
// Logging out without a session is not an error.
func (s *Server) LogoutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := s.openSession(r.Context(), r)
		switch {
		case errors.Is(err, errors.ErrSessionNotFound):
		case err != nil:
			s.runtimeError(w, r, err)
			return
		default:
			if err := p.Logout(r.Context()); err != nil {
				s.runtimeError(w, r, err)
				return
			}
		}
		s.ClearSessionCookie(w, r)
		redirectSuccess(w, r, RouteLogin)
	}
}
