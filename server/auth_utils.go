package server

import (
	"context"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jrsteele09/go-contest-portal/internal/errors"
	"github.com/jrsteele09/go-contest-portal/session"
)

const (
	// sessionCookieName is the cookie that identifies a browser's session
	sessionCookieName = "portal_session"
	// browserCookieName identifies the browser itself; preferences are keyed by it
	browserCookieName   = "portal_browser"
	browserCookieMaxAge = 365 * 24 * 60 * 60
	// expiredTokenMaxAge is the cookie lifetime for a token whose exp has passed or is about to
	expiredTokenMaxAge = 60
)

func (s *Server) SetSessionCookie(w http.ResponseWriter, sessionID string, r *http.Request, maxAge int) {
	setCookie(w, r, sessionCookieName, sessionID, maxAge)
}

func (s *Server) SetBrowserCookie(w http.ResponseWriter, browserID string, r *http.Request) {
	setCookie(w, r, browserCookieName, browserID, browserCookieMaxAge)
}

func setCookie(w http.ResponseWriter, r *http.Request, name, value string, maxAge int) {
	isSecure := getScheme(r) == "https"

	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   isSecure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   maxAge,
	})
}

func (s *Server) ClearSessionCookie(w http.ResponseWriter, r *http.Request) {
	s.SetSessionCookie(w, "", r, -1)
}

// sessionID returns the browser session ID from the cookie, or "" when there is none
func sessionID(r *http.Request) string {
	return cookieValue(r, sessionCookieName)
}

func cookieValue(r *http.Request, name string) string {
	cookie, err := r.Cookie(name)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// openSession returns the browser's persisted session, or ErrSessionNotFound
// when the browser has no session cookie.
func (s *Server) openSession(ctx context.Context, r *http.Request) (*session.Persisted, error) {
	id := sessionID(r)
	if id == "" {
		return nil, errors.ErrSessionNotFound
	}
	return s.sessions.Open(ctx, id)
}

// cookieMaxAge sizes the session cookie from the bearer token's exp claim when
// the token is a JWT; the cookie never outlives the token by more than a minute.
// The token is not verified here.
func (s *Server) cookieMaxAge(token string) int {
	fallback := int(s.config.GetSessionMaxAge().Seconds())

	var claims jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil || claims.ExpiresAt == nil {
		return fallback
	}
	remaining := int(time.Until(claims.ExpiresAt.Time).Seconds())
	if remaining < expiredTokenMaxAge {
		return expiredTokenMaxAge
	}
	return remaining
}

// redirectSuccess helper for htmx-aware success redirects
func redirectSuccess(w http.ResponseWriter, r *http.Request, path string) {
	if isHTMXRequest(r) {
		w.Header().Set("HX-Redirect", path)
		w.WriteHeader(http.StatusNoContent) // 204 - no content, just redirect instruction
		return
	}
	http.Redirect(w, r, path, http.StatusSeeOther)
}

// isHTMXRequest checks if the request was initiated by HTMX
func isHTMXRequest(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}
