package server

import (
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/jrsteele09/go-contest-portal/internal/metrics"
	"github.com/jrsteele09/go-contest-portal/theme"
	"github.com/rs/zerolog/log"
)

// currentTheme returns the browser's preference, or the default for a browser that has none yet
func (s *Server) currentTheme(r *http.Request) theme.Variant {
	id := cookieValue(r, browserCookieName)
	if id == "" {
		return theme.Default
	}
	prefs, err := s.themes.Open(r.Context(), id)
	if err != nil {
		log.Err(err).Msg("Failed to load theme preference")
		return theme.Default
	}
	return prefs.DarkVariant()
}

// browserTheme opens the browser's preference for writing, issuing the browser cookie on first use
func (s *Server) browserTheme(w http.ResponseWriter, r *http.Request) (*theme.Store, error) {
	id := cookieValue(r, browserCookieName)
	if id == "" {
		id = s.themes.NewID()
		s.SetBrowserCookie(w, id, r)
	}
	return s.themes.Open(r.Context(), id)
}

func (s *Server) ThemeGetHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, theme.State{DarkVariant: s.currentTheme(r)})
	}
}

func (s *Server) ThemeSetHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			DarkVariant string `json:"darkVariant"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSONError(w, "invalid_request", "body must be {\"darkVariant\": ...}", http.StatusBadRequest)
			return
		}
		v, err := theme.Parse(req.DarkVariant)
		if err != nil {
			writeJSONError(w, "invalid_variant", err.Error(), http.StatusBadRequest)
			return
		}
		prefs, err := s.browserTheme(w, r)
		if err == nil {
			err = prefs.SetDarkVariant(r.Context(), v)
		}
		if err != nil {
			log.Err(err).Msg("Failed to save theme preference")
			writeJSONError(w, "server_error", "theme preference could not be saved", http.StatusInternalServerError)
			return
		}
		metrics.ThemeChanges.WithLabelValues(string(v)).Inc()
		writeJSON(w, http.StatusOK, theme.State{DarkVariant: v})
	}
}

func (s *Server) ThemeToggleHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v, err := s.toggleTheme(w, r)
		if err != nil {
			log.Err(err).Msg("Failed to save theme preference")
			writeJSONError(w, "server_error", "theme preference could not be saved", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, theme.State{DarkVariant: v})
	}
}

// ThemeToggleFormHandler toggles from a plain form post and returns to the page it came from
func (s *Server) ThemeToggleFormHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, err := s.toggleTheme(w, r); err != nil {
			s.runtimeError(w, r, err)
			return
		}
		redirectSuccess(w, r, sameOriginReferer(r, RouteDashboard))
	}
}

func (s *Server) toggleTheme(w http.ResponseWriter, r *http.Request) (theme.Variant, error) {
	prefs, err := s.browserTheme(w, r)
	if err != nil {
		return "", err
	}
	v, err := prefs.ToggleDarkVariant(r.Context())
	if err != nil {
		return "", err
	}
	metrics.ThemeChanges.WithLabelValues(string(v)).Inc()
	return v, nil
}

// sameOriginReferer returns the path of the Referer when it points back at this host
func sameOriginReferer(r *http.Request, fallback string) string {
	ref, err := url.Parse(r.Referer())
	if err != nil || ref.Path == "" || (ref.Host != "" && ref.Host != r.Host) {
		return fallback
	}
	if ref.RawQuery != "" {
		return ref.Path + "?" + ref.RawQuery
	}
	return ref.Path
}
