package server

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type runtimeErrorPage struct {
	PageData
	Reference string
	RetryURL  string
}

// NotFoundHandler serves every path no other route matched
func (s *Server) NotFoundHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.renderNotFound(w, r)
	}
}

func (s *Server) renderNotFound(w http.ResponseWriter, r *http.Request) {
	s.render(w, http.StatusNotFound, s.pages.notFound, s.pageData(r, "Page Not Found"))
}

// renderRuntimeError shows the error page; "Try again" reloads the URL that failed
func (s *Server) renderRuntimeError(w http.ResponseWriter, r *http.Request, reference string) {
	retry := r.URL.RequestURI()
	if r.Method != http.MethodGet {
		retry = RouteDashboard
	}
	s.render(w, http.StatusInternalServerError, s.pages.runtimeError, runtimeErrorPage{
		PageData:  s.pageData(r, "Runtime Error"),
		Reference: reference,
		RetryURL:  retry,
	})
}

// runtimeError logs err under a fresh reference and shows the error page
func (s *Server) runtimeError(w http.ResponseWriter, r *http.Request, err error) {
	reference := uuid.NewString()
	log.Err(err).
		Str("reference", reference).
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Msg("Request failed")
	s.renderRuntimeError(w, r, reference)
}
