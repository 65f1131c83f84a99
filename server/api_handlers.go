package server

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/jrsteele09/go-contest-portal/internal/errors"
	"github.com/jrsteele09/go-contest-portal/services"
	"github.com/rs/zerolog/log"
)

const (
	contentTypeHTML = "text/html; charset=utf-8"
	contentTypeJSON = "application/json"
)

type dataResponse struct {
	Data any `json:"data"`
}

type errorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Err(err).Msg("Failed to encode response")
	}
}

func writeJSONError(w http.ResponseWriter, code, description string, status int) {
	writeJSON(w, status, errorResponse{Error: code, ErrorDescription: description})
}

// proxy runs call with the session token and writes its result in a data envelope
func (s *Server) proxy(w http.ResponseWriter, r *http.Request, call func(ctx context.Context, token string) (any, error)) {
	token := sessionFromContext(r.Context()).Snapshot().Token
	result, err := call(r.Context(), token)
	if err != nil {
		writeBackendError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dataResponse{Data: result})
}

// writeBackendError maps service failures onto the response. Client errors from the
// backend keep their status so the browser can tell an expired token from a missing contest.
func writeBackendError(w http.ResponseWriter, r *http.Request, err error) {
	var chatErr *services.ChatError
	if errors.As(err, &chatErr) {
		writeJSONError(w, "chat_rejected", chatErr.Message, http.StatusUnprocessableEntity)
		return
	}

	var statusErr *services.StatusError
	if errors.As(err, &statusErr) {
		switch statusErr.StatusCode {
		case http.StatusUnauthorized, http.StatusForbidden, http.StatusNotFound:
			writeJSONError(w, "backend_error", http.StatusText(statusErr.StatusCode), statusErr.StatusCode)
			return
		}
	}

	log.Err(err).Str("path", r.URL.Path).Msg("Backend request failed")
	writeJSONError(w, "backend_unavailable", "the contest service could not complete the request", http.StatusBadGateway)
}

func (s *Server) AlumniHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.proxy(w, r, func(ctx context.Context, token string) (any, error) {
			return s.api.ListAlumni(ctx, token)
		})
	}
}

func (s *Server) ContestsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.proxy(w, r, func(ctx context.Context, token string) (any, error) {
			return s.api.ListContests(ctx, token)
		})
	}
}

func (s *Server) ContestHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		s.proxy(w, r, func(ctx context.Context, token string) (any, error) {
			return s.api.GetContest(ctx, token, id)
		})
	}
}

func (s *Server) ContestHistoryHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.proxy(w, r, func(ctx context.Context, token string) (any, error) {
			return s.api.ContestHistory(ctx, token)
		})
	}
}

func (s *Server) ExternalContestsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.proxy(w, r, func(ctx context.Context, token string) (any, error) {
			return s.api.ExternalContests(ctx, token)
		})
	}
}

func (s *Server) ChatHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Prompt string `json:"prompt"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Prompt) == "" {
			writeJSONError(w, "invalid_request", "prompt is required", http.StatusBadRequest)
			return
		}
		s.proxy(w, r, func(ctx context.Context, token string) (any, error) {
			return s.api.Chat(ctx, token, req.Prompt)
		})
	}
}
