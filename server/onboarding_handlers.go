package server

import (
	"net/http"

	"github.com/jrsteele09/go-contest-portal/callback"
	"github.com/jrsteele09/go-contest-portal/internal/errors"
	"github.com/jrsteele09/go-contest-portal/session"
)

type selectRolePage struct {
	PageData
	Token  string
	UserID string
	Roles  []session.Role
	Error  string
}

type dashboardPage struct {
	PageData
	Identity session.Identity
}

func (s *Server) SelectRoleGetHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		s.renderSelectRole(w, r, http.StatusOK, q.Get(callback.ParamToken), q.Get(callback.ParamUserID), "")
	}
}

// SelectRolePostHandler stores the chosen role on the current session and moves on to the dashboard.
// The submitted userId must belong to the logged in user.
func (s *Server) SelectRolePostHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form", http.StatusBadRequest)
			return
		}
		token := r.PostFormValue(callback.ParamToken)
		userID := r.PostFormValue(callback.ParamUserID)

		p := sessionFromContext(r.Context())
		state := p.Snapshot()
		if userID != "" && userID != state.Identity.ID {
			s.renderSelectRole(w, r, http.StatusForbidden, token, userID, "This role selection belongs to a different user.")
			return
		}

		role := session.Role(r.PostFormValue("role"))
		if !role.Valid() {
			err := errors.Wrapf(errors.ErrInvalidRole, "[SelectRolePostHandler] %q", role)
			s.renderSelectRole(w, r, http.StatusBadRequest, token, userID, err.Error())
			return
		}

		identity := *state.Identity
		identity.Role = role
		if err := p.Login(r.Context(), identity, state.Token); err != nil {
			s.runtimeError(w, r, err)
			return
		}
		redirectSuccess(w, r, RouteDashboard)
	}
}

func (s *Server) renderSelectRole(w http.ResponseWriter, r *http.Request, status int, token, userID, message string) {
	s.render(w, status, s.pages.selectRole, selectRolePage{
		PageData: s.pageData(r, "Choose your role"),
		Token:    token,
		UserID:   userID,
		Roles:    session.Roles,
		Error:    message,
	})
}

func (s *Server) DashboardHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state := sessionFromContext(r.Context()).Snapshot()
		s.render(w, http.StatusOK, s.pages.dashboard, dashboardPage{
			PageData: s.pageData(r, "Dashboard"),
			Identity: *state.Identity,
		})
	}
}
