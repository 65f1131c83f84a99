package server

import (
	"net/http"

	"github.com/jrsteele09/go-contest-portal/internal/metrics"
	"github.com/rs/zerolog/log"
)

func (s *Server) initRoutes() {
	s.RegisterRouteHandler("GET "+RouteIndex, ChainMiddleware(s.IndexHandler(), s.HTMLMiddleWare()...))

	// LOGIN
	s.RegisterRouteHandler("GET "+RouteLogin, ChainMiddleware(s.LoginPageHandler(), s.HTMLMiddleWare()...))
	s.RegisterRouteHandler("GET "+RouteAuthCallback, ChainMiddleware(s.CallbackHandler(), s.HTMLMiddleWare()...))
	s.RegisterRouteHandler("GET "+RouteCallback, ChainMiddleware(s.CallbackHandler(), s.HTMLMiddleWare()...))
	s.RegisterRouteHandler("GET "+RouteAuthLogout, ChainMiddleware(s.LogoutHandler(), s.HTMLMiddleWare()...))
	s.RegisterRouteHandler("POST "+RouteAuthLogout, ChainMiddleware(s.LogoutHandler(), s.HTMLMiddleWare()...))

	// ONBOARDING
	s.RegisterRouteHandler("GET "+RouteSelectRole, ChainMiddleware(s.SelectRoleGetHandler(), s.HTMLMiddleWare()...))
	s.RegisterRouteHandler("POST "+RouteSelectRole, ChainMiddleware(s.SelectRolePostHandler(), s.HTMLMiddleWare(s.RequireSession)...))

	// Pages requiring a session
	s.RegisterRouteHandler("GET "+RouteDashboard, ChainMiddleware(s.DashboardHandler(), s.HTMLMiddleWare(s.RequireSession)...))
	s.RegisterRouteHandler("POST "+RouteThemeToggle, ChainMiddleware(s.ThemeToggleFormHandler(), s.HTMLMiddleWare(s.SameOriginMiddleware)...))

	// Theme preference API (one preference per browser cookie)
	s.RegisterRouteHandler("GET "+RouteAPITheme, ChainMiddleware(s.ThemeGetHandler(), s.APIMiddleware()...))
	s.RegisterRouteHandler("PUT "+RouteAPITheme, ChainMiddleware(s.ThemeSetHandler(), s.APIMiddleware(s.SameOriginMiddleware)...))
	s.RegisterRouteHandler("POST "+RouteAPIThemeToggle, ChainMiddleware(s.ThemeToggleHandler(), s.APIMiddleware(s.SameOriginMiddleware)...))
	s.RegisterRouteHandler("OPTIONS /api/", ChainMiddleware(func(w http.ResponseWriter, r *http.Request) {}, s.APIMiddleware()...))

	// Backend proxies (require an authenticated session)
	s.RegisterRouteHandler("GET "+RouteAPIAlumni, ChainMiddleware(s.AlumniHandler(), s.APIMiddleware(s.RequireAPISession)...))
	s.RegisterRouteHandler("GET "+RouteAPIContests, ChainMiddleware(s.ContestsHandler(), s.APIMiddleware(s.RequireAPISession)...))
	s.RegisterRouteHandler("GET "+RouteAPIContestHistory, ChainMiddleware(s.ContestHistoryHandler(), s.APIMiddleware(s.RequireAPISession)...))
	s.RegisterRouteHandler("GET "+RouteAPIContestsExternal, ChainMiddleware(s.ExternalContestsHandler(), s.APIMiddleware(s.RequireAPISession)...))
	s.RegisterRouteHandler("GET "+RouteAPIContest, ChainMiddleware(s.ContestHandler(), s.APIMiddleware(s.RequireAPISession)...))
	s.RegisterRouteHandler("POST "+RouteAPIChat, ChainMiddleware(s.ChatHandler(), s.APIMiddleware(s.RequireAPISession)...))

	s.RegisterRouteHandler("GET "+RouteMetrics, metrics.Handler())

	s.RegisterRouteHandler("GET "+RouteStaticCSS, ChainMiddleware(s.serveFileHandler(), s.StaticMiddleware()...))
	s.RegisterRouteHandler(RouteNotFound, ChainMiddleware(s.NotFoundHandler(), s.HTMLMiddleWare()...))
}

func (s *Server) serveFileHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filePath := "css/" + r.PathValue("file")
		err := s.streamAsset(w, r, filePath)
		if err != nil {
			logError(r.Method, filePath, err.Error())
			s.renderNotFound(w, r)
			return
		}
	}
}

func logError(method, path, error string) {
	log.Error().Msgf("[%-19s] %s %s", colouredMethod(method), path, Red+error+ResetColor)
}
