package server

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/jrsteele09/go-contest-portal/callback"
	"github.com/jrsteele09/go-contest-portal/internal/config"
	"github.com/jrsteele09/go-contest-portal/services"
	"github.com/jrsteele09/go-contest-portal/session"
	"github.com/jrsteele09/go-contest-portal/theme"
	"github.com/rs/zerolog/log"
)

type Server struct {
	env      string // Environment (e.g., "DEV", "PROD")
	mux      *http.ServeMux
	routes   []string
	config   config.Config
	sessions *session.Manager
	themes   *theme.Manager
	callback *callback.Router
	api      *services.Client
	pages    *pages
	assets   map[string]*asset
}

// New wires the handlers. The managers are created by the caller at process
// start and shared by every request.
func New(config config.Config, sessions *session.Manager, themes *theme.Manager, api *services.Client) (*Server, error) {
	pages, err := parsePages()
	if err != nil {
		return nil, fmt.Errorf("[Server New] failed to parse templates: %w", err)
	}
	assets, err := loadAssets()
	if err != nil {
		return nil, fmt.Errorf("[Server New] failed to load static assets: %w", err)
	}

	s := &Server{
		env:      config.GetEnv(),
		mux:      http.NewServeMux(),
		config:   config,
		sessions: sessions,
		themes:   themes,
		api:      api,
		pages:    pages,
		assets:   assets,
		callback: callback.NewRouter(callback.Destinations{
			Login:      RouteLogin,
			Dashboard:  RouteDashboard,
			SelectRole: RouteSelectRole,
		}),
	}

	s.initRoutes()
	s.logRoutes()

	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) RegisterRouteHandler(pattern string, handler http.Handler) {
	s.routes = append(s.routes, pattern)
	s.mux.Handle(pattern, handler)
}

func (s *Server) logRoutes() {
	if s.env != config.EnvDev {
		return // Skip logging in non-development environments
	}
	for _, route := range s.routes {
		parts := strings.SplitN(route, " ", 2)

		if len(parts) > 1 {
			logRoute(parts[0], parts[1])
		} else {
			logRoute("", parts[0])
		}
	}
}

func logRoute(method, path string) {
	log.Info().Msgf("[%-19s] %s", colouredMethod(method), path)
}

func colouredMethod(method string) string {
	paddedMethod := fmt.Sprintf(" %-7s", method)
	if color, ok := methodColors[method]; ok {
		return color + paddedMethod + ResetColor
	}
	return Gray + paddedMethod + ResetColor
}

// Helper function to determine the scheme (http/https)
func getScheme(r *http.Request) string {
	if r.TLS != nil {
		return "https"
	}
	if scheme := r.Header.Get("X-Forwarded-Proto"); scheme != "" {
		return scheme
	}
	return "http"
}
