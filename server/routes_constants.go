package server

// Route path constants
// All application routes are defined here to ensure consistency and prevent typos
const (
	// Entry points
	RouteIndex      = "/{$}"
	RouteLogin      = "/login"
	RouteDashboard  = "/dashboard"
	RouteSelectRole = "/select-role"

	// Auth Routes
	RouteAuthCallback = "/auth/callback"
	RouteCallback     = "/callback"
	RouteAuthLogout   = "/auth/logout"

	// Preference Routes
	RouteThemeToggle    = "/theme/toggle"
	RouteAPITheme       = "/api/theme"
	RouteAPIThemeToggle = "/api/theme/toggle"

	// Backend proxy routes
	RouteAPIAlumni           = "/api/alumni"
	RouteAPIContests         = "/api/contests"
	RouteAPIContest          = "/api/contests/{id}"
	RouteAPIContestHistory   = "/api/contests/history"
	RouteAPIContestsExternal = "/api/contests/external"
	RouteAPIChat             = "/api/chat"

	// Operations
	RouteMetrics = "/metrics"

	// Static Asset Routes (patterns)
	RouteStaticCSS = "/css/{file}"

	// Everything not matched above
	RouteNotFound = "/"
)
