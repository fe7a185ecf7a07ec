package server

// Route path constants
// All application routes are defined here to ensure consistency and prevent typos
const (
	// Session relay routes
	RouteLogin     = "/login"
	RouteLogout    = "/logout"
	RouteProtected = "/protected"
	RouteRegister  = "/register"

	// Backend passthrough (everything under /api/ is relayed verbatim)
	RouteAPIProxy = "/api/"

	// Operational routes
	RouteMetrics = "/metrics"
	RouteHealthz = "/healthz"
)
