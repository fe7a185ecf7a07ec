package server

import "github.com/prometheus/client_golang/prometheus/promhttp"

func (s *Server) initRoutes() {
	// Session relay. Method patterns give a 405 on a known path with the
	// wrong verb.
	s.RegisterRouteHandler("POST "+RouteLogin, ChainMiddleware(s.LoginHandler(), s.APIMiddleware()...))
	s.RegisterRouteHandler("POST "+RouteLogout, ChainMiddleware(s.LogoutHandler(), s.APIMiddleware()...))
	s.RegisterRouteHandler("GET "+RouteProtected, ChainMiddleware(s.ProtectedHandler(), s.APIMiddleware()...))
	s.RegisterRouteHandler("POST "+RouteRegister, ChainMiddleware(s.RegisterHandler(), s.APIMiddleware()...))

	// Browser preflights must reach CorsMiddleware rather than the mux's
	// own 405. The proxy subtree already accepts every method.
	for _, route := range []string{RouteLogin, RouteLogout, RouteProtected, RouteRegister} {
		s.RegisterRouteHandler("OPTIONS "+route, ChainMiddleware(s.PreflightHandler(), s.APIMiddleware()...))
	}

	// Transparent backend proxy, all methods.
	s.RegisterRouteHandler(RouteAPIProxy, ChainMiddleware(s.ProxyHandler(), s.APIMiddleware()...))

	// Operational endpoints
	s.RegisterRouteFunc("GET "+RouteHealthz, s.HealthzHandler())
	s.RegisterRouteHandler("GET "+RouteMetrics, promhttp.Handler())
}
