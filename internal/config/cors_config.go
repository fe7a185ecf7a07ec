package config

import "strings"

const (
	allowedOriginsVar = "ALLOWED_ORIGINS"
	allowedMethodsVar = "ALLOWED_METHODS"
	allowedHeadersVar = "ALLOWED_HEADERS"
)

// Cors resolves the cross-origin allow-list from the environment on
// every call. With ALLOWED_ORIGINS unset the list is empty and only
// same-origin requests are served.
type Cors struct{}

var _ CorsConfig = Cors{}

type AllowedOrigins map[string]struct{}

func (a AllowedOrigins) IsAllowedOrigin(origin string) bool {
	_, ok := a[origin]
	return ok
}

func (a AllowedOrigins) String() string {
	origins := make([]string, 0, len(a))
	for k := range a {
		origins = append(origins, k)
	}
	return strings.Join(origins, ", ")
}

// GetAllowedOrigins parses ALLOWED_ORIGINS as a comma-separated list of
// origins. "*" is honoured as a wildcard entry.
func (Cors) GetAllowedOrigins() AllowedOrigins {
	origins := AllowedOrigins{}
	for _, origin := range strings.Split(GetEnv(allowedOriginsVar, ""), ",") {
		origin = strings.TrimSuffix(strings.TrimSpace(origin), "/")
		if origin == "" {
			continue
		}
		origins[origin] = struct{}{}
	}
	return origins
}

func (Cors) GetAllowedMethods() string {
	return GetEnv(allowedMethodsVar, "GET, POST, PUT, PATCH, DELETE, OPTIONS")
}

func (Cors) GetAllowedHeaders() string {
	return GetEnv(allowedHeadersVar, "Content-Type, Authorization")
}
