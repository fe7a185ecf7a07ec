package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	portEnvVar        = "PORT"
	appNameVar        = "APP_NAME"
	apiBaseURLVar     = "API_BASE_URL"
	backendTimeoutVar = "BACKEND_TIMEOUT"

	// defaultBackendTimeout bounds the outbound identity call so a slow
	// backend cannot exhaust the handler pool.
	defaultBackendTimeout = 10 * time.Second
)

// EnvVars resolves configuration from the environment on every call, so
// changes take effect without a restart.
type EnvVars struct{}

var _ EnvConfig = EnvVars{}

func (EnvVars) GetPort() string {
	port := GetEnv(portEnvVar, "3000")
	if !strings.HasPrefix(port, ":") {
		port = fmt.Sprintf(":%s", port)
	}
	return port
}

func (EnvVars) GetAppName() string {
	return GetEnv(appNameVar, "POS Gateway")
}

func (EnvVars) GetEnv() string {
	env := os.Getenv("ENV")
	if env == "" {
		return "DEV"
	}
	return env
}

// GetAPIBaseURL returns the base URL of the backend identity API
// (e.g., "http://localhost:5000"). All outbound calls are rooted here.
func (EnvVars) GetAPIBaseURL() string {
	return strings.TrimSuffix(GetEnv(apiBaseURLVar, "http://localhost:5000"), "/")
}

func (EnvVars) GetBackendTimeout() time.Duration {
	raw := GetEnv(backendTimeoutVar, "")
	if raw == "" {
		return defaultBackendTimeout
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return defaultBackendTimeout
	}
	return d
}

func GetEnv(envVar, defaultValue string) string {
	value := os.Getenv(envVar)
	if value == "" {
		return defaultValue
	}
	return value
}
