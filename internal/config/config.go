package config

import "time"

type Config interface {
	EnvConfig
	SessionConfig
	CorsConfig
}

type EnvConfig interface {
	GetPort() string
	GetAppName() string
	GetEnv() string
	GetAPIBaseURL() string
	GetBackendTimeout() time.Duration
}

// SessionConfig controls the attributes and codec of the issued session cookies.
type SessionConfig interface {
	IsProduction() bool
	GetSessionSigningKey() string
}

// CorsConfig controls which browser origins may call the relay
// cross-origin.
type CorsConfig interface {
	GetAllowedOrigins() AllowedOrigins
	GetAllowedMethods() string
	GetAllowedHeaders() string
}

type mainConfig struct {
	EnvVars
	Session
	Cors
}

func New() Config {
	return mainConfig{}
}
