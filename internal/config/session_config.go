package config

import "strings"

const sessionSigningKeyVar = "SESSION_SIGNING_KEY"

type Session struct{}

var _ SessionConfig = Session{}

// IsProduction reports whether the deployment is production-facing.
// Issued cookies carry the Secure attribute iff this is true.
func (Session) IsProduction() bool {
	env := GetEnv("ENV", "DEV")
	return strings.EqualFold(env, "PROD") || strings.EqualFold(env, "PRODUCTION")
}

// GetSessionSigningKey returns the HMAC key for the signed session codec.
// An empty key selects the unsigned codec.
func (Session) GetSessionSigningKey() string {
	return GetEnv(sessionSigningKeyVar, "")
}
