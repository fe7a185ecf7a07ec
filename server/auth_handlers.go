package server

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/prachw/go-pos-gateway/identity"
	errs "github.com/prachw/go-pos-gateway/internal/errors"
	"github.com/prachw/go-pos-gateway/internal/metrics"
)

// LoginHandler forwards the credential pair to the identity backend and,
// on success, mints the session cookie set (POST /login).
func (s *Server) LoginHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var creds identity.Credentials
		if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
			metrics.RecordLogin(metrics.OutcomeMissingFields)
			writeJSONMessage(w, http.StatusBadRequest, msgMissingCredentials)
			return
		}

		result, err := s.backend.Login(r.Context(), creds)
		switch {
		case errs.Is(err, errs.ErrMissingCredentials):
			metrics.RecordLogin(metrics.OutcomeMissingFields)
			writeJSONMessage(w, http.StatusBadRequest, msgMissingCredentials)
			return
		case errs.Is(err, errs.ErrInvalidCredentials):
			metrics.RecordLogin(metrics.OutcomeInvalidCredentials)
			writeJSONMessage(w, http.StatusUnauthorized, msgInvalidCredentials)
			return
		case err != nil:
			log.Err(err).Str("username", creds.Username).Msg("login backend call failed")
			metrics.RecordLogin(metrics.OutcomeBackendError)
			writeJSONMessage(w, http.StatusInternalServerError, msgInternalServerError)
			return
		}

		// Cookies must be attached before the body is written.
		if err := s.sessions.Issue(w, result.ID, result.Username, result.Token); err != nil {
			log.Err(err).Msg("failed to issue session cookies")
			metrics.RecordLogin(metrics.OutcomeBackendError)
			writeJSONMessage(w, http.StatusInternalServerError, msgInternalServerError)
			return
		}

		metrics.RecordLogin(metrics.OutcomeSuccess)
		writeJSON(w, http.StatusOK, loginResponse{
			Message: msgLoginSuccessful,
			User:    loginUser{Username: result.Username},
		})
	}
}

// LogoutHandler clears the session cookie set (POST /logout). Revocation
// is idempotent: a request with no session still succeeds.
func (s *Server) LogoutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.sessions.Revoke(w)
		writeJSONMessage(w, http.StatusOK, msgLogoutSuccessful)
	}
}

// ProtectedHandler resolves the identity carried by the session cookie
// (GET /protected). A missing cookie is 401; a present but undecodable
// one is 500.
func (s *Server) ProtectedHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload, token, err := s.sessions.Resolve(r)
		switch {
		case errs.Is(err, errs.ErrNoSession):
			writeJSONMessage(w, http.StatusUnauthorized, msgUnauthorized)
			return
		case err != nil:
			log.Err(err).Msg("failed to decode session cookie")
			writeJSONMessage(w, http.StatusInternalServerError, msgInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, protectedResponse{User: payload, Token: token})
	}
}

// HealthzHandler reports liveness (GET /healthz).
func (s *Server) HealthzHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, healthResponse{Status: "ok"})
	}
}
