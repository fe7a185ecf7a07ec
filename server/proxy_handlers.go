package server

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/prachw/go-pos-gateway/internal/metrics"
	"github.com/prachw/go-pos-gateway/session"
)

// RegisterHandler forwards a registration request to the backend and
// relays its status code and body verbatim (POST /register).
func (s *Server) RegisterHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			writeJSONMessage(w, http.StatusInternalServerError, msgInternalServerError)
			return
		}

		status, respBody, err := s.backend.Register(r.Context(), body)
		if err != nil {
			log.Err(err).Msg("register backend call failed")
			writeJSONMessage(w, http.StatusInternalServerError, msgInternalServerError)
			return
		}

		w.Header().Set("Content-Type", contentTypeJSON)
		w.WriteHeader(status)
		_, _ = w.Write(respBody)
	}
}

// ProxyHandler relays any request under /api/ to the backend, attaching
// the bearer token from the token cookie when present. Status and body
// come back untouched.
func (s *Server) ProxyHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := ""
		if c, err := r.Cookie(session.TokenCookieName); err == nil {
			token = c.Value
		}

		path := strings.TrimPrefix(r.URL.Path, "/api")
		resp, err := s.backend.Forward(r.Context(), r.Method, path, r.URL.RawQuery, r.Body, token)
		if err != nil {
			log.Err(err).Str("path", path).Msg("proxy backend call failed")
			metrics.RecordProxyRequest("5xx")
			writeJSONMessage(w, http.StatusBadGateway, msgBadGateway)
			return
		}

		metrics.RecordProxyRequest(statusClass(resp.StatusCode))
		if resp.ContentType != "" {
			w.Header().Set("Content-Type", resp.ContentType)
		}
		w.WriteHeader(resp.StatusCode)
		_, _ = w.Write(resp.Body)
	}
}

func statusClass(status int) string {
	return fmt.Sprintf("%dxx", status/100)
}
