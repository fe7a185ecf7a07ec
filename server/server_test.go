package server_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/prachw/go-pos-gateway/internal/config"
	"github.com/prachw/go-pos-gateway/server"
	"github.com/prachw/go-pos-gateway/session"
)

const (
	testUsername = "alice"
	testPassword = "secret"
	testUserID   = 7
	testToken    = "abc123"
)

// testConfig overrides the backend URL and session settings; the rest
// falls through to env-var defaults.
type testConfig struct {
	config.EnvVars
	config.Session
	config.Cors
	baseURL        string
	production     bool
	allowedOrigins []string
}

var _ config.Config = testConfig{}

func (c testConfig) GetAPIBaseURL() string        { return c.baseURL }
func (c testConfig) IsProduction() bool           { return c.production }
func (c testConfig) GetSessionSigningKey() string { return "" }

func (c testConfig) GetAllowedOrigins() config.AllowedOrigins {
	origins := config.AllowedOrigins{}
	for _, origin := range c.allowedOrigins {
		origins[origin] = struct{}{}
	}
	return origins
}

// fakeBackend is a minimal stand-in for the identity API.
type fakeBackend struct {
	*httptest.Server
	loginHits atomic.Int64
	lastAuth  atomic.Value // Authorization header seen by the proxy route
}

func newFakeBackend(t *testing.T) *fakeBackend {
	t.Helper()
	fb := &fakeBackend{}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /login", func(w http.ResponseWriter, r *http.Request) {
		fb.loginHits.Add(1)

		var creds struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if creds.Username != testUsername || creds.Password != testPassword {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"user":{"id":%d,"username":%q},"token":%q}`, testUserID, testUsername, testToken)
	})
	mux.HandleFunc("POST /register", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		fmt.Fprint(w, `{"message":"user created"}`)
	})
	mux.HandleFunc("GET /orders", func(w http.ResponseWriter, r *http.Request) {
		fb.lastAuth.Store(r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"orders":[{"id":1}]}`)
	})

	fb.Server = httptest.NewServer(mux)
	t.Cleanup(fb.Close)
	return fb
}

func newTestServer(t *testing.T) (*server.Server, *fakeBackend) {
	t.Helper()
	backend := newFakeBackend(t)
	return server.New(testConfig{baseURL: backend.URL}), backend
}

func doLogin(t *testing.T, srv *server.Server, username, password string) *httptest.ResponseRecorder {
	t.Helper()
	body := fmt.Sprintf(`{"username":%q,"password":%q}`, username, password)
	req := httptest.NewRequest(http.MethodPost, server.RouteLogin, strings.NewReader(body))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func sessionCookieValue(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == session.SessionCookieName {
			return c.Value
		}
	}
	t.Fatal("no session cookie in response")
	return ""
}

func requireNoCookies(t *testing.T, rec *httptest.ResponseRecorder) {
	t.Helper()
	require.Empty(t, rec.Result().Cookies(), "no cookies may be set")
}
