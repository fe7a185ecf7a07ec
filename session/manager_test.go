package session_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	errs "github.com/prachw/go-pos-gateway/internal/errors"
	"github.com/prachw/go-pos-gateway/session"
)

// fakeSessionConfig implements config.SessionConfig for tests.
type fakeSessionConfig struct {
	production bool
	signingKey string
}

func (c fakeSessionConfig) IsProduction() bool           { return c.production }
func (c fakeSessionConfig) GetSessionSigningKey() string { return c.signingKey }

func cookiesByName(t *testing.T, rec *httptest.ResponseRecorder) map[string]*http.Cookie {
	t.Helper()
	byName := make(map[string]*http.Cookie)
	for _, c := range rec.Result().Cookies() {
		byName[c.Name] = c
	}
	return byName
}

func TestManager_Issue(t *testing.T) {
	m := session.NewManager(fakeSessionConfig{})

	rec := httptest.NewRecorder()
	require.NoError(t, m.Issue(rec, 7, "alice", "abc123"))

	cookies := cookiesByName(t, rec)
	require.Len(t, cookies, 3)

	t.Run("session cookie", func(t *testing.T) {
		c := cookies[session.SessionCookieName]
		require.NotNil(t, c)
		require.True(t, c.HttpOnly)
		require.False(t, c.Secure)
		require.Equal(t, "/", c.Path)
		require.Equal(t, 86400, c.MaxAge)

		decoded, err := session.JSONCodec{}.Decode(c.Value)
		require.NoError(t, err)
		require.Equal(t, session.Payload{ID: 7, Username: "alice"}, decoded)
	})

	t.Run("token cookie mirrors session flags", func(t *testing.T) {
		c := cookies[session.TokenCookieName]
		require.NotNil(t, c)
		require.Equal(t, "abc123", c.Value)
		require.True(t, c.HttpOnly)
		require.Equal(t, "/", c.Path)
		require.Equal(t, 86400, c.MaxAge)
	})

	t.Run("userId cookie is script-readable", func(t *testing.T) {
		c := cookies[session.UserIDCookieName]
		require.NotNil(t, c)
		require.Equal(t, "7", c.Value)
		require.False(t, c.HttpOnly)
		require.Equal(t, "/", c.Path)
	})
}

func TestManager_Issue_SecureInProduction(t *testing.T) {
	m := session.NewManager(fakeSessionConfig{production: true})

	rec := httptest.NewRecorder()
	require.NoError(t, m.Issue(rec, 7, "alice", "abc123"))

	for name, c := range cookiesByName(t, rec) {
		require.True(t, c.Secure, "cookie %q must be Secure in production", name)
	}
}

func TestManager_Revoke(t *testing.T) {
	m := session.NewManager(fakeSessionConfig{})

	rec := httptest.NewRecorder()
	m.Revoke(rec)

	cookies := cookiesByName(t, rec)
	require.Len(t, cookies, 3)
	for name, c := range cookies {
		require.Empty(t, c.Value, "cookie %q must be cleared", name)
		require.Negative(t, c.MaxAge, "cookie %q must expire immediately", name)
	}
}

func TestManager_Resolve(t *testing.T) {
	m := session.NewManager(fakeSessionConfig{})

	encode := func(t *testing.T, p session.Payload) string {
		t.Helper()
		encoded, err := session.JSONCodec{}.Encode(p)
		require.NoError(t, err)
		return encoded
	}

	t.Run("no session cookie", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/protected", nil)
		r.AddCookie(&http.Cookie{Name: session.TokenCookieName, Value: "abc123"})
		r.AddCookie(&http.Cookie{Name: session.UserIDCookieName, Value: "7"})

		_, _, err := m.Resolve(r)
		require.ErrorIs(t, err, errs.ErrNoSession)
	})

	t.Run("corrupted session cookie", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/protected", nil)
		r.AddCookie(&http.Cookie{Name: session.SessionCookieName, Value: "garbage"})

		_, _, err := m.Resolve(r)
		require.ErrorIs(t, err, errs.ErrBadSessionCookie)
		require.NotErrorIs(t, err, errs.ErrNoSession)
	})

	t.Run("valid session with token", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/protected", nil)
		r.AddCookie(&http.Cookie{Name: session.SessionCookieName, Value: encode(t, session.Payload{ID: 7, Username: "alice"})})
		r.AddCookie(&http.Cookie{Name: session.TokenCookieName, Value: "abc123"})

		payload, token, err := m.Resolve(r)
		require.NoError(t, err)
		require.Equal(t, session.Payload{ID: 7, Username: "alice"}, payload)
		require.Equal(t, "abc123", token)
	})

	t.Run("valid session without token cookie", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/protected", nil)
		r.AddCookie(&http.Cookie{Name: session.SessionCookieName, Value: encode(t, session.Payload{ID: 7, Username: "alice"})})

		_, token, err := m.Resolve(r)
		require.NoError(t, err)
		require.Empty(t, token)
	})

	t.Run("repeated resolution yields the same result", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/protected", nil)
		r.AddCookie(&http.Cookie{Name: session.SessionCookieName, Value: encode(t, session.Payload{ID: 7, Username: "alice"})})

		first, _, err := m.Resolve(r)
		require.NoError(t, err)
		second, _, err := m.Resolve(r)
		require.NoError(t, err)
		require.Equal(t, first, second)
	})
}

func TestManager_SignedCodecSelection(t *testing.T) {
	signed := session.NewManager(fakeSessionConfig{signingKey: "test-signing-key"})
	unsigned := session.NewManager(fakeSessionConfig{})

	rec := httptest.NewRecorder()
	require.NoError(t, signed.Issue(rec, 7, "alice", "abc123"))

	sessionValue := cookiesByName(t, rec)[session.SessionCookieName].Value

	t.Run("signed manager resolves its own cookie", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/protected", nil)
		r.AddCookie(&http.Cookie{Name: session.SessionCookieName, Value: sessionValue})

		payload, _, err := signed.Resolve(r)
		require.NoError(t, err)
		require.Equal(t, session.Payload{ID: 7, Username: "alice"}, payload)
	})

	t.Run("unsigned cookie is rejected by signed manager", func(t *testing.T) {
		plain, err := session.JSONCodec{}.Encode(session.Payload{ID: 7, Username: "alice"})
		require.NoError(t, err)

		r := httptest.NewRequest(http.MethodGet, "/protected", nil)
		r.AddCookie(&http.Cookie{Name: session.SessionCookieName, Value: plain})

		_, _, err = signed.Resolve(r)
		require.ErrorIs(t, err, errs.ErrBadSessionCookie)
	})

	t.Run("signed cookie is rejected by unsigned manager", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/protected", nil)
		r.AddCookie(&http.Cookie{Name: session.SessionCookieName, Value: sessionValue})

		_, _, err := unsigned.Resolve(r)
		require.ErrorIs(t, err, errs.ErrBadSessionCookie)
	})
}
