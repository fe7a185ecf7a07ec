package session

import (
	"net/http"
	"strconv"

	"github.com/prachw/go-pos-gateway/internal/config"
	errs "github.com/prachw/go-pos-gateway/internal/errors"
)

// Cookie names of the session set. All three are created together at
// login and cleared together at logout.
const (
	SessionCookieName = "session"
	TokenCookieName   = "token"
	UserIDCookieName  = "userId"
)

// sessionMaxAge is the cookie lifetime in seconds (1 day).
const sessionMaxAge = 60 * 60 * 24

// Manager issues, resolves, and revokes the session cookie set. It holds
// no state of its own; configuration is resolved per call so environment
// changes take effect without a restart.
type Manager struct {
	cfg config.SessionConfig
}

func NewManager(cfg config.SessionConfig) *Manager {
	return &Manager{cfg: cfg}
}

// Codec returns the active cookie codec: signed when a signing key is
// configured, plain base64url(JSON) otherwise.
func (m *Manager) Codec() Codec {
	if key := m.cfg.GetSessionSigningKey(); key != "" {
		return NewSignedCodec([]byte(key))
	}
	return JSONCodec{}
}

// Issue attaches the three session cookies to the response: the encoded
// payload and the bearer token as HttpOnly cookies, and the user id as a
// script-readable convenience cookie. Nothing is written if encoding fails.
func (m *Manager) Issue(w http.ResponseWriter, id int, username, token string) error {
	encoded, err := m.Codec().Encode(Payload{ID: id, Username: username})
	if err != nil {
		return errs.Wrapf(err, "issue session")
	}
	m.setCookie(w, SessionCookieName, encoded, sessionMaxAge, true)
	m.setCookie(w, TokenCookieName, token, sessionMaxAge, true)
	m.setCookie(w, UserIDCookieName, strconv.Itoa(id), sessionMaxAge, false)
	return nil
}

// Resolve extracts the identity and the raw bearer token from the request
// cookies. It is idempotent and side-effect-free.
//
// A missing session cookie yields ErrNoSession; a present but undecodable
// one yields ErrBadSessionCookie. The two are kept distinct because the
// boundary maps them to different statuses.
func (m *Manager) Resolve(r *http.Request) (Payload, string, error) {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil {
		return Payload{}, "", errs.ErrNoSession
	}

	payload, err := m.Codec().Decode(cookie.Value)
	if err != nil {
		return Payload{}, "", err
	}

	token := ""
	if tc, err := r.Cookie(TokenCookieName); err == nil {
		token = tc.Value
	}
	return payload, token, nil
}

// Revoke clears all three cookies by re-issuing them empty with an
// immediate expiry. Safe to call with no session present.
func (m *Manager) Revoke(w http.ResponseWriter) {
	m.setCookie(w, SessionCookieName, "", -1, true)
	m.setCookie(w, TokenCookieName, "", -1, true)
	m.setCookie(w, UserIDCookieName, "", -1, false)
}

func (m *Manager) setCookie(w http.ResponseWriter, name, value string, maxAge int, httpOnly bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		HttpOnly: httpOnly,
		Secure:   m.cfg.IsProduction(),
		SameSite: http.SameSiteLaxMode,
		MaxAge:   maxAge,
	})
}
