package session

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	errs "github.com/prachw/go-pos-gateway/internal/errors"
)

// Codec converts a session payload to and from the cookie wire form.
// Decode must never panic: a malformed value degrades to an error, which
// the guard maps to a boundary status.
type Codec interface {
	Encode(p Payload) (string, error)
	Decode(raw string) (Payload, error)
}

// JSONCodec is the default codec: base64url over the JSON payload.
// Base64 keeps the JSON legal inside a cookie value. The payload carries
// no integrity signature; any holder of cookie-write access can forge an
// identity. SignedCodec is the drop-in replacement when that matters.
type JSONCodec struct{}

var _ Codec = JSONCodec{}

func (JSONCodec) Encode(p Payload) (string, error) {
	b, err := json.Marshal(p)
	if err != nil {
		return "", errs.Wrapf(err, "marshal session payload")
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

func (JSONCodec) Decode(raw string) (Payload, error) {
	if raw == "" {
		return Payload{}, fmt.Errorf("%w: empty value", errs.ErrBadSessionCookie)
	}
	b, err := base64.RawURLEncoding.DecodeString(raw)
	if err != nil {
		return Payload{}, fmt.Errorf("%w: %v", errs.ErrBadSessionCookie, err)
	}
	var p Payload
	if err := json.Unmarshal(b, &p); err != nil {
		return Payload{}, fmt.Errorf("%w: %v", errs.ErrBadSessionCookie, err)
	}
	return p, nil
}
