package session

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"

	errs "github.com/prachw/go-pos-gateway/internal/errors"
)

// SignedCodec is an HMAC-signed replacement for JSONCodec behind the same
// interface. The payload travels as an HS256 JWT, so a tampered cookie
// fails verification instead of decoding to a forged identity.
type SignedCodec struct {
	key []byte
}

var _ Codec = (*SignedCodec)(nil)

func NewSignedCodec(key []byte) *SignedCodec {
	return &SignedCodec{key: key}
}

type sessionClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

func (c *SignedCodec) Encode(p Payload) (string, error) {
	claims := sessionClaims{
		Username: p.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: strconv.Itoa(p.ID),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.key)
	if err != nil {
		return "", errs.Wrapf(err, "sign session payload")
	}
	return signed, nil
}

func (c *SignedCodec) Decode(raw string) (Payload, error) {
	if raw == "" {
		return Payload{}, fmt.Errorf("%w: empty value", errs.ErrBadSessionCookie)
	}

	var claims sessionClaims
	token, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return c.key, nil
	})
	if err != nil {
		return Payload{}, fmt.Errorf("%w: %v", errs.ErrBadSessionCookie, err)
	}
	if !token.Valid {
		return Payload{}, fmt.Errorf("%w: invalid token", errs.ErrBadSessionCookie)
	}

	id, err := strconv.Atoi(claims.Subject)
	if err != nil {
		return Payload{}, fmt.Errorf("%w: bad subject: %v", errs.ErrBadSessionCookie, err)
	}
	return Payload{ID: id, Username: claims.Username}, nil
}
