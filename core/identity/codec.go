package identity

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// minSecretLength guards against weak HMAC keys.
const minSecretLength = 32

// Payload is the decoded content of an identity token. It carries the
// session ID and nothing else; everything about the user is resolved
// through the session registry and user cache.
type Payload struct {
	SessionID string
}

// Codec converts between a Payload and an opaque signed token suitable for
// an identity cookie. Implementations must reject tampered and expired
// tokens on Decode.
type Codec interface {
	Encode(p Payload) (string, error)
	Decode(token string) (Payload, error)
}

// JWT is a Codec producing HS256-signed JWTs with the session ID in the
// "sid" claim. Token lifetime should match (or exceed) the session TTL;
// a shorter one just forces an earlier re-login.
type JWT struct {
	secret []byte
	maxAge time.Duration
}

var _ Codec = (*JWT)(nil)

// JWTOption configures the codec.
type JWTOption func(*JWT)

// WithMaxAge sets the token lifetime. Zero (the default) issues tokens
// without an expiry claim; session expiry in the registry still applies.
func WithMaxAge(d time.Duration) JWTOption {
	return func(j *JWT) {
		j.maxAge = d
	}
}

// NewJWT creates a codec signing with secret.
func NewJWT(secret string, opts ...JWTOption) (*JWT, error) {
	if secret == "" {
		return nil, ErrNoSecret
	}
	if len(secret) < minSecretLength {
		return nil, fmt.Errorf("%w: got %d chars", ErrSecretTooShort, len(secret))
	}
	j := &JWT{secret: []byte(secret)}
	for _, opt := range opts {
		opt(j)
	}
	return j, nil
}

func (j *JWT) Encode(p Payload) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sid": p.SessionID,
		"iat": now.Unix(),
	}
	if j.maxAge != 0 {
		claims["exp"] = now.Add(j.maxAge).Unix()
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(j.secret)
}

func (j *JWT) Decode(token string) (Payload, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return j.secret, nil
	})
	if err != nil || !parsed.Valid {
		return Payload{}, errors.Join(ErrInvalidToken, err)
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return Payload{}, ErrInvalidToken
	}
	sid, ok := claims["sid"].(string)
	if !ok || sid == "" {
		return Payload{}, ErrInvalidToken
	}
	return Payload{SessionID: sid}, nil
}
