package identity

import "errors"

var (
	// ErrNoSecret indicates no signing secret was provided.
	ErrNoSecret = errors.New("no secret provided for identity codec")

	// ErrSecretTooShort indicates the secret does not meet the minimum
	// length for HMAC signing.
	ErrSecretTooShort = errors.New("secret must be at least 32 characters long")

	// ErrInvalidToken indicates a token that failed signature verification,
	// is expired, or does not carry a session ID.
	ErrInvalidToken = errors.New("invalid identity token")
)
