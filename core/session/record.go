package session

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Record is the metadata stored per active session, keyed in the registry
// by the session ID. Records are created only by login and destroyed only
// by logout or TTL expiry.
type Record struct {
	UserID             uuid.UUID `msgpack:"user_id"`
	CreatedAt          time.Time `msgpack:"created_at"`
	IP                 string    `msgpack:"ip"`
	IsLoggingInWithMFA bool      `msgpack:"is_logging_in_with_mfa"`
}

// ErrTokenGeneration is returned when the system's entropy source fails.
var ErrTokenGeneration = errors.New("failed to generate session id")

// NewID returns a cryptographically secure session identifier: 32 random
// bytes (256 bits) as unpadded base64url, safe for cookies and storage keys.
func NewID() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", errors.Join(ErrTokenGeneration, err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
