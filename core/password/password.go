// Package password wraps bcrypt behind the hash/verify pair the auth
// service consumes. Hashes are self-describing bcrypt strings; verification
// is constant-time within bcrypt itself.
package password

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// DefaultCost balances login latency against brute-force resistance.
const DefaultCost = 12

// ErrHashingFailed is returned when bcrypt rejects the input, for example
// a password longer than 72 bytes.
var ErrHashingFailed = errors.New("failed to hash password")

// Hasher hashes and verifies passwords at a fixed cost. The zero value is
// not usable; construct with New.
type Hasher struct {
	cost int
}

// New creates a Hasher. Costs outside bcrypt's valid range fall back to
// DefaultCost.
func New(cost int) Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}
	return Hasher{cost: cost}
}

// Hash returns the bcrypt hash of plain.
func (h Hasher) Hash(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", errors.Join(ErrHashingFailed, err)
	}
	return string(hash), nil
}

// Verify reports whether plain matches the stored hash. Malformed hashes
// simply fail verification.
func (h Hasher) Verify(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
