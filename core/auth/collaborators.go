package auth

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/sessionkit/core/user"
)

// Account is the persisted user aggregate as the auth service sees it: the
// cacheable snapshot plus the password hash. The hash never enters the
// cache; only the embedded snapshot does.
type Account struct {
	user.User
	PasswordHash string
}

// UserStore is the persistence collaborator. The relational schema behind
// it is out of this module's scope; implementations typically wrap the
// panel's user table.
type UserStore interface {
	// GetByEmail resolves the account for an email, returning
	// ErrUserNotFound (possibly wrapped) for unknown emails.
	GetByEmail(ctx context.Context, email string) (Account, error)

	// RecordLogin persists a successful login: last-login timestamp and IP.
	RecordLogin(ctx context.Context, id uuid.UUID, ip string, at time.Time) error

	// RecordFailedLogin persists a failed attempt: counter increment plus
	// last-failed timestamp and IP.
	RecordFailedLogin(ctx context.Context, id uuid.UUID, ip string, at time.Time) error
}

// PasswordVerifier compares a plaintext password against a stored hash.
// core/password provides the bcrypt implementation.
type PasswordVerifier interface {
	Verify(plain, hash string) bool
}
