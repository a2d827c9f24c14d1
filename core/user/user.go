package user

import (
	"time"

	"github.com/google/uuid"
)

// User is the cached snapshot of the persisted user aggregate; the flags
// the authorization pipeline needs on every request, without a database
// round-trip. It is written on login, replaced wholesale on refresh, and
// evicted when the user's last session ends. The persisted record remains
// the source of truth; this snapshot is never partially mutated.
type User struct {
	ID               uuid.UUID `msgpack:"id"`
	Email            string    `msgpack:"email"`
	Username         string    `msgpack:"username"`
	IsEmailVerified  bool      `msgpack:"is_email_verified"`
	IsMFAEnabled     bool      `msgpack:"is_mfa_enabled"`
	MFASetupComplete bool      `msgpack:"mfa_setup_complete"`
	MaxSessions      int       `msgpack:"max_sessions"`
	CachedAt         time.Time `msgpack:"cached_at"`
}

// MFAPending reports whether the user enabled MFA but has not finished
// enrollment. Such users cannot complete a login until setup is done.
func (u User) MFAPending() bool {
	return u.IsMFAEnabled && !u.MFASetupComplete
}
