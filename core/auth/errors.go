package auth

import "errors"

var (
	// ErrInvalidCredentials covers both "no such account" and "wrong
	// password". The two cases are deliberately indistinguishable so a
	// caller cannot probe which emails have accounts.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUnauthorized covers a missing, invalid, or expired cookie or
	// session, and a user evicted from the cache. Externally it carries
	// the same weight as ErrInvalidCredentials: no detail about which
	// link in the chain broke.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden indicates a valid session whose user does not satisfy
	// the gating policy of the requested operation.
	ErrForbidden = errors.New("forbidden")

	// ErrSessionLimitReached indicates a login denied by the user's
	// concurrent-session cap.
	ErrSessionLimitReached = errors.New("maximum number of sessions reached")

	// ErrMFASetupIncomplete indicates a login blocked because the user
	// enabled MFA but never finished enrollment.
	ErrMFASetupIncomplete = errors.New("mfa setup is not complete")

	// ErrUserNotFound is the sentinel UserStore implementations return for
	// unknown emails. The service folds it into ErrInvalidCredentials
	// before it ever reaches a caller.
	ErrUserNotFound = errors.New("user not found")
)
