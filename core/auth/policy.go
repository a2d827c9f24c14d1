package auth

import (
	"github.com/dmitrymomot/sessionkit/core/session"
	"github.com/dmitrymomot/sessionkit/core/user"
)

// Policy selects which authenticated sessions may proceed for a protected
// operation. Every protected operation names exactly one policy; a session
// that fails it is denied with ErrForbidden.
type Policy int

const (
	// PolicyStandard admits fully established sessions: email verified,
	// and either MFA is off or it is set up and not mid-login.
	PolicyStandard Policy = iota

	// PolicyUnverifiedEmailOnly admits only users who have NOT verified
	// their email; the resend-verification and confirm endpoints.
	PolicyUnverifiedEmailOnly

	// PolicyMFASetupOnly admits only users with MFA enabled but enrollment
	// unfinished; the MFA enrollment endpoints.
	PolicyMFASetupOnly

	// PolicyMFALoginOnly admits only sessions still mid MFA login; the
	// code-submission endpoint.
	PolicyMFALoginOnly
)

func (p Policy) String() string {
	switch p {
	case PolicyStandard:
		return "standard"
	case PolicyUnverifiedEmailOnly:
		return "unverified_email_only"
	case PolicyMFASetupOnly:
		return "mfa_setup_only"
	case PolicyMFALoginOnly:
		return "mfa_login_only"
	default:
		return "unknown"
	}
}

// allows evaluates the policy against the cached user and session record.
// Unknown policies admit nobody.
func (p Policy) allows(u user.User, rec session.Record) bool {
	switch p {
	case PolicyStandard:
		if !u.IsEmailVerified {
			return false
		}
		if !u.IsMFAEnabled {
			return true
		}
		return u.MFASetupComplete && !rec.IsLoggingInWithMFA
	case PolicyUnverifiedEmailOnly:
		return !u.IsEmailVerified
	case PolicyMFASetupOnly:
		return u.IsMFAEnabled && !u.MFASetupComplete
	case PolicyMFALoginOnly:
		return rec.IsLoggingInWithMFA
	default:
		return false
	}
}
