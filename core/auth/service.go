package auth

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/dmitrymomot/sessionkit/core/identity"
	"github.com/dmitrymomot/sessionkit/core/logger"
	"github.com/dmitrymomot/sessionkit/core/session"
	"github.com/dmitrymomot/sessionkit/core/user"
)

// Identity is the result of a successful authorization: the cached user,
// the session that carried the request, and the session's ID.
type Identity struct {
	User      user.User
	SessionID string
	Session   session.Record
}

// Service orchestrates login, logout, and per-request authorization over
// the user cache, the session registry, and the external collaborators.
// It holds no locks across storage calls; correctness relies on the storage
// layer's last-writer-wins semantics.
type Service struct {
	users     UserStore
	passwords PasswordVerifier
	codec     identity.Codec
	userCache *user.Cache
	sessions  *session.Registry
	log       *slog.Logger
}

// Option configures the service.
type Option func(*Service)

// WithLogger attaches a structured logger. Without one the service is
// silent.
func WithLogger(log *slog.Logger) Option {
	return func(s *Service) {
		s.log = log
	}
}

// New wires the service. All five collaborators are required.
func New(
	users UserStore,
	passwords PasswordVerifier,
	codec identity.Codec,
	userCache *user.Cache,
	sessions *session.Registry,
	opts ...Option,
) *Service {
	s := &Service{
		users:     users,
		passwords: passwords,
		codec:     codec,
		userCache: userCache,
		sessions:  sessions,
		log:       slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Login authenticates the credentials and opens a new session, returning
// the session ID for the caller to wrap in an identity cookie via
// EncodeToken.
//
// Unknown emails and wrong passwords both fail with ErrInvalidCredentials.
// A user with unfinished MFA enrollment fails with ErrMFASetupIncomplete.
// A user at their session cap fails with ErrSessionLimitReached; the
// count-then-insert is not atomic against concurrent logins for the same
// account, so the cap is best-effort; two racing logins can both pass the
// check. Callers needing a hard cap must serialize logins per user.
//
// On success the user snapshot is cached before the session record is
// written, so an authorize that sees the new session always resolves its
// owner.
func (s *Service) Login(ctx context.Context, email, plainPassword, clientIP string) (string, error) {
	acct, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	now := time.Now()

	if !s.passwords.Verify(plainPassword, acct.PasswordHash) {
		if err := s.users.RecordFailedLogin(ctx, acct.ID, clientIP, now); err != nil {
			s.log.ErrorContext(ctx, "failed to record failed login",
				logger.Component("auth"), logger.Error(err))
		}
		return "", ErrInvalidCredentials
	}

	if acct.MFAPending() {
		return "", ErrMFASetupIncomplete
	}

	count, err := s.sessions.CountForUser(ctx, acct.ID)
	if err != nil {
		return "", err
	}
	if acct.MaxSessions > 0 && count >= acct.MaxSessions {
		return "", ErrSessionLimitReached
	}

	// Cache the owner before the session record exists; see the ordering
	// guarantee in the method comment.
	if err := s.userCache.Update(ctx, acct.User); err != nil {
		return "", err
	}

	sessionID, err := session.NewID()
	if err != nil {
		return "", err
	}
	rec := session.Record{
		UserID:             acct.ID,
		CreatedAt:          now,
		IP:                 clientIP,
		IsLoggingInWithMFA: acct.IsMFAEnabled,
	}
	if err := s.sessions.Put(ctx, sessionID, rec); err != nil {
		return "", err
	}

	if err := s.users.RecordLogin(ctx, acct.ID, clientIP, now); err != nil {
		// The session is already live; losing the last-login audit fields
		// must not fail the login.
		s.log.ErrorContext(ctx, "failed to record login",
			logger.Component("auth"), logger.Error(err))
	}

	return sessionID, nil
}

// Logout ends a session. When it was the user's last one, the cached user
// snapshot is evicted too, forcing the next login to re-read the persisted
// record. Unknown session IDs fail with ErrUnauthorized.
func (s *Service) Logout(ctx context.Context, sessionID string) error {
	rec, found, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return err
	}
	if !found {
		return ErrUnauthorized
	}

	count, err := s.sessions.CountForUser(ctx, rec.UserID)
	if err != nil {
		return err
	}
	if count <= 1 {
		if err := s.userCache.Delete(ctx, rec.UserID); err != nil {
			return err
		}
	}

	return s.sessions.Delete(ctx, sessionID)
}

// LogoutToken decodes an identity token and ends the session it names.
func (s *Service) LogoutToken(ctx context.Context, token string) error {
	payload, err := s.codec.Decode(token)
	if err != nil {
		return ErrUnauthorized
	}
	return s.Logout(ctx, payload.SessionID)
}

// Authorize validates an identity token end to end: decode, resolve the
// session, resolve the cached owner, and apply the gating policy. Every
// broken link yields ErrUnauthorized; a user failing the policy yields
// ErrForbidden. A user-cache miss is NOT refilled from persistence; the
// caller is forced to log in again, so revoked accounts cannot ride a
// stale session.
func (s *Service) Authorize(ctx context.Context, token string, policy Policy) (Identity, error) {
	payload, err := s.codec.Decode(token)
	if err != nil {
		return Identity{}, ErrUnauthorized
	}

	rec, found, err := s.sessions.Get(ctx, payload.SessionID)
	if err != nil {
		return Identity{}, err
	}
	if !found {
		return Identity{}, ErrUnauthorized
	}

	u, found, err := s.userCache.Get(ctx, rec.UserID)
	if err != nil {
		return Identity{}, err
	}
	if !found {
		return Identity{}, ErrUnauthorized
	}

	if !policy.allows(u, rec) {
		return Identity{}, ErrForbidden
	}

	return Identity{User: u, SessionID: payload.SessionID, Session: rec}, nil
}

// EncodeToken wraps a session ID in a signed identity token for the cookie.
func (s *Service) EncodeToken(sessionID string) (string, error) {
	return s.codec.Encode(identity.Payload{SessionID: sessionID})
}
