// Package auth implements the login, logout, and authorization pipelines
// over the user cache and session registry.
//
// The request lifecycle is a straight chain: decode the identity token,
// resolve the session record, resolve the cached owner, apply the gating
// policy. Any broken link denies with ErrUnauthorized; a policy violation
// denies with ErrForbidden. Login walks the credential chain (account
// lookup, password check, MFA-enrollment gate, session-cap check) and only
// then writes state, caching the user snapshot before the session record so
// a session is never observable without a resolvable owner.
//
// Denial semantics are deliberately coarse on the outside: "unknown email"
// and "wrong password" share ErrInvalidCredentials, and every authorization
// failure shares ErrUnauthorized, so responses leak neither account
// existence nor which validation step failed.
//
// Persistence of user records sits behind the UserStore interface; this
// package never touches the relational schema. Password comparison and
// token signing are likewise collaborator interfaces, with reference
// implementations in core/password and core/identity.
//
// The session-cap check is check-then-act without a cross-request lock:
// two concurrent logins for one account can both pass and transiently
// exceed the cap. The sequential cap is exact; the concurrent one is
// best-effort.
package auth
