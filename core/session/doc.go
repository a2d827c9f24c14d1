// Package session provides the session registry: the authoritative record
// of which sessions are live, who owns them, and whether an MFA login is
// still in progress on them.
//
// Session IDs are unguessable 256-bit tokens; the registry keys records by
// ID and applies one uniform TTL to everything it writes. Counting a user's
// live sessions is a scan over the namespace; session counts are bounded
// by small per-user caps, so no secondary index is kept.
//
// Several records may reference the same user (multi-device login). The
// count-then-insert sequence in the auth service is deliberately not atomic
// across concurrent logins; see core/auth for the documented race.
package session
