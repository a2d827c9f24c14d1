// Package user holds the cached user snapshot and the cache it lives in.
//
// The snapshot carries exactly the fields request authorization needs:
// verification and MFA flags plus the per-user session cap. It is written
// when a login succeeds and evicted when the user's last session is closed,
// so a cache miss during authorization means "re-login required" rather
// than "refill transparently"; a revoked or deleted account must not be
// resurrected from a silent refill.
package user
