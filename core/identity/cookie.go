package identity

import (
	"net/http"
	"time"
)

// Cookie wraps an encoded identity token in an http.Cookie with secure
// defaults: HttpOnly, Secure, SameSite=Lax, path "/". maxAge <= 0 produces
// a session cookie.
func Cookie(name, token string, maxAge time.Duration) *http.Cookie {
	c := &http.Cookie{
		Name:     name,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	}
	if maxAge > 0 {
		c.MaxAge = int(maxAge / time.Second)
	}
	return c
}

// ExpireCookie returns a cookie instructing the browser to drop the
// identity cookie immediately.
func ExpireCookie(name string) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	}
}
