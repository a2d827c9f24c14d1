// Package identity converts session IDs to and from the opaque signed
// tokens embedded in identity cookies.
//
// The Codec interface keeps the auth service independent of the token
// format; the shipped implementation signs HS256 JWTs carrying the session
// ID in the "sid" claim. Cookie and ExpireCookie build the corresponding
// http.Cookie with HttpOnly/Secure/SameSite set, so handlers never touch
// cookie attributes directly.
package identity
