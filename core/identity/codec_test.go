package identity_test

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sessionkit/core/identity"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestNewJWT(t *testing.T) {
	t.Parallel()

	t.Run("rejects empty secret", func(t *testing.T) {
		t.Parallel()
		_, err := identity.NewJWT("")
		require.ErrorIs(t, err, identity.ErrNoSecret)
	})

	t.Run("rejects short secret", func(t *testing.T) {
		t.Parallel()
		_, err := identity.NewJWT("short")
		require.ErrorIs(t, err, identity.ErrSecretTooShort)
	})
}

func TestJWTRoundTrip(t *testing.T) {
	t.Parallel()

	codec, err := identity.NewJWT(testSecret, identity.WithMaxAge(time.Hour))
	require.NoError(t, err)

	token, err := codec.Encode(identity.Payload{SessionID: "abc123"})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	payload, err := codec.Decode(token)
	require.NoError(t, err)
	assert.Equal(t, "abc123", payload.SessionID)
}

func TestJWTDecodeFailures(t *testing.T) {
	t.Parallel()

	codec, err := identity.NewJWT(testSecret)
	require.NoError(t, err)

	t.Run("garbage", func(t *testing.T) {
		t.Parallel()
		_, err := codec.Decode("not-a-jwt")
		require.ErrorIs(t, err, identity.ErrInvalidToken)
	})

	t.Run("tampered", func(t *testing.T) {
		t.Parallel()
		token, err := codec.Encode(identity.Payload{SessionID: "abc123"})
		require.NoError(t, err)

		parts := strings.Split(token, ".")
		require.Len(t, parts, 3)
		tampered := parts[0] + ".eyJzaWQiOiJldmlsIn0." + parts[2]

		_, err = codec.Decode(tampered)
		require.ErrorIs(t, err, identity.ErrInvalidToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		t.Parallel()
		other, err := identity.NewJWT("ffffffffffffffffffffffffffffffff")
		require.NoError(t, err)

		token, err := other.Encode(identity.Payload{SessionID: "abc123"})
		require.NoError(t, err)

		_, err = codec.Decode(token)
		require.ErrorIs(t, err, identity.ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		t.Parallel()
		// Negative max age issues a token already past its exp claim.
		stale, err := identity.NewJWT(testSecret, identity.WithMaxAge(-time.Hour))
		require.NoError(t, err)

		token, err := stale.Encode(identity.Payload{SessionID: "abc123"})
		require.NoError(t, err)

		_, err = stale.Decode(token)
		require.ErrorIs(t, err, identity.ErrInvalidToken)
	})

	t.Run("missing session id", func(t *testing.T) {
		t.Parallel()
		token, err := codec.Encode(identity.Payload{})
		require.NoError(t, err)

		_, err = codec.Decode(token)
		require.ErrorIs(t, err, identity.ErrInvalidToken)
	})
}

func TestCookie(t *testing.T) {
	t.Parallel()

	c := identity.Cookie("panel_identity", "token-value", time.Hour)
	assert.Equal(t, "panel_identity", c.Name)
	assert.Equal(t, "token-value", c.Value)
	assert.Equal(t, "/", c.Path)
	assert.True(t, c.HttpOnly)
	assert.True(t, c.Secure)
	assert.Equal(t, http.SameSiteLaxMode, c.SameSite)
	assert.Equal(t, 3600, c.MaxAge)
}

func TestCookieSessionScoped(t *testing.T) {
	t.Parallel()

	c := identity.Cookie("panel_identity", "token-value", 0)
	assert.Zero(t, c.MaxAge, "no max age means a session cookie")
}

func TestExpireCookie(t *testing.T) {
	t.Parallel()

	c := identity.ExpireCookie("panel_identity")
	assert.Empty(t, c.Value)
	assert.Equal(t, -1, c.MaxAge)
	assert.True(t, c.HttpOnly)
}
