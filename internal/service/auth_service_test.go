package service

import (
	"errors"
	"testing"
	"time"

	"user-center/config"
	"user-center/pkg/jwt"

	jwtv5 "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAuth0Config() config.Auth0Config {
	return config.Auth0Config{
		Domain:             "example.auth0.com",
		ClientID:           "abc123",
		LogoutRedirectPath: "/",
	}
}

func TestLogoutURL_ExactEncoding(t *testing.T) {
	t.Parallel()

	svc := NewAuthService(testAuth0Config(), nil)

	got := svc.LogoutURL("https://app.test/")
	assert.Equal(t,
		"https://example.auth0.com/v2/logout?client_id=abc123&returnTo=https%3A%2F%2Fapp.test%2F",
		got,
	)
}

func TestLogout_RevokesTokenByJTI(t *testing.T) {
	t.Parallel()

	var gotJTI string
	var gotTTL time.Duration
	svc := NewAuthService(testAuth0Config(), func(jti string, ttl time.Duration) error {
		gotJTI = jti
		gotTTL = ttl
		return nil
	})

	claims := &jwt.CustomClaims{
		RegisteredClaims: jwtv5.RegisteredClaims{
			ID:        "token-id-1",
			Subject:   "user-1",
			ExpiresAt: jwtv5.NewNumericDate(time.Now().Add(30 * time.Minute)),
		},
	}

	url := svc.Logout(claims, "https://app.test/")
	require.Equal(t, "token-id-1", gotJTI)
	assert.InDelta(t, float64(30*time.Minute), float64(gotTTL), float64(5*time.Second),
		"TTL应当取令牌剩余有效期")
	assert.Contains(t, url, "https://example.auth0.com/v2/logout")
}

func TestLogout_IdempotentWithoutSession(t *testing.T) {
	t.Parallel()

	called := false
	svc := NewAuthService(testAuth0Config(), func(string, time.Duration) error {
		called = true
		return nil
	})

	// 无会话的登出请求得到同样的重定向地址
	url := svc.Logout(nil, "https://app.test/")
	assert.False(t, called, "无会话时不应尝试拉黑")
	assert.Equal(t,
		"https://example.auth0.com/v2/logout?client_id=abc123&returnTo=https%3A%2F%2Fapp.test%2F",
		url,
	)
}

func TestLogout_RevokeFailureDoesNotBlockRedirect(t *testing.T) {
	t.Parallel()

	svc := NewAuthService(testAuth0Config(), func(string, time.Duration) error {
		return errors.New("redis down")
	})

	claims := &jwt.CustomClaims{
		RegisteredClaims: jwtv5.RegisteredClaims{
			ID:        "token-id-2",
			ExpiresAt: jwtv5.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}

	url := svc.Logout(claims, "https://app.test/")
	assert.Equal(t,
		"https://example.auth0.com/v2/logout?client_id=abc123&returnTo=https%3A%2F%2Fapp.test%2F",
		url,
	)
}

func TestRedirectPath_DefaultsToRoot(t *testing.T) {
	t.Parallel()

	svc := NewAuthService(config.Auth0Config{Domain: "d", ClientID: "c"}, nil)
	assert.Equal(t, "/", svc.RedirectPath())
}
