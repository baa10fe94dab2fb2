package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"user-center/config"
	"user-center/internal/service"
	"user-center/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLogoutRouter(revoke service.RevokeFunc) (*gin.Engine, *jwt.JWTService) {
	gin.SetMode(gin.TestMode)

	jwtSvc := jwt.NewJWTService(config.JWTConfig{
		Secret:     "test-secret",
		ExpireTime: time.Hour,
		Issuer:     "user-center-test",
	})
	authSvc := service.NewAuthService(config.Auth0Config{
		Domain:             "example.auth0.com",
		ClientID:           "abc123",
		LogoutRedirectPath: "/",
	}, revoke)

	router := gin.New()
	router.GET("/logout", NewAuthHandler(authSvc, jwtSvc).Logout)
	return router, jwtSvc
}

func TestLogout_RedirectTarget(t *testing.T) {
	router, _ := newLogoutRouter(nil)

	req := httptest.NewRequest(http.MethodGet, "http://app.test/logout", nil)
	req.Header.Set("X-Forwarded-Proto", "https")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t,
		"https://example.auth0.com/v2/logout?client_id=abc123&returnTo=https%3A%2F%2Fapp.test%2F",
		w.Header().Get("Location"),
	)
}

func TestLogout_WithSessionRevokesToken(t *testing.T) {
	var revokedJTI string
	router, jwtSvc := newLogoutRouter(func(jti string, ttl time.Duration) error {
		revokedJTI = jti
		return nil
	})

	token, err := jwtSvc.GenerateToken("user-1", nil)
	require.NoError(t, err)
	claims, err := jwtSvc.ValidateToken(token)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "http://app.test/logout", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, claims.ID, revokedJTI, "登出应当按jti注销当前令牌")
}

func TestLogout_WithoutSessionSameRedirect(t *testing.T) {
	router, _ := newLogoutRouter(func(string, time.Duration) error {
		t.Fatal("无会话请求不应尝试拉黑令牌")
		return nil
	})

	// 无Authorization头与带非法token的请求得到同样的重定向
	for _, auth := range []string{"", "Bearer not-a-token"} {
		req := httptest.NewRequest(http.MethodGet, "http://app.test/logout", nil)
		req.Header.Set("X-Forwarded-Proto", "https")
		if auth != "" {
			req.Header.Set("Authorization", auth)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t,
			"https://example.auth0.com/v2/logout?client_id=abc123&returnTo=https%3A%2F%2Fapp.test%2F",
			w.Header().Get("Location"),
		)
	}
}
