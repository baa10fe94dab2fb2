package jwt

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"user-center/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newAuthRouter 挂载认证中间件的单路由router，返回取到的账号ID
func newAuthRouter(svc *JWTService, isBlacklisted BlacklistChecker) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", svc.AuthMiddleware(isBlacklisted), func(c *gin.Context) {
		c.String(http.StatusOK, GetUserID(c))
	})
	return r
}

func doAuthRequest(t *testing.T, r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware_Blacklist(t *testing.T) {
	t.Parallel()

	svc := NewJWTService(config.JWTConfig{
		Secret:     "test-secret",
		ExpireTime: time.Hour,
		Issuer:     "user-center-test",
	})
	token, err := svc.GenerateToken("user-1", nil)
	require.NoError(t, err)
	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)

	t.Run("未注销的令牌放行", func(t *testing.T) {
		var checked string
		r := newAuthRouter(svc, func(jti string) (bool, error) {
			checked = jti
			return false, nil
		})

		w := doAuthRequest(t, r, "Bearer "+token)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "user-1", w.Body.String(), "账号ID应当写入Context")
		assert.Equal(t, claims.ID, checked, "黑名单检查必须用令牌自带的jti")
	})

	t.Run("已注销的令牌返回401", func(t *testing.T) {
		r := newAuthRouter(svc, func(string) (bool, error) {
			return true, nil
		})

		w := doAuthRequest(t, r, "Bearer "+token)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("黑名单查询失败返回500", func(t *testing.T) {
		r := newAuthRouter(svc, func(string) (bool, error) {
			return false, errors.New("redis连接失败")
		})

		w := doAuthRequest(t, r, "Bearer "+token)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestAuthMiddleware_Header(t *testing.T) {
	t.Parallel()

	svc := NewJWTService(config.JWTConfig{
		Secret:     "test-secret",
		ExpireTime: time.Hour,
		Issuer:     "user-center-test",
	})
	r := newAuthRouter(svc, nil)

	cases := []struct {
		name   string
		header string
	}{
		{"缺少请求头", ""},
		{"缺少Bearer前缀", "Basic abc"},
		{"token为空", "Bearer "},
		{"token无效", "Bearer not-a-token"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := doAuthRequest(t, r, tc.header)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}
