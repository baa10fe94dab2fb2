package handler

import (
	"net/http"
	"strings"

	"user-center/internal/service"
	"user-center/pkg/jwt"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authSvc *service.AuthService
	jwtSvc  *jwt.JWTService
}

func NewAuthHandler(authSvc *service.AuthService, jwtSvc *jwt.JWTService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc, jwtSvc: jwtSvc}
}

// Logout 登出
// 注销本地会话后302重定向到身份提供方的登出端点，无响应体
// 不强制要求有效会话：已登出的请求得到同样的重定向（幂等）
func (h *AuthHandler) Logout(c *gin.Context) {
	claims := extractClaims(c, h.jwtSvc)
	returnTo := absoluteURI(c, h.authSvc.RedirectPath())
	c.Redirect(http.StatusFound, h.authSvc.Logout(claims, returnTo))
}

// extractClaims 尽力从请求中解析会话令牌
// 解析失败不报错：登出流程对无会话请求同样成立
func extractClaims(c *gin.Context, jwtSvc *jwt.JWTService) *jwt.CustomClaims {
	authHeader := c.GetHeader("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return nil
	}
	claims, err := jwtSvc.ValidateToken(strings.TrimPrefix(authHeader, "Bearer "))
	if err != nil {
		return nil
	}
	return claims
}

// absoluteURI 按当前请求把路径解析为绝对地址
func absoluteURI(c *gin.Context, path string) string {
	scheme := "http"
	if c.Request.TLS != nil || c.GetHeader("X-Forwarded-Proto") == "https" {
		scheme = "https"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return scheme + "://" + c.Request.Host + path
}
