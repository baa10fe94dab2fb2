package service

import (
	"fmt"
	"net/url"
	"time"

	"user-center/config"
	"user-center/pkg/jwt"
	"user-center/pkg/logger"

	"go.uber.org/zap"
)

// RevokeFunc 注销令牌：按jti拉黑，ttl为令牌剩余有效期
type RevokeFunc func(jti string, ttl time.Duration) error

// AuthService 会话登出流程
// 本地会话注销后重定向到身份提供方的登出端点，由其回跳returnTo
// 配置通过构造函数注入，不读全局设置
type AuthService struct {
	cfg    config.Auth0Config
	revoke RevokeFunc
}

func NewAuthService(cfg config.Auth0Config, revoke RevokeFunc) *AuthService {
	return &AuthService{cfg: cfg, revoke: revoke}
}

// Logout 注销本地会话并返回身份提供方的登出地址
// 幂等：无论是否带有效会话，返回的重定向地址相同
// 拉黑失败只记录日志，不阻断重定向（重定向是对外契约）
func (s *AuthService) Logout(claims *jwt.CustomClaims, returnTo string) string {
	if claims != nil && claims.ID != "" && s.revoke != nil {
		ttl := time.Duration(0)
		if claims.ExpiresAt != nil {
			ttl = time.Until(claims.ExpiresAt.Time)
		}
		if err := s.revoke(claims.ID, ttl); err != nil {
			logger.Error("注销令牌失败",
				zap.String("user_id", claims.Subject),
				zap.Error(err),
			)
		}
	}
	return s.LogoutURL(returnTo)
}

// LogoutURL 构造身份提供方的登出端点地址
// 格式: https://{domain}/v2/logout?client_id={clientID}&returnTo={编码后的回跳地址}
func (s *AuthService) LogoutURL(returnTo string) string {
	return fmt.Sprintf("https://%s/v2/logout?client_id=%s&returnTo=%s",
		s.cfg.Domain,
		s.cfg.ClientID,
		url.QueryEscape(returnTo),
	)
}

// RedirectPath 登出后回跳路径（由handler按请求解析为绝对地址）
func (s *AuthService) RedirectPath() string {
	if s.cfg.LogoutRedirectPath == "" {
		return "/"
	}
	return s.cfg.LogoutRedirectPath
}
