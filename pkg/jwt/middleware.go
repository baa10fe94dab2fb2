package jwt

import (
	"strings"

	"user-center/pkg/logger"
	"user-center/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	// ContextUserIDKey 账号ID在gin.Context中的键名
	ContextUserIDKey = "user_id"
)

// BlacklistChecker 查询令牌ID是否已在登出时被注销
type BlacklistChecker func(jti string) (bool, error)

// AuthMiddleware JWT认证中间件
// 从请求头中提取Authorization: Bearer <token>
// 验证token、检查黑名单，并将账号ID存入gin.Context
// isBlacklisted为nil时跳过黑名单检查
func (s *JWTService) AuthMiddleware(isBlacklisted BlacklistChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 从请求头获取Authorization
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "缺少Authorization请求头")
			c.Abort()
			return
		}

		// 检查Bearer前缀
		if !strings.HasPrefix(authHeader, "Bearer ") {
			response.Unauthorized(c, "Authorization格式错误，应为Bearer <token>")
			c.Abort()
			return
		}

		// 提取token
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			response.Unauthorized(c, "token不能为空")
			c.Abort()
			return
		}

		// 验证token
		claims, err := s.ValidateToken(tokenString)
		if err != nil {
			logger.Warn("JWT验证失败",
				zap.Error(err),
				zap.String("path", c.Request.URL.Path),
			)
			response.Unauthorized(c, "token无效或已过期")
			c.Abort()
			return
		}

		// 检查令牌是否已在登出时被注销
		if isBlacklisted != nil {
			blacklisted, err := isBlacklisted(claims.ID)
			if err != nil {
				logger.Error("查询令牌黑名单失败", zap.Error(err))
				response.InternalError(c, "认证服务异常")
				c.Abort()
				return
			}
			if blacklisted {
				response.Unauthorized(c, "token已注销")
				c.Abort()
				return
			}
		}

		c.Set(ContextUserIDKey, claims.Subject)

		c.Next()
	}
}

// GetUserID 从gin.Context中获取账号ID
func GetUserID(c *gin.Context) string {
	if userID, exists := c.Get(ContextUserIDKey); exists {
		if id, ok := userID.(string); ok {
			return id
		}
	}
	return ""
}
