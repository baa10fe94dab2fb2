package redis

import (
	"fmt"
	"time"
)

// 登出令牌黑名单相关常量
const (
	TokenBlacklistKeyPrefix = "uc:token:blacklist:" // 已注销令牌key前缀
)

// BlacklistToken 将令牌ID加入黑名单
// TTL取令牌剩余有效期：过期后自然清除，无需额外回收
// 重复加入是幂等操作，不报错
func BlacklistToken(jti string, ttl time.Duration) error {
	if client == nil {
		return fmt.Errorf("redis客户端未初始化")
	}
	if jti == "" {
		return fmt.Errorf("令牌ID为空")
	}
	if ttl <= 0 {
		// 令牌已过期，无需拉黑
		return nil
	}

	key := TokenBlacklistKeyPrefix + jti
	if err := client.Set(ctx, key, 1, ttl).Err(); err != nil {
		return fmt.Errorf("令牌加入黑名单失败: %w", err)
	}
	return nil
}

// IsTokenBlacklisted 检查令牌ID是否已被注销
func IsTokenBlacklisted(jti string) (bool, error) {
	if client == nil {
		return false, fmt.Errorf("redis客户端未初始化")
	}
	if jti == "" {
		return false, nil
	}

	n, err := client.Exists(ctx, TokenBlacklistKeyPrefix+jti).Result()
	if err != nil {
		return false, fmt.Errorf("查询令牌黑名单失败: %w", err)
	}
	return n > 0, nil
}
