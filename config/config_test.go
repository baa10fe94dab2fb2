package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetDefaultConfig(t *testing.T) {
	cfg := getDefaultConfig()

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.Equal(t, 24*time.Hour, cfg.JWT.ExpireTime)
	assert.Equal(t, "/", cfg.Auth0.LogoutRedirectPath)
	assert.Empty(t, cfg.Auth0.Domain, "Auth0域名没有默认值，必须显式配置")
	assert.Empty(t, cfg.Auth0.ClientID)
}

func TestOverrideWithEnvVars(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("JWT_EXPIRE_TIME", "2h")
	t.Setenv("AUTH0_DOMAIN", "example.auth0.com")
	t.Setenv("AUTH0_CLIENT_ID", "abc123")
	t.Setenv("AUTH0_LOGOUT_REDIRECT_PATH", "/goodbye")
	t.Setenv("MAIL_HOST", "smtp.internal")
	t.Setenv("MAIL_PORT", "587")

	cfg := getDefaultConfig()
	overrideWithEnvVars(cfg)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, 2*time.Hour, cfg.JWT.ExpireTime)
	assert.Equal(t, "example.auth0.com", cfg.Auth0.Domain)
	assert.Equal(t, "abc123", cfg.Auth0.ClientID)
	assert.Equal(t, "/goodbye", cfg.Auth0.LogoutRedirectPath)
	assert.Equal(t, "smtp.internal", cfg.Mail.Host)
	assert.Equal(t, 587, cfg.Mail.Port)
}

func TestOverrideWithEnvVars_IgnoresInvalidValues(t *testing.T) {
	t.Setenv("DB_PORT", "not-a-number")
	t.Setenv("JWT_EXPIRE_TIME", "soon")

	cfg := getDefaultConfig()
	overrideWithEnvVars(cfg)

	// 非法环境变量保持默认值
	assert.Equal(t, 3306, cfg.Database.Port)
	assert.Equal(t, 24*time.Hour, cfg.JWT.ExpireTime)
}
