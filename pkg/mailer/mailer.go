package mailer

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"user-center/config"
	"user-center/pkg/logger"

	"go.uber.org/zap"
)

// SMTPMailer 基于SMTP的邮件发送器
// 发送失败原样返回给调用方，不做重试（重试策略由调用方决定）

type SMTPMailer struct {
	cfg config.MailConfig
}

// NewSMTPMailer 创建邮件发送器
func NewSMTPMailer(cfg config.MailConfig) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

// Send 发送邮件
// from为空时使用配置的默认发件人
func (m *SMTPMailer) Send(ctx context.Context, from string, to []string, subject, body string) error {
	if len(to) == 0 {
		return fmt.Errorf("收件人列表为空")
	}
	if from == "" {
		from = m.cfg.From
	}

	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)

	// 组装邮件头
	var msg strings.Builder
	msg.WriteString("From: " + from + "\r\n")
	msg.WriteString("To: " + strings.Join(to, ", ") + "\r\n")
	msg.WriteString("Subject: " + subject + "\r\n")
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(body)

	// 未配置用户名时走免认证发送（本地开发的SMTP通常不需要认证）
	var auth smtp.Auth
	if m.cfg.Username != "" {
		auth = smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	}

	if err := smtp.SendMail(addr, auth, from, to, []byte(msg.String())); err != nil {
		logger.Error("邮件发送失败",
			zap.Strings("to", to),
			zap.String("subject", subject),
			zap.Error(err),
		)
		return fmt.Errorf("邮件发送失败: %w", err)
	}

	logger.Info("邮件发送成功",
		zap.Strings("to", to),
		zap.String("subject", subject),
	)
	return nil
}
