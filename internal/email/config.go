package email

import (
	"time"

	"portfolio_backend/internal/config"
)

// SMTPConfig содержит конфигурацию SMTP сервера
type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromEmail string
	FromName  string
	UseTLS    bool
	Timeout   time.Duration
}

// DefaultConfig возвращает конфигурацию по умолчанию
func DefaultConfig() *SMTPConfig {
	return &SMTPConfig{
		Host:    "localhost",
		Port:    587,
		UseTLS:  true,
		Timeout: 30 * time.Second,
	}
}

// FromAppConfig переносит секцию email из конфигурации приложения
func FromAppConfig(cfg config.EmailConfig) *SMTPConfig {
	c := DefaultConfig()
	if cfg.SMTPHost != "" {
		c.Host = cfg.SMTPHost
	}
	if cfg.SMTPPort != 0 {
		c.Port = cfg.SMTPPort
	}
	c.Username = cfg.SMTPUsername
	c.Password = cfg.SMTPPassword
	c.FromEmail = cfg.FromEmail
	c.FromName = cfg.FromName
	c.UseTLS = cfg.UseTLS
	return c
}
