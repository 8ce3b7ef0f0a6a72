package email

import (
	"portfolio_backend/internal/logger"
)

// LogProvider пишет письма в лог вместо отправки (email.enabled = false)
type LogProvider struct{}

func NewLogProvider() *LogProvider {
	return &LogProvider{}
}

func (p *LogProvider) Send(email *Email) error {
	logger.Info("Email delivery disabled, message logged",
		"to", email.To,
		"subject", email.Subject,
		"body_length", len(email.Body),
	)
	return nil
}

func (p *LogProvider) Validate() error { return nil }

func (p *LogProvider) Close() error { return nil }
