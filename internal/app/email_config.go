package app

import (
	"errors"

	"go.uber.org/zap"

	"github.com/danaholt/giftwish/pkg/mail"
)

// SMTPSettings converts EmailConfig to the mail package representation.
func (c EmailConfig) SMTPSettings() mail.SMTPSettings {
	return mail.SMTPSettings{
		Enabled:  c.SMTP.Enabled,
		Host:     c.SMTP.Host,
		Port:     c.SMTP.Port,
		Username: c.SMTP.Username,
		Password: c.SMTP.Password,
		From:     c.SMTP.From,
		UseTLS:   c.SMTP.UseTLS,
		Timeout:  c.SMTP.Timeout,
	}
}

// NewMailer selects the email backend. SMTP wins when enabled; development
// falls back to the console backend so codes still show up somewhere. A
// production deployment without SMTP is a misconfiguration, since hosts would
// silently never receive their access codes.
func NewMailer(cfg *Config, log *zap.Logger) (mail.Mailer, error) {
	if cfg.Email.SMTP.Enabled {
		return mail.NewSMTPMailer(cfg.Email.SMTPSettings())
	}

	if cfg.Server.Production() {
		return nil, errors.New("app: email.smtp must be configured in production")
	}

	return mail.NewConsoleMailer(log), nil
}
