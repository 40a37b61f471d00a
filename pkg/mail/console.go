package mail

import (
	"context"
	"strings"

	"go.uber.org/zap"
)

// ConsoleMailer logs outbound messages instead of delivering them. It stands
// in for a real backend in development so event codes still reach whoever is
// watching the server output.
type ConsoleMailer struct {
	log *zap.Logger
}

// NewConsoleMailer builds a Mailer that writes messages to the given logger.
func NewConsoleMailer(log *zap.Logger) *ConsoleMailer {
	if log == nil {
		log = zap.NewNop()
	}
	return &ConsoleMailer{log: log}
}

// Send logs the message at info level.
func (m *ConsoleMailer) Send(_ context.Context, msg Message) error {
	m.log.Info("email (console backend)",
		zap.String("to", strings.Join(msg.To, ", ")),
		zap.String("subject", msg.Subject),
		zap.String("body", msg.Body),
	)
	return nil
}
