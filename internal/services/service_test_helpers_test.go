package services

import (
	"context"
	"sync"

	"github.com/danaholt/giftwish/pkg/mail"
)

// recordingMailer captures outbound messages for assertions.
type recordingMailer struct {
	mu       sync.Mutex
	messages []mail.Message
	err      error
}

func (m *recordingMailer) Send(_ context.Context, msg mail.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.messages = append(m.messages, msg)
	return nil
}

func (m *recordingMailer) sent() []mail.Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]mail.Message, len(m.messages))
	copy(out, m.messages)
	return out
}
