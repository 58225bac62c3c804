package mailer

import (
	"context"
	"log"
)

// Message is one outbound email. The wire transport is a collaborator
// concern; the queue only cares that Send eventually succeeds or gives up.
type Message struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// LogMailer writes deliveries to the log instead of a real transport.
// It stands in wherever SMTP is not configured.
type LogMailer struct {
	logger *log.Logger
}

func NewLogMailer(logger *log.Logger) *LogMailer {
	if logger == nil {
		logger = log.Default()
	}
	return &LogMailer{logger: logger}
}

func (m *LogMailer) Send(_ context.Context, msg Message) error {
	m.logger.Printf("Mail delivered | to=%s subject=%q", msg.To, msg.Subject)
	return nil
}
