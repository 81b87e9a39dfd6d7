package notification

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"fieldserve/config"
)

// EmailSender is the SMTP implementation of Sender. It is the only
// delivery channel today; SMS or push become sibling implementations.
type EmailSender struct {
	dialer *gomail.Dialer
	from   string
}

// NewEmailSender builds an SMTP sender from the app configuration.
func NewEmailSender() *EmailSender {
	cfg := config.AppConfig
	from := cfg.SMTPFrom
	if from == "" {
		from = cfg.SMTPUser
	}
	return &EmailSender{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass),
		from:   from,
	}
}

func (s *EmailSender) Send(ctx context.Context, to, subject, message string) (bool, error) {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", message)

	done := make(chan error, 1)
	go func() { done <- s.dialer.DialAndSend(m) }()

	select {
	case err := <-done:
		if err != nil {
			return false, fmt.Errorf("failed to send email to %s: %w", to, err)
		}
		return true, nil
	case <-ctx.Done():
		return false, fmt.Errorf("email send to %s aborted: %w", to, ctx.Err())
	}
}
