package mailer

import (
	"context"
	"errors"
	"fmt"

	"pricing-cms/pkg/utils"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

// Message is a single plaintext email.
type Message struct {
	To      string
	Subject string
	Body    string
}

// Mailer delivers a message synchronously; Send returns once the transport
// has accepted or rejected it.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

var ErrNotConfigured = errors.New("email transport not configured")

type smtpMailer struct {
	dialer *gomail.Dialer
	from   string
	log    *zap.Logger
}

// NewSMTPMailer returns a gomail backed Mailer.
func NewSMTPMailer(config utils.EmailConfig, log *zap.Logger) Mailer {
	return &smtpMailer{
		dialer: gomail.NewDialer(config.Host, config.Port, config.User, config.Password),
		from:   config.From,
		log:    log.With(zap.String("component", "mailer")),
	}
}

func (m *smtpMailer) Send(ctx context.Context, msg Message) error {
	if m.dialer.Host == "" || m.from == "" {
		return ErrNotConfigured
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := m.dialer.DialAndSend(newMessage(m.from, msg)); err != nil {
		m.log.Error("Failed to send email",
			zap.Error(err),
			zap.String("to", msg.To),
			zap.String("subject", msg.Subject),
		)
		return fmt.Errorf("send email to %s: %w", msg.To, err)
	}

	m.log.Info("Email sent", zap.String("to", msg.To), zap.String("subject", msg.Subject))
	return nil
}

func newMessage(from string, msg Message) *gomail.Message {
	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/plain", msg.Body)
	return m
}
