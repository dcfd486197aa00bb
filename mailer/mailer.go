// Package mailer wraps the outbound SMTP transport. Callers treat
// failures as non-fatal: a save that triggers a notification must
// succeed even when the send does not.
package mailer

import (
	"armust-news-cms/config"

	"gopkg.in/gomail.v2"
)

type Mailer interface {
	Send(subject, body, from string, to []string) error
}

type smtpMailer struct {
	dialer *gomail.Dialer
}

func NewSMTPMailer(cfg config.SMTPConfig) Mailer {
	return &smtpMailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
	}
}

func (m *smtpMailer) Send(subject, body, from string, to []string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", from)
	msg.SetHeader("To", to...)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	return m.dialer.DialAndSend(msg)
}
