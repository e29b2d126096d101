package notifier

//go:generate go run go.uber.org/mock/mockgen -source=./sender.go -destination=./mocks/sender_mock.go -package=mocks

import (
	"classbook/config"
	"fmt"
	"net"
	"net/smtp"
)

// Sender delivers a rendered mail to a single recipient.
type Sender interface {
	Send(to, subject, body string) error
}

type smtpSender struct {
	cfg *config.Config
}

func NewSender(cfg *config.Config) Sender {
	return &smtpSender{cfg: cfg}
}

func (s *smtpSender) Send(to, subject, body string) error {
	smtpCfg := s.cfg.SMTP
	addr := net.JoinHostPort(smtpCfg.Host, smtpCfg.Port)

	msg := fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=\"UTF-8\"\r\n\r\n%s",
		smtpCfg.From, to, subject, body,
	)

	auth := smtp.PlainAuth("", smtpCfg.Username, smtpCfg.Password, smtpCfg.Host)

	if err := smtp.SendMail(addr, auth, smtpCfg.From, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("failed to send mail: %w", err)
	}

	return nil
}
