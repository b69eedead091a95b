package services

import (
	"fmt"
	"net/smtp"

	"github.com/haojie/dochub-api/internal/config"
)

// Mailer sends emails.
type Mailer interface {
	SendVerificationCode(to, code string) error
}

type smtpMailer struct {
	host     string
	port     string
	from     string
	username string
	password string
}

// NewMailer creates an SMTP-backed Mailer from the config.
func NewMailer(cfg *config.Config) Mailer {
	return &smtpMailer{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		from:     cfg.SMTPFrom,
		username: cfg.SMTPUser,
		password: cfg.SMTPPassword,
	}
}

func (m *smtpMailer) SendVerificationCode(to, code string) error {
	subject := "Your registration verification code"
	body := fmt.Sprintf(
		"Thanks for signing up!\r\n\r\n"+
			"Your verification code is: %s\r\n\r\n"+
			"The code expires in 5 minutes, please complete your registration soon.\r\n\r\n"+
			"If this wasn't you, you can safely ignore this email.\r\n",
		code,
	)
	return m.send(to, subject, body)
}

func (m *smtpMailer) send(to, subject, body string) error {
	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s", m.from, to, subject, body)
	addr := fmt.Sprintf("%s:%s", m.host, m.port)

	var auth smtp.Auth
	if m.username != "" {
		auth = smtp.PlainAuth("", m.username, m.password, m.host)
	}

	return smtp.SendMail(addr, auth, m.from, []string{to}, []byte(msg))
}
