package utils

import (
	"fmt"
	"log"
	"net/smtp"
	"os"
	"strings"
)

// SMTPMailer sends plain-text mail through the SMTP server configured via
// environment variables. When the SMTP settings are missing the mailer
// logs the message instead of failing, so local setups work without an
// email account.
type SMTPMailer struct {
	Host     string
	Port     string
	Username string
	Password string
	FromName string
}

func NewSMTPMailerFromEnv() *SMTPMailer {
	return &SMTPMailer{
		Host:     os.Getenv("SMTP_HOST"),
		Port:     os.Getenv("SMTP_PORT"),
		Username: os.Getenv("SMTP_USERNAME"),
		Password: os.Getenv("SMTP_PASSWORD"),
		FromName: os.Getenv("SMTP_FROM_NAME"),
	}
}

func (m *SMTPMailer) configured() bool {
	return m.Host != "" && m.Port != "" && m.Username != "" && m.Password != ""
}

func sanitizeHeader(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "\r", " ")
	return strings.ReplaceAll(s, "\n", " ")
}

func (m *SMTPMailer) Send(to, subject, body string) error {
	if !m.configured() {
		log.Printf("[MOCK EMAIL] to:%s subject:%q", to, subject)
		return nil
	}

	to = sanitizeHeader(to)
	subject = sanitizeHeader(subject)

	from := m.Username
	if m.FromName != "" {
		from = fmt.Sprintf("%s <%s>", sanitizeHeader(m.FromName), m.Username)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("From: %s\r\n", from))
	sb.WriteString(fmt.Sprintf("To: %s\r\n", to))
	sb.WriteString(fmt.Sprintf("Subject: %s\r\n", subject))
	sb.WriteString("MIME-Version: 1.0\r\n")
	sb.WriteString("Content-Type: text/plain; charset=utf-8\r\n\r\n")
	sb.WriteString(body)
	sb.WriteString("\r\n")

	auth := smtp.PlainAuth("", m.Username, m.Password, m.Host)
	addr := fmt.Sprintf("%s:%s", m.Host, m.Port)

	if err := smtp.SendMail(addr, auth, m.Username, []string{to}, []byte(sb.String())); err != nil {
		return fmt.Errorf("send mail to %s: %w", to, err)
	}
	return nil
}
