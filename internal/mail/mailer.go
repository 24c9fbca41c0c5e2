// Package mail is the outbound email collaborator. Failures surface as
// errors the dispatcher catches and logs; nothing here retries.
package mail

import (
	"fmt"
	"mime/multipart"
	"net/smtp"
	"net/textproto"
	"strings"

	"github.com/google/uuid"

	"participium/backend/internal/config"
)

// Mailer sends one message and returns a provider message id.
type Mailer interface {
	Send(to, subject, html, text string) (string, error)
}

// SMTPMailer delivers through a plain SMTP relay.
type SMTPMailer struct {
	Host string
	Port string
	User string
	Pass string
	From string
}

// NewSMTPMailer builds a mailer from the process configuration.
func NewSMTPMailer(cfg config.Config) *SMTPMailer {
	return &SMTPMailer{
		Host: cfg.SMTPHost,
		Port: cfg.SMTPPort,
		User: cfg.SMTPUser,
		Pass: cfg.SMTPPass,
		From: cfg.MailFrom,
	}
}

// Send delivers a multipart/alternative message with a text and an HTML
// part.
func (m *SMTPMailer) Send(to, subject, html, text string) (string, error) {
	if m.Host == "" {
		return "", fmt.Errorf("smtp host not configured")
	}

	messageID := uuid.New().String()
	body, err := buildMessage(m.From, to, subject, messageID, html, text)
	if err != nil {
		return "", err
	}

	var auth smtp.Auth
	if m.User != "" {
		auth = smtp.PlainAuth("", m.User, m.Pass, m.Host)
	}
	addr := m.Host + ":" + m.Port
	if err := smtp.SendMail(addr, auth, m.From, []string{to}, body); err != nil {
		return "", fmt.Errorf("smtp send to %s: %w", to, err)
	}
	return messageID, nil
}

func buildMessage(from, to, subject, messageID, html, text string) ([]byte, error) {
	var b strings.Builder
	var parts strings.Builder
	w := multipart.NewWriter(&parts)

	textPart, err := w.CreatePart(textproto.MIMEHeader{"Content-Type": {"text/plain; charset=utf-8"}})
	if err != nil {
		return nil, err
	}
	if _, err := textPart.Write([]byte(text)); err != nil {
		return nil, err
	}
	htmlPart, err := w.CreatePart(textproto.MIMEHeader{"Content-Type": {"text/html; charset=utf-8"}})
	if err != nil {
		return nil, err
	}
	if _, err := htmlPart.Write([]byte(html)); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", to)
	fmt.Fprintf(&b, "Subject: %s\r\n", subject)
	fmt.Fprintf(&b, "Message-ID: <%s>\r\n", messageID)
	b.WriteString("MIME-Version: 1.0\r\n")
	fmt.Fprintf(&b, "Content-Type: multipart/alternative; boundary=%s\r\n", w.Boundary())
	b.WriteString("\r\n")
	b.WriteString(parts.String())
	return []byte(b.String()), nil
}
