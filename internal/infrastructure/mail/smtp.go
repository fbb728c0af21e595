// Package mail implements the outbound notification relay for contact-form
// submissions: an SMTP sender plus a bounded async notifier in front of it.
package mail

import (
	"context"
	"fmt"
	"strings"

	"gopkg.in/gomail.v2"

	"github.com/securecargo/website-api/internal/api/metrics"
	"github.com/securecargo/website-api/internal/core/domain"
)

// Config captures the SMTP settings for the notification relay. The relay is
// considered enabled only when Host, Username and Password are all set.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	To       string
}

// Enabled reports whether enough configuration is present to send mail.
func (c Config) Enabled() bool {
	return c.Host != "" && c.Username != "" && c.Password != ""
}

// SMTPMailer sends one notification email per stored submission.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
	to     string
}

func NewSMTPMailer(cfg Config) *SMTPMailer {
	from := cfg.From
	if from == "" {
		from = cfg.Username
	}
	to := cfg.To
	if to == "" {
		to = cfg.Username
	}
	return &SMTPMailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   from,
		to:     to,
	}
}

// Send formats the sanitized submission as HTML and delivers it.
func (m *SMTPMailer) Send(_ context.Context, sub *domain.ContactSubmission) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", m.to)
	msg.SetHeader("Subject", "New Contact Form Submission from "+sub.Name)
	msg.SetBody("text/html", body(sub))

	if err := m.dialer.DialAndSend(msg); err != nil {
		metrics.MailRelayTotal.WithLabelValues("error").Inc()
		return fmt.Errorf("send contact email: %w", err)
	}

	metrics.MailRelayTotal.WithLabelValues("ok").Inc()
	return nil
}

func body(sub *domain.ContactSubmission) string {
	return fmt.Sprintf(`<h2>New Contact Form Submission</h2>
<p><strong>Name:</strong> %s</p>
<p><strong>Email:</strong> %s</p>
<p><strong>Phone:</strong> %s</p>
<p><strong>Message:</strong></p>
<p>%s</p>
<hr>
<p><small>Received at: %s</small></p>`,
		sub.Name,
		sub.Email,
		sub.Phone,
		strings.ReplaceAll(sub.Message, "\n", "<br>"),
		sub.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	)
}
