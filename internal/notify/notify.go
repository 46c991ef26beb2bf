// Package notify delivers alert emails for qualifying events.
package notify

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/jmanning1991/reddit-stock-sentiment-bot/internal/config"
	boterrors "github.com/jmanning1991/reddit-stock-sentiment-bot/internal/errors"
)

// Notifier sends one alert to the fixed recipient list. A failed send is
// logged by the caller and dropped; there is no retry or queueing.
type Notifier interface {
	Send(ctx context.Context, subject, body string) error
	Recipients() []string
}

// EmailNotifier implements Notifier over authenticated SMTP.
type EmailNotifier struct {
	smtpHost   string
	smtpPort   int
	from       string
	password   string
	recipients []string
	enabled    bool
}

// NewEmailNotifier creates an EmailNotifier. The app password comes from
// the environment, everything else from the email config section.
func NewEmailNotifier(cfg config.EmailConfig, appPassword string) *EmailNotifier {
	return &EmailNotifier{
		smtpHost:   cfg.SMTPHost,
		smtpPort:   cfg.SMTPPort,
		from:       cfg.From,
		password:   appPassword,
		recipients: cfg.Recipients,
		enabled:    cfg.Enabled && cfg.SMTPHost != "" && cfg.From != "" && len(cfg.Recipients) > 0,
	}
}

// Recipients returns the configured recipient list.
func (e *EmailNotifier) Recipients() []string {
	return e.recipients
}

// Send delivers a plain-text UTF-8 email. Port 465 uses implicit TLS;
// other ports go through STARTTLS via smtp.SendMail.
func (e *EmailNotifier) Send(ctx context.Context, subject, body string) error {
	if !e.enabled {
		return nil
	}

	msg := BuildMessage(e.from, e.recipients, subject, body)
	addr := fmt.Sprintf("%s:%d", e.smtpHost, e.smtpPort)
	auth := smtp.PlainAuth("", e.from, e.password, e.smtpHost)

	var err error
	if e.smtpPort == 465 {
		err = e.sendWithTLS(addr, auth, msg)
	} else {
		err = smtp.SendMail(addr, auth, e.from, e.recipients, msg)
	}
	if err != nil {
		return boterrors.NewDeliveryError("email", err)
	}
	return nil
}

// sendWithTLS sends email using implicit TLS (port 465).
func (e *EmailNotifier) sendWithTLS(addr string, auth smtp.Auth, msg []byte) error {
	tlsConfig := &tls.Config{
		ServerName: e.smtpHost,
	}

	conn, err := tls.Dial("tcp", addr, tlsConfig)
	if err != nil {
		return fmt.Errorf("TLS dial failed: %w", err)
	}
	defer conn.Close()

	client, err := smtp.NewClient(conn, e.smtpHost)
	if err != nil {
		return fmt.Errorf("creating SMTP client: %w", err)
	}
	defer client.Close()

	if err := client.Auth(auth); err != nil {
		return fmt.Errorf("SMTP auth failed: %w", err)
	}
	if err := client.Mail(e.from); err != nil {
		return fmt.Errorf("MAIL FROM failed: %w", err)
	}
	for _, rcpt := range e.recipients {
		if err := client.Rcpt(rcpt); err != nil {
			return fmt.Errorf("RCPT TO %s failed: %w", rcpt, err)
		}
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("DATA failed: %w", err)
	}
	if _, err := w.Write(msg); err != nil {
		return fmt.Errorf("writing message body: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("closing message body: %w", err)
	}

	return client.Quit()
}

// BuildMessage assembles the raw RFC 5322 message bytes.
func BuildMessage(from string, to []string, subject, body string) []byte {
	msg := fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nContent-Type: text/plain; charset=UTF-8\r\n\r\n%s",
		from, strings.Join(to, ", "), subject, body,
	)
	return []byte(msg)
}
