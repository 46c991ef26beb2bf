package notify

import (
	"context"
	"strings"
	"testing"

	"github.com/jmanning1991/reddit-stock-sentiment-bot/internal/config"
)

func TestBuildMessage(t *testing.T) {
	msg := string(BuildMessage(
		"bot@example.com",
		[]string{"a@example.com", "b@example.com"},
		"[Positive] XYZ mentioned in r/test",
		"Title: XYZ Corp beats earnings",
	))

	wantHeaders := []string{
		"From: bot@example.com\r\n",
		"To: a@example.com, b@example.com\r\n",
		"Subject: [Positive] XYZ mentioned in r/test\r\n",
		"Content-Type: text/plain; charset=UTF-8\r\n",
	}
	for _, h := range wantHeaders {
		if !strings.Contains(msg, h) {
			t.Errorf("message missing header %q:\n%s", h, msg)
		}
	}
	if !strings.HasSuffix(msg, "\r\n\r\nTitle: XYZ Corp beats earnings") {
		t.Errorf("body must follow a blank line:\n%s", msg)
	}
}

func TestEmailNotifierDisabled(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.EmailConfig
	}{
		{"disabled flag", config.EmailConfig{Enabled: false, SMTPHost: "h", From: "f", Recipients: []string{"r"}}},
		{"no recipients", config.EmailConfig{Enabled: true, SMTPHost: "h", From: "f"}},
		{"no from", config.EmailConfig{Enabled: true, SMTPHost: "h", Recipients: []string{"r"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := NewEmailNotifier(tt.cfg, "pass")
			// A disabled notifier is a silent no-op, never an error.
			if err := n.Send(context.Background(), "subject", "body"); err != nil {
				t.Errorf("disabled Send returned %v", err)
			}
		})
	}
}

func TestEmailNotifierRecipientsAreFixed(t *testing.T) {
	cfg := config.EmailConfig{
		Enabled:    true,
		SMTPHost:   "smtp.gmail.com",
		SMTPPort:   465,
		From:       "bot@example.com",
		Recipients: []string{"a@example.com"},
	}
	n := NewEmailNotifier(cfg, "pass")

	got := n.Recipients()
	if len(got) != 1 || got[0] != "a@example.com" {
		t.Errorf("Recipients() = %v", got)
	}
}
