// Package notifier delivers password-reset codes by email.
package notifier

import (
	"fmt"

	"batalla/backend/internal/config"

	"gopkg.in/gomail.v2"
)

// SMTPNotifier sends reset codes through a plain SMTP server.
type SMTPNotifier struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTP builds a notifier from the SMTP settings. Returns nil when no host
// is configured, which switches the reset flow into its development mode.
func NewSMTP(cfg *config.Config) *SMTPNotifier {
	if cfg.SMTPHost == "" {
		return nil
	}
	return &SMTPNotifier{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
		from:   cfg.SMTPFrom,
	}
}

// Send mails the reset code to the recipient.
func (n *SMTPNotifier) Send(recipientEmail, code string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", n.from)
	m.SetHeader("To", recipientEmail)
	m.SetHeader("Subject", "Password reset code")
	m.SetBody("text/plain", fmt.Sprintf(
		"Your password reset code is %s.\n\nIt expires in 15 minutes. If you did not request a reset, ignore this message.", code))

	return n.dialer.DialAndSend(m)
}
