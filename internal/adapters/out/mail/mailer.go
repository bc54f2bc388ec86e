// Package mail implements the credential mailer over SMTP.
package mail

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"logistics/internal/pkg/errs"
)

// SMTPMailer implements ports.Mailer using gomail. It sends the welcome
// email with the generated password when staff creates a customer account.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

// Config holds the SMTP connection settings.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// NewSMTPMailer creates a mailer from the SMTP configuration.
func NewSMTPMailer(cfg Config) (*SMTPMailer, error) {
	if cfg.Host == "" {
		return nil, errs.NewValueIsRequiredError("host")
	}
	if cfg.Port == 0 {
		return nil, errs.NewValueIsRequiredError("port")
	}
	if cfg.From == "" {
		return nil, errs.NewValueIsRequiredError("from")
	}

	return &SMTPMailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
	}, nil
}

// SendCustomerCredentials delivers the initial login credentials to a freshly
// created customer. The context deadline is honored by aborting before the
// dial when already expired; gomail itself does not take a context.
func (m *SMTPMailer) SendCustomerCredentials(ctx context.Context, toEmail, name, password string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if toEmail == "" {
		return errs.NewValueIsRequiredError("toEmail")
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", toEmail)
	msg.SetHeader("Subject", "Your account is ready")
	msg.SetBody("text/plain", fmt.Sprintf(
		"Hello %s,\n\n"+
			"An account has been created for you.\n\n"+
			"Email: %s\nTemporary password: %s\n\n"+
			"You will be asked to change this password on your first login.\n",
		name, toEmail, password,
	))

	return m.dialer.DialAndSend(msg)
}
