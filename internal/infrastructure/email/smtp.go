// Package email delivers announcement distributions over SMTP.
package email

import (
	"context"
	"errors"
	"fmt"
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"gopkg.in/gomail.v2"

	"campus/internal/shared/config"
	"campus/internal/shared/logger"
)

var ErrEmailServiceNotConfigured = errors.New("email service not configured")

// sender is the part of gomail.Dialer the mailer uses.
type sender interface {
	DialAndSend(m ...*gomail.Message) error
}

type SMTPMailer struct {
	config config.EmailConfig
	sender sender
	text   *bluemonday.Policy
	logger logger.Interface
}

// NewSMTPMailer returns a mailer that refuses to send when no SMTP host is
// configured.
func NewSMTPMailer(cfg config.EmailConfig, log logger.Interface) *SMTPMailer {
	var s sender
	if cfg.SMTPHost != "" {
		s = gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword)
	}
	return &SMTPMailer{
		config: cfg,
		sender: s,
		text:   bluemonday.StrictPolicy(),
		logger: log.Named("email"),
	}
}

func (s *SMTPMailer) Send(ctx context.Context, to, subject, htmlBody string) error {
	if s.sender == nil {
		s.logger.Warnw("email service not configured, cannot send", "to", to)
		return ErrEmailServiceNotConfigured
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	m := gomail.NewMessage()
	if s.config.FromName != "" {
		m.SetAddressHeader("From", s.config.FromAddress, s.config.FromName)
	} else {
		m.SetHeader("From", s.config.FromAddress)
	}
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", s.plainText(htmlBody))
	m.AddAlternative("text/html", wrapHTML(subject, htmlBody))

	if err := s.sender.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	s.logger.Debugw("email sent", "to", to, "subject", subject)
	return nil
}

func (s *SMTPMailer) plainText(htmlBody string) string {
	return strings.TrimSpace(html.UnescapeString(s.text.Sanitize(htmlBody)))
}

func wrapHTML(subject, body string) string {
	return fmt.Sprintf(`<html>
<body>
<h2>%s</h2>
%s
</body>
</html>`, html.EscapeString(subject), body)
}
