package capability

import (
	"context"

	"hiring-orchestrator/pkg/log"
	"hiring-orchestrator/pkg/smtpmail"
)

type logMailer struct {
	l log.Logger
}

// NewLogMailer returns a Mailer that only logs what it would send.
func NewLogMailer(l log.Logger) Mailer {
	return &logMailer{l: l}
}

func (m *logMailer) Send(ctx context.Context, email Email) error {
	m.l.Infof(ctx, "%s: to=%s subject=%q body=%q", LogPrefixMailer, email.To, email.Subject, truncateRunes(email.Body, mailerPreviewChars))
	return nil
}

// SMTPSender delivers one message. *smtpmail.Client satisfies it.
type SMTPSender interface {
	Send(ctx context.Context, msg smtpmail.Message) error
}

var _ SMTPSender = (*smtpmail.Client)(nil)

type smtpMailer struct {
	l      log.Logger
	sender SMTPSender
}

// NewSMTPMailer returns a Mailer that delivers through sender.
func NewSMTPMailer(l log.Logger, sender SMTPSender) Mailer {
	return &smtpMailer{l: l, sender: sender}
}

func (m *smtpMailer) Send(ctx context.Context, email Email) error {
	if err := m.sender.Send(ctx, smtpmail.Message{To: email.To, Subject: email.Subject, Body: email.Body}); err != nil {
		m.l.Errorf(ctx, "%s: %s to %s: %v", LogPrefixSMTPMailer, email.Template, email.To, err)
		return err
	}
	m.l.Infof(ctx, "%s: %s delivered to %s", LogPrefixSMTPMailer, email.Template, email.To)
	return nil
}
