// Package smtpmail sends plain-text email through an SMTP relay.
package smtpmail

import (
	"context"
	"fmt"

	"github.com/wneessen/go-mail"
)

type Client struct {
	cfg  Config
	opts []mail.Option
}

// New validates cfg. No connection is made until Send.
func New(cfg Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	opts := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithTimeout(cfg.Timeout),
		mail.WithTLSPortPolicy(tlsPolicy(cfg.TLSPolicy)),
	}
	if cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}
	return &Client{cfg: cfg, opts: opts}, nil
}

// From returns the sender address.
func (c *Client) From() string {
	return c.cfg.From
}

// Send dials the relay, delivers msg and closes the connection.
func (c *Client) Send(ctx context.Context, msg Message) error {
	m, err := c.build(msg)
	if err != nil {
		return err
	}
	client, err := mail.NewClient(c.cfg.Host, c.opts...)
	if err != nil {
		return fmt.Errorf("smtpmail: client: %w", err)
	}
	if err := client.DialAndSendWithContext(ctx, m); err != nil {
		return fmt.Errorf("smtpmail: send to %s: %w", msg.To, err)
	}
	return nil
}

func (c *Client) build(msg Message) (*mail.Msg, error) {
	m := mail.NewMsg()
	if err := m.From(c.cfg.From); err != nil {
		return nil, fmt.Errorf("smtpmail: from %q: %w", c.cfg.From, err)
	}
	if err := m.To(msg.To); err != nil {
		return nil, fmt.Errorf("smtpmail: to %q: %w", msg.To, err)
	}
	m.Subject(msg.Subject)
	m.SetBodyString(mail.TypeTextPlain, msg.Body)
	return m, nil
}

func tlsPolicy(p string) mail.TLSPolicy {
	switch p {
	case TLSMandatory:
		return mail.TLSMandatory
	case TLSNone:
		return mail.NoTLS
	default:
		return mail.TLSOpportunistic
	}
}
