package smtpmail

import (
	"errors"
	"time"
)

// TLS policies accepted in Config.TLSPolicy.
const (
	TLSMandatory     = "mandatory"
	TLSOpportunistic = "opportunistic"
	TLSNone          = "none"
)

const (
	DefaultPort    = 587
	DefaultTimeout = 15 * time.Second
)

// Config describes the relay. Username empty means no SMTP AUTH.
type Config struct {
	Host      string
	Port      int
	Username  string
	Password  string
	From      string
	TLSPolicy string
	Timeout   time.Duration
}

// Validate fills defaults and rejects a config that cannot send.
func (c *Config) Validate() error {
	if c.Host == "" {
		return errors.New("smtpmail: host is required")
	}
	if c.From == "" {
		return errors.New("smtpmail: from address is required")
	}
	if c.Port == 0 {
		c.Port = DefaultPort
	}
	if c.TLSPolicy == "" {
		c.TLSPolicy = TLSOpportunistic
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	switch c.TLSPolicy {
	case TLSMandatory, TLSOpportunistic, TLSNone:
		return nil
	default:
		return errors.New("smtpmail: unknown tls policy " + c.TLSPolicy)
	}
}

// Message is one plain-text email.
type Message struct {
	To      string
	Subject string
	Body    string
}
