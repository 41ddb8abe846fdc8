package smtpmail

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigValidate(t *testing.T) {
	cfg := Config{Host: "smtp.example.com", From: "hr@example.com"}
	require.NoError(t, cfg.Validate())
	assert.Equal(t, DefaultPort, cfg.Port)
	assert.Equal(t, TLSOpportunistic, cfg.TLSPolicy)
	assert.Equal(t, DefaultTimeout, cfg.Timeout)

	for name, bad := range map[string]Config{
		"no host": {From: "hr@example.com"},
		"no from": {Host: "smtp.example.com"},
		"bad tls": {Host: "smtp.example.com", From: "hr@example.com", TLSPolicy: "sometimes"},
	} {
		t.Run(name, func(t *testing.T) {
			assert.Error(t, bad.Validate())
		})
	}
}

func TestBuildMessage(t *testing.T) {
	c, err := New(Config{Host: "smtp.example.com", From: "hr@example.com"})
	require.NoError(t, err)

	m, err := c.build(Message{To: "ana@example.com", Subject: "Interview Invitation - SRE", Body: "Dear Ana,"})
	require.NoError(t, err)

	var buf bytes.Buffer
	_, err = m.WriteTo(&buf)
	require.NoError(t, err)
	raw := buf.String()
	assert.Contains(t, raw, "Subject: Interview Invitation - SRE")
	assert.Contains(t, raw, "hr@example.com")
	assert.Contains(t, raw, "ana@example.com")
	assert.Contains(t, raw, "Dear Ana,")

	_, err = c.build(Message{To: "not an address"})
	assert.Error(t, err)
}

func TestSendUnreachableRelay(t *testing.T) {
	c, err := New(Config{Host: "127.0.0.1", Port: 1, From: "hr@example.com", TLSPolicy: TLSNone, Timeout: time.Second})
	require.NoError(t, err)

	err = c.Send(context.Background(), Message{To: "ana@example.com", Subject: "s", Body: "b"})
	assert.ErrorContains(t, err, "smtpmail: send to ana@example.com")
}
