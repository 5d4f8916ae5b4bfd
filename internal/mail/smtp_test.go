package mail

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomail "github.com/wneessen/go-mail"

	"github.com/dtroode/statementbox/internal/model"
	"github.com/dtroode/statementbox/internal/testutil"
)

type fakeSender struct {
	errs  []error
	calls int
	sent  []*gomail.Msg
}

func (f *fakeSender) DialAndSendWithContext(_ context.Context, messages ...*gomail.Msg) error {
	f.calls++
	f.sent = append(f.sent, messages...)
	if f.calls-1 < len(f.errs) {
		return f.errs[f.calls-1]
	}
	return nil
}

func newTestSMTP(s sender, retries uint64) *SMTP {
	m := newSMTP(s, SMTPConfig{From: "no-reply@example.com", MaxRetries: retries, Timeout: time.Second}, testutil.MakeNoopLogger())
	m.newBackOff = func() backoff.BackOff { return &backoff.ZeroBackOff{} }
	return m
}

func TestSMTP_SendMagicLink(t *testing.T) {
	s := &fakeSender{}
	m := newTestSMTP(s, 2)

	err := m.SendMagicLink(context.Background(), model.MagicLinkMessage{
		To:        "user@example.com",
		Purpose:   model.PurposeContinueSession,
		SessionID: "ABCDEFGH",
		Link:      "http://app/auth/verify?token=t",
		ExpiresIn: 15 * time.Minute,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, s.calls)
	require.Len(t, s.sent, 1)
}

func TestSMTP_SendMagicLink_RetriesThenFails(t *testing.T) {
	boom := errors.New("connection reset")
	s := &fakeSender{errs: []error{boom, boom, boom}}
	m := newTestSMTP(s, 2)

	err := m.SendMagicLink(context.Background(), model.MagicLinkMessage{To: "user@example.com", Link: "l"})
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 3, s.calls)
}

func TestSMTP_SendMagicLink_RecoversAfterRetry(t *testing.T) {
	s := &fakeSender{errs: []error{errors.New("timeout")}}
	m := newTestSMTP(s, 2)

	err := m.SendMagicLink(context.Background(), model.MagicLinkMessage{To: "user@example.com", Link: "l"})
	require.NoError(t, err)
	assert.Equal(t, 2, s.calls)
}

func TestSMTP_SendMagicLink_InvalidRecipient(t *testing.T) {
	s := &fakeSender{}
	m := newTestSMTP(s, 0)

	err := m.SendMagicLink(context.Background(), model.MagicLinkMessage{To: "not an address", Link: "l"})
	assert.Error(t, err)
	assert.Equal(t, 0, s.calls)
}

func TestRender(t *testing.T) {
	c, err := render(model.MagicLinkMessage{
		Purpose:   model.PurposeContinueSession,
		SessionID: "ABCDEFGH",
		Link:      "http://app/auth/verify?token=t&x=1",
		ExpiresIn: 15 * time.Minute,
	})
	require.NoError(t, err)
	assert.Equal(t, "Continue session ABCDEFGH", c.Subject)
	assert.Contains(t, c.Text, "http://app/auth/verify?token=t&x=1")
	assert.Contains(t, c.Text, "15 minutes")
	assert.Contains(t, c.HTML, "token=t&amp;x=1")

	c, err = render(model.MagicLinkMessage{Purpose: model.PurposeFindSessions, Link: "l", ExpiresIn: time.Hour})
	require.NoError(t, err)
	assert.Equal(t, "Your sign-in link", c.Subject)
	assert.Contains(t, c.Text, "active upload sessions")
}

func TestLogOnly(t *testing.T) {
	m := NewLogOnly(testutil.MakeNoopLogger())
	assert.NoError(t, m.SendMagicLink(context.Background(), model.MagicLinkMessage{To: "a@example.com"}))
}
