// Package mail delivers magic-link emails.
package mail

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	gomail "github.com/wneessen/go-mail"

	"github.com/dtroode/statementbox/internal/logger"
	"github.com/dtroode/statementbox/internal/model"
)

// sender is the part of *gomail.Client used here.
type sender interface {
	DialAndSendWithContext(ctx context.Context, messages ...*gomail.Msg) error
}

// SMTPConfig contains SMTP connection parameters.
type SMTPConfig struct {
	Host       string
	Port       int
	Username   string
	Password   string
	From       string
	Timeout    time.Duration
	MaxRetries uint64
}

// SMTP sends magic links through an SMTP relay.
type SMTP struct {
	client     sender
	from       string
	timeout    time.Duration
	maxRetries uint64
	newBackOff func() backoff.BackOff
	logger     *logger.Logger
}

var _ model.Mailer = (*SMTP)(nil)

// NewSMTP creates an SMTP mailer.
func NewSMTP(cfg SMTPConfig, logger *logger.Logger) (*SMTP, error) {
	opts := []gomail.Option{
		gomail.WithPort(cfg.Port),
		gomail.WithTimeout(cfg.Timeout),
		gomail.WithTLSPortPolicy(gomail.TLSOpportunistic),
	}
	if cfg.Username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(cfg.Username),
			gomail.WithPassword(cfg.Password),
		)
	}

	client, err := gomail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create smtp client: %w", err)
	}

	return newSMTP(client, cfg, logger), nil
}

func newSMTP(client sender, cfg SMTPConfig, logger *logger.Logger) *SMTP {
	return &SMTP{
		client:     client,
		from:       cfg.From,
		timeout:    cfg.Timeout,
		maxRetries: cfg.MaxRetries,
		newBackOff: func() backoff.BackOff { return backoff.NewExponentialBackOff() },
		logger:     logger,
	}
}

// SendMagicLink renders and sends one magic-link email, retrying transient failures.
func (s *SMTP) SendMagicLink(ctx context.Context, link model.MagicLinkMessage) error {
	content, err := render(link)
	if err != nil {
		return err
	}

	msg := gomail.NewMsg()
	if err := msg.From(s.from); err != nil {
		return fmt.Errorf("invalid sender address: %w", err)
	}
	if err := msg.To(link.To); err != nil {
		return fmt.Errorf("invalid recipient address: %w", err)
	}
	msg.Subject(content.Subject)
	msg.SetBodyString(gomail.TypeTextPlain, content.Text)
	msg.AddAlternativeString(gomail.TypeTextHTML, content.HTML)

	b := backoff.WithContext(backoff.WithMaxRetries(s.newBackOff(), s.maxRetries), ctx)
	attempt := 0
	err = backoff.Retry(func() error {
		attempt++
		callCtx := ctx
		if s.timeout > 0 {
			var cancel context.CancelFunc
			callCtx, cancel = context.WithTimeout(ctx, s.timeout)
			defer cancel()
		}
		sendErr := s.client.DialAndSendWithContext(callCtx, msg)
		if sendErr != nil {
			s.logger.Warn("Mailer: send attempt failed",
				"attempt", attempt,
				"error", sendErr.Error())
		}
		return sendErr
	}, b)
	if err != nil {
		return fmt.Errorf("failed to send magic link: %w", err)
	}

	return nil
}

// LogOnly is used when no SMTP relay is configured. It records that a link
// was requested without delivering it.
type LogOnly struct {
	logger *logger.Logger
}

var _ model.Mailer = (*LogOnly)(nil)

// NewLogOnly creates a mailer that only logs.
func NewLogOnly(logger *logger.Logger) *LogOnly {
	return &LogOnly{logger: logger}
}

func (m *LogOnly) SendMagicLink(_ context.Context, msg model.MagicLinkMessage) error {
	m.logger.Info("Mailer: smtp disabled, magic link not delivered",
		"to", msg.To,
		"purpose", msg.Purpose,
		"session_id", msg.SessionID)
	return nil
}
