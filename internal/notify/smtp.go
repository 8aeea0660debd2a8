package notify

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	mail "github.com/wneessen/go-mail"

	"goodheart/internal/infra"
)

// SMTPMailer delivers notifications through an SMTP relay. The client is
// constructed once at startup and reused; each send dials, delivers and
// releases the connection.
type SMTPMailer struct {
	client *mail.Client
	from   string
	logger zerolog.Logger
}

// NewSMTPMailer builds the transport from config and fails fast when the
// relay settings are incomplete.
func NewSMTPMailer(cfg *infra.Config, logger zerolog.Logger) (*SMTPMailer, error) {
	if cfg.SMTPHost == "" {
		return nil, errors.New("smtp: SMTP_HOST is required")
	}
	if cfg.EmailFrom == "" {
		return nil, errors.New("smtp: EMAIL_FROM is required")
	}

	opts := []mail.Option{
		mail.WithPort(cfg.SMTPPort),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	}
	if cfg.SMTPUser != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.SMTPUser),
			mail.WithPassword(cfg.SMTPPass),
		)
	}

	client, err := mail.NewClient(cfg.SMTPHost, opts...)
	if err != nil {
		return nil, fmt.Errorf("smtp: configure client: %w", err)
	}

	return &SMTPMailer{client: client, from: cfg.EmailFrom, logger: logger}, nil
}

// Verify dials the relay without sending anything. Used by cmd/mailcheck.
func (m *SMTPMailer) Verify(ctx context.Context) error {
	if err := m.client.DialWithContext(ctx); err != nil {
		return fmt.Errorf("smtp: dial: %w", err)
	}
	return m.client.Close()
}

func (m *SMTPMailer) Send(ctx context.Context, msg Message) Result {
	mm := mail.NewMsg()
	if err := mm.From(m.from); err != nil {
		return m.failure(msg, fmt.Errorf("invalid sender %q: %w", m.from, err))
	}
	if err := mm.AddToFormat(msg.ToName, msg.To); err != nil {
		return m.failure(msg, fmt.Errorf("invalid recipient %q: %w", msg.To, err))
	}
	mm.Subject(msg.Subject)
	mm.SetBodyString(mail.TypeTextHTML, msg.HTML)

	if err := m.client.DialAndSendWithContext(ctx, mm); err != nil {
		return m.failure(msg, err)
	}
	m.logger.Info().Str("to", msg.To).Str("subject", msg.Subject).Msg("mail: sent via smtp")
	return Result{Success: true, Message: "email sent"}
}

func (m *SMTPMailer) failure(msg Message, err error) Result {
	m.logger.Error().Err(err).Str("to", msg.To).Msg("mail: smtp delivery failed")
	return Result{Success: false, Message: "failed to send email"}
}
