package notify

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"goodheart/internal/infra"
)

// Result is the outcome of one notification attempt. Transport failures are
// converted into a failed Result and never raised to the caller; the
// dispatcher logs them and moves on.
type Result struct {
	Success bool
	Message string
}

// Message is a rendered notification ready for a transport.
type Message struct {
	To      string
	ToName  string
	Subject string
	HTML    string
}

// Mailer is the notification transport capability. Implementations must be
// safe for concurrent use and must honor the context deadline.
type Mailer interface {
	Send(ctx context.Context, msg Message) Result
}

// NewMailerFromConfig selects the configured transport: "smtp" sends through
// an SMTP relay, "api" through a transactional-email HTTP API, "log" only
// writes to the logger.
func NewMailerFromConfig(cfg *infra.Config, logger zerolog.Logger) (Mailer, error) {
	switch cfg.EmailProvider {
	case "smtp":
		return NewSMTPMailer(cfg, logger)
	case "api":
		return NewAPIMailer(cfg, logger)
	case "log":
		return NewLogMailer(logger), nil
	default:
		return nil, fmt.Errorf("unknown email provider %q", cfg.EmailProvider)
	}
}

// LogMailer records messages in the log instead of delivering them.
type LogMailer struct {
	logger zerolog.Logger
}

func NewLogMailer(logger zerolog.Logger) *LogMailer {
	return &LogMailer{logger: logger}
}

func (m *LogMailer) Send(ctx context.Context, msg Message) Result {
	m.logger.Info().
		Str("to", msg.To).
		Str("subject", msg.Subject).
		Msg("mail: delivery skipped (log transport)")
	return Result{Success: true, Message: "logged only"}
}
