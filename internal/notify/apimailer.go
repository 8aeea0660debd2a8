package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"goodheart/internal/infra"
)

const apiMailerDefaultTimeout = 15 * time.Second

// APIMailer delivers notifications through a transactional-email HTTP API.
// The endpoint is expected to accept POST {baseURL}/messages with a bearer
// key and return 2xx on acceptance.
type APIMailer struct {
	baseURL string
	apiKey  string
	from    string
	client  *http.Client
	logger  zerolog.Logger
}

type apiMailRequest struct {
	From    string `json:"from"`
	To      string `json:"to"`
	ToName  string `json:"to_name,omitempty"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
}

type apiMailResponse struct {
	ID    string `json:"id"`
	Error string `json:"error"`
}

func NewAPIMailer(cfg *infra.Config, logger zerolog.Logger) (*APIMailer, error) {
	if strings.TrimSpace(cfg.EmailAPIBaseURL) == "" {
		return nil, errors.New("apimail: EMAIL_API_BASE_URL is required")
	}
	if strings.TrimSpace(cfg.EmailAPIKey) == "" {
		return nil, errors.New("apimail: EMAIL_API_KEY is required")
	}
	if cfg.EmailFrom == "" {
		return nil, errors.New("apimail: EMAIL_FROM is required")
	}
	return &APIMailer{
		baseURL: strings.TrimRight(cfg.EmailAPIBaseURL, "/"),
		apiKey:  cfg.EmailAPIKey,
		from:    cfg.EmailFrom,
		client:  &http.Client{Timeout: apiMailerDefaultTimeout},
		logger:  logger,
	}, nil
}

func (m *APIMailer) Send(ctx context.Context, msg Message) Result {
	payload, err := json.Marshal(apiMailRequest{
		From:    m.from,
		To:      msg.To,
		ToName:  msg.ToName,
		Subject: msg.Subject,
		HTML:    msg.HTML,
	})
	if err != nil {
		return m.failure(msg, fmt.Errorf("encode request: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.baseURL+"/messages", bytes.NewReader(payload))
	if err != nil {
		return m.failure(msg, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+m.apiKey)

	resp, err := m.client.Do(req)
	if err != nil {
		return m.failure(msg, err)
	}
	defer resp.Body.Close()

	var decoded apiMailResponse
	_ = json.NewDecoder(resp.Body).Decode(&decoded)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail := decoded.Error
		if detail == "" {
			detail = resp.Status
		}
		return m.failure(msg, fmt.Errorf("provider rejected message: %s", detail))
	}

	m.logger.Info().Str("to", msg.To).Str("provider_id", decoded.ID).Msg("mail: sent via api")
	return Result{Success: true, Message: "email sent"}
}

func (m *APIMailer) failure(msg Message, err error) Result {
	m.logger.Error().Err(err).Str("to", msg.To).Msg("mail: api delivery failed")
	return Result{Success: false, Message: "failed to send email"}
}
