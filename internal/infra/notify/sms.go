// Package notify holds the outbound SMS transports. The HTTP gateway speaks
// the Kavenegar-style send endpoint; the noop gateway only logs and exists so
// local and test environments never reach a real provider.
package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"nobat/internal/pkg/config"
	"nobat/internal/pkg/errs"
)

type HTTPGateway struct {
	baseURL string
	apiKey  string
	sender  string
	client  *http.Client
	logger  *slog.Logger
}

func NewHTTPGateway(cfg config.SMSConfig, logger *slog.Logger) *HTTPGateway {
	return &HTTPGateway{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		sender:  cfg.Sender,
		client:  &http.Client{Timeout: cfg.Timeout},
		logger:  logger,
	}
}

type sendResponse struct {
	Return struct {
		Status  int    `json:"status"`
		Message string `json:"message"`
	} `json:"return"`
}

func (g *HTTPGateway) Send(ctx context.Context, recipientPhone, content string) error {
	form := url.Values{
		"receptor": {recipientPhone},
		"message":  {content},
	}
	if g.sender != "" {
		form.Set("sender", g.sender)
	}

	endpoint := fmt.Sprintf("%s/%s/sms/send.json", g.baseURL, g.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return errs.Wrap(err, "build sms request")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := g.client.Do(req)
	if err != nil {
		return errs.Wrap(err, "send sms request")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errs.Newf("sms provider returned status %d", resp.StatusCode)
	}

	var body sendResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return errs.Wrap(err, "decode sms response")
	}
	if body.Return.Status != http.StatusOK {
		return errs.Newf("sms provider rejected message: %d %s", body.Return.Status, body.Return.Message)
	}

	g.logger.Debug("sms dispatched", "recipient", recipientPhone)
	return nil
}

// NoopGateway accepts every message without sending anything.
type NoopGateway struct {
	logger *slog.Logger
}

func NewNoopGateway(logger *slog.Logger) *NoopGateway {
	return &NoopGateway{logger: logger}
}

func (g *NoopGateway) Send(_ context.Context, recipientPhone, content string) error {
	g.logger.Info("sms suppressed (no provider configured)",
		"recipient", recipientPhone, "length", len(content))
	return nil
}
