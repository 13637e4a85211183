package notify

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/hardwin/shopfloor/internal/config"
	"github.com/hardwin/shopfloor/internal/domain/models"
)

// Client posts daily digest notifications to an external webhook.
type Client interface {
	SendDigest(ctx context.Context, digest models.DailyDigest) error
}

// WebhookClient is a resty-backed implementation of Client.
type WebhookClient struct {
	httpClient *resty.Client
	webhookURL string
}

// NewClient builds a webhook client using the provided configuration values.
func NewClient(cfg config.NotifyConfig) *WebhookClient {
	restyClient := resty.New()
	restyClient.
		SetHeader("Content-Type", "application/json").
		SetTimeout(15 * time.Second)

	if cfg.AuthToken != "" {
		restyClient.SetHeader("Authorization", fmt.Sprintf("Bearer %s", cfg.AuthToken))
	}

	return &WebhookClient{
		httpClient: restyClient,
		webhookURL: cfg.WebhookURL,
	}
}

// webhookError represents an error payload returned by the receiving end.
type webhookError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// SendDigest posts the digest JSON to the configured webhook.
func (c *WebhookClient) SendDigest(ctx context.Context, digest models.DailyDigest) error {
	apiErr := new(webhookError)

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(digest).
		SetError(apiErr).
		Post(c.webhookURL)
	if err != nil {
		return fmt.Errorf("send digest notification: %w", err)
	}

	if resp.StatusCode() >= http.StatusBadRequest {
		message := apiErr.Message
		if message == "" {
			message = apiErr.Error
		}
		return fmt.Errorf("digest webhook error: status=%d, message=%s", resp.StatusCode(), message)
	}

	return nil
}
