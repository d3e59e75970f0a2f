package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-portfolio/internal/config"
	"github.com/MKhiriev/go-portfolio/internal/logger"
	"github.com/MKhiriev/go-portfolio/models"
	"github.com/go-resty/resty/v2"
)

// EventContactReceived is the event name sent for new contact messages.
const EventContactReceived = "contact.received"

// webhookPayload is the JSON body posted to the webhook.
type webhookPayload struct {
	Event   string         `json:"event"`
	SentAt  time.Time      `json:"sentAt"`
	Contact models.Contact `json:"contact"`
}

type webhookNotifier struct {
	client *resty.Client
	url    string

	logger *logger.Logger
}

// NewWebhookNotifier constructs a [Notifier] that POSTs a JSON event to
// cfg.NotifyWebhookURL using cfg.RequestTimeout.
//
// Returns an error if the URL is empty or is not an absolute http(s) URL.
func NewWebhookNotifier(cfg config.Adapter, logger *logger.Logger) (Notifier, error) {
	webhookURL, err := normalizeWebhookURL(cfg.NotifyWebhookURL)
	if err != nil {
		return nil, err
	}

	client := resty.New().
		SetTimeout(cfg.RequestTimeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("User-Agent", "go-portfolio-notifier")

	return &webhookNotifier{client: client, url: webhookURL, logger: logger}, nil
}

// NewNotifier picks the webhook notifier when a URL is configured and the
// no-op notifier otherwise.
func NewNotifier(cfg config.Adapter, logger *logger.Logger) (Notifier, error) {
	if strings.TrimSpace(cfg.NotifyWebhookURL) == "" {
		logger.Info().Msg("webhook url is not set, contact notifications are disabled")
		return NewNopNotifier(), nil
	}
	return NewWebhookNotifier(cfg, logger)
}

func normalizeWebhookURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyWebhookURL
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidWebhookURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", fmt.Errorf("%w: address must include http(s) scheme and host", ErrInvalidWebhookURL)
	}

	return u.String(), nil
}

// ContactReceived implements [Notifier].
func (n *webhookNotifier) ContactReceived(ctx context.Context, contact models.Contact) error {
	log := logger.FromContext(ctx)

	resp, err := n.client.R().
		SetContext(ctx).
		SetBody(webhookPayload{
			Event:   EventContactReceived,
			SentAt:  time.Now().UTC(),
			Contact: contact,
		}).
		Post(n.url)
	if err != nil {
		log.Err(err).Str("func", "*webhookNotifier.ContactReceived").Msg("webhook request failed")
		return fmt.Errorf("webhook request: %w", err)
	}

	if err = mapHTTPError(resp); err != nil {
		log.Err(err).Str("func", "*webhookNotifier.ContactReceived").Int("status", resp.StatusCode()).Msg("webhook rejected notification")
		return err
	}

	return nil
}

type nopNotifier struct{}

// NewNopNotifier returns a [Notifier] that does nothing.
func NewNopNotifier() Notifier {
	return nopNotifier{}
}

func (nopNotifier) ContactReceived(context.Context, models.Contact) error {
	return nil
}
