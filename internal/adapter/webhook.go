package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/dental-site/internal/config"
	"github.com/MKhiriev/dental-site/internal/logger"
	"github.com/MKhiriev/dental-site/internal/utils"
	"github.com/MKhiriev/dental-site/models"
)

// Headers set on webhook requests. HeaderSignature is sent only with a
// signing key and HeaderTraceID only for bookings submitted over HTTP.
const (
	HeaderBookingID = "X-Booking-ID"
	HeaderSignature = "X-Signature"
	HeaderEvent     = "X-Event"
	HeaderTraceID   = "X-Trace-ID"
)

// EventBookingCreated is the event name carried by every webhook call.
const EventBookingCreated = "booking.created"

const (
	retryWaitTime    = 500 * time.Millisecond
	retryMaxWaitTime = 5 * time.Second
)

// WebhookPayload is the JSON body posted to the webhook.
type WebhookPayload struct {
	Event   string         `json:"event"`
	Booking models.Booking `json:"booking"`
	SentAt  time.Time      `json:"sentAt"`
}

type webhookForwarder struct {
	client     *utils.HTTPClient
	webhookURL string
	signingKey string

	now    func() time.Time
	logger *logger.Logger
}

// NewWebhookForwarder constructs an HTTP implementation of
// [BookingForwarder] posting to cfg.WebhookURL.
//
// Returns [ErrInvalidWebhookURL] if the URL is empty or lacks a scheme or
// host.
func NewWebhookForwarder(cfg config.Adapter, log *logger.Logger) (BookingForwarder, error) {
	webhookURL, err := normalizeWebhookURL(cfg.WebhookURL)
	if err != nil {
		return nil, err
	}

	client := utils.NewHTTPClient().WithRetries(cfg.RetryCount, retryWaitTime, retryMaxWaitTime)
	client.
		SetTimeout(cfg.RequestTimeout).
		SetHeader("User-Agent", "dental-site-webhook")

	return &webhookForwarder{
		client:     client,
		webhookURL: webhookURL,
		signingKey: cfg.SigningKey,
		now:        time.Now,
		logger:     log,
	}, nil
}

func normalizeWebhookURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("%w: empty address", ErrInvalidWebhookURL)
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidWebhookURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("%w: address must include host and scheme", ErrInvalidWebhookURL)
	}

	return u.String(), nil
}

// Forward implements [BookingForwarder]. The body is a [WebhookPayload];
// when a signing key is configured its HMAC-SHA256 is sent in
// [HeaderSignature].
func (f *webhookForwarder) Forward(ctx context.Context, booking models.Booking) error {
	body, err := json.Marshal(WebhookPayload{
		Event:   EventBookingCreated,
		Booking: booking,
		SentAt:  f.now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("encode webhook payload: %w", err)
	}

	req := f.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader(HeaderBookingID, booking.ID).
		SetHeader(HeaderEvent, EventBookingCreated).
		SetBody(body)
	if signature := utils.SignPayload(body, f.signingKey); signature != "" {
		req.SetHeader(HeaderSignature, signature)
	}
	if traceID := utils.GetTraceIDFromContext(ctx); traceID != "" {
		req.SetHeader(HeaderTraceID, traceID)
	}

	resp, err := req.Post(f.webhookURL)
	if err != nil {
		f.logger.Err(err).Str("func", "webhookForwarder.Forward").Str("booking_id", booking.ID).Msg("webhook request failed")
		return fmt.Errorf("%w: %w", ErrWebhookUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		f.logger.Err(err).Str("func", "webhookForwarder.Forward").Str("booking_id", booking.ID).Msg("webhook returned an error")
		return err
	}

	f.logger.Debug().Str("func", "webhookForwarder.Forward").Str("booking_id", booking.ID).Int("status", resp.StatusCode()).Msg("booking forwarded")
	return nil
}
