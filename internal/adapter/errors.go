package adapter

import "errors"

var (
	// ErrWebhookRejected is returned for a 4xx response. Resending the same
	// booking will not help.
	ErrWebhookRejected = errors.New("webhook rejected booking")

	// ErrWebhookUnavailable is returned for transport failures, 5xx and 429
	// responses. The booking may be resent later.
	ErrWebhookUnavailable = errors.New("webhook unavailable")

	// ErrInvalidWebhookURL is returned by [NewWebhookForwarder] for an empty
	// or relative URL.
	ErrInvalidWebhookURL = errors.New("invalid webhook url")
)
