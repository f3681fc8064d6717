package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	// ErrUnknownSection is returned by SiteService.Section for a name that
	// is not a configuration section.
	ErrUnknownSection = errors.New("unknown site section")

	// ErrSectionNotConfigured is returned for an optional section that the
	// resolved configuration leaves out.
	ErrSectionNotConfigured = errors.New("site section is not configured")

	// ErrBookingNotAccepted is returned when no configured sink could take
	// the booking.
	ErrBookingNotAccepted = errors.New("booking was not accepted")

	// ErrBookingsUnavailable is returned by the admin inbox when no
	// database is configured.
	ErrBookingsUnavailable = errors.New("booking storage is not configured")

	ErrWrongCredentials = errors.New("wrong login or password")
	ErrInvalidToken     = errors.New("invalid token")
	ErrTokenIsExpired   = errors.New("token is expired")
)

// Booking outcomes reported to BookingObserver.
const (
	OutcomeAccepted      = "accepted"
	OutcomeInvalid       = "invalid"
	OutcomeFailed        = "failed"
	OutcomeForwarded     = "forwarded"
	OutcomeForwardFailed = "forward_failed"
)
