package models

import "time"

// Redacted is the placeholder written in place of personal contact data
// whenever a booking request is echoed to logs.
const Redacted = "[REDACTED]"

// BookingService is the value of the "service" select on the booking form.
type BookingService string

// Selectable booking services. Any other value is rejected by validation.
const (
	BookingTeethWhitening BookingService = "teeth-whitening"
	BookingVeneers        BookingService = "veneers"
	BookingInvisalign     BookingService = "invisalign"
	BookingImplants       BookingService = "implants"
	BookingCheckup        BookingService = "checkup"
	BookingOther          BookingService = "other"
)

// BookingServices lists the selectable services in display order.
var BookingServices = []BookingService{
	BookingTeethWhitening,
	BookingVeneers,
	BookingInvisalign,
	BookingImplants,
	BookingCheckup,
	BookingOther,
}

// BookingRequest is the consultation request submitted through the
// booking form.
type BookingRequest struct {
	FullName string         `json:"fullName"`
	Email    string         `json:"email"`
	Phone    string         `json:"phone"`
	Service  BookingService `json:"service"`

	// PreferredDate is passed through as typed by the visitor; its format
	// is not validated.
	PreferredDate string `json:"preferredDate,omitempty"`
	Message       string `json:"message,omitempty"`
}

// Redacted returns a copy of r with email and phone masked, safe to log.
func (r BookingRequest) Redacted() BookingRequest {
	r.Email = Redacted
	r.Phone = Redacted
	return r
}

// Booking is a persisted consultation request.
type Booking struct {
	ID string `json:"id"`
	BookingRequest

	CreatedAt time.Time `json:"createdAt"`

	// ForwardedAt is set once the booking has been delivered to the
	// clinic's submission webhook. Nil means delivery is pending.
	ForwardedAt *time.Time `json:"forwardedAt,omitempty"`
}

// TableName returns the name of the database table associated with
// the Booking model.
func (b Booking) TableName() string {
	return "bookings"
}

// BookingConfirmation is returned to the form after a successful
// submission. The form shows Title and Description as a notification,
// resets itself and navigates to RedirectTo after RedirectAfterMs.
type BookingConfirmation struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	RedirectTo      string `json:"redirectTo"`
	RedirectAfterMs int64  `json:"redirectAfterMs"`
}
