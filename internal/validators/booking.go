// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/MKhiriev/dental-site/models"
)

// Field name constants used to scope validation. They equal the JSON names
// of the booking form and admin login inputs.
const (
	FieldFullName      = "fullName"
	FieldEmail         = "email"
	FieldPhone         = "phone"
	FieldService       = "service"
	FieldPreferredDate = "preferredDate"
	FieldMessage       = "message"

	FieldLogin    = "login"
	FieldPassword = "password"
)

// bookingForm mirrors models.BookingRequest with validation rules. Values
// are trimmed before they reach it. Lengths count characters, not bytes.
type bookingForm struct {
	FullName      string `json:"fullName" validate:"min=2,max=100"`
	Email         string `json:"email" validate:"email,max=255"`
	Phone         string `json:"phone" validate:"min=7,max=20"`
	Service       string `json:"service" validate:"required,oneof=teeth-whitening veneers invisalign implants checkup other"`
	PreferredDate string `json:"preferredDate"`
	Message       string `json:"message" validate:"max=1000"`
}

type credentialsForm struct {
	Login    string `json:"login" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// structFields maps a field constant to the Go field name StructPartial
// expects.
var structFields = map[string]string{
	FieldFullName:      "FullName",
	FieldEmail:         "Email",
	FieldPhone:         "Phone",
	FieldService:       "Service",
	FieldPreferredDate: "PreferredDate",
	FieldMessage:       "Message",
	FieldLogin:         "Login",
	FieldPassword:      "Password",
}

// messages holds the form message per field and failed rule.
var messages = map[string]map[string]string{
	FieldFullName: {
		"min": "Name must be at least 2 characters",
		"max": "Name must be less than 100 characters",
	},
	FieldEmail: {
		"email": "Please enter a valid email address",
		"max":   "Email must be less than 255 characters",
	},
	FieldPhone: {
		"min": "Please enter a valid phone number",
		"max": "Phone number too long",
	},
	FieldService: {
		"required": "Please select a service",
		"oneof":    "Please select a service",
	},
	FieldMessage: {
		"max": "Message must be less than 1000 characters",
	},
	FieldLogin: {
		"required": "Login is required",
	},
	FieldPassword: {
		"required": "Password is required",
	},
}

// BookingValidator implements Validator for the public booking form and
// the admin login request using go-playground/validator rules.
//
// A failed validation returns *FieldErrors carrying one message per
// invalid field; errors.Is matches it against ErrInvalidBooking or
// ErrInvalidCredentials.
type BookingValidator struct {
	validate *validator.Validate
}

// NewBookingValidator constructs a BookingValidator and returns it as the
// Validator interface.
func NewBookingValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return &BookingValidator{validate: v}
}

// Validate dispatches on the dynamic type of obj. Supported types:
//   - models.BookingRequest / *models.BookingRequest
//   - models.AdminCredentials / *models.AdminCredentials
//
// Optional fields restrict validation to the named subset.
func (v *BookingValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.BookingRequest:
		return v.validateBooking(ctx, value, fields...)
	case *models.BookingRequest:
		return v.validateBooking(ctx, *value, fields...)

	case models.AdminCredentials:
		return v.validateCredentials(ctx, value, fields...)
	case *models.AdminCredentials:
		return v.validateCredentials(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// NormalizeBooking returns r with the free-text inputs trimmed, the form
// the request is validated and stored in.
func NormalizeBooking(r models.BookingRequest) models.BookingRequest {
	r.FullName = strings.TrimSpace(r.FullName)
	r.Email = strings.TrimSpace(r.Email)
	r.Phone = strings.TrimSpace(r.Phone)
	r.Service = models.BookingService(strings.TrimSpace(string(r.Service)))
	r.PreferredDate = strings.TrimSpace(r.PreferredDate)
	r.Message = strings.TrimSpace(r.Message)
	return r
}

func (v *BookingValidator) validateBooking(ctx context.Context, r models.BookingRequest, fields ...string) error {
	r = NormalizeBooking(r)
	form := bookingForm{
		FullName:      r.FullName,
		Email:         r.Email,
		Phone:         r.Phone,
		Service:       string(r.Service),
		PreferredDate: r.PreferredDate,
		Message:       r.Message,
	}

	allowed := []string{FieldFullName, FieldEmail, FieldPhone, FieldService, FieldPreferredDate, FieldMessage}
	return v.run(ctx, form, ErrInvalidBooking, allowed, fields)
}

func (v *BookingValidator) validateCredentials(ctx context.Context, c models.AdminCredentials, fields ...string) error {
	form := credentialsForm{
		Login:    strings.TrimSpace(c.Login),
		Password: c.Password,
	}

	return v.run(ctx, form, ErrInvalidCredentials, []string{FieldLogin, FieldPassword}, fields)
}

func (v *BookingValidator) run(ctx context.Context, form any, kind error, allowed, fields []string) error {
	var err error
	if len(fields) == 0 {
		err = v.validate.StructCtx(ctx, form)
	} else {
		names := make([]string, 0, len(fields))
		for _, f := range fields {
			if !contains(allowed, f) {
				return fmt.Errorf("%w: %s", ErrUnknownField, f)
			}
			names = append(names, structFields[f])
		}
		err = v.validate.StructPartialCtx(ctx, form, names...)
	}
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("error validating %T: %w", form, err)
	}

	out := newFieldErrors(kind)
	for _, fe := range validationErrors {
		out.Fields[fe.Field()] = messageFor(fe.Field(), fe.Tag())
	}
	if out.empty() {
		return nil
	}
	return out
}

func messageFor(field, tag string) string {
	if msg, ok := messages[field][tag]; ok {
		return msg
	}
	return "Invalid value"
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
