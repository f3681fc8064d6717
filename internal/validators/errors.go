package validators

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrInvalidBooking is matched by every FieldErrors returned for a
	// booking request.
	ErrInvalidBooking = errors.New("invalid booking request")
	// ErrInvalidCredentials is matched by every FieldErrors returned for
	// admin credentials.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// FieldErrors maps a JSON field name to a message fit for showing next to
// the form input. It is returned as the error of a failed validation.
type FieldErrors struct {
	kind   error
	Fields map[string]string
}

func newFieldErrors(kind error) *FieldErrors {
	return &FieldErrors{kind: kind, Fields: make(map[string]string)}
}

func (e *FieldErrors) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(e.kind.Error())
	for i, k := range keys {
		if i == 0 {
			b.WriteString(": ")
		} else {
			b.WriteString("; ")
		}
		b.WriteString(k + ": " + e.Fields[k])
	}
	return b.String()
}

// Unwrap exposes the sentinel kind to errors.Is.
func (e *FieldErrors) Unwrap() error {
	return e.kind
}

func (e *FieldErrors) empty() bool {
	return len(e.Fields) == 0
}
