// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks the public booking form and the admin login
// request before they reach the services.
//
// A failed check returns *FieldErrors with one user-facing message per
// invalid field, keyed by the field's JSON name, so handlers can answer
// 400 with {"errors": {...}} without knowing the rules.
package validators

import "context"

// Validator checks a request value. fields, when given, restricts the
// check to the named inputs (the Field* constants).
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
