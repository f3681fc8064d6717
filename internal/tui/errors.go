// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "errors"

var (
	// ErrUserQuit is returned by Run when the form was abandoned.
	ErrUserQuit = errors.New("user quit")

	ErrClinicNameRequired = errors.New("clinic name is required")
)
