// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"time"
)

// StructuredConfig is the top-level process configuration of the
// dental-site server. It aggregates all sub-configurations and is populated
// by merging defaults, environment variables, command-line flags and an
// optional JSON settings file.
//
// It describes how the process runs, not what the site shows: clinic
// content lives in models.ClinicConfig and is resolved by package site
// from the sources named in Site.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: version, log level and the
	// administrator credentials and token parameters.
	App App `envPrefix:"APP_"`

	// Server holds network address, timeout and rate-limit settings for
	// the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Storage holds the optional booking database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Site names the sources the clinic configuration is resolved from.
	Site Site `envPrefix:"SITE_"`

	// Adapter holds the outbound booking webhook settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds configuration for the booking forward retry job.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON settings file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is exposed via the /api/version/ endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// AdminLogin enables the admin inbox when non-empty.
	// Env: APP_ADMIN_LOGIN
	AdminLogin string `env:"ADMIN_LOGIN"`

	// AdminPasswordHash is the bcrypt hash of the administrator password.
	// Env: APP_ADMIN_PASSWORD_HASH
	AdminPasswordHash string `env:"ADMIN_PASSWORD_HASH"`

	// TokenSignKey is the secret used to sign admin JWT tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim of every issued token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is how long an admin token stays valid.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`
}

// AdminEnabled reports whether the admin inbox is configured.
func (a App) AdminEnabled() bool {
	return a.AdminLogin != ""
}

// Server holds network and timeout settings for the inbound HTTP server.
type Server struct {
	// HTTPAddress is the TCP address the HTTP server listens on.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// BookingRateLimit is the number of booking submissions accepted per
	// client IP within BookingRateWindow.
	// Env: SERVER_BOOKING_RATE_LIMIT
	BookingRateLimit int `env:"BOOKING_RATE_LIMIT"`

	// BookingRateWindow is the sliding window of BookingRateLimit.
	// Env: SERVER_BOOKING_RATE_WINDOW
	BookingRateWindow time.Duration `env:"BOOKING_RATE_WINDOW"`
}

// Storage groups the persistence settings.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// Supported database drivers.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// DB holds connection settings for the booking database. An empty DSN
// disables persistence; bookings are then only logged and forwarded.
type DB struct {
	// DSN is the connection string: a postgres URL or a sqlite file path.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`

	// Driver is DriverPostgres or DriverSQLite.
	// Env: STORAGE_DB_DRIVER
	Driver string `env:"DRIVER"`
}

// Enabled reports whether a booking database is configured.
func (d DB) Enabled() bool {
	return d.DSN != ""
}

// Site names the clinic configuration sources. All fields are optional;
// with none set the built-in default clinic is served.
type Site struct {
	// ClinicConfig is an inline JSON override merged over the default
	// clinic configuration.
	// Env: SITE_CLINIC_CONFIG
	ClinicConfig string `env:"CLINIC_CONFIG"`

	// ClinicConfigFile is a path to a file holding the JSON override.
	// It is read only when ClinicConfig is empty.
	// Env: SITE_CLINIC_CONFIG_FILE
	ClinicConfigFile string `env:"CLINIC_CONFIG_FILE"`

	// ClientID selects a registered tenant configuration.
	// Env: SITE_CLIENT_ID
	ClientID string `env:"CLIENT_ID"`
}

// InlineOverride returns the JSON override text: ClinicConfig when set,
// otherwise the contents of ClinicConfigFile, otherwise "".
func (s Site) InlineOverride() (string, error) {
	if s.ClinicConfig != "" {
		return s.ClinicConfig, nil
	}
	if s.ClinicConfigFile == "" {
		return "", nil
	}

	data, err := os.ReadFile(s.ClinicConfigFile)
	if err != nil {
		return "", fmt.Errorf("error reading clinic config file: %w", err)
	}
	return string(data), nil
}

// Adapter holds settings for the outbound booking webhook.
type Adapter struct {
	// WebhookURL receives every accepted booking as JSON. Empty disables
	// forwarding.
	// Env: ADAPTER_WEBHOOK_URL
	WebhookURL string `env:"WEBHOOK_URL"`

	// RequestTimeout bounds a single webhook call.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// SigningKey, when set, signs every webhook body with HMAC-SHA256; the
	// hex digest is sent in the X-Signature header.
	// Env: ADAPTER_SIGNING_KEY
	SigningKey string `env:"SIGNING_KEY"`

	// RetryCount is how many times a failed webhook call is retried
	// inline before the booking is left for the forward job.
	// Env: ADAPTER_RETRY_COUNT
	RetryCount int `env:"RETRY_COUNT"`
}

// Enabled reports whether a webhook is configured.
func (a Adapter) Enabled() bool {
	return a.WebhookURL != ""
}

// Workers holds configuration for background jobs.
type Workers struct {
	// ForwardInterval is how often pending bookings are re-sent.
	// Env: WORKERS_FORWARD_INTERVAL
	ForwardInterval time.Duration `env:"FORWARD_INTERVAL"`

	// ForwardBatchSize caps the bookings re-sent per run.
	// Env: WORKERS_FORWARD_BATCH_SIZE
	ForwardBatchSize int `env:"FORWARD_BATCH_SIZE"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  0. Built-in defaults
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags().
		withJSON().
		build()
}
