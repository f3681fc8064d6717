// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
)

// validate checks that the final merged [StructuredConfig] is usable at
// startup. Site sources are never validated here: a broken clinic override
// degrades to the default clinic instead of stopping the process.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}
	if cfg.Server.BookingRateLimit < 1 || cfg.Server.BookingRateWindow <= 0 {
		return fmt.Errorf("%w: booking rate limit must be positive", ErrInvalidServerConfigs)
	}

	if cfg.Storage.DB.Enabled() {
		switch cfg.Storage.DB.Driver {
		case DriverPostgres, DriverSQLite:
		default:
			return fmt.Errorf("%w: unsupported driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
		}
	}

	if cfg.App.AdminEnabled() {
		if cfg.App.AdminPasswordHash == "" || cfg.App.TokenSignKey == "" || cfg.App.TokenDuration <= 0 {
			return ErrInvalidAppConfigs
		}
		if !cfg.Storage.DB.Enabled() {
			return fmt.Errorf("%w: admin inbox requires a database", ErrInvalidAppConfigs)
		}
	}

	if cfg.Adapter.Enabled() {
		u, err := url.Parse(cfg.Adapter.WebhookURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("%w: bad webhook url", ErrInvalidAdapterConfigs)
		}
		if cfg.Adapter.RequestTimeout <= 0 || cfg.Adapter.RetryCount < 0 {
			return ErrInvalidAdapterConfigs
		}
	}

	if cfg.Adapter.Enabled() && cfg.Storage.DB.Enabled() {
		if cfg.Workers.ForwardInterval <= 0 || cfg.Workers.ForwardBatchSize < 1 {
			return ErrInvalidWorkerConfigs
		}
	}

	return nil
}
