// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package site

import (
	"fmt"

	"github.com/MKhiriev/dental-site/internal/logger"
	"github.com/MKhiriev/dental-site/models"
)

// Loader resolves the effective clinic configuration from a chain of
// sources.
type Loader struct {
	registry *Registry
	observer Observer
	logger   *logger.Logger
}

// NewLoader returns a Loader that looks tenants up in registry. A nil
// observer disables event reporting.
func NewLoader(registry *Registry, observer Observer, log *logger.Logger) *Loader {
	if observer == nil {
		observer = nopObserver{}
	}
	return &Loader{
		registry: registry,
		observer: observer,
		logger:   log,
	}
}

// Resolve returns the configuration of the first usable source. Unusable
// sources are logged and skipped; when none is usable the default is
// returned. Resolve never fails.
func (l *Loader) Resolve(sources ...Source) models.ClinicConfig {
	cfg, _ := l.ResolveWithSource(sources...)
	return cfg
}

// ResolveWithSource is Resolve that also reports which source produced the
// configuration.
func (l *Loader) ResolveWithSource(sources ...Source) (models.ClinicConfig, models.SourceInfo) {
	for _, source := range sources {
		cfg, err := l.resolveOne(source)
		if err != nil {
			l.logger.Error().Err(err).Str("source", source.kind()).Msg("clinic config source skipped")
			continue
		}

		info := sourceInfo(source)
		l.observer.ConfigResolved(info.Kind)
		l.logger.Info().Str("source", info.Kind).Str("tenant", info.Tenant).
			Str("clinic", cfg.Clinic.Name).Msg("clinic config resolved")
		return cfg, info
	}

	l.observer.ConfigResolved(KindDefault)
	return Default(), models.SourceInfo{Kind: KindDefault}
}

func (l *Loader) resolveOne(source Source) (models.ClinicConfig, error) {
	switch s := source.(type) {
	case InlineOverride:
		cfg, err := mergeShallow(Default(), []byte(s.JSON))
		if err != nil {
			l.observer.OverrideRejected()
			return models.ClinicConfig{}, fmt.Errorf("error parsing clinic config override: %w", err)
		}
		return cfg, nil
	case NamedTenant:
		cfg, ok := l.registry.Lookup(s.ID)
		if !ok {
			l.observer.UnknownTenant()
			return models.ClinicConfig{}, fmt.Errorf("%w %q", ErrUnknownTenant, s.ID)
		}
		return cfg, nil
	case DefaultSource:
		return Default(), nil
	default:
		return models.ClinicConfig{}, fmt.Errorf("unsupported config source %T", source)
	}
}
