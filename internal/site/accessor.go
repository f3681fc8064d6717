package site

import (
	"sync"

	"github.com/MKhiriev/dental-site/internal/logger"
	"github.com/MKhiriev/dental-site/models"
)

type resolved struct {
	config   models.ClinicConfig
	source   models.SourceInfo
	services []models.ServiceView
}

// Accessor holds the resolved clinic configuration. The configuration is
// resolved on first use and cached for the life of the Accessor; there is
// no reload. Every getter returns a copy.
type Accessor struct {
	get      func() resolved
	observer Observer
	logger   *logger.Logger
}

// NewAccessor returns an Accessor that resolves sources with loader on
// first use.
func NewAccessor(loader *Loader, sources ...Source) *Accessor {
	a := &Accessor{
		observer: loader.observer,
		logger:   loader.logger,
	}
	a.get = sync.OnceValue(func() resolved {
		cfg, info := loader.ResolveWithSource(sources...)
		return resolved{
			config:   cfg,
			source:   info,
			services: a.serviceViews(cfg.Services),
		}
	})
	return a
}

// Config returns the resolved configuration.
func (a *Accessor) Config() models.ClinicConfig {
	return a.get().config.Clone()
}

// Source reports where the configuration came from.
func (a *Accessor) Source() models.SourceInfo {
	return a.get().source
}

// Services returns the configured services with their icons resolved.
func (a *Accessor) Services() []models.ServiceView {
	services := a.get().services
	out := make([]models.ServiceView, len(services))
	copy(out, services)
	return out
}

// resolveIcon maps name to a known icon. Unknown names yield DefaultIcon,
// a warning and one UnknownIcon count per call; fallback reports that
// substitution happened. Callers resolve once per loaded config.
func (a *Accessor) resolveIcon(name string) (icon Icon, fallback bool) {
	icon, ok := ParseIcon(name)
	if ok {
		return icon, false
	}

	a.observer.UnknownIcon()
	a.logger.Warn().Str("icon", name).Str("fallback", DefaultIcon.String()).
		Msg("icon not found, using default")
	return DefaultIcon, true
}

func (a *Accessor) serviceViews(services []models.Service) []models.ServiceView {
	views := make([]models.ServiceView, 0, len(services))
	for _, s := range services {
		icon, fallback := a.resolveIcon(s.Icon)
		view := models.ServiceView{Service: s, IconFallback: fallback}
		view.Icon = icon.String()
		views = append(views, view)
	}
	return views
}
