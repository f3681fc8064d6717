package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/dental-site/internal/config"
	"github.com/MKhiriev/dental-site/internal/logger"
	"github.com/MKhiriev/dental-site/internal/site"
)

func newTestDependencies() Dependencies {
	loader := site.NewLoader(site.NewRegistry(nil), nil, logger.Nop())
	return Dependencies{Accessor: site.NewAccessor(loader, site.DefaultSource{})}
}

func TestNewServices_WithoutAdmin(t *testing.T) {
	cfg := config.StructuredConfig{App: config.App{Version: "1.2.3"}}

	services, err := NewServices(newTestDependencies(), cfg, logger.Nop())

	require.NoError(t, err)
	assert.NotNil(t, services.SiteService)
	assert.NotNil(t, services.BookingService)
	assert.NotNil(t, services.AppInfoService)
	assert.Nil(t, services.AuthService)
}

func TestNewServices_WithAdmin(t *testing.T) {
	cfg := config.StructuredConfig{App: newTestAuthConfig(t)}
	cfg.App.Version = "1.2.3"

	services, err := NewServices(newTestDependencies(), cfg, logger.Nop())

	require.NoError(t, err)
	assert.NotNil(t, services.AuthService)
}

func TestNewServices_MissingVersion(t *testing.T) {
	_, err := NewServices(newTestDependencies(), config.StructuredConfig{}, logger.Nop())

	assert.ErrorIs(t, err, ErrVersionIsNotSpecified)
}

func TestNewServices_BookingsWithoutStorage(t *testing.T) {
	cfg := config.StructuredConfig{App: config.App{Version: "1.2.3"}}

	services, err := NewServices(newTestDependencies(), cfg, logger.Nop())
	require.NoError(t, err)

	_, err = services.BookingService.ListRecent(t.Context(), 10)

	assert.ErrorIs(t, err, ErrBookingsUnavailable)
}
