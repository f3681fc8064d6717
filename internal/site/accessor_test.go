package site

import (
	"bytes"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/dental-site/internal/logger"
	"github.com/MKhiriev/dental-site/models"
)

func TestAccessor_ResolvesOnce(t *testing.T) {
	obs := newCountingObserver()
	a := NewAccessor(newTestLoader(obs), SourcesFrom("", "acme")...)

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = a.Config()
		}()
	}
	wg.Wait()
	_ = a.Source()

	assert.Equal(t, 1, obs.resolved[KindNamedTenant])
	assert.Equal(t, models.SourceInfo{Kind: KindNamedTenant, Tenant: "acme"}, a.Source())
}

func TestAccessor_ConfigIsReadOnly(t *testing.T) {
	a := NewAccessor(newTestLoader(nil), DefaultSource{})

	cfg := a.Config()
	cfg.Clinic.Name = "Changed"
	cfg.Services[0].Title = "Changed"
	cfg.Content.About.Features[0] = "Changed"

	assert.Empty(t, cmp.Diff(Default(), a.Config()))
}

func TestAccessor_ServicesResolveIcons(t *testing.T) {
	override := `{"services": [
		{"icon": "Syringe", "title": "Implants", "description": "d", "price": "$1", "popular": true},
		{"icon": "Molar", "title": "Mystery", "description": "d", "price": "$2", "popular": false}
	]}`

	var buf bytes.Buffer
	obs := newCountingObserver()
	a := NewAccessor(NewLoader(nil, obs, logger.NewWriterLogger(&buf, "test", "debug")), InlineOverride{JSON: override})

	services := a.Services()
	require.Len(t, services, 2)

	assert.Equal(t, "Syringe", services[0].Icon)
	assert.False(t, services[0].IconFallback)
	assert.True(t, services[0].Popular)

	assert.Equal(t, "Smile", services[1].Icon)
	assert.True(t, services[1].IconFallback)
	assert.Equal(t, "Mystery", services[1].Title)

	assert.Contains(t, buf.String(), `"icon":"Molar"`)
	assert.Contains(t, buf.String(), "icon not found, using default")

	_ = a.Services()
	assert.Equal(t, 1, obs.unknownIcon, "icons are resolved once")

	assert.Equal(t, "Molar", a.Config().Services[1].Icon, "raw config keeps the configured name")
}

func TestAccessor_DefaultServices(t *testing.T) {
	a := NewAccessor(newTestLoader(nil))

	services := a.Services()
	require.Len(t, services, len(Default().Services))
	for i, s := range services {
		assert.Equal(t, Default().Services[i].Icon, s.Icon)
		assert.False(t, s.IconFallback)
	}
}
