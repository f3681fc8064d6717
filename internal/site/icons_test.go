package site

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/dental-site/internal/logger"
)

func TestParseIcon(t *testing.T) {
	tests := []struct {
		name   string
		want   Icon
		wantOK bool
	}{
		{name: "Sparkles", want: IconSparkles, wantOK: true},
		{name: "Smile", want: IconSmile, wantOK: true},
		{name: "ScanLine", want: IconScanLine, wantOK: true},
		{name: "Stethoscope", want: IconStethoscope, wantOK: true},
		{name: "sparkles", wantOK: false},
		{name: "", wantOK: false},
		{name: "Unicorn", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseIcon(tt.name)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestIcon_StringRoundTrip(t *testing.T) {
	for _, icon := range Icons() {
		got, ok := ParseIcon(icon.String())
		require.True(t, ok, icon.String())
		assert.Equal(t, icon, got)
	}
}

func TestIcon_StringOutOfRange(t *testing.T) {
	assert.Equal(t, "Smile", Icon(-1).String())
	assert.Equal(t, "Smile", Icon(1000).String())
}

// TestDefaultConfig_IconsAreKnown guards the built-in services against
// referring to icons outside the enumeration.
func TestDefaultConfig_IconsAreKnown(t *testing.T) {
	for _, s := range Default().Services {
		_, ok := ParseIcon(s.Icon)
		assert.True(t, ok, s.Icon)
	}
}

func TestAccessor_resolveIconFallback(t *testing.T) {
	obs := newCountingObserver()
	a := NewAccessor(NewLoader(nil, obs, logger.Nop()))

	icon, fallback := a.resolveIcon("Unicorn")
	assert.Equal(t, IconSmile, icon)
	assert.True(t, fallback)
	assert.Equal(t, 1, obs.unknownIcon)

	icon, fallback = a.resolveIcon("Syringe")
	assert.Equal(t, IconSyringe, icon)
	assert.False(t, fallback)
	assert.Equal(t, 1, obs.unknownIcon)
}

func TestAccessor_ServicesCountUnknownIconsOncePerLoad(t *testing.T) {
	obs := newCountingObserver()
	override := `{"services":[{"icon":"Unicorn","title":"Mystery"}]}`
	a := NewAccessor(NewLoader(nil, obs, logger.Nop()), InlineOverride{JSON: override})

	for range 3 {
		services := a.Services()
		require.Len(t, services, 1)
		assert.True(t, services[0].IconFallback)
	}
	assert.Equal(t, 1, obs.unknownIcon)
}
