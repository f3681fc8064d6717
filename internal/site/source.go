package site

import "github.com/MKhiriev/dental-site/models"

// Source kinds reported in models.SourceInfo.
const (
	KindInlineOverride = "inline-override"
	KindNamedTenant    = "named-tenant"
	KindDefault        = "default"
)

// Source is one candidate origin of the clinic configuration. The set of
// implementations is closed: InlineOverride, NamedTenant and DefaultSource.
type Source interface {
	kind() string
}

// InlineOverride is a JSON object shallow-merged over the default config.
type InlineOverride struct {
	JSON string
}

// NamedTenant selects a registered tenant configuration by id.
type NamedTenant struct {
	ID string
}

// DefaultSource is the built-in configuration. It always resolves.
type DefaultSource struct{}

func (InlineOverride) kind() string { return KindInlineOverride }
func (NamedTenant) kind() string    { return KindNamedTenant }
func (DefaultSource) kind() string  { return KindDefault }

// SourcesFrom builds the usual chain: the inline override when non-empty,
// then the tenant when non-empty, then the default.
func SourcesFrom(override, tenantID string) []Source {
	sources := make([]Source, 0, 3)
	if override != "" {
		sources = append(sources, InlineOverride{JSON: override})
	}
	if tenantID != "" {
		sources = append(sources, NamedTenant{ID: tenantID})
	}
	return append(sources, DefaultSource{})
}

func sourceInfo(s Source) models.SourceInfo {
	info := models.SourceInfo{Kind: s.kind()}
	if t, ok := s.(NamedTenant); ok {
		info.Tenant = t.ID
	}
	return info
}
