package models

// ServiceView is a Service as exposed to the presentation layer, with its
// icon already resolved against the icon registry.
type ServiceView struct {
	Service

	// IconFallback reports that Service.Icon named an unknown icon and
	// Icon was replaced by the default one.
	IconFallback bool `json:"iconFallback"`
}

// SourceInfo describes where the effective ClinicConfig came from.
type SourceInfo struct {
	// Kind is one of "inline-override", "named-tenant" or "default".
	Kind string `json:"kind"`

	// Tenant is set when Kind is "named-tenant".
	Tenant string `json:"tenant,omitempty"`
}

// IconInfo is an entry of the icon registry listing.
type IconInfo struct {
	Name string `json:"name"`

	// Default marks the icon substituted for unknown names.
	Default bool `json:"default,omitempty"`
}

// AppInfo is returned by the version endpoint.
type AppInfo struct {
	Version string `json:"version"`
}

// SiteView is the resolved ClinicConfig as served to the site, with every
// service's icon resolved against the icon registry.
type SiteView struct {
	ClinicConfig

	Services []ServiceView `json:"services"`
}
