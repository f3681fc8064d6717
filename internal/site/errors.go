package site

import "errors"

var (
	// ErrMalformedOverride is reported when an inline override is not a
	// JSON object or a present key does not fit its block's shape.
	ErrMalformedOverride = errors.New("malformed clinic config override")
	// ErrUnknownTenant is reported when no configuration is registered
	// under a tenant id.
	ErrUnknownTenant = errors.New("unknown tenant")
	// ErrInvalidTenantFile is returned by LoadRegistry for an embedded
	// tenant file that does not decode.
	ErrInvalidTenantFile = errors.New("invalid tenant file")
)
