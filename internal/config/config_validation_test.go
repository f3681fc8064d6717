package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *StructuredConfig {
	return defaults()
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{
			name:   "defaults are valid",
			mutate: func(cfg *StructuredConfig) {},
		},
		{
			name:    "empty address",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.HTTPAddress = "" },
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "zero rate limit",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.BookingRateLimit = 0 },
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name: "unsupported driver",
			mutate: func(cfg *StructuredConfig) {
				cfg.Storage.DB = DB{DSN: "mysql://x", Driver: "mysql"}
			},
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name: "sqlite is supported",
			mutate: func(cfg *StructuredConfig) {
				cfg.Storage.DB = DB{DSN: "bookings.db", Driver: DriverSQLite}
			},
		},
		{
			name: "admin without hash",
			mutate: func(cfg *StructuredConfig) {
				cfg.App.AdminLogin = "frontdesk"
				cfg.App.TokenSignKey = "key"
				cfg.Storage.DB.DSN = "bookings.db"
				cfg.Storage.DB.Driver = DriverSQLite
			},
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name: "admin without database",
			mutate: func(cfg *StructuredConfig) {
				cfg.App.AdminLogin = "frontdesk"
				cfg.App.AdminPasswordHash = "$2a$10$x"
				cfg.App.TokenSignKey = "key"
			},
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name: "complete admin",
			mutate: func(cfg *StructuredConfig) {
				cfg.App.AdminLogin = "frontdesk"
				cfg.App.AdminPasswordHash = "$2a$10$x"
				cfg.App.TokenSignKey = "key"
				cfg.Storage.DB.DSN = "bookings.db"
				cfg.Storage.DB.Driver = DriverSQLite
			},
		},
		{
			name:    "relative webhook url",
			mutate:  func(cfg *StructuredConfig) { cfg.Adapter.WebhookURL = "/hooks" },
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name: "negative webhook retries",
			mutate: func(cfg *StructuredConfig) {
				cfg.Adapter.WebhookURL = "https://hooks.example.com"
				cfg.Adapter.RetryCount = -1
			},
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name: "webhook and database need a forward interval",
			mutate: func(cfg *StructuredConfig) {
				cfg.Adapter.WebhookURL = "https://hooks.example.com"
				cfg.Storage.DB.DSN = "bookings.db"
				cfg.Storage.DB.Driver = DriverSQLite
				cfg.Workers.ForwardInterval = 0
			},
			wantErr: ErrInvalidWorkerConfigs,
		},
		{
			name: "webhook without database ignores workers",
			mutate: func(cfg *StructuredConfig) {
				cfg.Adapter.WebhookURL = "https://hooks.example.com"
				cfg.Workers.ForwardInterval = 0
			},
		},
		{
			name: "broken clinic override does not fail validation",
			mutate: func(cfg *StructuredConfig) {
				cfg.Site.ClinicConfig = "{not json"
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestDefaults_TokenDuration(t *testing.T) {
	assert.Equal(t, 12*time.Hour, defaults().App.TokenDuration)
}

// ── Site.InlineOverride ───────────────────────────────────────────────────────

func TestInlineOverride_PrefersInlineText(t *testing.T) {
	s := Site{ClinicConfig: `{"a":1}`, ClinicConfigFile: "/does/not/matter"}

	got, err := s.InlineOverride()
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, got)
}

func TestInlineOverride_ReadsFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "clinic.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"clinic":{"name":"File"}}`), 0o600))

	got, err := Site{ClinicConfigFile: p}.InlineOverride()
	require.NoError(t, err)
	assert.Equal(t, `{"clinic":{"name":"File"}}`, got)
}

func TestInlineOverride_MissingFile(t *testing.T) {
	got, err := Site{ClinicConfigFile: "/no/such/clinic.json"}.InlineOverride()
	assert.Empty(t, got)
	assert.ErrorContains(t, err, "error reading clinic config file")
}

func TestInlineOverride_NothingSet(t *testing.T) {
	got, err := Site{}.InlineOverride()
	require.NoError(t, err)
	assert.Empty(t, got)
}
