package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk shape of the JSON settings file.
// Durations accept either Go duration strings ("30s") or nanoseconds.
type StructuredJSONConfig struct {
	App struct {
		Version           string   `json:"version"`
		LogLevel          string   `json:"log_level"`
		AdminLogin        string   `json:"admin_login"`
		AdminPasswordHash string   `json:"admin_password_hash"`
		TokenSignKey      string   `json:"token_sign_key"`
		TokenIssuer       string   `json:"token_issuer"`
		TokenDuration     Duration `json:"token_duration"`
	} `json:"app,omitempty"`

	Server struct {
		HTTPAddress       string   `json:"http_address"`
		RequestTimeout    Duration `json:"request_timeout"`
		BookingRateLimit  int      `json:"booking_rate_limit"`
		BookingRateWindow Duration `json:"booking_rate_window"`
	} `json:"server,omitempty"`

	Storage struct {
		DB struct {
			DSN    string `json:"dsn"`
			Driver string `json:"driver"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Site struct {
		ClinicConfig     json.RawMessage `json:"clinic_config"`
		ClinicConfigFile string          `json:"clinic_config_file"`
		ClientID         string          `json:"client_id"`
	} `json:"site,omitempty"`

	Adapter struct {
		WebhookURL     string   `json:"webhook_url"`
		RequestTimeout Duration `json:"request_timeout"`
		SigningKey     string   `json:"signing_key"`
		RetryCount     int      `json:"retry_count"`
	} `json:"adapter,omitempty"`

	Workers struct {
		ForwardInterval  Duration `json:"forward_interval"`
		ForwardBatchSize int      `json:"forward_batch_size"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Version:           jsonCfg.App.Version,
			LogLevel:          jsonCfg.App.LogLevel,
			AdminLogin:        jsonCfg.App.AdminLogin,
			AdminPasswordHash: jsonCfg.App.AdminPasswordHash,
			TokenSignKey:      jsonCfg.App.TokenSignKey,
			TokenIssuer:       jsonCfg.App.TokenIssuer,
			TokenDuration:     time.Duration(jsonCfg.App.TokenDuration),
		},
		Server: Server{
			HTTPAddress:       jsonCfg.Server.HTTPAddress,
			RequestTimeout:    time.Duration(jsonCfg.Server.RequestTimeout),
			BookingRateLimit:  jsonCfg.Server.BookingRateLimit,
			BookingRateWindow: time.Duration(jsonCfg.Server.BookingRateWindow),
		},
		Storage: Storage{
			DB: DB{
				DSN:    jsonCfg.Storage.DB.DSN,
				Driver: jsonCfg.Storage.DB.Driver,
			},
		},
		Site: Site{
			ClinicConfig:     clinicConfigText(jsonCfg.Site.ClinicConfig),
			ClinicConfigFile: jsonCfg.Site.ClinicConfigFile,
			ClientID:         jsonCfg.Site.ClientID,
		},
		Adapter: Adapter{
			WebhookURL:     jsonCfg.Adapter.WebhookURL,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
			SigningKey:     jsonCfg.Adapter.SigningKey,
			RetryCount:     jsonCfg.Adapter.RetryCount,
		},
		Workers: Workers{
			ForwardInterval:  time.Duration(jsonCfg.Workers.ForwardInterval),
			ForwardBatchSize: jsonCfg.Workers.ForwardBatchSize,
		},
	}

	return cfg, nil
}

// clinicConfigText accepts the clinic override either as an embedded JSON
// object or as a JSON string holding the override text.
func clinicConfigText(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}

	return string(raw)
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case nil:
		return nil
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
