// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"dario.cat/mergo"
)

// Built-in defaults applied before any other source.
const (
	defaultHTTPAddress       = "localhost:8080"
	defaultRequestTimeout    = 15 * time.Second
	defaultBookingRateLimit  = 5
	defaultBookingRateWindow = time.Minute
	defaultDBDriver          = DriverPostgres
	defaultTokenIssuer       = "dental-site"
	defaultTokenDuration     = 12 * time.Hour
	defaultAdapterTimeout    = 10 * time.Second
	defaultAdapterRetryCount = 2
	defaultForwardInterval   = time.Minute
	defaultForwardBatchSize  = 50
	defaultLogLevel          = "info"
	defaultAppVersion        = "dev"
)

type configBuilder struct {
	configs []*StructuredConfig
	args    []string
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 4),
		args:    os.Args[1:],
	}
}

// build merges every collected layer in order. A later layer overrides
// the non-zero fields of the layers before it.
func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (b *configBuilder) withDefaults() *configBuilder {
	b.configs = append(b.configs, defaults())
	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags() *configBuilder {
	flagsCfg, err := parseFlags(b.args)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, flagsCfg)
	return b
}

// withJSON appends the JSON file layer. The path is taken from the last
// layer that names one, so a -c flag beats the CONFIG variable.
func (b *configBuilder) withJSON() *configBuilder {
	var jsonPath string
	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			jsonPath = cfg.JSONFilePath
		}
	}

	if jsonPath == "" {
		return b
	}

	jsonCfg, err := parseJSON(jsonPath)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	b.configs = append(b.configs, jsonCfg)

	return b
}

func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Version:       defaultAppVersion,
			LogLevel:      defaultLogLevel,
			TokenIssuer:   defaultTokenIssuer,
			TokenDuration: defaultTokenDuration,
		},
		Server: Server{
			HTTPAddress:       defaultHTTPAddress,
			RequestTimeout:    defaultRequestTimeout,
			BookingRateLimit:  defaultBookingRateLimit,
			BookingRateWindow: defaultBookingRateWindow,
		},
		Storage: Storage{
			DB: DB{Driver: defaultDBDriver},
		},
		Adapter: Adapter{
			RequestTimeout: defaultAdapterTimeout,
			RetryCount:     defaultAdapterRetryCount,
		},
		Workers: Workers{
			ForwardInterval:  defaultForwardInterval,
			ForwardBatchSize: defaultForwardBatchSize,
		},
	}
}
