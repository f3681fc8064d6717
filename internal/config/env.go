// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the environment. Nested blocks use the envPrefix
// tags of StructuredConfig (APP_, SERVER_, STORAGE_DB_, SITE_, ADAPTER_,
// WORKERS_); unset variables leave fields zero so the default layer wins
// in the merge.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}
	return nil
}
