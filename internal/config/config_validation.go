// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// validate checks that the final merged [StructuredConfig] satisfies all
// service invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a sentinel error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Remote.BaseURL == "" {
		return ErrInvalidRemoteConfigs
	}

	if cfg.Engine.WorkerCount < 0 || cfg.Engine.JobRetention < 0 {
		return ErrInvalidEngineConfigs
	}

	return nil
}
