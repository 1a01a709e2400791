// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// validate checks the merged [StructuredConfig]. Only values that can never
// be right are rejected here; missing values are the client view's concern.
func (cfg *StructuredConfig) validate() error {
	if cfg.Adapter.RequestTimeout < 0 {
		return ErrInvalidAdapterConfigs
	}
	if cfg.Workers.RefreshInterval < 0 {
		return ErrInvalidWorkerConfigs
	}
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if strings.TrimSpace(cfg.Adapter.HTTPAddress) == "" || cfg.Adapter.RequestTimeout < 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.RefreshInterval < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
