// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var knownEnvVars = []string{
	"CONFIG",
	"ENV_FILE",
	"APP_VERSION",
	"APP_LOG_LEVEL",
	"APP_LOG_PATH",
	"ADAPTER_ADDRESS",
	"ADAPTER_REQUEST_TIMEOUT",
	"STORAGE_DB_DATABASE_URI",
	"WORKERS_REFRESH_INTERVAL",
}

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	clearEnvVars(t)
	setEnvVars(t, map[string]string{
		"CONFIG":                   "/path/to/config.json",
		"ENV_FILE":                 "/path/to/.env",
		"APP_VERSION":              "1.2.3",
		"APP_LOG_LEVEL":            "debug",
		"APP_LOG_PATH":             "/var/log/sweetshop.log",
		"ADAPTER_ADDRESS":          "http://localhost:8000",
		"ADAPTER_REQUEST_TIMEOUT":  "30s",
		"STORAGE_DB_DATABASE_URI":  "/var/lib/sweetshop.db",
		"WORKERS_REFRESH_INTERVAL": "1m",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
	assert.Equal(t, "/path/to/.env", cfg.EnvFilePath)
	assert.Equal(t, "1.2.3", cfg.App.Version)
	assert.Equal(t, "debug", cfg.App.LogLevel)
	assert.Equal(t, "/var/log/sweetshop.log", cfg.App.LogPath)
	assert.Equal(t, "http://localhost:8000", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "/var/lib/sweetshop.db", cfg.Storage.DB.DSN)
	assert.Equal(t, time.Minute, cfg.Workers.RefreshInterval)
}

func TestParseEnv_EmptyEnv(t *testing.T) {
	clearEnvVars(t)

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	clearEnvVars(t)
	setEnvVars(t, map[string]string{"ADAPTER_REQUEST_TIMEOUT": "soon"})

	err := parseEnv(&StructuredConfig{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

// clearEnvVars unsets every variable the config reads and restores the
// previous values when the test ends.
func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, k := range knownEnvVars {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}
