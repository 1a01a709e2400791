// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container. It is populated
// by merging values from a .env file, environment variables, command-line
// flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds logging and version settings.
	App App `envPrefix:"APP_"`

	// Adapter holds the address of the shop API and the request timeout.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds the location of the local session database.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds background job settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`

	// EnvFilePath is the .env file read before the environment is parsed.
	// Populated via the ENV_FILE environment variable or the -env-file flag.
	EnvFilePath string `env:"ENV_FILE"`
}

// App holds application-level settings.
type App struct {
	// Version is shown in the build info overlay when the binary was built
	// without linker flags.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name ("debug", "info", "warn", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// LogPath is the file the client logs into. Empty means a "logs" file
	// next to the executable.
	// Env: APP_LOG_PATH
	LogPath string `env:"LOG_PATH"`
}

// Adapter holds the settings of the outbound connection to the shop API.
type Adapter struct {
	// HTTPAddress is the base URL of the shop API including any path prefix,
	// with or without scheme (e.g. "http://localhost:8000/api" or
	// "localhost:8000/api"). Endpoint paths are appended to it.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single request (e.g. "10s"). Zero disables the
	// bound, so a hung call keeps its view loading.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the local persistence settings.
type Storage struct {
	// DB holds the local database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local sqlite database.
type DB struct {
	// DSN is the sqlite file path holding the persisted session slots.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Workers holds background job settings.
type Workers struct {
	// RefreshInterval is how often the catalog is re-fetched while a user is
	// logged in. Zero disables the job.
	// Env: WORKERS_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the configuration from all
// available sources. args are the command-line arguments without the program
// name.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv(args).
		withEnv().
		withFlags(args).
		withJSON().
		withDefaults().
		build()
}
