package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side application settings.
type ClientApp struct {
	Version  string
	LogLevel string
	LogPath  string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the shop API.
	HTTPAddress string
	// RequestTimeout is the timeout for outbound requests; zero means none.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the sqlite connection string used by the client.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	DB ClientDB
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// RefreshInterval defines how often the catalog is refreshed; zero
	// disables the refresh job.
	RefreshInterval time.Duration
}

// ClientConfig is the client configuration assembled from [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Workers ClientWorkers
}

// GetClientConfig builds and validates the client config view from the merged
// structured configuration.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			Version:  cfg.App.Version,
			LogLevel: cfg.App.LogLevel,
			LogPath:  cfg.App.LogPath,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: cfg.Storage.DB.DSN},
		},
		Workers: ClientWorkers{RefreshInterval: cfg.Workers.RefreshInterval},
	}
}
