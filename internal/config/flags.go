package config

import (
	"flag"
	"fmt"
	"io"
	"time"
)

// ParseFlags parses the client's command-line flags.
//
// Flags:
//
//	-a shop API address (URL or host:port)
//	-d local sqlite database path
//	-c/-config json file path with configs
//	-env-file .env file path
//	-request-timeout request timeout (e.g., "10s")
//	-refresh-interval catalog refresh interval (e.g., "1m")
//	-log-level zerolog level name
//	-log-path client log file
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("sweetshop", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		address         string
		databaseDSN     string
		jsonConfigPath  string
		envFilePath     string
		requestTimeout  time.Duration
		refreshInterval time.Duration
		logLevel        string
		logPath         string
	)

	fs.StringVar(&address, "a", "", "Shop API address")
	fs.StringVar(&databaseDSN, "d", "", "Local database path")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&envFilePath, "env-file", "", ".env file path")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 10s)")
	fs.DurationVar(&refreshInterval, "refresh-interval", 0, "Catalog refresh interval (e.g., 1m)")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&logPath, "log-path", "", "Log file path")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			LogLevel: logLevel,
			LogPath:  logPath,
		},
		Adapter: Adapter{
			HTTPAddress:    address,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
		},
		Workers:      Workers{RefreshInterval: refreshInterval},
		JSONFilePath: jsonConfigPath,
		EnvFilePath:  envFilePath,
	}, nil
}
