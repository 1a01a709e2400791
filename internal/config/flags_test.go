package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags_AllFlags(t *testing.T) {
	cfg, err := ParseFlags([]string{
		"-a", "http://shop:8000",
		"-d", "/tmp/shop.db",
		"-config", "/etc/shop.json",
		"-env-file", "/etc/shop.env",
		"-request-timeout", "5s",
		"-refresh-interval", "1m",
		"-log-level", "error",
		"-log-path", "/tmp/shop.log",
	})
	require.NoError(t, err)

	assert.Equal(t, "http://shop:8000", cfg.Adapter.HTTPAddress)
	assert.Equal(t, "/tmp/shop.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "/etc/shop.json", cfg.JSONFilePath)
	assert.Equal(t, "/etc/shop.env", cfg.EnvFilePath)
	assert.Equal(t, 5*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, time.Minute, cfg.Workers.RefreshInterval)
	assert.Equal(t, "error", cfg.App.LogLevel)
	assert.Equal(t, "/tmp/shop.log", cfg.App.LogPath)
}

func TestParseFlags_NoFlags(t *testing.T) {
	cfg, err := ParseFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_ShortConfigAlias(t *testing.T) {
	cfg, err := ParseFlags([]string{"-c", "/etc/shop.json"})
	require.NoError(t, err)
	assert.Equal(t, "/etc/shop.json", cfg.JSONFilePath)
}

func TestParseFlags_UnknownFlag(t *testing.T) {
	_, err := ParseFlags([]string{"-unknown"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error parsing flags")
}

func TestLookupEnvFilePath(t *testing.T) {
	t.Setenv("ENV_FILE", "")

	tests := []struct {
		name string
		args []string
		env  string
		want string
	}{
		{name: "default", want: defaultEnvFile},
		{name: "separate value", args: []string{"-env-file", "a.env"}, want: "a.env"},
		{name: "equals form", args: []string{"--env-file=b.env"}, want: "b.env"},
		{name: "environment", env: "c.env", want: "c.env"},
		{name: "flag beats environment", args: []string{"-env-file", "d.env"}, env: "c.env", want: "d.env"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("ENV_FILE", tt.env)
			assert.Equal(t, tt.want, lookupEnvFilePath(tt.args))
		})
	}
}
