package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

const (
	defaultHTTPAddress = "http://localhost:8000/api"
	defaultDSN         = "sweetshop.db"
	defaultLogLevel    = "info"
	defaultEnvFile     = ".env"
)

type configBuilder struct {
	configs  []*StructuredConfig
	defaults *StructuredConfig
	err      error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 4),
	}
}

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

	if b.defaults != nil {
		if err := mergo.Merge(config, b.defaults); err != nil {
			return nil, fmt.Errorf("error applying default configs: %w", err)
		}
	}

	return config, config.validate()
}

// withDotEnv must run before withEnv: it only seeds the process environment.
func (b *configBuilder) withDotEnv(args []string) *configBuilder {
	path := lookupEnvFilePath(args)
	if err := loadDotEnv(path, path != defaultEnvFile); err != nil {
		b.err = errors.Join(b.err, err)
	}
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

func (b *configBuilder) withFlags(args []string) *configBuilder {
	flags, err := ParseFlags(args)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, flags)
	return b
}

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

func (b *configBuilder) withDefaults() *configBuilder {
	b.defaults = &StructuredConfig{
		App:     App{LogLevel: defaultLogLevel},
		Adapter: Adapter{HTTPAddress: defaultHTTPAddress},
		Storage: Storage{DB: DB{DSN: defaultDSN}},
	}
	return b
}
