// Package config loads the serving configuration: which provider to
// use, how to reach it, the generation parameter defaults, and the
// optional completion cache.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the complete serving configuration.
type Config struct {
	Provider string         `yaml:"provider"`
	Server   ServerConfig   `yaml:"server"`
	Cache    CacheConfig    `yaml:"cache"`
	Ark      ArkConfig      `yaml:"ark"`
	Bedrock  BedrockConfig  `yaml:"bedrock"`
	Defaults map[string]any `yaml:"defaults"`
	LogLevel string         `yaml:"log_level"`
}

// ServerConfig configures the HTTP API binary.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// CacheConfig configures the Redis completion cache.
type CacheConfig struct {
	Enabled    bool   `yaml:"enabled"`
	Addr       string `yaml:"addr"`
	Password   string `yaml:"password"`
	TTLSeconds int    `yaml:"ttl_seconds"`
}

// ArkConfig selects an Ark endpoint deployment. Empty credentials fall
// back to the VOLC_ACCESSKEY / VOLC_SECRETKEY environment variables.
type ArkConfig struct {
	EndpointID string `yaml:"endpoint_id"`
	Domain     string `yaml:"domain"`
	Region     string `yaml:"region"`
	AccessKey  string `yaml:"access_key"`
	SecretKey  string `yaml:"secret_key"`
}

// BedrockConfig selects a Bedrock model. Empty credentials fall back to
// the AWS SDK default chain.
type BedrockConfig struct {
	Region    string `yaml:"region"`
	ModelID   string `yaml:"model_id"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
}

// Load reads the yaml config. The path comes from
// MODELBRIDGE_CONFIG_PATH, defaulting to configs/modelbridge.yaml.
func Load() (*Config, error) {
	path := os.Getenv("MODELBRIDGE_CONFIG_PATH")
	if path == "" {
		path = "configs/modelbridge.yaml"
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Provider == "" {
		cfg.Provider = "ark"
	}
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = ":8080"
	}
	if cfg.Cache.TTLSeconds == 0 {
		cfg.Cache.TTLSeconds = 3600
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
}

// Validate rejects configurations the serving layer cannot wire.
func (c *Config) Validate() error {
	switch c.Provider {
	case "ark":
		if c.Ark.EndpointID == "" {
			return fmt.Errorf("config: ark provider requires ark.endpoint_id")
		}
	case "bedrock":
		if c.Bedrock.ModelID == "" {
			return fmt.Errorf("config: bedrock provider requires bedrock.model_id")
		}
	default:
		return fmt.Errorf("config: unknown provider %q", c.Provider)
	}

	if c.Cache.Enabled && c.Cache.Addr == "" {
		return fmt.Errorf("config: cache enabled but cache.addr is empty")
	}
	return nil
}
