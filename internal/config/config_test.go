package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "modelbridge.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

func TestLoad_AppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
ark:
  endpoint_id: ep-test
`)
	t.Setenv("MODELBRIDGE_CONFIG_PATH", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Provider != "ark" {
		t.Errorf("Expected default provider ark, got %q", cfg.Provider)
	}
	if cfg.Server.Addr != ":8080" {
		t.Errorf("Expected default addr :8080, got %q", cfg.Server.Addr)
	}
	if cfg.Cache.TTLSeconds != 3600 {
		t.Errorf("Expected default TTL 3600, got %d", cfg.Cache.TTLSeconds)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("Expected default log level info, got %q", cfg.LogLevel)
	}
}

func TestLoad_FullConfig(t *testing.T) {
	path := writeConfig(t, `
provider: bedrock
server:
  addr: ":9090"
cache:
  enabled: true
  addr: localhost:6379
  ttl_seconds: 60
bedrock:
  region: us-east-1
  model_id: anthropic.claude-3-haiku
defaults:
  temperature: 0.2
  max_new_tokens: 500
log_level: debug
`)
	t.Setenv("MODELBRIDGE_CONFIG_PATH", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Provider != "bedrock" {
		t.Errorf("Expected provider bedrock, got %q", cfg.Provider)
	}
	if cfg.Bedrock.ModelID != "anthropic.claude-3-haiku" {
		t.Errorf("Unexpected model id %q", cfg.Bedrock.ModelID)
	}
	if cfg.Cache.TTLSeconds != 60 {
		t.Errorf("Expected TTL 60, got %d", cfg.Cache.TTLSeconds)
	}
	if cfg.Defaults["temperature"] != 0.2 {
		t.Errorf("Expected defaults to carry temperature 0.2, got %v", cfg.Defaults["temperature"])
	}
}

func TestLoad_ArkRequiresEndpointID(t *testing.T) {
	path := writeConfig(t, `
provider: ark
`)
	t.Setenv("MODELBRIDGE_CONFIG_PATH", path)

	_, err := Load()
	if err == nil || !strings.Contains(err.Error(), "endpoint_id") {
		t.Fatalf("Expected endpoint_id error, got %v", err)
	}
}

func TestLoad_UnknownProviderRejected(t *testing.T) {
	path := writeConfig(t, `
provider: carrier-pigeon
`)
	t.Setenv("MODELBRIDGE_CONFIG_PATH", path)

	_, err := Load()
	if err == nil || !strings.Contains(err.Error(), "unknown provider") {
		t.Fatalf("Expected unknown provider error, got %v", err)
	}
}

func TestLoad_CacheNeedsAddr(t *testing.T) {
	path := writeConfig(t, `
ark:
  endpoint_id: ep-test
cache:
  enabled: true
`)
	t.Setenv("MODELBRIDGE_CONFIG_PATH", path)

	_, err := Load()
	if err == nil || !strings.Contains(err.Error(), "cache.addr") {
		t.Fatalf("Expected cache.addr error, got %v", err)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	t.Setenv("MODELBRIDGE_CONFIG_PATH", filepath.Join(t.TempDir(), "nope.yaml"))

	if _, err := Load(); err == nil {
		t.Fatal("Expected error for missing config file")
	}
}
