package config

import (
	"os"
	"testing"
)

var configKeys = []string{
	"CATALOG_PATH", "LOG_LEVEL", "LOG_FORMAT", "LOG_FILE",
	"METRICS_ADDR", "RANDOM_SEED", "SEARCH_CACHE_SIZE", "SHOW_BANNER",
}

// clearEnv runs the test from an empty directory with every key unset
func clearEnv(t *testing.T) {
	t.Helper()

	t.Chdir(t.TempDir())
	for _, key := range configKeys {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.CatalogPath != "" {
		t.Errorf("Expected embedded catalog, got %q", cfg.CatalogPath)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("Expected warn, got %s", cfg.LogLevel)
	}
	if cfg.LogFormat != "text" {
		t.Errorf("Expected text, got %s", cfg.LogFormat)
	}
	if cfg.MetricsAddr != "" {
		t.Errorf("Metrics should be off by default, got %q", cfg.MetricsAddr)
	}
	if cfg.RandomSeed != 0 {
		t.Errorf("Expected seed 0, got %d", cfg.RandomSeed)
	}
	if cfg.SearchCacheSize != 64 {
		t.Errorf("Expected cache size 64, got %d", cfg.SearchCacheSize)
	}
	if !cfg.ShowBanner {
		t.Error("Banner should be shown by default")
	}
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)

	t.Setenv("CATALOG_PATH", "/tmp/videos.toml")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "JSON")
	t.Setenv("METRICS_ADDR", ":9090")
	t.Setenv("RANDOM_SEED", "42")
	t.Setenv("SEARCH_CACHE_SIZE", "0")
	t.Setenv("SHOW_BANNER", "no")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.CatalogPath != "/tmp/videos.toml" {
		t.Errorf("Unexpected catalog path %q", cfg.CatalogPath)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("Expected debug, got %s", cfg.LogLevel)
	}
	if cfg.LogFormat != "json" {
		t.Errorf("Expected json, got %s", cfg.LogFormat)
	}
	if cfg.MetricsAddr != ":9090" {
		t.Errorf("Unexpected metrics addr %q", cfg.MetricsAddr)
	}
	if cfg.RandomSeed != 42 {
		t.Errorf("Expected seed 42, got %d", cfg.RandomSeed)
	}
	if cfg.SearchCacheSize != 0 {
		t.Errorf("Expected cache size 0, got %d", cfg.SearchCacheSize)
	}
	if cfg.ShowBanner {
		t.Error("Banner should be disabled")
	}
}

func TestLoadDotEnv(t *testing.T) {
	clearEnv(t)

	if err := os.WriteFile(".env", []byte("SEARCH_CACHE_SIZE=8\nRANDOM_SEED=7\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		os.Unsetenv("SEARCH_CACHE_SIZE")
		os.Unsetenv("RANDOM_SEED")
	})

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.SearchCacheSize != 8 || cfg.RandomSeed != 7 {
		t.Errorf("Expected values from .env, got cache=%d seed=%d", cfg.SearchCacheSize, cfg.RandomSeed)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "unknown log format", key: "LOG_FORMAT", value: "xml"},
		{name: "negative cache size", key: "SEARCH_CACHE_SIZE", value: "-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			if _, err := Load(); err == nil {
				t.Errorf("Expected error for %s=%s", tt.key, tt.value)
			}
		})
	}
}

func TestGetEnvBool(t *testing.T) {
	tests := []struct {
		value    string
		def      bool
		expected bool
	}{
		{value: "true", def: false, expected: true},
		{value: "YES", def: false, expected: true},
		{value: "0", def: true, expected: false},
		{value: "maybe", def: true, expected: true},
		{value: "", def: false, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv("TEST_BOOL", tt.value)
			if got := getEnvBool("TEST_BOOL", tt.def); got != tt.expected {
				t.Errorf("getEnvBool(%q, %v) = %v, expected %v", tt.value, tt.def, got, tt.expected)
			}
		})
	}
}
