// Package testsupport provides shared fixtures for package tests.
package testsupport

import (
	"path/filepath"
	"testing"

	"importcut/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.CacheDir = filepath.Join(base, "cache")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.Paths.SettingsPath = filepath.Join(base, "settings.toml")

	for _, opt := range opts {
		opt(&cfg)
	}

	return &cfg
}

// WithSupportedExtensions overrides the accepted drop extensions.
func WithSupportedExtensions(exts ...string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Import.SupportedExtensions = exts
	}
}

// WithDownloadWorkers overrides the downloader worker count.
func WithDownloadWorkers(workers int) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Downloads.Workers = workers
	}
}
