package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"importcut/internal/config"
)

func TestLoadDefaultsAndExpandsPaths(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	wantCache := filepath.Join(tempHome, ".local", "share", "importcut", "cache")
	if cfg.Paths.CacheDir != wantCache {
		t.Fatalf("unexpected cache dir: got %q want %q", cfg.Paths.CacheDir, wantCache)
	}
	wantSettings := filepath.Join(tempHome, ".config", "importcut", "settings.toml")
	if cfg.Paths.SettingsPath != wantSettings {
		t.Fatalf("unexpected settings path: %q", cfg.Paths.SettingsPath)
	}
	if got := cfg.Import.SupportedExtensions; len(got) != 2 || got[0] != ".edl" || got[1] != ".mov" {
		t.Fatalf("unexpected supported extensions: %v", got)
	}
	if cfg.Import.DefaultFrameRate != 24 {
		t.Fatalf("unexpected default frame rate: %v", cfg.Import.DefaultFrameRate)
	}
	if !cfg.Import.SingleDrop {
		t.Fatal("expected single_drop default true")
	}
	if cfg.Downloads.Workers != 4 || cfg.Downloads.TimeoutSeconds != 30 {
		t.Fatalf("unexpected download defaults: %+v", cfg.Downloads)
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories failed: %v", err)
	}
	for _, dir := range []string{cfg.Paths.CacheDir, cfg.Paths.LogDir} {
		info, err := os.Stat(dir)
		if err != nil {
			t.Fatalf("expected directory %q to exist: %v", dir, err)
		}
		if !info.IsDir() {
			t.Fatalf("expected %q to be directory", dir)
		}
	}
}

func TestLoadCustomPathNormalizesExtensions(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "importcut.toml")

	type payload struct {
		Import struct {
			SupportedExtensions []string `toml:"supported_extensions"`
			DefaultFrameRate    float64  `toml:"default_frame_rate"`
		} `toml:"import"`
		Logging struct {
			Format string `toml:"format"`
		} `toml:"logging"`
	}
	custom := payload{}
	custom.Import.SupportedExtensions = []string{"EDL", " .Mov ", "xml"}
	custom.Import.DefaultFrameRate = 25
	custom.Logging.Format = "JSON"

	encoded, err := toml.Marshal(custom)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	if err := os.WriteFile(configPath, encoded, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != configPath {
		t.Fatalf("unexpected resolution: %q exists=%v", resolved, exists)
	}
	want := []string{".edl", ".mov", ".xml"}
	if got := cfg.Import.SupportedExtensions; len(got) != len(want) {
		t.Fatalf("unexpected extensions: %v", got)
	} else {
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("extension %d: got %q want %q", i, got[i], want[i])
			}
		}
	}
	if cfg.Import.DefaultFrameRate != 25 {
		t.Fatalf("unexpected frame rate: %v", cfg.Import.DefaultFrameRate)
	}
	if cfg.Logging.Format != "json" {
		t.Fatalf("unexpected log format: %q", cfg.Logging.Format)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "importcut.toml")

	contents := "[import]\ndefault_frame_rate = -1.0\n"
	if err := os.WriteFile(configPath, []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	_, _, _, err := config.Load(configPath)
	if err == nil {
		t.Fatal("expected validation error for negative frame rate")
	}
	if !strings.Contains(err.Error(), "default_frame_rate") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCreateSampleRoundTrips(t *testing.T) {
	tempDir := t.TempDir()
	target := filepath.Join(tempDir, "nested", "config.toml")

	if err := config.CreateSample(target); err != nil {
		t.Fatalf("CreateSample failed: %v", err)
	}
	cfg, _, exists, err := config.Load(target)
	if err != nil {
		t.Fatalf("Load of sample failed: %v", err)
	}
	if !exists {
		t.Fatal("expected sample file to exist")
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("sample config invalid: %v", err)
	}
}
