package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	// Test asset defaults
	if len(cfg.Assets.Roots) != 1 || cfg.Assets.Roots[0] != "./assets" {
		t.Errorf("expected single default asset root './assets', got %v", cfg.Assets.Roots)
	}

	// Test track defaults
	if cfg.Track.SmoothOutliers {
		t.Error("expected smooth_outliers to be false by default")
	}

	// Test export defaults
	if cfg.Export.OutputDir != "." {
		t.Errorf("expected output dir '.', got %s", cfg.Export.OutputDir)
	}
	if cfg.Export.MapSize != 1024 {
		t.Errorf("expected map size 1024, got %d", cfg.Export.MapSize)
	}

	// Test logging defaults
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFile(t *testing.T) {
	// Create temporary config file
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
assets:
  roots:
    - /opt/game/assets
    - ~/racing/mods

track:
  smooth_outliers: true

export:
  output_dir: "./exports"
  map_size: 2048

logging:
  level: "debug"
  log_file: "slipstream.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// Load config
	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Verify values were loaded
	if len(cfg.Assets.Roots) != 2 {
		t.Fatalf("expected 2 asset roots, got %v", cfg.Assets.Roots)
	}
	if cfg.Assets.Roots[0] != "/opt/game/assets" {
		t.Errorf("expected first root /opt/game/assets, got %s", cfg.Assets.Roots[0])
	}

	if !cfg.Track.SmoothOutliers {
		t.Error("expected smooth_outliers to be true")
	}

	if cfg.Export.OutputDir != "./exports" {
		t.Errorf("expected output dir './exports', got %s", cfg.Export.OutputDir)
	}
	if cfg.Export.MapSize != 2048 {
		t.Errorf("expected map size 2048, got %d", cfg.Export.MapSize)
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "slipstream.log" {
		t.Errorf("expected log file 'slipstream.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	// Create temporary config file with invalid YAML
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
export:
  map_size: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// Try to load - should error
	cfg := Default()
	err := loadFromFile(cfg, configPath)
	if err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	err := loadFromFile(cfg, "/nonexistent/path/config.yaml")
	if err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	// Just verify it returns a non-empty path
	// Actual path depends on OS
	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}

	// Verify path is absolute
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	// Save current directory
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	// Create temp directory and change to it; point the user config dir
	// there too so an installed config does not leak into the test.
	tmpDir := t.TempDir()
	os.Chdir(tmpDir)
	t.Setenv("XDG_CONFIG_HOME", tmpDir)

	// No config file exists - should return empty
	path := findConfigFile()
	if path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	// Create slipstream.yaml in current directory
	configPath := filepath.Join(tmpDir, "slipstream.yaml")
	if err := os.WriteFile(configPath, []byte("export:\n  map_size: 512\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	// Should find it now
	path = findConfigFile()
	if path == "" {
		t.Error("expected to find slipstream.yaml in current directory")
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*Config) error
		teardown func()
	}{
		{
			name: "debug flag",
			setup: func() {
				*flagDebug = true
			},
			verify: func(cfg *Config) error {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
				return nil
			},
			teardown: func() {
				*flagDebug = false
			},
		},
		{
			name: "assets flag",
			setup: func() {
				*flagAssets = "/data/wipeout, ./local"
			},
			verify: func(cfg *Config) error {
				if len(cfg.Assets.Roots) != 2 {
					t.Fatalf("expected 2 roots, got %v", cfg.Assets.Roots)
				}
				if cfg.Assets.Roots[0] != "/data/wipeout" || cfg.Assets.Roots[1] != "./local" {
					t.Errorf("expected trimmed roots, got %v", cfg.Assets.Roots)
				}
				return nil
			},
			teardown: func() {
				*flagAssets = ""
			},
		},
		{
			name: "smooth-outliers flag",
			setup: func() {
				*flagSmooth = true
			},
			verify: func(cfg *Config) error {
				if !cfg.Track.SmoothOutliers {
					t.Error("expected smooth_outliers to be enabled")
				}
				return nil
			},
			teardown: func() {
				*flagSmooth = false
			},
		},
		{
			name: "out flag",
			setup: func() {
				*flagOut = "/tmp/exports"
			},
			verify: func(cfg *Config) error {
				if cfg.Export.OutputDir != "/tmp/exports" {
					t.Errorf("expected output dir /tmp/exports, got %s", cfg.Export.OutputDir)
				}
				return nil
			},
			teardown: func() {
				*flagOut = ""
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Setup
			tt.setup()
			defer tt.teardown()

			// Apply flags to default config
			cfg := Default()
			applyFlags(cfg)

			// Verify
			tt.verify(cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	// Create temporary config file
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
export:
  output_dir: "./from-file"
  map_size: 512
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// Set flag to override config file
	*flagConfig = configPath
	*flagOut = "./from-flag"
	defer func() {
		*flagConfig = ""
		*flagOut = ""
	}()

	// Load config
	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Output dir should be from flag, not file
	if cfg.Export.OutputDir != "./from-flag" {
		t.Errorf("expected output dir './from-flag' from flag, got %s", cfg.Export.OutputDir)
	}

	// Map size should be from file since no flag override
	if cfg.Export.MapSize != 512 {
		t.Errorf("expected map size 512 from file, got %d", cfg.Export.MapSize)
	}
}
