// Package config handles tool configuration loading and management.
package config

// Config holds all slipstream settings.
type Config struct {
	Assets  AssetsConfig  `yaml:"assets"`
	Track   TrackConfig   `yaml:"track"`
	Export  ExportConfig  `yaml:"export"`
	Logging LoggingConfig `yaml:"logging"`
}

// AssetsConfig holds asset lookup settings.
type AssetsConfig struct {
	// Roots are searched in reverse order (last entry wins), replacing
	// the original tool's environment-based asset-root fallback.
	Roots []string `yaml:"roots"`
}

// TrackConfig holds circuit build settings.
type TrackConfig struct {
	// SmoothOutliers replaces flagged outlier section centers with the
	// midpoint of their geometric neighbors instead of keeping the
	// decoded values.
	SmoothOutliers bool `yaml:"smooth_outliers"`
}

// ExportConfig holds export output settings.
type ExportConfig struct {
	OutputDir string `yaml:"output_dir"`
	MapSize   int    `yaml:"map_size"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Assets: AssetsConfig{
			Roots: []string{"./assets"},
		},
		Track: TrackConfig{
			SmoothOutliers: false,
		},
		Export: ExportConfig{
			OutputDir: ".",
			MapSize:   1024,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
