package config

import (
	"flag"
	"strings"
)

var (
	flagConfig = flag.String("config", "", "Path to config file")
	flagDebug  = flag.Bool("debug", false, "Enable debug logging")
	flagAssets = flag.String("assets", "", "Comma-separated asset root directories")
	flagSmooth = flag.Bool("smooth-outliers", false, "Smooth flagged outlier section centers")
	flagOut    = flag.String("out", "", "Export output directory")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagAssets != "" {
		cfg.Assets.Roots = cfg.Assets.Roots[:0]
		for _, root := range strings.Split(*flagAssets, ",") {
			if root = strings.TrimSpace(root); root != "" {
				cfg.Assets.Roots = append(cfg.Assets.Roots, root)
			}
		}
	}
	if *flagSmooth {
		cfg.Track.SmoothOutliers = true
	}
	if *flagOut != "" {
		cfg.Export.OutputDir = *flagOut
	}
}
