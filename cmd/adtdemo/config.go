package main

import (
	"fmt"
	"os"

	"github.com/KasperOmsK/adtfn/period"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// config is the optional YAML file passed with --config.
type config struct {
	LogLevel   string `yaml:"log_level"`
	ShapesFile string `yaml:"shapes_file"`
	DateLayout string `yaml:"date_layout"`
}

func defaultConfig() config {
	return config{
		LogLevel:   "info",
		DateLayout: period.DateLayout,
	}
}

// loadConfig reads path over the defaults. An empty path yields the
// defaults.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if cfg.DateLayout == "" {
		cfg.DateLayout = period.DateLayout
	}
	return cfg, nil
}

// newLogger builds a production logger at the configured level, or at debug
// level when verbose is set.
func newLogger(cfg config, verbose bool) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	level, err := zap.ParseAtomicLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log_level: %w", err)
	}
	zc.Level = level
	if verbose {
		zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return zc.Build()
}
