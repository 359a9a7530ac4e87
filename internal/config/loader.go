package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix for environment variable overrides.
const EnvPrefix = "INPUTTRACK_"

// Load builds the effective configuration: defaults, then the file at
// path (if any), then environment overrides. A missing file is not an
// error; an empty path skips the file stage entirely.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		loaded, err := loadFile(path, cfg)
		if err != nil {
			return Config{}, err
		}
		cfg = loaded
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// fileConfig is the on-disk schema. Pointer fields distinguish an
// absent setting from an explicit zero; durations are strings so the
// file can say "250ms".
type fileConfig struct {
	GracePeriod    *string `toml:"grace_period" yaml:"grace_period"`
	MetricsEnabled *bool   `toml:"metrics_enabled" yaml:"metrics_enabled"`
	LogLevel       *string `toml:"log_level" yaml:"log_level"`
	FrameRate      *int    `toml:"frame_rate" yaml:"frame_rate"`
}

// loadFile decodes the file over base. The format is chosen by
// extension: .toml, .yaml, or .yml.
func loadFile(path string, base Config) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return base, nil
		}
		return Config{}, fmt.Errorf("reading config file %s: %w", path, err)
	}

	var fc fileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.Unmarshal(data, &fc); err != nil {
			return Config{}, &ParseError{Path: path, Err: err}
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &fc); err != nil {
			return Config{}, &ParseError{Path: path, Err: err}
		}
	default:
		return Config{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}

	cfg := base
	if fc.GracePeriod != nil {
		d, err := parseDuration(*fc.GracePeriod)
		if err != nil {
			return Config{}, &ParseError{Path: path, Err: fmt.Errorf("grace_period: %w", err)}
		}
		cfg.GracePeriod = d
	}
	if fc.MetricsEnabled != nil {
		cfg.MetricsEnabled = *fc.MetricsEnabled
	}
	if fc.LogLevel != nil {
		cfg.LogLevel = strings.ToLower(*fc.LogLevel)
	}
	if fc.FrameRate != nil {
		cfg.FrameRate = *fc.FrameRate
	}
	return cfg, nil
}

// applyEnv overlays INPUTTRACK_* environment variables on cfg.
// Empty values are ignored.
func applyEnv(cfg *Config) error {
	if v := os.Getenv(EnvPrefix + "GRACE_PERIOD"); v != "" {
		d, err := parseDuration(v)
		if err != nil {
			return fmt.Errorf("%sGRACE_PERIOD: %w", EnvPrefix, err)
		}
		cfg.GracePeriod = d
	}
	if v := os.Getenv(EnvPrefix + "METRICS_ENABLED"); v != "" {
		b, err := parseBool(v)
		if err != nil {
			return fmt.Errorf("%sMETRICS_ENABLED: %w", EnvPrefix, err)
		}
		cfg.MetricsEnabled = b
	}
	if v := os.Getenv(EnvPrefix + "LOG_LEVEL"); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
	if v := os.Getenv(EnvPrefix + "FRAME_RATE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%sFRAME_RATE: %w", EnvPrefix, err)
		}
		cfg.FrameRate = n
	}
	return nil
}

// parseDuration accepts Go duration syntax or a bare millisecond count.
func parseDuration(s string) (time.Duration, error) {
	if ms, err := strconv.Atoi(s); err == nil {
		return time.Duration(ms) * time.Millisecond, nil
	}
	return time.ParseDuration(s)
}

// parseBool accepts the usual spellings plus yes/no and on/off.
func parseBool(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "on":
		return true, nil
	case "no", "off":
		return false, nil
	}
	return strconv.ParseBool(s)
}
