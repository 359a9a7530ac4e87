package config

import (
	"fmt"
	"time"
)

// Defaults applied when a setting is absent from every source.
const (
	// DefaultGracePeriod matches the tracker's built-in latch grace.
	DefaultGracePeriod = 125 * time.Millisecond

	// DefaultFrameRate is the NextFrame cadence in frames per second for
	// timer-driven hosts.
	DefaultFrameRate = 60

	// DefaultLogLevel is the initial logger threshold.
	DefaultLogLevel = "info"
)

// Config holds the runtime settings for the service.
type Config struct {
	// GracePeriod is how long blocking latches stay effective after being
	// disabled.
	GracePeriod time.Duration

	// MetricsEnabled turns event and frame counters on.
	MetricsEnabled bool

	// LogLevel is one of debug, info, warn, error.
	LogLevel string

	// FrameRate is the NextFrame cadence for timer-driven hosts, in
	// frames per second.
	FrameRate int
}

// Default returns the configuration used when no file or environment
// override is present.
func Default() Config {
	return Config{
		GracePeriod:    DefaultGracePeriod,
		MetricsEnabled: true,
		LogLevel:       DefaultLogLevel,
		FrameRate:      DefaultFrameRate,
	}
}

// Validate checks the configuration for values the service cannot run
// with.
func (c Config) Validate() error {
	if c.GracePeriod < 0 {
		return fmt.Errorf("%w: grace_period %s is negative", ErrInvalidValue, c.GracePeriod)
	}
	if c.FrameRate <= 0 {
		return fmt.Errorf("%w: frame_rate %d must be positive", ErrInvalidValue, c.FrameRate)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log_level %q (want debug, info, warn, or error)", ErrInvalidValue, c.LogLevel)
	}
	return nil
}

// FrameInterval converts the frame rate to a timer period.
func (c Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.FrameRate)
}
