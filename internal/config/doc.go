// Package config defines the runtime settings for the input tracking
// service and loads them from TOML or YAML files with environment
// variable overrides.
//
// Settings are deliberately few: the blocking grace period, whether
// metrics collection is on, the log level, and the frame cadence for
// hosts that drive NextFrame from a timer. Loading a missing file is
// not an error; defaults apply.
package config
